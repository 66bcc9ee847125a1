package models

import "time"

type BurdenOption string

const (
	BurdenMe           BurdenOption = "me"
	BurdenPartner      BurdenOption = "partner"
	BurdenBoth         BurdenOption = "both"
	BurdenDontRemember BurdenOption = "dont_remember"
)

// Responsibility records one party's attribution of who initiated, drove and
// bore a decision. It has no lock state of its own: it is editable exactly
// while that party's assessment for the same decision is editable.
type Responsibility struct {
	ID              uint          `gorm:"primaryKey" json:"id"`
	DecisionID      uint          `gorm:"not null;uniqueIndex:idx_responsibilities_decision_user" json:"decision_id"`
	UserID          UserID        `gorm:"type:varchar(1);not null;uniqueIndex:idx_responsibilities_decision_user" json:"user_id"`
	BroughtTopic    *BurdenOption `gorm:"type:varchar(20)" json:"brought_topic"`
	PushedExecution *BurdenOption `gorm:"type:varchar(20)" json:"pushed_execution"`
	MainBurden      *BurdenOption `gorm:"type:varchar(20)" json:"main_burden"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`

	Decision *Decision `gorm:"foreignKey:DecisionID;constraint:OnDelete:CASCADE" json:"-"`
}

// Complete reports whether all three attribution fields are filled in.
func (r *Responsibility) Complete() bool {
	return r.BroughtTopic != nil && r.PushedExecution != nil && r.MainBurden != nil
}
