package models

import "time"

// SharedConclusion is the single jointly-written conclusion of a decision.
// Readable and writable only once both assessments are locked.
type SharedConclusion struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	DecisionID uint      `gorm:"not null;uniqueIndex" json:"decision_id"`
	Text       string    `gorm:"type:text;not null" json:"text"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Decision *Decision `gorm:"foreignKey:DecisionID;constraint:OnDelete:CASCADE" json:"-"`
}
