package models

import "time"

type AssessmentStatus string

const (
	AssessmentEditable AssessmentStatus = "editable"
	AssessmentLocked   AssessmentStatus = "locked"
)

type AssessmentItemType string

const (
	ItemPro AssessmentItemType = "pro"
	ItemCon AssessmentItemType = "con"
)

// Assessment is one party's private evaluation of a decision. There is at most
// one per (decision_id, user_id) pair; once status is locked it never changes.
type Assessment struct {
	ID                 uint             `gorm:"primaryKey" json:"id"`
	DecisionID         uint             `gorm:"not null;uniqueIndex:idx_assessments_decision_user" json:"decision_id"`
	UserID             UserID           `gorm:"type:varchar(1);not null;uniqueIndex:idx_assessments_decision_user" json:"user_id"`
	Rating             *int             `json:"rating"`
	WouldDoAgain       *bool            `json:"would_do_again"`
	BiggestIgnoredRisk *string          `gorm:"type:varchar(1000)" json:"biggest_ignored_risk"`
	Status             AssessmentStatus `gorm:"type:varchar(10);not null;default:editable" json:"status"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`

	Items []AssessmentItem `gorm:"foreignKey:AssessmentID;constraint:OnDelete:CASCADE" json:"items"`

	Decision *Decision `gorm:"foreignKey:DecisionID;constraint:OnDelete:CASCADE" json:"-"`
}

// AssessmentItem is a single pro or con argument. The full item list of an
// assessment is always replaced wholesale, never patched.
type AssessmentItem struct {
	ID           uint               `gorm:"primaryKey" json:"id"`
	AssessmentID uint               `gorm:"not null;index" json:"assessment_id"`
	Type         AssessmentItemType `gorm:"type:varchar(10);not null" json:"type"`
	Text         string             `gorm:"type:varchar(500);not null" json:"text"`
	SortOrder    int                `gorm:"not null;default:0" json:"sort_order"`
}
