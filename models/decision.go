package models

import "time"

type DecisionStatus string

const (
	DecisionProposal DecisionStatus = "proposal"
	DecisionApproved DecisionStatus = "approved"
	DecisionClosed   DecisionStatus = "closed"
)

type Decision struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	Name            string         `gorm:"type:varchar(200);not null" json:"name"`
	Period          string         `gorm:"type:varchar(100);not null" json:"period"`
	Context         string         `gorm:"type:text;not null" json:"context"`
	FinancialScale  string         `gorm:"type:varchar(200);not null" json:"financial_scale"`
	EmotionalImpact string         `gorm:"type:varchar(500);not null" json:"emotional_impact"`
	Status          DecisionStatus `gorm:"type:varchar(20);not null;default:proposal" json:"status"`
	ApprovedByA     bool           `gorm:"not null;default:false" json:"approved_by_a"`
	ApprovedByB     bool           `gorm:"not null;default:false" json:"approved_by_b"`
	CreatedBy       UserID         `gorm:"type:varchar(1);not null" json:"created_by"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}
