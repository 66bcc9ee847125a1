package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/pbrudny/financial-decisions-retro/database"
	"github.com/pbrudny/financial-decisions-retro/models"
)

type CreateDecisionInput struct {
	Name            string `json:"name" binding:"required,max=200"`
	Period          string `json:"period" binding:"required,max=100"`
	Context         string `json:"context" binding:"required,max=2000"`
	FinancialScale  string `json:"financial_scale" binding:"required,max=200"`
	EmotionalImpact string `json:"emotional_impact" binding:"required,max=500"`
}

// CreateDecision persists a new proposal and immediately applies the creator's
// approval through the same approve operation the partner will later use.
func CreateDecision(input CreateDecisionInput, creator models.UserID) (*models.Decision, error) {
	decision := models.Decision{
		Name:            input.Name,
		Period:          input.Period,
		Context:         input.Context,
		FinancialScale:  input.FinancialScale,
		EmotionalImpact: input.EmotionalImpact,
		Status:          models.DecisionProposal,
		CreatedBy:       creator,
	}

	if err := database.DB.Create(&decision).Error; err != nil {
		return nil, err
	}

	return ApproveDecision(decision.ID, creator)
}

// ApproveDecision sets the caller's approval flag and transitions the decision
// to approved once both flags are set. Both writes are conditional updates:
// the flag set takes the row lock for the rest of the transaction, so
// near-simultaneous approvals serialize instead of overwriting each other's
// flag, and the transition fires exactly once.
func ApproveDecision(id uint, user models.UserID) (*models.Decision, error) {
	column := "approved_by_a"
	if user == models.UserB {
		column = "approved_by_b"
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Decision{}).
			Where("id = ? AND status = ?", id, models.DecisionProposal).
			Update(column, true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var decision models.Decision
			if err := tx.First(&decision, id).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return NotFound("Decision not found")
				}
				return err
			}
			return InvalidState("Decision is not a proposal")
		}

		return tx.Model(&models.Decision{}).
			Where("id = ? AND status = ? AND approved_by_a = ? AND approved_by_b = ?",
				id, models.DecisionProposal, true, true).
			Update("status", models.DecisionApproved).Error
	})
	if err != nil {
		return nil, err
	}

	return GetDecision(id)
}

// CloseDecision transitions an approved decision to closed. Either party may
// close; the proposal->approved->closed order is never skipped or reversed.
func CloseDecision(id uint) (*models.Decision, error) {
	var out models.Decision

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var decision models.Decision
		if err := tx.First(&decision, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFound("Decision not found")
			}
			return err
		}

		if decision.Status != models.DecisionApproved {
			return InvalidState("Only approved decisions can be closed")
		}

		decision.Status = models.DecisionClosed
		if err := tx.Save(&decision).Error; err != nil {
			return err
		}
		out = decision
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &out, nil
}

func GetDecision(id uint) (*models.Decision, error) {
	var decision models.Decision
	if err := database.DB.First(&decision, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("Decision not found")
		}
		return nil, err
	}
	return &decision, nil
}

func ListDecisions() ([]models.Decision, error) {
	decisions := []models.Decision{}
	if err := database.DB.Order("created_at DESC, id DESC").Find(&decisions).Error; err != nil {
		return nil, err
	}
	return decisions, nil
}
