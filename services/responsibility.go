package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/pbrudny/financial-decisions-retro/database"
	"github.com/pbrudny/financial-decisions-retro/models"
)

type UpdateResponsibilityInput struct {
	BroughtTopic    *models.BurdenOption `json:"brought_topic" binding:"omitempty,oneof=me partner both dont_remember"`
	PushedExecution *models.BurdenOption `json:"pushed_execution" binding:"omitempty,oneof=me partner both dont_remember"`
	MainBurden      *models.BurdenOption `json:"main_burden" binding:"omitempty,oneof=me partner both dont_remember"`
}

type ResponsibilityComparison struct {
	Mine    *models.Responsibility `json:"mine"`
	Partner *models.Responsibility `json:"partner"`
}

func findResponsibility(tx *gorm.DB, decisionID uint, user models.UserID) (*models.Responsibility, error) {
	var responsibility models.Responsibility
	err := tx.Where("decision_id = ? AND user_id = ?", decisionID, user).First(&responsibility).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &responsibility, nil
}

func GetMyResponsibility(decisionID uint, user models.UserID) (*models.Responsibility, error) {
	if _, err := GetDecision(decisionID); err != nil {
		return nil, err
	}
	return findResponsibility(database.DB, decisionID, user)
}

// UpdateMyResponsibility upserts the caller's attribution fields. Editability
// is coupled to the caller's assessment lock, not to any state of its own.
func UpdateMyResponsibility(decisionID uint, user models.UserID, input UpdateResponsibilityInput) (*models.Responsibility, error) {
	if _, err := GetDecision(decisionID); err != nil {
		return nil, err
	}

	assessment, err := findAssessment(database.DB, decisionID, user)
	if err != nil {
		return nil, err
	}
	if assessment != nil && assessment.Status == models.AssessmentLocked {
		return nil, Forbidden("Assessment is locked")
	}

	existing, err := findResponsibility(database.DB, decisionID, user)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		updates := map[string]interface{}{
			"brought_topic":    input.BroughtTopic,
			"pushed_execution": input.PushedExecution,
			"main_burden":      input.MainBurden,
		}
		if err := database.DB.Model(existing).Updates(updates).Error; err != nil {
			return nil, err
		}
	} else {
		created := models.Responsibility{
			DecisionID:      decisionID,
			UserID:          user,
			BroughtTopic:    input.BroughtTopic,
			PushedExecution: input.PushedExecution,
			MainBurden:      input.MainBurden,
		}
		if err := database.DB.Create(&created).Error; err != nil {
			return nil, err
		}
	}

	return findResponsibility(database.DB, decisionID, user)
}

// CompareResponsibilities mirrors CompareAssessments for responsibility
// records, behind the same reveal gate.
func CompareResponsibilities(decisionID uint, user models.UserID) (*ResponsibilityComparison, error) {
	locked, err := BothLocked(decisionID)
	if err != nil {
		return nil, err
	}
	if !locked {
		return nil, Forbidden("Both assessments must be locked")
	}

	mine, err := findResponsibility(database.DB, decisionID, user)
	if err != nil {
		return nil, err
	}
	partner, err := findResponsibility(database.DB, decisionID, user.Partner())
	if err != nil {
		return nil, err
	}
	if mine == nil || partner == nil {
		return nil, NotFound("Both responsibilities must exist")
	}

	return &ResponsibilityComparison{Mine: mine, Partner: partner}, nil
}
