package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/pbrudny/financial-decisions-retro/database"
	"github.com/pbrudny/financial-decisions-retro/models"
)

type UpdateConclusionInput struct {
	Text string `json:"text" binding:"required,max=5000"`
}

type CreateMetaConclusionInput struct {
	Type        models.MetaConclusionType `json:"type" binding:"required,oneof=bias rule red_flag"`
	Title       string                    `json:"title" binding:"required,max=200"`
	Description string                    `json:"description" binding:"required,max=2000"`
}

type UpdateMetaConclusionInput struct {
	Type        *models.MetaConclusionType `json:"type" binding:"omitempty,oneof=bias rule red_flag"`
	Title       *string                    `json:"title" binding:"omitempty,min=1,max=200"`
	Description *string                    `json:"description" binding:"omitempty,min=1,max=2000"`
}

// GetSharedConclusion returns the decision's shared conclusion, or nil when
// none has been written yet. Gated on both assessments being locked.
func GetSharedConclusion(decisionID uint) (*models.SharedConclusion, error) {
	if _, err := GetDecision(decisionID); err != nil {
		return nil, err
	}

	locked, err := BothLocked(decisionID)
	if err != nil {
		return nil, err
	}
	if !locked {
		return nil, Forbidden("Both assessments must be locked")
	}

	var conclusion models.SharedConclusion
	err = database.DB.Where("decision_id = ?", decisionID).First(&conclusion).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &conclusion, nil
}

// UpdateSharedConclusion upserts the single shared conclusion of a decision.
// There is no per-user ownership and no history; the latest text wins.
func UpdateSharedConclusion(decisionID uint, input UpdateConclusionInput) (*models.SharedConclusion, error) {
	if _, err := GetDecision(decisionID); err != nil {
		return nil, err
	}

	locked, err := BothLocked(decisionID)
	if err != nil {
		return nil, err
	}
	if !locked {
		return nil, Forbidden("Both assessments must be locked")
	}

	var conclusion models.SharedConclusion
	err = database.DB.Where("decision_id = ?", decisionID).First(&conclusion).Error
	switch {
	case err == nil:
		if err := database.DB.Model(&conclusion).Update("text", input.Text).Error; err != nil {
			return nil, err
		}
		conclusion.Text = input.Text
	case errors.Is(err, gorm.ErrRecordNotFound):
		conclusion = models.SharedConclusion{DecisionID: decisionID, Text: input.Text}
		if err := database.DB.Create(&conclusion).Error; err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	return &conclusion, nil
}

func ListMetaConclusions() ([]models.MetaConclusion, error) {
	conclusions := []models.MetaConclusion{}
	if err := database.DB.Order("created_at DESC, id DESC").Find(&conclusions).Error; err != nil {
		return nil, err
	}
	return conclusions, nil
}

func CreateMetaConclusion(input CreateMetaConclusionInput) (*models.MetaConclusion, error) {
	conclusion := models.MetaConclusion{
		Type:        input.Type,
		Title:       input.Title,
		Description: input.Description,
	}
	if err := database.DB.Create(&conclusion).Error; err != nil {
		return nil, err
	}
	return &conclusion, nil
}

// UpdateMetaConclusion is a partial patch: only supplied fields overwrite,
// the rest keep their prior value.
func UpdateMetaConclusion(id uint, input UpdateMetaConclusionInput) (*models.MetaConclusion, error) {
	var conclusion models.MetaConclusion
	if err := database.DB.First(&conclusion, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("Meta conclusion not found")
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Type != nil {
		updates["type"] = *input.Type
	}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if len(updates) > 0 {
		if err := database.DB.Model(&conclusion).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	if err := database.DB.First(&conclusion, id).Error; err != nil {
		return nil, err
	}
	return &conclusion, nil
}

func DeleteMetaConclusion(id uint) error {
	var conclusion models.MetaConclusion
	if err := database.DB.First(&conclusion, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFound("Meta conclusion not found")
		}
		return err
	}
	return database.DB.Delete(&conclusion).Error
}
