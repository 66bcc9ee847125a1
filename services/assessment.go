package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/pbrudny/financial-decisions-retro/database"
	"github.com/pbrudny/financial-decisions-retro/models"
)

type AssessmentItemInput struct {
	Type      models.AssessmentItemType `json:"type" binding:"required,oneof=pro con"`
	Text      string                    `json:"text" binding:"required,max=500"`
	SortOrder int                       `json:"sort_order" binding:"min=0"`
}

type UpdateAssessmentInput struct {
	Rating             *int                  `json:"rating" binding:"omitempty,min=1,max=5"`
	WouldDoAgain       *bool                 `json:"would_do_again"`
	BiggestIgnoredRisk *string               `json:"biggest_ignored_risk" binding:"omitempty,max=1000"`
	Items              []AssessmentItemInput `json:"items" binding:"dive"`
}

type AssessmentLockStatus struct {
	ALocked bool `json:"a_locked"`
	BLocked bool `json:"b_locked"`
}

type AssessmentComparison struct {
	Mine    *models.Assessment `json:"mine"`
	Partner *models.Assessment `json:"partner"`
}

func findAssessment(tx *gorm.DB, decisionID uint, user models.UserID) (*models.Assessment, error) {
	var assessment models.Assessment
	err := tx.Where("decision_id = ? AND user_id = ?", decisionID, user).First(&assessment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &assessment, nil
}

func findAssessmentWithItems(decisionID uint, user models.UserID) (*models.Assessment, error) {
	var assessment models.Assessment
	err := database.DB.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order") }).
		Where("decision_id = ? AND user_id = ?", decisionID, user).
		First(&assessment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if assessment.Items == nil {
		assessment.Items = []models.AssessmentItem{}
	}
	return &assessment, nil
}

// GetMyAssessment returns the caller's assessment with its items, or nil when
// none exists yet.
func GetMyAssessment(decisionID uint, user models.UserID) (*models.Assessment, error) {
	if _, err := GetDecision(decisionID); err != nil {
		return nil, err
	}
	return findAssessmentWithItems(decisionID, user)
}

// UpdateMyAssessment upserts the caller's assessment and replaces its item
// list wholesale. The delete and reinsert happen in one transaction so a
// concurrent reader never observes a half-empty list.
func UpdateMyAssessment(decisionID uint, user models.UserID, input UpdateAssessmentInput) (*models.Assessment, error) {
	decision, err := GetDecision(decisionID)
	if err != nil {
		return nil, err
	}
	if decision.Status != models.DecisionApproved {
		return nil, InvalidState("Decision must be approved")
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		existing, err := findAssessment(tx, decisionID, user)
		if err != nil {
			return err
		}

		var assessmentID uint
		if existing != nil {
			// Conditional on status so the update takes the row lock and
			// cannot interleave with a concurrent lock transition.
			updates := map[string]interface{}{
				"rating":               input.Rating,
				"would_do_again":       input.WouldDoAgain,
				"biggest_ignored_risk": input.BiggestIgnoredRisk,
			}
			res := tx.Model(&models.Assessment{}).
				Where("id = ? AND status = ?", existing.ID, models.AssessmentEditable).
				Updates(updates)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return Forbidden("Assessment is locked")
			}
			assessmentID = existing.ID
		} else {
			created := models.Assessment{
				DecisionID:         decisionID,
				UserID:             user,
				Rating:             input.Rating,
				WouldDoAgain:       input.WouldDoAgain,
				BiggestIgnoredRisk: input.BiggestIgnoredRisk,
				Status:             models.AssessmentEditable,
			}
			if err := tx.Create(&created).Error; err != nil {
				return err
			}
			assessmentID = created.ID
		}

		// Replace all items
		if err := tx.Where("assessment_id = ?", assessmentID).Delete(&models.AssessmentItem{}).Error; err != nil {
			return err
		}
		if len(input.Items) > 0 {
			items := make([]models.AssessmentItem, 0, len(input.Items))
			for _, item := range input.Items {
				items = append(items, models.AssessmentItem{
					AssessmentID: assessmentID,
					Type:         item.Type,
					Text:         item.Text,
					SortOrder:    item.SortOrder,
				})
			}
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return findAssessmentWithItems(decisionID, user)
}

// LockMyAssessment runs the completeness check and irreversibly locks the
// caller's assessment. All failing conditions are collected and reported in
// one message rather than one at a time. The check and the transition are one
// transaction: the conditional status update runs first and takes the row
// lock, so concurrent edits land fully before or fully after it, and a failed
// check rolls the transition back.
func LockMyAssessment(decisionID uint, user models.UserID) error {
	if _, err := GetDecision(decisionID); err != nil {
		return err
	}

	return database.DB.Transaction(func(tx *gorm.DB) error {
		assessment, err := findAssessment(tx, decisionID, user)
		if err != nil {
			return err
		}
		if assessment == nil {
			return NotFound("Fill in the assessment first")
		}

		res := tx.Model(assessment).
			Where("status = ?", models.AssessmentEditable).
			Update("status", models.AssessmentLocked)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return InvalidState("Assessment is already locked")
		}

		var current models.Assessment
		if err := tx.Preload("Items").First(&current, assessment.ID).Error; err != nil {
			return err
		}

		pros, cons := 0, 0
		for _, item := range current.Items {
			if item.Type == models.ItemPro {
				pros++
			} else {
				cons++
			}
		}

		responsibility, err := findResponsibility(tx, decisionID, user)
		if err != nil {
			return err
		}

		var reasons []string
		if current.Rating == nil {
			reasons = append(reasons, "Rating is required")
		}
		if current.WouldDoAgain == nil {
			reasons = append(reasons, "Answer to \"would you do it again\" is required")
		}
		if current.BiggestIgnoredRisk == nil || *current.BiggestIgnoredRisk == "" {
			reasons = append(reasons, "Biggest ignored risk is required")
		}
		if pros == 0 {
			reasons = append(reasons, "At least one pro is required")
		}
		if cons == 0 {
			reasons = append(reasons, "At least one con is required")
		}
		if responsibility == nil || !responsibility.Complete() {
			reasons = append(reasons, "Responsibility section must be completed")
		}
		if len(reasons) > 0 {
			return InvalidState(strings.Join(reasons, "; "))
		}
		return nil
	})
}

// GetAssessmentStatus reports whether each party's assessment is locked,
// independent of who asks.
func GetAssessmentStatus(decisionID uint) (*AssessmentLockStatus, error) {
	if _, err := GetDecision(decisionID); err != nil {
		return nil, err
	}

	a, err := findAssessment(database.DB, decisionID, models.UserA)
	if err != nil {
		return nil, err
	}
	b, err := findAssessment(database.DB, decisionID, models.UserB)
	if err != nil {
		return nil, err
	}

	return &AssessmentLockStatus{
		ALocked: a != nil && a.Status == models.AssessmentLocked,
		BLocked: b != nil && b.Status == models.AssessmentLocked,
	}, nil
}

// BothLocked is the reveal gate: partner data stays invisible until both
// assessments exist and are locked. It is re-evaluated on every call, never
// cached, since either party may still be editing.
func BothLocked(decisionID uint) (bool, error) {
	status, err := GetAssessmentStatus(decisionID)
	if err != nil {
		return false, err
	}
	return status.ALocked && status.BLocked, nil
}

// CompareAssessments builds the caller-relative mine/partner view. Requires
// the reveal gate to pass.
func CompareAssessments(decisionID uint, user models.UserID) (*AssessmentComparison, error) {
	locked, err := BothLocked(decisionID)
	if err != nil {
		return nil, err
	}
	if !locked {
		return nil, Forbidden("Both assessments must be locked")
	}

	mine, err := findAssessmentWithItems(decisionID, user)
	if err != nil {
		return nil, err
	}
	partner, err := findAssessmentWithItems(decisionID, user.Partner())
	if err != nil {
		return nil, err
	}
	if mine == nil || partner == nil {
		return nil, NotFound("Both assessments must exist")
	}

	return &AssessmentComparison{Mine: mine, Partner: partner}, nil
}
