package services

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/pbrudny/financial-decisions-retro/database"
	"github.com/pbrudny/financial-decisions-retro/models"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.DB = db
}

func intPtr(v int) *int { return &v }

func boolPtr(v bool) *bool { return &v }

func strPtr(v string) *string { return &v }

func burdenPtr(v models.BurdenOption) *models.BurdenOption { return &v }

func approvedDecision(t *testing.T) uint {
	t.Helper()
	decision, err := CreateDecision(CreateDecisionInput{
		Name:            "Stock purchase",
		Period:          "2024",
		Context:         "Tech stocks after a dip",
		FinancialScale:  "20k",
		EmotionalImpact: "medium",
	}, models.UserA)
	require.NoError(t, err)
	decision, err = ApproveDecision(decision.ID, models.UserB)
	require.NoError(t, err)
	require.Equal(t, models.DecisionApproved, decision.Status)
	return decision.ID
}

func completeInput() UpdateAssessmentInput {
	return UpdateAssessmentInput{
		Rating:             intPtr(4),
		WouldDoAgain:       boolPtr(true),
		BiggestIgnoredRisk: strPtr("market drop"),
		Items: []AssessmentItemInput{
			{Type: models.ItemPro, Text: "good return", SortOrder: 0},
			{Type: models.ItemCon, Text: "high risk", SortOrder: 0},
		},
	}
}

func fillAndLock(t *testing.T, decisionID uint, user models.UserID) {
	t.Helper()
	_, err := UpdateMyAssessment(decisionID, user, completeInput())
	require.NoError(t, err)
	_, err = UpdateMyResponsibility(decisionID, user, UpdateResponsibilityInput{
		BroughtTopic:    burdenPtr(models.BurdenMe),
		PushedExecution: burdenPtr(models.BurdenBoth),
		MainBurden:      burdenPtr(models.BurdenPartner),
	})
	require.NoError(t, err)
	require.NoError(t, LockMyAssessment(decisionID, user))
}

func TestDecisionStatusIsMonotonic(t *testing.T) {
	setupTestDB(t)
	id := approvedDecision(t)

	// approved cannot go back to proposal via approve
	_, err := ApproveDecision(id, models.UserA)
	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "invalid_state", appErr.Code)

	decision, err := CloseDecision(id)
	require.NoError(t, err)
	assert.Equal(t, models.DecisionClosed, decision.Status)

	_, err = CloseDecision(id)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "invalid_state", appErr.Code)
}

func TestLockReasonsAggregated(t *testing.T) {
	setupTestDB(t)
	id := approvedDecision(t)

	_, err := UpdateMyAssessment(id, models.UserA, UpdateAssessmentInput{})
	require.NoError(t, err)

	err = LockMyAssessment(id, models.UserA)
	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "invalid_state", appErr.Code)

	reasons := strings.Split(appErr.Message, "; ")
	require.Len(t, reasons, 6)
	assert.Equal(t, "Rating is required", reasons[0])
	assert.Equal(t, "Responsibility section must be completed", reasons[5])

	// Assessment stays editable after a failed lock.
	assessment, err := GetMyAssessment(id, models.UserA)
	require.NoError(t, err)
	assert.Equal(t, models.AssessmentEditable, assessment.Status)
}

func TestLockFailsOnAnySingleMissingCondition(t *testing.T) {
	setupTestDB(t)

	mutations := map[string]func(*UpdateAssessmentInput){
		"rating":         func(in *UpdateAssessmentInput) { in.Rating = nil },
		"would_do_again": func(in *UpdateAssessmentInput) { in.WouldDoAgain = nil },
		"risk":           func(in *UpdateAssessmentInput) { in.BiggestIgnoredRisk = nil },
		"pros":           func(in *UpdateAssessmentInput) { in.Items = in.Items[1:] },
		"cons":           func(in *UpdateAssessmentInput) { in.Items = in.Items[:1] },
	}

	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			id := approvedDecision(t)
			input := completeInput()
			mutate(&input)

			_, err := UpdateMyAssessment(id, models.UserA, input)
			require.NoError(t, err)
			_, err = UpdateMyResponsibility(id, models.UserA, UpdateResponsibilityInput{
				BroughtTopic:    burdenPtr(models.BurdenMe),
				PushedExecution: burdenPtr(models.BurdenBoth),
				MainBurden:      burdenPtr(models.BurdenPartner),
			})
			require.NoError(t, err)

			err = LockMyAssessment(id, models.UserA)
			var appErr *AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "invalid_state", appErr.Code)
			assert.NotContains(t, appErr.Message, ";")
		})
	}
}

func TestRevealGateIsConjunctionOfBothLocks(t *testing.T) {
	setupTestDB(t)

	check := func(t *testing.T, id uint, want bool) {
		t.Helper()
		locked, err := BothLocked(id)
		require.NoError(t, err)
		assert.Equal(t, want, locked)

		_, err = CompareAssessments(id, models.UserA)
		if want {
			assert.NoError(t, err)
		} else {
			var appErr *AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "forbidden", appErr.Code)
		}
	}

	t.Run("neither", func(t *testing.T) {
		id := approvedDecision(t)
		check(t, id, false)
	})
	t.Run("only A", func(t *testing.T) {
		id := approvedDecision(t)
		fillAndLock(t, id, models.UserA)
		check(t, id, false)
	})
	t.Run("only B", func(t *testing.T) {
		id := approvedDecision(t)
		fillAndLock(t, id, models.UserB)
		check(t, id, false)
	})
	t.Run("both", func(t *testing.T) {
		id := approvedDecision(t)
		fillAndLock(t, id, models.UserA)
		fillAndLock(t, id, models.UserB)
		check(t, id, true)
	})
}

func TestLockedAssessmentIsImmutable(t *testing.T) {
	setupTestDB(t)
	id := approvedDecision(t)
	fillAndLock(t, id, models.UserA)

	_, err := UpdateMyAssessment(id, models.UserA, completeInput())
	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "forbidden", appErr.Code)

	_, err = UpdateMyResponsibility(id, models.UserA, UpdateResponsibilityInput{})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "forbidden", appErr.Code)

	err = LockMyAssessment(id, models.UserA)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "invalid_state", appErr.Code)
}

func TestRejectedEditLeavesLockedFieldsUntouched(t *testing.T) {
	setupTestDB(t)
	id := approvedDecision(t)
	fillAndLock(t, id, models.UserA)

	// A rejected post-lock edit must not wipe the item list or null out
	// fields; the field update and item replacement stand or fall together.
	_, err := UpdateMyAssessment(id, models.UserA, UpdateAssessmentInput{})
	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "forbidden", appErr.Code)

	assessment, err := GetMyAssessment(id, models.UserA)
	require.NoError(t, err)
	assert.Equal(t, models.AssessmentLocked, assessment.Status)
	require.NotNil(t, assessment.Rating)
	assert.Equal(t, 4, *assessment.Rating)
	assert.Len(t, assessment.Items, 2)
}

func TestFailedLockRollsBackTransition(t *testing.T) {
	setupTestDB(t)
	id := approvedDecision(t)

	input := completeInput()
	input.Rating = nil
	_, err := UpdateMyAssessment(id, models.UserA, input)
	require.NoError(t, err)

	err = LockMyAssessment(id, models.UserA)
	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "invalid_state", appErr.Code)

	// The transition rolled back with the failed check, so the assessment
	// is still editable and a later complete lock goes through.
	_, err = UpdateMyAssessment(id, models.UserA, completeInput())
	require.NoError(t, err)
	_, err = UpdateMyResponsibility(id, models.UserA, UpdateResponsibilityInput{
		BroughtTopic:    burdenPtr(models.BurdenMe),
		PushedExecution: burdenPtr(models.BurdenBoth),
		MainBurden:      burdenPtr(models.BurdenPartner),
	})
	require.NoError(t, err)
	require.NoError(t, LockMyAssessment(id, models.UserA))
}
