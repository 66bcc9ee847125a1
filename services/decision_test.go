package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbrudny/financial-decisions-retro/models"
)

func TestApprovePreservesPartnerFlag(t *testing.T) {
	setupTestDB(t)

	decision, err := CreateDecision(CreateDecisionInput{
		Name:            "Kitchen renovation",
		Period:          "2023",
		Context:         "The old one was falling apart",
		FinancialScale:  "60k",
		EmotionalImpact: "high",
	}, models.UserA)
	require.NoError(t, err)
	require.True(t, decision.ApprovedByA)
	require.False(t, decision.ApprovedByB)

	// The partner's approval must not clear the creator's flag; the flag
	// writes are per-column, never a full-row save.
	decision, err = ApproveDecision(decision.ID, models.UserB)
	require.NoError(t, err)
	assert.True(t, decision.ApprovedByA)
	assert.True(t, decision.ApprovedByB)
	assert.Equal(t, models.DecisionApproved, decision.Status)
}

func TestApproveIdempotentPerUser(t *testing.T) {
	setupTestDB(t)

	decision, err := CreateDecision(CreateDecisionInput{
		Name:            "Index fund switch",
		Period:          "2024",
		Context:         "Lower fees",
		FinancialScale:  "100k",
		EmotionalImpact: "low",
	}, models.UserA)
	require.NoError(t, err)

	// Re-approving as the same user neither toggles the flag nor
	// transitions the status.
	decision, err = ApproveDecision(decision.ID, models.UserA)
	require.NoError(t, err)
	assert.True(t, decision.ApprovedByA)
	assert.False(t, decision.ApprovedByB)
	assert.Equal(t, models.DecisionProposal, decision.Status)

	decision, err = ApproveDecision(decision.ID, models.UserB)
	require.NoError(t, err)
	assert.Equal(t, models.DecisionApproved, decision.Status)
}
