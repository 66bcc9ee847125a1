package services

import (
	"time"

	"github.com/pbrudny/financial-decisions-retro/database"
	"github.com/pbrudny/financial-decisions-retro/models"
)

type GlobalStatus struct {
	TotalDecisions    int64      `json:"total_decisions"`
	ApprovedDecisions int64      `json:"approved_decisions"`
	ClosedDecisions   int64      `json:"closed_decisions"`
	PartnerLastSeen   *time.Time `json:"partner_last_seen"`
}

type RatingCount struct {
	Rating int   `json:"rating"`
	Count  int64 `json:"count"`
}

type WouldDoAgainCount struct {
	WouldDoAgain bool  `json:"would_do_again"`
	Count        int64 `json:"count"`
}

type RatingDiff struct {
	Name    string `json:"name"`
	RatingA int    `json:"rating_a"`
	RatingB int    `json:"rating_b"`
	Diff    int    `json:"diff"`
}

type MetaTypeCount struct {
	Type  models.MetaConclusionType `json:"type"`
	Count int64                     `json:"count"`
}

type DashboardStats struct {
	TotalDecisions    int64               `json:"total_decisions"`
	ApprovedDecisions int64               `json:"approved_decisions"`
	Ratings           []RatingCount       `json:"ratings"`
	WouldDoAgain      []WouldDoAgainCount `json:"would_do_again"`
	RatingDiffs       []RatingDiff        `json:"rating_diffs"`
	MetaCounts        []MetaTypeCount     `json:"meta_counts"`
}

// GetGlobalStatus returns decision counts and the partner's last-seen time,
// marking the caller as seen as a side effect of the poll.
func GetGlobalStatus(user models.UserID) (*GlobalStatus, error) {
	MarkSeen(user)

	out := GlobalStatus{PartnerLastSeen: PartnerLastSeen(user)}
	db := database.DB.Model(&models.Decision{})

	if err := db.Count(&out.TotalDecisions).Error; err != nil {
		return nil, err
	}
	if err := database.DB.Model(&models.Decision{}).
		Where("status = ?", models.DecisionApproved).Count(&out.ApprovedDecisions).Error; err != nil {
		return nil, err
	}
	if err := database.DB.Model(&models.Decision{}).
		Where("status = ?", models.DecisionClosed).Count(&out.ClosedDecisions).Error; err != nil {
		return nil, err
	}

	return &out, nil
}

// GetDashboardStats aggregates rating distributions, repeat-intent counts,
// per-decision rating gaps for fully locked decisions, and meta-conclusion
// counts by type.
func GetDashboardStats() (*DashboardStats, error) {
	stats := DashboardStats{
		Ratings:      []RatingCount{},
		WouldDoAgain: []WouldDoAgainCount{},
		RatingDiffs:  []RatingDiff{},
		MetaCounts:   []MetaTypeCount{},
	}

	if err := database.DB.Model(&models.Decision{}).Count(&stats.TotalDecisions).Error; err != nil {
		return nil, err
	}
	if err := database.DB.Model(&models.Decision{}).
		Where("status IN ?", []models.DecisionStatus{models.DecisionApproved, models.DecisionClosed}).
		Count(&stats.ApprovedDecisions).Error; err != nil {
		return nil, err
	}

	if err := database.DB.Model(&models.Assessment{}).
		Select("rating, count(*) AS count").
		Where("rating IS NOT NULL").
		Group("rating").Order("rating").
		Scan(&stats.Ratings).Error; err != nil {
		return nil, err
	}

	if err := database.DB.Model(&models.Assessment{}).
		Select("would_do_again, count(*) AS count").
		Where("would_do_again IS NOT NULL").
		Group("would_do_again").
		Scan(&stats.WouldDoAgain).Error; err != nil {
		return nil, err
	}

	var pairs []struct {
		Name    string
		RatingA *int
		RatingB *int
	}
	if err := database.DB.Table("decisions").
		Select("decisions.name, a1.rating AS rating_a, a2.rating AS rating_b").
		Joins("JOIN assessments a1 ON a1.decision_id = decisions.id AND a1.user_id = ? AND a1.status = ?", models.UserA, models.AssessmentLocked).
		Joins("JOIN assessments a2 ON a2.decision_id = decisions.id AND a2.user_id = ? AND a2.status = ?", models.UserB, models.AssessmentLocked).
		Scan(&pairs).Error; err != nil {
		return nil, err
	}
	for _, p := range pairs {
		if p.RatingA == nil || p.RatingB == nil {
			continue
		}
		diff := *p.RatingA - *p.RatingB
		if diff < 0 {
			diff = -diff
		}
		stats.RatingDiffs = append(stats.RatingDiffs, RatingDiff{
			Name:    p.Name,
			RatingA: *p.RatingA,
			RatingB: *p.RatingB,
			Diff:    diff,
		})
	}

	if err := database.DB.Model(&models.MetaConclusion{}).
		Select("type, count(*) AS count").
		Group("type").
		Scan(&stats.MetaCounts).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}
