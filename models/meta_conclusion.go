package models

import "time"

type MetaConclusionType string

const (
	MetaBias    MetaConclusionType = "bias"
	MetaRule    MetaConclusionType = "rule"
	MetaRedFlag MetaConclusionType = "red_flag"
)

// MetaConclusion is a standalone lesson (bias, rule or red flag) not tied to
// any particular decision.
type MetaConclusion struct {
	ID          uint               `gorm:"primaryKey" json:"id"`
	Type        MetaConclusionType `gorm:"type:varchar(20);not null" json:"type"`
	Title       string             `gorm:"type:varchar(200);not null" json:"title"`
	Description string             `gorm:"type:varchar(2000);not null" json:"description"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}
