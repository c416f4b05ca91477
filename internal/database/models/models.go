package models

import (
	"time"
)

// Run is one process lifetime of the scoreboard. Archived data is grouped by run.
type Run struct {
	ID        string `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time
	Contest   string `json:"contest"`
}

type Submission struct {
	ID        string `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time

	RunID   string `gorm:"index" json:"run_id"`
	Seq     int    `json:"seq"`
	Team    string `gorm:"index" json:"team"`
	Problem string `json:"problem"`
	Status  string `json:"status"`
	Time    int    `json:"time"`
}

// Standings is a published board (flush, both halves of a scroll, or final).
type Standings struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time

	RunID  string         `gorm:"index" json:"run_id"`
	Seq    int            `json:"seq"`
	Reason string         `json:"reason"`
	Phase  string         `json:"phase"`
	Rows   []StandingsRow `gorm:"foreignKey:StandingsID;constraint:OnDelete:CASCADE" json:"rows"`
}

type StandingsRow struct {
	ID          uint   `gorm:"primaryKey" json:"-"`
	StandingsID uint   `gorm:"index" json:"-"`
	Team        string `json:"team"`
	Rank        int    `json:"rank"`
	Solved      int    `json:"solved"`
	Penalty     int    `json:"penalty"`
	Cells       string `json:"cells"` // space separated, as printed
}

type RankChange struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time

	RunID    string `gorm:"index" json:"run_id"`
	Seq      int    `json:"seq"`
	Team     string `json:"team"`
	Replaced string `json:"replaced"`
	Solved   int    `json:"solved"`
	Penalty  int    `json:"penalty"`
}
