package database

import (
	"fmt"
	"strings"

	"github.com/ZJUSCT/CSBoard/internal/board"
	"github.com/ZJUSCT/CSBoard/internal/database/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Archive writes everything the scoreboard publishes to the database. It is
// an append-only record; nothing is read back into the board.
type Archive struct {
	db      *gorm.DB
	runID   string
	seq     int
	pending []models.Submission
}

func NewArchive(db *gorm.DB, contest string) (*Archive, error) {
	run := &models.Run{ID: uuid.New().String(), Contest: contest}
	if err := CreateRun(db, run); err != nil {
		return nil, fmt.Errorf("failed to create run: %w", err)
	}
	zap.S().Infof("archiving contest %q as run %s", contest, run.ID)
	return &Archive{db: db, runID: run.ID}, nil
}

func (a *Archive) RunID() string {
	return a.runID
}

func (a *Archive) next() int {
	a.seq++
	return a.seq
}

// OnSubmit buffers the submission; buffered rows are written with the next
// standings or on Close.
func (a *Archive) OnSubmit(team string, s board.Submission) {
	a.pending = append(a.pending, models.Submission{
		ID:      uuid.New().String(),
		RunID:   a.runID,
		Seq:     a.next(),
		Team:    team,
		Problem: board.ProblemName(s.Problem),
		Status:  s.Verdict.String(),
		Time:    s.Time,
	})
}

// OnStandings writes the buffered submissions and the board in one
// transaction, so an archived board never precedes its submissions.
func (a *Archive) OnStandings(s board.Standings) {
	record := &models.Standings{
		RunID:  a.runID,
		Seq:    a.next(),
		Reason: string(s.Reason),
		Phase:  s.Phase.String(),
		Rows:   make([]models.StandingsRow, len(s.Rows)),
	}
	for i, row := range s.Rows {
		record.Rows[i] = models.StandingsRow{
			Team:    row.Team,
			Rank:    row.Rank,
			Solved:  row.Solved,
			Penalty: row.Penalty,
			Cells:   strings.Join(row.Cells, " "),
		}
	}

	err := a.db.Transaction(func(tx *gorm.DB) error {
		if err := CreateSubmissions(tx, a.pending); err != nil {
			return fmt.Errorf("submissions: %w", err)
		}
		return CreateStandings(tx, record)
	})
	if err != nil {
		zap.S().Errorf("failed to archive %s standings: %v", s.Reason, err)
		return
	}
	a.pending = a.pending[:0]
}

func (a *Archive) OnRankChange(c board.RankChange) {
	record := &models.RankChange{
		RunID:    a.runID,
		Seq:      a.next(),
		Team:     c.Team,
		Replaced: c.Replaced,
		Solved:   c.Solved,
		Penalty:  c.Penalty,
	}
	if err := CreateRankChange(a.db, record); err != nil {
		zap.S().Errorf("failed to archive rank change %q: %v", c.String(), err)
	}
}

// Close writes any buffered submissions.
func (a *Archive) Close() error {
	if err := CreateSubmissions(a.db, a.pending); err != nil {
		return err
	}
	a.pending = a.pending[:0]
	return nil
}
