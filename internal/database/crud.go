package database

import (
	"github.com/ZJUSCT/CSBoard/internal/database/models"
	"gorm.io/gorm"
)

const submissionBatchSize = 500

// Run CRUD
func CreateRun(db *gorm.DB, run *models.Run) error {
	return db.Create(run).Error
}

func GetRun(db *gorm.DB, id string) (*models.Run, error) {
	var run models.Run
	if err := db.Where("id = ?", id).First(&run).Error; err != nil {
		return nil, err
	}
	return &run, nil
}

// Submission journal
func CreateSubmissions(db *gorm.DB, subs []models.Submission) error {
	if len(subs) == 0 {
		return nil
	}
	return db.CreateInBatches(subs, submissionBatchSize).Error
}

func GetSubmissionsByRun(db *gorm.DB, runID string) ([]models.Submission, error) {
	var subs []models.Submission
	if err := db.Where("run_id = ?", runID).Order("seq asc").Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

// GetTeamSubmissions returns a team's submissions in a run, newest first.
func GetTeamSubmissions(db *gorm.DB, runID, team string) ([]models.Submission, error) {
	var subs []models.Submission
	if err := db.Where("run_id = ? AND team = ?", runID, team).Order("seq desc").Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

// Standings
func CreateStandings(db *gorm.DB, s *models.Standings) error {
	return db.Create(s).Error
}

// GetLatestStandings returns the most recently archived board of a run.
func GetLatestStandings(db *gorm.DB, runID string) (*models.Standings, error) {
	var s models.Standings
	err := db.Preload("Rows", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("id asc")
	}).Where("run_id = ?", runID).Order("seq desc").First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Rank changes
func CreateRankChange(db *gorm.DB, c *models.RankChange) error {
	return db.Create(c).Error
}

func GetRankChanges(db *gorm.DB, runID string) ([]models.RankChange, error) {
	var changes []models.RankChange
	if err := db.Where("run_id = ?", runID).Order("seq asc").Find(&changes).Error; err != nil {
		return nil, err
	}
	return changes, nil
}
