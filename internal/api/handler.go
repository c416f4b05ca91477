package api

import (
	"errors"
	"net/http"

	"github.com/ZJUSCT/CSBoard/internal/board"
	"github.com/ZJUSCT/CSBoard/internal/config"
	"github.com/ZJUSCT/CSBoard/internal/database"
	"github.com/ZJUSCT/CSBoard/internal/database/models"
	"github.com/ZJUSCT/CSBoard/internal/pubsub"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	cfg    *config.Config
	feed   *Feed
	broker *pubsub.Broker
	db     *gorm.DB
}

func NewHandler(cfg *config.Config, feed *Feed, broker *pubsub.Broker, db *gorm.DB) *Handler {
	return &Handler{cfg: cfg, feed: feed, broker: broker, db: db}
}

func (h *Handler) getStandings(c *gin.Context) {
	s, ok := h.feed.Standings()
	if !ok {
		Error(c, http.StatusNotFound, "no standings published yet")
		return
	}
	Success(c, gin.H{
		"contest":   h.cfg.Contest.Name,
		"standings": s,
	}, "Standings retrieved successfully")
}

func (h *Handler) getTeamStanding(c *gin.Context) {
	team := c.Param("team")
	row, ok := h.feed.Team(team)
	if !ok {
		Error(c, http.StatusNotFound, "team not found in published standings")
		return
	}
	Success(c, row, "Team standing retrieved successfully")
}

func (h *Handler) getReveal(c *gin.Context) {
	Success(c, h.feed.Reveal(), "Rank changes retrieved successfully")
}

func (h *Handler) getRun(c *gin.Context) {
	run, err := database.GetRun(h.db, c.Param("id"))
	if err != nil {
		h.dbError(c, err, "run not found")
		return
	}
	Success(c, run, "Run retrieved successfully")
}

func (h *Handler) getRunStandings(c *gin.Context) {
	s, err := database.GetLatestStandings(h.db, c.Param("id"))
	if err != nil {
		h.dbError(c, err, "no standings archived for this run")
		return
	}
	Success(c, s, "Standings retrieved successfully")
}

func (h *Handler) getRunChanges(c *gin.Context) {
	changes, err := database.GetRankChanges(h.db, c.Param("id"))
	if err != nil {
		h.dbError(c, err, "")
		return
	}
	Success(c, changes, "Rank changes retrieved successfully")
}

// getRunSubmissions serves the submission journal of a run, optionally for
// one team. It is only served once the run ended with nothing frozen.
func (h *Handler) getRunSubmissions(c *gin.Context) {
	runID := c.Param("id")
	latest, err := database.GetLatestStandings(h.db, runID)
	if err != nil {
		h.dbError(c, err, "no standings archived for this run")
		return
	}
	if latest.Reason != string(board.ReasonFinal) || latest.Phase == board.PhaseFrozen.String() {
		Error(c, http.StatusForbidden, "submissions are hidden until the run ends unfrozen")
		return
	}

	var subs []models.Submission
	if team := c.Query("team"); team != "" {
		subs, err = database.GetTeamSubmissions(h.db, runID, team)
	} else {
		subs, err = database.GetSubmissionsByRun(h.db, runID)
	}
	if err != nil {
		h.dbError(c, err, "")
		return
	}
	Success(c, subs, "Submissions retrieved successfully")
}

func (h *Handler) dbError(c *gin.Context, err error, notFound string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		Error(c, http.StatusNotFound, notFound)
		return
	}
	Error(c, http.StatusInternalServerError, err)
}
