package api

import (
	"github.com/ZJUSCT/CSBoard/internal/config"
	"github.com/ZJUSCT/CSBoard/internal/pubsub"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NewRouter creates the read-only spectator API. Archive routes are only
// registered when db is non-nil.
func NewRouter(cfg *config.Config, feed *Feed, broker *pubsub.Broker, db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger())
	r.Use(CORSMiddleware(cfg.CORS))

	h := NewHandler(cfg, feed, broker, db)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/standings", h.getStandings)
		v1.GET("/standings/:team", h.getTeamStanding)
		v1.GET("/reveal", h.getReveal)
		v1.GET("/ws/standings", h.handleStandingsWs)

		if db != nil {
			runs := v1.Group("/runs/:id")
			{
				runs.GET("", h.getRun)
				runs.GET("/standings", h.getRunStandings)
				runs.GET("/changes", h.getRunChanges)
				runs.GET("/submissions", h.getRunSubmissions)
			}
		}
	}

	return r
}
