package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// handleStandingsWs streams standings and rank changes as they are published.
// Recently published messages are replayed on connect.
func (h *Handler) handleStandingsWs(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zap.S().Errorf("failed to upgrade websocket: %v", err)
		return
	}
	defer conn.Close()

	msgChan, unsubscribe := h.broker.Subscribe(StandingsTopic)
	defer unsubscribe()

	clientClosed := make(chan struct{})
	go func() {
		defer close(clientClosed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					zap.S().Infof("websocket unexpected close error: %v", err)
				}
				return
			}
		}
	}()

	for {
		select {
		case msg, ok := <-msgChan:
			if !ok {
				conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "scoreboard closed"))
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				zap.S().Warnf("error writing to websocket: %v", err)
				return
			}
		case <-clientClosed:
			return
		}
	}
}
