// Package progress simulates long-running generation jobs over WebSocket.
// Each connection gets one scripted replay: initializing, the workflow's
// processing steps separated by a fixed delay, then a completed event with a
// synthesized result URL. Client disconnects end the replay quietly.
package progress

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"vidgencraft-mock-backend/internal/locator"
)

const closeGracePeriod = time.Second

type Simulator struct {
	locator  *locator.Generator
	delay    time.Duration
	logger   zerolog.Logger
	upgrader websocket.Upgrader
}

// NewSimulator builds a simulator replaying scripts with the given inter-stage
// delay. The upgrader accepts any origin; this is a dev-only mock.
func NewSimulator(loc *locator.Generator, delay time.Duration, logger zerolog.Logger) *Simulator {
	return &Simulator{
		locator: loc,
		delay:   delay,
		logger:  logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// Handler upgrades the request and replays script over the connection.
func (s *Simulator) Handler(script Script) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			// Upgrade already wrote an HTTP error to the client.
			s.logger.Warn().Err(err).Str("path", c.Request.URL.Path).Msg("websocket upgrade failed")
			return
		}
		s.Run(c.Request.Context(), conn, script, c.Param("user_email"))
	}
}

// Run replays script over conn. It returns on normal completion or client
// disconnect; conn is closed on every exit path.
func (s *Simulator) Run(ctx context.Context, conn *websocket.Conn, script Script, userEmail string) {
	defer conn.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// The client sends no application data, so the read pump unblocking
	// means the peer closed the connection.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	resultID := s.locator.NewID()
	events := script.render(resultID, s.locator)

	for i, ev := range events {
		if i > 0 && !s.pause(ctx) {
			s.logger.Debug().Str("user", userEmail).Str("workflow", script.Workflow).Msg("client disconnected mid-stream")
			return
		}
		if err := conn.WriteJSON(ev); err != nil {
			s.logger.Debug().Err(err).Str("user", userEmail).Str("workflow", script.Workflow).Msg("client disconnected")
			return
		}
	}

	s.logger.Debug().Str("user", userEmail).Str("workflow", script.Workflow).Msg("stream completed")
	closeMsg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	_ = conn.WriteControl(websocket.CloseMessage, closeMsg, time.Now().Add(closeGracePeriod))
}

// pause waits out the inter-stage delay, returning false if the connection
// was cancelled first.
func (s *Simulator) pause(ctx context.Context) bool {
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
