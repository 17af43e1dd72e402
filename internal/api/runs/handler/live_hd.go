package runsHandler

import (
	"RentalCopilot/pkg/log"
	"time"

	"github.com/gofiber/websocket/v2"
)

const (
	liveWriteTimeout = 5 * time.Second
	liveIdleTimeout  = 2 * time.Minute
)

// LiveTrace streams pipeline events for a run over a websocket. The
// connection closes once the run finishes or after the idle timeout.
func (h *RunsHandler) LiveTrace(c *websocket.Conn) {
	runID := c.Params("id")
	if runID == "" {
		_ = c.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "run ID is required"),
			time.Now().Add(liveWriteTimeout))
		_ = c.Close()
		return
	}

	events, cancel := h.stream.Subscribe(runID)
	defer cancel()
	defer c.Close()

	h.log.WithFields(log.Fields{
		"run_id": runID,
	}).Debug("Live trace subscriber connected")

	idle := time.NewTimer(liveIdleTimeout)
	defer idle.Stop()

	for {
		select {
		case event, open := <-events:
			if !open {
				_ = c.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "run finished"),
					time.Now().Add(liveWriteTimeout))
				return
			}

			_ = c.SetWriteDeadline(time.Now().Add(liveWriteTimeout))
			if err := c.WriteJSON(event); err != nil {
				h.log.WithFields(log.Fields{
					"run_id": runID,
					"error":  err.Error(),
				}).Debug("Live trace subscriber dropped")
				return
			}

			if !idle.Stop() {
				<-idle.C
			}
			idle.Reset(liveIdleTimeout)

		case <-idle.C:
			_ = c.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, "idle timeout"),
				time.Now().Add(liveWriteTimeout))
			return
		}
	}
}
