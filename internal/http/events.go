package http

import (
	"io"

	"github.com/gin-gonic/gin"
)

// streamEvents sends session events to the client as server-sent
// events. The presentation layer drives its overlays from this stream:
// scan_success shows the celebration, inactivity_prompt the win-back
// offer. The stream closes when the client disconnects.
func (h *Handler) streamEvents(c *gin.Context) {
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	events := h.sess.Events()
	clientGone := c.Request.Context().Done()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-clientGone:
			return false
		case e, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent(string(e.Type), e)
			return true
		}
	})
}
