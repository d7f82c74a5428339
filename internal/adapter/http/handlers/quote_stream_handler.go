package handlers

import (
	"io"
	"time"

	response "quickquote/internal/adapter/http/dto/response"
	"quickquote/internal/usecase"

	"github.com/gin-gonic/gin"
)

const eventQuotes = "quotes"

// StreamQuotes godoc
// @Summary      Live listing as Server-Sent Events
// @Description  Every "quotes" event carries the full filtered and sorted set.
// @Tags         quotes
// @Produce      text/event-stream
// @Param        search  query  string  false  "customer name or quote id"
// @Param        sort    query  string  false  "date or price"
// @Success      200
// @Router       /quotes/stream [get]
func (h *QuoteHandler) StreamQuotes(c *gin.Context) {
	key, err := usecase.ParseQuoteSortKey(c.Query("sort"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	search := c.Query("search")

	ctx := c.Request.Context()
	feed, err := usecase.NewQuoteFeed(ctx, h.usecase.Subscribe)
	if err != nil {
		abortWithError(c, err)
		return
	}
	defer feed.Close()

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	heartbeat := time.NewTicker(h.heartbeat)
	defer heartbeat.Stop()

	h.log.Debug().Str("search", search).Str("sort", string(key)).Msg("[quotes][handler] stream opened")
	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case <-feed.Updates():
			c.SSEvent(eventQuotes, response.FromQuotes(feed.View(search, key)))
			return true
		case <-heartbeat.C:
			_, err := io.WriteString(w, ": ping\n\n")
			return err == nil
		}
	})
	h.log.Debug().Msg("[quotes][handler] stream closed")
}
