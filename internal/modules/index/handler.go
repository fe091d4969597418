// Package index serves the API health and object-count endpoints.
package index

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"hbnb/internal/domain"
	"hbnb/internal/pkg/response"
)

// Counter is the part of the storage gateway the stats endpoint needs.
type Counter interface {
	Count(ctx context.Context, kind domain.Kind) (int64, error)
}

// statsKeys maps each kind to its key in the stats body.
var statsKeys = map[domain.Kind]string{
	domain.KindAmenity: "amenities",
	domain.KindCity:    "cities",
	domain.KindPlace:   "places",
	domain.KindReview:  "reviews",
	domain.KindState:   "states",
	domain.KindUser:    "users",
}

type Handler struct {
	counter Counter
}

func NewHandler(counter Counter) *Handler {
	return &Handler{counter: counter}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/status", h.Status)
	rg.GET("/stats", h.Stats)
}

// @Router /status [GET]
func (h *Handler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

// Stats returns the number of stored objects of each kind.
// @Router /stats [GET]
func (h *Handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	out := make(map[string]int64, len(statsKeys))
	for _, kind := range domain.Kinds {
		n, err := h.counter.Count(ctx, kind)
		if err != nil {
			response.Fail(c, err)
			return
		}
		out[statsKeys[kind]] = n
	}
	c.JSON(http.StatusOK, out)
}
