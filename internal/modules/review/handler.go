package review

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hbnb/internal/pkg/request"
	"hbnb/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/places/:place_id/reviews", h.ListByPlace)
	rg.POST("/places/:place_id/reviews", h.Create)
	rg.GET("/reviews/:review_id", h.Get)
	rg.PUT("/reviews/:review_id", h.Update)
	rg.DELETE("/reviews/:review_id", h.Delete)
}

// ListByPlace returns the reviews of one place.
// @Router /places/:place_id/reviews [GET]
func (h *Handler) ListByPlace(c *gin.Context) {
	ctx := c.Request.Context()

	p, err := h.svc.Place(ctx, c.Param("place_id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	items, err := h.svc.ListByPlace(ctx, p)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Entities(c, items)
}

// @Router /reviews/:review_id [GET]
func (h *Handler) Get(c *gin.Context) {
	rv, err := h.svc.Get(c.Request.Context(), c.Param("review_id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Entity(c, http.StatusOK, rv)
}

// Create writes a review of the place in the path. The body must carry
// "user_id" naming an existing user, and "text".
// @Router /places/:place_id/reviews [POST]
func (h *Handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	p, err := h.svc.Place(ctx, c.Param("place_id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	body, err := request.BindObject(c)
	if err != nil {
		response.Fail(c, err)
		return
	}

	rv, err := h.svc.Create(ctx, p, body)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Entity(c, http.StatusCreated, rv)
}

// @Router /reviews/:review_id [PUT]
func (h *Handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	rv, err := h.svc.Get(ctx, c.Param("review_id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	body, err := request.BindObject(c)
	if err != nil {
		response.Fail(c, err)
		return
	}

	if err := h.svc.Update(ctx, rv, body); err != nil {
		response.Fail(c, err)
		return
	}
	response.Entity(c, http.StatusOK, rv)
}

// @Router /reviews/:review_id [DELETE]
func (h *Handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	rv, err := h.svc.Get(ctx, c.Param("review_id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	if err := h.svc.Delete(ctx, rv); err != nil {
		response.Fail(c, err)
		return
	}
	response.Empty(c)
}
