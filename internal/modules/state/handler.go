package state

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
	rg.GET("/states", h.List)
	rg.POST("/states", h.Create)
	rg.GET("/states/:state_id", h.Get)
	rg.PUT("/states/:state_id", h.Update)
	rg.DELETE("/states/:state_id", h.Delete)
}

// List returns every state.
// @Router /states [GET]
func (h *Handler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Entities(c, items)
}

// @Router /states/:state_id [GET]
func (h *Handler) Get(c *gin.Context) {
	st, err := h.svc.Get(c.Request.Context(), c.Param("state_id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Entity(c, http.StatusOK, st)
}

// Create stores a new state. The body must carry "name".
// @Router /states [POST]
func (h *Handler) Create(c *gin.Context) {
	body, err := request.BindObject(c)
	if err != nil {
		response.Fail(c, err)
		return
	}

	st, err := h.svc.Create(c.Request.Context(), body)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Entity(c, http.StatusCreated, st)
}

// @Router /states/:state_id [PUT]
func (h *Handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	st, err := h.svc.Get(ctx, c.Param("state_id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	body, err := request.BindObject(c)
	if err != nil {
		response.Fail(c, err)
		return
	}

	if err := h.svc.Update(ctx, st, body); err != nil {
		response.Fail(c, err)
		return
	}
	response.Entity(c, http.StatusOK, st)
}

// @Router /states/:state_id [DELETE]
func (h *Handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	st, err := h.svc.Get(ctx, c.Param("state_id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	if err := h.svc.Delete(ctx, st); err != nil {
		response.Fail(c, err)
		return
	}
	response.Empty(c)
}
