package city

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
	rg.GET("/states/:state_id/cities", h.ListByState)
	rg.POST("/states/:state_id/cities", h.Create)
	rg.GET("/cities/:city_id", h.Get)
	rg.PUT("/cities/:city_id", h.Update)
	rg.DELETE("/cities/:city_id", h.Delete)
}

// ListByState returns the cities of one state.
// @Router /states/:state_id/cities [GET]
func (h *Handler) ListByState(c *gin.Context) {
	ctx := c.Request.Context()

	st, err := h.svc.State(ctx, c.Param("state_id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	items, err := h.svc.ListByState(ctx, st)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Entities(c, items)
}

// @Router /cities/:city_id [GET]
func (h *Handler) Get(c *gin.Context) {
	city, err := h.svc.Get(c.Request.Context(), c.Param("city_id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Entity(c, http.StatusOK, city)
}

// Create stores a city under the state in the path. The body must carry "name".
// @Router /states/:state_id/cities [POST]
func (h *Handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	st, err := h.svc.State(ctx, c.Param("state_id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	body, err := request.BindObject(c)
	if err != nil {
		response.Fail(c, err)
		return
	}

	city, err := h.svc.Create(ctx, st, body)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Entity(c, http.StatusCreated, city)
}

// @Router /cities/:city_id [PUT]
func (h *Handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	city, err := h.svc.Get(ctx, c.Param("city_id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	body, err := request.BindObject(c)
	if err != nil {
		response.Fail(c, err)
		return
	}

	if err := h.svc.Update(ctx, city, body); err != nil {
		response.Fail(c, err)
		return
	}
	response.Entity(c, http.StatusOK, city)
}

// @Router /cities/:city_id [DELETE]
func (h *Handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	city, err := h.svc.Get(ctx, c.Param("city_id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	if err := h.svc.Delete(ctx, city); err != nil {
		response.Fail(c, err)
		return
	}
	response.Empty(c)
}
