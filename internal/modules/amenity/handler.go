package amenity

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
	rg.GET("/amenities", h.List)
	rg.POST("/amenities", h.Create)
	rg.GET("/amenities/:amenity_id", h.Get)
	rg.PUT("/amenities/:amenity_id", h.Update)
	rg.DELETE("/amenities/:amenity_id", h.Delete)
}

// @Router /amenities [GET]
func (h *Handler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Entities(c, items)
}

// @Router /amenities/:amenity_id [GET]
func (h *Handler) Get(c *gin.Context) {
	a, err := h.svc.Get(c.Request.Context(), c.Param("amenity_id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Entity(c, http.StatusOK, a)
}

// @Router /amenities [POST]
func (h *Handler) Create(c *gin.Context) {
	body, err := request.BindObject(c)
	if err != nil {
		response.Fail(c, err)
		return
	}

	a, err := h.svc.Create(c.Request.Context(), body)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Entity(c, http.StatusCreated, a)
}

// @Router /amenities/:amenity_id [PUT]
func (h *Handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	a, err := h.svc.Get(ctx, c.Param("amenity_id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	body, err := request.BindObject(c)
	if err != nil {
		response.Fail(c, err)
		return
	}

	if err := h.svc.Update(ctx, a, body); err != nil {
		response.Fail(c, err)
		return
	}
	response.Entity(c, http.StatusOK, a)
}

// @Router /amenities/:amenity_id [DELETE]
func (h *Handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	a, err := h.svc.Get(ctx, c.Param("amenity_id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	if err := h.svc.Delete(ctx, a); err != nil {
		response.Fail(c, err)
		return
	}
	response.Empty(c)
}
