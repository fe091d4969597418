package user

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
	rg.GET("/users", h.List)
	rg.POST("/users", h.Create)
	rg.GET("/users/:user_id", h.Get)
	rg.PUT("/users/:user_id", h.Update)
	rg.DELETE("/users/:user_id", h.Delete)
}

// @Router /users [GET]
func (h *Handler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Entities(c, items)
}

// @Router /users/:user_id [GET]
func (h *Handler) Get(c *gin.Context) {
	u, err := h.svc.Get(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Entity(c, http.StatusOK, u)
}

// Create registers a user. "email" and "password" are required; the
// password never appears in a response.
// @Router /users [POST]
func (h *Handler) Create(c *gin.Context) {
	body, err := request.BindObject(c)
	if err != nil {
		response.Fail(c, err)
		return
	}

	u, err := h.svc.Create(c.Request.Context(), body)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Entity(c, http.StatusCreated, u)
}

// @Router /users/:user_id [PUT]
func (h *Handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	u, err := h.svc.Get(ctx, c.Param("user_id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	body, err := request.BindObject(c)
	if err != nil {
		response.Fail(c, err)
		return
	}

	if err := h.svc.Update(ctx, u, body); err != nil {
		response.Fail(c, err)
		return
	}
	response.Entity(c, http.StatusOK, u)
}

// @Router /users/:user_id [DELETE]
func (h *Handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	u, err := h.svc.Get(ctx, c.Param("user_id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	if err := h.svc.Delete(ctx, u); err != nil {
		response.Fail(c, err)
		return
	}
	response.Empty(c)
}
