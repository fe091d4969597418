package place

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hbnb/internal/domain"
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
	rg.GET("/cities/:city_id/places", h.ListByCity)
	rg.POST("/cities/:city_id/places", h.Create)
	rg.GET("/places/:place_id", h.Get)
	rg.PUT("/places/:place_id", h.Update)
	rg.DELETE("/places/:place_id", h.Delete)
	rg.POST("/places_search", h.Search)

	rg.GET("/places/:place_id/amenities", h.ListAmenities)
	rg.POST("/places/:place_id/amenities/:amenity_id", h.LinkAmenity)
	rg.DELETE("/places/:place_id/amenities/:amenity_id", h.UnlinkAmenity)
}

// @Router /cities/:city_id/places [GET]
func (h *Handler) ListByCity(c *gin.Context) {
	ctx := c.Request.Context()

	city, err := h.svc.City(ctx, c.Param("city_id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	items, err := h.svc.ListByCity(ctx, city)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Entities(c, items)
}

// @Router /places/:place_id [GET]
func (h *Handler) Get(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context(), c.Param("place_id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Entity(c, http.StatusOK, p)
}

// Create stores a place in the city from the path. The body must carry
// "user_id" naming an existing user, and "name".
// @Router /cities/:city_id/places [POST]
func (h *Handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	city, err := h.svc.City(ctx, c.Param("city_id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	body, err := request.BindObject(c)
	if err != nil {
		response.Fail(c, err)
		return
	}

	p, err := h.svc.Create(ctx, city, body)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Entity(c, http.StatusCreated, p)
}

// @Router /places/:place_id [PUT]
func (h *Handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	p, err := h.svc.Get(ctx, c.Param("place_id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	body, err := request.BindObject(c)
	if err != nil {
		response.Fail(c, err)
		return
	}

	if err := h.svc.Update(ctx, p, body); err != nil {
		response.Fail(c, err)
		return
	}
	response.Entity(c, http.StatusOK, p)
}

// @Router /places/:place_id [DELETE]
func (h *Handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	p, err := h.svc.Get(ctx, c.Param("place_id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	if err := h.svc.Delete(ctx, p); err != nil {
		response.Fail(c, err)
		return
	}
	response.Empty(c)
}

// Search filters places by the "states", "cities" and "amenities" id lists
// of the body. An empty object returns every place.
// @Router /places_search [POST]
func (h *Handler) Search(c *gin.Context) {
	body, err := request.BindObject(c)
	if err != nil {
		response.Fail(c, err)
		return
	}

	items, err := h.svc.Search(c.Request.Context(), body)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Entities(c, items)
}

// @Router /places/:place_id/amenities [GET]
func (h *Handler) ListAmenities(c *gin.Context) {
	ctx := c.Request.Context()

	p, err := h.svc.Get(ctx, c.Param("place_id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	items, err := h.svc.Amenities(ctx, p)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Entities(c, items)
}

// LinkAmenity answers 201 when the link is new and 200 when it already
// existed.
// @Router /places/:place_id/amenities/:amenity_id [POST]
func (h *Handler) LinkAmenity(c *gin.Context) {
	p, a, ok := h.placeAmenity(c)
	if !ok {
		return
	}

	err := h.svc.LinkAmenity(c.Request.Context(), p, a)
	switch {
	case errors.Is(err, ErrAlreadyLinked):
		response.Entity(c, http.StatusOK, a)
	case err != nil:
		response.Fail(c, err)
	default:
		response.Entity(c, http.StatusCreated, a)
	}
}

// @Router /places/:place_id/amenities/:amenity_id [DELETE]
func (h *Handler) UnlinkAmenity(c *gin.Context) {
	p, a, ok := h.placeAmenity(c)
	if !ok {
		return
	}

	if err := h.svc.UnlinkAmenity(c.Request.Context(), p, a); err != nil {
		response.Fail(c, err)
		return
	}
	response.Empty(c)
}

func (h *Handler) placeAmenity(c *gin.Context) (*domain.Place, *domain.Amenity, bool) {
	ctx := c.Request.Context()

	p, err := h.svc.Get(ctx, c.Param("place_id"))
	if err != nil {
		response.Fail(c, err)
		return nil, nil, false
	}
	a, err := h.svc.Amenity(ctx, c.Param("amenity_id"))
	if err != nil {
		response.Fail(c, err)
		return nil, nil, false
	}
	return p, a, true
}
