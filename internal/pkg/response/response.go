package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hbnb/internal/domain"
	"hbnb/internal/errs"
)

// Entity writes the representation of e.
func Entity(c *gin.Context, statusCode int, e domain.Entity) {
	d, err := domain.ToDict(e)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(statusCode, d)
}

// Entities writes the representations of items as an array, in order.
func Entities[T domain.Entity](c *gin.Context, items []T) {
	out := make([]map[string]any, 0, len(items))
	for _, e := range items {
		d, err := domain.ToDict(e)
		if err != nil {
			Fail(c, err)
			return
		}
		out = append(out, d)
	}
	c.JSON(http.StatusOK, out)
}

// Empty writes {} with status 200.
func Empty(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{})
}

// Fail renders err as {"error": message}, or as a bare status when the
// error carries no message. Server-side failures are attached to the context
// so the error logger records the underlying cause.
func Fail(c *gin.Context, err error) {
	httpErr := errs.Classify(err)
	if httpErr.Status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	if httpErr.Message == "" {
		c.AbortWithStatus(httpErr.Status)
		return
	}
	c.AbortWithStatusJSON(httpErr.Status, gin.H{"error": httpErr.Message})
}

// NotFound is the NoRoute handler.
func NotFound(c *gin.Context) {
	Fail(c, errs.NewNotFoundError())
}
