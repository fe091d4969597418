// Package request parses JSON request bodies.
package request

import (
	"encoding/json"

	"github.com/gin-gonic/gin"

	"hbnb/internal/errs"
)

// Object is a decoded JSON object body with its values left undecoded.
type Object map[string]json.RawMessage

// Has reports whether key is present, whatever its value.
func (o Object) Has(key string) bool {
	_, ok := o[key]
	return ok
}

// Decode copies o into v, a struct with json tags.
func (o Object) Decode(v any) error {
	raw, err := json.Marshal(o)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}

// BindObject reads the request body as a JSON object. A missing, malformed
// or non-object body yields errs.ErrNotJSON.
func BindObject(c *gin.Context) (Object, error) {
	var obj Object
	if err := c.ShouldBindJSON(&obj); err != nil {
		return nil, errs.ErrNotJSON
	}
	if obj == nil {
		return nil, errs.ErrNotJSON
	}
	return obj, nil
}
