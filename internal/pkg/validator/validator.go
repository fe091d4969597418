package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"hbnb/internal/errs"
	"hbnb/internal/pkg/request"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Required decodes body into dst, a struct whose json.RawMessage fields are
// tagged validate:"required", and fails with "Missing <field>" for the first
// absent key in declaration order. Presence is what counts: null and empty
// values satisfy it.
func Required(body request.Object, dst any) error {
	if err := body.Decode(dst); err != nil {
		return errs.ErrNotJSON
	}
	err := validate.Struct(dst)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return errs.MissingField(verrs[0].Field())
	}
	return err
}
