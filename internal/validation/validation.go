// Package validation checks that required request fields are present and
// non-empty. A field counts as missing when it is absent, null, "", 0,
// false or an empty list, and fields are checked in declaration order so the
// first missing one is the one reported.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// ErrInvalidBody reports a request body that is not the expected JSON shape.
var ErrInvalidBody = errors.New("invalid request body")

// MissingFieldError names the first required field that was absent or empty.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("Missing required field: %s", e.Field)
}

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
	}
}

// jsonFieldName reports struct fields by their JSON name.
func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

// Bind decodes the JSON body of c into obj and checks its `binding:"required"`
// fields.
func Bind(c *gin.Context, obj any) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		return translate(err)
	}
	return nil
}

// Required checks the `binding:"required"` fields of an already decoded struct.
func Required(obj any) error {
	if err := binding.Validator.ValidateStruct(obj); err != nil {
		return translate(err)
	}
	return nil
}

// RequiredFields checks a loosely typed payload for the named keys in order.
func RequiredFields(payload map[string]any, names ...string) error {
	for _, name := range names {
		if isBlank(payload[name]) {
			return &MissingFieldError{Field: name}
		}
	}
	return nil
}

func translate(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if fe.Tag() == "required" {
			return &MissingFieldError{Field: fe.Field()}
		}
		return fmt.Errorf("%w: %s failed %s", ErrInvalidBody, fe.Field(), fe.Tag())
	}
	return fmt.Errorf("%w: %v", ErrInvalidBody, err)
}

func isBlank(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case bool:
		return !t
	case float64:
		return t == 0
	case int:
		return t == 0
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	}
	return false
}
