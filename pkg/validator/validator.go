package validator

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// UseJSONFieldNames makes gin's binding validator report fields by their json name,
// so "team_b_id" rather than "TeamBID". Safe to call more than once.
func UseJSONFieldNames() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
	})
}

// ParseError converts binding errors into a field -> message map.
func ParseError(err error) map[string]string {
	errors := make(map[string]string)
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		if err != nil { // Non-validator errors
			errors["error"] = err.Error()
		}
		return errors
	}
	for _, fe := range ve {
		field := fe.Field()
		var msg string
		switch fe.Tag() {
		case "required":
			msg = fmt.Sprintf("The %s field is required.", field)
		case "min":
			msg = fmt.Sprintf("The %s field must be at least %s.", field, fe.Param())
		case "max":
			msg = fmt.Sprintf("The %s field must not exceed %s.", field, fe.Param())
		case "oneof":
			msg = fmt.Sprintf("The %s field must be one of the following: %s.", field, strings.ReplaceAll(fe.Param(), " ", ", "))
		case "uuid":
			msg = fmt.Sprintf("The %s field must be a valid id.", field)
		case "nefield":
			msg = fmt.Sprintf("The %s field must differ from %s.", field, fe.Param())
		default:
			msg = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", field, fe.Tag())
		}
		errors[strings.ToLower(field)] = msg
	}
	return errors
}
