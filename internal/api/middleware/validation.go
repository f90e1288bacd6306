package middleware

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"voice-notes/internal/api/errors"
)

// Validator interface for domain validation
type Validator interface {
	Validate() error
}

var registerTagNames sync.Once

// useWireNames makes validator report fields by their json/form name, so
// error details match what the client sent.
func useWireNames() {
	registerTagNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
				if name != "" && name != "-" {
					return name
				}
			}
			return f.Name
		})
	})
}

// ValidateRequest binds the JSON body, checks struct tags, then runs the
// request's own Validate method when it has one.
func ValidateRequest(c *gin.Context, req interface{}) error {
	useWireNames()
	if err := c.ShouldBindJSON(req); err != nil {
		return errors.NewValidationError("Validation failed", fieldErrors(err, "request", "invalid JSON format"))
	}
	return validateDomain(req)
}

// ValidateQuery binds and checks query parameters. Binding failures are bad
// requests rather than validation errors.
func ValidateQuery(c *gin.Context, req interface{}) error {
	useWireNames()
	if err := c.ShouldBindQuery(req); err != nil {
		apiErr := errors.NewBadRequestError("Invalid query parameters")
		apiErr.Details = fieldErrors(err, "query", "invalid query parameters")
		return apiErr
	}
	return validateDomain(req)
}

func validateDomain(req interface{}) error {
	if v, ok := req.(Validator); ok {
		return v.Validate()
	}
	return nil
}

func fieldErrors(err error, fallbackField, fallbackMessage string) map[string]string {
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return map[string]string{fallbackField: fallbackMessage}
	}

	details := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		details[fe.Field()] = describe(fe)
	}
	return details
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gte", "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte", "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return "is invalid"
	}
}
