// Package request binds and validates inbound JSON payloads before they reach
// a use case. Violations come back as domain validation errors naming the
// offending JSON field, so the response layer can report them uniformly.
package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"gamestore/src/core/domain"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
		_ = v.RegisterValidation("maxdp", maxDecimalPlaces)
	}
}

// maxDecimalPlaces implements the maxdp=N tag: a number may carry at most
// N digits after the decimal point. Amounts are stored as given, never rounded.
func maxDecimalPlaces(fl validator.FieldLevel) bool {
	places, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	switch fl.Field().Kind() {
	case reflect.Float32, reflect.Float64:
		d := decimal.NewFromFloat(fl.Field().Float())
		return d.Exponent() >= -int32(places)
	}
	return true
}

// jsonFieldName reports struct fields by their JSON name.
func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" || name == "" {
		return f.Name
	}
	return name
}

// BindJSON decodes the request body into obj and validates it.
func BindJSON(c *gin.Context, obj any) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		return translate(err)
	}
	return nil
}

// Validate runs the binding rules on an already decoded value.
func Validate(obj any) error {
	if err := binding.Validator.ValidateStruct(obj); err != nil {
		return translate(err)
	}
	return nil
}

// translate reports the first violation in struct field order,
// so a given payload always yields the same error.
func translate(err error) error {
	var (
		verrs   validator.ValidationErrors
		typeErr *json.UnmarshalTypeError
		synErr  *json.SyntaxError
	)
	switch {
	case errors.As(err, &verrs) && len(verrs) > 0:
		fe := verrs[0]
		return domain.NewValidationError(fe.Field(), ruleMessage(fe))
	case errors.As(err, &typeErr):
		return domain.NewValidationError(typeErr.Field, fmt.Sprintf("must be a %s", typeErr.Type.Kind()))
	case errors.As(err, &synErr), errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return domain.NewValidationError("body", "malformed JSON body")
	}
	return domain.NewValidationError("body", err.Error())
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "maxdp":
		return fmt.Sprintf("must have at most %s decimal places", fe.Param())
	case "datetime":
		return fmt.Sprintf("must be a date in %s format", fe.Param())
	}
	return fmt.Sprintf("failed %q rule", fe.Tag())
}
