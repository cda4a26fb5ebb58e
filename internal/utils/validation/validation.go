// Package validation wraps go-playground/validator with the rules shared by the
// booking and finance ledgers. Fields are checked in struct declaration order and
// only the first failure is reported.
//
// Decimal amounts reach rules as their exact string form, so they must use the
// decimal_* tags; numeric tags such as gt would compare string length.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/SscSPs/venue_ledger_app/internal/apperrors"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"
)

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		v := validator.New()

		// Report fields by their JSON names so errors match what callers submitted.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		// Amounts keep their exact fixed-point value; never convert to float.
		v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
			if d, ok := field.Interface().(decimal.Decimal); ok {
				return d.String()
			}
			return nil
		}, decimal.Decimal{})

		rules := map[string]validator.Func{
			"decimal_gt0":  decimalRule(decimal.Decimal.IsPositive),
			"decimal_gte0": decimalRule(func(d decimal.Decimal) bool { return !d.IsNegative() }),
		}
		for tag, fn := range rules {
			if err := v.RegisterValidation(tag, fn); err != nil {
				panic(fmt.Sprintf("register %s validation: %v", tag, err))
			}
		}

		if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
			panic(fmt.Sprintf("register notblank validation: %v", err))
		}

		validate = v
	})
	return validate
}

// Struct validates s and returns an *apperrors.ValidationError naming the first
// failing field, or nil when s is valid.
func Struct(s any) error {
	err := instance().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return apperrors.NewValidationError(fe.Field(), messageFor(fe))
	}
	return fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
}

// decimalRule adapts a decimal predicate to a validator rule. Unparseable values fail.
func decimalRule(pred func(decimal.Decimal) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		field := fl.Field()
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return pred(d)
		}
		if field.Kind() != reflect.String {
			return false
		}
		d, err := decimal.NewFromString(field.String())
		if err != nil {
			return false
		}
		return pred(d)
	}
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "is required"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "decimal_gt0":
		return "must be greater than 0"
	case "decimal_gte0":
		return "must be greater than or equal to 0"
	default:
		return "failed the '" + fe.Tag() + "' check"
	}
}
