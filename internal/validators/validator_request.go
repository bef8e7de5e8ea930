package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/MKhiriev/expense-tracker/models"
)

const (
	tagNotBlank = "notblank"
	tagMaxBytes = "maxbytes"
	tagMoney    = "money"
)

// maxAmount is the exclusive upper bound of an amount: DECIMAL(12,2).
var maxAmount = decimal.New(1, 10)

// Amounts whose exponent or coefficient size fall outside these limits are
// rejected before any comparison or formatting.
const (
	maxAmountExponent       = 32
	maxAmountCoefficientBit = 128
)

// outOfRangeAmount is the text form handed to the money rule for amounts
// rejected by amountInRange. It never parses as a decimal.
const outOfRangeAmount = "out of range"

// RequestValidator validates request models by their `validate` tags.
type RequestValidator struct {
	v *validator.Validate
}

// NewRequestValidator returns a Validator with the custom rules registered:
//   - notblank: the string has a non-space character
//   - maxbytes=N: the string is at most N bytes long
//   - money: a non-negative amount below 10^10 with at most 2 decimal places
func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report fields by their JSON names
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return strings.ToLower(field.Name)
		}
		return name
	})

	// amounts and dates are validated through their text form, so a missing
	// value is an empty string
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		switch value := field.Interface().(type) {
		case decimal.NullDecimal:
			if !value.Valid {
				return ""
			}
			if !amountInRange(value.Decimal) {
				return outOfRangeAmount
			}
			return value.Decimal.String()
		case decimal.Decimal:
			if !amountInRange(value) {
				return outOfRangeAmount
			}
			return value.String()
		case models.Date:
			return value.String()
		}
		return nil
	}, decimal.NullDecimal{}, decimal.Decimal{}, models.Date{})

	mustRegister(v, tagNotBlank, func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	mustRegister(v, tagMaxBytes, func(fl validator.FieldLevel) bool {
		limit, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return len(fl.Field().String()) <= limit
	})
	mustRegister(v, tagMoney, func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if s == "" {
			// presence is checked by "required"
			return true
		}
		amount, err := decimal.NewFromString(s)
		if err != nil {
			return false
		}
		return IsValidAmount(amount)
	})

	return &RequestValidator{v: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %q validation: %v", tag, err))
	}
}

// IsValidAmount reports whether amount is >= 0, < 10^10 and has at most two
// decimal places.
func IsValidAmount(amount decimal.Decimal) bool {
	if !amountInRange(amount) {
		return false
	}
	if amount.IsNegative() || amount.GreaterThanOrEqual(maxAmount) {
		return false
	}
	return amount.Equal(amount.Truncate(2))
}

// amountInRange checks the exponent and coefficient size without rescaling.
func amountInRange(amount decimal.Decimal) bool {
	exp := amount.Exponent()
	if exp < -maxAmountExponent || exp > maxAmountExponent {
		return false
	}
	return amount.Coefficient().BitLen() <= maxAmountCoefficientBit
}

// Validate checks obj, a struct or pointer to struct. When fields are given
// only those struct fields (by Go name) are checked.
func (r *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = r.v.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = r.v.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}

	messages := make(ValidationErrors, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		messages = append(messages, fieldError(fe))
	}
	return messages
}

// fieldError converts a single FieldError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required", tagNotBlank:
		return field + " is required"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case tagMaxBytes:
		return fmt.Sprintf("%s must be at most %s bytes", field, fe.Param())
	case tagMoney:
		return field + " must be a non-negative number with at most 2 decimal places"
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
