package bank

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/caja/internal/apperr"
)

var validate = newValidator()

// Amounts are stored as NUMERIC(14, 2).
var maxAmount = decimal.New(1, 12)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	err := v.RegisterValidation("positive_decimal", func(fl validator.FieldLevel) bool {
		d, ok := fl.Field().Interface().(decimal.Decimal)
		return ok && d.IsPositive()
	})
	if err != nil {
		panic(fmt.Sprintf("registering positive_decimal: %v", err))
	}

	err = v.RegisterValidation("money", func(fl validator.FieldLevel) bool {
		d, ok := fl.Field().Interface().(decimal.Decimal)
		return ok && d.Equal(d.Truncate(2)) && d.Abs().LessThan(maxAmount)
	})
	if err != nil {
		panic(fmt.Sprintf("registering money: %v", err))
	}

	return v
}

// validateParams checks p's validate tags and reports the first failure as a
// validation error.
func validateParams(p any) error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperr.Validation("invalid input")
	}

	fe := fieldErrs[0]

	switch fe.Tag() {
	case "required":
		return apperr.Validation(fe.Field() + " is required")
	case "positive_decimal":
		return apperr.Validation(fe.Field() + " must be positive")
	case "money":
		return apperr.Validation(fe.Field() + " must have at most 2 decimal places and fit the amount column")
	case "max":
		return apperr.Validation(fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param()))
	default:
		return apperr.Validation(fe.Field() + " is invalid")
	}
}
