package models

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// MaxStringLength caps every varchar column of the schema.
const MaxStringLength = 254

// Money columns are decimal(10,2).
const (
	moneyDigits = 10
	moneyPlaces = 2
)

var (
	validate = validator.New()

	// moneyLimit is the first value that no longer fits decimal(10,2).
	moneyLimit = decimal.New(1, moneyDigits-moneyPlaces)
)

// validateFields runs the struct tag rules and maps the first failure to
// one of the package's sentinel errors.
func validateFields(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%w: %s", ErrRequiredField, fe.Field())
	case "max":
		return fmt.Errorf("%w: %s exceeds %s characters", ErrTooLong, fe.Field(), fe.Param())
	case "oneof":
		return fmt.Errorf("%w: %s must be one of [%s]", ErrInvalidChoice, fe.Field(), fe.Param())
	}
	return fmt.Errorf("%s failed on %q: %w", fe.Field(), fe.Tag(), err)
}

// validateMoney checks that d can be stored in a decimal(10,2) column.
func validateMoney(field string, d decimal.Decimal) error {
	if !d.Equal(d.Truncate(moneyPlaces)) {
		return fmt.Errorf("%w: %s has more than %d decimal places", ErrInvalidPrecision, field, moneyPlaces)
	}
	if d.Abs().GreaterThanOrEqual(moneyLimit) {
		return fmt.Errorf("%w: %s is out of range", ErrInvalidPrecision, field)
	}
	return nil
}
