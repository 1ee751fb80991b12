// Package validation wraps the go-playground validator with the domain
// rules shared by the document constructors.
package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/finbridge-dev/finbridge/statement"
)

// Validator wraps the go-playground validator with custom rules and error
// translation into the document error taxonomy.
type Validator struct {
	validate *validator.Validate
}

// defaultValidator is built once at package init and never mutated, so it
// is safe to share across goroutines.
var defaultValidator = New()

// New creates a validator instance with the domain rules registered.
func New() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("currency", validateCurrency)
	_ = v.RegisterValidation("direction", validateDirection)
	_ = v.RegisterValidation("transaction_code", validateTransactionCode)
	_ = v.RegisterValidation("balance_kind", validateBalanceKind)
	_ = v.RegisterValidation("stmt_number", validateStatementNumber)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates a params struct against its validate tags and translates
// the first violation into the document error taxonomy: a failed "required"
// rule becomes a *statement.MissingFieldError, anything else a
// *statement.InvalidFieldError.
func Struct(v any) error {
	return defaultValidator.Struct(v)
}

// Struct validates a params struct against its validate tags.
func (v *Validator) Struct(value any) error {
	err := v.validate.Struct(value)
	if err == nil {
		return nil
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return err
	}
	fe := validationErrors[0]
	if strings.HasPrefix(fe.Tag(), "required") {
		return &statement.MissingFieldError{Field: fe.Field()}
	}
	return &statement.InvalidFieldError{Field: fe.Field(), Rule: fe.Tag()}
}

// Custom validation functions

var statementNumberPattern = regexp.MustCompile(`^\d{1,5}(/\d{1,3})?$`)

// validateCurrency validates a three-letter uppercase currency code
func validateCurrency(fl validator.FieldLevel) bool {
	return statement.IsValidCurrency(fl.Field().String())
}

// validateDirection validates a credit/debit direction value
func validateDirection(fl validator.FieldLevel) bool {
	return statement.IsValidDirection(statement.Direction(fl.Field().String()))
}

// validateTransactionCode validates the fixed-width transaction type code
func validateTransactionCode(fl validator.FieldLevel) bool {
	return len(fl.Field().String()) == statement.TransactionCodeLength
}

// validateBalanceKind validates a registered balance type code
func validateBalanceKind(fl validator.FieldLevel) bool {
	return statement.IsValidBalanceKind(statement.BalanceKind(fl.Field().String()))
}

// validateStatementNumber validates the statement/sequence number notation
// Format: up to five digits, optionally followed by a slash and a sequence
// of up to three digits
func validateStatementNumber(fl validator.FieldLevel) bool {
	return statementNumberPattern.MatchString(fl.Field().String())
}
