package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"funds-mover/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

var pinPattern = regexp.MustCompile(`^[0-9]{4}$`)

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("account_id", validateAccountID)
	_ = v.RegisterValidation("money_amount", validateMoneyAmount)
	_ = v.RegisterValidation("balance_amount", validateBalanceAmount)
	_ = v.RegisterValidation("pin", validatePin)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates a struct using its validate tags
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatErrors turns validator errors into "field: message" details
func FormatErrors(err error) []string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	details := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		details = append(details, fmt.Sprintf("%s: %s", fe.Field(), messageForTag(fe.Tag())))
	}
	return details
}

func messageForTag(tag string) string {
	switch tag {
	case "required":
		return "is required"
	case "account_id":
		return "must be one of pension, savings, currentAccount"
	case "money_amount":
		return "must be a positive amount below 10^15 with at most 2 decimal places"
	case "balance_amount":
		return "must be a decimal number below 10^15 in magnitude with at most 8 decimal places"
	case "pin":
		return "must be exactly 4 digits"
	default:
		return "is invalid"
	}
}

// Custom validation functions

// validateAccountID validates that the value names one of the ledger accounts
func validateAccountID(fl validator.FieldLevel) bool {
	return models.AccountID(fl.Field().String()).IsValid()
}

// validateMoneyAmount validates a transfer amount: a positive decimal with at most 2 decimal places
func validateMoneyAmount(fl validator.FieldLevel) bool {
	amount, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}

	return models.IsWithinAmountRange(amount) && amount.IsPositive() && models.HasAtMostTwoDecimals(amount)
}

// validateBalanceAmount validates that the value parses as an in-range decimal of any sign
func validateBalanceAmount(fl validator.FieldLevel) bool {
	amount, err := decimal.NewFromString(fl.Field().String())
	return err == nil && models.IsWithinAmountRange(amount)
}

// validatePin validates the 4-digit PIN format
func validatePin(fl validator.FieldLevel) bool {
	return pinPattern.MatchString(fl.Field().String())
}
