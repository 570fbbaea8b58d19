package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"bank-backoffice.backend/pkg/utils"
)

var (
	postalCodeBR = regexp.MustCompile(`^\d{5}-?\d{3}$`)
	digitsOnly   = regexp.MustCompile(`^[0-9]+$`)
)

// FieldError describes one violated constraint
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Param   string `json:"param,omitempty"`
	Message string `json:"message"`
}

// Errors is the list of violations found on a payload
type Errors []FieldError

func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fe.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Rule is an additional string rule registered under Tag
type Rule struct {
	Tag   string
	Check func(string) bool
}

// Validator runs struct-tag validation and reports fields by their JSON name
type Validator struct {
	validate *validator.Validate
}

// New creates a validator with the built-in money, date and postal code rules
// plus any extra rules supplied by the caller.
func New(rules ...Rule) *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	builtins := []Rule{
		{Tag: "currency", Check: func(s string) bool { return fitsNumeric(s, 10, 2) }},
		{Tag: "rate", Check: func(s string) bool { return fitsNumeric(s, 5, 2) }},
		{Tag: "postalcode_br", Check: postalCodeBR.MatchString},
		{Tag: "digits", Check: digitsOnly.MatchString},
		{Tag: "date", Check: utils.IsDate},
	}
	for _, r := range append(builtins, rules...) {
		check := r.Check
		if err := v.RegisterValidation(r.Tag, func(fl validator.FieldLevel) bool {
			if fl.Field().Kind() != reflect.String {
				return false
			}
			return check(fl.Field().String())
		}); err != nil {
			panic(fmt.Sprintf("validation: register %s: %v", r.Tag, err))
		}
	}

	return &Validator{validate: v}
}

// Struct validates s and returns Errors when any constraint fails
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	out := make(Errors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, FieldError{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Param:   fe.Param(),
			Message: message(fe),
		})
	}
	return out
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "uuid":
		return field + " must be a valid UUID"
	case "digits":
		return field + " must contain only digits"
	case "numeric":
		return field + " must be a number"
	case "min":
		return fmt.Sprintf("%s must have at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must have at most %s characters", field, fe.Param())
	case "len":
		return fmt.Sprintf("%s must have exactly %s characters", field, fe.Param())
	case "currency":
		return field + " must be a monetary value with up to 2 decimal places"
	case "rate":
		return field + " must be a rate with up to 3 integer digits and 2 decimal places"
	case "postalcode_br":
		return field + " must be a postal code formatted as 00000-000"
	case "date":
		return field + " must be a date (YYYY-MM-DD or RFC 3339)"
	case "roles":
		return field + " must be a comma separated combination of known roles"
	default:
		return fmt.Sprintf("%s failed on %s", field, fe.Tag())
	}
}

// fitsNumeric reports whether s is a decimal that fits numeric(precision, scale)
func fitsNumeric(s string, precision, scale int32) bool {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return false
	}
	if !d.Equal(d.Truncate(scale)) {
		return false
	}
	limit := decimal.New(1, precision-scale)
	return d.Abs().LessThan(limit)
}
