package handler

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/shopkit/commerce-api/internal/core/domain"
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
// Validation failures come back as *domain.ValidationError with one item per
// violated rule, in struct field order, so the error handler can expand them
// into the wire envelope.
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator with the custom rule set registered:
// "present" (field key must exist and be non-null, reported as is_null),
// "notblank" (present value must not be empty, reported as notEmpty), and
// "posint" (non-negative integer with no leading zeroes, reported as isInt).
// Payload fields are pointers so absence is distinguishable from emptiness;
// "present" is registered to run even on nil values.
func NewValidator() *echoValidator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("present", present, true)
	_ = v.RegisterValidation("notblank", notBlank)
	_ = v.RegisterValidation("posint", positiveInt)

	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	err := ev.v.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		items := make([]domain.ValidationItem, 0, len(ve))
		for _, fe := range ve {
			items = append(items, itemFor(fe))
		}
		return &domain.ValidationError{Items: items}
	}
	return err
}

// itemFor translates a single field failure into its wire tag and message.
func itemFor(fe validator.FieldError) domain.ValidationItem {
	label := fieldLabel(fe.Field())
	switch fe.Tag() {
	case "present":
		return domain.ValidationItem{Name: "is_null", Message: label + " cannot null"}
	case "notblank":
		return domain.ValidationItem{Name: "notEmpty", Message: label + " cannot empty"}
	case "posint":
		return domain.ValidationItem{Name: "isInt", Message: label + " must be positive numbers with no leading zeroes"}
	case "email":
		return domain.ValidationItem{Name: "isEmail", Message: label + " must be email format"}
	default:
		return domain.ValidationItem{Name: fe.Tag(), Message: label + " failed validation (" + fe.Tag() + ")"}
	}
}

// fieldLabels maps wire field names to the labels used in messages.
var fieldLabels = map[string]string{
	"name":       "Name",
	"image_url":  "Image url",
	"slug":       "Slug",
	"price":      "Price",
	"stock":      "Stock",
	"CategoryId": "Category id",
	"email":      "Email",
	"password":   "Password",
}

func fieldLabel(field string) string {
	if label, ok := fieldLabels[field]; ok {
		return label
	}
	label := strings.ReplaceAll(field, "_", " ")
	r := []rune(label)
	if len(r) > 0 {
		r[0] = unicode.ToUpper(r[0])
	}
	return string(r)
}

// present fails only for absent or null fields. It is registered with
// callValidationEvenIfNull so it sees nil pointers.
func present(fl validator.FieldLevel) bool {
	f := fl.Field()
	if !f.IsValid() {
		return false
	}
	switch f.Kind() {
	case reflect.Ptr, reflect.Interface:
		return !f.IsNil()
	}
	return true
}

// notBlank fails for empty strings and empty number tokens.
func notBlank(fl validator.FieldLevel) bool {
	f := fl.Field()
	switch f.Kind() {
	case reflect.String:
		return strings.TrimSpace(f.String()) != ""
	case reflect.Struct:
		if n, ok := f.Interface().(looseNumber); ok {
			return !n.blank()
		}
	}
	return true
}

// intToken matches a non-negative base-10 integer with no leading zeroes.
var intToken = regexp.MustCompile(`^(0|[1-9][0-9]*)$`)

// positiveInt fails for anything that is not a non-negative integer with
// no leading zeroes: negatives, fractions, non-numeric strings, "007".
func positiveInt(fl validator.FieldLevel) bool {
	if n, ok := fl.Field().Interface().(looseNumber); ok {
		return intToken.MatchString(n.token())
	}
	return true
}
