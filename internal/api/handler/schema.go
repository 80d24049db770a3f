package handler

import (
	"strconv"
	"strings"

	"github.com/shopkit/commerce-api/internal/core/ports"
)

// looseNumber accepts a JSON number or a quoted string and keeps the raw
// token so the validation rules can distinguish empty, non-numeric, and
// badly formatted values instead of failing at bind time.
type looseNumber struct {
	raw string
}

func (n *looseNumber) UnmarshalJSON(b []byte) error {
	n.raw = string(b)
	return nil
}

// token returns the value without surrounding quotes.
func (n looseNumber) token() string {
	return strings.Trim(n.raw, `"`)
}

func (n looseNumber) blank() bool {
	return strings.TrimSpace(n.token()) == ""
}

// Int returns the parsed value. Only meaningful after the posint rule passed.
func (n looseNumber) Int() int {
	v, _ := strconv.Atoi(n.token())
	return v
}

// productPayload is the create/update body for products. Field order matters:
// validation items are reported in declaration order.
type productPayload struct {
	Name       *string      `json:"name"       validate:"present,notblank"`
	ImageURL   *string      `json:"image_url"  validate:"present,notblank"`
	Slug       *string      `json:"slug"       validate:"present,notblank"`
	Price      *looseNumber `json:"price"      validate:"present,notblank,posint"`
	Stock      *looseNumber `json:"stock"      validate:"present,notblank,posint"`
	CategoryID *looseNumber `json:"CategoryId" validate:"present,notblank,posint"`
}

func (p productPayload) toInput() ports.ProductInput {
	return ports.ProductInput{
		Name:       *p.Name,
		ImageURL:   *p.ImageURL,
		Slug:       *p.Slug,
		Price:      p.Price.Int(),
		Stock:      p.Stock.Int(),
		CategoryID: p.CategoryID.Int(),
	}
}

// categoryPayload is the create/update body for categories.
type categoryPayload struct {
	Name *string `json:"name" validate:"present,notblank"`
	Slug *string `json:"slug" validate:"present,notblank"`
}

func (p categoryPayload) toInput() ports.CategoryInput {
	return ports.CategoryInput{Name: *p.Name, Slug: *p.Slug}
}

// registerPayload is the body for user registration.
type registerPayload struct {
	Email    *string `json:"email"    validate:"present,notblank,email"`
	Password *string `json:"password" validate:"present,notblank"`
}

// loginPayload is the body for login. Not validated through the rule set:
// any credential problem must surface as invalidLogin, never as field errors.
type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// tokenResponse carries the issued access token.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
}
