package handler

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopkit/commerce-api/internal/core/domain"
)

func validateProductJSON(t *testing.T, body string) *domain.ValidationError {
	t.Helper()

	var req productPayload
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}

	err := NewValidator().Validate(&req)
	if err == nil {
		return nil
	}

	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *domain.ValidationError, got %T: %v", err, err)
	}
	return ve
}

const validProductJSON = `{
	"name": "Basic T-Shirt",
	"image_url": "https://imgur.com/a/W0gzfu9",
	"price": 45000,
	"stock": 5,
	"slug": "basic-t-shirt",
	"CategoryId": 1
}`

func TestValidator_ValidProduct(t *testing.T) {
	if ve := validateProductJSON(t, validProductJSON); ve != nil {
		t.Fatalf("expected no errors, got %+v", ve.Items)
	}
}

func TestValidator_AllFieldsEmpty(t *testing.T) {
	ve := validateProductJSON(t, `{"name":"","image_url":"","price":"","stock":"","slug":"","CategoryId":""}`)
	if ve == nil {
		t.Fatal("expected validation errors")
	}

	want := []domain.ValidationItem{
		{Name: "notEmpty", Message: "Name cannot empty"},
		{Name: "notEmpty", Message: "Image url cannot empty"},
		{Name: "notEmpty", Message: "Slug cannot empty"},
		{Name: "notEmpty", Message: "Price cannot empty"},
		{Name: "notEmpty", Message: "Stock cannot empty"},
		{Name: "notEmpty", Message: "Category id cannot empty"},
	}
	if len(ve.Items) != len(want) {
		t.Fatalf("expected %d items, got %d: %+v", len(want), len(ve.Items), ve.Items)
	}
	for i, item := range ve.Items {
		if item != want[i] {
			t.Errorf("item %d: got %+v, want %+v", i, item, want[i])
		}
	}
}

func TestValidator_AllFieldsNull(t *testing.T) {
	ve := validateProductJSON(t, `{}`)
	if ve == nil {
		t.Fatal("expected validation errors")
	}

	want := []domain.ValidationItem{
		{Name: "is_null", Message: "Name cannot null"},
		{Name: "is_null", Message: "Image url cannot null"},
		{Name: "is_null", Message: "Slug cannot null"},
		{Name: "is_null", Message: "Price cannot null"},
		{Name: "is_null", Message: "Stock cannot null"},
		{Name: "is_null", Message: "Category id cannot null"},
	}
	if len(ve.Items) != len(want) {
		t.Fatalf("expected %d items, got %d: %+v", len(want), len(ve.Items), ve.Items)
	}
	for i, item := range ve.Items {
		if item != want[i] {
			t.Errorf("item %d: got %+v, want %+v", i, item, want[i])
		}
	}
}

func TestValidator_ExplicitNullEqualsAbsent(t *testing.T) {
	ve := validateProductJSON(t, `{"name":null,"image_url":null,"price":null,"stock":null,"slug":null,"CategoryId":null}`)
	if ve == nil {
		t.Fatal("expected validation errors")
	}
	for _, item := range ve.Items {
		if item.Name != "is_null" {
			t.Fatalf("explicit null must report is_null, got %+v", item)
		}
	}
	if len(ve.Items) != 6 {
		t.Fatalf("expected 6 items, got %d", len(ve.Items))
	}
}

func TestValidator_NumericRules(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		want    domain.ValidationItem
	}{
		{
			name: "negative stock",
			body: `{"name":"x","image_url":"y","price":45000,"stock":-1,"slug":"z","CategoryId":1}`,
			want: domain.ValidationItem{Name: "isInt", Message: "Stock must be positive numbers with no leading zeroes"},
		},
		{
			name: "negative price",
			body: `{"name":"x","image_url":"y","price":-1,"stock":5,"slug":"z","CategoryId":1}`,
			want: domain.ValidationItem{Name: "isInt", Message: "Price must be positive numbers with no leading zeroes"},
		},
		{
			name: "stock as non-numeric string",
			body: `{"name":"x","image_url":"y","price":45000,"stock":"string","slug":"z","CategoryId":1}`,
			want: domain.ValidationItem{Name: "isInt", Message: "Stock must be positive numbers with no leading zeroes"},
		},
		{
			name: "price as non-numeric string",
			body: `{"name":"x","image_url":"y","price":"string","stock":5,"slug":"z","CategoryId":1}`,
			want: domain.ValidationItem{Name: "isInt", Message: "Price must be positive numbers with no leading zeroes"},
		},
		{
			name: "leading zeroes",
			body: `{"name":"x","image_url":"y","price":"007","stock":5,"slug":"z","CategoryId":1}`,
			want: domain.ValidationItem{Name: "isInt", Message: "Price must be positive numbers with no leading zeroes"},
		},
		{
			name: "fractional price",
			body: `{"name":"x","image_url":"y","price":45.5,"stock":5,"slug":"z","CategoryId":1}`,
			want: domain.ValidationItem{Name: "isInt", Message: "Price must be positive numbers with no leading zeroes"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ve := validateProductJSON(t, tc.body)
			if ve == nil {
				t.Fatal("expected validation errors")
			}
			if len(ve.Items) != 1 {
				t.Fatalf("expected exactly 1 item, got %d: %+v", len(ve.Items), ve.Items)
			}
			if ve.Items[0] != tc.want {
				t.Fatalf("got %+v, want %+v", ve.Items[0], tc.want)
			}
		})
	}
}

func TestValidator_NumericStringAccepted(t *testing.T) {
	// Sequelize-era clients sometimes send numbers as strings; a well-formed
	// numeric string passes.
	if ve := validateProductJSON(t, `{"name":"x","image_url":"y","price":"45000","stock":"0","slug":"z","CategoryId":"1"}`); ve != nil {
		t.Fatalf("expected no errors, got %+v", ve.Items)
	}
}

func TestValidator_OneItemPerField(t *testing.T) {
	// A present-but-empty field reports notEmpty only, never is_null as well.
	ve := validateProductJSON(t, `{"name":"","image_url":"y","price":45000,"stock":5,"slug":"z","CategoryId":1}`)
	if ve == nil {
		t.Fatal("expected validation errors")
	}
	if len(ve.Items) != 1 {
		t.Fatalf("expected exactly 1 item, got %d: %+v", len(ve.Items), ve.Items)
	}
	if ve.Items[0].Name != "notEmpty" {
		t.Fatalf("expected notEmpty, got %+v", ve.Items[0])
	}
}

func TestValidator_MixedFailures(t *testing.T) {
	ve := validateProductJSON(t, `{"name":"","price":"abc","stock":5,"slug":"z","CategoryId":1}`)
	if ve == nil {
		t.Fatal("expected validation errors")
	}

	want := []domain.ValidationItem{
		{Name: "notEmpty", Message: "Name cannot empty"},
		{Name: "is_null", Message: "Image url cannot null"},
		{Name: "isInt", Message: "Price must be positive numbers with no leading zeroes"},
	}
	if len(ve.Items) != len(want) {
		t.Fatalf("expected %d items, got %d: %+v", len(want), len(ve.Items), ve.Items)
	}
	for i, item := range ve.Items {
		if item != want[i] {
			t.Errorf("item %d: got %+v, want %+v", i, item, want[i])
		}
	}
}

func TestValidator_CategoryPayload(t *testing.T) {
	var req categoryPayload
	if err := json.Unmarshal([]byte(`{"name":"","slug":null}`), &req); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}

	err := NewValidator().Validate(&req)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *domain.ValidationError, got %v", err)
	}

	want := []domain.ValidationItem{
		{Name: "notEmpty", Message: "Name cannot empty"},
		{Name: "is_null", Message: "Slug cannot null"},
	}
	if len(ve.Items) != 2 || ve.Items[0] != want[0] || ve.Items[1] != want[1] {
		t.Fatalf("got %+v, want %+v", ve.Items, want)
	}
}

func TestValidator_RegisterPayload(t *testing.T) {
	var req registerPayload
	if err := json.Unmarshal([]byte(`{"email":"not-an-email","password":"secret"}`), &req); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}

	err := NewValidator().Validate(&req)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *domain.ValidationError, got %v", err)
	}
	if len(ve.Items) != 1 || ve.Items[0].Name != "isEmail" {
		t.Fatalf("expected single isEmail item, got %+v", ve.Items)
	}
}
