package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/shopkit/commerce-api/internal/core/domain"
	"github.com/shopkit/commerce-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stub product service
// ---------------------------------------------------------------------------

type stubProductService struct {
	createFn func(ctx context.Context, in ports.ProductInput) (*domain.Product, error)
	listFn   func(ctx context.Context) ([]domain.Product, error)
	getFn    func(ctx context.Context, id int) (*domain.Product, error)
	updateFn func(ctx context.Context, id int, in ports.ProductInput) (*domain.Product, error)
	deleteFn func(ctx context.Context, id int) (*domain.Product, error)
}

func (s *stubProductService) Create(ctx context.Context, in ports.ProductInput) (*domain.Product, error) {
	return s.createFn(ctx, in)
}

func (s *stubProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.listFn(ctx)
}

func (s *stubProductService) Get(ctx context.Context, id int) (*domain.Product, error) {
	return s.getFn(ctx, id)
}

func (s *stubProductService) Update(ctx context.Context, id int, in ports.ProductInput) (*domain.Product, error) {
	return s.updateFn(ctx, id, in)
}

func (s *stubProductService) Delete(ctx context.Context, id int) (*domain.Product, error) {
	return s.deleteFn(ctx, id)
}

func newProductContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestProductHandler_Create_Success(t *testing.T) {
	stub := &stubProductService{
		createFn: func(ctx context.Context, in ports.ProductInput) (*domain.Product, error) {
			if in.Name != "Basic T-Shirt" || in.Price != 45000 || in.Stock != 5 || in.CategoryID != 1 {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.Product{
				ID: 1, Name: in.Name, ImageURL: in.ImageURL,
				Price: in.Price, Stock: in.Stock, Slug: in.Slug, CategoryID: in.CategoryID,
			}, nil
		},
	}
	handler := NewProductHandler(stub)

	c, rec := newProductContext(t, http.MethodPost, "/products", validProductJSON)
	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != float64(1) || resp["name"] != "Basic T-Shirt" || resp["CategoryId"] != float64(1) {
		t.Fatalf("unexpected body: %v", resp)
	}
}

func TestProductHandler_Create_ValidationFailure(t *testing.T) {
	stub := &stubProductService{
		createFn: func(ctx context.Context, in ports.ProductInput) (*domain.Product, error) {
			t.Fatalf("service must not be called on invalid payload")
			return nil, nil
		},
	}
	handler := NewProductHandler(stub)

	c, _ := newProductContext(t, http.MethodPost, "/products", `{}`)
	err := handler.Create(c)

	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *domain.ValidationError, got %v", err)
	}
	if len(ve.Items) != 6 {
		t.Fatalf("expected 6 items, got %d", len(ve.Items))
	}
}

// ---------------------------------------------------------------------------
// Get / List
// ---------------------------------------------------------------------------

func TestProductHandler_Get_Success(t *testing.T) {
	stub := &stubProductService{
		getFn: func(ctx context.Context, id int) (*domain.Product, error) {
			if id != 7 {
				t.Fatalf("expected id 7, got %d", id)
			}
			return &domain.Product{ID: 7, Name: "Basic T-Shirt"}, nil
		},
	}
	handler := NewProductHandler(stub)

	c, rec := newProductContext(t, http.MethodGet, "/products/7", "")
	c.SetParamNames("id")
	c.SetParamValues("7")

	if err := handler.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProductHandler_Get_NotFound(t *testing.T) {
	stub := &stubProductService{
		getFn: func(ctx context.Context, id int) (*domain.Product, error) {
			return nil, domain.NotFound("product")
		},
	}
	handler := NewProductHandler(stub)

	c, _ := newProductContext(t, http.MethodGet, "/products/1234", "")
	c.SetParamNames("id")
	c.SetParamValues("1234")

	err := handler.Get(c)
	var nf *domain.NotFoundError
	if !errors.As(err, &nf) || nf.Resource != "product" {
		t.Fatalf("expected product not-found, got %v", err)
	}
}

func TestProductHandler_Get_NonNumericID(t *testing.T) {
	stub := &stubProductService{
		getFn: func(ctx context.Context, id int) (*domain.Product, error) {
			t.Fatalf("service must not be called for an unparseable id")
			return nil, nil
		},
	}
	handler := NewProductHandler(stub)

	c, _ := newProductContext(t, http.MethodGet, "/products/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := handler.Get(c)
	var nf *domain.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("non-numeric id must behave as not-found, got %v", err)
	}
}

func TestProductHandler_List_Success(t *testing.T) {
	stub := &stubProductService{
		listFn: func(ctx context.Context) ([]domain.Product, error) {
			return []domain.Product{{ID: 1}, {ID: 2}}, nil
		},
	}
	handler := NewProductHandler(stub)

	c, rec := newProductContext(t, http.MethodGet, "/products", "")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 products, got %d", len(resp))
	}
}

// ---------------------------------------------------------------------------
// Update / Delete
// ---------------------------------------------------------------------------

func TestProductHandler_Update_ResolvesTargetBeforeValidating(t *testing.T) {
	stub := &stubProductService{
		getFn: func(ctx context.Context, id int) (*domain.Product, error) {
			return nil, domain.NotFound("product")
		},
		updateFn: func(ctx context.Context, id int, in ports.ProductInput) (*domain.Product, error) {
			t.Fatalf("update must not run when the target is missing")
			return nil, nil
		},
	}
	handler := NewProductHandler(stub)

	// Payload is invalid too: the missing target must still win (404, not 400).
	c, _ := newProductContext(t, http.MethodPut, "/products/1234", `{}`)
	c.SetParamNames("id")
	c.SetParamValues("1234")

	err := handler.Update(c)
	var nf *domain.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected not-found before validation, got %v", err)
	}
}

func TestProductHandler_Update_Success(t *testing.T) {
	stub := &stubProductService{
		getFn: func(ctx context.Context, id int) (*domain.Product, error) {
			return &domain.Product{ID: id}, nil
		},
		updateFn: func(ctx context.Context, id int, in ports.ProductInput) (*domain.Product, error) {
			return &domain.Product{
				ID: id, Name: in.Name, ImageURL: in.ImageURL,
				Price: in.Price, Stock: in.Stock, Slug: in.Slug, CategoryID: in.CategoryID,
			}, nil
		},
	}
	handler := NewProductHandler(stub)

	c, rec := newProductContext(t, http.MethodPut, "/products/3", validProductJSON)
	c.SetParamNames("id")
	c.SetParamValues("3")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != float64(3) || resp["name"] != "Basic T-Shirt" {
		t.Fatalf("unexpected body: %v", resp)
	}
}

func TestProductHandler_Update_InvalidPayload(t *testing.T) {
	stub := &stubProductService{
		getFn: func(ctx context.Context, id int) (*domain.Product, error) {
			return &domain.Product{ID: id}, nil
		},
		updateFn: func(ctx context.Context, id int, in ports.ProductInput) (*domain.Product, error) {
			t.Fatalf("update must not run on invalid payload")
			return nil, nil
		},
	}
	handler := NewProductHandler(stub)

	c, _ := newProductContext(t, http.MethodPut, "/products/3", `{"name":""}`)
	c.SetParamNames("id")
	c.SetParamValues("3")

	err := handler.Update(c)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestProductHandler_Delete_ReturnsLastState(t *testing.T) {
	stub := &stubProductService{
		deleteFn: func(ctx context.Context, id int) (*domain.Product, error) {
			return &domain.Product{ID: id, Name: "Basic T-Shirt", Stock: 5}, nil
		},
	}
	handler := NewProductHandler(stub)

	c, rec := newProductContext(t, http.MethodDelete, "/products/9", "")
	c.SetParamNames("id")
	c.SetParamValues("9")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != float64(9) || resp["name"] != "Basic T-Shirt" {
		t.Fatalf("deleted product's last state expected, got %v", resp)
	}
}
