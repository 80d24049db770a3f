package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/shopkit/commerce-api/internal/api/metrics"
	"github.com/shopkit/commerce-api/internal/core/domain"
	"github.com/shopkit/commerce-api/internal/core/ports"
)

// ProductHandler handles HTTP requests for product CRUD.
//
// Gate ordering is fixed for id-scoped mutations: the target is resolved
// before the payload is validated, so a missing id answers 404 and never 400.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// Create handles POST /products.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body      productPayload  true  "Product attributes"
// @Success      201   {object}  domain.Product
// @Failure      400   {object}  map[string][]map[string]string
// @Failure      401   {object}  map[string][]map[string]string
// @Failure      403   {object}  map[string][]map[string]string
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req productPayload
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	created, err := h.service.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}

	metrics.ResourcesCreatedTotal.WithLabelValues("product").Inc()
	return c.JSON(http.StatusCreated, created)
}

// List handles GET /products.
//
// @Summary      List all products
// @Tags         products
// @Produce      json
// @Success      200  {array}  domain.Product
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Get handles GET /products/:id.
//
// @Summary      Get a product by id
// @Tags         products
// @Produce      json
// @Param        id   path      int  true  "Product id"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  map[string][]map[string]string
// @Router       /products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := resourceID(c, "product")
	if err != nil {
		return err
	}

	product, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Update handles PUT /products/:id.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path      int             true  "Product id"
// @Param        body  body      productPayload  true  "Product attributes"
// @Success      200   {object}  domain.Product
// @Failure      400   {object}  map[string][]map[string]string
// @Failure      404   {object}  map[string][]map[string]string
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := resourceID(c, "product")
	if err != nil {
		return err
	}

	// Resolve before validating: a missing target must answer 404 even when
	// the payload is also invalid.
	if _, err := h.service.Get(c.Request().Context(), id); err != nil {
		return err
	}

	var req productPayload
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	updated, err := h.service.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /products/:id.
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Param        id   path      int  true  "Product id"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  map[string][]map[string]string
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := resourceID(c, "product")
	if err != nil {
		return err
	}

	deleted, err := h.service.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deleted)
}

// resourceID parses the :id path param. A non-numeric id cannot resolve to
// any resource, so it reports not-found rather than a bind error.
func resourceID(c echo.Context, resource string) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, domain.NotFound(resource)
	}
	return id, nil
}
