package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopkit/commerce-api/internal/api/metrics"
	"github.com/shopkit/commerce-api/internal/core/ports"
)

// CategoryHandler handles HTTP requests for category CRUD. Same gate
// ordering as products: resolve the target first, validate second.
type CategoryHandler struct {
	service ports.CategoryService
}

func NewCategoryHandler(service ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// Create handles POST /categories.
//
// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body  body      categoryPayload  true  "Category attributes"
// @Success      201   {object}  domain.Category
// @Router       /categories [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	var req categoryPayload
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

	metrics.ResourcesCreatedTotal.WithLabelValues("category").Inc()
	return c.JSON(http.StatusCreated, created)
}

// List handles GET /categories.
//
// @Summary      List all categories
// @Tags         categories
// @Produce      json
// @Success      200  {array}  domain.Category
// @Router       /categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categories)
}

// Get handles GET /categories/:id.
//
// @Summary      Get a category by id
// @Tags         categories
// @Produce      json
// @Param        id   path      int  true  "Category id"
// @Success      200  {object}  domain.Category
// @Router       /categories/{id} [get]
func (h *CategoryHandler) Get(c echo.Context) error {
	id, err := resourceID(c, "category")
	if err != nil {
		return err
	}

	category, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, category)
}

// Update handles PUT /categories/:id.
//
// @Summary      Update a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id    path      int              true  "Category id"
// @Param        body  body      categoryPayload  true  "Category attributes"
// @Success      200   {object}  domain.Category
// @Router       /categories/{id} [put]
func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := resourceID(c, "category")
	if err != nil {
		return err
	}

	if _, err := h.service.Get(c.Request().Context(), id); err != nil {
		return err
	}

	var req categoryPayload
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

// Delete handles DELETE /categories/:id.
//
// @Summary      Delete a category
// @Tags         categories
// @Produce      json
// @Param        id   path      int  true  "Category id"
// @Success      200  {object}  domain.Category
// @Router       /categories/{id} [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := resourceID(c, "category")
	if err != nil {
		return err
	}

	deleted, err := h.service.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deleted)
}
