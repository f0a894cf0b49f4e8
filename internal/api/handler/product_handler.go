package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Danjes623/Inventario-SIGI/internal/core/ports"
)

// ProductHandler handles HTTP requests for catalog CRUD and the category
// summary listing.
type ProductHandler struct {
	products   ports.ProductService
	categories ports.CategoryService
}

func NewProductHandler(products ports.ProductService, categories ports.CategoryService) *ProductHandler {
	return &ProductHandler{products: products, categories: categories}
}

// List returns the full catalog.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Success      200  {array}   domain.Product
// @Failure      500  {object}  errorResponse
// @Router       /productos [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.products.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Get returns a single product.
//
// @Summary      Get a product by ID
// @Tags         products
// @Produce      json
// @Param        id  path      string  true  "Product ID"
// @Success      200 {object}  domain.Product
// @Failure      404 {object}  errorResponse
// @Failure      500 {object}  errorResponse
// @Router       /productos/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.products.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Create adds a product to the catalog.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body      productRequest  true  "Product details"
// @Success      201   {object}  domain.Product
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /productos [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.products.Create(c.Request().Context(), ports.ProductInput{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Stock:       req.Stock,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, product)
}

// Update overwrites a product's mutable fields.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path      string          true  "Product ID"
// @Param        body  body      productRequest  true  "Product details"
// @Success      200   {object}  domain.Product
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /productos/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.products.Update(c.Request().Context(), c.Param("id"), ports.ProductInput{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Stock:       req.Stock,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, product)
}

// Delete removes a product.
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Param        id  path      string  true  "Product ID"
// @Success      200 {object}  messageResponse
// @Failure      404 {object}  errorResponse
// @Failure      500 {object}  errorResponse
// @Router       /productos/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.products.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Producto eliminado"})
}

// ListCategories returns per-category statistics, sorted ascending by
// category label.
//
// @Summary      List category summaries
// @Tags         products
// @Produce      json
// @Success      200  {array}   categoryResponse
// @Failure      500  {object}  errorResponse
// @Router       /productos/categorias/lista [get]
func (h *ProductHandler) ListCategories(c echo.Context) error {
	summaries, err := h.categories.ListCategorySummaries(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]categoryResponse, 0, len(summaries))
	for _, s := range summaries {
		resp = append(resp, categoryResponse{
			Nombre:         s.Category,
			TotalProductos: s.Count,
			TotalStock:     s.TotalStock,
			ValorTotal:     s.TotalValue,
		})
	}
	return c.JSON(http.StatusOK, resp)
}
