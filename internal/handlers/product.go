package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/example/loomwear/internal/catalog"
	"github.com/example/loomwear/internal/models"
	"github.com/example/loomwear/internal/utils"
)

// ProductHandler serves the product read model and the admin mutation surface.
type ProductHandler struct {
	catalog *catalog.Service
}

// NewProductHandler constructs ProductHandler.
func NewProductHandler(svc *catalog.Service) *ProductHandler {
	return &ProductHandler{catalog: svc}
}

// ListProducts returns paginated products with their ordered child collections.
func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)

	products, total, err := h.catalog.ListProducts(c.Context(), pg.Limit, pg.Offset)
	if err != nil {
		return mapCatalogError(err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    products,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}

// GetProduct loads one product aggregate.
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	product, err := h.catalog.GetProduct(c.Context(), id)
	if err != nil {
		return mapCatalogError(err)
	}

	return c.JSON(fiber.Map{"success": true, "data": product})
}

type productRequest struct {
	Name            string          `json:"name"`
	Price           decimal.Decimal `json:"price"`
	Badge           string          `json:"badge"`
	Description     string          `json:"description"`
	ProductInfo     string          `json:"productInfo"`
	ShippingDetails string          `json:"shippingDetails"`
}

// CreateProduct handles product creation.
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req productRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name is required")
	}
	if req.Price.IsNegative() {
		return fiber.NewError(fiber.StatusBadRequest, "price must not be negative")
	}

	product := models.Product{
		Name:            req.Name,
		Price:           req.Price,
		Badge:           req.Badge,
		Description:     req.Description,
		ProductInfo:     req.ProductInfo,
		ShippingDetails: req.ShippingDetails,
	}
	if err := h.catalog.CreateProduct(c.Context(), &product); err != nil {
		return mapCatalogError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": product})
}

type imageRequest struct {
	ImageURL string `json:"imageUrl"`
	Alt      string `json:"alt"`
	Order    int    `json:"order"`
}

// AddImage attaches an image to a product. Order defaults to 0 when omitted.
func (h *ProductHandler) AddImage(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req imageRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.ImageURL == "" {
		return fiber.NewError(fiber.StatusBadRequest, "imageUrl is required")
	}

	image := models.ProductImage{ImageURL: req.ImageURL, Alt: req.Alt, SortOrder: req.Order}
	if err := h.catalog.AddImage(c.Context(), id, &image); err != nil {
		return mapCatalogError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": image})
}

type colorRequest struct {
	Name    string `json:"name"`
	HexCode string `json:"hexCode"`
	Order   int    `json:"order"`
}

// AddColor attaches a color swatch to a product.
func (h *ProductHandler) AddColor(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req colorRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name is required")
	}

	color := models.Color{Name: req.Name, HexCode: req.HexCode, SortOrder: req.Order}
	if err := h.catalog.AddColor(c.Context(), id, &color); err != nil {
		return mapCatalogError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": color})
}

type sizeRequest struct {
	Size  string `json:"size"`
	Order int    `json:"order"`
}

// AddSize attaches a size option to a product.
func (h *ProductHandler) AddSize(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req sizeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Size == "" {
		return fiber.NewError(fiber.StatusBadRequest, "size is required")
	}

	size := models.Size{Size: req.Size, SortOrder: req.Order}
	if err := h.catalog.AddSize(c.Context(), id, &size); err != nil {
		return mapCatalogError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": size})
}

// DeleteProduct removes a product and its owned children.
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.catalog.DeleteProduct(c.Context(), id); err != nil {
		return mapCatalogError(err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// mapCatalogError translates read-model failures so the client can render
// a placeholder (404) or a degraded page (503) instead of crashing.
func mapCatalogError(err error) error {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, "product not found")
	case errors.Is(err, catalog.ErrStoreUnavailable):
		return fiber.NewError(fiber.StatusServiceUnavailable, "catalog temporarily unavailable")
	default:
		return err
	}
}

// RegisterProductRoutes attaches product routes; reads are public, writes
// go through the provided auth middleware.
func (h *ProductHandler) RegisterProductRoutes(router fiber.Router, requireAuth fiber.Handler) {
	router.Get("/", h.ListProducts)
	router.Get("/:id", h.GetProduct)
	router.Post("/", requireAuth, h.CreateProduct)
	router.Post("/:id/images", requireAuth, h.AddImage)
	router.Post("/:id/colors", requireAuth, h.AddColor)
	router.Post("/:id/sizes", requireAuth, h.AddSize)
	router.Delete("/:id", requireAuth, h.DeleteProduct)
}
