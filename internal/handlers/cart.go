package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/example/loomwear/internal/cartstate"
	"github.com/example/loomwear/internal/catalog"
	"github.com/example/loomwear/internal/pricing"
)

// CartHandler exposes the session cart, variant selection and bundle
// pricing over HTTP. All state lives in the injected stores; no request
// here touches the network beyond its own round trip.
type CartHandler struct {
	cart     *cartstate.CartStore
	variants *cartstate.VariantStore
	catalog  *catalog.Service
}

// NewCartHandler constructs CartHandler.
func NewCartHandler(cart *cartstate.CartStore, variants *cartstate.VariantStore, svc *catalog.Service) *CartHandler {
	return &CartHandler{cart: cart, variants: variants, catalog: svc}
}

func (h *CartHandler) cartPayload(persisted bool) fiber.Map {
	return fiber.Map{
		"items":     h.cart.Items(),
		"totals":    h.cart.Totals(),
		"persisted": persisted,
	}
}

// GetCart returns the current lines and freshly computed totals.
func (h *CartHandler) GetCart(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true, "data": h.cartPayload(true)})
}

type addItemRequest struct {
	ProductID int             `json:"productId"`
	Name      string          `json:"name"`
	Color     string          `json:"color"`
	Size      string          `json:"size"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// AddItem merges an item into the cart.
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var req addItemRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.ProductID <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "productId is required")
	}
	if req.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name is required")
	}
	if req.Price.IsNegative() {
		return fiber.NewError(fiber.StatusBadRequest, "price must not be negative")
	}
	if req.Quantity < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "quantity must not be negative")
	}

	status := h.cart.Add(cartstate.Item{
		ProductID: req.ProductID,
		Name:      req.Name,
		Color:     req.Color,
		Size:      req.Size,
		Price:     req.Price,
		Quantity:  req.Quantity,
	})

	return c.JSON(fiber.Map{"success": true, "data": h.cartPayload(status.Persisted)})
}

// RemoveItem drops every line for the product id, across all variants.
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("productId")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid product id")
	}

	status := h.cart.Remove(productID)
	return c.JSON(fiber.Map{"success": true, "data": h.cartPayload(status.Persisted)})
}

// ClearCart empties the cart.
func (h *CartHandler) ClearCart(c *fiber.Ctx) error {
	status := h.cart.Clear()
	return c.JSON(fiber.Map{"success": true, "data": h.cartPayload(status.Persisted)})
}

// GetSelection returns the current color/size choice. When a productId is
// given, the product's first color and size fill any unset dimension;
// persisted choices always win, and a failed catalog fetch just means no
// defaults this time.
func (h *CartHandler) GetSelection(c *fiber.Ctx) error {
	if productID := c.QueryInt("productId"); productID > 0 {
		if product, err := h.catalog.GetProduct(c.Context(), productID); err == nil {
			colors := make([]string, 0, len(product.Colors))
			for _, color := range product.Colors {
				colors = append(colors, color.Name)
			}
			sizes := make([]string, 0, len(product.Sizes))
			for _, size := range product.Sizes {
				sizes = append(sizes, size.Size)
			}
			h.variants.ApplyDefaults(colors, sizes)
		}
	}

	color, size := h.variants.Selection()
	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{
		"selectedColor": color,
		"selectedSize":  size,
	}})
}

type selectionRequest struct {
	Color *string `json:"color"`
	Size  *string `json:"size"`
}

// UpdateSelection overwrites whichever dimensions the body carries.
func (h *CartHandler) UpdateSelection(c *fiber.Ctx) error {
	var req selectionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Color == nil && req.Size == nil {
		return fiber.NewError(fiber.StatusBadRequest, "nothing to update")
	}

	persisted := true
	if req.Color != nil {
		if status := h.variants.SetColor(*req.Color); !status.Persisted {
			persisted = false
		}
	}
	if req.Size != nil {
		if status := h.variants.SetSize(*req.Size); !status.Persisted {
			persisted = false
		}
	}

	color, size := h.variants.Selection()
	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{
		"selectedColor": color,
		"selectedSize":  size,
		"persisted":     persisted,
	}})
}

type bundleQuoteRequest struct {
	Items []pricing.LineItem `json:"items"`
}

// QuoteBundle prices a bundle from the posted items.
func (h *CartHandler) QuoteBundle(c *fiber.Ctx) error {
	var req bundleQuoteRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	for _, item := range req.Items {
		if item.Price.IsNegative() {
			return fiber.NewError(fiber.StatusBadRequest, "prices must not be negative")
		}
	}

	return c.JSON(fiber.Map{"success": true, "data": pricing.BundleQuote(req.Items)})
}
