package handlers

import (
	"photonx/internal/domain"
	applog "photonx/internal/log"
	"photonx/internal/services"
	"photonx/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CartHandler struct {
	Cart *services.CartService
}

type cartAddReq struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gte=1"`
}

// POST /api/Cart/add
func (h *CartHandler) Add(c *fiber.Ctx) error {
	var req cartAddReq
	if err := c.BodyParser(&req); err != nil {
		return fail(c, domain.ErrInvalidArgument)
	}
	if err := validate.Body(&req); err != nil {
		return fail(c, err)
	}
	cart, err := h.Cart.Add(currentUser(c).ID, req.ProductID, req.Quantity)
	if err != nil {
		return fail(c, err)
	}
	applog.Info(c, "cart.add", map[string]any{"product": req.ProductID, "qty": req.Quantity})
	return c.JSON(cart)
}

type cartQuantityReq struct {
	ProductID string `json:"productId" validate:"required"`
	Action    string `json:"action" validate:"required"`
}

// PATCH /api/Cart/quantity steps a line item. Action is "increase" or "decrease".
func (h *CartHandler) Quantity(c *fiber.Ctx) error {
	var req cartQuantityReq
	if err := c.BodyParser(&req); err != nil {
		return fail(c, domain.ErrInvalidArgument)
	}
	if err := validate.Body(&req); err != nil {
		return fail(c, err)
	}
	cart, err := h.Cart.Adjust(currentUser(c).ID, req.ProductID, req.Action)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(cart)
}

// GET /api/Cart/token returns the cart belonging to the resolved identity.
func (h *CartHandler) Get(c *fiber.Ctx) error {
	cv, err := h.Cart.Get(currentUser(c).ID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "cart": cv})
}

type cartUpdateReq struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gte=1"`
}

// PATCH /api/Cart/update overwrites a line item's quantity.
func (h *CartHandler) Update(c *fiber.Ctx) error {
	var req cartUpdateReq
	if err := c.BodyParser(&req); err != nil {
		return fail(c, domain.ErrInvalidArgument)
	}
	if err := validate.Body(&req); err != nil {
		return fail(c, err)
	}
	cart, err := h.Cart.SetQuantity(currentUser(c).ID, req.ProductID, req.Quantity)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(cart)
}

type cartRemoveReq struct {
	ProductID string `json:"productId" validate:"required"`
}

// DELETE /api/Cart/remove
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	var req cartRemoveReq
	if err := c.BodyParser(&req); err != nil {
		return fail(c, domain.ErrInvalidArgument)
	}
	if err := validate.Body(&req); err != nil {
		return fail(c, err)
	}
	cart, err := h.Cart.Remove(currentUser(c).ID, req.ProductID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(cart)
}
