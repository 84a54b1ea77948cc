package handlers

import (
	"photonx/internal/domain"
	applog "photonx/internal/log"
	"photonx/internal/repos"
	"photonx/internal/services"
	"photonx/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	Order   *services.OrderService
	Invoice *services.InvoiceService
}

type createOrderReq struct {
	UserID   string            `json:"userId"`
	Products []repos.OrderLine `json:"products" validate:"required,min=1,dive"`
}

// POST /api/Order/create places the order for the authenticated
// user; a userId in the body may only name that same user.
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var req createOrderReq
	if err := c.BodyParser(&req); err != nil {
		return fail(c, domain.ErrInvalidArgument)
	}
	if err := validate.Body(&req); err != nil {
		return fail(c, err)
	}
	u := currentUser(c)
	if req.UserID != "" && req.UserID != u.ID {
		return fail(c, domain.ErrForbidden)
	}
	o, err := h.Order.Create(u.ID, req.Products)
	if err != nil {
		applog.Security(c, "order.create.fail", map[string]any{"user_id": u.ID, "error": err.Error()})
		return fail(c, err)
	}
	applog.Audit(c, "order.create", map[string]any{"order_id": o.ID, "total": o.TotalAmount})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true, "message": "Order created successfully", "order": o,
	})
}

// GET /api/Order/getbytoken returns the most recent order for the resolved identity.
func (h *OrderHandler) ByToken(c *fiber.Ctx) error {
	detail, err := h.Order.ByOwner(currentUser(c).ID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "order": detail})
}

// GET /api/Order/getallorders
func (h *OrderHandler) ListAll(c *fiber.Ctx) error {
	orders, err := h.Order.ListAll()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "orders": orders})
}

type statusReq struct {
	Status string `json:"status" validate:"required"`
}

// PATCH /api/Order/status/:orderId
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	orderID, ok := validate.ID(c.Params("orderId"))
	if !ok {
		return fail(c, domain.ErrInvalidArgument)
	}
	var req statusReq
	if err := c.BodyParser(&req); err != nil {
		return fail(c, domain.ErrInvalidArgument)
	}
	if err := validate.Body(&req); err != nil {
		return fail(c, err)
	}
	o, err := h.Order.UpdateStatus(orderID, req.Status)
	if err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "order.status.update", map[string]any{"order_id": orderID, "status": req.Status})
	return c.JSON(fiber.Map{"success": true, "message": "Order status updated successfully", "order": o})
}

// GET /api/Order/Invoice/:orderId renders the invoice PDF and returns
// it as an attachment.
func (h *OrderHandler) GetInvoice(c *fiber.Ctx) error {
	orderID, ok := validate.ID(c.Params("orderId"))
	if !ok {
		return fail(c, domain.ErrInvalidArgument)
	}
	path, name, err := h.Invoice.Generate(c.UserContext(), orderID)
	if err != nil {
		applog.Error(c, "invoice.generate.fail", err, map[string]any{"order_id": orderID})
		return fail(c, err)
	}
	applog.Info(c, "invoice.generate", map[string]any{"order_id": orderID, "path": path})
	return c.Download(path, name)
}
