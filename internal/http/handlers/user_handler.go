package handlers

import (
	"photonx/internal/domain"
	applog "photonx/internal/log"
	"photonx/internal/repos"
	"photonx/internal/services"
	"photonx/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	Auth  *services.AuthService
	Users *repos.UserRepo
}

type registerReq struct {
	Name     string `json:"name" validate:"required,max=64"`
	Email    string `json:"email" validate:"required,email,max=64"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// POST /api/User/register
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req registerReq
	if err := c.BodyParser(&req); err != nil {
		return fail(c, domain.ErrInvalidArgument)
	}
	if err := validate.Body(&req); err != nil {
		return fail(c, err)
	}
	tok, u, err := h.Auth.Register(req.Name, req.Email, req.Password)
	if err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "user.register", map[string]any{"user_id": u.ID})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true, "message": "Registered successfully", "token": tok, "user": u,
	})
}

type loginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// POST /api/User/login
func (h *UserHandler) Login(c *fiber.Ctx) error {
	var req loginReq
	if err := c.BodyParser(&req); err != nil {
		return fail(c, domain.ErrInvalidArgument)
	}
	if err := validate.Body(&req); err != nil {
		return fail(c, err)
	}
	tok, u, err := h.Auth.Login(req.Email, req.Password)
	if err != nil {
		applog.Security(c, "user.login.fail", map[string]any{"email": req.Email})
		return fail(c, err)
	}
	applog.Audit(c, "user.login", map[string]any{"user_id": u.ID})
	return c.JSON(fiber.Map{"success": true, "message": "Logged in successfully", "token": tok, "user": u})
}

// GET /api/User/get
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.Users.List()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(users)
}

// GET /api/User/details returns the identity resolved from the bearer token.
func (h *UserHandler) Details(c *fiber.Ctx) error {
	return c.JSON(currentUser(c))
}

type updateUserReq struct {
	Name  string `json:"name" validate:"required,max=64"`
	Email string `json:"email" validate:"required,email,max=64"`
}

// PATCH /api/User/update/:id
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return fail(c, domain.ErrInvalidArgument)
	}
	var req updateUserReq
	if err := c.BodyParser(&req); err != nil {
		return fail(c, domain.ErrInvalidArgument)
	}
	if err := validate.Body(&req); err != nil {
		return fail(c, err)
	}
	changed, err := h.Users.Update(id, req.Name, req.Email)
	if err != nil {
		return fail(c, err)
	}
	if !changed {
		return fail(c, domain.NotFoundf("user %s", id))
	}
	u, err := h.Users.ByID(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(u)
}

// DELETE /api/User/delete/:id
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return fail(c, domain.ErrInvalidArgument)
	}
	deleted, err := h.Users.Delete(id)
	if err != nil {
		return fail(c, err)
	}
	if !deleted {
		return fail(c, domain.NotFoundf("user %s", id))
	}
	applog.Audit(c, "user.delete", map[string]any{"user_id": id})
	return c.JSON(fiber.Map{"success": true, "message": "User removed"})
}

type resetReq struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// POST /api/User/reset
func (h *UserHandler) Reset(c *fiber.Ctx) error {
	var req resetReq
	if err := c.BodyParser(&req); err != nil {
		return fail(c, domain.ErrInvalidArgument)
	}
	if err := validate.Body(&req); err != nil {
		return fail(c, err)
	}
	if err := h.Auth.ResetPassword(req.Token, req.Password); err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "user.reset", nil)
	return c.JSON(fiber.Map{"success": true, "message": "Password reset successful"})
}
