package handlers

import (
	"photonx/internal/domain"
	"photonx/internal/services"
	"photonx/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CategoryHandler struct {
	Catalog   *services.CatalogService
	UploadDir string
}

// POST /api/Category/create (multipart: image, name, description)
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	name, ok := validate.Name(c.FormValue("name"))
	if !ok {
		return fail(c, domain.ErrInvalidArgument)
	}
	fh, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "No files uploaded"})
	}
	imageURL, err := saveUpload(c, fh, h.UploadDir)
	if err != nil {
		return fail(c, err)
	}
	cat, err := h.Catalog.CreateCategory(name, c.FormValue("description"), imageURL)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(cat)
}

// GET /api/Category/get
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	cats, err := h.Catalog.ListCategories()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(cats)
}

// GET /api/Category/get/:id
func (h *CategoryHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return fail(c, domain.ErrInvalidArgument)
	}
	cat, err := h.Catalog.GetCategory(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(cat)
}

// PATCH /api/Category/update/:id (multipart; image optional)
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return fail(c, domain.ErrInvalidArgument)
	}
	name, ok := validate.Name(c.FormValue("name"))
	if !ok {
		return fail(c, domain.ErrInvalidArgument)
	}
	imageURL := ""
	if fh, err := c.FormFile("image"); err == nil {
		if imageURL, err = saveUpload(c, fh, h.UploadDir); err != nil {
			return fail(c, err)
		}
	}
	cat, err := h.Catalog.UpdateCategory(id, name, c.FormValue("description"), imageURL)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(cat)
}

// DELETE /api/Category/delete/:id
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return fail(c, domain.ErrInvalidArgument)
	}
	if err := h.Catalog.DeleteCategory(id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "message": "Category removed"})
}
