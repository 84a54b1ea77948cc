package handlers

import (
	"strconv"

	"photonx/internal/domain"
	"photonx/internal/services"
	"photonx/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	Catalog   *services.CatalogService
	UploadDir string
}

func (h *ProductHandler) parseForm(c *fiber.Ctx) (domain.Product, error) {
	name, ok := validate.Name(c.FormValue("name"))
	if !ok {
		return domain.Product{}, domain.ErrInvalidArgument
	}
	price, err := strconv.ParseFloat(c.FormValue("price"), 64)
	if err != nil || price < 0 {
		return domain.Product{}, domain.ErrInvalidArgument
	}
	stock := 0
	if s := c.FormValue("stock"); s != "" {
		if stock, err = strconv.Atoi(s); err != nil || stock < 0 {
			return domain.Product{}, domain.ErrInvalidArgument
		}
	}
	return domain.Product{
		CategoryID:  c.FormValue("categoryId"),
		Name:        name,
		Description: c.FormValue("description"),
		Price:       price,
		Stock:       stock,
	}, nil
}

// POST /api/Product/create (multipart: image, name, price, stock, categoryId, description)
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	p, err := h.parseForm(c)
	if err != nil {
		return fail(c, err)
	}
	fh, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "No files uploaded"})
	}
	if p.ImageURL, err = saveUpload(c, fh, h.UploadDir); err != nil {
		return fail(c, err)
	}
	created, err := h.Catalog.CreateProduct(p)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// GET /api/Product/get
func (h *ProductHandler) List(c *fiber.Ctx) error {
	prods, err := h.Catalog.ListProducts()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(prods)
}

// GET /api/Product/get/:id
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return fail(c, domain.ErrInvalidArgument)
	}
	p, err := h.Catalog.GetProduct(id)
	if err != nil {
		return fail(c, err)
	}
	variants, err := h.Catalog.ListVariants(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"product": p, "variants": variants})
}

// PATCH /api/Product/update/:id (multipart; image optional)
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return fail(c, domain.ErrInvalidArgument)
	}
	p, err := h.parseForm(c)
	if err != nil {
		return fail(c, err)
	}
	if fh, err := c.FormFile("image"); err == nil {
		if p.ImageURL, err = saveUpload(c, fh, h.UploadDir); err != nil {
			return fail(c, err)
		}
	}
	updated, err := h.Catalog.UpdateProduct(id, p)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(updated)
}

// DELETE /api/Product/delete/:id
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return fail(c, domain.ErrInvalidArgument)
	}
	if err := h.Catalog.DeleteProduct(id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "message": "Product removed"})
}
