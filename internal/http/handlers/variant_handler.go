package handlers

import (
	"strconv"

	"photonx/internal/domain"
	"photonx/internal/services"
	"photonx/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type VariantHandler struct {
	Catalog   *services.CatalogService
	UploadDir string
}

// POST /api/Variant/create (multipart: product, size, color, stock, files)
func (h *VariantHandler) Create(c *fiber.Ctx) error {
	productID, ok := validate.ID(c.FormValue("product"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid product ID format."})
	}
	stock := 0
	if s := c.FormValue("stock"); s != "" {
		var err error
		if stock, err = strconv.Atoi(s); err != nil || stock < 0 {
			return fail(c, domain.ErrInvalidArgument)
		}
	}

	var files []string
	if form, err := c.MultipartForm(); err == nil && form != nil {
		for _, fh := range form.File["files"] {
			url, err := saveUpload(c, fh, h.UploadDir)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"success": false, "message": "Invalid file type. Only [png, jpeg, jpg, pdf] are allowed.",
				})
			}
			files = append(files, url)
		}
	}

	v, err := h.Catalog.CreateVariant(productID, c.FormValue("size"), c.FormValue("color"), stock, files)
	if err != nil {
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false, "message": "Variant with this color and size already exists.",
			})
		}
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "variant": v})
}
