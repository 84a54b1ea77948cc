package handlers

import (
	"mime/multipart"
	"path/filepath"
	"strings"

	"photonx/internal/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var allowedUploadExt = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".pdf": true,
}

// saveUpload stores one uploaded file under dir and returns its public
// path reference. Storage internals stay opaque to the rest of the app;
// callers only ever see the path string.
func saveUpload(c *fiber.Ctx, fh *multipart.FileHeader, dir string) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedUploadExt[ext] {
		return "", domain.ErrInvalidArgument
	}
	name := uuid.NewString() + ext
	if err := c.SaveFile(fh, filepath.Join(dir, name)); err != nil {
		return "", err
	}
	return "/public/uploads/" + name, nil
}
