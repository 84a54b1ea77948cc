package services

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"photonx/internal/domain"
	"photonx/internal/invoice"
	"photonx/internal/repos"

	"github.com/gofiber/fiber/v2"
)

// Seller identity printed on every invoice.
const (
	companyName    = "Photonx"
	companyAddress = "Photonx Company, HYD, India"
	companyEmail   = "info@photonx.com"
	companyPhone   = "+91 8987 7867 98"
)

const taxRate = 10.0 // percent

// InvoiceService derives a priced breakdown from a persisted order and
// hands the rendered HTML to the PDF collaborator. Invoices are
// recomputed on every request, never stored as entities.
type InvoiceService struct {
	Orders   *repos.OrderRepo
	Users    *repos.UserRepo
	Views    fiber.Views
	Renderer invoice.Renderer
	Dir      string
}

func NewInvoiceService(orders *repos.OrderRepo, users *repos.UserRepo, views fiber.Views, r invoice.Renderer, dir string) *InvoiceService {
	return &InvoiceService{Orders: orders, Users: users, Views: views, Renderer: r, Dir: dir}
}

// Build computes the structured invoice document for an order. Line
// items whose product no longer resolves, or with zero quantity, are
// skipped.
func (s *InvoiceService) Build(orderID string) (invoice.Document, error) {
	o, items, err := s.Orders.Get(orderID)
	if err != nil {
		if err == sql.ErrNoRows {
			return invoice.Document{}, domain.NotFoundf("order %s", orderID)
		}
		return invoice.Document{}, err
	}
	u, err := s.Users.ByID(o.UserID)
	if err != nil {
		if err == sql.ErrNoRows {
			return invoice.Document{}, domain.NotFoundf("user %s", o.UserID)
		}
		return invoice.Document{}, err
	}

	doc := invoice.Document{
		CompanyName:    companyName,
		CompanyAddress: companyAddress,
		CompanyEmail:   companyEmail,
		CompanyPhone:   companyPhone,
		CustomerName:   u.Name,
		CustomerEmail:  u.Email,
		InvoiceNumber:  "INV-" + orderID,
		Date:           time.Now().Format("01/02/2006"),
		TaxRate:        taxRate,
	}
	for _, it := range items {
		if it.Name == "" || it.Qty == 0 {
			continue
		}
		line := invoice.LineItem{
			Description: it.Name,
			Quantity:    it.Qty,
			UnitPrice:   it.Price,
			TotalPrice:  it.Price * float64(it.Qty),
		}
		doc.Items = append(doc.Items, line)
		doc.Subtotal += line.TotalPrice
	}
	doc.TaxAmount = doc.Subtotal * (taxRate / 100)
	doc.TotalAmount = doc.Subtotal + doc.TaxAmount
	return doc, nil
}

// Generate renders the invoice PDF to a deterministic path keyed by the
// invoice number and returns it for download.
func (s *InvoiceService) Generate(ctx context.Context, orderID string) (path, name string, err error) {
	doc, err := s.Build(orderID)
	if err != nil {
		return "", "", err
	}

	var buf bytes.Buffer
	if err := s.Views.Render(&buf, "invoice", doc); err != nil {
		return "", "", fmt.Errorf("%w: %v", domain.ErrRenderFailed, err)
	}

	pdf, err := s.Renderer.Render(ctx, buf.Bytes())
	if err != nil {
		return "", "", err
	}

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", "", err
	}
	path = filepath.Join(s.Dir, fmt.Sprintf("invoice_%s.pdf", doc.InvoiceNumber))
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return "", "", err
	}
	return path, fmt.Sprintf("invoice_%s.pdf", orderID), nil
}
