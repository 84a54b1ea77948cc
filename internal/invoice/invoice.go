// Package invoice holds the structured invoice document and the render
// collaborator that turns its HTML form into a PDF byte stream.
package invoice

// LineItem is one priced row of the invoice.
type LineItem struct {
	Description string
	Quantity    int
	UnitPrice   float64
	TotalPrice  float64
}

// Document is the structured invoice handed to the template and renderer.
type Document struct {
	CompanyName    string
	CompanyAddress string
	CompanyEmail   string
	CompanyPhone   string
	CustomerName   string
	CustomerEmail  string
	InvoiceNumber  string
	Date           string
	Items          []LineItem
	Subtotal       float64
	TaxRate        float64
	TaxAmount      float64
	TotalAmount    float64
}
