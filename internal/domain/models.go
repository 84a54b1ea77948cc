package domain

type Category struct {
	ID          string `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description,omitempty"`
	ImageURL    string `db:"image_url" json:"imageUrl,omitempty"`
	CreatedAt   string `db:"created_at" json:"createdAt"`
	UpdatedAt   string `db:"updated_at" json:"updatedAt,omitempty"`
}

type Product struct {
	ID          string  `db:"id" json:"id"`
	CategoryID  string  `db:"category_id" json:"categoryId"`
	Name        string  `db:"name" json:"name"`
	Description string  `db:"description" json:"description,omitempty"`
	Price       float64 `db:"price" json:"price"`
	Stock       int     `db:"stock" json:"stock"`
	ImageURL    string  `db:"image_url" json:"imageUrl,omitempty"`
	CreatedAt   string  `db:"created_at" json:"createdAt"`
	UpdatedAt   string  `db:"updated_at" json:"updatedAt,omitempty"`
}

type Variant struct {
	ID        string   `db:"id" json:"id"`
	ProductID string   `db:"product_id" json:"productId"`
	Size      string   `db:"size" json:"size"`
	Color     string   `db:"color" json:"color"`
	Stock     int      `db:"stock" json:"stock"`
	FilesJSON string   `db:"files_json" json:"-"`
	Files     []string `db:"-" json:"files,omitempty"`
}

// Cart is the user's singleton cart. TotalPrice is stored; every
// mutation recomputes it from the line items inside the same transaction.
type Cart struct {
	ID         string  `db:"id" json:"id"`
	UserID     string  `db:"user_id" json:"userId"`
	TotalPrice float64 `db:"total_price" json:"totalPrice"`
	UpdatedAt  string  `db:"updated_at" json:"updatedAt,omitempty"`
}

const (
	StatusPending   = "pending"
	StatusPlaced    = "order placed"
	StatusShipped   = "shipped"
	StatusDelivered = "delivered"
)

// ValidStatus reports whether s is an accepted order status. Any valid
// status is reachable from any other; no transition graph is enforced.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusPlaced, StatusShipped, StatusDelivered:
		return true
	}
	return false
}

type Order struct {
	ID          string  `db:"id" json:"id"`
	UserID      string  `db:"user_id" json:"userId"`
	TotalAmount float64 `db:"total_amount" json:"totalAmount"`
	Status      string  `db:"status" json:"status"`
	CreatedAt   string  `db:"created_at" json:"createdAt"`
}
