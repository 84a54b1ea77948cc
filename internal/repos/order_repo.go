package repos

import (
	"database/sql"

	"photonx/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

// OrderLine is a requested (product, quantity) pair.
type OrderLine struct {
	ProductID string `json:"product" validate:"required"`
	Qty       int    `json:"quantity" validate:"required,gte=1"`
}

// OrderItemRow is a persisted line item with product detail resolved.
type OrderItemRow struct {
	ProductID string  `db:"product_id" json:"productId"`
	Name      string  `db:"name" json:"name"`
	Qty       int     `db:"qty" json:"quantity"`
	Price     float64 `db:"price" json:"price"`
	Subtotal  float64 `db:"subtotal" json:"subtotal"`
}

// OrderSummary projects owner name/email next to the order for listings.
type OrderSummary struct {
	ID            string  `db:"id" json:"id"`
	UserID        string  `db:"user_id" json:"userId"`
	CustomerName  string  `db:"customer_name" json:"customerName"`
	CustomerEmail string  `db:"customer_email" json:"customerEmail"`
	TotalAmount   float64 `db:"total_amount" json:"totalAmount"`
	Status        string  `db:"status" json:"status"`
	CreatedAt     string  `db:"created_at" json:"createdAt"`
}

// CreateWithItems creates an order from the requested lines in a single
// transaction. Stock is taken with a conditional decrement, so the check
// and the write are one statement; any missing product or short stock
// rolls the whole transaction back, leaving every product untouched.
func (r *OrderRepo) CreateWithItems(userID string, lines []OrderLine) (domain.Order, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return domain.Order{}, err
	}
	defer func() { _ = tx.Rollback() }()

	orderID := uuid.NewString()
	total := 0.0

	for _, ln := range lines {
		var p struct {
			Name  string  `db:"name"`
			Price float64 `db:"price"`
			Stock int     `db:"stock"`
		}
		if err := tx.Get(&p, `SELECT name, price, stock FROM products WHERE id=?`, ln.ProductID); err != nil {
			if err == sql.ErrNoRows {
				return domain.Order{}, domain.NotFoundf("product %s", ln.ProductID)
			}
			return domain.Order{}, err
		}

		res, err := tx.Exec(`
		  UPDATE products SET stock = stock - ?, updated_at = CURRENT_TIMESTAMP
		  WHERE id = ? AND stock >= ?
		`, ln.Qty, ln.ProductID, ln.Qty)
		if err != nil {
			return domain.Order{}, err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return domain.Order{}, &domain.InsufficientStockError{ProductName: p.Name, Want: ln.Qty, Have: p.Stock}
		}

		total += p.Price * float64(ln.Qty)
		if _, err := tx.Exec(`
		  INSERT INTO order_items(order_id, product_id, qty, price)
		  VALUES(?, ?, ?, ?)
		`, orderID, ln.ProductID, ln.Qty, p.Price); err != nil {
			return domain.Order{}, err
		}
	}

	if _, err := tx.Exec(`
	  INSERT INTO orders(id, user_id, total_amount, status, created_at)
	  VALUES(?, ?, ?, ?, CURRENT_TIMESTAMP)
	`, orderID, userID, total, domain.StatusPlaced); err != nil {
		return domain.Order{}, err
	}

	var o domain.Order
	if err := tx.Get(&o, `
	  SELECT id, user_id, total_amount, status, created_at FROM orders WHERE id=?
	`, orderID); err != nil {
		return domain.Order{}, err
	}
	return o, tx.Commit()
}

func (r *OrderRepo) Get(orderID string) (domain.Order, []OrderItemRow, error) {
	var o domain.Order
	if err := r.db.Get(&o, `
	  SELECT id, user_id, total_amount, status, created_at FROM orders WHERE id = ?
	`, orderID); err != nil {
		return domain.Order{}, nil, err
	}
	items, err := r.items(orderID)
	if err != nil {
		return domain.Order{}, nil, err
	}
	return o, items, nil
}

func (r *OrderRepo) items(orderID string) ([]OrderItemRow, error) {
	var items []OrderItemRow
	err := r.db.Select(&items, `
	  SELECT oi.product_id, COALESCE(p.name,'') AS name, oi.qty, oi.price, (oi.qty*oi.price) AS subtotal
	  FROM order_items oi
	  LEFT JOIN products p ON p.id = oi.product_id
	  WHERE oi.order_id = ?
	  ORDER BY p.name
	`, orderID)
	return items, err
}

// LatestByUser returns the user's most recent order.
func (r *OrderRepo) LatestByUser(userID string) (domain.Order, []OrderItemRow, error) {
	var o domain.Order
	if err := r.db.Get(&o, `
	  SELECT id, user_id, total_amount, status, created_at
	  FROM orders WHERE user_id = ?
	  ORDER BY datetime(created_at) DESC, id DESC
	  LIMIT 1
	`, userID); err != nil {
		return domain.Order{}, nil, err
	}
	items, err := r.items(o.ID)
	if err != nil {
		return domain.Order{}, nil, err
	}
	return o, items, nil
}

func (r *OrderRepo) ListByUser(userID string) ([]OrderSummary, error) {
	var out []OrderSummary
	err := r.db.Select(&out, `
	  SELECT o.id, o.user_id, u.name AS customer_name, u.email AS customer_email,
	         o.total_amount, o.status, o.created_at
	  FROM orders o JOIN users u ON u.id = o.user_id
	  WHERE o.user_id = ?
	  ORDER BY datetime(o.created_at) DESC
	`, userID)
	return out, err
}

func (r *OrderRepo) ListAll() ([]OrderSummary, error) {
	var out []OrderSummary
	err := r.db.Select(&out, `
	  SELECT o.id, o.user_id, u.name AS customer_name, u.email AS customer_email,
	         o.total_amount, o.status, o.created_at
	  FROM orders o JOIN users u ON u.id = o.user_id
	  ORDER BY datetime(o.created_at) DESC
	`)
	return out, err
}

func (r *OrderRepo) UpdateStatus(id, status string) (bool, error) {
	res, err := r.db.Exec(`UPDATE orders SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
