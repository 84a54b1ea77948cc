package repos

import (
	"database/sql"

	"photonx/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type CartRepo struct{ db *sqlx.DB }

func NewCartRepo(db *sqlx.DB) *CartRepo { return &CartRepo{db: db} }

// CartItemRow is a line item with product detail resolved.
type CartItemRow struct {
	ProductID string  `db:"product_id" json:"productId"`
	Name      string  `db:"name" json:"name"`
	Price     float64 `db:"price" json:"price"`
	Qty       int     `db:"qty" json:"quantity"`
	Subtotal  float64 `db:"subtotal" json:"subtotal"`
}

func (r *CartRepo) ByUser(userID string) (domain.Cart, error) {
	var c domain.Cart
	err := r.db.Get(&c, `
	  SELECT id, user_id, total_price, COALESCE(updated_at,'') AS updated_at
	  FROM carts WHERE user_id = ?
	`, userID)
	return c, err
}

func (r *CartRepo) Items(cartID string) ([]CartItemRow, error) {
	rows := []CartItemRow{}
	err := r.db.Select(&rows, `
	  SELECT ci.product_id, p.name, p.price, ci.qty, (ci.qty*p.price) AS subtotal
	  FROM cart_items ci JOIN products p ON p.id = ci.product_id
	  WHERE ci.cart_id = ?
	  ORDER BY p.name
	`, cartID)
	return rows, err
}

// ItemQty returns the stored quantity for a line item, or sql.ErrNoRows.
func (r *CartRepo) ItemQty(cartID, productID string) (int, error) {
	var qty int
	err := r.db.Get(&qty, `SELECT qty FROM cart_items WHERE cart_id=? AND product_id=?`, cartID, productID)
	return qty, err
}

// AddItem creates the user's cart if needed and adds qty units of the
// product, merging into an existing line item. The stored total is
// recomputed from the line items before the transaction commits.
func (r *CartRepo) AddItem(userID, productID string, qty int) (domain.Cart, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return domain.Cart{}, err
	}
	defer func() { _ = tx.Rollback() }()

	var cartID string
	if err := tx.Get(&cartID, `SELECT id FROM carts WHERE user_id=?`, userID); err != nil {
		if err != sql.ErrNoRows {
			return domain.Cart{}, err
		}
		cartID = uuid.NewString()
		if _, err := tx.Exec(`INSERT INTO carts(id,user_id,updated_at) VALUES(?,?,CURRENT_TIMESTAMP)`,
			cartID, userID); err != nil {
			return domain.Cart{}, err
		}
	}

	if _, err := tx.Exec(`
	  INSERT INTO cart_items(cart_id,product_id,qty,created_at)
	  VALUES(?,?,?,CURRENT_TIMESTAMP)
	  ON CONFLICT(cart_id,product_id) DO UPDATE
	  SET qty = cart_items.qty + excluded.qty, updated_at = CURRENT_TIMESTAMP
	`, cartID, productID, qty); err != nil {
		return domain.Cart{}, err
	}

	return finishCartTx(tx, cartID)
}

// SetItemQty overwrites a line item's quantity (qty >= 1).
func (r *CartRepo) SetItemQty(cartID, productID string, qty int) (domain.Cart, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return domain.Cart{}, err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`
	  UPDATE cart_items SET qty=?, updated_at=CURRENT_TIMESTAMP
	  WHERE cart_id=? AND product_id=?
	`, qty, cartID, productID); err != nil {
		return domain.Cart{}, err
	}

	return finishCartTx(tx, cartID)
}

// RemoveItem deletes a line item entirely.
func (r *CartRepo) RemoveItem(cartID, productID string) (domain.Cart, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return domain.Cart{}, err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM cart_items WHERE cart_id=? AND product_id=?`, cartID, productID); err != nil {
		return domain.Cart{}, err
	}

	return finishCartTx(tx, cartID)
}

// finishCartTx recomputes the stored total from the line items at current
// product prices, commits, and returns the fresh cart row. Keeping the
// recompute inside the mutation transaction rules out drift between the
// cached total and the items.
func finishCartTx(tx *sqlx.Tx, cartID string) (domain.Cart, error) {
	if _, err := tx.Exec(`
	  UPDATE carts
	  SET total_price = COALESCE((
	        SELECT SUM(ci.qty * p.price)
	        FROM cart_items ci JOIN products p ON p.id = ci.product_id
	        WHERE ci.cart_id = carts.id
	      ), 0),
	      updated_at = CURRENT_TIMESTAMP
	  WHERE id = ?
	`, cartID); err != nil {
		return domain.Cart{}, err
	}

	var c domain.Cart
	if err := tx.Get(&c, `
	  SELECT id, user_id, total_price, COALESCE(updated_at,'') AS updated_at
	  FROM carts WHERE id = ?
	`, cartID); err != nil {
		return domain.Cart{}, err
	}
	return c, tx.Commit()
}
