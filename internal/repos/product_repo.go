package repos

import (
	"photonx/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const productCols = `
  id, category_id, name, COALESCE(description,'') AS description, price, stock,
  COALESCE(image_url,'') AS image_url, created_at, COALESCE(updated_at,'') AS updated_at`

func (r *ProductRepo) Create(p *domain.Product) error {
	_, err := r.db.Exec(`
	  INSERT INTO products(id,category_id,name,description,price,stock,image_url)
	  VALUES(?,?,?,?,?,?,?)
	`, p.ID, p.CategoryID, p.Name, p.Description, p.Price, p.Stock, p.ImageURL)
	return err
}

func (r *ProductRepo) List() ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `SELECT `+productCols+` FROM products ORDER BY created_at DESC`)
	return out, err
}

func (r *ProductRepo) Get(id string) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `SELECT `+productCols+` FROM products WHERE id = ?`, id)
	return p, err
}

func (r *ProductRepo) Update(id string, p *domain.Product) (bool, error) {
	res, err := r.db.Exec(`
	  UPDATE products
	  SET category_id=?, name=?, description=?, price=?, stock=?,
	      image_url=COALESCE(NULLIF(?,''), image_url), updated_at=CURRENT_TIMESTAMP
	  WHERE id=?
	`, p.CategoryID, p.Name, p.Description, p.Price, p.Stock, p.ImageURL, id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *ProductRepo) Delete(id string) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM products WHERE id=?`, id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
