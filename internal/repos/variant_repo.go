package repos

import (
	"encoding/json"

	"photonx/internal/domain"

	"github.com/jmoiron/sqlx"
)

type VariantRepo struct{ db *sqlx.DB }

func NewVariantRepo(db *sqlx.DB) *VariantRepo { return &VariantRepo{db: db} }

func (r *VariantRepo) Create(v *domain.Variant) error {
	files := v.FilesJSON
	if files == "" {
		b, _ := json.Marshal(v.Files)
		files = string(b)
	}
	_, err := r.db.Exec(`
	  INSERT INTO variants(id,product_id,size,color,stock,files_json)
	  VALUES(?,?,?,?,?,?)
	`, v.ID, v.ProductID, v.Size, v.Color, v.Stock, files)
	return err
}

// Exists reports whether a variant with the same (product, size, color)
// triple is already stored.
func (r *VariantRepo) Exists(productID, size, color string) (bool, error) {
	var n int
	err := r.db.Get(&n, `
	  SELECT COUNT(*) FROM variants WHERE product_id=? AND size=? AND color=?
	`, productID, size, color)
	return n > 0, err
}

func (r *VariantRepo) ListByProduct(productID string) ([]domain.Variant, error) {
	var out []domain.Variant
	if err := r.db.Select(&out, `
	  SELECT id, product_id, size, color, stock, files_json
	  FROM variants
	  WHERE product_id = ?
	  ORDER BY size, color
	`, productID); err != nil {
		return nil, err
	}
	for i := range out {
		_ = json.Unmarshal([]byte(out[i].FilesJSON), &out[i].Files)
	}
	return out, nil
}
