package repos

import (
	"photonx/internal/domain"

	"github.com/jmoiron/sqlx"
)

type CategoryRepo struct{ db *sqlx.DB }

func NewCategoryRepo(db *sqlx.DB) *CategoryRepo { return &CategoryRepo{db: db} }

func (r *CategoryRepo) Create(c *domain.Category) error {
	_, err := r.db.Exec(`INSERT INTO categories(id,name,description,image_url) VALUES(?,?,?,?)`,
		c.ID, c.Name, c.Description, c.ImageURL)
	return err
}

func (r *CategoryRepo) List() ([]domain.Category, error) {
	var out []domain.Category
	err := r.db.Select(&out, `
	  SELECT id, name, COALESCE(description,'') AS description, COALESCE(image_url,'') AS image_url,
	         created_at, COALESCE(updated_at,'') AS updated_at
	  FROM categories
	  ORDER BY name
	`)
	return out, err
}

func (r *CategoryRepo) Get(id string) (domain.Category, error) {
	var c domain.Category
	err := r.db.Get(&c, `
	  SELECT id, name, COALESCE(description,'') AS description, COALESCE(image_url,'') AS image_url,
	         created_at, COALESCE(updated_at,'') AS updated_at
	  FROM categories
	  WHERE id = ?
	`, id)
	return c, err
}

// Update overwrites the provided fields; empty imageURL keeps the stored one.
func (r *CategoryRepo) Update(id, name, description, imageURL string) (bool, error) {
	res, err := r.db.Exec(`
	  UPDATE categories
	  SET name=?, description=?, image_url=COALESCE(NULLIF(?,''), image_url), updated_at=CURRENT_TIMESTAMP
	  WHERE id=?
	`, name, description, imageURL, id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *CategoryRepo) Delete(id string) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM categories WHERE id=?`, id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
