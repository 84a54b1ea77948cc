package services

import (
	"database/sql"

	"photonx/internal/domain"
	"photonx/internal/repos"

	"github.com/google/uuid"
)

// CatalogService owns categories, products and variants. It is the leaf
// dependency for authoritative pricing and stock lookups.
type CatalogService struct {
	Cats     *repos.CategoryRepo
	Prods    *repos.ProductRepo
	Variants *repos.VariantRepo
}

func NewCatalogService(cats *repos.CategoryRepo, prods *repos.ProductRepo, variants *repos.VariantRepo) *CatalogService {
	return &CatalogService{Cats: cats, Prods: prods, Variants: variants}
}

func (s *CatalogService) CreateCategory(name, description, imageURL string) (domain.Category, error) {
	c := domain.Category{ID: uuid.NewString(), Name: name, Description: description, ImageURL: imageURL}
	if err := s.Cats.Create(&c); err != nil {
		return domain.Category{}, err
	}
	return s.Cats.Get(c.ID)
}

func (s *CatalogService) ListCategories() ([]domain.Category, error) {
	return s.Cats.List()
}

func (s *CatalogService) GetCategory(id string) (domain.Category, error) {
	c, err := s.Cats.Get(id)
	if err == sql.ErrNoRows {
		return domain.Category{}, domain.NotFoundf("category %s", id)
	}
	return c, err
}

func (s *CatalogService) UpdateCategory(id, name, description, imageURL string) (domain.Category, error) {
	ok, err := s.Cats.Update(id, name, description, imageURL)
	if err != nil {
		return domain.Category{}, err
	}
	if !ok {
		return domain.Category{}, domain.NotFoundf("category %s", id)
	}
	return s.Cats.Get(id)
}

func (s *CatalogService) DeleteCategory(id string) error {
	ok, err := s.Cats.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.NotFoundf("category %s", id)
	}
	return nil
}

func (s *CatalogService) CreateProduct(p domain.Product) (domain.Product, error) {
	if p.Price < 0 || p.Stock < 0 {
		return domain.Product{}, domain.ErrInvalidArgument
	}
	if _, err := s.Cats.Get(p.CategoryID); err != nil {
		if err == sql.ErrNoRows {
			return domain.Product{}, domain.NotFoundf("category %s", p.CategoryID)
		}
		return domain.Product{}, err
	}
	p.ID = uuid.NewString()
	if err := s.Prods.Create(&p); err != nil {
		return domain.Product{}, err
	}
	return s.Prods.Get(p.ID)
}

func (s *CatalogService) ListProducts() ([]domain.Product, error) {
	return s.Prods.List()
}

func (s *CatalogService) GetProduct(id string) (domain.Product, error) {
	p, err := s.Prods.Get(id)
	if err == sql.ErrNoRows {
		return domain.Product{}, domain.NotFoundf("product %s", id)
	}
	return p, err
}

func (s *CatalogService) UpdateProduct(id string, p domain.Product) (domain.Product, error) {
	if p.Price < 0 || p.Stock < 0 {
		return domain.Product{}, domain.ErrInvalidArgument
	}
	ok, err := s.Prods.Update(id, &p)
	if err != nil {
		return domain.Product{}, err
	}
	if !ok {
		return domain.Product{}, domain.NotFoundf("product %s", id)
	}
	return s.Prods.Get(id)
}

func (s *CatalogService) DeleteProduct(id string) error {
	ok, err := s.Prods.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.NotFoundf("product %s", id)
	}
	return nil
}

// CreateVariant enforces the (product, size, color) uniqueness triple.
// files are opaque stored-file references from the upload collaborator.
func (s *CatalogService) CreateVariant(productID, size, color string, stock int, files []string) (domain.Variant, error) {
	if size == "" || color == "" || stock < 0 {
		return domain.Variant{}, domain.ErrInvalidArgument
	}
	if _, err := s.GetProduct(productID); err != nil {
		return domain.Variant{}, err
	}
	exists, err := s.Variants.Exists(productID, size, color)
	if err != nil {
		return domain.Variant{}, err
	}
	if exists {
		return domain.Variant{}, domain.ErrDuplicate
	}
	if files == nil {
		files = []string{}
	}
	v := domain.Variant{ID: uuid.NewString(), ProductID: productID, Size: size, Color: color, Stock: stock, Files: files}
	if err := s.Variants.Create(&v); err != nil {
		return domain.Variant{}, err
	}
	return v, nil
}

func (s *CatalogService) ListVariants(productID string) ([]domain.Variant, error) {
	return s.Variants.ListByProduct(productID)
}
