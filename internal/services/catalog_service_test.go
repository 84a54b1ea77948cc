package services_test

import (
	"errors"
	"testing"

	"photonx/internal/domain"
	"photonx/internal/repos"
	"photonx/internal/services"
)

func catalogSvc(t *testing.T) *services.CatalogService {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	return services.NewCatalogService(repos.NewCategoryRepo(db), repos.NewProductRepo(db), repos.NewVariantRepo(db))
}

func TestCatalog_ProductLifecycle(t *testing.T) {
	svc := catalogSvc(t)

	p, err := svc.CreateProduct(domain.Product{
		CategoryID: "cameras", Name: "Tripod", Description: "carbon legs", Price: 79.5, Stock: 6,
	})
	if err != nil {
		t.Fatal(err)
	}
	if p.ID == "" || p.Price != 79.5 {
		t.Fatalf("bad created product: %+v", p)
	}

	p.Price = 89.0
	updated, err := svc.UpdateProduct(p.ID, p)
	if err != nil {
		t.Fatal(err)
	}
	if updated.Price != 89.0 {
		t.Fatalf("want price 89, got %v", updated.Price)
	}

	if err := svc.DeleteProduct(p.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.GetProduct(p.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound after delete, got %v", err)
	}
}

func TestCatalog_CreateProductUnknownCategory(t *testing.T) {
	svc := catalogSvc(t)
	_, err := svc.CreateProduct(domain.Product{CategoryID: "ghost", Name: "X", Price: 1})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestCatalog_VariantUniqueness(t *testing.T) {
	svc := catalogSvc(t)

	v, err := svc.CreateVariant("cam-x100", "standard", "red", 3, []string{"/public/uploads/red.jpg"})
	if err != nil {
		t.Fatal(err)
	}
	if v.ID == "" || len(v.Files) != 1 {
		t.Fatalf("bad variant: %+v", v)
	}

	// same (product, size, color) triple is rejected
	if _, err := svc.CreateVariant("cam-x100", "standard", "red", 9, nil); !errors.Is(err, domain.ErrDuplicate) {
		t.Fatalf("want ErrDuplicate, got %v", err)
	}
	// same size with a new color is fine
	if _, err := svc.CreateVariant("cam-x100", "standard", "teal", 2, nil); err != nil {
		t.Fatal(err)
	}
	// missing product
	if _, err := svc.CreateVariant("ghost", "s", "c", 1, nil); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}

	vars, err := svc.ListVariants("cam-x100")
	if err != nil {
		t.Fatal(err)
	}
	// two seeded variants plus the two created here
	if len(vars) != 4 {
		t.Fatalf("want 4 variants, got %d", len(vars))
	}
}
