package services

import (
	"database/sql"

	"photonx/internal/domain"
	"photonx/internal/repos"
)

const (
	ActionIncrease = "increase"
	ActionDecrease = "decrease"
)

type CartService struct {
	Carts *repos.CartRepo
	Prods *repos.ProductRepo
}

func NewCartService(carts *repos.CartRepo, prods *repos.ProductRepo) *CartService {
	return &CartService{Carts: carts, Prods: prods}
}

// CartView is the cart with line items resolved to product detail.
type CartView struct {
	domain.Cart
	Items []repos.CartItemRow `json:"items"`
}

// Add puts qty units of a product into the user's cart, creating the
// cart lazily on first use and merging into an existing line item.
func (s *CartService) Add(userID, productID string, qty int) (domain.Cart, error) {
	if qty < 1 {
		return domain.Cart{}, domain.ErrInvalidArgument
	}
	if _, err := s.Prods.Get(productID); err != nil {
		if err == sql.ErrNoRows {
			return domain.Cart{}, domain.NotFoundf("product %s", productID)
		}
		return domain.Cart{}, err
	}
	return s.Carts.AddItem(userID, productID, qty)
}

// Adjust moves a line item's quantity by one unit. Decreasing a line at
// quantity 1 removes it entirely rather than leaving it at 0. The action
// is checked before anything else so a bad value never touches the cart.
func (s *CartService) Adjust(userID, productID, action string) (domain.Cart, error) {
	if action != ActionIncrease && action != ActionDecrease {
		return domain.Cart{}, domain.ErrInvalidArgument
	}
	cart, qty, err := s.lineItem(userID, productID)
	if err != nil {
		return domain.Cart{}, err
	}
	if action == ActionIncrease {
		return s.Carts.SetItemQty(cart.ID, productID, qty+1)
	}
	if qty > 1 {
		return s.Carts.SetItemQty(cart.ID, productID, qty-1)
	}
	return s.Carts.RemoveItem(cart.ID, productID)
}

// SetQuantity overwrites a line item's quantity. Zero is rejected;
// callers remove the line instead.
func (s *CartService) SetQuantity(userID, productID string, qty int) (domain.Cart, error) {
	if qty < 1 {
		return domain.Cart{}, domain.ErrInvalidArgument
	}
	cart, _, err := s.lineItem(userID, productID)
	if err != nil {
		return domain.Cart{}, err
	}
	return s.Carts.SetItemQty(cart.ID, productID, qty)
}

// Remove deletes a line item from the user's cart.
func (s *CartService) Remove(userID, productID string) (domain.Cart, error) {
	cart, _, err := s.lineItem(userID, productID)
	if err != nil {
		return domain.Cart{}, err
	}
	return s.Carts.RemoveItem(cart.ID, productID)
}

// Get returns the user's cart with items resolved to product detail.
func (s *CartService) Get(userID string) (CartView, error) {
	cart, err := s.Carts.ByUser(userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return CartView{}, domain.NotFoundf("cart for user %s", userID)
		}
		return CartView{}, err
	}
	items, err := s.Carts.Items(cart.ID)
	if err != nil {
		return CartView{}, err
	}
	return CartView{Cart: cart, Items: items}, nil
}

// lineItem resolves cart, line item and product, mapping each missing
// piece to NotFound.
func (s *CartService) lineItem(userID, productID string) (domain.Cart, int, error) {
	cart, err := s.Carts.ByUser(userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.Cart{}, 0, domain.NotFoundf("cart for user %s", userID)
		}
		return domain.Cart{}, 0, err
	}
	qty, err := s.Carts.ItemQty(cart.ID, productID)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.Cart{}, 0, domain.NotFoundf("item %s in cart", productID)
		}
		return domain.Cart{}, 0, err
	}
	if _, err := s.Prods.Get(productID); err != nil {
		if err == sql.ErrNoRows {
			return domain.Cart{}, 0, domain.NotFoundf("product %s", productID)
		}
		return domain.Cart{}, 0, err
	}
	return cart, qty, nil
}
