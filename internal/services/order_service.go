package services

import (
	"database/sql"

	"photonx/internal/domain"
	"photonx/internal/repos"
)

type OrderService struct {
	Orders *repos.OrderRepo
	Users  *repos.UserRepo
}

func NewOrderService(orders *repos.OrderRepo, users *repos.UserRepo) *OrderService {
	return &OrderService{Orders: orders, Users: users}
}

// OrderDetail is an order with owner and product detail resolved.
type OrderDetail struct {
	domain.Order
	Customer *domain.User         `json:"customer"`
	Items    []repos.OrderItemRow `json:"items"`
}

// Create places an order for the requested lines. Duplicate product
// entries are merged before hitting the store; the repo runs the whole
// thing in one transaction so a failing line leaves no stock touched.
func (s *OrderService) Create(userID string, lines []repos.OrderLine) (domain.Order, error) {
	if len(lines) == 0 {
		return domain.Order{}, domain.ErrInvalidArgument
	}
	if _, err := s.Users.ByID(userID); err != nil {
		if err == sql.ErrNoRows {
			return domain.Order{}, domain.NotFoundf("user %s", userID)
		}
		return domain.Order{}, err
	}

	merged := make([]repos.OrderLine, 0, len(lines))
	index := map[string]int{}
	for _, ln := range lines {
		if ln.ProductID == "" || ln.Qty < 1 {
			return domain.Order{}, domain.ErrInvalidArgument
		}
		if i, ok := index[ln.ProductID]; ok {
			merged[i].Qty += ln.Qty
			continue
		}
		index[ln.ProductID] = len(merged)
		merged = append(merged, ln)
	}

	return s.Orders.CreateWithItems(userID, merged)
}

// ByOwner returns the user's most recent order with detail resolved.
// A user may hold several orders; callers wanting all of them use
// ListByOwner.
func (s *OrderService) ByOwner(userID string) (OrderDetail, error) {
	o, items, err := s.Orders.LatestByUser(userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return OrderDetail{}, domain.NotFoundf("order for user %s", userID)
		}
		return OrderDetail{}, err
	}
	u, err := s.Users.ByID(userID)
	if err != nil {
		return OrderDetail{}, err
	}
	return OrderDetail{Order: o, Customer: u, Items: items}, nil
}

func (s *OrderService) ListByOwner(userID string) ([]repos.OrderSummary, error) {
	return s.Orders.ListByUser(userID)
}

// ListAll returns every order with owner projection; an empty result is
// reported as NotFound.
func (s *OrderService) ListAll() ([]repos.OrderSummary, error) {
	out, err := s.Orders.ListAll()
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, domain.NotFoundf("orders")
	}
	return out, nil
}

// UpdateStatus overwrites the order status unconditionally; any valid
// status is reachable from any other.
func (s *OrderService) UpdateStatus(orderID, status string) (domain.Order, error) {
	if !domain.ValidStatus(status) {
		return domain.Order{}, domain.ErrInvalidArgument
	}
	ok, err := s.Orders.UpdateStatus(orderID, status)
	if err != nil {
		return domain.Order{}, err
	}
	if !ok {
		return domain.Order{}, domain.NotFoundf("order %s", orderID)
	}
	o, _, err := s.Orders.Get(orderID)
	return o, err
}
