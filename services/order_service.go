package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Bossnapi119/pakawinasiayam/entity"
	"github.com/Bossnapi119/pakawinasiayam/repository"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrCancelRequiresAdmin = errors.New("cancellation is an admin action")
)

type OrderService struct {
	DB   *gorm.DB
	Repo *repository.OrderRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo}
}

// ----- DTOs from Controller -----

type OrderItemIn struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"` // unit cents, snapshot from the cart
}

type CreateOrderReq struct {
	CustomerDetails
	OrderType entity.OrderType `json:"orderType"`
	Items     []OrderItemIn    `json:"items"`
}

type CreateOrderRes struct {
	OrderID uint  `json:"orderId"`
	Total   int64 `json:"total"`
}

// Submit is the order submission pipeline: validation gate, then one
// transaction inserting the order and its item snapshots. The total is
// computed here from the snapshot lines; a client-sent total is ignored.
// The returned server id is the only identifier for this order.
func (s *OrderService) Submit(req *CreateOrderReq) (*CreateOrderRes, error) {
	if verr := ValidateCustomer(&req.CustomerDetails, req.OrderType); verr != nil {
		return nil, verr
	}
	if len(req.Items) == 0 {
		return nil, &ValidationError{Field: "items", Msg: "cart is empty"}
	}
	for _, it := range req.Items {
		if it.Name == "" || it.Quantity < 1 || it.Price < 0 {
			return nil, &ValidationError{Field: "items", Msg: "invalid line item"}
		}
	}

	var total int64
	for _, it := range req.Items {
		total += it.Price * int64(it.Quantity)
	}

	tableNumber := req.TableNumber
	if req.OrderType == entity.OrderTypeTakeAway {
		tableNumber = ""
	}

	var out CreateOrderRes
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		order := entity.Order{
			CustomerName:   req.Name,
			CustomerPhone:  NormalizePhone(req.Phone),
			CustomerEmail:  req.Email,
			OrderType:      req.OrderType,
			TableNumber:    tableNumber,
			SpecialRequest: req.SpecialRequest,
			Status:         entity.StatusNew,
			PaymentStatus:  entity.PaymentUnpaid,
			Total:          total,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		for _, it := range req.Items {
			oi := entity.OrderItem{
				OrderID:  order.ID,
				Name:     it.Name,
				Quantity: it.Quantity,
				Price:    it.Price,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}

		out = CreateOrderRes{OrderID: order.ID, Total: order.Total}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ----- List & Detail -----

func (s *OrderService) List(start, end *time.Time) ([]entity.Order, error) {
	return s.Repo.ListOrders(start, end)
}

func (s *OrderService) ListActive() ([]entity.Order, error) {
	return s.Repo.ListActiveOrders()
}

func (s *OrderService) Get(orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	return o, err
}

// ----- Transitions -----

// UpdateStatus moves an order to a requested status if the state machine
// allows it from the current one. The write itself is guarded so a concurrent
// device that already advanced the order makes this a conflict, not a
// backwards move. CANCELLED is reserved for admins.
func (s *OrderService) UpdateStatus(orderID uint, to entity.OrderStatus, role string) error {
	if !to.Valid() {
		return &ValidationError{Field: "status", Msg: "unknown status"}
	}
	if to == entity.StatusCancelled && role != "admin" {
		return ErrCancelRequiresAdmin
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetOrder(orderID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		if err != nil {
			return err
		}
		if !CanTransition(o.Status, to) {
			return ErrInvalidTransition
		}

		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, to)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidTransition
		}
		return nil
	})
}

// Advance applies the kitchen two-step button server-side. A no-op advance
// (order already COMPLETED or READY) is not an error.
func (s *OrderService) Advance(orderID uint) (entity.OrderStatus, error) {
	var final entity.OrderStatus
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetOrder(orderID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		if err != nil {
			return err
		}

		next, ok := NextAdvance(o.Status)
		final = next
		if !ok {
			return nil
		}

		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, next)
		if err != nil {
			return err
		}
		if affected == 0 {
			// another device won the race; keep theirs
			final = o.Status
		}
		return nil
	})
	return final, err
}

// MarkPaid flips payment status on gateway settlement or the mock path.
// Fulfillment status is untouched.
func (s *OrderService) MarkPaid(orderID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := s.Get(orderID); err != nil {
			return err
		}
		_, err := s.Repo.MarkPaidGuard(tx, orderID)
		return err
	})
}

// ClearAll is the admin bulk delete; the id sequence restarts afterwards.
func (s *OrderService) ClearAll() error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.ClearAll(tx)
	})
}
