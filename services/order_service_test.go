package services

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Bossnapi119/pakawinasiayam/entity"
	"github.com/Bossnapi119/pakawinasiayam/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&entity.MenuItem{}, &entity.Order{}, &entity.OrderItem{}, &entity.SiteConfig{}, &entity.AdminUser{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newOrderService(t *testing.T) *OrderService {
	db := newTestDB(t)
	return NewOrderService(db, repository.NewOrderRepository(db))
}

func nasiAyamOrder() *CreateOrderReq {
	return &CreateOrderReq{
		CustomerDetails: CustomerDetails{
			Name:        "Ali",
			Phone:       "0123456789",
			TableNumber: "5",
		},
		OrderType: entity.OrderTypeDineIn,
		Items: []OrderItemIn{
			{Name: "Nasi Ayam", Quantity: 2, Price: 990},
		},
	}
}

func TestSubmitCreatesOrder(t *testing.T) {
	svc := newOrderService(t)

	out, err := svc.Submit(nasiAyamOrder())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if out.Total != 1980 {
		t.Errorf("total = %d, want 1980", out.Total)
	}

	o, err := svc.Get(out.OrderID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if o.Status != entity.StatusNew {
		t.Errorf("status = %s, want NEW", o.Status)
	}
	if o.PaymentStatus != entity.PaymentUnpaid {
		t.Errorf("paymentStatus = %s, want UNPAID", o.PaymentStatus)
	}
	if o.TableNumber != "5" {
		t.Errorf("tableNumber = %q, want 5", o.TableNumber)
	}
	if len(o.Items) != 1 || o.Items[0].Name != "Nasi Ayam" || o.Items[0].Quantity != 2 {
		t.Errorf("items snapshot wrong: %+v", o.Items)
	}
}

func TestSubmitTotalIsServerComputed(t *testing.T) {
	svc := newOrderService(t)

	req := nasiAyamOrder()
	req.Items = append(req.Items, OrderItemIn{Name: "Teh O' Ais", Quantity: 3, Price: 300})

	out, err := svc.Submit(req)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	want := int64(2*990 + 3*300)
	if out.Total != want {
		t.Errorf("total = %d, want %d", out.Total, want)
	}
}

func TestSubmitRejectsBadPhone(t *testing.T) {
	svc := newOrderService(t)

	req := nasiAyamOrder()
	req.Phone = "0223456789" // does not start with 01/03

	_, err := svc.Submit(req)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	orders, err := svc.List(nil, nil)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(orders) != 0 {
		t.Errorf("no order should have been created, got %d", len(orders))
	}
}

func TestSubmitRejectsDineInWithoutTable(t *testing.T) {
	svc := newOrderService(t)

	req := nasiAyamOrder()
	req.TableNumber = ""
	if _, err := svc.Submit(req); err == nil {
		t.Fatal("dine-in without table should fail")
	}

	req.OrderType = entity.OrderTypeTakeAway
	if _, err := svc.Submit(req); err != nil {
		t.Fatalf("take-away without table should pass: %v", err)
	}
}

func TestSubmitRejectsEmptyCart(t *testing.T) {
	svc := newOrderService(t)

	req := nasiAyamOrder()
	req.Items = nil
	if _, err := svc.Submit(req); err == nil {
		t.Fatal("empty cart should fail")
	}
}

func TestAdvanceIsMonotonic(t *testing.T) {
	svc := newOrderService(t)

	out, err := svc.Submit(nasiAyamOrder())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	status, err := svc.Advance(out.OrderID)
	if err != nil || status != entity.StatusPreparing {
		t.Fatalf("first advance = %s, %v; want PREPARING", status, err)
	}

	status, err = svc.Advance(out.OrderID)
	if err != nil || status != entity.StatusCompleted {
		t.Fatalf("second advance = %s, %v; want COMPLETED", status, err)
	}

	// third advance is a no-op, not an error
	status, err = svc.Advance(out.OrderID)
	if err != nil || status != entity.StatusCompleted {
		t.Fatalf("third advance = %s, %v; want COMPLETED no-op", status, err)
	}
}

func TestStatusAndPaymentAreOrthogonal(t *testing.T) {
	svc := newOrderService(t)

	out, err := svc.Submit(nasiAyamOrder())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if _, err := svc.Advance(out.OrderID); err != nil {
		t.Fatalf("advance: %v", err)
	}
	o, _ := svc.Get(out.OrderID)
	if o.PaymentStatus != entity.PaymentUnpaid {
		t.Errorf("advance must not touch payment status, got %s", o.PaymentStatus)
	}

	if err := svc.MarkPaid(out.OrderID); err != nil {
		t.Fatalf("mark paid: %v", err)
	}
	o, _ = svc.Get(out.OrderID)
	if o.PaymentStatus != entity.PaymentPaid {
		t.Errorf("paymentStatus = %s, want PAID", o.PaymentStatus)
	}
	if o.Status != entity.StatusPreparing {
		t.Errorf("payment must not touch fulfillment status, got %s", o.Status)
	}
}

func TestUpdateStatusRejectsBackwards(t *testing.T) {
	svc := newOrderService(t)

	out, _ := svc.Submit(nasiAyamOrder())
	if err := svc.UpdateStatus(out.OrderID, entity.StatusCompleted, "kitchen"); err != nil {
		t.Fatalf("forward update: %v", err)
	}

	err := svc.UpdateStatus(out.OrderID, entity.StatusNew, "kitchen")
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("backwards move should be ErrInvalidTransition, got %v", err)
	}
}

func TestCancelIsAdminOnly(t *testing.T) {
	svc := newOrderService(t)

	out, _ := svc.Submit(nasiAyamOrder())

	err := svc.UpdateStatus(out.OrderID, entity.StatusCancelled, "kitchen")
	if !errors.Is(err, ErrCancelRequiresAdmin) {
		t.Fatalf("kitchen cancel should be refused, got %v", err)
	}

	if err := svc.UpdateStatus(out.OrderID, entity.StatusCancelled, "admin"); err != nil {
		t.Fatalf("admin cancel: %v", err)
	}
	o, _ := svc.Get(out.OrderID)
	if o.Status != entity.StatusCancelled {
		t.Errorf("status = %s, want CANCELLED", o.Status)
	}
}

func TestListActiveFilter(t *testing.T) {
	svc := newOrderService(t)

	a, _ := svc.Submit(nasiAyamOrder())
	b, _ := svc.Submit(nasiAyamOrder())

	// cancel one; it must disappear from the kitchen view
	if err := svc.UpdateStatus(b.OrderID, entity.StatusCancelled, "admin"); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	active, err := svc.ListActive()
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(active) != 1 || active[0].ID != a.OrderID {
		t.Errorf("active = %+v, want only order %d", active, a.OrderID)
	}
}

func TestClearAllResetsSequence(t *testing.T) {
	svc := newOrderService(t)

	first, _ := svc.Submit(nasiAyamOrder())
	svc.Submit(nasiAyamOrder())

	if err := svc.ClearAll(); err != nil {
		t.Fatalf("clear all: %v", err)
	}

	orders, _ := svc.List(nil, nil)
	if len(orders) != 0 {
		t.Fatalf("orders remain after clear: %d", len(orders))
	}

	again, err := svc.Submit(nasiAyamOrder())
	if err != nil {
		t.Fatalf("submit after clear: %v", err)
	}
	if again.OrderID != first.OrderID {
		t.Errorf("sequence not reset: got id %d, want %d", again.OrderID, first.OrderID)
	}
}
