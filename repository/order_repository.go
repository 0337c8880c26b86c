package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/Bossnapi119/pakawinasiayam/entity"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// ListOrders returns the full order set for the admin panel, newest first,
// optionally bounded to a creation-time range.
func (r *OrderRepository) ListOrders(start, end *time.Time) ([]entity.Order, error) {
	db := r.DB.Preload("Items")
	if start != nil && end != nil {
		db = db.Where("created_at >= ? AND created_at <= ?", *start, *end)
	}
	var orders []entity.Order
	err := db.Order("created_at DESC").Find(&orders).Error
	return orders, err
}

// ListActiveOrders returns the kitchen view: every in-flight status plus
// just-completed orders, oldest first so the queue reads top-down.
func (r *OrderRepository) ListActiveOrders() ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Preload("Items").
		Where("status IN ?", []entity.OrderStatus{
			entity.StatusNew, entity.StatusPreparing, entity.StatusReady, entity.StatusCompleted,
		}).
		Order("created_at ASC").
		Find(&orders).Error
	return orders, err
}

// UpdateStatusGuard is a compare-and-set: the row moves from -> to only if it
// is still in the expected state, so concurrent kitchen devices cannot race a
// transition backwards.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to entity.OrderStatus) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// MarkPaidGuard flips UNPAID -> PAID. PAID is never reverted.
func (r *OrderRepository) MarkPaidGuard(tx *gorm.DB, orderID uint) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND payment_status = ?", orderID, entity.PaymentUnpaid).
		Update("payment_status", entity.PaymentPaid)
	return res.RowsAffected, res.Error
}

// ClearAll deletes every order and line item and resets the id sequence, so
// the next order starts from 1 again. Bulk operation only; individual ids are
// never reused outside of this.
func (r *OrderRepository) ClearAll(tx *gorm.DB) error {
	if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
		Unscoped().Delete(&entity.OrderItem{}).Error; err != nil {
		return err
	}
	if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
		Unscoped().Delete(&entity.Order{}).Error; err != nil {
		return err
	}
	if err := tx.Exec("DELETE FROM sqlite_sequence WHERE name = 'orders'").Error; err != nil {
		return err
	}
	return tx.Exec("DELETE FROM sqlite_sequence WHERE name = 'order_items'").Error
}
