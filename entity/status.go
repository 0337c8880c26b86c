package entity

// OrderStatus is the kitchen-facing fulfillment marker. CANCELLED is reachable
// only through the admin status endpoint, never through the kitchen advance.
type OrderStatus string

const (
	StatusNew       OrderStatus = "NEW"
	StatusPreparing OrderStatus = "PREPARING"
	StatusReady     OrderStatus = "READY"
	StatusCompleted OrderStatus = "COMPLETED"
	StatusCancelled OrderStatus = "CANCELLED"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusNew, StatusPreparing, StatusReady, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// PaymentStatus is an independent axis from OrderStatus.
type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "UNPAID"
	PaymentPaid   PaymentStatus = "PAID"
)

type OrderType string

const (
	OrderTypeDineIn   OrderType = "dine-in"
	OrderTypeTakeAway OrderType = "take-away"
)

func (t OrderType) Valid() bool {
	return t == OrderTypeDineIn || t == OrderTypeTakeAway
}

type MenuCategory string

const (
	CategoryMain  MenuCategory = "Main"
	CategorySet   MenuCategory = "Set"
	CategorySide  MenuCategory = "Side"
	CategoryDrink MenuCategory = "Drink"
)

func (c MenuCategory) Valid() bool {
	switch c {
	case CategoryMain, CategorySet, CategorySide, CategoryDrink:
		return true
	}
	return false
}
