package client

import (
	"context"
	"errors"
	"log"
	"time"
)

// CustomerDetails is the checkout form.
type CustomerDetails struct {
	Name           string
	Phone          string
	Email          string
	TableNumber    string
	SpecialRequest string
}

// Receipt is what the customer sees after a terminal submission.
type Receipt struct {
	OrderID    uint
	Total      int64
	Items      []CartItem
	PaymentURL string // set when the gateway produced a redirect
	Offline    bool   // true when the store was unreachable on the cash path
	CreatedAt  time.Time
}

// Checkout drives the submission pipeline from the customer device: submit
// the cart, optionally initiate online payment, and clear the cart on any
// terminal success. Validation failures leave the cart untouched.
type Checkout struct {
	API  *API
	Cart *Cart
}

func NewCheckout(api *API, cart *Cart) *Checkout {
	return &Checkout{API: api, Cart: cart}
}

// Submit sends the order. With payOnline the gateway is invoked after the
// order is created and its redirect URL lands on the receipt; a gateway
// failure surfaces as an error while the created order stays NEW/UNPAID for
// manual reconciliation. Without payOnline a store outage degrades to a local
// offline receipt instead of blocking the cash flow.
func (co *Checkout) Submit(ctx context.Context, details CustomerDetails, orderType string, payOnline bool) (*Receipt, error) {
	items := co.Cart.Items()
	lines := make([]OrderLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, OrderLine{Name: it.Name, Quantity: it.Quantity, Price: it.Price})
	}

	req := &SubmitOrderReq{
		CustomerName:   details.Name,
		CustomerPhone:  details.Phone,
		CustomerEmail:  details.Email,
		TableNumber:    details.TableNumber,
		SpecialRequest: details.SpecialRequest,
		OrderType:      orderType,
		Items:          lines,
	}

	res, err := co.API.SubmitOrder(ctx, req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			// nothing persisted, cart stays
			return nil, err
		}
		if !payOnline && errors.Is(err, ErrConnection) {
			log.Println("order relay failed, issuing offline receipt:", err)
			receipt := &Receipt{Total: co.Cart.Total(), Items: items, Offline: true, CreatedAt: time.Now()}
			co.Cart.Clear()
			return receipt, nil
		}
		return nil, err
	}

	receipt := &Receipt{
		OrderID:   res.OrderID,
		Total:     res.Total,
		Items:     items,
		CreatedAt: time.Now(),
	}

	if payOnline {
		pay, err := co.API.InitiatePayment(ctx, &InitiatePaymentReq{
			OrderID:       res.OrderID,
			Amount:        res.Total,
			CustomerName:  details.Name,
			CustomerEmail: details.Email,
			CustomerPhone: details.Phone,
		})
		if err != nil {
			// the order exists and stays UNPAID; surface the failure
			return nil, err
		}
		receipt.PaymentURL = pay.PaymentURL
	}

	co.Cart.Clear()
	return receipt, nil
}
