package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func checkoutFixture(t *testing.T, handler http.Handler) (*Checkout, *Cart, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cart := NewCart(nil)
	cart.Add(nasiBiasa)
	cart.Add(nasiBiasa)
	cart.Add(tehOAis)

	return NewCheckout(NewAPI(srv.URL, ""), cart), cart, srv
}

func TestCheckoutSubmitClearsCart(t *testing.T) {
	co, cart, _ := checkoutFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req SubmitOrderReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode: %v", err)
		}
		if len(req.Items) != 2 || req.Items[0].Quantity != 2 {
			t.Errorf("items = %+v", req.Items)
		}
		writeEnvelope(w, SubmitOrderRes{OrderID: 12, Total: 2280})
	}))

	receipt, err := co.Submit(context.Background(), CustomerDetails{Name: "Ali", Phone: "0123456789", TableNumber: "5"}, "dine-in", false)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if receipt.OrderID != 12 || receipt.Total != 2280 {
		t.Errorf("receipt = %+v", receipt)
	}
	if receipt.Offline {
		t.Error("online submission must not produce an offline receipt")
	}
	if cart.Len() != 0 {
		t.Errorf("cart must be cleared after success, has %d entries", cart.Len())
	}
}

func TestCheckoutValidationLeavesCart(t *testing.T) {
	co, cart, _ := checkoutFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{"ok": false, "error": "invalid phone number"})
	}))

	_, err := co.Submit(context.Background(), CustomerDetails{Name: "Ali", Phone: "999"}, "take-away", false)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if cart.Len() != 2 {
		t.Errorf("cart must survive a validation failure, has %d entries", cart.Len())
	}
}

func TestCheckoutOfflineReceiptOnCashPath(t *testing.T) {
	co, cart, srv := checkoutFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // store unreachable

	receipt, err := co.Submit(context.Background(), CustomerDetails{Name: "Ali", Phone: "0123456789"}, "take-away", false)
	if err != nil {
		t.Fatalf("cash path must degrade, got %v", err)
	}
	if !receipt.Offline {
		t.Error("expected offline receipt")
	}
	if receipt.Total != 2*990+300 {
		t.Errorf("offline total = %d", receipt.Total)
	}
	if cart.Len() != 0 {
		t.Error("cart must clear on offline receipt")
	}
}

func TestCheckoutOnlinePaymentFailureNotOffline(t *testing.T) {
	co, cart, srv := checkoutFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := co.Submit(context.Background(), CustomerDetails{Name: "Ali", Phone: "0123456789"}, "take-away", true)
	if err == nil {
		t.Fatal("online payment with unreachable store must fail, not degrade")
	}
	if cart.Len() != 2 {
		t.Error("cart must survive a failed online submission")
	}
}

func TestCheckoutOnlinePayment(t *testing.T) {
	co, cart, _ := checkoutFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/orders":
			writeEnvelope(w, SubmitOrderRes{OrderID: 7, Total: 2280})
		case "/api/payment/initiate":
			var req InitiatePaymentReq
			json.NewDecoder(r.Body).Decode(&req)
			if req.OrderID != 7 || req.Amount != 2280 {
				t.Errorf("payment req = %+v", req)
			}
			writeEnvelope(w, InitiatePaymentRes{PaymentURL: "https://pay.example/bill/abc", Mock: false})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))

	receipt, err := co.Submit(context.Background(), CustomerDetails{Name: "Ali", Phone: "0123456789"}, "take-away", true)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if receipt.PaymentURL != "https://pay.example/bill/abc" {
		t.Errorf("paymentUrl = %q", receipt.PaymentURL)
	}
	if cart.Len() != 0 {
		t.Error("cart must clear once the redirect is issued")
	}
}

func TestCheckoutGatewayFailureKeepsCart(t *testing.T) {
	co, cart, _ := checkoutFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/orders":
			writeEnvelope(w, SubmitOrderRes{OrderID: 8, Total: 2280})
		case "/api/payment/initiate":
			w.WriteHeader(http.StatusBadGateway)
			json.NewEncoder(w).Encode(map[string]any{"ok": false, "error": "payment gateway error"})
		}
	}))

	_, err := co.Submit(context.Background(), CustomerDetails{Name: "Ali", Phone: "0123456789"}, "take-away", true)
	if err == nil {
		t.Fatal("expected gateway error to surface")
	}
	// the order exists server-side; the cart is kept so the customer can retry
	if cart.Len() != 2 {
		t.Errorf("cart has %d entries, want 2", cart.Len())
	}
}
