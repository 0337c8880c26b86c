package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ErrGateway covers adapter failures and malformed gateway responses. The
// order stays persisted and UNPAID for manual reconciliation.
var ErrGateway = errors.New("payment gateway error")

type PaymentService struct {
	Orders *OrderService

	Secret      string // empty means mock mode
	Category    string
	BaseURL     string
	FrontendURL string
	BackendURL  string

	Client *http.Client
}

func NewPaymentService(orders *OrderService, secret, category, baseURL, frontendURL, backendURL string) *PaymentService {
	return &PaymentService{
		Orders:      orders,
		Secret:      secret,
		Category:    category,
		BaseURL:     strings.TrimRight(baseURL, "/"),
		FrontendURL: strings.TrimRight(frontendURL, "/"),
		BackendURL:  strings.TrimRight(backendURL, "/"),
		Client:      &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *PaymentService) MockMode() bool {
	return s.Secret == ""
}

type InitiatePaymentReq struct {
	OrderID       uint   `json:"orderId"`
	Amount        int64  `json:"amount"` // cents
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`
}

type InitiatePaymentRes struct {
	PaymentURL string `json:"paymentUrl"`
	Mock       bool   `json:"mock,omitempty"`
}

// Initiate creates a payable bill at the gateway and returns the redirect
// URL. Without a configured secret it falls back to mock mode: the order is
// marked PAID immediately and a locally constructed success URL is returned,
// so the rest of the flow behaves identically without a live gateway.
func (s *PaymentService) Initiate(req *InitiatePaymentReq, origin string) (*InitiatePaymentRes, error) {
	if _, err := s.Orders.Get(req.OrderID); err != nil {
		return nil, err
	}

	if s.MockMode() {
		if err := s.Orders.MarkPaid(req.OrderID); err != nil {
			return nil, err
		}
		base := s.FrontendURL
		if origin != "" {
			base = strings.TrimRight(origin, "/")
		}
		mockURL := fmt.Sprintf("%s/payment/status?status_id=1&order_id=%d&transaction_id=MOCK-%d",
			base, req.OrderID, time.Now().UnixMilli())
		return &InitiatePaymentRes{PaymentURL: mockURL, Mock: true}, nil
	}

	payload := url.Values{
		"userSecretKey":           {s.Secret},
		"categoryCode":            {s.Category},
		"billName":                {fmt.Sprintf("Order #%d", req.OrderID)},
		"billDescription":         {fmt.Sprintf("Payment for order %d", req.OrderID)},
		"billPriceSetting":        {"1"},
		"billPayorInfo":           {"1"},
		"billAmount":              {strconv.FormatInt(req.Amount, 10)},
		"billReturnUrl":           {s.FrontendURL + "/payment/status"},
		"billCallbackUrl":         {s.BackendURL + "/api/payment/webhook"},
		"billExternalReferenceNo": {strconv.FormatUint(uint64(req.OrderID), 10)},
		"billTo":                  {req.CustomerName},
		"billEmail":               {orDefault(req.CustomerEmail, "noreply@example.com")},
		"billPhone":               {orDefault(req.CustomerPhone, "0123456789")},
	}

	res, err := s.Client.PostForm(s.BaseURL+"/index.php/api/createBill", payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}

	var bills []struct {
		BillCode string `json:"BillCode"`
	}
	if err := json.Unmarshal(body, &bills); err != nil || len(bills) == 0 || bills[0].BillCode == "" {
		return nil, fmt.Errorf("%w: unexpected response %q", ErrGateway, body)
	}

	return &InitiatePaymentRes{PaymentURL: s.BaseURL + "/" + bills[0].BillCode}, nil
}

// HandleSettlement processes the gateway webhook. The reference must resolve
// to an existing order before anything is mutated; an unsettled callback is a
// no-op.
func (s *PaymentService) HandleSettlement(refNo string, settled bool) error {
	orderID, err := strconv.ParseUint(refNo, 10, 32)
	if err != nil {
		return ErrOrderNotFound
	}
	if _, err := s.Orders.Get(uint(orderID)); err != nil {
		return err
	}
	if !settled {
		return nil
	}
	return s.Orders.MarkPaid(uint(orderID))
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
