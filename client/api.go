package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

var (
	// ErrAccessDenied maps 401/403 responses. The sync loop surfaces it
	// without forcing a logout; interactive callers may re-authenticate.
	ErrAccessDenied = errors.New("access denied")

	// ErrConnection covers network failures and unexpected statuses. Read
	// paths recover on the next poll; write paths are not retried.
	ErrConnection = errors.New("connection failed")

	// ErrValidation maps 400 responses: the input is malformed and nothing
	// was persisted server-side.
	ErrValidation = errors.New("validation failed")
)

// API is a typed client for the order backend.
type API struct {
	BaseURL string
	Token   string

	HTTP *http.Client
}

func NewAPI(baseURL, token string) *API {
	return &API{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Token:   token,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

type envelope struct {
	OK    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

func (a *API) do(ctx context.Context, method, path string, body any, out any) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.BaseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if a.Token != "" {
		req.Header.Set("Authorization", "Bearer "+a.Token)
	}

	res, err := a.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden {
		return ErrAccessDenied
	}

	var env envelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		return fmt.Errorf("%w: bad response", ErrConnection)
	}
	if res.StatusCode == http.StatusBadRequest {
		return fmt.Errorf("%w: %s", ErrValidation, env.Error)
	}
	if res.StatusCode >= 300 || !env.OK {
		msg := env.Error
		if msg == "" {
			msg = res.Status
		}
		return fmt.Errorf("%w: %s", ErrConnection, msg)
	}
	if out != nil && env.Data != nil {
		return json.Unmarshal(env.Data, out)
	}
	return nil
}

// ----- order submission -----

type OrderLine struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"`
}

type SubmitOrderReq struct {
	CustomerName   string      `json:"customerName"`
	CustomerPhone  string      `json:"customerPhone"`
	CustomerEmail  string      `json:"customerEmail,omitempty"`
	TableNumber    string      `json:"tableNumber,omitempty"`
	SpecialRequest string      `json:"specialRequest,omitempty"`
	OrderType      string      `json:"orderType"`
	Items          []OrderLine `json:"items"`
}

type SubmitOrderRes struct {
	OrderID uint  `json:"orderId"`
	Total   int64 `json:"total"`
}

// SubmitOrder creates the durable order. The returned server id is the only
// identifier this client ever uses; no local id is fabricated.
func (a *API) SubmitOrder(ctx context.Context, req *SubmitOrderReq) (*SubmitOrderRes, error) {
	var out SubmitOrderRes
	if err := a.do(ctx, http.MethodPost, "/api/orders", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ----- kitchen reads and writes -----

type RemoteOrderItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"`
}

type RemoteOrder struct {
	ID             string            `json:"id"`
	OrderNumber    uint              `json:"orderNumber"`
	OrderType      string            `json:"orderType"`
	TableNumber    string            `json:"tableNumber"`
	SpecialRequest string            `json:"specialRequest"`
	Status         string            `json:"status"`
	PaymentStatus  string            `json:"paymentStatus"`
	Total          int64             `json:"total"`
	Items          []RemoteOrderItem `json:"items"`
	CreatedAt      time.Time         `json:"createdAt"`
}

func (a *API) ActiveOrders(ctx context.Context) ([]RemoteOrder, error) {
	var out []RemoteOrder
	if err := a.do(ctx, http.MethodGet, "/api/kitchen/orders", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *API) UpdateOrderStatus(ctx context.Context, orderID string, status string) error {
	body := map[string]string{"status": status}
	return a.do(ctx, http.MethodPatch, "/api/orders/"+orderID+"/status", body, nil)
}

// ----- payment -----

type InitiatePaymentReq struct {
	OrderID       uint   `json:"orderId"`
	Amount        int64  `json:"amount"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail,omitempty"`
	CustomerPhone string `json:"customerPhone,omitempty"`
}

type InitiatePaymentRes struct {
	PaymentURL string `json:"paymentUrl"`
	Mock       bool   `json:"mock"`
}

func (a *API) InitiatePayment(ctx context.Context, req *InitiatePaymentReq) (*InitiatePaymentRes, error) {
	var out InitiatePaymentRes
	if err := a.do(ctx, http.MethodPost, "/api/payment/initiate", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
