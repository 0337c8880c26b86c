package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Bossnapi119/pakawinasiayam/entity"
	"github.com/Bossnapi119/pakawinasiayam/pkg/resp"
	"github.com/Bossnapi119/pakawinasiayam/services"
	"github.com/Bossnapi119/pakawinasiayam/utils"
)

type OrderController struct {
	Svc *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Svc: svc}
}

// POST /api/orders (public customer action)
func (ctl *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := ctl.Svc.Submit(&req)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			resp.BadRequest(c, verr.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, out)
}

// GET /api/orders (admin) — full order set, optional ?start=&end= in unix ms.
func (ctl *OrderController) List(c *gin.Context) {
	var start, end *time.Time
	if s, e := c.Query("start"), c.Query("end"); s != "" && e != "" {
		sm, err1 := strconv.ParseInt(s, 10, 64)
		em, err2 := strconv.ParseInt(e, 10, 64)
		if err1 != nil || err2 != nil {
			resp.BadRequest(c, "start and end must be unix milliseconds")
			return
		}
		st, et := time.UnixMilli(sm), time.UnixMilli(em)
		start, end = &st, &et
	}

	orders, err := ctl.Svc.List(start, end)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, ordersOut(orders))
}

// GET /api/kitchen/orders (kitchen or admin) — in-flight statuses.
func (ctl *OrderController) ListActive(c *gin.Context) {
	orders, err := ctl.Svc.ListActive()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, ordersOut(orders))
}

type updateStatusReq struct {
	Status entity.OrderStatus `json:"status" binding:"required"`
}

// PATCH /api/orders/:id/status (kitchen or admin)
func (ctl *OrderController) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	err = ctl.Svc.UpdateStatus(uint(id), req.Status, utils.CurrentRole(c))
	switch {
	case err == nil:
		resp.OK(c, gin.H{"status": req.Status})
	case errors.Is(err, services.ErrOrderNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrInvalidTransition):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrCancelRequiresAdmin):
		resp.Forbidden(c, err.Error())
	default:
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			resp.BadRequest(c, verr.Error())
			return
		}
		resp.ServerError(c, err)
	}
}

// POST /api/orders/:id/advance (kitchen or admin) — the two-step button.
func (ctl *OrderController) Advance(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	status, err := ctl.Svc.Advance(uint(id))
	if errors.Is(err, services.ErrOrderNotFound) {
		resp.NotFound(c, err.Error())
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"status": status})
}

// DELETE /api/admin/orders (admin) — irreversible bulk clear.
func (ctl *OrderController) ClearAll(c *gin.Context) {
	if err := ctl.Svc.ClearAll(); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}

// ----- response shaping -----

type orderItemOut struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"`
}

type orderOut struct {
	ID             string         `json:"id"` // stringified for display stability
	OrderNumber    uint           `json:"orderNumber"`
	CustomerName   string         `json:"customerName"`
	CustomerPhone  string         `json:"customerPhone"`
	CustomerEmail  string         `json:"customerEmail"`
	OrderType      entity.OrderType `json:"orderType"`
	TableNumber    string         `json:"tableNumber,omitempty"`
	SpecialRequest string         `json:"specialRequest,omitempty"`
	Status         entity.OrderStatus   `json:"status"`
	PaymentStatus  entity.PaymentStatus `json:"paymentStatus"`
	Total          int64          `json:"total"`
	Items          []orderItemOut `json:"items"`
	CreatedAt      time.Time      `json:"createdAt"`
}

func ordersOut(orders []entity.Order) []orderOut {
	out := make([]orderOut, 0, len(orders))
	for _, o := range orders {
		items := make([]orderItemOut, 0, len(o.Items))
		for _, it := range o.Items {
			items = append(items, orderItemOut{Name: it.Name, Quantity: it.Quantity, Price: it.Price})
		}
		out = append(out, orderOut{
			ID:             strconv.FormatUint(uint64(o.ID), 10),
			OrderNumber:    o.ID,
			CustomerName:   o.CustomerName,
			CustomerPhone:  o.CustomerPhone,
			CustomerEmail:  o.CustomerEmail,
			OrderType:      o.OrderType,
			TableNumber:    o.TableNumber,
			SpecialRequest: o.SpecialRequest,
			Status:         o.Status,
			PaymentStatus:  o.PaymentStatus,
			Total:          o.Total,
			Items:          items,
			CreatedAt:      o.CreatedAt,
		})
	}
	return out
}
