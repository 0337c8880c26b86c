package controllers

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/Bossnapi119/pakawinasiayam/pkg/resp"
	"github.com/Bossnapi119/pakawinasiayam/services"
)

type PaymentController struct {
	Svc *services.PaymentService
}

func NewPaymentController(svc *services.PaymentService) *PaymentController {
	return &PaymentController{Svc: svc}
}

// POST /api/payment/initiate (public)
func (ctl *PaymentController) Initiate(c *gin.Context) {
	var req services.InitiatePaymentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := ctl.Svc.Initiate(&req, c.GetHeader("Origin"))
	switch {
	case err == nil:
		resp.OK(c, out)
	case errors.Is(err, services.ErrOrderNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrGateway):
		log.Println("payment initiation failed:", err)
		resp.ServerError(c, errors.New("failed to create bill with payment gateway"))
	default:
		resp.ServerError(c, err)
	}
}

// POST /api/payment/webhook — gateway callback, form-encoded. Always answers
// 200 "OK" so the gateway stops retrying; the reference is validated before
// anything is mutated.
func (ctl *PaymentController) Webhook(c *gin.Context) {
	refNo := c.PostForm("refno")
	status := c.PostForm("status")
	reason := c.PostForm("reason")

	settled := status == "1"
	if err := ctl.Svc.HandleSettlement(refNo, settled); err != nil {
		log.Printf("webhook for order %q ignored: %v", refNo, err)
	} else if !settled {
		log.Printf("payment failed/pending for order %q: %s", refNo, reason)
	}

	c.String(200, "OK")
}
