package api

import (
	"errors"
	"net/http"

	"storefront-checkout/internal/domain/checkout"
	"storefront-checkout/internal/domain/order"
	reqdto "storefront-checkout/internal/handler/dto/request"
	resdto "storefront-checkout/internal/handler/dto/response"
	"storefront-checkout/internal/usecase/session"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	registry *session.Registry
}

func NewCheckoutHandler(registry *session.Registry) *CheckoutHandler {
	return &CheckoutHandler{registry: registry}
}

func (h *CheckoutHandler) GetState(c *gin.Context) {
	token, customer, ok := callerIdentity(c)
	if !ok {
		return
	}

	sess := h.registry.Acquire(customer, token)
	c.JSON(http.StatusOK, resdto.FromCheckoutView(sess.Snapshot()))
}

func (h *CheckoutHandler) UpdateDraft(c *gin.Context) {
	token, customer, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req reqdto.UpdateDraftRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params := session.UpdateDraftParams{
		AddressID: req.AddressID,
		StoreID:   req.StoreID,
		Note:      req.Note,
	}
	if req.DeliveryType != nil {
		dt := order.DeliveryType(*req.DeliveryType)
		params.DeliveryType = &dt
	}
	if req.PaymentMethod != nil {
		pm := order.PaymentMethod(*req.PaymentMethod)
		params.PaymentMethod = &pm
	}

	sess := h.registry.Acquire(customer, token)
	view, err := sess.UpdateDraft(params)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrCheckoutBusy):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Checkout is busy, cancel the payment wait first",
			})
		case errors.Is(err, checkout.ErrUnknownDeliveryType),
			errors.Is(err, checkout.ErrUnknownPayment):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request format",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCheckoutView(view))
}

func (h *CheckoutHandler) Submit(c *gin.Context) {
	token, customer, ok := callerIdentity(c)
	if !ok {
		return
	}

	sess := h.registry.Acquire(customer, token)
	view, err := sess.Submit(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, session.ErrSubmissionInFlight):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Submission already in progress",
			})
		case errors.Is(err, session.ErrCheckoutBusy):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Checkout is busy, cancel the payment wait first",
			})
		case errors.Is(err, session.ErrDraftIncomplete):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Checkout details are incomplete",
			})
		case errors.Is(err, session.ErrEmptyCart):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Cart is empty",
			})
		case errors.Is(err, session.ErrPaymentInfoMissing):
			c.JSON(http.StatusBadGateway, gin.H{
				"error":     "Payment could not be initiated, try again",
				"retryable": true,
			})
		default:
			respondGatewayError(c, err)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCheckoutView(view))
}

func (h *CheckoutHandler) CancelWait(c *gin.Context) {
	token, customer, ok := callerIdentity(c)
	if !ok {
		return
	}

	sess := h.registry.Acquire(customer, token)
	c.JSON(http.StatusOK, resdto.FromCheckoutView(sess.CancelWait()))
}

func (h *CheckoutHandler) Acknowledge(c *gin.Context) {
	token, customer, ok := callerIdentity(c)
	if !ok {
		return
	}

	sess := h.registry.Acquire(customer, token)
	orderID, status, err := sess.Acknowledge()
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{
			"error": "No settled checkout to acknowledge",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order_id": orderID,
		"status":   string(status),
	})
}
