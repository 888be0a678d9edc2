package api

import (
	"net/http"

	resdto "storefront-checkout/internal/handler/dto/response"
	"storefront-checkout/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderQueries queries.OrderQueries
}

func NewOrderHandler(orderQueries queries.OrderQueries) *OrderHandler {
	return &OrderHandler{orderQueries: orderQueries}
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	token, _, ok := callerIdentity(c)
	if !ok {
		return
	}

	orders, err := h.orderQueries.ListHistory(c.Request.Context(), token)
	if err != nil {
		respondGatewayError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orders": resdto.FromOrderList(orders),
	})
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	token, _, ok := callerIdentity(c)
	if !ok {
		return
	}

	orderID, err := pathInt64(c, "orderId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order id",
		})
		return
	}

	ord, err := h.orderQueries.GetByID(c.Request.Context(), token, orderID)
	if err != nil {
		respondGatewayError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrder(ord))
}
