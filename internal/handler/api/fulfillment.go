package api

import (
	"net/http"

	"storefront-checkout/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type FulfillmentHandler struct {
	fulfillmentQueries queries.FulfillmentQueries
}

func NewFulfillmentHandler(fulfillmentQueries queries.FulfillmentQueries) *FulfillmentHandler {
	return &FulfillmentHandler{fulfillmentQueries: fulfillmentQueries}
}

func (h *FulfillmentHandler) ListAddresses(c *gin.Context) {
	token, _, ok := callerIdentity(c)
	if !ok {
		return
	}

	addresses, err := h.fulfillmentQueries.ListAddresses(c.Request.Context(), token)
	if err != nil {
		respondGatewayError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"addresses": addresses,
	})
}

func (h *FulfillmentHandler) ListStores(c *gin.Context) {
	token, _, ok := callerIdentity(c)
	if !ok {
		return
	}

	stores, err := h.fulfillmentQueries.ListStores(c.Request.Context(), token)
	if err != nil {
		respondGatewayError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stores": stores,
	})
}
