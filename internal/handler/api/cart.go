package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "storefront-checkout/internal/handler/dto/request"
	resdto "storefront-checkout/internal/handler/dto/response"
	"storefront-checkout/internal/handler/middleware"
	"storefront-checkout/internal/usecase/commands"
	"storefront-checkout/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cartCommands commands.CartCommands
	cartQueries  queries.CartQueries
}

func NewCartHandler(cartCommands commands.CartCommands, cartQueries queries.CartQueries) *CartHandler {
	return &CartHandler{
		cartCommands: cartCommands,
		cartQueries:  cartQueries,
	}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	token, customer, ok := callerIdentity(c)
	if !ok {
		return
	}

	fetch := h.cartQueries.Get
	if c.Query("refresh") == "true" {
		fetch = h.cartQueries.Refresh
	}

	snap, err := fetch(c.Request.Context(), token, customer)
	if err != nil {
		respondGatewayError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCartSnapshot(snap))
}

func (h *CartHandler) UpdateItemQuantity(c *gin.Context) {
	token, customer, ok := callerIdentity(c)
	if !ok {
		return
	}

	productUnitID, err := pathInt64(c, "productUnitId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product unit id",
		})
		return
	}

	var req reqdto.UpdateCartItemRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	snap, err := h.cartCommands.SetQuantity(c.Request.Context(), token, customer, productUnitID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrQuantityLimit):
			// The clamp made this a no-op; return the unchanged cart with a
			// notice instead of an error status.
			resp := resdto.FromCartSnapshot(snap)
			resp.Notice = "quantity limit reached"
			c.JSON(http.StatusOK, resp)
		case errors.Is(err, commands.ErrLineNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Cart line not found",
			})
		case errors.Is(err, commands.ErrGiftLineImmutable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Gift items cannot be modified",
			})
		default:
			respondGatewayError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCartSnapshot(snap))
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	token, customer, ok := callerIdentity(c)
	if !ok {
		return
	}

	productUnitID, err := pathInt64(c, "productUnitId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product unit id",
		})
		return
	}

	snap, err := h.cartCommands.Remove(c.Request.Context(), token, customer, productUnitID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrLineNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Cart line not found",
			})
		case errors.Is(err, commands.ErrGiftLineImmutable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Gift items cannot be removed",
			})
		default:
			respondGatewayError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCartSnapshot(snap))
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	token, customer, ok := callerIdentity(c)
	if !ok {
		return
	}

	if err := h.cartCommands.Clear(c.Request.Context(), token, customer); err != nil {
		respondGatewayError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func callerIdentity(c *gin.Context) (token, customer string, ok bool) {
	token, ok = middleware.GetBearerToken(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return "", "", false
	}
	customer, ok = middleware.GetCustomer(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return "", "", false
	}
	return token, customer, true
}

func pathInt64(c *gin.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}
