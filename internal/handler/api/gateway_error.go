package api

import (
	"net/http"

	"storefront-checkout/internal/handler/httperr"
	"storefront-checkout/internal/infra/commerce"

	"github.com/gin-gonic/gin"
)

// respondGatewayError maps commerce gateway failures onto the API surface.
// Rejections carry the backend's own message verbatim; everything else gets
// a generic body so upstream internals never leak.
func respondGatewayError(c *gin.Context, err error) {
	if msg, ok := commerce.RejectionMessage(err); ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": msg,
		})
		return
	}

	switch {
	case commerce.IsKind(err, commerce.KindNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Not found",
		})
	case commerce.IsKind(err, commerce.KindUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":     "Commerce backend unavailable, try again",
			"retryable": true,
		})
	case commerce.IsKind(err, commerce.KindBadResponse):
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Unexpected response from commerce backend",
		})
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
