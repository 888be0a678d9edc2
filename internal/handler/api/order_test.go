//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront-checkout/internal/domain/order"
	"storefront-checkout/internal/handler/api"
	"storefront-checkout/internal/infra/commerce"
	"storefront-checkout/tests/common/builder"
	queriesmock "storefront-checkout/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockOrderQueries
	handler     *api.OrderHandler
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockOrderQueries(s.mockCtrl)
	s.handler = api.NewOrderHandler(s.mockQueries)

	s.router.GET("/orders", fakeAuth, s.handler.ListOrders)
	s.router.GET("/orders/:orderId", fakeAuth, s.handler.GetOrder)
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

func (s *OrderHandlerTestSuite) get(url string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Authorization", "Bearer "+testBearer)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *OrderHandlerTestSuite) TestListOrders() {
	s.mockQueries.EXPECT().
		ListHistory(gomock.Any(), testBearer).
		Return([]*order.Order{
			builder.NewOrderBuilder().WithID(1).WithStatus(order.StatusCompleted).Build(),
			builder.NewOrderBuilder().WithID(2).WithStatus(order.StatusShipping).Build(),
		}, nil)

	w := s.get("/orders")
	s.Equal(http.StatusOK, w.Code)

	var resp map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Len(resp["orders"], 2)
}

func (s *OrderHandlerTestSuite) TestGetOrder() {
	s.mockQueries.EXPECT().
		GetByID(gomock.Any(), testBearer, int64(9001)).
		Return(builder.NewOrderBuilder().Build(), nil)

	w := s.get("/orders/9001")
	s.Equal(http.StatusOK, w.Code)

	var resp map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("ORD-20250601-9001", resp["order_code"])
	s.Equal("UNPAID", resp["status"])
	s.NotNil(resp["online_payment"])
}

func (s *OrderHandlerTestSuite) TestGetOrderNotFound() {
	s.mockQueries.EXPECT().
		GetByID(gomock.Any(), testBearer, int64(404404)).
		Return(nil, commerce.GatewayError{Kind: commerce.KindNotFound})

	w := s.get("/orders/404404")
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *OrderHandlerTestSuite) TestGetOrderBadID() {
	w := s.get("/orders/not-a-number")
	s.Equal(http.StatusBadRequest, w.Code)
}
