//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront-checkout/internal/handler/api"
	"storefront-checkout/internal/usecase/readmodel"
	queriesmock "storefront-checkout/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type FulfillmentHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockFulfillmentQueries
	handler     *api.FulfillmentHandler
}

func (s *FulfillmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockFulfillmentQueries(s.mockCtrl)
	s.handler = api.NewFulfillmentHandler(s.mockQueries)

	s.router.GET("/addresses", fakeAuth, s.handler.ListAddresses)
	s.router.GET("/stores", fakeAuth, s.handler.ListStores)
}

func (s *FulfillmentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestFulfillmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(FulfillmentHandlerTestSuite))
}

func (s *FulfillmentHandlerTestSuite) get(url string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Authorization", "Bearer "+testBearer)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *FulfillmentHandlerTestSuite) TestListAddresses() {
	s.mockQueries.EXPECT().
		ListAddresses(gomock.Any(), testBearer).
		Return([]readmodel.Address{
			{AddressID: 11, RecipientName: "Nguyen Van A", FullAddress: "12 Le Loi, Q1, HCMC", IsDefault: true},
		}, nil)

	w := s.get("/addresses")
	s.Equal(http.StatusOK, w.Code)

	var resp map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	addresses := resp["addresses"].([]any)
	s.Require().Len(addresses, 1)
	s.Equal("12 Le Loi, Q1, HCMC", addresses[0].(map[string]any)["full_address"])
}

func (s *FulfillmentHandlerTestSuite) TestListStores() {
	s.mockQueries.EXPECT().
		ListStores(gomock.Any(), testBearer).
		Return([]readmodel.Store{
			{StoreID: 1, StoreCode: "HCM01", StoreName: "Central", IsActive: true},
		}, nil)

	w := s.get("/stores")
	s.Equal(http.StatusOK, w.Code)

	var resp map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Len(resp["stores"], 1)
}
