package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/wkcda/crm-gateway/libs/go/logger"
	"github.com/wkcda/crm-gateway/libs/go/mocks"
	"github.com/wkcda/crm-gateway/libs/go/types/api/requests"
	"github.com/wkcda/crm-gateway/libs/go/types/api/responses"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	// Initialize logger for tests
	logger.InitLogger("test")
}

// newTestContext builds a gin test context carrying a JSON POST body.
func newTestContext(t *testing.T, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c, w
}

func TestCustomerHandler_CreateCustomers(t *testing.T) {
	t.Run("passes the batch to the service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		customerService := mocks.NewMockCustomerService(ctrl)
		handler := NewCustomerHandler(NewCommonServices(CommonServicesConfig{}), customerService)

		customerService.EXPECT().
			CreateCustomers(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req requests.CreateCustomerRequest) *responses.CustomerListResponse {
				require.Len(t, req.CustomerList, 1)
				assert.Equal(t, "chan@example.com", req.CustomerList[0].Email)
				return &responses.CustomerListResponse{
					Results: []responses.CustomerResult{{
						ResultItem:       responses.ResultItem{Success: true},
						Email:            "chan@example.com",
						MasterCustomerID: "P1785585600000",
					}},
				}
			})

		c, w := newTestContext(t, `{"CustomerList":[{"FirstName":"Tai Man","LastName":"Chan","Email":"chan@example.com","Login":true}]}`)
		handler.CreateCustomers(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp responses.CustomerListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Results, 1)
		assert.True(t, resp.Results[0].Success)
		assert.Equal(t, "P1785585600000", resp.Results[0].MasterCustomerID)
	})

	t.Run("malformed body answers the fixed message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		customerService := mocks.NewMockCustomerService(ctrl)
		handler := NewCustomerHandler(NewCommonServices(CommonServicesConfig{}), customerService)

		c, w := newTestContext(t, `{"CustomerList":`)
		handler.CreateCustomers(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Invalid JSON", resp.Error)
	})

	t.Run("missing required fields are a binding error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		customerService := mocks.NewMockCustomerService(ctrl)
		handler := NewCustomerHandler(NewCommonServices(CommonServicesConfig{}), customerService)

		c, w := newTestContext(t, `{"CustomerList":[]}`)
		handler.CreateCustomers(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCustomerHandler_UpdateCustomers(t *testing.T) {
	ctrl := gomock.NewController(t)
	customerService := mocks.NewMockCustomerService(ctrl)
	handler := NewCustomerHandler(NewCommonServices(CommonServicesConfig{}), customerService)

	customerService.EXPECT().
		UpdateCustomers(gomock.Any(), gomock.Any()).
		Return(&responses.CustomerListResponse{
			Results: []responses.CustomerResult{{
				ResultItem:       responses.ResultItem{Success: true},
				MasterCustomerID: "P1700000000000",
			}},
		})

	c, w := newTestContext(t, `{"CustomerList":[{"MasterCustomerID":"P1700000000000","FirstName":"Siu Ming","Login":true}]}`)
	handler.UpdateCustomers(c)

	assert.Equal(t, http.StatusOK, w.Code)
}
