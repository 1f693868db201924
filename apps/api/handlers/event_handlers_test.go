package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/wkcda/crm-gateway/libs/go/mocks"
	"github.com/wkcda/crm-gateway/libs/go/types/api/responses"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newEventHandlerForTest(t *testing.T) (*EventHandler, *mocks.MockEventService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	eventService := mocks.NewMockEventService(ctrl)
	return NewEventHandler(NewCommonServices(CommonServicesConfig{}), eventService), eventService
}

func TestEventHandler_CreateEventTransactions(t *testing.T) {
	handler, eventService := newEventHandlerForTest(t)

	eventService.EXPECT().
		CreateEventTransactions(gomock.Any(), gomock.Any()).
		Return(&responses.EventTransactionListResponse{
			Results: []responses.EventTransactionResult{{
				ResultItem:         responses.ResultItem{Success: true},
				MasterCustomerID:   "P1700000000000",
				EventTransactionID: "7d0c9e4e-0000-0000-0000-000000000005",
			}},
		})

	c, w := newTestContext(t, `{"EventList":[{"MasterCustomerID":"P1700000000000","EventName":"Jazz in the Park","EventCode":"EVT-2026-001","TicketQuantity":2}]}`)
	handler.CreateEventTransactions(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp responses.EventTransactionListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 1)
	assert.True(t, resp.Results[0].Success)
}

func TestEventHandler_UpdateAttendance(t *testing.T) {
	t.Run("passes the batch to the service", func(t *testing.T) {
		handler, eventService := newEventHandlerForTest(t)

		eventService.EXPECT().
			UpdateAttendance(gomock.Any(), gomock.Any()).
			Return(&responses.AttendanceListResponse{
				Results: []responses.AttendanceResult{{
					ResultItem:         responses.ResultItem{Success: true},
					MasterCustomerID:   "P1700000000000",
					EventTransactionID: "7d0c9e4e-0000-0000-0000-000000000005",
				}},
			})

		c, w := newTestContext(t, `{"AttendanceList":[{"MasterCustomerID":"P1700000000000","EventTransactionID":"7d0c9e4e-0000-0000-0000-000000000005","Attended":true}]}`)
		handler.UpdateAttendance(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		handler, _ := newEventHandlerForTest(t)

		c, w := newTestContext(t, `not json`)
		handler.UpdateAttendance(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
