package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/wkcda/crm-gateway/libs/go/mocks"
	"github.com/wkcda/crm-gateway/libs/go/types/api/requests"
	"github.com/wkcda/crm-gateway/libs/go/types/api/responses"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDonationHandler_CreateDonations(t *testing.T) {
	t.Run("passes the batch to the service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		donationService := mocks.NewMockDonationService(ctrl)
		handler := NewDonationHandler(NewCommonServices(CommonServicesConfig{}), donationService)

		donationService.EXPECT().
			CreateDonations(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req requests.CreateDonationRequest) *responses.DonationListResponse {
				require.Len(t, req.DonationList, 1)
				assert.Equal(t, 1000.0, req.DonationList[0].Amount)
				return &responses.DonationListResponse{
					Results: []responses.DonationResult{{
						ResultItem:        responses.ResultItem{Success: true},
						Email:             "chan@example.com",
						GiftTransactionID: "7d0c9e4e-0000-0000-0000-000000000004",
					}},
				}
			})

		c, w := newTestContext(t, `{"DonationList":[{"Email":"chan@example.com","Amount":1000,"CampaignName":"Annual Appeal"}]}`)
		handler.CreateDonations(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp responses.DonationListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Results, 1)
		assert.True(t, resp.Results[0].Success)
	})

	t.Run("malformed body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		donationService := mocks.NewMockDonationService(ctrl)
		handler := NewDonationHandler(NewCommonServices(CommonServicesConfig{}), donationService)

		c, w := newTestContext(t, `{"DonationList": "nope"}`)
		handler.CreateDonations(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
