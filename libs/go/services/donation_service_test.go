package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/wkcda/crm-gateway/libs/go/crm"
	"github.com/wkcda/crm-gateway/libs/go/mocks"
	"github.com/wkcda/crm-gateway/libs/go/services"
	"github.com/wkcda/crm-gateway/libs/go/types/api/requests"
	"github.com/wkcda/crm-gateway/libs/go/types/business"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newDonationServiceForTest(t *testing.T) (*services.DonationService, *mocks.MockAPI, *mocks.MockContactResolver, *mocks.MockReceiptSender) {
	t.Helper()
	ctrl := gomock.NewController(t)
	crmMock := mocks.NewMockAPI(ctrl)
	contacts := mocks.NewMockContactResolver(ctrl)
	receipts := mocks.NewMockReceiptSender(ctrl)
	svc := services.NewDonationService(crmMock, contacts, services.NewOptionSetService(crmMock), receipts)
	svc.SetNow(func() time.Time { return testNow })
	return svc, crmMock, contacts, receipts
}

func TestDonationService_CreateDonations(t *testing.T) {
	donorID := uuid.New()
	donor := &business.Contact{ID: donorID, MasterCustomerID: "P1700000000000", FirstName: "Tai Man", Email: "chan@example.com"}

	t.Run("records the batch and sends the requested receipts", func(t *testing.T) {
		svc, crmMock, contacts, receipts := newDonationServiceForTest(t)
		giftIDs := []uuid.UUID{uuid.New(), uuid.New()}

		contacts.EXPECT().
			FindByMasterCustomerID(gomock.Any(), "P1700000000000").
			Return(donor, nil)
		// Second donor is unknown and gets a contact created on the fly.
		contacts.EXPECT().
			Find(gomock.Any(), business.ContactMatchCriteria{
				Strategy: business.MatchEmail,
				Email:    "lee@example.com",
			}).
			Return(nil, services.ErrContactNotFound)
		contacts.EXPECT().
			Create(gomock.Any(), requests.CustomerProfile{
				FirstName: "Siu Ming", LastName: "Lee", Email: "lee@example.com",
			}).
			Return(&business.Contact{ID: uuid.New(), MasterCustomerID: "P1785585600001", FirstName: "Siu Ming"}, nil)

		crmMock.EXPECT().
			CreateMultiple(gomock.Any(), crm.EntitySetGiftTransactions, crm.EntityGiftTransaction, gomock.Len(2)).
			Return(giftIDs, nil)
		receipts.EXPECT().
			SendDonationReceipt(gomock.Any(), "lee@example.com", "Siu Ming", "Annual Appeal", 500.0).
			Return(nil)

		resp := svc.CreateDonations(context.Background(), requests.CreateDonationRequest{
			DonationList: []requests.DonationItem{
				{MasterCustomerID: "P1700000000000", Email: "chan@example.com", Amount: 1000, CampaignName: "Annual Appeal"},
				{Email: "lee@example.com", FirstName: "Siu Ming", LastName: "Lee", Amount: 500, CampaignName: "Annual Appeal", SendReceipt: true},
			},
		})

		require.Len(t, resp.Results, 2)
		assert.True(t, resp.Results[0].Success)
		assert.Equal(t, giftIDs[0].String(), resp.Results[0].GiftTransactionID)
		assert.Equal(t, "P1700000000000", resp.Results[0].MasterCustomerID)
		assert.True(t, resp.Results[1].Success)
		assert.Equal(t, giftIDs[1].String(), resp.Results[1].GiftTransactionID)
		assert.Equal(t, "P1785585600001", resp.Results[1].MasterCustomerID)
	})

	t.Run("rejected items do not shift the batch mapping", func(t *testing.T) {
		svc, crmMock, contacts, _ := newDonationServiceForTest(t)
		giftID := uuid.New()

		contacts.EXPECT().
			FindByMasterCustomerID(gomock.Any(), "P1700000000000").
			Return(donor, nil)
		crmMock.EXPECT().
			CreateMultiple(gomock.Any(), crm.EntitySetGiftTransactions, crm.EntityGiftTransaction, gomock.Len(1)).
			Return([]uuid.UUID{giftID}, nil)

		resp := svc.CreateDonations(context.Background(), requests.CreateDonationRequest{
			DonationList: []requests.DonationItem{
				{Email: "chan@example.com", Amount: -5, CampaignName: "Annual Appeal"},
				{MasterCustomerID: "P1700000000000", Email: "chan@example.com", Amount: 1000, CampaignName: "Annual Appeal"},
			},
		})

		require.Len(t, resp.Results, 2)
		assert.False(t, resp.Results[0].Success)
		assert.Equal(t, "Invalid donation amount -5.00", resp.Results[0].Remarks)
		assert.True(t, resp.Results[1].Success)
		assert.Equal(t, giftID.String(), resp.Results[1].GiftTransactionID)
	})

	t.Run("batch failure marks every prepared item", func(t *testing.T) {
		svc, crmMock, contacts, _ := newDonationServiceForTest(t)

		contacts.EXPECT().
			FindByMasterCustomerID(gomock.Any(), "P1700000000000").
			Return(donor, nil)
		crmMock.EXPECT().
			CreateMultiple(gomock.Any(), crm.EntitySetGiftTransactions, crm.EntityGiftTransaction, gomock.Any()).
			Return(nil, errors.New("crm outage"))

		resp := svc.CreateDonations(context.Background(), requests.CreateDonationRequest{
			DonationList: []requests.DonationItem{
				{MasterCustomerID: "P1700000000000", Email: "chan@example.com", Amount: 1000, CampaignName: "Annual Appeal"},
			},
		})

		require.Len(t, resp.Results, 1)
		assert.False(t, resp.Results[0].Success)
		assert.Equal(t, "Donation could not be recorded", resp.Results[0].Remarks)
	})

	t.Run("receipt failure does not fail the donation", func(t *testing.T) {
		svc, crmMock, contacts, receipts := newDonationServiceForTest(t)

		contacts.EXPECT().
			FindByMasterCustomerID(gomock.Any(), "P1700000000000").
			Return(donor, nil)
		crmMock.EXPECT().
			CreateMultiple(gomock.Any(), crm.EntitySetGiftTransactions, crm.EntityGiftTransaction, gomock.Any()).
			Return([]uuid.UUID{uuid.New()}, nil)
		receipts.EXPECT().
			SendDonationReceipt(gomock.Any(), "chan@example.com", "Tai Man", "Annual Appeal", 1000.0).
			Return(errors.New("smtp down"))

		resp := svc.CreateDonations(context.Background(), requests.CreateDonationRequest{
			DonationList: []requests.DonationItem{
				{MasterCustomerID: "P1700000000000", Email: "chan@example.com", Amount: 1000, CampaignName: "Annual Appeal", SendReceipt: true},
			},
		})

		require.Len(t, resp.Results, 1)
		assert.True(t, resp.Results[0].Success)
	})

	t.Run("stale master customer id falls back to email matching", func(t *testing.T) {
		svc, crmMock, contacts, _ := newDonationServiceForTest(t)

		contacts.EXPECT().
			FindByMasterCustomerID(gomock.Any(), "P404").
			Return(nil, services.ErrContactNotFound)
		contacts.EXPECT().
			Find(gomock.Any(), business.ContactMatchCriteria{
				Strategy: business.MatchEmail,
				Email:    "chan@example.com",
			}).
			Return(donor, nil)
		crmMock.EXPECT().
			CreateMultiple(gomock.Any(), crm.EntitySetGiftTransactions, crm.EntityGiftTransaction, gomock.Any()).
			Return([]uuid.UUID{uuid.New()}, nil)

		resp := svc.CreateDonations(context.Background(), requests.CreateDonationRequest{
			DonationList: []requests.DonationItem{
				{MasterCustomerID: "P404", Email: "chan@example.com", Amount: 1000, CampaignName: "Annual Appeal"},
			},
		})

		require.Len(t, resp.Results, 1)
		assert.True(t, resp.Results[0].Success)
		assert.Equal(t, "P1700000000000", resp.Results[0].MasterCustomerID)
	})
}
