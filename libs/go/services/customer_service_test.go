package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/wkcda/crm-gateway/libs/go/constants"
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

func newCustomerServiceForTest(t *testing.T) (*services.CustomerService, *mocks.MockAPI, *mocks.MockContactResolver) {
	t.Helper()
	ctrl := gomock.NewController(t)
	crmMock := mocks.NewMockAPI(ctrl)
	contacts := mocks.NewMockContactResolver(ctrl)
	svc := services.NewCustomerService(crmMock, contacts, services.NewOptionSetService(crmMock))
	return svc, crmMock, contacts
}

func TestCustomerService_CreateCustomers(t *testing.T) {
	existingID := uuid.New()

	tests := []struct {
		name      string
		profile   requests.CustomerProfile
		mockSetup func(contacts *mocks.MockContactResolver)
		wantOK    bool
		wantID    string
		wantNote  string
	}{
		{
			name: "creates a new customer",
			profile: requests.CustomerProfile{
				FirstName: "Tai Man", LastName: "Chan",
				Email: "chan@example.com", Login: true,
			},
			mockSetup: func(contacts *mocks.MockContactResolver) {
				contacts.EXPECT().
					Find(gomock.Any(), business.ContactMatchCriteria{
						Strategy: business.MatchEmail,
						Email:    "chan@example.com",
					}).
					Return(nil, services.ErrContactNotFound)
				contacts.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(&business.Contact{
						ID:               uuid.New(),
						MasterCustomerID: "P1785585600000",
						Email:            "chan@example.com",
					}, nil)
			},
			wantOK: true,
			wantID: "P1785585600000",
		},
		{
			name: "duplicate email echoes the existing identifier",
			profile: requests.CustomerProfile{
				FirstName: "Tai Man", LastName: "Chan",
				Email: "chan@example.com", Login: true,
			},
			mockSetup: func(contacts *mocks.MockContactResolver) {
				contacts.EXPECT().
					Find(gomock.Any(), gomock.Any()).
					Return(&business.Contact{
						ID:               existingID,
						MasterCustomerID: "P1700000000000",
						Email:            "chan@example.com",
					}, nil)
			},
			wantOK:   false,
			wantID:   "P1700000000000",
			wantNote: constants.RemarkDuplicateCustomer,
		},
		{
			name: "rejects when not logged in",
			profile: requests.CustomerProfile{
				FirstName: "Tai Man", LastName: "Chan",
				Email: "chan@example.com", Login: false,
			},
			mockSetup: func(contacts *mocks.MockContactResolver) {},
			wantOK:    false,
			wantNote:  constants.RemarkLoginRequired,
		},
		{
			name: "rejects a malformed email",
			profile: requests.CustomerProfile{
				FirstName: "Tai Man", LastName: "Chan",
				Email: "not-an-email", Login: true,
			},
			mockSetup: func(contacts *mocks.MockContactResolver) {},
			wantOK:    false,
			wantNote:  `Invalid email address "not-an-email"`,
		},
		{
			name: "phone widens the duplicate match",
			profile: requests.CustomerProfile{
				FirstName: "Tai Man", LastName: "Chan",
				Email: "chan@example.com", MobilePhone: "+852 9123 4567", Login: true,
			},
			mockSetup: func(contacts *mocks.MockContactResolver) {
				contacts.EXPECT().
					Find(gomock.Any(), business.ContactMatchCriteria{
						Strategy: business.MatchEmailOrPhone,
						Email:    "chan@example.com",
						Phone:    "+852 9123 4567",
					}).
					Return(nil, services.ErrContactNotFound)
				contacts.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(&business.Contact{MasterCustomerID: "P1785585600001"}, nil)
			},
			wantOK: true,
			wantID: "P1785585600001",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, contacts := newCustomerServiceForTest(t)
			tt.mockSetup(contacts)

			resp := svc.CreateCustomers(context.Background(), requests.CreateCustomerRequest{
				CustomerList: []requests.CustomerProfile{tt.profile},
			})

			require.Len(t, resp.Results, 1)
			result := resp.Results[0]
			assert.Equal(t, tt.wantOK, result.Success)
			assert.Equal(t, tt.wantID, result.MasterCustomerID)
			if tt.wantNote != "" {
				assert.Equal(t, tt.wantNote, result.Remarks)
			}
		})
	}
}

func TestCustomerService_CreateCustomers_ResultsMirrorInputOrder(t *testing.T) {
	svc, _, contacts := newCustomerServiceForTest(t)

	contacts.EXPECT().
		Find(gomock.Any(), gomock.Any()).
		Return(nil, services.ErrContactNotFound).
		Times(2)
	contacts.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, profile requests.CustomerProfile) (*business.Contact, error) {
			return &business.Contact{MasterCustomerID: "P1", Email: profile.Email}, nil
		}).
		Times(2)

	resp := svc.CreateCustomers(context.Background(), requests.CreateCustomerRequest{
		CustomerList: []requests.CustomerProfile{
			{FirstName: "A", LastName: "One", Email: "a@example.com", Login: true},
			{FirstName: "B", LastName: "Two", Email: "bad-email", Login: true},
			{FirstName: "C", LastName: "Three", Email: "c@example.com", Login: true},
		},
	})

	require.Len(t, resp.Results, 3)
	assert.Equal(t, "a@example.com", resp.Results[0].Email)
	assert.True(t, resp.Results[0].Success)
	assert.Equal(t, "bad-email", resp.Results[1].Email)
	assert.False(t, resp.Results[1].Success)
	assert.Equal(t, "c@example.com", resp.Results[2].Email)
	assert.True(t, resp.Results[2].Success)
}

func TestCustomerService_UpdateCustomers(t *testing.T) {
	contactID := uuid.New()
	newName := "Siu Ming"

	t.Run("patches the addressed contact", func(t *testing.T) {
		svc, crmMock, contacts := newCustomerServiceForTest(t)

		contacts.EXPECT().
			FindByMasterCustomerID(gomock.Any(), "P1700000000000").
			Return(&business.Contact{ID: contactID, MasterCustomerID: "P1700000000000", Email: "chan@example.com"}, nil)
		crmMock.EXPECT().
			Update(gomock.Any(), crm.EntitySetContacts, contactID, gomock.Any()).
			Return(nil)

		resp := svc.UpdateCustomers(context.Background(), requests.UpdateCustomerRequest{
			CustomerList: []requests.CustomerUpdate{
				{MasterCustomerID: "P1700000000000", FirstName: &newName, Login: true},
			},
		})

		require.Len(t, resp.Results, 1)
		assert.True(t, resp.Results[0].Success)
		assert.Equal(t, "chan@example.com", resp.Results[0].Email)
	})

	t.Run("unknown identifier fails the item only", func(t *testing.T) {
		svc, _, contacts := newCustomerServiceForTest(t)

		contacts.EXPECT().
			FindByMasterCustomerID(gomock.Any(), "P404").
			Return(nil, services.ErrContactNotFound)

		resp := svc.UpdateCustomers(context.Background(), requests.UpdateCustomerRequest{
			CustomerList: []requests.CustomerUpdate{
				{MasterCustomerID: "P404", FirstName: &newName, Login: true},
			},
		})

		require.Len(t, resp.Results, 1)
		assert.False(t, resp.Results[0].Success)
		assert.Equal(t, constants.RemarkContactNotFound, resp.Results[0].Remarks)
	})

	t.Run("lookup failure is not reported as missing", func(t *testing.T) {
		svc, _, contacts := newCustomerServiceForTest(t)

		contacts.EXPECT().
			FindByMasterCustomerID(gomock.Any(), "P1700000000000").
			Return(nil, errors.New("crm timeout"))

		resp := svc.UpdateCustomers(context.Background(), requests.UpdateCustomerRequest{
			CustomerList: []requests.CustomerUpdate{
				{MasterCustomerID: "P1700000000000", FirstName: &newName, Login: true},
			},
		})

		require.Len(t, resp.Results, 1)
		assert.False(t, resp.Results[0].Success)
		assert.Equal(t, "Customer lookup failed", resp.Results[0].Remarks)
	})
}
