package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/wkcda/crm-gateway/libs/go/client/dataverse"
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

var testNow = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

func newActivationServiceForTest(t *testing.T) (*services.ActivationService, *mocks.MockAPI, *mocks.MockContactResolver) {
	t.Helper()
	ctrl := gomock.NewController(t)
	crmMock := mocks.NewMockAPI(ctrl)
	contacts := mocks.NewMockContactResolver(ctrl)
	svc := services.NewActivationService(crmMock, contacts, services.NewOptionSetService(crmMock))
	svc.SetNow(func() time.Time { return testNow })
	return svc, crmMock, contacts
}

func activationRecord(id uuid.UUID, status int, issueDate string) dataverse.Entity {
	return dataverse.Entity{
		crm.ColActivationID:     id.String(),
		crm.ColActivationStatus: status,
		crm.ColIssueDate:        issueDate,
	}
}

func expectGroupTypeLabels(crmMock *mocks.MockAPI) {
	crmMock.EXPECT().
		GetOptionSetValue(gomock.Any(), crm.EntityGroup, crm.ColGroupTypeCode, crm.GroupTypeIndividual).
		Return(864630000, nil).AnyTimes()
	crmMock.EXPECT().
		GetOptionSetValue(gomock.Any(), crm.EntityGroup, crm.ColGroupTypeCode, crm.GroupTypeDual).
		Return(864630001, nil).AnyTimes()
	crmMock.EXPECT().
		GetOptionSetValue(gomock.Any(), crm.EntityGroup, crm.ColGroupTypeCode, crm.GroupTypeFamily).
		Return(864630002, nil).AnyTimes()
}

func TestActivationService_ValidateCode(t *testing.T) {
	codeID := uuid.New()

	t.Run("unknown code", func(t *testing.T) {
		svc, crmMock, _ := newActivationServiceForTest(t)
		crmMock.EXPECT().
			QueryOne(gomock.Any(), crm.EntitySetActivations, gomock.Any()).
			Return(nil, dataverse.ErrNotFound)

		resp, err := svc.ValidateCode(context.Background(), requests.ActivationCodeValidationRequest{ActivationCode: "WK-NOPE"})
		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, constants.RemarkCodeNotFound, resp.Remarks)
	})

	t.Run("already activated", func(t *testing.T) {
		svc, crmMock, _ := newActivationServiceForTest(t)
		crmMock.EXPECT().
			QueryOne(gomock.Any(), crm.EntitySetActivations, gomock.Any()).
			Return(activationRecord(codeID, crm.ActivationStatusActivated, "2026-07-01"), nil)

		resp, err := svc.ValidateCode(context.Background(), requests.ActivationCodeValidationRequest{ActivationCode: "WK-USED"})
		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, "Activated", resp.Status)
		assert.Equal(t, constants.RemarkCodeActivated, resp.Remarks)
	})

	t.Run("expired by issue date", func(t *testing.T) {
		// Issued 2026-05-01; the 90-day window closed before the pinned
		// clock (2026-08-01), even though the stored status is still New.
		svc, crmMock, _ := newActivationServiceForTest(t)
		crmMock.EXPECT().
			QueryOne(gomock.Any(), crm.EntitySetActivations, gomock.Any()).
			Return(activationRecord(codeID, crm.ActivationStatusNew, "2026-05-01"), nil)

		resp, err := svc.ValidateCode(context.Background(), requests.ActivationCodeValidationRequest{ActivationCode: "WK-OLD"})
		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, "Expired", resp.Status)
		assert.Equal(t, constants.RemarkCodeExpired, resp.Remarks)
	})

	t.Run("valid code reports tier and group type", func(t *testing.T) {
		svc, crmMock, _ := newActivationServiceForTest(t)
		tierID := uuid.New()
		groupID := uuid.New()

		record := activationRecord(codeID, crm.ActivationStatusNew, "2026-07-01")
		record[dataverse.LookupColumn(crm.ColActivationTier)] = tierID.String()
		record[dataverse.LookupColumn(crm.ColActivationGroup)] = groupID.String()

		crmMock.EXPECT().
			QueryOne(gomock.Any(), crm.EntitySetActivations, gomock.Any()).
			Return(record, nil)
		crmMock.EXPECT().
			QueryOne(gomock.Any(), crm.EntitySetMembershipTiers, gomock.Any()).
			Return(dataverse.Entity{crm.ColMembershipTierName: "Friend"}, nil)
		crmMock.EXPECT().
			QueryOne(gomock.Any(), crm.EntitySetGroups, gomock.Any()).
			Return(dataverse.Entity{crm.ColGroupTypeCode: 864630002}, nil)
		expectGroupTypeLabels(crmMock)

		resp, err := svc.ValidateCode(context.Background(), requests.ActivationCodeValidationRequest{ActivationCode: "WK-OK"})
		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, "New", resp.Status)
		assert.Equal(t, "Friend", resp.TierName)
		assert.Equal(t, crm.GroupTypeFamily, resp.GroupType)
		assert.Equal(t, "2026-07-01", resp.IssueDate)
	})
}

func TestActivationService_Activate(t *testing.T) {
	codeID := uuid.New()
	contactID := uuid.New()
	tierID := uuid.New()
	groupID := uuid.New()
	tierHistoryID := uuid.New()

	contact := &business.Contact{ID: contactID, MasterCustomerID: "P1700000000000"}

	t.Run("requires login", func(t *testing.T) {
		svc, _, _ := newActivationServiceForTest(t)

		resp, err := svc.Activate(context.Background(), requests.MembershipActivationRequest{
			ActivationCode:   "WK-OK",
			MasterCustomerID: "P1700000000000",
		})
		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, constants.RemarkLoginRequired, resp.Remarks)
	})

	t.Run("redeems a fresh code", func(t *testing.T) {
		svc, crmMock, contacts := newActivationServiceForTest(t)

		contacts.EXPECT().
			FindByMasterCustomerID(gomock.Any(), "P1700000000000").
			Return(contact, nil)

		record := activationRecord(codeID, crm.ActivationStatusNew, "2026-07-01")
		record[dataverse.LookupColumn(crm.ColActivationTier)] = tierID.String()
		record[dataverse.LookupColumn(crm.ColActivationGroup)] = groupID.String()
		crmMock.EXPECT().
			QueryOne(gomock.Any(), crm.EntitySetActivations, gomock.Any()).
			Return(record, nil)

		// Capacity check: Family group with one active member.
		crmMock.EXPECT().
			QueryOne(gomock.Any(), crm.EntitySetGroups, gomock.Any()).
			Return(dataverse.Entity{crm.ColGroupID: groupID.String(), crm.ColGroupTypeCode: 864630002}, nil)
		expectGroupTypeLabels(crmMock)
		crmMock.EXPECT().
			Query(gomock.Any(), crm.EntitySetGroupRelationships, gomock.Any()).
			Return([]dataverse.Entity{{crm.ColRelationshipID: uuid.New().String()}}, nil)

		crmMock.EXPECT().
			GetOptionSetValue(gomock.Any(), crm.EntityGroupRelationship, crm.ColMemberRoleCode, crm.RolePrimaryMember).
			Return(864630000, nil)

		crmMock.EXPECT().
			QueryOne(gomock.Any(), crm.EntitySetMembershipTiers, gomock.Any()).
			Return(dataverse.Entity{crm.ColMembershipTierName: "Friend"}, nil)

		crmMock.EXPECT().
			Create(gomock.Any(), crm.EntitySetTierHistories, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, attributes dataverse.Entity) (uuid.UUID, error) {
				assert.Equal(t, "Friend", attributes[crm.ColTierName])
				assert.Equal(t, crm.TierStatusActive, attributes[crm.ColTierStatusCode])
				assert.Equal(t, "2026-08-01", attributes[crm.ColStartDate])
				return tierHistoryID, nil
			})
		crmMock.EXPECT().
			Create(gomock.Any(), crm.EntitySetGroupRelationships, gomock.Any()).
			Return(uuid.New(), nil)
		crmMock.EXPECT().
			Update(gomock.Any(), crm.EntitySetActivations, codeID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ uuid.UUID, attributes dataverse.Entity) error {
				assert.Equal(t, crm.ActivationStatusActivated, attributes[crm.ColActivationStatus])
				return nil
			})

		resp, err := svc.Activate(context.Background(), requests.MembershipActivationRequest{
			ActivationCode:   "WK-OK",
			MasterCustomerID: "P1700000000000",
			Login:            true,
		})
		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, tierHistoryID.String(), resp.TierHistoryID)
		assert.NotEmpty(t, resp.CardQRCode)
	})

	t.Run("rejects when the group is full", func(t *testing.T) {
		svc, crmMock, contacts := newActivationServiceForTest(t)

		contacts.EXPECT().
			FindByMasterCustomerID(gomock.Any(), "P1700000000000").
			Return(contact, nil)

		record := activationRecord(codeID, crm.ActivationStatusNew, "2026-07-01")
		record[dataverse.LookupColumn(crm.ColActivationGroup)] = groupID.String()
		crmMock.EXPECT().
			QueryOne(gomock.Any(), crm.EntitySetActivations, gomock.Any()).
			Return(record, nil)

		// Individual group already holding its one member.
		crmMock.EXPECT().
			QueryOne(gomock.Any(), crm.EntitySetGroups, gomock.Any()).
			Return(dataverse.Entity{crm.ColGroupID: groupID.String(), crm.ColGroupTypeCode: 864630000}, nil)
		expectGroupTypeLabels(crmMock)
		crmMock.EXPECT().
			Query(gomock.Any(), crm.EntitySetGroupRelationships, gomock.Any()).
			Return([]dataverse.Entity{{crm.ColRelationshipID: uuid.New().String()}}, nil)

		resp, err := svc.Activate(context.Background(), requests.MembershipActivationRequest{
			ActivationCode:   "WK-OK",
			MasterCustomerID: "P1700000000000",
			Login:            true,
		})
		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Contains(t, resp.Remarks, "full")
	})

	t.Run("already activated code is not redeemed twice", func(t *testing.T) {
		svc, crmMock, contacts := newActivationServiceForTest(t)

		contacts.EXPECT().
			FindByMasterCustomerID(gomock.Any(), "P1700000000000").
			Return(contact, nil)
		crmMock.EXPECT().
			QueryOne(gomock.Any(), crm.EntitySetActivations, gomock.Any()).
			Return(activationRecord(codeID, crm.ActivationStatusActivated, "2026-07-01"), nil)

		resp, err := svc.Activate(context.Background(), requests.MembershipActivationRequest{
			ActivationCode:   "WK-USED",
			MasterCustomerID: "P1700000000000",
			Login:            true,
		})
		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, constants.RemarkCodeActivated, resp.Remarks)
	})
}
