package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/wkcda/crm-gateway/libs/go/client/dataverse"
	"github.com/wkcda/crm-gateway/libs/go/constants"
	"github.com/wkcda/crm-gateway/libs/go/crm"
	"github.com/wkcda/crm-gateway/libs/go/helpers"
	"github.com/wkcda/crm-gateway/libs/go/interfaces"
	"github.com/wkcda/crm-gateway/libs/go/logger"
	"github.com/wkcda/crm-gateway/libs/go/types/api/requests"
	"github.com/wkcda/crm-gateway/libs/go/types/api/responses"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

// codeValidityWindow is how long an activation code stays redeemable
// after its issue date. Expiry is computed at read time; the Expired
// status code is never written back.
const codeValidityWindow = 90 * 24 * time.Hour

// membershipTerm is the membership period opened by redeeming a code.
const membershipTerm = 365 * 24 * time.Hour

const cardQRCodeSize = 256

var activationSelectColumns = []string{
	crm.ColActivationID,
	crm.ColActivationStatus,
	crm.ColIssueDate,
	dataverse.LookupColumn(crm.ColActivationTier),
	dataverse.LookupColumn(crm.ColActivationGroup),
}

// ActivationService validates and redeems membership activation codes.
type ActivationService struct {
	crm      dataverse.API
	contacts interfaces.ContactResolver
	options  *OptionSetService
	logger   *zap.Logger
	now      func() time.Time
}

// NewActivationService creates an activation service.
func NewActivationService(crmClient dataverse.API, contacts interfaces.ContactResolver, options *OptionSetService) *ActivationService {
	return &ActivationService{
		crm:      crmClient,
		contacts: contacts,
		options:  options,
		logger:   logger.Log,
		now:      time.Now,
	}
}

// codeState is the computed view of an activation record.
type codeState struct {
	record    dataverse.Entity
	id        uuid.UUID
	status    int
	issueDate time.Time
	expired   bool
}

func (s *ActivationService) lookupCode(ctx context.Context, code string) (*codeState, error) {
	record, err := s.crm.QueryOne(ctx, crm.EntitySetActivations, dataverse.QueryOptions{
		Select: activationSelectColumns,
		Filter: dataverse.FilterEq(crm.ColActivationCode, code),
	})
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(record.GetString(crm.ColActivationID))
	if err != nil {
		return nil, fmt.Errorf("malformed activation record id: %w", err)
	}

	state := &codeState{
		record:    record,
		id:        id,
		status:    record.GetInt(crm.ColActivationStatus),
		issueDate: record.GetTime(crm.ColIssueDate),
	}
	if state.status == crm.ActivationStatusNew && !state.issueDate.IsZero() {
		state.expired = s.now().After(state.issueDate.Add(codeValidityWindow))
	}
	return state, nil
}

// ValidateCode checks an activation code without redeeming it.
func (s *ActivationService) ValidateCode(ctx context.Context, req requests.ActivationCodeValidationRequest) (*responses.ActivationCodeValidationResponse, error) {
	resp := &responses.ActivationCodeValidationResponse{ActivationCode: req.ActivationCode}

	state, err := s.lookupCode(ctx, req.ActivationCode)
	if err != nil {
		if errors.Is(err, dataverse.ErrNotFound) {
			resp.Remarks = constants.RemarkCodeNotFound
			return resp, nil
		}
		return nil, err
	}

	switch {
	case state.status == crm.ActivationStatusActivated:
		resp.Status = crm.ActivationStatusLabel(crm.ActivationStatusActivated)
		resp.Remarks = constants.RemarkCodeActivated
	case state.expired || state.status == crm.ActivationStatusExpired:
		resp.Status = crm.ActivationStatusLabel(crm.ActivationStatusExpired)
		resp.Remarks = constants.RemarkCodeExpired
	default:
		resp.Success = true
		resp.Status = crm.ActivationStatusLabel(crm.ActivationStatusNew)
		resp.IssueDate = state.issueDate.Format(helpers.PortalDateLayout)

		tierName, err := s.tierName(ctx, state.record.GetString(dataverse.LookupColumn(crm.ColActivationTier)))
		if err != nil {
			return nil, err
		}
		resp.TierName = tierName

		groupType, err := s.groupType(ctx, state.record.GetString(dataverse.LookupColumn(crm.ColActivationGroup)))
		if err != nil {
			return nil, err
		}
		resp.GroupType = groupType
	}

	return resp, nil
}

// Activate redeems a code: opens a tier history, joins the code's group
// and marks the code activated. The three writes are not transactional;
// a failure mid-way leaves the code redeemable so retries converge.
func (s *ActivationService) Activate(ctx context.Context, req requests.MembershipActivationRequest) (*responses.MembershipActivationResponse, error) {
	resp := &responses.MembershipActivationResponse{MasterCustomerID: req.MasterCustomerID}

	if !req.Login {
		resp.Remarks = constants.RemarkLoginRequired
		return resp, nil
	}

	contact, err := s.contacts.FindByMasterCustomerID(ctx, req.MasterCustomerID)
	if err != nil {
		if errors.Is(err, ErrContactNotFound) {
			resp.Remarks = constants.RemarkContactNotFound
			return resp, nil
		}
		return nil, err
	}

	state, err := s.lookupCode(ctx, req.ActivationCode)
	if err != nil {
		if errors.Is(err, dataverse.ErrNotFound) {
			resp.Remarks = constants.RemarkCodeNotFound
			return resp, nil
		}
		return nil, err
	}
	switch {
	case state.status == crm.ActivationStatusActivated:
		resp.Remarks = constants.RemarkCodeActivated
		return resp, nil
	case state.expired || state.status == crm.ActivationStatusExpired:
		resp.Remarks = constants.RemarkCodeExpired
		return resp, nil
	}

	groupID := state.record.GetString(dataverse.LookupColumn(crm.ColActivationGroup))
	if groupID != "" {
		ok, remark, err := s.checkGroupCapacity(ctx, groupID)
		if err != nil {
			return nil, err
		}
		if !ok {
			resp.Remarks = remark
			return resp, nil
		}
	}

	role := req.MemberRole
	if role == "" {
		role = crm.RolePrimaryMember
	}
	roleCode, err := s.options.Resolve(ctx, crm.EntityGroupRelationship, crm.ColMemberRoleCode, role)
	if err != nil {
		resp.Remarks = fmt.Sprintf("unknown MemberRole value %q", role)
		return resp, nil
	}

	now := s.now()
	tierID := state.record.GetString(dataverse.LookupColumn(crm.ColActivationTier))
	tierName, err := s.tierName(ctx, tierID)
	if err != nil {
		return nil, err
	}

	tierHistory := dataverse.Entity{
		crm.ColTierName:       tierName,
		crm.ColStartDate:      now.Format(helpers.PortalDateLayout),
		crm.ColEndDate:        now.Add(membershipTerm).Format(helpers.PortalDateLayout),
		crm.ColTierStatusCode: crm.TierStatusActive,
		bindProp(crm.ColTierHistoryContact): dataverse.Bind(crm.EntitySetContacts, contact.ID),
	}
	if tierID != "" {
		tierHistory[bindProp(crm.ColTierHistoryTier)] = "/" + crm.EntitySetMembershipTiers + "(" + tierID + ")"
	}

	tierHistoryID, err := s.crm.Create(ctx, crm.EntitySetTierHistories, tierHistory)
	if err != nil {
		return nil, err
	}

	if groupID != "" {
		relationship := dataverse.Entity{
			crm.ColMemberRoleCode:     roleCode,
			crm.ColRelationshipStatus: crm.RelationshipStatusActive,
			bindProp(crm.ColRelationshipMember): dataverse.Bind(crm.EntitySetContacts, contact.ID),
			bindProp(crm.ColRelationshipGroup):  "/" + crm.EntitySetGroups + "(" + groupID + ")",
		}
		if _, err := s.crm.Create(ctx, crm.EntitySetGroupRelationships, relationship); err != nil {
			return nil, err
		}
	}

	activated := dataverse.Entity{
		crm.ColActivationStatus: crm.ActivationStatusActivated,
		crm.ColActivatedOn:      now.Format(time.RFC3339),
		bindProp(crm.ColActivatedBy): dataverse.Bind(crm.EntitySetContacts, contact.ID),
	}
	if err := s.crm.Update(ctx, crm.EntitySetActivations, state.id, activated); err != nil {
		return nil, err
	}

	s.logger.Info("Activation code redeemed",
		zap.String("master_customer_id", req.MasterCustomerID),
		zap.String("tier_history_id", tierHistoryID.String()))

	card, err := qrcode.Encode(req.MasterCustomerID, qrcode.Medium, cardQRCodeSize)
	if err != nil {
		s.logger.Warn("Card QR code generation failed", zap.Error(err))
	} else {
		resp.CardQRCode = base64.StdEncoding.EncodeToString(card)
	}

	resp.Success = true
	resp.TierHistoryID = tierHistoryID.String()
	return resp, nil
}

// checkGroupCapacity enforces the per-group-type member cap. Read then
// check; two concurrent activations can both pass, the CRM is the
// system of record for cleanup.
func (s *ActivationService) checkGroupCapacity(ctx context.Context, groupID string) (bool, string, error) {
	group, err := s.crm.QueryOne(ctx, crm.EntitySetGroups, dataverse.QueryOptions{
		Select: []string{crm.ColGroupID, crm.ColGroupTypeCode},
		Filter: fmt.Sprintf("%s eq %s", crm.ColGroupID, groupID),
	})
	if err != nil {
		if errors.Is(err, dataverse.ErrNotFound) {
			return false, "Membership group not found", nil
		}
		return false, "", err
	}

	groupType, err := resolveGroupTypeLabel(ctx, s.options, group.GetInt(crm.ColGroupTypeCode))
	if err != nil {
		return false, "", err
	}
	limit := crm.GroupMemberCap(groupType)
	if limit == 0 {
		return false, fmt.Sprintf("unknown group type %q", groupType), nil
	}

	members, err := s.crm.Query(ctx, crm.EntitySetGroupRelationships, dataverse.QueryOptions{
		Select: []string{crm.ColRelationshipID},
		Filter: dataverse.FilterAnd(
			fmt.Sprintf("%s eq %s", dataverse.LookupColumn(crm.ColRelationshipGroup), groupID),
			dataverse.FilterEqInt(crm.ColRelationshipStatus, crm.RelationshipStatusActive),
		),
	})
	if err != nil {
		return false, "", err
	}
	if len(members) >= limit {
		return false, fmt.Sprintf("Membership group is full (%d of %d members)", len(members), limit), nil
	}
	return true, "", nil
}

func (s *ActivationService) tierName(ctx context.Context, tierID string) (string, error) {
	if tierID == "" {
		return "", nil
	}
	tier, err := s.crm.QueryOne(ctx, crm.EntitySetMembershipTiers, dataverse.QueryOptions{
		Select: []string{crm.ColMembershipTierName},
		Filter: fmt.Sprintf("%s eq %s", crm.ColMembershipTierID, tierID),
	})
	if err != nil {
		if errors.Is(err, dataverse.ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	return tier.GetString(crm.ColMembershipTierName), nil
}

func (s *ActivationService) groupType(ctx context.Context, groupID string) (string, error) {
	if groupID == "" {
		return "", nil
	}
	group, err := s.crm.QueryOne(ctx, crm.EntitySetGroups, dataverse.QueryOptions{
		Select: []string{crm.ColGroupTypeCode},
		Filter: fmt.Sprintf("%s eq %s", crm.ColGroupID, groupID),
	})
	if err != nil {
		if errors.Is(err, dataverse.ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	return resolveGroupTypeLabel(ctx, s.options, group.GetInt(crm.ColGroupTypeCode))
}

// bindProp is the @odata.bind property name for a lookup column.
func bindProp(column string) string {
	return column + "@odata.bind"
}

// resolveGroupTypeLabel reverse-maps a group type option-set value to its
// label by resolving the known labels and comparing. The resolver caches,
// so this costs at most three metadata reads per process.
func resolveGroupTypeLabel(ctx context.Context, options *OptionSetService, code int) (string, error) {
	labels := []string{crm.GroupTypeIndividual, crm.GroupTypeDual, crm.GroupTypeFamily}
	for _, label := range labels {
		value, err := options.Resolve(ctx, crm.EntityGroup, crm.ColGroupTypeCode, label)
		if err != nil {
			if errors.Is(err, dataverse.ErrOptionNotFound) {
				continue
			}
			return "", err
		}
		if value == code {
			return label, nil
		}
	}
	return "", fmt.Errorf("%w: no group type label for value %d", dataverse.ErrOptionNotFound, code)
}
