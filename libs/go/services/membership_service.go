package services

import (
	"context"
	"errors"
	"fmt"
	"math"
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
	"go.uber.org/zap"
)

// MembershipService handles the paid membership lifecycle: the two-leg
// purchase flow, upgrades, terminations and status enquiries.
type MembershipService struct {
	crm      dataverse.API
	contacts interfaces.ContactResolver
	options  *OptionSetService
	logger   *zap.Logger
	now      func() time.Time
}

// NewMembershipService creates a membership service.
func NewMembershipService(crmClient dataverse.API, contacts interfaces.ContactResolver, options *OptionSetService) *MembershipService {
	return &MembershipService{
		crm:      crmClient,
		contacts: contacts,
		options:  options,
		logger:   logger.Log,
		now:      time.Now,
	}
}

// PurchaseBeforePayment creates the pending tier histories and group
// placements ahead of payment capture. The member cap is checked against
// the group's current active membership plus this batch.
func (s *MembershipService) PurchaseBeforePayment(ctx context.Context, req requests.PurchaseBeforePaymentRequest) (*responses.PurchaseBeforePaymentResponse, error) {
	resp := &responses.PurchaseBeforePaymentResponse{
		Results: make([]responses.PurchaseMemberResult, len(req.Members)),
	}
	for i, member := range req.Members {
		resp.Results[i].MasterCustomerID = member.MasterCustomerID
	}

	failAll := func(remark string) *responses.PurchaseBeforePaymentResponse {
		for i := range resp.Results {
			resp.Results[i].Remarks = remark
		}
		return resp
	}

	if !req.Login {
		return failAll(constants.RemarkLoginRequired), nil
	}

	limit := crm.GroupMemberCap(req.GroupType)
	if limit == 0 {
		return failAll(fmt.Sprintf("unknown GroupType value %q", req.GroupType)), nil
	}

	existing := 0
	var groupID uuid.UUID
	if req.GroupID != "" {
		// Portal-supplied, so parse before it reaches any OData filter.
		parsed, err := uuid.Parse(req.GroupID)
		if err != nil {
			return failAll(fmt.Sprintf("Invalid GroupID %q", req.GroupID)), nil
		}
		groupID = parsed

		count, err := s.countActiveMembers(ctx, groupID)
		if err != nil {
			if errors.Is(err, dataverse.ErrNotFound) {
				return failAll("Membership group not found"), nil
			}
			return nil, err
		}
		existing = count
	}
	if existing+len(req.Members) > limit {
		return failAll(fmt.Sprintf("Membership group limit exceeded (%d of %d members)",
			existing+len(req.Members), limit)), nil
	}

	if groupID == uuid.Nil {
		id, err := s.createGroup(ctx, req)
		if err != nil {
			return nil, err
		}
		groupID = id
	}
	resp.GroupID = groupID.String()

	for i, member := range req.Members {
		resp.Results[i] = s.enrollMember(ctx, req.TierName, groupID, member)
	}
	return resp, nil
}

func (s *MembershipService) createGroup(ctx context.Context, req requests.PurchaseBeforePaymentRequest) (uuid.UUID, error) {
	typeCode, err := s.options.Resolve(ctx, crm.EntityGroup, crm.ColGroupTypeCode, req.GroupType)
	if err != nil {
		return uuid.Nil, err
	}
	return s.crm.Create(ctx, crm.EntitySetGroups, dataverse.Entity{
		crm.ColGroupName:     fmt.Sprintf("%s - %s", req.TierName, req.Members[0].MasterCustomerID),
		crm.ColGroupTypeCode: typeCode,
	})
}

func (s *MembershipService) countActiveMembers(ctx context.Context, groupID uuid.UUID) (int, error) {
	// Confirm the group exists first so a bad GroupID is not mistaken
	// for an empty group.
	if _, err := s.crm.QueryOne(ctx, crm.EntitySetGroups, dataverse.QueryOptions{
		Select: []string{crm.ColGroupID},
		Filter: fmt.Sprintf("%s eq %s", crm.ColGroupID, groupID),
	}); err != nil {
		return 0, err
	}

	members, err := s.crm.Query(ctx, crm.EntitySetGroupRelationships, dataverse.QueryOptions{
		Select: []string{crm.ColRelationshipID},
		Filter: dataverse.FilterAnd(
			dataverse.FilterEqGUID(crm.ColRelationshipGroup, groupID),
			dataverse.FilterEqInt(crm.ColRelationshipStatus, crm.RelationshipStatusActive),
		),
	})
	if err != nil {
		return 0, err
	}
	return len(members), nil
}

func (s *MembershipService) enrollMember(ctx context.Context, tierName string, groupID uuid.UUID, member requests.MembershipPurchaseMember) responses.PurchaseMemberResult {
	result := responses.PurchaseMemberResult{MasterCustomerID: member.MasterCustomerID}

	contact, err := s.contacts.FindByMasterCustomerID(ctx, member.MasterCustomerID)
	if err != nil {
		if errors.Is(err, ErrContactNotFound) {
			result.Remarks = constants.RemarkContactNotFound
		} else {
			result.Remarks = "Customer lookup failed"
		}
		return result
	}

	roleCode, err := s.options.Resolve(ctx, crm.EntityGroupRelationship, crm.ColMemberRoleCode, member.MemberRole)
	if err != nil {
		result.Remarks = fmt.Sprintf("unknown MemberRole value %q", member.MemberRole)
		return result
	}

	tierHistoryID, err := s.crm.Create(ctx, crm.EntitySetTierHistories, dataverse.Entity{
		crm.ColTierName:                     tierName,
		crm.ColTierStatusCode:               crm.TierStatusPending,
		bindProp(crm.ColTierHistoryContact): dataverse.Bind(crm.EntitySetContacts, contact.ID),
	})
	if err != nil {
		s.logger.Error("Tier history creation failed",
			zap.String("master_customer_id", member.MasterCustomerID),
			zap.Error(err))
		result.Remarks = "Membership record creation failed"
		return result
	}

	if _, err := s.crm.Create(ctx, crm.EntitySetGroupRelationships, dataverse.Entity{
		crm.ColMemberRoleCode:               roleCode,
		crm.ColRelationshipStatus:           crm.RelationshipStatusActive,
		bindProp(crm.ColRelationshipMember): dataverse.Bind(crm.EntitySetContacts, contact.ID),
		bindProp(crm.ColRelationshipGroup):  dataverse.Bind(crm.EntitySetGroups, groupID),
	}); err != nil {
		s.logger.Error("Group relationship creation failed",
			zap.String("master_customer_id", member.MasterCustomerID),
			zap.Error(err))
		result.Remarks = "Group placement failed"
		return result
	}

	result.Success = true
	result.TierHistoryID = tierHistoryID.String()
	return result
}

// PurchaseAfterPayment records the settled payment and activates the
// pending tier history with the purchased membership period.
func (s *MembershipService) PurchaseAfterPayment(ctx context.Context, req requests.PurchaseAfterPaymentRequest) (*responses.PurchaseAfterPaymentResponse, error) {
	resp := &responses.PurchaseAfterPaymentResponse{MasterCustomerID: req.MasterCustomerID}

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

	tierHistoryID, err := uuid.Parse(req.TierHistoryID)
	if err != nil {
		resp.Remarks = fmt.Sprintf("Invalid TierHistoryID %q", req.TierHistoryID)
		return resp, nil
	}
	if _, err := s.crm.QueryOne(ctx, crm.EntitySetTierHistories, dataverse.QueryOptions{
		Select: []string{crm.ColTierHistoryID},
		Filter: fmt.Sprintf("%s eq %s", crm.ColTierHistoryID, tierHistoryID),
	}); err != nil {
		if errors.Is(err, dataverse.ErrNotFound) {
			resp.Remarks = "Membership record not found"
			return resp, nil
		}
		return nil, err
	}

	startDate, endDate, err := s.parseMembershipPeriod(req.StartDate, req.EndDate)
	if err != nil {
		resp.Remarks = err.Error()
		return resp, nil
	}

	typeCode, channelCode, remark, err := s.paymentCodes(ctx, req.PaymentType, req.SalesChannel)
	if err != nil {
		return nil, err
	}
	if remark != "" {
		resp.Remarks = remark
		return resp, nil
	}

	paymentDate := s.now()
	if req.PaymentDate != "" {
		parsed, err := helpers.ParsePortalDate(req.PaymentDate)
		if err != nil {
			resp.Remarks = err.Error()
			return resp, nil
		}
		paymentDate = parsed
	}

	payment := s.paymentEntity(contact.ID, tierHistoryID, typeCode, channelCode, paymentDetails{
		amount:   req.Amount,
		discount: req.DiscountAmount,
		date:     paymentDate,
		kind:     crm.PaymentKindPurchase,
	})
	paymentID, err := s.crm.Create(ctx, crm.EntitySetPaymentTransactions, payment)
	if err != nil {
		return nil, err
	}

	if err := s.crm.Update(ctx, crm.EntitySetTierHistories, tierHistoryID, dataverse.Entity{
		crm.ColTierStatusCode: crm.TierStatusActive,
		crm.ColStartDate:      startDate.Format(helpers.PortalDateLayout),
		crm.ColEndDate:        endDate.Format(helpers.PortalDateLayout),
	}); err != nil {
		return nil, err
	}

	s.logger.Info("Membership purchase settled",
		zap.String("master_customer_id", req.MasterCustomerID),
		zap.String("payment_transaction_id", paymentID.String()))

	resp.Success = true
	resp.PaymentTransactionID = paymentID.String()
	return resp, nil
}

type paymentDetails struct {
	amount   float64
	discount float64
	date     time.Time
	kind     int
}

// paymentCodes resolves the payment option-set labels. A non-empty
// remark means a portal input problem; err means a CRM failure.
// Callers resolve before their first CRM write so a bad label never
// strands a half-applied change.
func (s *MembershipService) paymentCodes(ctx context.Context, paymentType, salesChannel string) (int, int, string, error) {
	typeCode, err := s.options.Resolve(ctx, crm.EntityPaymentTransaction, crm.ColPaymentTypeCode, paymentType)
	if err != nil {
		if errors.Is(err, dataverse.ErrOptionNotFound) {
			return 0, 0, fmt.Sprintf("unknown PaymentType value %q", paymentType), nil
		}
		return 0, 0, "", err
	}
	channelCode, err := s.options.Resolve(ctx, crm.EntityPaymentTransaction, crm.ColSalesChannelCode, salesChannel)
	if err != nil {
		if errors.Is(err, dataverse.ErrOptionNotFound) {
			return 0, 0, fmt.Sprintf("unknown SalesChannel value %q", salesChannel), nil
		}
		return 0, 0, "", err
	}
	return typeCode, channelCode, "", nil
}

func (s *MembershipService) paymentEntity(contactID, tierHistoryID uuid.UUID, typeCode, channelCode int, d paymentDetails) dataverse.Entity {
	payment := dataverse.Entity{
		crm.ColPaymentAmount:                d.amount,
		crm.ColPaymentTypeCode:              typeCode,
		crm.ColSalesChannelCode:             channelCode,
		crm.ColPaymentDate:                  d.date.Format(time.RFC3339),
		crm.ColPaymentKindCode:              d.kind,
		bindProp(crm.ColPaymentContact):     dataverse.Bind(crm.EntitySetContacts, contactID),
		bindProp(crm.ColPaymentTierHistory): dataverse.Bind(crm.EntitySetTierHistories, tierHistoryID),
	}
	if d.discount > 0 {
		payment[crm.ColPaymentDiscount] = d.discount
	}
	return payment
}

func (s *MembershipService) parseMembershipPeriod(start, end string) (time.Time, time.Time, error) {
	startDate, err := helpers.ParsePortalDate(start)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("Invalid StartDate %q", start)
	}
	endDate, err := helpers.ParsePortalDate(end)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("Invalid EndDate %q", end)
	}
	if endDate.Before(startDate) {
		return time.Time{}, time.Time{}, fmt.Errorf("EndDate %s is before StartDate %s", end, start)
	}
	return startDate, endDate, nil
}

// Upgrade ends the current tier, refunds its unconsumed portion and
// opens the upgraded tier with a fresh purchase payment.
func (s *MembershipService) Upgrade(ctx context.Context, req requests.MembershipUpgradeRequest) (*responses.MembershipUpgradeResponse, error) {
	resp := &responses.MembershipUpgradeResponse{MasterCustomerID: req.MasterCustomerID}

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

	current, err := s.activeTierHistory(ctx, contact.ID)
	if err != nil {
		if errors.Is(err, dataverse.ErrNotFound) {
			resp.Remarks = constants.RemarkNoActiveMembership
			return resp, nil
		}
		return nil, err
	}
	currentID, err := uuid.Parse(current.GetString(crm.ColTierHistoryID))
	if err != nil {
		return nil, fmt.Errorf("malformed tier history id: %w", err)
	}

	startDate, endDate, err := s.parseMembershipPeriod(req.StartDate, req.EndDate)
	if err != nil {
		resp.Remarks = err.Error()
		return resp, nil
	}

	// The refund and the new purchase share the request's payment labels.
	// Both must resolve before the current tier is end-dated.
	typeCode, channelCode, remark, err := s.paymentCodes(ctx, req.PaymentType, req.SalesChannel)
	if err != nil {
		return nil, err
	}
	if remark != "" {
		resp.Remarks = remark
		return resp, nil
	}

	consumption := consumptionFraction(current.GetTime(crm.ColStartDate), current.GetTime(crm.ColEndDate), s.now())
	refund, err := s.refundableAmount(ctx, currentID, consumption)
	if err != nil {
		return nil, err
	}

	if err := s.crm.Update(ctx, crm.EntitySetTierHistories, currentID, dataverse.Entity{
		crm.ColTierStatusCode: crm.TierStatusEnded,
		crm.ColEndDate:        s.now().Format(helpers.PortalDateLayout),
		crm.ColConsumptionPct: math.Round(consumption*10000) / 100,
	}); err != nil {
		return nil, err
	}

	if refund > 0 {
		refundPayment := s.paymentEntity(contact.ID, currentID, typeCode, channelCode, paymentDetails{
			amount: refund,
			date:   s.now(),
			kind:   crm.PaymentKindRefund,
		})
		refundID, err := s.crm.Create(ctx, crm.EntitySetPaymentTransactions, refundPayment)
		if err != nil {
			return nil, err
		}
		resp.RefundTransactionID = refundID.String()
		resp.RefundAmount = refund
	}

	newTierHistoryID, err := s.crm.Create(ctx, crm.EntitySetTierHistories, dataverse.Entity{
		crm.ColTierName:                     req.NewTierName,
		crm.ColTierStatusCode:               crm.TierStatusActive,
		crm.ColStartDate:                    startDate.Format(helpers.PortalDateLayout),
		crm.ColEndDate:                      endDate.Format(helpers.PortalDateLayout),
		bindProp(crm.ColTierHistoryContact): dataverse.Bind(crm.EntitySetContacts, contact.ID),
	})
	if err != nil {
		return nil, err
	}

	payment := s.paymentEntity(contact.ID, newTierHistoryID, typeCode, channelCode, paymentDetails{
		amount: req.Amount,
		date:   s.now(),
		kind:   crm.PaymentKindPurchase,
	})
	paymentID, err := s.crm.Create(ctx, crm.EntitySetPaymentTransactions, payment)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Membership upgraded",
		zap.String("master_customer_id", req.MasterCustomerID),
		zap.String("new_tier", req.NewTierName),
		zap.Float64("refund_amount", refund))

	resp.Success = true
	resp.NewTierHistoryID = newTierHistoryID.String()
	resp.PaymentTransactionID = paymentID.String()
	return resp, nil
}

// refundableAmount derives the refund from the tier's last purchase
// payment and the consumed fraction of its period.
func (s *MembershipService) refundableAmount(ctx context.Context, tierHistoryID uuid.UUID, consumption float64) (float64, error) {
	payment, err := s.crm.QueryOne(ctx, crm.EntitySetPaymentTransactions, dataverse.QueryOptions{
		Select: []string{crm.ColPaymentAmount},
		Filter: dataverse.FilterAnd(
			dataverse.FilterEqGUID(crm.ColPaymentTierHistory, tierHistoryID),
			dataverse.FilterEqInt(crm.ColPaymentKindCode, crm.PaymentKindPurchase),
		),
		OrderBy: crm.ColPaymentDate + " desc",
	})
	if err != nil {
		if errors.Is(err, dataverse.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}

	paid, _ := payment[crm.ColPaymentAmount].(float64)
	refund := paid * (1 - consumption)
	return math.Round(refund*100) / 100, nil
}

// consumptionFraction is the elapsed share of the membership period,
// clamped to [0, 1].
func consumptionFraction(start, end, now time.Time) float64 {
	if start.IsZero() || end.IsZero() || !end.After(start) {
		return 1
	}
	fraction := now.Sub(start).Hours() / end.Sub(start).Hours()
	return math.Min(1, math.Max(0, fraction))
}

// Terminate end-dates the active membership and its group placements.
func (s *MembershipService) Terminate(ctx context.Context, req requests.MembershipTerminationRequest) (*responses.MembershipTerminationResponse, error) {
	resp := &responses.MembershipTerminationResponse{MasterCustomerID: req.MasterCustomerID}

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

	current, err := s.activeTierHistory(ctx, contact.ID)
	if err != nil {
		if errors.Is(err, dataverse.ErrNotFound) {
			resp.Remarks = constants.RemarkNoActiveMembership
			return resp, nil
		}
		return nil, err
	}
	currentID, err := uuid.Parse(current.GetString(crm.ColTierHistoryID))
	if err != nil {
		return nil, fmt.Errorf("malformed tier history id: %w", err)
	}

	terminationDate := s.now()
	if req.TerminationDate != "" {
		parsed, err := helpers.ParsePortalDate(req.TerminationDate)
		if err != nil {
			resp.Remarks = fmt.Sprintf("Invalid TerminationDate %q", req.TerminationDate)
			return resp, nil
		}
		terminationDate = parsed
	}

	if err := s.crm.Update(ctx, crm.EntitySetTierHistories, currentID, dataverse.Entity{
		crm.ColTierStatusCode: crm.TierStatusEnded,
		crm.ColEndDate:        terminationDate.Format(helpers.PortalDateLayout),
	}); err != nil {
		return nil, err
	}

	if err := s.endGroupPlacements(ctx, contact.ID, terminationDate); err != nil {
		return nil, err
	}

	s.logger.Info("Membership terminated",
		zap.String("master_customer_id", req.MasterCustomerID),
		zap.String("termination_date", terminationDate.Format(helpers.PortalDateLayout)),
		zap.String("reason", req.Reason))

	resp.Success = true
	return resp, nil
}

func (s *MembershipService) endGroupPlacements(ctx context.Context, contactID uuid.UUID, endDate time.Time) error {
	placements, err := s.crm.Query(ctx, crm.EntitySetGroupRelationships, dataverse.QueryOptions{
		Select: []string{crm.ColRelationshipID},
		Filter: dataverse.FilterAnd(
			dataverse.FilterEqGUID(crm.ColRelationshipMember, contactID),
			dataverse.FilterEqInt(crm.ColRelationshipStatus, crm.RelationshipStatusActive),
		),
	})
	if err != nil {
		return err
	}
	for _, placement := range placements {
		id, err := uuid.Parse(placement.GetString(crm.ColRelationshipID))
		if err != nil {
			return fmt.Errorf("malformed group relationship id: %w", err)
		}
		if err := s.crm.Update(ctx, crm.EntitySetGroupRelationships, id, dataverse.Entity{
			crm.ColRelationshipStatus: crm.RelationshipStatusEnded,
			crm.ColRelationshipEnd:    endDate.Format(helpers.PortalDateLayout),
		}); err != nil {
			return err
		}
	}
	return nil
}

// Status reads the customer's current membership. Read-only.
func (s *MembershipService) Status(ctx context.Context, req requests.MembershipStatusEnquiryRequest) (*responses.MembershipStatusResponse, error) {
	resp := &responses.MembershipStatusResponse{MasterCustomerID: req.MasterCustomerID}

	contact, err := s.contacts.FindByMasterCustomerID(ctx, req.MasterCustomerID)
	if err != nil {
		if errors.Is(err, ErrContactNotFound) {
			resp.Remarks = constants.RemarkContactNotFound
			return resp, nil
		}
		return nil, err
	}

	current, err := s.activeTierHistory(ctx, contact.ID)
	if err != nil {
		if errors.Is(err, dataverse.ErrNotFound) {
			resp.Remarks = constants.RemarkNoActiveMembership
			return resp, nil
		}
		return nil, err
	}

	resp.Success = true
	resp.TierName = current.GetString(crm.ColTierName)
	if start := current.GetTime(crm.ColStartDate); !start.IsZero() {
		resp.StartDate = start.Format(helpers.PortalDateLayout)
	}
	if end := current.GetTime(crm.ColEndDate); !end.IsZero() {
		resp.EndDate = end.Format(helpers.PortalDateLayout)
	}

	placement, err := s.crm.QueryOne(ctx, crm.EntitySetGroupRelationships, dataverse.QueryOptions{
		Select: []string{
			crm.ColMemberRoleCode,
			dataverse.LookupColumn(crm.ColRelationshipGroup),
		},
		Filter: dataverse.FilterAnd(
			dataverse.FilterEqGUID(crm.ColRelationshipMember, contact.ID),
			dataverse.FilterEqInt(crm.ColRelationshipStatus, crm.RelationshipStatusActive),
		),
	})
	if err != nil {
		if errors.Is(err, dataverse.ErrNotFound) {
			return resp, nil
		}
		return nil, err
	}

	role, err := resolveMemberRoleLabel(ctx, s.options, placement.GetInt(crm.ColMemberRoleCode))
	if err == nil {
		resp.MemberRole = role
	}
	if groupID := placement.GetString(dataverse.LookupColumn(crm.ColRelationshipGroup)); groupID != "" {
		group, err := s.crm.QueryOne(ctx, crm.EntitySetGroups, dataverse.QueryOptions{
			Select: []string{crm.ColGroupTypeCode},
			Filter: fmt.Sprintf("%s eq %s", crm.ColGroupID, groupID),
		})
		if err == nil {
			if label, err := resolveGroupTypeLabel(ctx, s.options, group.GetInt(crm.ColGroupTypeCode)); err == nil {
				resp.GroupType = label
			}
		}
	}
	return resp, nil
}

func (s *MembershipService) activeTierHistory(ctx context.Context, contactID uuid.UUID) (dataverse.Entity, error) {
	return s.crm.QueryOne(ctx, crm.EntitySetTierHistories, dataverse.QueryOptions{
		Select: []string{
			crm.ColTierHistoryID,
			crm.ColTierName,
			crm.ColStartDate,
			crm.ColEndDate,
		},
		Filter: dataverse.FilterAnd(
			dataverse.FilterEqGUID(crm.ColTierHistoryContact, contactID),
			dataverse.FilterEqInt(crm.ColTierStatusCode, crm.TierStatusActive),
		),
		OrderBy: crm.ColStartDate + " desc",
	})
}

// resolveMemberRoleLabel reverse-maps a member role option-set value to
// its label.
func resolveMemberRoleLabel(ctx context.Context, options *OptionSetService, code int) (string, error) {
	labels := []string{crm.RolePrimaryMember, crm.RoleAddOnMember}
	for _, label := range labels {
		value, err := options.Resolve(ctx, crm.EntityGroupRelationship, crm.ColMemberRoleCode, label)
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
	return "", fmt.Errorf("%w: no member role label for value %d", dataverse.ErrOptionNotFound, code)
}
