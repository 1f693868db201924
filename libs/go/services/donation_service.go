package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wkcda/crm-gateway/libs/go/client/dataverse"
	"github.com/wkcda/crm-gateway/libs/go/crm"
	"github.com/wkcda/crm-gateway/libs/go/helpers"
	"github.com/wkcda/crm-gateway/libs/go/interfaces"
	"github.com/wkcda/crm-gateway/libs/go/logger"
	"github.com/wkcda/crm-gateway/libs/go/types/api/requests"
	"github.com/wkcda/crm-gateway/libs/go/types/api/responses"
	"github.com/wkcda/crm-gateway/libs/go/types/business"

	"go.uber.org/zap"
)

// DonationService records online gift transactions. Items are prepared
// one by one but written through a single CreateMultiple batch, so a
// CRM outage fails the whole batch rather than half of it.
type DonationService struct {
	crm      dataverse.API
	contacts interfaces.ContactResolver
	options  *OptionSetService
	receipts interfaces.ReceiptSender
	logger   *zap.Logger
	now      func() time.Time
}

// NewDonationService creates a donation service. receipts may be a
// no-op sender when email is not configured.
func NewDonationService(crmClient dataverse.API, contacts interfaces.ContactResolver, options *OptionSetService, receipts interfaces.ReceiptSender) *DonationService {
	return &DonationService{
		crm:      crmClient,
		contacts: contacts,
		options:  options,
		receipts: receipts,
		logger:   logger.Log,
		now:      time.Now,
	}
}

// preparedDonation pairs a batch entity with the input item it came from.
type preparedDonation struct {
	index   int
	item    requests.DonationItem
	contact *business.Contact
	entity  dataverse.Entity
}

// CreateDonations processes a CreateOnlineDonationTransactionWS batch.
// Unknown donors are created as contacts before the gift is recorded.
func (s *DonationService) CreateDonations(ctx context.Context, req requests.CreateDonationRequest) *responses.DonationListResponse {
	resp := &responses.DonationListResponse{
		Results: make([]responses.DonationResult, len(req.DonationList)),
	}

	prepared := make([]preparedDonation, 0, len(req.DonationList))
	for i, item := range req.DonationList {
		resp.Results[i].Email = item.Email

		p, remark := s.prepareOne(ctx, item)
		if remark != "" {
			resp.Results[i].Remarks = remark
			continue
		}
		p.index = i
		resp.Results[i].MasterCustomerID = p.contact.MasterCustomerID
		prepared = append(prepared, *p)
	}
	if len(prepared) == 0 {
		return resp
	}

	entities := make([]dataverse.Entity, len(prepared))
	for i, p := range prepared {
		entities[i] = p.entity
	}

	ids, err := s.crm.CreateMultiple(ctx, crm.EntitySetGiftTransactions, crm.EntityGiftTransaction, entities)
	if err != nil {
		s.logger.Error("Gift transaction batch failed",
			zap.Int("count", len(entities)),
			zap.Error(err))
		for _, p := range prepared {
			resp.Results[p.index].Remarks = "Donation could not be recorded"
		}
		return resp
	}

	for i, p := range prepared {
		result := &resp.Results[p.index]
		result.Success = true
		if i < len(ids) {
			result.GiftTransactionID = ids[i].String()
		}
		if p.item.SendReceipt {
			s.sendReceipt(ctx, p)
		}
	}
	return resp
}

// prepareOne validates an item and builds its gift entity. A non-empty
// remark means the item is rejected.
func (s *DonationService) prepareOne(ctx context.Context, item requests.DonationItem) (*preparedDonation, string) {
	if !helpers.IsEmailValid(item.Email) {
		return nil, fmt.Sprintf("Invalid email address %q", item.Email)
	}
	if item.Amount <= 0 {
		return nil, fmt.Sprintf("Invalid donation amount %.2f", item.Amount)
	}

	giftDate := s.now()
	if item.GiftDate != "" {
		parsed, err := helpers.ParsePortalDate(item.GiftDate)
		if err != nil {
			return nil, fmt.Sprintf("Invalid GiftDate %q", item.GiftDate)
		}
		giftDate = parsed
	}

	contact, remark := s.resolveDonor(ctx, item)
	if remark != "" {
		return nil, remark
	}

	entity := dataverse.Entity{
		crm.ColGiftAmount:            item.Amount,
		crm.ColGiftCampaign:          item.CampaignName,
		crm.ColGiftDate:              giftDate.Format(helpers.PortalDateLayout),
		bindProp(crm.ColGiftContact): dataverse.Bind(crm.EntitySetContacts, contact.ID),
	}
	if item.SalesChannel != "" {
		channelCode, err := s.options.Resolve(ctx, crm.EntityGiftTransaction, crm.ColGiftChannelCode, item.SalesChannel)
		if err != nil {
			return nil, fmt.Sprintf("unknown SalesChannel value %q", item.SalesChannel)
		}
		entity[crm.ColGiftChannelCode] = channelCode
	}
	if item.SendReceipt {
		entity[crm.ColGiftReceiptEmail] = s.receiptAddress(item)
	}

	return &preparedDonation{item: item, contact: contact, entity: entity}, ""
}

func (s *DonationService) resolveDonor(ctx context.Context, item requests.DonationItem) (*business.Contact, string) {
	if item.MasterCustomerID != "" {
		contact, err := s.contacts.FindByMasterCustomerID(ctx, item.MasterCustomerID)
		if err == nil {
			return contact, ""
		}
		if !errors.Is(err, ErrContactNotFound) {
			return nil, "Customer lookup failed"
		}
		// Fall through to email matching; the portal sometimes sends a
		// stale MasterCustomerID for returning donors.
	}

	contact, err := s.contacts.Find(ctx, business.ContactMatchCriteria{
		Strategy: business.MatchEmail,
		Email:    item.Email,
	})
	if err == nil {
		return contact, ""
	}
	if !errors.Is(err, ErrContactNotFound) {
		return nil, "Customer lookup failed"
	}

	created, err := s.contacts.Create(ctx, requests.CustomerProfile{
		FirstName: item.FirstName,
		LastName:  item.LastName,
		Email:     item.Email,
	})
	if err != nil {
		s.logger.Error("Donor contact creation failed",
			zap.String("email", item.Email),
			zap.Error(err))
		return nil, "Donor record could not be created"
	}
	return created, ""
}

func (s *DonationService) receiptAddress(item requests.DonationItem) string {
	if item.ReceiptEmail != "" {
		return item.ReceiptEmail
	}
	return item.Email
}

func (s *DonationService) sendReceipt(ctx context.Context, p preparedDonation) {
	donorName := p.contact.FirstName
	if p.item.FirstName != "" {
		donorName = p.item.FirstName
	}
	err := s.receipts.SendDonationReceipt(ctx, s.receiptAddress(p.item), donorName, p.item.CampaignName, p.item.Amount)
	if err != nil {
		// Receipt delivery never fails the donation record.
		s.logger.Warn("Donation receipt delivery failed",
			zap.String("email", p.item.Email),
			zap.Error(err))
	}
}
