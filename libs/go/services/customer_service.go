package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/wkcda/crm-gateway/libs/go/client/dataverse"
	"github.com/wkcda/crm-gateway/libs/go/constants"
	"github.com/wkcda/crm-gateway/libs/go/crm"
	"github.com/wkcda/crm-gateway/libs/go/helpers"
	"github.com/wkcda/crm-gateway/libs/go/interfaces"
	"github.com/wkcda/crm-gateway/libs/go/logger"
	"github.com/wkcda/crm-gateway/libs/go/types/api/requests"
	"github.com/wkcda/crm-gateway/libs/go/types/api/responses"
	"github.com/wkcda/crm-gateway/libs/go/types/business"

	"go.uber.org/zap"
)

// CustomerService handles batched customer creation and updates. Results
// mirror input order; one bad item never fails the batch.
type CustomerService struct {
	crm      dataverse.API
	contacts interfaces.ContactResolver
	options  *OptionSetService
	logger   *zap.Logger
}

// NewCustomerService creates a customer service.
func NewCustomerService(crmClient dataverse.API, contacts interfaces.ContactResolver, options *OptionSetService) *CustomerService {
	return &CustomerService{
		crm:      crmClient,
		contacts: contacts,
		options:  options,
		logger:   logger.Log,
	}
}

// CreateCustomers processes a CreateCustomerWS batch. A duplicate email
// yields Success=false with the existing MasterCustomerID echoed back.
func (s *CustomerService) CreateCustomers(ctx context.Context, req requests.CreateCustomerRequest) *responses.CustomerListResponse {
	results := make([]responses.CustomerResult, len(req.CustomerList))

	for i, profile := range req.CustomerList {
		results[i] = s.createOne(ctx, profile)
	}

	return &responses.CustomerListResponse{Results: results}
}

func (s *CustomerService) createOne(ctx context.Context, profile requests.CustomerProfile) responses.CustomerResult {
	result := responses.CustomerResult{Email: profile.Email}

	if !profile.Login {
		result.Remarks = constants.RemarkLoginRequired
		return result
	}
	if !helpers.IsEmailValid(profile.Email) {
		result.Remarks = fmt.Sprintf("Invalid email address %q", profile.Email)
		return result
	}
	if profile.MobilePhone != "" && !helpers.IsPhoneValid(profile.MobilePhone) {
		result.Remarks = fmt.Sprintf("Invalid phone number %q", profile.MobilePhone)
		return result
	}

	criteria := business.ContactMatchCriteria{
		Strategy: business.MatchEmail,
		Email:    profile.Email,
	}
	if profile.MobilePhone != "" {
		criteria.Strategy = business.MatchEmailOrPhone
		criteria.Phone = profile.MobilePhone
	}

	existing, err := s.contacts.Find(ctx, criteria)
	switch {
	case err == nil:
		result.Remarks = constants.RemarkDuplicateCustomer
		result.MasterCustomerID = existing.MasterCustomerID
		return result
	case !errors.Is(err, ErrContactNotFound):
		result.Remarks = "Customer lookup failed"
		s.logger.Error("Customer lookup failed", zap.String("email", profile.Email), zap.Error(err))
		return result
	}

	created, err := s.contacts.Create(ctx, profile)
	if err != nil {
		result.Remarks = err.Error()
		return result
	}

	result.Success = true
	result.MasterCustomerID = created.MasterCustomerID
	return result
}

// UpdateCustomers processes an UpdateCustomerWS batch, addressing
// contacts by MasterCustomerID.
func (s *CustomerService) UpdateCustomers(ctx context.Context, req requests.UpdateCustomerRequest) *responses.CustomerListResponse {
	results := make([]responses.CustomerResult, len(req.CustomerList))

	for i, update := range req.CustomerList {
		results[i] = s.updateOne(ctx, update)
	}

	return &responses.CustomerListResponse{Results: results}
}

func (s *CustomerService) updateOne(ctx context.Context, update requests.CustomerUpdate) responses.CustomerResult {
	result := responses.CustomerResult{MasterCustomerID: update.MasterCustomerID}
	if update.Email != nil {
		result.Email = *update.Email
	}

	if !update.Login {
		result.Remarks = constants.RemarkLoginRequired
		return result
	}

	contact, err := s.contacts.FindByMasterCustomerID(ctx, update.MasterCustomerID)
	if err != nil {
		if errors.Is(err, ErrContactNotFound) {
			result.Remarks = constants.RemarkContactNotFound
		} else {
			result.Remarks = "Customer lookup failed"
		}
		return result
	}
	if result.Email == "" {
		result.Email = contact.Email
	}

	attributes, err := s.buildUpdateAttributes(ctx, update)
	if err != nil {
		result.Remarks = err.Error()
		return result
	}
	if len(attributes) == 0 {
		result.Remarks = "No fields to update"
		return result
	}

	if err := s.crm.Update(ctx, crm.EntitySetContacts, contact.ID, attributes); err != nil {
		s.logger.Error("Contact update failed",
			zap.String("master_customer_id", update.MasterCustomerID),
			zap.Error(err))
		result.Remarks = "Customer update failed"
		return result
	}

	result.Success = true
	return result
}

func (s *CustomerService) buildUpdateAttributes(ctx context.Context, update requests.CustomerUpdate) (dataverse.Entity, error) {
	attributes := dataverse.Entity{}

	if update.FirstName != nil {
		attributes[crm.ColFirstName] = helpers.DecodeIfBase64(*update.FirstName)
	}
	if update.LastName != nil {
		attributes[crm.ColLastName] = helpers.DecodeIfBase64(*update.LastName)
	}
	if update.Email != nil {
		if !helpers.IsEmailValid(*update.Email) {
			return nil, fmt.Errorf("Invalid email address %q", *update.Email)
		}
		attributes[crm.ColEmail] = *update.Email
	}
	if update.MobilePhone != nil {
		if !helpers.IsPhoneValid(*update.MobilePhone) {
			return nil, fmt.Errorf("Invalid phone number %q", *update.MobilePhone)
		}
		attributes[crm.ColMobilePhone] = helpers.NormalizePhone(*update.MobilePhone)
	}
	if update.BirthDate != nil {
		birthDate, err := helpers.ParsePortalDate(*update.BirthDate)
		if err != nil {
			return nil, err
		}
		attributes[crm.ColBirthDate] = birthDate.Format(helpers.PortalDateLayout)
	}
	if update.Gender != nil {
		code, err := s.options.Resolve(ctx, crm.EntityContact, crm.ColGenderCode, *update.Gender)
		if err != nil {
			return nil, fmt.Errorf("unknown Gender value %q", *update.Gender)
		}
		attributes[crm.ColGenderCode] = code
	}
	if update.Salutation != nil {
		code, err := s.options.Resolve(ctx, crm.EntityContact, crm.ColSalutationCode, *update.Salutation)
		if err != nil {
			return nil, fmt.Errorf("unknown Salutation value %q", *update.Salutation)
		}
		attributes[crm.ColSalutationCode] = code
	}
	if update.PreferredLanguage != nil {
		code, err := s.options.Resolve(ctx, crm.EntityContact, crm.ColPreferredLanguage, *update.PreferredLanguage)
		if err != nil {
			return nil, fmt.Errorf("unknown PreferredLanguage value %q", *update.PreferredLanguage)
		}
		attributes[crm.ColPreferredLanguage] = code
	}
	applyConsents(attributes, update.Subscription, update.PICS)

	return attributes, nil
}
