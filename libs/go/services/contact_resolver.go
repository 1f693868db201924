package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wkcda/crm-gateway/libs/go/client/dataverse"
	"github.com/wkcda/crm-gateway/libs/go/crm"
	"github.com/wkcda/crm-gateway/libs/go/helpers"
	"github.com/wkcda/crm-gateway/libs/go/logger"
	"github.com/wkcda/crm-gateway/libs/go/types/api/requests"
	"github.com/wkcda/crm-gateway/libs/go/types/business"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrContactNotFound is returned when no contact matches the criteria.
var ErrContactNotFound = errors.New("contact not found")

var contactSelectColumns = []string{
	crm.ColContactID,
	crm.ColMasterCustomerID,
	crm.ColEmail,
	crm.ColFirstName,
	crm.ColLastName,
	crm.ColMobilePhone,
}

// ContactResolver is the single place contact dedup lookups happen.
// Endpoints pick a match strategy instead of rolling their own filters.
type ContactResolver struct {
	crm        dataverse.API
	optionSets *OptionSetService
	logger     *zap.Logger
	now        func() time.Time
}

// NewContactResolver creates a contact resolver backed by the CRM.
func NewContactResolver(crmClient dataverse.API, optionSets *OptionSetService) *ContactResolver {
	return &ContactResolver{
		crm:        crmClient,
		optionSets: optionSets,
		logger:     logger.Log,
		now:        time.Now,
	}
}

func entityToContact(e dataverse.Entity) *business.Contact {
	id, _ := uuid.Parse(e.GetString(crm.ColContactID))
	return &business.Contact{
		ID:               id,
		MasterCustomerID: e.GetString(crm.ColMasterCustomerID),
		Email:            e.GetString(crm.ColEmail),
		FirstName:        e.GetString(crm.ColFirstName),
		LastName:         e.GetString(crm.ColLastName),
		MobilePhone:      e.GetString(crm.ColMobilePhone),
	}
}

// Find looks up a contact with the given criteria. First match wins;
// concurrent duplicate creation is possible because the CRM offers no
// gateway-side locking.
func (r *ContactResolver) Find(ctx context.Context, criteria business.ContactMatchCriteria) (*business.Contact, error) {
	var filter string
	switch criteria.Strategy {
	case business.MatchEmailOrPhone:
		clauses := []string{dataverse.FilterEq(crm.ColEmail, criteria.Email)}
		if phone := helpers.NormalizePhone(criteria.Phone); phone != "" {
			clauses = append(clauses, dataverse.FilterEq(crm.ColMobilePhone, phone))
		}
		filter = dataverse.FilterOr(clauses...)
	default:
		filter = dataverse.FilterEq(crm.ColEmail, criteria.Email)
	}

	record, err := r.crm.QueryOne(ctx, crm.EntitySetContacts, dataverse.QueryOptions{
		Select: contactSelectColumns,
		Filter: filter,
	})
	if err != nil {
		if errors.Is(err, dataverse.ErrNotFound) {
			return nil, ErrContactNotFound
		}
		r.logger.Error("Contact lookup failed",
			zap.String("email", criteria.Email),
			zap.Error(err))
		return nil, fmt.Errorf("contact lookup: %w", err)
	}

	return entityToContact(record), nil
}

// FindByMasterCustomerID looks up a contact by its generated identifier.
func (r *ContactResolver) FindByMasterCustomerID(ctx context.Context, masterCustomerID string) (*business.Contact, error) {
	record, err := r.crm.QueryOne(ctx, crm.EntitySetContacts, dataverse.QueryOptions{
		Select: contactSelectColumns,
		Filter: dataverse.FilterEq(crm.ColMasterCustomerID, masterCustomerID),
	})
	if err != nil {
		if errors.Is(err, dataverse.ErrNotFound) {
			return nil, ErrContactNotFound
		}
		r.logger.Error("Contact lookup by master customer ID failed",
			zap.String("master_customer_id", masterCustomerID),
			zap.Error(err))
		return nil, fmt.Errorf("contact lookup: %w", err)
	}

	return entityToContact(record), nil
}

// Create inserts a new contact from a portal profile, generating its
// MasterCustomerID and resolving option-set labels.
func (r *ContactResolver) Create(ctx context.Context, profile requests.CustomerProfile) (*business.Contact, error) {
	masterCustomerID := helpers.GenerateMasterCustomerID(r.now())

	attributes := dataverse.Entity{
		crm.ColFirstName:        helpers.DecodeIfBase64(profile.FirstName),
		crm.ColLastName:         helpers.DecodeIfBase64(profile.LastName),
		crm.ColEmail:            profile.Email,
		crm.ColMasterCustomerID: masterCustomerID,
	}
	if profile.MobilePhone != "" {
		attributes[crm.ColMobilePhone] = helpers.NormalizePhone(profile.MobilePhone)
	}
	if profile.BirthDate != "" {
		birthDate, err := helpers.ParsePortalDate(profile.BirthDate)
		if err != nil {
			return nil, err
		}
		attributes[crm.ColBirthDate] = birthDate.Format(helpers.PortalDateLayout)
	}
	if profile.Gender != "" {
		code, err := r.optionSets.Resolve(ctx, crm.EntityContact, crm.ColGenderCode, profile.Gender)
		if err != nil {
			return nil, fmt.Errorf("unknown Gender value %q", profile.Gender)
		}
		attributes[crm.ColGenderCode] = code
	}
	if profile.Salutation != "" {
		code, err := r.optionSets.Resolve(ctx, crm.EntityContact, crm.ColSalutationCode, profile.Salutation)
		if err != nil {
			return nil, fmt.Errorf("unknown Salutation value %q", profile.Salutation)
		}
		attributes[crm.ColSalutationCode] = code
	}
	if profile.PreferredLanguage != "" {
		code, err := r.optionSets.Resolve(ctx, crm.EntityContact, crm.ColPreferredLanguage, profile.PreferredLanguage)
		if err != nil {
			return nil, fmt.Errorf("unknown PreferredLanguage value %q", profile.PreferredLanguage)
		}
		attributes[crm.ColPreferredLanguage] = code
	}
	applyConsents(attributes, profile.Subscription, profile.PICS)

	id, err := r.crm.Create(ctx, crm.EntitySetContacts, attributes)
	if err != nil {
		r.logger.Error("Contact creation failed",
			zap.String("email", profile.Email),
			zap.Error(err))
		return nil, fmt.Errorf("contact create: %w", err)
	}

	r.logger.Info("Contact created",
		zap.String("contact_id", id.String()),
		zap.String("master_customer_id", masterCustomerID))

	return &business.Contact{
		ID:               id,
		MasterCustomerID: masterCustomerID,
		Email:            profile.Email,
		FirstName:        profile.FirstName,
		LastName:         profile.LastName,
		MobilePhone:      helpers.NormalizePhone(profile.MobilePhone),
	}, nil
}

// applyConsents writes the marketing and PICS consent columns when the
// sub-objects are present.
func applyConsents(attributes dataverse.Entity, subscription *requests.SubscriptionPreferences, pics *requests.PICSConsent) {
	if subscription != nil {
		if subscription.EmailOptIn != nil {
			attributes[crm.ColEmailOptIn] = *subscription.EmailOptIn
		}
		if subscription.SMSOptIn != nil {
			attributes[crm.ColSMSOptIn] = *subscription.SMSOptIn
		}
		if subscription.PostalOptIn != nil {
			attributes[crm.ColPostalOptIn] = *subscription.PostalOptIn
		}
	}
	if pics != nil {
		attributes[crm.ColPICSConsent] = pics.Consented
	}
}
