package interfaces

import (
	"context"

	"github.com/wkcda/crm-gateway/libs/go/types/api/requests"
	"github.com/wkcda/crm-gateway/libs/go/types/api/responses"
	"github.com/wkcda/crm-gateway/libs/go/types/business"
)

//go:generate mockgen -source=services.go -destination=../mocks/services_mock.go -package=mocks

// OptionSetResolver maps option-set labels to their integer values.
// Implementations return dataverse.ErrOptionNotFound (wrapped) for
// unknown labels; 0 is never a fallback.
type OptionSetResolver interface {
	Resolve(ctx context.Context, entityLogicalName, attributeLogicalName, label string) (int, error)
}

// ContactResolver finds or creates CRM contacts.
type ContactResolver interface {
	Find(ctx context.Context, criteria business.ContactMatchCriteria) (*business.Contact, error)
	FindByMasterCustomerID(ctx context.Context, masterCustomerID string) (*business.Contact, error)
	Create(ctx context.Context, profile requests.CustomerProfile) (*business.Contact, error)
}

// CustomerService handles customer create/update batches.
type CustomerService interface {
	CreateCustomers(ctx context.Context, req requests.CreateCustomerRequest) *responses.CustomerListResponse
	UpdateCustomers(ctx context.Context, req requests.UpdateCustomerRequest) *responses.CustomerListResponse
}

// ActivationService handles activation-code validation and redemption.
type ActivationService interface {
	ValidateCode(ctx context.Context, req requests.ActivationCodeValidationRequest) (*responses.ActivationCodeValidationResponse, error)
	Activate(ctx context.Context, req requests.MembershipActivationRequest) (*responses.MembershipActivationResponse, error)
}

// MembershipService handles purchase, upgrade, termination and enquiry.
type MembershipService interface {
	PurchaseBeforePayment(ctx context.Context, req requests.PurchaseBeforePaymentRequest) (*responses.PurchaseBeforePaymentResponse, error)
	PurchaseAfterPayment(ctx context.Context, req requests.PurchaseAfterPaymentRequest) (*responses.PurchaseAfterPaymentResponse, error)
	Upgrade(ctx context.Context, req requests.MembershipUpgradeRequest) (*responses.MembershipUpgradeResponse, error)
	Terminate(ctx context.Context, req requests.MembershipTerminationRequest) (*responses.MembershipTerminationResponse, error)
	Status(ctx context.Context, req requests.MembershipStatusEnquiryRequest) (*responses.MembershipStatusResponse, error)
}

// DonationService records online gift transactions.
type DonationService interface {
	CreateDonations(ctx context.Context, req requests.CreateDonationRequest) *responses.DonationListResponse
}

// EventService records ticketing transactions and attendance.
type EventService interface {
	CreateEventTransactions(ctx context.Context, req requests.CreateEventTransactionRequest) *responses.EventTransactionListResponse
	UpdateAttendance(ctx context.Context, req requests.UpdateAttendanceRequest) *responses.AttendanceListResponse
}

// ReceiptSender delivers donation acknowledgment emails.
type ReceiptSender interface {
	SendDonationReceipt(ctx context.Context, toEmail, donorName, campaignName string, amount float64) error
}
