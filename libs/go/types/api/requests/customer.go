package requests

// SubscriptionPreferences carries the marketing consent flags for a
// customer. Pointers distinguish "not provided" from explicit false.
type SubscriptionPreferences struct {
	EmailOptIn  *bool `json:"EmailOptIn,omitempty"`
	SMSOptIn    *bool `json:"SMSOptIn,omitempty"`
	PostalOptIn *bool `json:"PostalOptIn,omitempty"`
}

// PICSConsent carries the personal-information collection statement consent.
type PICSConsent struct {
	Consented   bool   `json:"Consented"`
	ConsentDate string `json:"ConsentDate,omitempty"`
}

// CustomerProfile is one customer item in a create request.
type CustomerProfile struct {
	FirstName         string                   `json:"FirstName" binding:"required"`
	LastName          string                   `json:"LastName" binding:"required"`
	Email             string                   `json:"Email" binding:"required"`
	MobilePhone       string                   `json:"MobilePhone,omitempty"`
	BirthDate         string                   `json:"BirthDate,omitempty"`
	Gender            string                   `json:"Gender,omitempty"`
	Salutation        string                   `json:"Salutation,omitempty"`
	PreferredLanguage string                   `json:"PreferredLanguage,omitempty"`
	Login             bool                     `json:"Login"`
	Subscription      *SubscriptionPreferences `json:"Subscription,omitempty"`
	PICS              *PICSConsent             `json:"PICS,omitempty"`
}

// CreateCustomerRequest is the CreateCustomerWS payload.
type CreateCustomerRequest struct {
	CustomerList []CustomerProfile `json:"CustomerList" binding:"required,min=1,dive"`
}

// CustomerUpdate is one customer item in an update request, addressed by
// MasterCustomerID. Pointer fields are only written when provided.
type CustomerUpdate struct {
	MasterCustomerID  string                   `json:"MasterCustomerID" binding:"required"`
	FirstName         *string                  `json:"FirstName,omitempty"`
	LastName          *string                  `json:"LastName,omitempty"`
	Email             *string                  `json:"Email,omitempty"`
	MobilePhone       *string                  `json:"MobilePhone,omitempty"`
	BirthDate         *string                  `json:"BirthDate,omitempty"`
	Gender            *string                  `json:"Gender,omitempty"`
	Salutation        *string                  `json:"Salutation,omitempty"`
	PreferredLanguage *string                  `json:"PreferredLanguage,omitempty"`
	Login             bool                     `json:"Login"`
	Subscription      *SubscriptionPreferences `json:"Subscription,omitempty"`
	PICS              *PICSConsent             `json:"PICS,omitempty"`
}

// UpdateCustomerRequest is the UpdateCustomerWS payload.
type UpdateCustomerRequest struct {
	CustomerList []CustomerUpdate `json:"CustomerList" binding:"required,min=1,dive"`
}
