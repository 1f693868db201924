package business

import "github.com/google/uuid"

// ContactMatchStrategy selects how a contact lookup matches records.
type ContactMatchStrategy int

const (
	// MatchEmail matches on exact email only.
	MatchEmail ContactMatchStrategy = iota
	// MatchEmailOrPhone matches on email or normalized mobile phone.
	MatchEmailOrPhone
)

// ContactMatchCriteria describes a contact lookup. First match wins when
// several records qualify.
type ContactMatchCriteria struct {
	Strategy ContactMatchStrategy
	Email    string
	Phone    string
}

// Contact is the gateway's view of a CRM contact record.
type Contact struct {
	ID               uuid.UUID
	MasterCustomerID string
	Email            string
	FirstName        string
	LastName         string
	MobilePhone      string
}
