package constants

// Deployment stages
const (
	ProdEnvironment = "prod"
	DevEnvironment  = "dev"
	TestEnvironment = "test"
	ErrorLevel      = "error"
)

// Common remark strings returned to the portal. These are part of the
// external contract; the portal string-matches some of them.
const (
	RemarkInvalidJSON        = "Invalid JSON"
	RemarkContactNotFound    = "Customer could not be found"
	RemarkCodeNotFound       = "Activation code could not be found"
	RemarkCodeActivated      = "Activation code has already been activated"
	RemarkCodeExpired        = "Activation code has expired"
	RemarkLoginRequired      = "Customer must be logged in"
	RemarkDuplicateCustomer  = "Customer already exists"
	RemarkNoActiveMembership = "No active membership found"
)
