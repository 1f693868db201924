package crm

// Entity set names in the Dataverse Web API. Custom tables carry the
// wkcda_ publisher prefix; contact is the standard table.
const (
	EntitySetContacts             = "contacts"
	EntitySetTierHistories        = "wkcda_membershiptierhistories"
	EntitySetMembershipTiers      = "wkcda_membershiptiers"
	EntitySetPaymentTransactions  = "wkcda_paymenttransactions"
	EntitySetActivations          = "wkcda_membershipactivations"
	EntitySetGroups               = "wkcda_membershipgroups"
	EntitySetGroupRelationships   = "wkcda_membershipgrouprelationships"
	EntitySetGiftTransactions     = "wkcda_gifttransactions"
	EntitySetEventTransactions    = "wkcda_eventtransactions"
	EntitySetAttendances          = "wkcda_attendances"
)

// Logical entity names (singular) used for metadata lookups.
const (
	EntityContact            = "contact"
	EntityTierHistory        = "wkcda_membershiptierhistory"
	EntityPaymentTransaction = "wkcda_paymenttransaction"
	EntityActivation         = "wkcda_membershipactivation"
	EntityGroup              = "wkcda_membershipgroup"
	EntityGroupRelationship  = "wkcda_membershipgrouprelationship"
	EntityGiftTransaction    = "wkcda_gifttransaction"
	EntityEventTransaction   = "wkcda_eventtransaction"
	EntityAttendance         = "wkcda_attendance"
)

// Contact columns.
const (
	ColContactID         = "contactid"
	ColFirstName         = "firstname"
	ColLastName          = "lastname"
	ColEmail             = "emailaddress1"
	ColMobilePhone       = "mobilephone"
	ColBirthDate         = "birthdate"
	ColGenderCode        = "wkcda_gendercode"
	ColSalutationCode    = "wkcda_salutationcode"
	ColMasterCustomerID  = "wkcda_mastercustomerid"
	ColPreferredLanguage = "wkcda_preferredlanguagecode"
	ColEmailOptIn        = "wkcda_emailoptin"
	ColSMSOptIn          = "wkcda_smsoptin"
	ColPostalOptIn       = "wkcda_postaloptin"
	ColPICSConsent       = "wkcda_picsconsent"
)

// Membership tier columns.
const (
	ColMembershipTierID   = "wkcda_membershiptierid"
	ColMembershipTierName = "wkcda_name"
)

// Membership tier history columns.
const (
	ColTierHistoryID      = "wkcda_membershiptierhistoryid"
	ColTierHistoryContact = "wkcda_contactid"
	ColTierHistoryTier    = "wkcda_membershiptier"
	ColTierName           = "wkcda_tiername"
	ColStartDate          = "wkcda_startdate"
	ColEndDate            = "wkcda_enddate"
	ColTierStatusCode     = "wkcda_statuscode"
	ColConsumptionPct     = "wkcda_consumptionpercentage"
)

// Payment transaction columns.
const (
	ColPaymentID          = "wkcda_paymenttransactionid"
	ColPaymentContact     = "wkcda_contactid"
	ColPaymentTierHistory = "wkcda_membershiptierhistoryid"
	ColPaymentAmount      = "wkcda_amount"
	ColPaymentDiscount    = "wkcda_discountamount"
	ColPaymentTypeCode    = "wkcda_paymenttypecode"
	ColSalesChannelCode   = "wkcda_saleschannelcode"
	ColPaymentDate        = "wkcda_paymentdate"
	ColPaymentKindCode    = "wkcda_transactionkindcode"
)

// Membership activation columns.
const (
	ColActivationID     = "wkcda_membershipactivationid"
	ColActivationCode   = "wkcda_activationcode"
	ColActivationStatus = "wkcda_statuscode"
	ColIssueDate        = "wkcda_issuedate"
	ColActivationTier   = "wkcda_membershiptier"
	ColActivationGroup  = "wkcda_membershipgroup"
	ColActivatedBy      = "wkcda_activatedby"
	ColActivatedOn      = "wkcda_activatedon"
)

// Membership group and relationship columns.
const (
	ColGroupID            = "wkcda_membershipgroupid"
	ColGroupTypeCode      = "wkcda_grouptypecode"
	ColGroupName          = "wkcda_groupname"
	ColRelationshipID     = "wkcda_membershipgrouprelationshipid"
	ColRelationshipGroup  = "wkcda_membershipgroup"
	ColRelationshipMember = "wkcda_contactid"
	ColMemberRoleCode     = "wkcda_memberrolecode"
	ColRelationshipStatus = "wkcda_statuscode"
	ColRelationshipEnd    = "wkcda_enddate"
)

// Gift transaction columns.
const (
	ColGiftID           = "wkcda_gifttransactionid"
	ColGiftContact      = "wkcda_contactid"
	ColGiftAmount       = "wkcda_amount"
	ColGiftCampaign     = "wkcda_campaignname"
	ColGiftDate         = "wkcda_giftdate"
	ColGiftChannelCode  = "wkcda_saleschannelcode"
	ColGiftReceiptEmail = "wkcda_receiptemail"
)

// Event transaction and attendance columns.
const (
	ColEventID         = "wkcda_eventtransactionid"
	ColEventContact    = "wkcda_contactid"
	ColEventName       = "wkcda_eventname"
	ColEventCode       = "wkcda_eventcode"
	ColEventDate       = "wkcda_eventdate"
	ColTicketQuantity  = "wkcda_ticketquantity"
	ColAttendanceID    = "wkcda_attendanceid"
	ColAttendanceEvent = "wkcda_eventtransactionid"
	ColAttended        = "wkcda_attended"
	ColAttendedOn      = "wkcda_attendedon"
)
