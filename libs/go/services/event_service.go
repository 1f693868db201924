package services

import (
	"context"
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
	"go.uber.org/zap"
)

// EventService records ticketing transactions and attendance marks.
// Writes are sequential so each item gets its own transaction id and
// failure attribution.
type EventService struct {
	crm      dataverse.API
	contacts interfaces.ContactResolver
	options  *OptionSetService
	logger   *zap.Logger
	now      func() time.Time
}

// NewEventService creates an event service.
func NewEventService(crmClient dataverse.API, contacts interfaces.ContactResolver, options *OptionSetService) *EventService {
	return &EventService{
		crm:      crmClient,
		contacts: contacts,
		options:  options,
		logger:   logger.Log,
		now:      time.Now,
	}
}

// CreateEventTransactions processes a CreateEventTransactionWS batch.
func (s *EventService) CreateEventTransactions(ctx context.Context, req requests.CreateEventTransactionRequest) *responses.EventTransactionListResponse {
	resp := &responses.EventTransactionListResponse{
		Results: make([]responses.EventTransactionResult, len(req.EventList)),
	}
	for i, item := range req.EventList {
		resp.Results[i] = s.createOneEvent(ctx, item)
	}
	return resp
}

func (s *EventService) createOneEvent(ctx context.Context, item requests.EventTransactionItem) responses.EventTransactionResult {
	result := responses.EventTransactionResult{MasterCustomerID: item.MasterCustomerID}

	contact, err := s.contacts.FindByMasterCustomerID(ctx, item.MasterCustomerID)
	if err != nil {
		if errors.Is(err, ErrContactNotFound) {
			result.Remarks = constants.RemarkContactNotFound
		} else {
			result.Remarks = "Customer lookup failed"
		}
		return result
	}

	entity := dataverse.Entity{
		crm.ColEventName:              item.EventName,
		crm.ColEventCode:              item.EventCode,
		crm.ColTicketQuantity:         item.TicketQuantity,
		bindProp(crm.ColEventContact): dataverse.Bind(crm.EntitySetContacts, contact.ID),
	}
	if item.EventDate != "" {
		eventDate, err := helpers.ParsePortalDate(item.EventDate)
		if err != nil {
			result.Remarks = fmt.Sprintf("Invalid EventDate %q", item.EventDate)
			return result
		}
		entity[crm.ColEventDate] = eventDate.Format(helpers.PortalDateLayout)
	}
	if item.SalesChannel != "" {
		channelCode, err := s.options.Resolve(ctx, crm.EntityEventTransaction, crm.ColSalesChannelCode, item.SalesChannel)
		if err != nil {
			result.Remarks = fmt.Sprintf("unknown SalesChannel value %q", item.SalesChannel)
			return result
		}
		entity[crm.ColSalesChannelCode] = channelCode
	}

	id, err := s.crm.Create(ctx, crm.EntitySetEventTransactions, entity)
	if err != nil {
		s.logger.Error("Event transaction creation failed",
			zap.String("master_customer_id", item.MasterCustomerID),
			zap.String("event_code", item.EventCode),
			zap.Error(err))
		result.Remarks = "Event transaction could not be recorded"
		return result
	}

	result.Success = true
	result.EventTransactionID = id.String()
	return result
}

// UpdateAttendance processes an UpdateCustomerEventAttendanceWS batch.
// Attendance is an upsert keyed on the event transaction: an existing
// mark is patched, otherwise a new one is created.
func (s *EventService) UpdateAttendance(ctx context.Context, req requests.UpdateAttendanceRequest) *responses.AttendanceListResponse {
	resp := &responses.AttendanceListResponse{
		Results: make([]responses.AttendanceResult, len(req.AttendanceList)),
	}
	for i, item := range req.AttendanceList {
		resp.Results[i] = s.updateOneAttendance(ctx, item)
	}
	return resp
}

func (s *EventService) updateOneAttendance(ctx context.Context, item requests.AttendanceItem) responses.AttendanceResult {
	result := responses.AttendanceResult{
		MasterCustomerID:   item.MasterCustomerID,
		EventTransactionID: item.EventTransactionID,
	}

	contact, err := s.contacts.FindByMasterCustomerID(ctx, item.MasterCustomerID)
	if err != nil {
		if errors.Is(err, ErrContactNotFound) {
			result.Remarks = constants.RemarkContactNotFound
		} else {
			result.Remarks = "Customer lookup failed"
		}
		return result
	}

	eventID, err := uuid.Parse(item.EventTransactionID)
	if err != nil {
		result.Remarks = fmt.Sprintf("Invalid EventTransactionID %q", item.EventTransactionID)
		return result
	}

	// The transaction must exist and belong to this customer.
	if _, err := s.crm.QueryOne(ctx, crm.EntitySetEventTransactions, dataverse.QueryOptions{
		Select: []string{crm.ColEventID},
		Filter: dataverse.FilterAnd(
			fmt.Sprintf("%s eq %s", crm.ColEventID, eventID),
			dataverse.FilterEqGUID(crm.ColEventContact, contact.ID),
		),
	}); err != nil {
		if errors.Is(err, dataverse.ErrNotFound) {
			result.Remarks = "Event transaction could not be found"
		} else {
			result.Remarks = "Event transaction lookup failed"
		}
		return result
	}

	attendedOn := s.now()
	if item.AttendedOn != "" {
		parsed, err := helpers.ParsePortalDate(item.AttendedOn)
		if err != nil {
			result.Remarks = fmt.Sprintf("Invalid AttendedOn %q", item.AttendedOn)
			return result
		}
		attendedOn = parsed
	}

	attributes := dataverse.Entity{
		crm.ColAttended: item.Attended,
	}
	if item.Attended {
		attributes[crm.ColAttendedOn] = attendedOn.Format(time.RFC3339)
	}

	existing, err := s.crm.QueryOne(ctx, crm.EntitySetAttendances, dataverse.QueryOptions{
		Select: []string{crm.ColAttendanceID},
		Filter: dataverse.FilterEqGUID(crm.ColAttendanceEvent, eventID),
	})
	switch {
	case err == nil:
		attendanceID, parseErr := uuid.Parse(existing.GetString(crm.ColAttendanceID))
		if parseErr != nil {
			result.Remarks = "Attendance record is malformed"
			return result
		}
		if err := s.crm.Update(ctx, crm.EntitySetAttendances, attendanceID, attributes); err != nil {
			s.logger.Error("Attendance update failed",
				zap.String("event_transaction_id", item.EventTransactionID),
				zap.Error(err))
			result.Remarks = "Attendance could not be updated"
			return result
		}
	case errors.Is(err, dataverse.ErrNotFound):
		attributes[bindProp(crm.ColAttendanceEvent)] = dataverse.Bind(crm.EntitySetEventTransactions, eventID)
		if _, err := s.crm.Create(ctx, crm.EntitySetAttendances, attributes); err != nil {
			s.logger.Error("Attendance creation failed",
				zap.String("event_transaction_id", item.EventTransactionID),
				zap.Error(err))
			result.Remarks = "Attendance could not be recorded"
			return result
		}
	default:
		result.Remarks = "Attendance lookup failed"
		return result
	}

	result.Success = true
	return result
}
