package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"gathergrid/commune/internal/common"
	"gathergrid/commune/internal/constants"
	"gathergrid/commune/internal/models/entities"
)

// EventService owns event records and the attendance ledger. Attendance rows
// are created as INVITED (or by a community member marking themselves); the
// status is overwritten freely afterwards, there is no transition order.
type EventService struct {
	events      EventStore
	attendances AttendanceStore
}

func NewEventService(events EventStore, attendances AttendanceStore) *EventService {
	return &EventService{
		events:      events,
		attendances: attendances,
	}
}

func (s *EventService) GetEvent(ctx context.Context, eventID string) (*entities.Event, error) {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, common.NewAuthorizationError("GetEvent", "event not found")
	}
	return event, nil
}

func (s *EventService) SaveEvent(ctx context.Context, event *entities.Event) error {
	return s.events.Insert(ctx, event)
}

func (s *EventService) UpdateEvent(ctx context.Context, event *entities.Event) error {
	return s.events.Update(ctx, event)
}

// CreateAttendance records a community member's own attendance for a
// community event. Conflicts if the user already has a row for the event.
func (s *EventService) CreateAttendance(ctx context.Context, attendance *entities.Attendance) error {
	existing, err := s.attendances.FindByUserAndEvent(ctx, attendance.UserID, attendance.EventID)
	if err != nil {
		return err
	}
	if existing != nil {
		return common.NewConflictError("CreateAttendance", "attendance already exists")
	}
	return s.attendances.Insert(ctx, attendance)
}

// SetAttendance overwrites the status of an existing attendance row. Any
// status can replace any other; only existence is required.
func (s *EventService) SetAttendance(ctx context.Context, userID, eventID string, status constants.AttendanceStatus) error {
	attendance, err := s.attendances.FindByUserAndEvent(ctx, userID, eventID)
	if err != nil {
		return err
	}
	if attendance == nil {
		return common.NewAuthorizationError("SetAttendance", "attendance does not exist")
	}
	return s.attendances.UpdateStatus(ctx, attendance.ID, status, time.Now())
}

// InviteUsers creates one INVITED attendance row per invitee. The whole
// batch fails before any write if any invitee already has a row for the
// event.
func (s *EventService) InviteUsers(ctx context.Context, eventID string, invitees []string) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, invitee := range invitees {
		invitee := invitee
		g.Go(func() error {
			existing, err := s.attendances.FindByUserAndEvent(gctx, invitee, eventID)
			if err != nil {
				return err
			}
			if existing != nil {
				return common.NewConflictError("InviteUsers", "event invite already exists")
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	g, gctx = errgroup.WithContext(ctx)
	for _, invitee := range invitees {
		invitee := invitee
		g.Go(func() error {
			return s.attendances.Insert(gctx, &entities.Attendance{
				ID:          uuid.New().String(),
				EventID:     eventID,
				UserID:      invitee,
				Status:      constants.AttendanceInvited,
				LastUpdated: time.Now(),
			})
		})
	}
	return g.Wait()
}

func (s *EventService) GetAttendances(ctx context.Context, eventID string) ([]entities.Attendance, error) {
	return s.attendances.FindByEvent(ctx, eventID)
}

// ExpectedAttendeeIDs returns the users whose status is ATTENDING or
// HOPEFULLY.
func (s *EventService) ExpectedAttendeeIDs(ctx context.Context, eventID string) ([]string, error) {
	attendances, err := s.attendances.FindByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(attendances))
	for _, attendance := range attendances {
		if attendance.Status == constants.AttendanceAttending || attendance.Status == constants.AttendanceHopefully {
			ids = append(ids, attendance.UserID)
		}
	}
	return ids, nil
}

func (s *EventService) EventsForCommunity(ctx context.Context, communityID string) ([]entities.Event, error) {
	return s.events.FindByCommunity(ctx, communityID)
}

// InviteEventsForUser returns the events the user holds an attendance row
// for, whatever its status.
func (s *EventService) InviteEventsForUser(ctx context.Context, userID string) ([]entities.Event, error) {
	attendances, err := s.attendances.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	events := make([]entities.Event, 0, len(attendances))
	for _, attendance := range attendances {
		event, err := s.events.FindByID(ctx, attendance.EventID)
		if err != nil {
			return nil, err
		}
		if event == nil {
			continue
		}
		events = append(events, *event)
	}
	return events, nil
}
