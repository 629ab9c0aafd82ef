package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/sebasr/clinic-service/internal/cache"
	"github.com/sebasr/clinic-service/internal/events"
	"github.com/sebasr/clinic-service/internal/models"
	"github.com/sebasr/clinic-service/internal/repository"
	"github.com/sebasr/clinic-service/internal/validation"
)

// AppointmentInput is the appointment form. The date is parsed by validation.ParseDate.
type AppointmentInput struct {
	AppointID       string `json:"appointID" form:"appointID" validate:"required"`
	Phonenum        string `json:"phonenum" form:"phonenum" validate:"required"`
	Sex             string `json:"sex" form:"sex" validate:"required"`
	AppointmentDate string `json:"appointmentdate" form:"appointmentdate" validate:"required"`
}

// AppointmentService schedules and lists appointments
type AppointmentService struct {
	appointments repository.AppointmentRepository
	cache        cache.AppointmentCache
	publisher    events.Publisher
	loc          *time.Location
	now          func() time.Time
	logger       zerolog.Logger
}

// NewAppointmentService creates an appointment service. loc decides which
// calendar day is "today"; a nil cache or publisher disables that feature.
func NewAppointmentService(
	appointments repository.AppointmentRepository,
	appointmentCache cache.AppointmentCache,
	publisher events.Publisher,
	loc *time.Location,
	logger zerolog.Logger,
) *AppointmentService {
	if appointmentCache == nil {
		appointmentCache = cache.Noop{}
	}
	if loc == nil {
		loc = time.Local
	}
	return &AppointmentService{
		appointments: appointments,
		cache:        appointmentCache,
		publisher:    publisher,
		loc:          loc,
		now:          time.Now,
		logger:       logger,
	}
}

// Create validates the form, parses the date and stores the appointment.
// Appointment ids are not checked for uniqueness.
func (s *AppointmentService) Create(ctx context.Context, input AppointmentInput) error {
	if err := validation.Struct(input); err != nil {
		return newValidationError(err)
	}

	when, err := validation.ParseDate(input.AppointmentDate, s.loc)
	if err != nil {
		return &ValidationError{
			Fields:  []string{"appointmentdate"},
			Message: "appointmentdate is not a valid date",
			Err:     err,
		}
	}

	appointment := &models.Appointment{
		AppointID:       input.AppointID,
		Phonenum:        input.Phonenum,
		Sex:             input.Sex,
		AppointmentDate: when,
	}

	if err := s.appointments.Create(ctx, appointment); err != nil {
		return persistenceError(err)
	}

	if err := s.cache.InvalidateAppointments(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("failed to invalidate appointment cache")
	}

	if s.publisher != nil {
		runAsync(s.logger, events.AppointmentCreated, func(ctx context.Context) error {
			return s.publisher.Publish(ctx, events.Event{
				Type:    events.AppointmentCreated,
				Key:     appointment.AppointID,
				Payload: appointment,
			})
		})
	}

	return nil
}

// ListToday returns the appointments on the current calendar day in the
// clinic's location, earliest first.
func (s *AppointmentService) ListToday(ctx context.Context) ([]models.Appointment, error) {
	now := s.now().In(s.loc)
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)
	end := start.AddDate(0, 0, 1)

	return s.cached(ctx, cache.DayKey(start), func() ([]models.Appointment, error) {
		return s.appointments.ListBetween(ctx, start, end)
	})
}

// ListAll returns every appointment in store order
func (s *AppointmentService) ListAll(ctx context.Context) ([]models.Appointment, error) {
	return s.cached(ctx, cache.AllKey(), func() ([]models.Appointment, error) {
		return s.appointments.ListAll(ctx)
	})
}

// cached serves key from the cache, loading and storing it on a miss.
// The generation is read before the load, so a Create that lands while the
// store is being read leaves this listing under a key that is no longer served.
// Cache failures fall through to the store.
func (s *AppointmentService) cached(ctx context.Context, key string, load func() ([]models.Appointment, error)) ([]models.Appointment, error) {
	gen, err := s.cache.Generation(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("appointment cache generation unavailable")
		return s.load(load)
	}
	key = cache.VersionedKey(key, gen)

	hit, err := s.cache.GetAppointments(ctx, key)
	if err == nil {
		return hit, nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		s.logger.Warn().Err(err).Str("key", key).Msg("appointment cache read failed")
	}

	appointments, err := s.load(load)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetAppointments(ctx, key, appointments); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("appointment cache write failed")
	}

	return appointments, nil
}

func (s *AppointmentService) load(load func() ([]models.Appointment, error)) ([]models.Appointment, error) {
	appointments, err := load()
	if err != nil {
		return nil, persistenceError(err)
	}
	if appointments == nil {
		appointments = []models.Appointment{}
	}
	return appointments, nil
}
