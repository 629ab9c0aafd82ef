package repository

import (
	"context"
	"time"

	"github.com/sebasr/clinic-service/internal/models"
)

// AppointmentRepository defines the interface for appointment data access
type AppointmentRepository interface {
	// Create stores an appointment
	Create(ctx context.Context, appointment *models.Appointment) error

	// ListBetween returns appointments with start <= date < end, earliest first
	ListBetween(ctx context.Context, start, end time.Time) ([]models.Appointment, error)

	// ListAll returns every stored appointment in store order
	ListAll(ctx context.Context) ([]models.Appointment, error)
}
