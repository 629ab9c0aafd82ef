package repository

import (
	"context"

	"github.com/sebasr/clinic-service/internal/models"
)

// TreatmentRepository defines the interface for treatment record data access
type TreatmentRepository interface {
	// Create stores a treatment record
	Create(ctx context.Context, record *models.TreatmentRecord) error

	// FindByName returns every record whose trimmed patient name equals name.
	// An empty, non-nil slice means no match.
	FindByName(ctx context.Context, name string) ([]models.TreatmentRecord, error)
}
