package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/sebasr/clinic-service/internal/events"
	"github.com/sebasr/clinic-service/internal/models"
	"github.com/sebasr/clinic-service/internal/repository"
	"github.com/sebasr/clinic-service/internal/validation"
)

// TreatmentInput is the treatment record form. Every field is mandatory;
// a zero age or price counts as missing. Age and price may arrive as
// numeric strings.
type TreatmentInput struct {
	Name  string         `json:"name" form:"name" validate:"required"`
	Sex   string         `json:"sex" form:"sex" validate:"required"`
	Age   validation.Int `json:"age" form:"age" validate:"required,gt=0"`
	Treat string         `json:"treat" form:"treat" validate:"required"`
	Med   string         `json:"med" form:"med" validate:"required"`
	Price validation.Int `json:"price" form:"price" validate:"required,gte=0"`
}

// TreatmentService stores and looks up treatment history
type TreatmentService struct {
	treatments repository.TreatmentRepository
	publisher  events.Publisher
	logger     zerolog.Logger
}

// NewTreatmentService creates a treatment service. publisher may be nil.
func NewTreatmentService(treatments repository.TreatmentRepository, publisher events.Publisher, logger zerolog.Logger) *TreatmentService {
	return &TreatmentService{
		treatments: treatments,
		publisher:  publisher,
		logger:     logger,
	}
}

// Create validates and stores one treatment record
func (s *TreatmentService) Create(ctx context.Context, input TreatmentInput) error {
	if err := validation.Struct(input); err != nil {
		return newValidationError(err)
	}

	record := &models.TreatmentRecord{
		Name:  input.Name,
		Sex:   input.Sex,
		Age:   int(input.Age),
		Treat: input.Treat,
		Med:   input.Med,
		Price: int(input.Price),
	}

	if err := s.treatments.Create(ctx, record); err != nil {
		return persistenceError(err)
	}

	if s.publisher != nil {
		runAsync(s.logger, events.TreatmentCreated, func(ctx context.Context) error {
			return s.publisher.Publish(ctx, events.Event{
				Type:    events.TreatmentCreated,
				Key:     validation.NormalizeName(record.Name),
				Payload: record,
			})
		})
	}

	return nil
}

// FindByName returns the records of the patient with this name, ignoring
// surrounding whitespace on both sides. Matching is case sensitive.
func (s *TreatmentService) FindByName(ctx context.Context, name string) ([]models.TreatmentRecord, error) {
	name = validation.NormalizeName(name)
	if name == "" {
		return nil, missingField("name")
	}

	records, err := s.treatments.FindByName(ctx, name)
	if err != nil {
		return nil, persistenceError(err)
	}
	if records == nil {
		records = []models.TreatmentRecord{}
	}

	return records, nil
}
