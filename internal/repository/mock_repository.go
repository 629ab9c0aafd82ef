package repository

import (
	"context"
	"time"

	"github.com/sebasr/clinic-service/internal/models"
)

// MockAccountRepository is a mock implementation of AccountRepository for testing
type MockAccountRepository struct {
	CreateFunc          func(ctx context.Context, account *models.Account) error
	GetByIdentityIDFunc func(ctx context.Context, identityID string) (*models.Account, error)
}

// NewMockAccountRepository creates a new mock account repository
func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{
		CreateFunc: func(_ context.Context, _ *models.Account) error {
			return nil
		},
		GetByIdentityIDFunc: func(_ context.Context, _ string) (*models.Account, error) {
			return nil, ErrAccountNotFound
		},
	}
}

// Create implements AccountRepository.Create
func (m *MockAccountRepository) Create(ctx context.Context, account *models.Account) error {
	return m.CreateFunc(ctx, account)
}

// GetByIdentityID implements AccountRepository.GetByIdentityID
func (m *MockAccountRepository) GetByIdentityID(ctx context.Context, identityID string) (*models.Account, error) {
	return m.GetByIdentityIDFunc(ctx, identityID)
}

// MockTreatmentRepository is a mock implementation of TreatmentRepository for testing
type MockTreatmentRepository struct {
	CreateFunc     func(ctx context.Context, record *models.TreatmentRecord) error
	FindByNameFunc func(ctx context.Context, name string) ([]models.TreatmentRecord, error)
}

// NewMockTreatmentRepository creates a new mock treatment repository
func NewMockTreatmentRepository() *MockTreatmentRepository {
	return &MockTreatmentRepository{
		CreateFunc: func(_ context.Context, _ *models.TreatmentRecord) error {
			return nil
		},
		FindByNameFunc: func(_ context.Context, _ string) ([]models.TreatmentRecord, error) {
			return []models.TreatmentRecord{}, nil
		},
	}
}

// Create implements TreatmentRepository.Create
func (m *MockTreatmentRepository) Create(ctx context.Context, record *models.TreatmentRecord) error {
	return m.CreateFunc(ctx, record)
}

// FindByName implements TreatmentRepository.FindByName
func (m *MockTreatmentRepository) FindByName(ctx context.Context, name string) ([]models.TreatmentRecord, error) {
	return m.FindByNameFunc(ctx, name)
}

// MockAppointmentRepository is a mock implementation of AppointmentRepository for testing
type MockAppointmentRepository struct {
	CreateFunc      func(ctx context.Context, appointment *models.Appointment) error
	ListBetweenFunc func(ctx context.Context, start, end time.Time) ([]models.Appointment, error)
	ListAllFunc     func(ctx context.Context) ([]models.Appointment, error)
}

// NewMockAppointmentRepository creates a new mock appointment repository
func NewMockAppointmentRepository() *MockAppointmentRepository {
	return &MockAppointmentRepository{
		CreateFunc: func(_ context.Context, _ *models.Appointment) error {
			return nil
		},
		ListBetweenFunc: func(_ context.Context, _ time.Time, _ time.Time) ([]models.Appointment, error) {
			return []models.Appointment{}, nil
		},
		ListAllFunc: func(_ context.Context) ([]models.Appointment, error) {
			return []models.Appointment{}, nil
		},
	}
}

// Create implements AppointmentRepository.Create
func (m *MockAppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	return m.CreateFunc(ctx, appointment)
}

// ListBetween implements AppointmentRepository.ListBetween
func (m *MockAppointmentRepository) ListBetween(ctx context.Context, start, end time.Time) ([]models.Appointment, error) {
	return m.ListBetweenFunc(ctx, start, end)
}

// ListAll implements AppointmentRepository.ListAll
func (m *MockAppointmentRepository) ListAll(ctx context.Context) ([]models.Appointment, error) {
	return m.ListAllFunc(ctx)
}
