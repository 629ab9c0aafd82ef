package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sebasr/clinic-service/internal/database"
	"github.com/sebasr/clinic-service/internal/models"
	"github.com/sebasr/clinic-service/internal/monitoring"
)

// PostgresAppointmentRepository implements AppointmentRepository using PostgreSQL
type PostgresAppointmentRepository struct {
	db *database.DB
}

// NewPostgresAppointmentRepository creates a new PostgreSQL appointment repository
func NewPostgresAppointmentRepository(db *database.DB) *PostgresAppointmentRepository {
	return &PostgresAppointmentRepository{db: db}
}

// Create stores an appointment
func (r *PostgresAppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	query := `
		INSERT INTO Appoint (appointID, phonenum, sex, appointmentdate)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.ExecContext(ctx, query,
		appointment.AppointID, appointment.Phonenum, appointment.Sex, appointment.AppointmentDate,
	)
	monitoring.ObserveQuery("appointment.create", err)
	if err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}

	return nil
}

// ListBetween returns appointments in the half-open range [start, end)
func (r *PostgresAppointmentRepository) ListBetween(ctx context.Context, start, end time.Time) ([]models.Appointment, error) {
	query := `
		SELECT appointID, phonenum, sex, appointmentdate
		FROM Appoint
		WHERE appointmentdate >= $1 AND appointmentdate < $2
		ORDER BY appointmentdate ASC
	`

	rows, err := r.db.QueryContext(ctx, query, start, end)
	monitoring.ObserveQuery("appointment.list_between", err)
	if err != nil {
		return nil, fmt.Errorf("failed to query appointments: %w", err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// ListAll returns every appointment
func (r *PostgresAppointmentRepository) ListAll(ctx context.Context) ([]models.Appointment, error) {
	query := `
		SELECT appointID, phonenum, sex, appointmentdate
		FROM Appoint
	`

	rows, err := r.db.QueryContext(ctx, query)
	monitoring.ObserveQuery("appointment.list_all", err)
	if err != nil {
		return nil, fmt.Errorf("failed to query appointments: %w", err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

func scanAppointments(rows *sql.Rows) ([]models.Appointment, error) {
	appointments := make([]models.Appointment, 0)
	for rows.Next() {
		var a models.Appointment
		if err := rows.Scan(&a.AppointID, &a.Phonenum, &a.Sex, &a.AppointmentDate); err != nil {
			return nil, fmt.Errorf("failed to scan appointment: %w", err)
		}
		appointments = append(appointments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating appointments: %w", err)
	}

	return appointments, nil
}
