package repository

import (
	"context"
	"fmt"

	"github.com/sebasr/clinic-service/internal/database"
	"github.com/sebasr/clinic-service/internal/models"
	"github.com/sebasr/clinic-service/internal/monitoring"
)

// PostgresTreatmentRepository implements TreatmentRepository using PostgreSQL
type PostgresTreatmentRepository struct {
	db *database.DB
}

// NewPostgresTreatmentRepository creates a new PostgreSQL treatment repository
func NewPostgresTreatmentRepository(db *database.DB) *PostgresTreatmentRepository {
	return &PostgresTreatmentRepository{db: db}
}

// Create stores a treatment record
func (r *PostgresTreatmentRepository) Create(ctx context.Context, record *models.TreatmentRecord) error {
	query := `
		INSERT INTO Treat (name, sex, age, treat, med, price)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		record.Name, record.Sex, record.Age, record.Treat, record.Med, record.Price,
	)
	monitoring.ObserveQuery("treatment.create", err)
	if err != nil {
		return fmt.Errorf("failed to create treatment record: %w", err)
	}

	return nil
}

// FindByName returns records whose trimmed name equals the trimmed argument,
// ordered bytewise by stored name, then by treatment
func (r *PostgresTreatmentRepository) FindByName(ctx context.Context, name string) ([]models.TreatmentRecord, error) {
	query := `
		SELECT name, sex, age, treat, med, price
		FROM Treat
		WHERE BTRIM(name) = BTRIM($1)
		ORDER BY name COLLATE "C", treat
	`

	rows, err := r.db.QueryContext(ctx, query, name)
	monitoring.ObserveQuery("treatment.find_by_name", err)
	if err != nil {
		return nil, fmt.Errorf("failed to query treatment records: %w", err)
	}
	defer rows.Close()

	records := make([]models.TreatmentRecord, 0)
	for rows.Next() {
		var rec models.TreatmentRecord
		if err := rows.Scan(&rec.Name, &rec.Sex, &rec.Age, &rec.Treat, &rec.Med, &rec.Price); err != nil {
			return nil, fmt.Errorf("failed to scan treatment record: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating treatment records: %w", err)
	}

	return records, nil
}
