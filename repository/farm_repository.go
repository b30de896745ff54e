package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Rustaman254/waveUnit/database"
	"github.com/Rustaman254/waveUnit/models"
)

const farmColumns = `
	id, name, location, total_hens, daily_production, status,
	description, image_url, created_at, updated_at
`

// FarmRepository implements the FarmRepository interface
type FarmRepository struct {
	q queryable
}

// NewFarmRepository creates a new farm repository
func NewFarmRepository(db *database.DB) *FarmRepository {
	return &FarmRepository{q: db.Pool}
}

// newFarmRepositoryWithTx creates a new farm repository with a transaction
func newFarmRepositoryWithTx(tx queryable) *FarmRepository {
	return &FarmRepository{q: tx}
}

func scanFarm(row pgx.Row) (*models.Farm, error) {
	var farm models.Farm
	err := row.Scan(
		&farm.ID,
		&farm.Name,
		&farm.Location,
		&farm.TotalHens,
		&farm.DailyProduction,
		&farm.Status,
		&farm.Description,
		&farm.ImageURL,
		&farm.CreatedAt,
		&farm.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &farm, nil
}

// Create creates a new farm record
func (r *FarmRepository) Create(ctx context.Context, farm *models.Farm) error {
	if farm.Status == "" {
		farm.Status = models.FarmStatusActive
	}

	query := `
		INSERT INTO farms (name, location, total_hens, daily_production, status, description, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := r.q.QueryRow(ctx, query,
		farm.Name,
		farm.Location,
		farm.TotalHens,
		farm.DailyProduction,
		farm.Status,
		farm.Description,
		farm.ImageURL,
	).Scan(&farm.ID, &farm.CreatedAt, &farm.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create farm %s: %w", farm.Name, err)
	}

	return nil
}

// Update updates an existing farm record
func (r *FarmRepository) Update(ctx context.Context, farm *models.Farm) error {
	query := `
		UPDATE farms
		SET name = $1, location = $2, total_hens = $3, daily_production = $4,
		    status = $5, description = $6, image_url = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING updated_at
	`

	err := r.q.QueryRow(ctx, query,
		farm.Name,
		farm.Location,
		farm.TotalHens,
		farm.DailyProduction,
		farm.Status,
		farm.Description,
		farm.ImageURL,
		farm.ID,
	).Scan(&farm.UpdatedAt)
	if err == pgx.ErrNoRows {
		return fmt.Errorf("farm %s not found", farm.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to update farm %s: %w", farm.ID, err)
	}

	return nil
}

// GetByID retrieves a farm by its ID
func (r *FarmRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Farm, error) {
	query := `SELECT ` + farmColumns + ` FROM farms WHERE id = $1`

	farm, err := scanFarm(r.q.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get farm %s: %w", id, err)
	}

	return farm, nil
}

// GetAll returns all farms
func (r *FarmRepository) GetAll(ctx context.Context) ([]*models.Farm, error) {
	query := `SELECT ` + farmColumns + ` FROM farms ORDER BY created_at DESC`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query farms: %w", err)
	}
	defer rows.Close()

	var farms []*models.Farm
	for rows.Next() {
		farm, err := scanFarm(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan farm: %w", err)
		}
		farms = append(farms, farm)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate farms: %w", err)
	}

	return farms, nil
}
