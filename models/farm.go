package models

import (
	"time"

	"github.com/google/uuid"
)

// FarmStatus represents whether a farm is in operation
type FarmStatus string

const (
	FarmStatusActive   FarmStatus = "active"
	FarmStatusInactive FarmStatus = "inactive"
)

// Farm represents a physical poultry farm backing the platform
type Farm struct {
	ID              uuid.UUID  `db:"id"`
	Name            string     `db:"name"`
	Location        string     `db:"location"`
	TotalHens       int        `db:"total_hens"`
	DailyProduction int        `db:"daily_production"`
	Status          FarmStatus `db:"status"`
	Description     *string    `db:"description"`
	ImageURL        *string    `db:"image_url"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
}
