package repository

import (
	"context"

	"bookingbot-service/internal/domain/entity"
)

// EmployeeRepository defines the interface for employee reference data.
type EmployeeRepository interface {
	ListAll(ctx context.Context) ([]entity.Employee, error)
}

// HotelRepository defines the interface for hotel reference data.
type HotelRepository interface {
	ListAll(ctx context.Context) ([]entity.Hotel, error)
}

// StayHistoryRepository defines the interface for prior-stay reference data.
type StayHistoryRepository interface {
	ListAll(ctx context.Context) ([]entity.StayHistory, error)
}
