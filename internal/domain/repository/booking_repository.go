package repository

import (
	"context"

	"bookingbot-service/internal/domain/entity"
)

// BookingRepository defines the interface for booking episode storage.
type BookingRepository interface {
	// FindLatest returns the most recent episode for a phone number,
	// or nil when the phone has never been seen.
	FindLatest(ctx context.Context, phone string) (*entity.Booking, error)

	// Create inserts a fresh episode at the name step.
	Create(ctx context.Context, phone string) (*entity.Booking, error)

	// Save persists the mutated episode as a single atomic write.
	Save(ctx context.Context, booking *entity.Booking) error
}
