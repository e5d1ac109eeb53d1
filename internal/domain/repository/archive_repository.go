package repository

import (
	"context"

	"bookingbot-service/internal/domain/entity"
)

// BookingArchiveRepository defines the interface for the flat export of
// completed bookings.
type BookingArchiveRepository interface {
	Append(ctx context.Context, booking *entity.Booking) error
}
