package repository

import (
	"context"
	"time"

	"bookingbot-service/internal/domain/entity"
	"bookingbot-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormBookingArchiveRepository implements BookingArchiveRepository. Every
// completed booking is appended as one flat row for reporting.
type GormBookingArchiveRepository struct {
	db *gorm.DB
}

// BookingArchive GORM model for database mapping
type BookingArchive struct {
	ID            uint   `gorm:"primaryKey"`
	Phone         string `gorm:"column:phone;index"`
	GuestName     string `gorm:"column:guest_name"`
	City          string `gorm:"column:city"`
	Checkin       string `gorm:"column:checkin"`
	Checkout      string `gorm:"column:checkout"`
	Hotel         string `gorm:"column:hotel"`
	PricePerNight int    `gorm:"column:price_per_night"`
	CreatedAt     time.Time
}

// TableName overrides the default table name
func (BookingArchive) TableName() string {
	return "t_booking_archive"
}

// NewGormBookingArchiveRepository creates the archive repository and
// migrates its table.
func NewGormBookingArchiveRepository(db *gorm.DB) (repository.BookingArchiveRepository, error) {
	if err := db.AutoMigrate(&BookingArchive{}); err != nil {
		return nil, err
	}
	return &GormBookingArchiveRepository{db: db}, nil
}

// Append writes one completed booking.
func (r *GormBookingArchiveRepository) Append(ctx context.Context, booking *entity.Booking) error {
	row := BookingArchive{
		Phone:         booking.Phone,
		GuestName:     booking.Name,
		City:          booking.Location,
		Checkin:       booking.Checkin,
		Checkout:      booking.Checkout,
		Hotel:         booking.SelectedHotel,
		PricePerNight: booking.SelectedPrice,
	}
	return r.db.WithContext(ctx).Create(&row).Error
}
