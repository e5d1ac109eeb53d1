package entity

import "time"

// StayHistory is one prior stay of an employee, used to pick the most
// recent well-rated hotel for a returning guest.
type StayHistory struct {
	EmployeeID int
	HotelID    int
	City       string
	Rating     int
	StayedAt   time.Time
}
