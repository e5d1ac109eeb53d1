package entity

import (
	"time"
)

// Step identifies which question is currently pending for a phone number.
// The numeric values are persisted, so they must stay stable.
type Step int

const (
	StepName          Step = 1  // awaiting guest name
	StepCity          Step = 2  // awaiting destination city
	StepCheckinChoice Step = 3  // awaiting check-in menu choice
	StepCheckinDate   Step = 31 // awaiting manual check-in date
	StepRecommend     Step = 4  // transient, recommendation dispatch
	StepPrevHotel     Step = 41 // awaiting reuse-previous-hotel answer
	StepPickHotel     Step = 45 // awaiting shortlist selection
	StepCheckout      Step = 5  // awaiting check-out date
	StepDone          Step = 6  // booking completed
)

// Terminal reports whether the step ends the episode.
func (s Step) Terminal() bool {
	return s == StepDone
}

func (s Step) String() string {
	switch s {
	case StepName:
		return "name"
	case StepCity:
		return "city"
	case StepCheckinChoice:
		return "checkin_choice"
	case StepCheckinDate:
		return "checkin_date"
	case StepRecommend:
		return "recommend"
	case StepPrevHotel:
		return "prev_hotel"
	case StepPickHotel:
		return "pick_hotel"
	case StepCheckout:
		return "checkout"
	case StepDone:
		return "done"
	}
	return "unknown"
}

// Offer is one hotel option shown to the user. Offers are captured on the
// booking at display time so a later numeric reply resolves against what
// the user actually saw, even if the reference data changes afterwards.
type Offer struct {
	HotelID int    `bson:"hotelId" json:"hotelId"`
	Name    string `bson:"name" json:"name"`
	City    string `bson:"city" json:"city"`
	Price   int    `bson:"price" json:"price"`
	Stars   int    `bson:"stars" json:"stars"`
}

// Booking is one conversation episode for a phone number. A restart
// creates a fresh episode; older rows stay behind as history.
type Booking struct {
	ID              string    `bson:"_id,omitempty"`
	Phone           string    `bson:"phone"`
	Name            string    `bson:"name,omitempty"`
	Location        string    `bson:"location,omitempty"`
	Checkin         string    `bson:"checkin,omitempty"`  // YYYY-MM-DD
	Checkout        string    `bson:"checkout,omitempty"` // YYYY-MM-DD
	Step            Step      `bson:"step"`
	SelectedHotel   string    `bson:"selectedHotel,omitempty"`
	SelectedPrice   int       `bson:"selectedPrice,omitempty"`
	Recommendations []Offer   `bson:"recommendations,omitempty"`
	CreatedAt       time.Time `bson:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt"`
}

// Active reports whether the episode still has a pending question.
func (b *Booking) Active() bool {
	return !b.Step.Terminal()
}
