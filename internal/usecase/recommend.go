package usecase

import (
	"sort"
	"strings"

	"bookingbot-service/internal/domain/entity"
	"bookingbot-service/pkg/logger"
)

// maxShortlist caps how many offers a user is shown at once.
const maxShortlist = 3

// Recommender ranks hotels from the reference snapshot.
type Recommender struct {
	ref    *RefStore
	logger logger.Logger
}

// NewRecommender creates a new recommender over the loaded reference data.
func NewRecommender(ref *RefStore, log logger.Logger) *Recommender {
	return &Recommender{
		ref:    ref,
		logger: log,
	}
}

// RecommendHotels returns up to three offers for a city, best stars
// first, cheaper first within the same stars. A priceCap above zero
// drops hotels priced over it. An empty result is a valid outcome.
func (r *Recommender) RecommendHotels(city string, priceCap int) []entity.Offer {
	hotels := r.ref.HotelsInCity(city)

	candidates := make([]entity.Hotel, 0, len(hotels))
	for _, h := range hotels {
		if priceCap > 0 && h.Price > priceCap {
			continue
		}
		candidates = append(candidates, h)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Stars != candidates[j].Stars {
			return candidates[i].Stars > candidates[j].Stars
		}
		return candidates[i].Price < candidates[j].Price
	})

	if len(candidates) > maxShortlist {
		candidates = candidates[:maxShortlist]
	}

	offers := make([]entity.Offer, 0, len(candidates))
	for _, h := range candidates {
		offers = append(offers, entity.Offer{
			HotelID: h.ID,
			Name:    h.Name,
			City:    h.City,
			Price:   h.Price,
			Stars:   h.Stars,
		})
	}
	return offers
}

// PreviousGoodHotel returns the most recent stay of an employee in the
// city rated at or above minRating, joined to the hotel table. Nil means
// no qualifying stay; the caller falls through to the cold-start path.
func (r *Recommender) PreviousGoodHotel(employeeID int, city string, minRating int) *entity.Offer {
	var best *entity.StayHistory

	for _, stay := range r.ref.HistoryFor(employeeID) {
		if !strings.EqualFold(strings.TrimSpace(stay.City), strings.TrimSpace(city)) {
			continue
		}
		if stay.Rating < minRating {
			continue
		}
		// Ties and zero timestamps resolve to the later table row.
		s := stay
		if best == nil || !s.StayedAt.Before(best.StayedAt) {
			best = &s
		}
	}

	if best == nil {
		return nil
	}

	hotel, ok := r.ref.HotelByID(best.HotelID)
	if !ok {
		r.logger.Warn("Stay history references unknown hotel", "hotelId", best.HotelID, "employeeId", employeeID)
		return nil
	}

	return &entity.Offer{
		HotelID: hotel.ID,
		Name:    hotel.Name,
		City:    hotel.City,
		Price:   hotel.Price,
		Stars:   hotel.Stars,
	}
}
