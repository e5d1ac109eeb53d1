package usecase

import (
	"context"
	"testing"

	"bookingbot-service/internal/domain/entity"
	"bookingbot-service/pkg/logger"
)

func testRecommender(t *testing.T) *Recommender {
	t.Helper()
	return NewRecommender(testRefStore(t), logger.NewNop())
}

func TestRecommendHotelsOrdersByStarsThenPrice(t *testing.T) {
	r := testRecommender(t)

	offers := r.RecommendHotels("Paris", 0)
	want := []string{"Hotel Colette", "Hotel Belle", "Hotel Aurore"}
	if len(offers) != len(want) {
		t.Fatalf("got %d offers, want %d", len(offers), len(want))
	}
	for i, name := range want {
		if offers[i].Name != name {
			t.Fatalf("offers[%d] = %q, want %q", i, offers[i].Name, name)
		}
	}
}

func TestRecommendHotelsMatchesCityCaseInsensitively(t *testing.T) {
	r := testRecommender(t)

	for _, city := range []string{"paris", "PARIS", " Paris "} {
		if got := r.RecommendHotels(city, 0); len(got) != 3 {
			t.Fatalf("city %q: got %d offers, want 3", city, len(got))
		}
	}
}

func TestRecommendHotelsAppliesPriceCap(t *testing.T) {
	r := testRecommender(t)

	offers := r.RecommendHotels("Paris", 160)
	if len(offers) != 2 {
		t.Fatalf("got %d offers, want 2", len(offers))
	}
	if offers[0].Name != "Hotel Colette" || offers[1].Name != "Hotel Aurore" {
		t.Fatalf("capped offers = %+v", offers)
	}
}

func TestRecommendHotelsCapsListAtThree(t *testing.T) {
	log := logger.NewNop()
	hotels := make([]entity.Hotel, 0, 5)
	for i := 1; i <= 5; i++ {
		hotels = append(hotels, entity.Hotel{ID: i, Name: "H", City: "Oslo", Price: 100 * i, Stars: i})
	}
	store, err := LoadRefStore(context.Background(),
		fakeEmployees{}, fakeHotels{list: hotels}, fakeHistory{}, log)
	if err != nil {
		t.Fatalf("LoadRefStore: %v", err)
	}

	offers := NewRecommender(store, log).RecommendHotels("Oslo", 0)
	if len(offers) != 3 {
		t.Fatalf("got %d offers, want 3", len(offers))
	}
	if offers[0].Stars != 5 || offers[2].Stars != 3 {
		t.Fatalf("offers not ranked: %+v", offers)
	}
}

func TestRecommendHotelsEmptyCityIsValid(t *testing.T) {
	r := testRecommender(t)

	if got := r.RecommendHotels("Atlantis", 0); len(got) != 0 {
		t.Fatalf("got %d offers for unknown city, want 0", len(got))
	}
}

func TestPreviousGoodHotelPicksMostRecentQualifyingStay(t *testing.T) {
	r := testRecommender(t)

	// Alice's most recent Paris stay (Belle) is rated 2 and skipped;
	// the most recent stay at or above the threshold is Colette.
	offer := r.PreviousGoodHotel(1, "paris", 4)
	if offer == nil || offer.Name != "Hotel Colette" {
		t.Fatalf("offer = %+v, want Hotel Colette", offer)
	}
}

func TestPreviousGoodHotelRespectsMinRating(t *testing.T) {
	r := testRecommender(t)

	if offer := r.PreviousGoodHotel(2, "Paris", 4); offer != nil {
		t.Fatalf("offer = %+v, want nil for a rating below threshold", offer)
	}
	// Lowering the bar admits Bob's 3-star-rated stay.
	if offer := r.PreviousGoodHotel(2, "Paris", 3); offer == nil || offer.Name != "Hotel Aurore" {
		t.Fatalf("offer = %+v, want Hotel Aurore", offer)
	}
}

func TestPreviousGoodHotelUnknownEmployeeOrCity(t *testing.T) {
	r := testRecommender(t)

	if offer := r.PreviousGoodHotel(42, "Paris", 4); offer != nil {
		t.Fatalf("offer = %+v, want nil for unknown employee", offer)
	}
	if offer := r.PreviousGoodHotel(1, "Berlin", 4); offer != nil {
		t.Fatalf("offer = %+v, want nil for city with no history", offer)
	}
}

func TestPreviousGoodHotelSkipsDanglingHotelRows(t *testing.T) {
	log := logger.NewNop()
	store, err := LoadRefStore(context.Background(),
		fakeEmployees{list: fixtureEmployees},
		fakeHotels{list: fixtureHotels},
		fakeHistory{list: []entity.StayHistory{
			{EmployeeID: 1, HotelID: 404, City: "Paris", Rating: 5, StayedAt: date(2024, 8, 1)},
		}},
		log)
	if err != nil {
		t.Fatalf("LoadRefStore: %v", err)
	}

	if offer := NewRecommender(store, log).PreviousGoodHotel(1, "Paris", 4); offer != nil {
		t.Fatalf("offer = %+v, want nil when the hotel row is gone", offer)
	}
}
