package usecase

import (
	"context"
	"fmt"
	"strings"

	"bookingbot-service/internal/domain/entity"
	"bookingbot-service/internal/domain/repository"
	"bookingbot-service/pkg/logger"
)

// RefStore is the in-memory snapshot of the reference tables. It is
// built once at startup and never mutated afterwards, so lookups are
// safe from concurrent requests without locking.
type RefStore struct {
	employeesByName map[string]entity.Employee
	hotelsByCity    map[string][]entity.Hotel
	hotelsByID      map[int]entity.Hotel
	historyByEmp    map[int][]entity.StayHistory
}

// LoadRefStore reads the three reference tables and indexes them for
// the lookups the conversation needs. Any load failure is fatal for the
// caller; requests must never run against partial reference data.
func LoadRefStore(
	ctx context.Context,
	employeeRepo repository.EmployeeRepository,
	hotelRepo repository.HotelRepository,
	historyRepo repository.StayHistoryRepository,
	log logger.Logger,
) (*RefStore, error) {
	employees, err := employeeRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading employees: %w", err)
	}

	hotels, err := hotelRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading hotels: %w", err)
	}

	history, err := historyRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading stay history: %w", err)
	}

	store := &RefStore{
		employeesByName: make(map[string]entity.Employee, len(employees)),
		hotelsByCity:    make(map[string][]entity.Hotel),
		hotelsByID:      make(map[int]entity.Hotel, len(hotels)),
		historyByEmp:    make(map[int][]entity.StayHistory),
	}

	for _, e := range employees {
		store.employeesByName[strings.ToLower(strings.TrimSpace(e.Name))] = e
	}
	for _, h := range hotels {
		city := strings.ToLower(strings.TrimSpace(h.City))
		store.hotelsByCity[city] = append(store.hotelsByCity[city], h)
		store.hotelsByID[h.ID] = h
	}
	for _, s := range history {
		store.historyByEmp[s.EmployeeID] = append(store.historyByEmp[s.EmployeeID], s)
	}

	log.Info("Reference data loaded",
		"employees", len(employees),
		"hotels", len(hotels),
		"historyEntries", len(history))

	return store, nil
}

// EmployeeByName matches the user-supplied name case-insensitively.
func (s *RefStore) EmployeeByName(name string) (entity.Employee, bool) {
	e, ok := s.employeesByName[strings.ToLower(strings.TrimSpace(name))]
	return e, ok
}

// HotelsInCity returns the hotels for a city, case-insensitively.
func (s *RefStore) HotelsInCity(city string) []entity.Hotel {
	return s.hotelsByCity[strings.ToLower(strings.TrimSpace(city))]
}

// HotelByID looks a hotel up by its reference ID.
func (s *RefStore) HotelByID(id int) (entity.Hotel, bool) {
	h, ok := s.hotelsByID[id]
	return h, ok
}

// HistoryFor returns an employee's prior stays in table order.
func (s *RefStore) HistoryFor(employeeID int) []entity.StayHistory {
	return s.historyByEmp[employeeID]
}
