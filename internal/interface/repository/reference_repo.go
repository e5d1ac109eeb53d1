package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"bookingbot-service/internal/domain/entity"
	"bookingbot-service/internal/domain/repository"

	"gorm.io/gorm"
)

// Reference tables are read with SELECT * and the column names normalized,
// because the upstream spreadsheets that feed them are not consistent
// about headers. The nightly price in particular shows up under several
// names; it is resolved once per load and a miss is a startup error.
var hotelPriceColumns = []string{"price", "price_per_night", "nightly_rate", "rate", "cost"}

// GormEmployeeRepository implements EmployeeRepository over Postgres.
type GormEmployeeRepository struct {
	db *gorm.DB
}

// NewGormEmployeeRepository creates a new GORM employee repository.
func NewGormEmployeeRepository(db *gorm.DB) repository.EmployeeRepository {
	return &GormEmployeeRepository{db: db}
}

// ListAll loads every employee row.
func (r *GormEmployeeRepository) ListAll(ctx context.Context) ([]entity.Employee, error) {
	cols, rows, err := scanTable(ctx, r.db, "m_employees")
	if err != nil {
		return nil, err
	}

	idCol, err := pickColumn(cols, "m_employees", "employee_id", "id")
	if err != nil {
		return nil, err
	}
	nameCol, err := pickColumn(cols, "m_employees", "employee_name", "name")
	if err != nil {
		return nil, err
	}
	capCol, err := pickColumn(cols, "m_employees", "price_cap_per_night", "price_cap")
	if err != nil {
		return nil, err
	}

	employees := make([]entity.Employee, 0, len(rows))
	for _, row := range rows {
		employees = append(employees, entity.Employee{
			ID:               toInt(row[idCol]),
			Name:             toString(row[nameCol]),
			PriceCapPerNight: toInt(row[capCol]),
		})
	}
	return employees, nil
}

// GormHotelRepository implements HotelRepository over Postgres.
type GormHotelRepository struct {
	db *gorm.DB
}

// NewGormHotelRepository creates a new GORM hotel repository.
func NewGormHotelRepository(db *gorm.DB) repository.HotelRepository {
	return &GormHotelRepository{db: db}
}

// ListAll loads every hotel row, resolving the price column once.
func (r *GormHotelRepository) ListAll(ctx context.Context) ([]entity.Hotel, error) {
	cols, rows, err := scanTable(ctx, r.db, "m_hotels")
	if err != nil {
		return nil, err
	}

	idCol, err := pickColumn(cols, "m_hotels", "hotel_id", "id")
	if err != nil {
		return nil, err
	}
	nameCol, err := pickColumn(cols, "m_hotels", "hotel_name", "name")
	if err != nil {
		return nil, err
	}
	cityCol, err := pickColumn(cols, "m_hotels", "city")
	if err != nil {
		return nil, err
	}
	starsCol, err := pickColumn(cols, "m_hotels", "star_rating", "stars")
	if err != nil {
		return nil, err
	}
	priceCol, err := resolvePriceColumn(cols)
	if err != nil {
		return nil, err
	}

	hotels := make([]entity.Hotel, 0, len(rows))
	for _, row := range rows {
		hotels = append(hotels, entity.Hotel{
			ID:    toInt(row[idCol]),
			Name:  toString(row[nameCol]),
			City:  toString(row[cityCol]),
			Price: toInt(row[priceCol]),
			Stars: toInt(row[starsCol]),
		})
	}
	return hotels, nil
}

// GormStayHistoryRepository implements StayHistoryRepository over Postgres.
type GormStayHistoryRepository struct {
	db *gorm.DB
}

// NewGormStayHistoryRepository creates a new GORM stay history repository.
func NewGormStayHistoryRepository(db *gorm.DB) repository.StayHistoryRepository {
	return &GormStayHistoryRepository{db: db}
}

// ListAll loads every prior-stay row in table order, oldest first.
func (r *GormStayHistoryRepository) ListAll(ctx context.Context) ([]entity.StayHistory, error) {
	cols, rows, err := scanTable(ctx, r.db, "m_stay_history")
	if err != nil {
		return nil, err
	}

	empCol, err := pickColumn(cols, "m_stay_history", "employee_id")
	if err != nil {
		return nil, err
	}
	hotelCol, err := pickColumn(cols, "m_stay_history", "hotel_id")
	if err != nil {
		return nil, err
	}
	cityCol, err := pickColumn(cols, "m_stay_history", "city")
	if err != nil {
		return nil, err
	}
	ratingCol, err := pickColumn(cols, "m_stay_history", "rating")
	if err != nil {
		return nil, err
	}
	stayedCol, err := pickColumn(cols, "m_stay_history", "stayed_at", "stay_date", "created_at")
	if err != nil {
		return nil, err
	}

	history := make([]entity.StayHistory, 0, len(rows))
	for _, row := range rows {
		history = append(history, entity.StayHistory{
			EmployeeID: toInt(row[empCol]),
			HotelID:    toInt(row[hotelCol]),
			City:       toString(row[cityCol]),
			Rating:     toInt(row[ratingCol]),
			StayedAt:   toTime(row[stayedCol]),
		})
	}
	return history, nil
}

// scanTable reads a whole table as generic rows keyed by the normalized
// column name. Returned cols preserve the column set even when the table
// is empty, so required-column checks still fire.
func scanTable(ctx context.Context, db *gorm.DB, table string) ([]string, []map[string]interface{}, error) {
	sqlRows, err := db.WithContext(ctx).Table(table).Rows()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: query failed: %w", table, err)
	}
	defer sqlRows.Close()

	rawCols, err := sqlRows.Columns()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: reading columns: %w", table, err)
	}

	cols := make([]string, len(rawCols))
	for i, c := range rawCols {
		cols[i] = normalizeColumn(c)
	}

	var out []map[string]interface{}
	for sqlRows.Next() {
		vals := make([]interface{}, len(cols))
		for i := range vals {
			vals[i] = new(interface{})
		}
		if err := sqlRows.Scan(vals...); err != nil {
			return nil, nil, fmt.Errorf("%s: scanning row: %w", table, err)
		}

		row := make(map[string]interface{}, len(cols))
		for i, c := range cols {
			row[c] = *(vals[i].(*interface{}))
		}
		out = append(out, row)
	}
	if err := sqlRows.Err(); err != nil {
		return nil, nil, fmt.Errorf("%s: iterating rows: %w", table, err)
	}
	return cols, out, nil
}

// normalizeColumn lowercases and collapses whitespace so that headers
// like "Price Per Night" and "price_per_night" compare equal.
func normalizeColumn(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	return strings.Join(strings.Fields(strings.ReplaceAll(n, "_", " ")), "_")
}

// pickColumn returns the first candidate present in cols.
func pickColumn(cols []string, table string, candidates ...string) (string, error) {
	for _, want := range candidates {
		for _, c := range cols {
			if c == want {
				return c, nil
			}
		}
	}
	return "", fmt.Errorf("%s: missing required column (looked for %s)", table, strings.Join(candidates, ", "))
}

// resolvePriceColumn finds the nightly price column among the known
// aliases. A miss here is fatal at startup, never per request.
func resolvePriceColumn(cols []string) (string, error) {
	return pickColumn(cols, "m_hotels", hotelPriceColumns...)
}

func toString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case []byte:
		return strings.TrimSpace(string(t))
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", t))
	}
}

func toInt(v interface{}) int {
	switch t := v.(type) {
	case nil:
		return 0
	case int64:
		return int(t)
	case int32:
		return int(t)
	case int:
		return t
	case float64:
		return int(t)
	case []byte:
		n, _ := strconv.Atoi(strings.TrimSpace(string(t)))
		return n
	case string:
		n, _ := strconv.Atoi(strings.TrimSpace(t))
		return n
	default:
		return 0
	}
}

func toTime(v interface{}) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		return parseTimeString(t)
	case []byte:
		return parseTimeString(string(t))
	default:
		return time.Time{}
	}
}

func parseTimeString(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
