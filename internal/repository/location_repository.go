package repository

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/samylovma/travel-agent/internal/model"
)

// LocationRepository обеспечивает доступ к данным точек маршрута.
type LocationRepository struct {
	db *sqlx.DB
}

// NewLocationRepository создает новый репозиторий точек маршрута.
func NewLocationRepository(db *sqlx.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

// Add сохраняет новую точку маршрута. Возвращает ID созданной записи.
func (r *LocationRepository) Add(location *model.Location) (int64, error) {
	query := `INSERT INTO locations (travel_id, name, lat, lon, start_at, end_at)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	var id int64
	err := r.db.QueryRow(query,
		location.TravelID, location.Name, location.Lat, location.Lon,
		location.StartAt, location.EndAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("не удалось сохранить точку маршрута: %w", err)
	}
	return id, nil
}

// ListByTravel возвращает точки путешествия по возрастанию даты начала пребывания.
func (r *LocationRepository) ListByTravel(travelID int64) ([]model.Location, error) {
	locations := []model.Location{}
	err := r.db.Select(&locations,
		"SELECT * FROM locations WHERE travel_id=$1 ORDER BY start_at", travelID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении точек маршрута: %w", err)
	}
	return locations, nil
}
