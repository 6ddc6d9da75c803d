package service

import (
	"errors"
	"time"

	"github.com/samylovma/travel-agent/internal/model"
)

// ErrEndBeforeStart возвращается, когда дата конца пребывания раньше даты начала.
// Диалог в этом случае переспрашивает дату конца, не теряя уже собранных ответов.
var ErrEndBeforeStart = errors.New("дата конца пребывания раньше даты начала")

// LocationStore описывает операции над точками маршрута.
type LocationStore interface {
	Add(location *model.Location) (int64, error)
	ListByTravel(travelID int64) ([]model.Location, error)
}

// LocationService содержит бизнес-логику точек маршрута.
type LocationService struct {
	locations LocationStore
}

// NewLocationService создает новый сервис точек маршрута.
func NewLocationService(locations LocationStore) *LocationService {
	return &LocationService{locations: locations}
}

// AddLocation сохраняет точку маршрута, проверив порядок дат.
// При endAt < startAt ничего не сохраняет и возвращает ErrEndBeforeStart.
func (s *LocationService) AddLocation(travelID int64, name string, lat, lon float64, startAt, endAt time.Time) (*model.Location, error) {
	if endAt.Before(startAt) {
		return nil, ErrEndBeforeStart
	}
	location := &model.Location{
		TravelID: travelID,
		Name:     name,
		Lat:      lat,
		Lon:      lon,
		StartAt:  startAt,
		EndAt:    endAt,
	}
	id, err := s.locations.Add(location)
	if err != nil {
		return nil, err
	}
	location.ID = id
	return location, nil
}

// TravelLocations возвращает точки путешествия по возрастанию даты начала.
func (s *LocationService) TravelLocations(travelID int64) ([]model.Location, error) {
	return s.locations.ListByTravel(travelID)
}
