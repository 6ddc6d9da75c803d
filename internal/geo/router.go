package geo

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// Point - географическая точка.
type Point struct {
	Lat float64
	Lon float64
}

// Router строит автомобильный маршрут через упорядоченный список точек.
// Работает с OSRM-совместимым HTTP API.
type Router struct {
	baseURL string
	client  *http.Client
}

// NewRouter создает клиент маршрутизатора с указанным базовым URL.
func NewRouter(baseURL string) *Router {
	return &Router{baseURL: baseURL, client: http.DefaultClient}
}

type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"routes"`
}

// CarRoute возвращает ломаную автомобильного маршрута через заданные точки.
func (r *Router) CarRoute(points ...Point) ([]Point, error) {
	if len(points) < 2 {
		return nil, errors.New("для маршрута нужны хотя бы две точки")
	}

	coords := make([]string, len(points))
	for i, p := range points {
		coords[i] = strconv.FormatFloat(p.Lon, 'f', -1, 64) + "," + strconv.FormatFloat(p.Lat, 'f', -1, 64)
	}
	reqURL := fmt.Sprintf(
		"%s/route/v1/driving/%s?overview=full&geometries=geojson",
		r.baseURL, strings.Join(coords, ";"),
	)

	resp, err := r.client.Get(reqURL)
	if err != nil {
		return nil, fmt.Errorf("запрос к маршрутизатору не удался: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("маршрутизатор вернул статус %d", resp.StatusCode)
	}

	var raw osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("не удалось разобрать ответ маршрутизатора: %w", err)
	}
	if raw.Code != "Ok" || len(raw.Routes) == 0 {
		return nil, fmt.Errorf("маршрут не построен (код %q)", raw.Code)
	}

	route := make([]Point, 0, len(raw.Routes[0].Geometry.Coordinates))
	for _, c := range raw.Routes[0].Geometry.Coordinates {
		if len(c) < 2 {
			continue
		}
		route = append(route, Point{Lon: c[0], Lat: c[1]})
	}
	return route, nil
}
