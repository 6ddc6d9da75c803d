package geo

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Place представляет кандидата геокодирования: место с названием,
// полным адресом и координатами.
type Place struct {
	Name    string
	Address string
	Lat     float64
	Lon     float64
}

// Geocoder превращает свободный текст в ранжированный список мест.
// Работает с Nominatim-совместимым HTTP API.
type Geocoder struct {
	baseURL string
	client  *http.Client
}

// NewGeocoder создает клиент геокодера с указанным базовым URL.
func NewGeocoder(baseURL string) *Geocoder {
	return &Geocoder{baseURL: baseURL, client: http.DefaultClient}
}

type nominatimPlace struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// Search возвращает до пяти кандидатов для текстового запроса,
// в порядке убывания релевантности.
func (g *Geocoder) Search(query string) ([]Place, error) {
	reqURL := fmt.Sprintf("%s/search?format=jsonv2&limit=5&q=%s", g.baseURL, url.QueryEscape(query))
	resp, err := g.client.Get(reqURL)
	if err != nil {
		return nil, fmt.Errorf("запрос к геокодеру не удался: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("геокодер вернул статус %d", resp.StatusCode)
	}

	var raw []nominatimPlace
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("не удалось разобрать ответ геокодера: %w", err)
	}

	places := make([]Place, 0, len(raw))
	for _, p := range raw {
		lat, err := strconv.ParseFloat(p.Lat, 64)
		if err != nil {
			continue
		}
		lon, err := strconv.ParseFloat(p.Lon, 64)
		if err != nil {
			continue
		}
		name := p.Name
		if name == "" {
			name = p.DisplayName
		}
		places = append(places, Place{
			Name:    name,
			Address: p.DisplayName,
			Lat:     lat,
			Lon:     lon,
		})
	}
	return places, nil
}
