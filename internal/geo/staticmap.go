package geo

import (
	"bytes"
	"fmt"
	"image/color"
	"image/png"

	sm "github.com/flopp/go-staticmaps"
	"github.com/golang/geo/s2"
)

const (
	mapSize      = 1024
	routeWeight  = 3.0
	markerRadius = 10.0
)

var routeColor = color.RGBA{B: 0xFF, A: 0xFF}

// RenderRouteMap отрисовывает карту 1024x1024 с ломаной маршрута и маркерами
// в точках пребывания. Возвращает PNG.
func RenderRouteMap(route []Point, markers []Point) ([]byte, error) {
	ctx := sm.NewContext()
	ctx.SetSize(mapSize, mapSize)

	line := make([]s2.LatLng, len(route))
	for i, p := range route {
		line[i] = s2.LatLngFromDegrees(p.Lat, p.Lon)
	}
	ctx.AddObject(sm.NewPath(line, routeColor, routeWeight))

	for _, p := range markers {
		ctx.AddObject(sm.NewMarker(s2.LatLngFromDegrees(p.Lat, p.Lon), routeColor, markerRadius))
	}

	img, err := ctx.Render()
	if err != nil {
		return nil, fmt.Errorf("не удалось отрисовать карту: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("не удалось закодировать карту в PNG: %w", err)
	}
	return buf.Bytes(), nil
}
