package model

import "time"

// Location представляет точку маршрута путешествия с датами пребывания.
// Инвариант EndAt >= StartAt проверяется на уровне диалога, не базы.
type Location struct {
	ID       int64     `db:"id"`
	TravelID int64     `db:"travel_id"`
	Name     string    `db:"name"`
	Lat      float64   `db:"lat"`
	Lon      float64   `db:"lon"`
	StartAt  time.Time `db:"start_at"`
	EndAt    time.Time `db:"end_at"`
}
