package model

// Пол пользователя (опциональный атрибут профиля).
const (
	SexMale   = "male"
	SexFemale = "female"
)

// User представляет путника - пользователя бота. Запись создается неявно
// при первом обращении и никогда не удаляется.
type User struct {
	ID         int64   `db:"id"`
	TelegramID int64   `db:"telegram_id"`
	Username   string  `db:"username"`
	FirstName  string  `db:"first_name"`
	LastName   string  `db:"last_name"`
	Age        *int    `db:"age"`
	Sex        *string `db:"sex"`
	Country    *string `db:"country"`
	City       *string `db:"city"`
	Bio        *string `db:"bio"`
}
