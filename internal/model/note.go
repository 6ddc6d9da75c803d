package model

// Note представляет заметку путешествия - фото или документ.
// FileID - идентификатор вложения в Telegram (для повторной отправки
// без загрузки). Приватная заметка видна только загрузившему.
type Note struct {
	ID        int64  `db:"id"`
	UserID    int64  `db:"user_id"`
	TravelID  int64  `db:"travel_id"`
	FileID    string `db:"file_id"`
	Name      string `db:"name"`
	IsPrivate bool   `db:"is_private"`
}
