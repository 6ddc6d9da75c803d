package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/samylovma/travel-agent/internal/model"
)

// NoteRepository обеспечивает доступ к заметкам путешествий.
type NoteRepository struct {
	db *sqlx.DB
}

// NewNoteRepository создает новый репозиторий заметок.
func NewNoteRepository(db *sqlx.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

// Add сохраняет новую заметку. Возвращает ID созданной записи.
func (r *NoteRepository) Add(note *model.Note) (int64, error) {
	query := `INSERT INTO notes (user_id, travel_id, file_id, name, is_private)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	var id int64
	err := r.db.QueryRow(query, note.UserID, note.TravelID, note.FileID, note.Name, note.IsPrivate).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("не удалось сохранить заметку: %w", err)
	}
	return id, nil
}

// GetByID возвращает заметку по идентификатору.
func (r *NoteRepository) GetByID(id int64) (*model.Note, error) {
	var note model.Note
	err := r.db.Get(&note, "SELECT * FROM notes WHERE id=$1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при поиске заметки: %w", err)
	}
	return &note, nil
}

// ListVisible возвращает заметки путешествия, видимые пользователю:
// все публичные и его собственные приватные.
func (r *NoteRepository) ListVisible(travelID, userID int64) ([]model.Note, error) {
	notes := []model.Note{}
	err := r.db.Select(&notes,
		`SELECT * FROM notes
		 WHERE travel_id=$1 AND (is_private=FALSE OR user_id=$2)
		 ORDER BY id`,
		travelID, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении заметок: %w", err)
	}
	return notes, nil
}

// MakePublic снимает с заметки флаг приватности.
// Для несуществующей заметки возвращает ErrNotFound.
func (r *NoteRepository) MakePublic(id int64) error {
	res, err := r.db.Exec("UPDATE notes SET is_private=FALSE WHERE id=$1", id)
	if err != nil {
		return fmt.Errorf("не удалось сделать заметку публичной: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
