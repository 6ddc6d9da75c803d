package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/samylovma/travel-agent/internal/model"
)

// Код ошибки PostgreSQL для нарушения уникального ограничения.
const pgUniqueViolation = "23505"

// TravelRepository обеспечивает доступ к данным путешествий и их участников.
type TravelRepository struct {
	db *sqlx.DB
}

// NewTravelRepository создает новый репозиторий путешествий.
func NewTravelRepository(db *sqlx.DB) *TravelRepository {
	return &TravelRepository{db: db}
}

// Create создает новое путешествие. При занятом названии возвращает ErrNameTaken.
func (r *TravelRepository) Create(name string) (int64, error) {
	var id int64
	err := r.db.QueryRow("INSERT INTO travels (name) VALUES ($1) RETURNING id", name).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return 0, ErrNameTaken
		}
		return 0, fmt.Errorf("не удалось создать путешествие: %w", err)
	}
	return id, nil
}

// GetByID возвращает путешествие по идентификатору.
func (r *TravelRepository) GetByID(id int64) (*model.Travel, error) {
	var travel model.Travel
	err := r.db.Get(&travel, "SELECT * FROM travels WHERE id=$1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при поиске путешествия: %w", err)
	}
	return &travel, nil
}

// UpdateBio обновляет описание путешествия.
func (r *TravelRepository) UpdateBio(id int64, bio string) error {
	_, err := r.db.Exec("UPDATE travels SET bio=$1 WHERE id=$2", bio, id)
	if err != nil {
		return fmt.Errorf("не удалось обновить описание путешествия: %w", err)
	}
	return nil
}

// AddMember добавляет пользователя в участники путешествия.
// Повторное добавление того же участника - no-op (ON CONFLICT DO NOTHING).
func (r *TravelRepository) AddMember(travelID, userID int64) error {
	_, err := r.db.Exec(
		`INSERT INTO user_to_travel (user_id, travel_id) VALUES ($1, $2)
		 ON CONFLICT DO NOTHING`,
		userID, travelID,
	)
	if err != nil {
		return fmt.Errorf("не удалось добавить участника: %w", err)
	}
	return nil
}

// GetMembers возвращает участников путешествия в порядке их создания.
func (r *TravelRepository) GetMembers(travelID int64) ([]model.User, error) {
	users := []model.User{}
	err := r.db.Select(&users,
		`SELECT u.* FROM user_to_travel ut
		 JOIN users u ON ut.user_id = u.id
		 WHERE ut.travel_id=$1
		 ORDER BY u.id`, travelID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении участников: %w", err)
	}
	return users, nil
}

// ListByUser возвращает путешествия пользователя, упорядоченные по id.
func (r *TravelRepository) ListByUser(userID int64) ([]model.Travel, error) {
	travels := []model.Travel{}
	err := r.db.Select(&travels,
		`SELECT t.* FROM user_to_travel ut
		 JOIN travels t ON ut.travel_id = t.id
		 WHERE ut.user_id=$1
		 ORDER BY t.id`, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка путешествий: %w", err)
	}
	return travels, nil
}
