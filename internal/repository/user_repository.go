package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/samylovma/travel-agent/internal/model"
)

// UserRepository обеспечивает доступ к данным пользователей в базе данных.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository создает новый репозиторий пользователей.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create добавляет нового пользователя в базу. Возвращает ID созданной записи.
func (r *UserRepository) Create(user *model.User) (int64, error) {
	query := `INSERT INTO users (telegram_id, username, first_name, last_name)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	var id int64
	err := r.db.QueryRow(query, user.TelegramID, user.Username, user.FirstName, user.LastName).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("не удалось создать пользователя: %w", err)
	}
	return id, nil
}

// GetByTelegramID ищет пользователя по его Telegram ID.
func (r *UserRepository) GetByTelegramID(telegramID int64) (*model.User, error) {
	var user model.User
	err := r.db.Get(&user, "SELECT * FROM users WHERE telegram_id=$1", telegramID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при поиске пользователя: %w", err)
	}
	return &user, nil
}

// GetByID возвращает пользователя по внутреннему идентификатору.
func (r *UserRepository) GetByID(id int64) (*model.User, error) {
	var user model.User
	err := r.db.Get(&user, "SELECT * FROM users WHERE id=$1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при поиске пользователя: %w", err)
	}
	return &user, nil
}

// Update перезаписывает атрибуты профиля пользователя.
func (r *UserRepository) Update(user *model.User) error {
	query := `UPDATE users
	          SET username=$1, first_name=$2, last_name=$3,
	              age=$4, sex=$5, country=$6, city=$7, bio=$8
	          WHERE id=$9`
	_, err := r.db.Exec(query,
		user.Username, user.FirstName, user.LastName,
		user.Age, user.Sex, user.Country, user.City, user.Bio,
		user.ID,
	)
	if err != nil {
		return fmt.Errorf("не удалось обновить пользователя: %w", err)
	}
	return nil
}
