package service

import (
	"errors"
	"fmt"

	"github.com/samylovma/travel-agent/internal/model"
	"github.com/samylovma/travel-agent/internal/repository"
)

// UserStore описывает нужные сервисам операции над пользователями.
type UserStore interface {
	Create(user *model.User) (int64, error)
	GetByTelegramID(telegramID int64) (*model.User, error)
	GetByID(id int64) (*model.User, error)
	Update(user *model.User) error
}

// AuthService отвечает за неявную регистрацию пользователей по Telegram ID.
type AuthService struct {
	users UserStore
}

// NewAuthService создает новый сервис аутентификации.
func NewAuthService(users UserStore) *AuthService {
	return &AuthService{users: users}
}

// AuthUser проверяет наличие пользователя с данным TelegramID и регистрирует
// нового, если не найден. Возвращает существующую или новосозданную запись.
func (s *AuthService) AuthUser(telegramID int64, username, firstName, lastName string) (*model.User, error) {
	user, err := s.users.GetByTelegramID(telegramID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			newUser := &model.User{
				TelegramID: telegramID,
				Username:   username,
				FirstName:  firstName,
				LastName:   lastName,
			}
			id, err := s.users.Create(newUser)
			if err != nil {
				return nil, err
			}
			newUser.ID = id
			return newUser, nil
		}
		return nil, fmt.Errorf("ошибка при поиске пользователя: %w", err)
	}
	return user, nil
}
