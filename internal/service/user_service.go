package service

import "github.com/samylovma/travel-agent/internal/model"

// UserService содержит бизнес-логику, связанную с профилем пользователя.
// Каждый сеттер обновляет ровно один атрибут: настройки собираются
// по одному полю за диалог.
type UserService struct {
	users UserStore
}

// NewUserService создает новый сервис пользователей.
func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// GetByID возвращает пользователя по ID (обертка над репозиторием).
func (s *UserService) GetByID(id int64) (*model.User, error) {
	return s.users.GetByID(id)
}

// SetAge записывает возраст пользователя.
func (s *UserService) SetAge(userID int64, age int) error {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return err
	}
	user.Age = &age
	return s.users.Update(user)
}

// SetSex записывает пол пользователя.
func (s *UserService) SetSex(userID int64, sex string) error {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return err
	}
	user.Sex = &sex
	return s.users.Update(user)
}

// SetCountry записывает страну пользователя.
func (s *UserService) SetCountry(userID int64, country string) error {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return err
	}
	user.Country = &country
	return s.users.Update(user)
}

// SetCity записывает город пользователя.
func (s *UserService) SetCity(userID int64, city string) error {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return err
	}
	user.City = &city
	return s.users.Update(user)
}

// SetBio записывает рассказ пользователя о себе.
func (s *UserService) SetBio(userID int64, bio string) error {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return err
	}
	user.Bio = &bio
	return s.users.Update(user)
}
