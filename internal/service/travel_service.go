package service

import (
	"github.com/samylovma/travel-agent/internal/model"
)

// TravelStore описывает операции над путешествиями и их участниками.
type TravelStore interface {
	Create(name string) (int64, error)
	GetByID(id int64) (*model.Travel, error)
	UpdateBio(id int64, bio string) error
	AddMember(travelID, userID int64) error
	GetMembers(travelID int64) ([]model.User, error)
	ListByUser(userID int64) ([]model.Travel, error)
}

// InviteTokenStore описывает операции над пригласительными токенами.
type InviteTokenStore interface {
	Create(travelID int64) (string, error)
	GetTravelID(token string) (int64, error)
}

// TravelService содержит бизнес-логику путешествий: создание, описание,
// приглашения и прием новых участников.
type TravelService struct {
	travels TravelStore
	tokens  InviteTokenStore
}

// NewTravelService создает новый сервис путешествий.
func NewTravelService(travels TravelStore, tokens InviteTokenStore) *TravelService {
	return &TravelService{travels: travels, tokens: tokens}
}

// CreateTravel создает путешествие и делает создателя его первым участником.
// При занятом названии возвращает repository.ErrNameTaken.
func (s *TravelService) CreateTravel(name string, creatorID int64) (*model.Travel, error) {
	id, err := s.travels.Create(name)
	if err != nil {
		return nil, err
	}
	if err := s.travels.AddMember(id, creatorID); err != nil {
		return nil, err
	}
	return s.travels.GetByID(id)
}

// GetTravel возвращает путешествие по ID.
func (s *TravelService) GetTravel(id int64) (*model.Travel, error) {
	return s.travels.GetByID(id)
}

// ChangeBio обновляет описание путешествия.
func (s *TravelService) ChangeBio(travelID int64, bio string) error {
	return s.travels.UpdateBio(travelID, bio)
}

// UserTravels возвращает путешествия пользователя по возрастанию id.
func (s *TravelService) UserTravels(userID int64) ([]model.Travel, error) {
	return s.travels.ListByUser(userID)
}

// Members возвращает участников путешествия.
func (s *TravelService) Members(travelID int64) ([]model.User, error) {
	return s.travels.GetMembers(travelID)
}

// Invite выпускает пригласительный токен путешествия, действующий ~24 часа.
// Токен многоразовый: одной ссылкой могут воспользоваться несколько путников.
func (s *TravelService) Invite(travelID int64) (string, error) {
	return s.tokens.Create(travelID)
}

// AcceptInvite принимает пользователя в путешествие по токену.
// Повторный вход по той же или другой действующей ссылке - no-op на уровне
// базы: строка участия одна на пару (пользователь, путешествие).
// Для неизвестного или истекшего токена возвращает repository.ErrNotFound.
// Возвращает путешествие и полный список участников (включая нового) для
// рассылки уведомлений.
func (s *TravelService) AcceptInvite(token string, userID int64) (*model.Travel, []model.User, error) {
	travelID, err := s.tokens.GetTravelID(token)
	if err != nil {
		return nil, nil, err
	}
	if err := s.travels.AddMember(travelID, userID); err != nil {
		return nil, nil, err
	}
	travel, err := s.travels.GetByID(travelID)
	if err != nil {
		return nil, nil, err
	}
	members, err := s.travels.GetMembers(travelID)
	if err != nil {
		return nil, nil, err
	}
	return travel, members, nil
}
