package service

import (
	"crypto/rand"
	"encoding/base64"
	"sort"
	"time"

	"github.com/samylovma/travel-agent/internal/model"
	"github.com/samylovma/travel-agent/internal/repository"
)

// Фейки хранилищ в памяти для тестов сервисов.

type fakeUserStore struct {
	nextID int64
	users  map[int64]*model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[int64]*model.User)}
}

func (s *fakeUserStore) Create(user *model.User) (int64, error) {
	s.nextID++
	u := *user
	u.ID = s.nextID
	s.users[u.ID] = &u
	return u.ID, nil
}

func (s *fakeUserStore) GetByTelegramID(telegramID int64) (*model.User, error) {
	for _, u := range s.users {
		if u.TelegramID == telegramID {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeUserStore) GetByID(id int64) (*model.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (s *fakeUserStore) Update(user *model.User) error {
	if _, ok := s.users[user.ID]; !ok {
		return repository.ErrNotFound
	}
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

type memberKey struct {
	userID   int64
	travelID int64
}

type fakeTravelStore struct {
	nextID  int64
	travels map[int64]*model.Travel
	members map[memberKey]struct{}
	users   *fakeUserStore
}

func newFakeTravelStore(users *fakeUserStore) *fakeTravelStore {
	return &fakeTravelStore{
		travels: make(map[int64]*model.Travel),
		members: make(map[memberKey]struct{}),
		users:   users,
	}
}

func (s *fakeTravelStore) Create(name string) (int64, error) {
	for _, t := range s.travels {
		if t.Name == name {
			return 0, repository.ErrNameTaken
		}
	}
	s.nextID++
	s.travels[s.nextID] = &model.Travel{ID: s.nextID, Name: name}
	return s.nextID, nil
}

func (s *fakeTravelStore) GetByID(id int64) (*model.Travel, error) {
	t, ok := s.travels[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *t
	return &copied, nil
}

func (s *fakeTravelStore) UpdateBio(id int64, bio string) error {
	t, ok := s.travels[id]
	if !ok {
		return repository.ErrNotFound
	}
	t.Bio = bio
	return nil
}

func (s *fakeTravelStore) AddMember(travelID, userID int64) error {
	s.members[memberKey{userID: userID, travelID: travelID}] = struct{}{}
	return nil
}

func (s *fakeTravelStore) GetMembers(travelID int64) ([]model.User, error) {
	var members []model.User
	for key := range s.members {
		if key.travelID != travelID {
			continue
		}
		if u, ok := s.users.users[key.userID]; ok {
			members = append(members, *u)
		} else {
			members = append(members, model.User{ID: key.userID})
		}
	}
	sort.Slice(members, func(i, j int) bool { return members[i].ID < members[j].ID })
	return members, nil
}

func (s *fakeTravelStore) ListByUser(userID int64) ([]model.Travel, error) {
	var travels []model.Travel
	for key := range s.members {
		if key.userID != userID {
			continue
		}
		if t, ok := s.travels[key.travelID]; ok {
			travels = append(travels, *t)
		}
	}
	sort.Slice(travels, func(i, j int) bool { return travels[i].ID < travels[j].ID })
	return travels, nil
}

func (s *fakeTravelStore) memberCount(travelID int64) int {
	n := 0
	for key := range s.members {
		if key.travelID == travelID {
			n++
		}
	}
	return n
}

type tokenEntry struct {
	travelID  int64
	expiresAt time.Time
}

type fakeTokenStore struct {
	now    func() time.Time
	tokens map[string]tokenEntry
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{
		now:    time.Now,
		tokens: make(map[string]tokenEntry),
	}
}

func (s *fakeTokenStore) Create(travelID int64) (string, error) {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	token := base64.RawURLEncoding.EncodeToString(buf)
	s.tokens[token] = tokenEntry{travelID: travelID, expiresAt: s.now().Add(24 * time.Hour)}
	return token, nil
}

func (s *fakeTokenStore) GetTravelID(token string) (int64, error) {
	entry, ok := s.tokens[token]
	if !ok || s.now().After(entry.expiresAt) {
		return 0, repository.ErrNotFound
	}
	return entry.travelID, nil
}

type fakeLocationStore struct {
	nextID    int64
	locations []model.Location
}

func newFakeLocationStore() *fakeLocationStore {
	return &fakeLocationStore{}
}

func (s *fakeLocationStore) Add(location *model.Location) (int64, error) {
	s.nextID++
	copied := *location
	copied.ID = s.nextID
	s.locations = append(s.locations, copied)
	return copied.ID, nil
}

func (s *fakeLocationStore) ListByTravel(travelID int64) ([]model.Location, error) {
	var result []model.Location
	for _, loc := range s.locations {
		if loc.TravelID == travelID {
			result = append(result, loc)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].StartAt.Before(result[j].StartAt) })
	return result, nil
}

type fakeNoteStore struct {
	nextID int64
	notes  map[int64]*model.Note
}

func newFakeNoteStore() *fakeNoteStore {
	return &fakeNoteStore{notes: make(map[int64]*model.Note)}
}

func (s *fakeNoteStore) Add(note *model.Note) (int64, error) {
	s.nextID++
	copied := *note
	copied.ID = s.nextID
	s.notes[copied.ID] = &copied
	return copied.ID, nil
}

func (s *fakeNoteStore) GetByID(id int64) (*model.Note, error) {
	n, ok := s.notes[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *n
	return &copied, nil
}

func (s *fakeNoteStore) ListVisible(travelID, userID int64) ([]model.Note, error) {
	var result []model.Note
	for _, n := range s.notes {
		if n.TravelID == travelID && (!n.IsPrivate || n.UserID == userID) {
			result = append(result, *n)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (s *fakeNoteStore) MakePublic(id int64) error {
	n, ok := s.notes[id]
	if !ok {
		return repository.ErrNotFound
	}
	n.IsPrivate = false
	return nil
}
