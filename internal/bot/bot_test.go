package bot

import (
	"errors"
	"strconv"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/samylovma/travel-agent/internal/model"
	"github.com/samylovma/travel-agent/internal/repository"
	"github.com/samylovma/travel-agent/internal/service"
)

// fakeTelegram записывает исходящие вызовы Telegram API вместо отправки.
type fakeTelegram struct {
	sent     []tgbotapi.Chattable
	requests []tgbotapi.Chattable
}

func (f *fakeTelegram) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, nil
}

func (f *fakeTelegram) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	f.requests = append(f.requests, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (f *fakeTelegram) GetUpdatesChan(tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	ch := make(chan tgbotapi.Update)
	close(ch)
	return ch
}

type fakeUserStore struct {
	nextID int64
	users  map[int64]*model.User
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
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

type fakeTravelStore struct {
	nextID  int64
	travels map[int64]*model.Travel
	members map[[2]int64]struct{} // (userID, travelID)
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
	s.members[[2]int64{userID, travelID}] = struct{}{}
	return nil
}

func (s *fakeTravelStore) GetMembers(int64) ([]model.User, error) {
	return []model.User{}, nil
}

func (s *fakeTravelStore) ListByUser(userID int64) ([]model.Travel, error) {
	var travels []model.Travel
	for key := range s.members {
		if key[0] != userID {
			continue
		}
		if t, ok := s.travels[key[1]]; ok {
			travels = append(travels, *t)
		}
	}
	return travels, nil
}

type fakeTokenStore struct {
	nextID int64
	tokens map[string]int64
}

func (s *fakeTokenStore) Create(travelID int64) (string, error) {
	s.nextID++
	token := "token-" + strconv.FormatInt(s.nextID, 10)
	s.tokens[token] = travelID
	return token, nil
}

func (s *fakeTokenStore) GetTravelID(token string) (int64, error) {
	travelID, ok := s.tokens[token]
	if !ok {
		return 0, repository.ErrNotFound
	}
	return travelID, nil
}

type fakeNoteStore struct {
	addErr error
	nextID int64
	notes  map[int64]*model.Note
}

func (s *fakeNoteStore) Add(note *model.Note) (int64, error) {
	if s.addErr != nil {
		return 0, s.addErr
	}
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

func (s *fakeNoteStore) ListVisible(int64, int64) ([]model.Note, error) {
	return []model.Note{}, nil
}

func (s *fakeNoteStore) MakePublic(id int64) error {
	n, ok := s.notes[id]
	if !ok {
		return repository.ErrNotFound
	}
	n.IsPrivate = false
	return nil
}

type botStores struct {
	users   *fakeUserStore
	travels *fakeTravelStore
	tokens  *fakeTokenStore
	notes   *fakeNoteStore
}

func newTestBot() (*Bot, *fakeTelegram, *botStores) {
	tg := &fakeTelegram{}
	stores := &botStores{
		users:   &fakeUserStore{users: make(map[int64]*model.User)},
		travels: &fakeTravelStore{travels: make(map[int64]*model.Travel), members: make(map[[2]int64]struct{})},
		tokens:  &fakeTokenStore{tokens: make(map[string]int64)},
		notes:   &fakeNoteStore{notes: make(map[int64]*model.Note)},
	}
	b := &Bot{
		api:           tg,
		username:      "travel_agent_bot",
		auth:          service.NewAuthService(stores.users),
		users:         service.NewUserService(stores.users),
		travels:       service.NewTravelService(stores.travels, stores.tokens),
		notes:         service.NewNoteService(stores.notes),
		conversations: NewConversationManager(),
		pendingNotes:  make(map[int64]pendingNote),
	}
	return b, tg, stores
}

func textMessage(userID, chatID int64, text string) *tgbotapi.Message {
	return &tgbotapi.Message{
		MessageID: 1,
		From:      &tgbotapi.User{ID: userID, FirstName: "Путник"},
		Chat:      &tgbotapi.Chat{ID: chatID},
		Text:      text,
	}
}

// Сообщение без текста (стикер, голосовое) не является ответом на шаг
// диалога: черновик не продвигается и путешествие с пустым названием
// не создается.
func TestHandleText_IgnoresNonText(t *testing.T) {
	t.Parallel()

	b, _, stores := newTestBot()
	b.conversations.Start(100, 100, FlowNewTravel, stateNewTravelName)

	sticker := textMessage(100, 100, "")
	sticker.Sticker = &tgbotapi.Sticker{FileID: "sticker-1"}
	b.handleUpdate(tgbotapi.Update{Message: sticker})

	if len(stores.travels.travels) != 0 {
		t.Fatalf("создано %d путешествий, ожидалось 0", len(stores.travels.travels))
	}
	if _, ok := b.conversations.Get(100, 100); !ok {
		t.Fatal("диалог не должен завершаться от стикера")
	}

	// Обычный текст продолжает тот же диалог.
	b.handleUpdate(tgbotapi.Update{Message: textMessage(100, 100, "Alps 2025")})
	if len(stores.travels.travels) != 1 {
		t.Fatalf("создано %d путешествий, ожидалось 1", len(stores.travels.travels))
	}
	for _, travel := range stores.travels.travels {
		if travel.Name != "Alps 2025" {
			t.Fatalf("name=%q", travel.Name)
		}
	}
	if _, ok := b.conversations.Get(100, 100); ok {
		t.Fatal("диалог должен завершиться после создания")
	}
}

func TestConversationAccepts(t *testing.T) {
	t.Parallel()

	textConv := &Conversation{Flow: FlowNewTravel, State: stateNewTravelName}
	if !conversationAccepts(textConv, textMessage(1, 1, "Карелия")) {
		t.Fatal("текст должен подходить текстовому шагу")
	}
	if conversationAccepts(textConv, textMessage(1, 1, "")) {
		t.Fatal("сообщение без текста не подходит текстовому шагу")
	}

	// Геопозиция принимается только на шаге адреса.
	located := textMessage(1, 1, "")
	located.Location = &tgbotapi.Location{Latitude: 48.2, Longitude: 16.4}
	addressConv := &Conversation{Flow: FlowAddLocation, State: stateLocationAddress}
	if !conversationAccepts(addressConv, located) {
		t.Fatal("геопозиция должна подходить шагу адреса")
	}
	settingsConv := &Conversation{Flow: FlowSettCity, State: stateOneAnswer}
	if conversationAccepts(settingsConv, located) {
		t.Fatal("геопозиция не подходит шагу настроек")
	}
}

// Для кнопок на слишком старых сообщениях Telegram не передает Message;
// нажатие подтверждается тостом об устаревшем диалоге вместо паники.
func TestHandleCallbackQuery_MessageUnavailable(t *testing.T) {
	t.Parallel()

	b, tg, _ := newTestBot()
	cq := &tgbotapi.CallbackQuery{
		ID:   "cb-1",
		From: &tgbotapi.User{ID: 100},
		Data: CallbackData{Kind: CallbackTravel, ID: 1}.Encode(),
	}
	b.handleCallbackQuery(cq)

	if len(tg.requests) != 1 {
		t.Fatalf("запросов %d, ожидался 1", len(tg.requests))
	}
	answer, ok := tg.requests[0].(tgbotapi.CallbackConfig)
	if !ok {
		t.Fatalf("запрос %T, ожидался CallbackConfig", tg.requests[0])
	}
	if answer.Text != msgConversationExpired {
		t.Fatalf("text=%q", answer.Text)
	}
}

// Сбой записи не теряет загруженное вложение: повторное нажатие кнопки
// прикрепляет его без повторной загрузки файла.
func TestAttachNote_RetryAfterStoreError(t *testing.T) {
	t.Parallel()

	b, _, stores := newTestBot()
	stores.travels.travels[1] = &model.Travel{ID: 1, Name: "Байкал"}
	b.pendingNotes[100] = pendingNote{fileID: "file-1", name: "Билеты"}

	user := &model.User{ID: 1, TelegramID: 100}
	cq := &tgbotapi.CallbackQuery{
		ID:      "cb-2",
		From:    &tgbotapi.User{ID: 100},
		Message: &tgbotapi.Message{MessageID: 5, Chat: &tgbotapi.Chat{ID: 100}},
		Data:    CallbackData{Kind: CallbackNoteAttach, ID: 1}.Encode(),
	}

	stores.notes.addErr = errors.New("база недоступна")
	b.attachNote(cq, user, 1)
	if len(stores.notes.notes) != 0 {
		t.Fatalf("заметок %d, ожидалось 0", len(stores.notes.notes))
	}
	if _, ok := b.pendingNotes[100]; !ok {
		t.Fatal("вложение должно пережить сбой записи")
	}

	stores.notes.addErr = nil
	b.attachNote(cq, user, 1)
	if len(stores.notes.notes) != 1 {
		t.Fatalf("заметок %d, ожидалась 1", len(stores.notes.notes))
	}
	if _, ok := b.pendingNotes[100]; ok {
		t.Fatal("вложение должно забыться после успешной записи")
	}
}

func TestHandleTravels_NoTravels(t *testing.T) {
	t.Parallel()

	b, tg, _ := newTestBot()
	user := &model.User{ID: 1, TelegramID: 100}

	b.handleTravels(textMessage(100, 100, "/travels"), user)

	if len(tg.sent) != 1 {
		t.Fatalf("отправлено %d сообщений, ожидалось 1", len(tg.sent))
	}
	msg, ok := tg.sent[0].(tgbotapi.MessageConfig)
	if !ok {
		t.Fatalf("сообщение %T, ожидался MessageConfig", tg.sent[0])
	}
	if msg.Text != msgNoTravels {
		t.Fatalf("text=%q", msg.Text)
	}
	if msg.ReplyMarkup != nil {
		t.Fatal("пустой список не должен рисовать клавиатуру")
	}
}

func TestHandleNoteUpload_NoTravels(t *testing.T) {
	t.Parallel()

	b, tg, _ := newTestBot()
	user := &model.User{ID: 1, TelegramID: 100}

	upload := textMessage(100, 100, "")
	upload.Photo = []tgbotapi.PhotoSize{{FileID: "photo-1"}}
	b.handleNoteUpload(upload, user)

	if len(b.pendingNotes) != 0 {
		t.Fatal("вложение не должно откладываться без путешествий")
	}
	msg, ok := tg.sent[0].(tgbotapi.MessageConfig)
	if !ok {
		t.Fatalf("сообщение %T, ожидался MessageConfig", tg.sent[0])
	}
	if msg.Text != msgNoTravels {
		t.Fatalf("text=%q", msg.Text)
	}
}
