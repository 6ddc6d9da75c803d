package bot

import "sync"

// Flow - тег многошагового диалога. Состояния (малые целые) приватны
// для своего диалога и между диалогами не переиспользуются.
type Flow string

const (
	FlowNewTravel   Flow = "newtravel"
	FlowTravelBio   Flow = "travel_bio"
	FlowAddLocation Flow = "add_location"
	FlowSettAge     Flow = "settings_age"
	FlowSettCountry Flow = "settings_country"
	FlowSettCity    Flow = "settings_city"
	FlowSettBio     Flow = "settings_bio"
)

// Состояния диалога создания путешествия.
const stateNewTravelName = 1

// Состояние диалогов с одним ответом (описание путешествия, настройки профиля).
const stateOneAnswer = 1

// Состояния диалога добавления точки маршрута.
const (
	stateLocationAddress = 1
	stateLocationPlace   = 2
	stateLocationStart   = 3
	stateLocationEnd     = 4
)

// Conversation - активный диалог одной пары (чат, пользователь):
// текущий шаг и черновые данные, накопленные предыдущими шагами.
type Conversation struct {
	Flow  Flow
	State int
	Data  map[string]any
}

type convKey struct {
	chatID int64
	userID int64
}

// ConversationManager ведет не более одного активного диалога на пару
// (чат, пользователь). Черновые данные живут только пока жив диалог
// и сносятся на терминальном переходе.
type ConversationManager struct {
	mu     sync.Mutex
	active map[convKey]*Conversation
}

// NewConversationManager создает новый менеджер диалогов.
func NewConversationManager() *ConversationManager {
	return &ConversationManager{active: make(map[convKey]*Conversation)}
}

// Start начинает диалог, перезаписывая предыдущий активный для этой пары.
func (m *ConversationManager) Start(chatID, userID int64, flow Flow, state int) *Conversation {
	m.mu.Lock()
	defer m.mu.Unlock()
	conv := &Conversation{Flow: flow, State: state, Data: make(map[string]any)}
	m.active[convKey{chatID, userID}] = conv
	return conv
}

// Get возвращает активный диалог пары, если он есть.
func (m *ConversationManager) Get(chatID, userID int64) (*Conversation, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	conv, ok := m.active[convKey{chatID, userID}]
	return conv, ok
}

// End завершает диалог и уничтожает его черновые данные.
func (m *ConversationManager) End(chatID, userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.active, convKey{chatID, userID})
}
