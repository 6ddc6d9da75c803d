package bot

import (
	"html"
	"log"
	"strconv"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/samylovma/travel-agent/internal/geo"
	"github.com/samylovma/travel-agent/internal/model"
	"github.com/samylovma/travel-agent/internal/service"
)

// telegramAPI - часть Telegram Bot API, нужная обработчикам.
type telegramAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
}

// pendingNote - загруженное вложение, ждущее выбора путешествия.
type pendingNote struct {
	fileID string
	name   string
}

// Bot связывает Telegram-транспорт с сервисами приложения.
// Обновления обрабатываются по одному, поэтому внутренней блокировки
// для диалогов не требуется; мьютексы защищают состояние на случай
// конкурентной доставки из нескольких чатов.
type Bot struct {
	api      telegramAPI
	username string

	auth      *service.AuthService
	users     *service.UserService
	travels   *service.TravelService
	locations *service.LocationService
	notes     *service.NoteService

	geocoder *geo.Geocoder
	router   *geo.Router

	conversations *ConversationManager

	mu           sync.Mutex
	pendingNotes map[int64]pendingNote // TelegramID -> вложение
}

// New создает бота поверх готового Telegram API-клиента и сервисов.
func New(
	api *tgbotapi.BotAPI,
	auth *service.AuthService,
	users *service.UserService,
	travels *service.TravelService,
	locations *service.LocationService,
	notes *service.NoteService,
	geocoder *geo.Geocoder,
	router *geo.Router,
) *Bot {
	return &Bot{
		api:           api,
		username:      api.Self.UserName,
		auth:          auth,
		users:         users,
		travels:       travels,
		locations:     locations,
		notes:         notes,
		geocoder:      geocoder,
		router:        router,
		conversations: NewConversationManager(),
		pendingNotes:  make(map[int64]pendingNote),
	}
}

// Run запускает long polling и обрабатывает обновления до закрытия канала.
func (b *Bot) Run() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	log.Printf("Запущен бот %s", b.username)

	for update := range updates {
		b.handleUpdate(update)
	}
}

func (b *Bot) handleUpdate(update tgbotapi.Update) {
	if cq := update.CallbackQuery; cq != nil {
		b.handleCallbackQuery(cq)
		return
	}
	if update.Message == nil {
		return
	}
	msg := update.Message

	// Неявная регистрация отправителя на границе каждого обновления.
	user, err := b.auth.AuthUser(msg.From.ID, msg.From.UserName, msg.From.FirstName, msg.From.LastName)
	if err != nil {
		log.Printf("Ошибка авторизации пользователя %d: %v", msg.From.ID, err)
		b.reply(msg.Chat.ID, msgSomethingWrong)
		return
	}

	if msg.IsCommand() {
		b.handleCommand(msg, user)
		return
	}
	if len(msg.Photo) > 0 || msg.Document != nil {
		b.handleNoteUpload(msg, user)
		return
	}
	b.handleText(msg, user)
}

func (b *Bot) handleCommand(msg *tgbotapi.Message, user *model.User) {
	switch msg.Command() {
	case "start":
		b.handleStart(msg, user)
	case "help":
		b.reply(msg.Chat.ID, msgHelp)
	case "settings":
		b.sendSettingsMenu(msg.Chat.ID, user)
	case "travels":
		b.handleTravels(msg, user)
	case "newtravel":
		b.startNewTravel(msg, user)
	}
}

// handleText направляет свободный текст в активный диалог пары (чат, пользователь).
// Текст вне диалога молча игнорируется: обработчики на него не подписаны.
func (b *Bot) handleText(msg *tgbotapi.Message, user *model.User) {
	conv, ok := b.conversations.Get(msg.Chat.ID, msg.From.ID)
	if !ok {
		return
	}
	if !conversationAccepts(conv, msg) {
		return
	}

	switch conv.Flow {
	case FlowNewTravel:
		b.newTravelName(msg, user, conv)
	case FlowTravelBio:
		b.travelBioAnswer(msg, conv)
	case FlowAddLocation:
		b.addLocationText(msg, conv)
	case FlowSettAge, FlowSettCountry, FlowSettCity, FlowSettBio:
		b.settingsAnswer(msg, user, conv)
	}
}

func (b *Bot) handleCallbackQuery(cq *tgbotapi.CallbackQuery) {
	// Для слишком старых сообщений Telegram не передает Message вовсе.
	if cq.Message == nil {
		b.answerCallback(cq, msgConversationExpired)
		return
	}

	user, err := b.auth.AuthUser(cq.From.ID, cq.From.UserName, cq.From.FirstName, cq.From.LastName)
	if err != nil {
		log.Printf("Ошибка авторизации пользователя %d: %v", cq.From.ID, err)
		b.answerCallback(cq, "")
		return
	}

	data, err := DecodeCallbackData(cq.Data)
	if err != nil {
		log.Printf("Некорректная кнопка от пользователя %d: %q", cq.From.ID, cq.Data)
		b.answerCallback(cq, "")
		return
	}

	switch data.Kind {
	case CallbackTravel:
		b.answerCallback(cq, "")
		b.showTravelMenu(cq.Message.Chat.ID, data.ID)
	case CallbackTravelBio:
		b.startTravelBio(cq, data.ID)
	case CallbackNewLocation:
		b.startAddLocation(cq, data.ID)
	case CallbackPlace:
		b.addLocationPlace(cq, data.ID)
	case CallbackNoteList:
		b.showNoteList(cq, user, data.ID)
	case CallbackNote:
		b.showNote(cq, data.ID)
	case CallbackNoteAttach:
		b.attachNote(cq, user, data.ID)
	case CallbackNotePublic:
		b.publishNote(cq, data.ID)
	case CallbackBuildRoute:
		b.buildRoute(cq, user, data.ID)
	case CallbackSettingsAge, CallbackSettingsCountry, CallbackSettingsCity, CallbackSettingsBio:
		b.startSettingsFlow(cq, data.Kind)
	case CallbackSettingsSex:
		b.showSexMenu(cq)
	case CallbackSettingsSexMale:
		b.setSex(cq, user, model.SexMale)
	case CallbackSettingsSexFem:
		b.setSex(cq, user, model.SexFemale)
	case CallbackSettingsBack:
		b.backToSettingsMenu(cq, user)
	default:
		b.answerCallback(cq, "")
	}
}

// reply отправляет текстовое сообщение с HTML-разметкой.
func (b *Bot) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Не удалось отправить сообщение в чат %d: %v", chatID, err)
	}
}

// replyMarkup отправляет текст с inline-клавиатурой.
func (b *Bot) replyMarkup(chatID int64, text string, markup tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = markup
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Не удалось отправить сообщение в чат %d: %v", chatID, err)
	}
}

// editText переписывает текст существующего сообщения, убирая клавиатуру.
func (b *Bot) editText(chatID int64, messageID int, text string) {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	edit.ParseMode = tgbotapi.ModeHTML
	if _, err := b.api.Send(edit); err != nil {
		log.Printf("Не удалось отредактировать сообщение %d в чате %d: %v", messageID, chatID, err)
	}
}

// editMarkup переписывает текст и клавиатуру существующего сообщения.
func (b *Bot) editMarkup(chatID int64, messageID int, text string, markup tgbotapi.InlineKeyboardMarkup) {
	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, markup)
	edit.ParseMode = tgbotapi.ModeHTML
	if _, err := b.api.Send(edit); err != nil {
		log.Printf("Не удалось отредактировать сообщение %d в чате %d: %v", messageID, chatID, err)
	}
}

// answerCallback подтверждает нажатие кнопки (с необязательным тостом).
func (b *Bot) answerCallback(cq *tgbotapi.CallbackQuery, text string) {
	if _, err := b.api.Request(tgbotapi.NewCallback(cq.ID, text)); err != nil {
		log.Printf("Не удалось ответить на callback %s: %v", cq.ID, err)
	}
}

// conversationAccepts сообщает, подходит ли сообщение текущему шагу диалога.
// Все шаги ждут текст; стикеры, голосовые и прочие сообщения без него
// отбрасываются. Единственное исключение - геопозиция на шаге адреса.
func conversationAccepts(conv *Conversation, msg *tgbotapi.Message) bool {
	if msg.Text != "" {
		return true
	}
	return conv.Flow == FlowAddLocation && conv.State == stateLocationAddress && msg.Location != nil
}

// mentionHTML строит HTML-упоминание пользователя.
func mentionHTML(telegramID int64, name string) string {
	return `<a href="tg://user?id=` + strconv.FormatInt(telegramID, 10) + `">` + html.EscapeString(name) + `</a>`
}

// displayName возвращает имя пользователя для упоминаний и уведомлений.
func displayName(user *model.User) string {
	if user.FirstName != "" {
		return user.FirstName
	}
	if user.Username != "" {
		return "@" + user.Username
	}
	return strconv.FormatInt(user.TelegramID, 10)
}
