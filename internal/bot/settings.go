package bot

import (
	"html"
	"log"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/samylovma/travel-agent/internal/model"
)

// settingsMenuText строит текст меню настроек с текущими значениями профиля.
func settingsMenuText(user *model.User) string {
	var sb strings.Builder
	sb.WriteString(msgSettingsMenu)

	writeLine := func(label, value string) {
		sb.WriteString("\n")
		sb.WriteString(label)
		sb.WriteString(": ")
		sb.WriteString(html.EscapeString(value))
	}
	if user.Age != nil {
		writeLine("Возраст", strconv.Itoa(*user.Age))
	}
	if user.Sex != nil {
		switch *user.Sex {
		case model.SexMale:
			writeLine("Пол", "мужской")
		case model.SexFemale:
			writeLine("Пол", "женский")
		}
	}
	if user.Country != nil {
		writeLine("Страна", *user.Country)
	}
	if user.City != nil {
		writeLine("Город", *user.City)
	}
	if user.Bio != nil {
		writeLine("О себе", *user.Bio)
	}
	return sb.String()
}

func settingsMarkup() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(
			"Указать возраст", CallbackData{Kind: CallbackSettingsAge}.Encode(),
		)),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(
			"Добавить пол", CallbackData{Kind: CallbackSettingsSex}.Encode(),
		)),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(
			"Указать страну", CallbackData{Kind: CallbackSettingsCountry}.Encode(),
		)),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(
			"Указать город", CallbackData{Kind: CallbackSettingsCity}.Encode(),
		)),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(
			"Рассказать о себе", CallbackData{Kind: CallbackSettingsBio}.Encode(),
		)),
	)
}

// sendSettingsMenu отправляет меню настроек новым сообщением.
func (b *Bot) sendSettingsMenu(chatID int64, user *model.User) {
	b.replyMarkup(chatID, settingsMenuText(user), settingsMarkup())
}

// startSettingsFlow - вход в диалог настройки одного поля профиля.
func (b *Bot) startSettingsFlow(cq *tgbotapi.CallbackQuery, kind CallbackKind) {
	var (
		flow   Flow
		prompt string
	)
	switch kind {
	case CallbackSettingsAge:
		flow, prompt = FlowSettAge, msgAgePrompt
	case CallbackSettingsCountry:
		flow, prompt = FlowSettCountry, msgCountryPrompt
	case CallbackSettingsCity:
		flow, prompt = FlowSettCity, msgCityPrompt
	case CallbackSettingsBio:
		flow, prompt = FlowSettBio, msgBioPrompt
	default:
		b.answerCallback(cq, "")
		return
	}

	b.conversations.Start(cq.Message.Chat.ID, cq.From.ID, flow, stateOneAnswer)
	b.answerCallback(cq, "")
	b.reply(cq.Message.Chat.ID, prompt)
}

// settingsAnswer - единственный шаг диалогов настроек: ответ применяется
// к профилю. Нечисловой возраст переспрашивается в том же состоянии,
// ничего не записывая.
func (b *Bot) settingsAnswer(msg *tgbotapi.Message, user *model.User, conv *Conversation) {
	var err error
	switch conv.Flow {
	case FlowSettAge:
		age, parseErr := strconv.Atoi(strings.TrimSpace(msg.Text))
		if parseErr != nil {
			b.reply(msg.Chat.ID, msgBadNumber)
			return
		}
		err = b.users.SetAge(user.ID, age)
	case FlowSettCountry:
		err = b.users.SetCountry(user.ID, msg.Text)
	case FlowSettCity:
		err = b.users.SetCity(user.ID, msg.Text)
	case FlowSettBio:
		err = b.users.SetBio(user.ID, msg.Text)
	}
	if err != nil {
		log.Printf("Не удалось обновить профиль пользователя %d: %v", user.ID, err)
		b.reply(msg.Chat.ID, msgSomethingWrong)
		return
	}

	b.conversations.End(msg.Chat.ID, msg.From.ID)
	b.reply(msg.Chat.ID, msgSaved)

	updated, err := b.users.GetByID(user.ID)
	if err != nil {
		log.Printf("Не удалось перечитать пользователя %d: %v", user.ID, err)
		updated = user
	}
	b.sendSettingsMenu(msg.Chat.ID, updated)
}

// showSexMenu перерисовывает сообщение в подменю выбора пола.
// Выбор - чисто кнопочный, свободный текст здесь не ожидается.
func (b *Bot) showSexMenu(cq *tgbotapi.CallbackQuery) {
	markup := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(
			"Мужской", CallbackData{Kind: CallbackSettingsSexMale}.Encode(),
		)),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(
			"Женский", CallbackData{Kind: CallbackSettingsSexFem}.Encode(),
		)),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(
			"Назад", CallbackData{Kind: CallbackSettingsBack}.Encode(),
		)),
	)
	b.answerCallback(cq, "")
	b.editMarkup(cq.Message.Chat.ID, cq.Message.MessageID, msgSexPrompt, markup)
}

// setSex записывает пол и возвращает пользователя в меню настроек.
func (b *Bot) setSex(cq *tgbotapi.CallbackQuery, user *model.User, sex string) {
	if err := b.users.SetSex(user.ID, sex); err != nil {
		log.Printf("Не удалось обновить профиль пользователя %d: %v", user.ID, err)
		b.answerCallback(cq, "")
		b.reply(cq.Message.Chat.ID, msgSomethingWrong)
		return
	}
	user.Sex = &sex
	b.backToSettingsMenu(cq, user)
}

// backToSettingsMenu перерисовывает родительское меню настроек, ничего не меняя.
func (b *Bot) backToSettingsMenu(cq *tgbotapi.CallbackQuery, user *model.User) {
	b.answerCallback(cq, "")
	b.editMarkup(cq.Message.Chat.ID, cq.Message.MessageID, settingsMenuText(user), settingsMarkup())
}
