package bot

import (
	"errors"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/samylovma/travel-agent/internal/model"
	"github.com/samylovma/travel-agent/internal/repository"
)

// handleTravels показывает список путешествий пользователя колонкой кнопок.
func (b *Bot) handleTravels(msg *tgbotapi.Message, user *model.User) {
	travels, err := b.travels.UserTravels(user.ID)
	if err != nil {
		log.Printf("Не удалось получить путешествия пользователя %d: %v", user.ID, err)
		b.reply(msg.Chat.ID, msgSomethingWrong)
		return
	}
	if len(travels) == 0 {
		b.reply(msg.Chat.ID, msgNoTravels)
		return
	}

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(travels))
	for _, travel := range travels {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("«%s» № %d", travel.Name, travel.ID),
				CallbackData{Kind: CallbackTravel, ID: travel.ID}.Encode(),
			),
		))
	}
	b.replyMarkup(msg.Chat.ID, msgTravelList, tgbotapi.NewInlineKeyboardMarkup(rows...))
}

// startNewTravel - вход в диалог создания путешествия.
func (b *Bot) startNewTravel(msg *tgbotapi.Message, _ *model.User) {
	b.conversations.Start(msg.Chat.ID, msg.From.ID, FlowNewTravel, stateNewTravelName)
	b.reply(msg.Chat.ID, msgNewTravelName)
}

// newTravelName - шаг с названием. Занятое название переспрашивается
// в том же состоянии, число попыток не ограничено.
func (b *Bot) newTravelName(msg *tgbotapi.Message, user *model.User, _ *Conversation) {
	travel, err := b.travels.CreateTravel(msg.Text, user.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNameTaken) {
			b.reply(msg.Chat.ID, msgNameTaken)
			return
		}
		log.Printf("Не удалось создать путешествие: %v", err)
		b.reply(msg.Chat.ID, msgSomethingWrong)
		return
	}

	b.conversations.End(msg.Chat.ID, msg.From.ID)
	b.showTravelMenu(msg.Chat.ID, travel.ID)
}

// showTravelMenu отправляет меню путешествия. Пригласительный токен
// выпускается при каждой отрисовке меню и живет ~24 часа.
func (b *Bot) showTravelMenu(chatID, travelID int64) {
	travel, err := b.travels.GetTravel(travelID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			b.reply(chatID, msgNotFound)
			return
		}
		log.Printf("Не удалось получить путешествие %d: %v", travelID, err)
		b.reply(chatID, msgSomethingWrong)
		return
	}

	token, err := b.travels.Invite(travel.ID)
	if err != nil {
		log.Printf("Не удалось выпустить приглашение для путешествия %d: %v", travel.ID, err)
		b.reply(chatID, msgSomethingWrong)
		return
	}
	inviteURL := "tg://msg_url?url=https://t.me/" + b.username + "?start=" + token

	text := fmt.Sprintf(
		"<b>Путешествие «%s» № %d</b>\n"+
			"<b>Описание:</b> «%s».\n\n"+
			"Кнопка «Пригласить друга» предложит тебе отправить ссылку-приглашение "+
			"путникам, с которыми ты хочешь отправиться в путешествие. "+
			"Ссылка действует ~ 24 часа с момента отправки этого сообщения.",
		travel.Name, travel.ID, travel.Bio,
	)
	markup := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(
			"Изменить описание", CallbackData{Kind: CallbackTravelBio, ID: travel.ID}.Encode(),
		)),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonURL(
			"Пригласить друга", inviteURL,
		)),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(
			"Добавить локацию", CallbackData{Kind: CallbackNewLocation, ID: travel.ID}.Encode(),
		)),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(
			"Заметки", CallbackData{Kind: CallbackNoteList, ID: travel.ID}.Encode(),
		)),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(
			"Построить маршрут", CallbackData{Kind: CallbackBuildRoute, ID: travel.ID}.Encode(),
		)),
	)
	b.replyMarkup(chatID, text, markup)
}

// startTravelBio - вход в диалог смены описания (по кнопке меню путешествия).
func (b *Bot) startTravelBio(cq *tgbotapi.CallbackQuery, travelID int64) {
	conv := b.conversations.Start(cq.Message.Chat.ID, cq.From.ID, FlowTravelBio, stateOneAnswer)
	conv.Data["travel_id"] = travelID
	b.answerCallback(cq, "")
	b.reply(cq.Message.Chat.ID, msgTravelBioPrompt)
}

// travelBioAnswer - единственный шаг диалога: текст становится новым описанием.
func (b *Bot) travelBioAnswer(msg *tgbotapi.Message, conv *Conversation) {
	travelID, ok := conv.Data["travel_id"].(int64)
	if !ok {
		b.conversations.End(msg.Chat.ID, msg.From.ID)
		b.reply(msg.Chat.ID, msgConversationExpired)
		return
	}

	if err := b.travels.ChangeBio(travelID, msg.Text); err != nil {
		log.Printf("Не удалось обновить описание путешествия %d: %v", travelID, err)
		b.reply(msg.Chat.ID, msgSomethingWrong)
		return
	}

	b.conversations.End(msg.Chat.ID, msg.From.ID)
	b.showTravelMenu(msg.Chat.ID, travelID)
}
