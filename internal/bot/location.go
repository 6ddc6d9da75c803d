package bot

import (
	"errors"
	"log"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/samylovma/travel-agent/internal/geo"
	"github.com/samylovma/travel-agent/internal/service"
)

// dateLayout - формат дат пребывания, ДД.ММ.ГГГГ.
const dateLayout = "02.01.2006"

func parseDate(text string) (time.Time, error) {
	return time.Parse(dateLayout, strings.TrimSpace(text))
}

// startAddLocation - вход в диалог добавления точки маршрута.
func (b *Bot) startAddLocation(cq *tgbotapi.CallbackQuery, travelID int64) {
	conv := b.conversations.Start(cq.Message.Chat.ID, cq.From.ID, FlowAddLocation, stateLocationAddress)
	conv.Data["travel_id"] = travelID
	b.answerCallback(cq, "")
	b.reply(cq.Message.Chat.ID, msgLocationAddress)
}

// addLocationText направляет текст в текущее состояние диалога.
// Текст в состоянии выбора места (там ожидается кнопка) отбрасывается.
func (b *Bot) addLocationText(msg *tgbotapi.Message, conv *Conversation) {
	switch conv.State {
	case stateLocationAddress:
		b.addLocationAddress(msg, conv)
	case stateLocationStart:
		b.addLocationStartAt(msg, conv)
	case stateLocationEnd:
		b.addLocationEndAt(msg, conv)
	}
}

// addLocationAddress геокодирует адрес и предлагает кандидатов кнопками.
// Присланная геопозиция минует геокодер: кандидат один, с её координатами.
func (b *Bot) addLocationAddress(msg *tgbotapi.Message, conv *Conversation) {
	var (
		places []geo.Place
		err    error
	)
	if msg.Location != nil {
		places = []geo.Place{{
			Name:    "Геопозиция",
			Address: "Отправленная геопозиция",
			Lat:     msg.Location.Latitude,
			Lon:     msg.Location.Longitude,
		}}
	} else {
		places, err = b.geocoder.Search(msg.Text)
		if err != nil {
			log.Printf("Ошибка геокодирования %q: %v", msg.Text, err)
			b.reply(msg.Chat.ID, msgSomethingWrong)
			return
		}
	}
	if len(places) == 0 {
		b.reply(msg.Chat.ID, msgPlacesNotFound)
		return
	}

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(places))
	for i, place := range places {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				place.Address,
				CallbackData{Kind: CallbackPlace, ID: int64(i)}.Encode(),
			),
		))
	}

	conv.Data["places"] = places
	conv.State = stateLocationPlace
	b.replyMarkup(msg.Chat.ID, msgPlaceChoice, tgbotapi.NewInlineKeyboardMarkup(rows...))
}

// addLocationPlace фиксирует выбранное место. Нажатие кнопки вне живого
// диалога (например, повтор старой) получает сообщение об устаревшем диалоге.
func (b *Bot) addLocationPlace(cq *tgbotapi.CallbackQuery, index int64) {
	b.answerCallback(cq, "")

	conv, ok := b.conversations.Get(cq.Message.Chat.ID, cq.From.ID)
	if !ok || conv.Flow != FlowAddLocation || conv.State != stateLocationPlace {
		b.reply(cq.Message.Chat.ID, msgConversationExpired)
		return
	}
	places, ok := conv.Data["places"].([]geo.Place)
	if !ok || index < 0 || index >= int64(len(places)) {
		b.conversations.End(cq.Message.Chat.ID, cq.From.ID)
		b.reply(cq.Message.Chat.ID, msgConversationExpired)
		return
	}

	conv.Data["place"] = places[index]
	conv.State = stateLocationStart
	b.editText(cq.Message.Chat.ID, cq.Message.MessageID, msgStartAtPrompt)
}

// addLocationStartAt - шаг с датой начала пребывания.
func (b *Bot) addLocationStartAt(msg *tgbotapi.Message, conv *Conversation) {
	startAt, err := parseDate(msg.Text)
	if err != nil {
		b.reply(msg.Chat.ID, msgBadDate)
		return
	}
	conv.Data["start_at"] = startAt
	conv.State = stateLocationEnd
	b.reply(msg.Chat.ID, msgEndAtPrompt)
}

// addLocationEndAt - шаг с датой конца. Дата раньше начала переспрашивается,
// уже выбранные место и дата начала при этом сохраняются.
func (b *Bot) addLocationEndAt(msg *tgbotapi.Message, conv *Conversation) {
	endAt, err := parseDate(msg.Text)
	if err != nil {
		b.reply(msg.Chat.ID, msgBadDate)
		return
	}

	travelID, okTravel := conv.Data["travel_id"].(int64)
	place, okPlace := conv.Data["place"].(geo.Place)
	startAt, okStart := conv.Data["start_at"].(time.Time)
	if !okTravel || !okPlace || !okStart {
		b.conversations.End(msg.Chat.ID, msg.From.ID)
		b.reply(msg.Chat.ID, msgConversationExpired)
		return
	}

	_, err = b.locations.AddLocation(travelID, place.Name, place.Lat, place.Lon, startAt, endAt)
	if err != nil {
		if errors.Is(err, service.ErrEndBeforeStart) {
			b.reply(msg.Chat.ID, msgEndBeforeStart)
			return
		}
		log.Printf("Не удалось сохранить точку маршрута: %v", err)
		b.reply(msg.Chat.ID, msgSomethingWrong)
		return
	}

	b.conversations.End(msg.Chat.ID, msg.From.ID)
	b.showTravelMenu(msg.Chat.ID, travelID)
}
