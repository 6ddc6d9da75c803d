package bot

import (
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/samylovma/travel-agent/internal/geo"
	"github.com/samylovma/travel-agent/internal/model"
)

// buildRoute строит автомобильный маршрут по точкам путешествия (в порядке
// дат начала пребывания) и отправляет его картинкой. Если в профиле
// пользователя указаны страна и город, они становятся стартовой точкой.
func (b *Bot) buildRoute(cq *tgbotapi.CallbackQuery, user *model.User, travelID int64) {
	b.answerCallback(cq, "")
	chatID := cq.Message.Chat.ID

	locations, err := b.locations.TravelLocations(travelID)
	if err != nil {
		log.Printf("Не удалось получить точки путешествия %d: %v", travelID, err)
		b.reply(chatID, msgSomethingWrong)
		return
	}
	if len(locations) == 0 {
		b.reply(chatID, msgNoLocations)
		return
	}

	points := make([]geo.Point, 0, len(locations)+1)
	if user.Country != nil && user.City != nil {
		places, err := b.geocoder.Search(*user.Country + ", " + *user.City)
		if err != nil {
			log.Printf("Не удалось геокодировать город пользователя %d: %v", user.ID, err)
		} else if len(places) > 0 {
			points = append(points, geo.Point{Lat: places[0].Lat, Lon: places[0].Lon})
		}
	}
	for _, location := range locations {
		points = append(points, geo.Point{Lat: location.Lat, Lon: location.Lon})
	}

	route := points
	if len(points) >= 2 {
		route, err = b.router.CarRoute(points...)
		if err != nil {
			log.Printf("Не удалось построить маршрут путешествия %d: %v", travelID, err)
			b.reply(chatID, msgSomethingWrong)
			return
		}
	}

	action := tgbotapi.NewChatAction(chatID, tgbotapi.ChatUploadPhoto)
	if _, err := b.api.Request(action); err != nil {
		log.Printf("Не удалось отправить chat action в чат %d: %v", chatID, err)
	}

	image, err := geo.RenderRouteMap(route, points)
	if err != nil {
		log.Printf("Не удалось отрисовать карту путешествия %d: %v", travelID, err)
		b.reply(chatID, msgSomethingWrong)
		return
	}

	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: "route.png", Bytes: image})
	if _, err := b.api.Send(photo); err != nil {
		log.Printf("Не удалось отправить карту в чат %d: %v", chatID, err)
	}
}
