package bot

import (
	"errors"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/samylovma/travel-agent/internal/model"
	"github.com/samylovma/travel-agent/internal/repository"
)

// handleStart обрабатывает /start. Если команда пришла по пригласительной
// ссылке, ее аргумент - токен: пользователь принимается в путешествие, а
// участники получают уведомления. Негодный токен молча приводит к обычному
// приветствию.
func (b *Bot) handleStart(msg *tgbotapi.Message, user *model.User) {
	if token := msg.CommandArguments(); token != "" {
		if b.acceptInvite(msg.Chat.ID, user, token) {
			return
		}
	}
	b.reply(msg.Chat.ID, msgWelcome)
}

// acceptInvite возвращает true, если токен сработал и пользователь принят.
func (b *Bot) acceptInvite(chatID int64, user *model.User, token string) bool {
	travel, members, err := b.travels.AcceptInvite(token, user.ID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			log.Printf("Не удалось принять приглашение пользователя %d: %v", user.TelegramID, err)
			b.reply(chatID, msgSomethingWrong)
			return true
		}
		return false
	}

	// Рассылка best-effort: недоставленное уведомление не откатывает вступление.
	mention := mentionHTML(user.TelegramID, displayName(user))
	for _, member := range members {
		if member.ID == user.ID {
			b.reply(member.TelegramID, fmt.Sprintf(msgInvited, travel.Name))
			continue
		}
		b.reply(member.TelegramID, fmt.Sprintf(msgNewMember, travel.Name, mention))
	}
	return true
}
