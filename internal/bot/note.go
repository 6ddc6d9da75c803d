package bot

import (
	"errors"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/samylovma/travel-agent/internal/model"
	"github.com/samylovma/travel-agent/internal/repository"
)

// handleNoteUpload принимает фото или документ и предлагает выбрать
// путешествие, к которому прикрепить заметку. Само вложение до выбора
// живет в памяти процесса.
func (b *Bot) handleNoteUpload(msg *tgbotapi.Message, user *model.User) {
	var fileID string
	if len(msg.Photo) > 0 {
		fileID = msg.Photo[len(msg.Photo)-1].FileID
	}
	if msg.Document != nil {
		fileID = msg.Document.FileID
	}
	if fileID == "" {
		return
	}

	name := msg.Caption
	if name == "" {
		name = "Без названия"
	}

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

	b.mu.Lock()
	b.pendingNotes[msg.From.ID] = pendingNote{fileID: fileID, name: name}
	b.mu.Unlock()

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(travels))
	for _, travel := range travels {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("«%s»", travel.Name),
				CallbackData{Kind: CallbackNoteAttach, ID: travel.ID}.Encode(),
			),
		))
	}
	b.replyMarkup(msg.Chat.ID, msgNoteTravel, tgbotapi.NewInlineKeyboardMarkup(rows...))
}

// attachNote прикрепляет отложенное вложение к выбранному путешествию.
// Повтор старой кнопки, когда вложения уже нет, получает сообщение
// об устаревшем диалоге. Вложение забывается только после успешной
// записи: при сбое пользователь может нажать кнопку еще раз.
func (b *Bot) attachNote(cq *tgbotapi.CallbackQuery, user *model.User, travelID int64) {
	b.answerCallback(cq, "")

	b.mu.Lock()
	pending, ok := b.pendingNotes[cq.From.ID]
	b.mu.Unlock()
	if !ok {
		b.reply(cq.Message.Chat.ID, msgConversationExpired)
		return
	}

	note, err := b.notes.Attach(pending.fileID, pending.name, user.ID, travelID)
	if err != nil {
		log.Printf("Не удалось сохранить заметку: %v", err)
		b.reply(cq.Message.Chat.ID, msgSomethingWrong)
		return
	}

	b.mu.Lock()
	delete(b.pendingNotes, cq.From.ID)
	b.mu.Unlock()

	travel, err := b.travels.GetTravel(travelID)
	if err != nil {
		log.Printf("Не удалось получить путешествие %d: %v", travelID, err)
		b.reply(cq.Message.Chat.ID, msgSomethingWrong)
		return
	}

	markup := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(
			"Сделать заметку публичной", CallbackData{Kind: CallbackNotePublic, ID: note.ID}.Encode(),
		)),
	)
	b.editMarkup(cq.Message.Chat.ID, cq.Message.MessageID, fmt.Sprintf(msgNoteAttached, travel.Name), markup)
}

// publishNote делает заметку видимой всем участникам путешествия.
func (b *Bot) publishNote(cq *tgbotapi.CallbackQuery, noteID int64) {
	if err := b.notes.Publish(noteID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			b.answerCallback(cq, "")
			b.reply(cq.Message.Chat.ID, msgNotFound)
			return
		}
		log.Printf("Не удалось опубликовать заметку %d: %v", noteID, err)
		b.answerCallback(cq, "")
		b.reply(cq.Message.Chat.ID, msgSomethingWrong)
		return
	}

	b.answerCallback(cq, msgNotePublished)
	del := tgbotapi.NewDeleteMessage(cq.Message.Chat.ID, cq.Message.MessageID)
	if _, err := b.api.Request(del); err != nil {
		log.Printf("Не удалось удалить сообщение %d: %v", cq.Message.MessageID, err)
	}
}

// showNoteList перерисовывает сообщение в список заметок путешествия,
// видимых пользователю: публичных и его собственных.
func (b *Bot) showNoteList(cq *tgbotapi.CallbackQuery, user *model.User, travelID int64) {
	b.answerCallback(cq, "")

	travel, err := b.travels.GetTravel(travelID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			b.reply(cq.Message.Chat.ID, msgNotFound)
			return
		}
		log.Printf("Не удалось получить путешествие %d: %v", travelID, err)
		b.reply(cq.Message.Chat.ID, msgSomethingWrong)
		return
	}
	notes, err := b.notes.VisibleNotes(travelID, user.ID)
	if err != nil {
		log.Printf("Не удалось получить заметки путешествия %d: %v", travelID, err)
		b.reply(cq.Message.Chat.ID, msgSomethingWrong)
		return
	}

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(notes)+1)
	for _, note := range notes {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("«%s»", note.Name),
				CallbackData{Kind: CallbackNote, ID: note.ID}.Encode(),
			),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(
			"<< К путешествию", CallbackData{Kind: CallbackTravel, ID: travelID}.Encode(),
		),
	))

	b.editMarkup(cq.Message.Chat.ID, cq.Message.MessageID,
		fmt.Sprintf(msgNoteList, travel.Name), tgbotapi.NewInlineKeyboardMarkup(rows...))
}

// showNote отправляет вложение заметки. Сначала пробуем как фото; если
// Telegram отвергает идентификатор (вложение было документом), шлем документом.
func (b *Bot) showNote(cq *tgbotapi.CallbackQuery, noteID int64) {
	b.answerCallback(cq, "")

	note, err := b.notes.GetNote(noteID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			b.reply(cq.Message.Chat.ID, msgNotFound)
			return
		}
		log.Printf("Не удалось получить заметку %d: %v", noteID, err)
		b.reply(cq.Message.Chat.ID, msgSomethingWrong)
		return
	}

	photo := tgbotapi.NewPhoto(cq.Message.Chat.ID, tgbotapi.FileID(note.FileID))
	photo.Caption = note.Name
	if _, err := b.api.Send(photo); err != nil {
		doc := tgbotapi.NewDocument(cq.Message.Chat.ID, tgbotapi.FileID(note.FileID))
		doc.Caption = note.Name
		if _, err := b.api.Send(doc); err != nil {
			log.Printf("Не удалось отправить заметку %d: %v", noteID, err)
			b.reply(cq.Message.Chat.ID, msgSomethingWrong)
		}
	}
}
