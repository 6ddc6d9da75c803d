package service

import (
	"github.com/samylovma/travel-agent/internal/model"
)

// NoteStore описывает операции над заметками.
type NoteStore interface {
	Add(note *model.Note) (int64, error)
	GetByID(id int64) (*model.Note, error)
	ListVisible(travelID, userID int64) ([]model.Note, error)
	MakePublic(id int64) error
}

// NoteService содержит бизнес-логику заметок путешествий.
type NoteService struct {
	notes NoteStore
}

// NewNoteService создает новый сервис заметок.
func NewNoteService(notes NoteStore) *NoteService {
	return &NoteService{notes: notes}
}

// Attach прикрепляет вложение к путешествию как приватную заметку.
func (s *NoteService) Attach(fileID, name string, userID, travelID int64) (*model.Note, error) {
	note := &model.Note{
		UserID:    userID,
		TravelID:  travelID,
		FileID:    fileID,
		Name:      name,
		IsPrivate: true,
	}
	id, err := s.notes.Add(note)
	if err != nil {
		return nil, err
	}
	note.ID = id
	return note, nil
}

// Publish делает заметку видимой всем участникам путешествия.
func (s *NoteService) Publish(noteID int64) error {
	return s.notes.MakePublic(noteID)
}

// GetNote возвращает заметку по идентификатору.
func (s *NoteService) GetNote(noteID int64) (*model.Note, error) {
	return s.notes.GetByID(noteID)
}

// VisibleNotes возвращает заметки путешествия, видимые данному пользователю.
func (s *NoteService) VisibleNotes(travelID, userID int64) ([]model.Note, error) {
	return s.notes.ListVisible(travelID, userID)
}
