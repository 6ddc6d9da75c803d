package service

import "testing"

func TestNoteVisibility(t *testing.T) {
	t.Parallel()

	svc := NewNoteService(newFakeNoteStore())

	const (
		uploader = int64(1)
		other    = int64(2)
		travelID = int64(10)
	)

	note, err := svc.Attach("file-abc", "Билеты", uploader, travelID)
	if err != nil {
		t.Fatalf("Attach: %v", err)
	}
	if !note.IsPrivate {
		t.Fatal("новая заметка должна быть приватной")
	}

	// Приватную заметку видит только загрузивший.
	visible, _ := svc.VisibleNotes(travelID, uploader)
	if len(visible) != 1 {
		t.Fatalf("загрузивший видит %d заметок, ожидалась 1", len(visible))
	}
	visible, _ = svc.VisibleNotes(travelID, other)
	if len(visible) != 0 {
		t.Fatalf("посторонний видит %d заметок, ожидалось 0", len(visible))
	}

	// После публикации заметка видна всем участникам.
	if err := svc.Publish(note.ID); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	visible, _ = svc.VisibleNotes(travelID, other)
	if len(visible) != 1 {
		t.Fatalf("после публикации видно %d заметок, ожидалась 1", len(visible))
	}
}
