package service

import (
	"errors"
	"testing"
	"time"

	"github.com/samylovma/travel-agent/internal/model"
	"github.com/samylovma/travel-agent/internal/repository"
)

func TestCreateTravel_DuplicateName(t *testing.T) {
	t.Parallel()

	users := newFakeUserStore()
	svc := NewTravelService(newFakeTravelStore(users), newFakeTokenStore())

	creatorID, _ := users.Create(&model.User{TelegramID: 100})

	first, err := svc.CreateTravel("Alps 2025", creatorID)
	if err != nil {
		t.Fatalf("CreateTravel: %v", err)
	}
	if first.Name != "Alps 2025" {
		t.Fatalf("name=%q", first.Name)
	}

	_, err = svc.CreateTravel("Alps 2025", creatorID)
	if !errors.Is(err, repository.ErrNameTaken) {
		t.Fatalf("err=%v, want ErrNameTaken", err)
	}
}

func TestCreateTravel_CreatorBecomesMember(t *testing.T) {
	t.Parallel()

	users := newFakeUserStore()
	svc := NewTravelService(newFakeTravelStore(users), newFakeTokenStore())

	creatorID, _ := users.Create(&model.User{TelegramID: 100})
	travel, err := svc.CreateTravel("Байкал", creatorID)
	if err != nil {
		t.Fatalf("CreateTravel: %v", err)
	}

	members, err := svc.Members(travel.ID)
	if err != nil {
		t.Fatalf("Members: %v", err)
	}
	if len(members) != 1 || members[0].ID != creatorID {
		t.Fatalf("members=%+v, want only creator %d", members, creatorID)
	}
}

func TestAcceptInvite_Idempotent(t *testing.T) {
	t.Parallel()

	users := newFakeUserStore()
	travels := newFakeTravelStore(users)
	svc := NewTravelService(travels, newFakeTokenStore())

	creatorID, _ := users.Create(&model.User{TelegramID: 100})
	guestID, _ := users.Create(&model.User{TelegramID: 200})
	travel, _ := svc.CreateTravel("Карелия", creatorID)

	token1, _ := svc.Invite(travel.ID)
	token2, _ := svc.Invite(travel.ID)

	if _, _, err := svc.AcceptInvite(token1, guestID); err != nil {
		t.Fatalf("AcceptInvite: %v", err)
	}
	// Повторный вход по той же и по другой действующей ссылке.
	if _, _, err := svc.AcceptInvite(token1, guestID); err != nil {
		t.Fatalf("AcceptInvite повтор: %v", err)
	}
	if _, _, err := svc.AcceptInvite(token2, guestID); err != nil {
		t.Fatalf("AcceptInvite по второй ссылке: %v", err)
	}

	if n := travels.memberCount(travel.ID); n != 2 {
		t.Fatalf("участников %d, ожидалось 2", n)
	}
}

func TestAcceptInvite_UnknownToken(t *testing.T) {
	t.Parallel()

	users := newFakeUserStore()
	svc := NewTravelService(newFakeTravelStore(users), newFakeTokenStore())

	_, _, err := svc.AcceptInvite("nope", 1)
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("err=%v, want ErrNotFound", err)
	}
}

func TestAcceptInvite_ExpiredToken(t *testing.T) {
	t.Parallel()

	users := newFakeUserStore()
	tokens := newFakeTokenStore()
	svc := NewTravelService(newFakeTravelStore(users), tokens)

	creatorID, _ := users.Create(&model.User{TelegramID: 100})
	travel, _ := svc.CreateTravel("Алтай", creatorID)
	token, _ := svc.Invite(travel.ID)

	// Внутри окна токен работает.
	now := time.Now()
	tokens.now = func() time.Time { return now.Add(23 * time.Hour) }
	if _, _, err := svc.AcceptInvite(token, creatorID); err != nil {
		t.Fatalf("AcceptInvite внутри окна: %v", err)
	}

	// Спустя 24 часа - нет.
	tokens.now = func() time.Time { return now.Add(25 * time.Hour) }
	_, _, err := svc.AcceptInvite(token, creatorID)
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("err=%v, want ErrNotFound после истечения", err)
	}
}

// Сценарий из жизни: создание, приглашение, вступление, повтор названия.
func TestTravelScenario(t *testing.T) {
	t.Parallel()

	users := newFakeUserStore()
	travels := newFakeTravelStore(users)
	svc := NewTravelService(travels, newFakeTokenStore())

	userA, _ := users.Create(&model.User{TelegramID: 1, FirstName: "A"})
	userB, _ := users.Create(&model.User{TelegramID: 2, FirstName: "B"})

	travel, err := svc.CreateTravel("Alps 2025", userA)
	if err != nil {
		t.Fatalf("CreateTravel: %v", err)
	}

	token, err := svc.Invite(travel.ID)
	if err != nil {
		t.Fatalf("Invite: %v", err)
	}

	joined, members, err := svc.AcceptInvite(token, userB)
	if err != nil {
		t.Fatalf("AcceptInvite: %v", err)
	}
	if joined.ID != travel.ID {
		t.Fatalf("joined=%d, want %d", joined.ID, travel.ID)
	}
	if len(members) != 2 {
		t.Fatalf("участников %d, ожидалось 2", len(members))
	}

	if _, err := svc.CreateTravel("Alps 2025", userA); !errors.Is(err, repository.ErrNameTaken) {
		t.Fatalf("err=%v, want ErrNameTaken", err)
	}
}
