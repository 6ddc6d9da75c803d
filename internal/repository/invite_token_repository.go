package repository

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"time"

	badger "github.com/dgraph-io/badger/v4"
)

// inviteTokenTTL - время жизни пригласительной ссылки.
const inviteTokenTTL = 24 * time.Hour

// inviteTokenBytes - энтропия токена до base64url-кодирования.
const inviteTokenBytes = 6

// InviteTokenRepository хранит пригласительные токены во встраиваемом
// key-value хранилище. Токен - случайная строка, значение - ID путешествия.
// Записи истекают сами по TTL; токен не гасится при использовании.
type InviteTokenRepository struct {
	db *badger.DB
}

// NewInviteTokenRepository создает репозиторий токенов поверх открытой базы badger.
func NewInviteTokenRepository(db *badger.DB) *InviteTokenRepository {
	return &InviteTokenRepository{db: db}
}

// Create выпускает новый токен для путешествия и сохраняет его на 24 часа.
// Токены не проверяются на коллизии: 6 случайных байт делают их практически невозможными.
func (r *InviteTokenRepository) Create(travelID int64) (string, error) {
	buf := make([]byte, inviteTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("не удалось сгенерировать токен: %w", err)
	}
	token := base64.RawURLEncoding.EncodeToString(buf)

	err := r.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(token), []byte(strconv.FormatInt(travelID, 10))).
			WithTTL(inviteTokenTTL)
		return txn.SetEntry(entry)
	})
	if err != nil {
		return "", fmt.Errorf("не удалось сохранить токен: %w", err)
	}
	return token, nil
}

// GetTravelID возвращает ID путешествия по токену.
// Для неизвестного или истекшего токена возвращает ErrNotFound.
func (r *InviteTokenRepository) GetTravelID(token string) (int64, error) {
	var travelID int64
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(token))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			travelID, err = strconv.ParseInt(string(val), 10, 64)
			return err
		})
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("ошибка при поиске токена: %w", err)
	}
	return travelID, nil
}
