package repository

import "errors"

var (
	// ErrNotFound возвращается, когда запись (или токен) отсутствует либо истекла.
	ErrNotFound = errors.New("запись не найдена")
	// ErrNameTaken возвращается при нарушении уникальности названия путешествия.
	ErrNameTaken = errors.New("название уже занято")
)
