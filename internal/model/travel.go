package model

// Travel представляет совместное путешествие. Название уникально на всю базу,
// участники связаны с путешествием через таблицу user_to_travel.
type Travel struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
	Bio  string `db:"bio"`
}
