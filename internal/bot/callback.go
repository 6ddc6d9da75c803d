package bot

import (
	"errors"
	"strconv"
	"strings"
)

// CallbackKind - дискриминант полезной нагрузки inline-кнопки.
type CallbackKind string

const (
	// Меню путешествия.
	CallbackTravel      CallbackKind = "travel"
	CallbackTravelBio   CallbackKind = "travel_bio"
	CallbackNewLocation CallbackKind = "newlocation"
	CallbackNoteList    CallbackKind = "note_list"
	CallbackBuildRoute  CallbackKind = "route"

	// Заметки.
	CallbackNote       CallbackKind = "note"
	CallbackNoteAttach CallbackKind = "note_attach"
	CallbackNotePublic CallbackKind = "note_public"

	// Выбор места при добавлении точки маршрута (ID - индекс кандидата).
	CallbackPlace CallbackKind = "place"

	// Настройки профиля.
	CallbackSettingsAge     CallbackKind = "settings_age"
	CallbackSettingsSex     CallbackKind = "settings_sex"
	CallbackSettingsSexMale CallbackKind = "settings_sex_male"
	CallbackSettingsSexFem  CallbackKind = "settings_sex_female"
	CallbackSettingsBack    CallbackKind = "settings_back"
	CallbackSettingsCountry CallbackKind = "settings_country"
	CallbackSettingsCity    CallbackKind = "settings_city"
	CallbackSettingsBio     CallbackKind = "settings_bio"
)

// errBadCallback возвращается для полезной нагрузки, которую не удалось разобрать.
var errBadCallback = errors.New("некорректная полезная нагрузка кнопки")

// CallbackData - типизированная полезная нагрузка inline-кнопки.
// Telegram ограничивает callback data 64 байтами, поэтому на проводе
// это компактная строка "вид:id"; ID опционален.
type CallbackData struct {
	Kind CallbackKind
	ID   int64
}

// Encode сериализует полезную нагрузку для callback_data кнопки.
func (d CallbackData) Encode() string {
	if d.ID == 0 {
		return string(d.Kind)
	}
	return string(d.Kind) + ":" + strconv.FormatInt(d.ID, 10)
}

// DecodeCallbackData разбирает callback_data входящего нажатия.
// Декодирование выполняется один раз на границе транспорта; дальше
// обработчики работают только с типизированным значением.
func DecodeCallbackData(data string) (CallbackData, error) {
	kind, rest, found := strings.Cut(data, ":")
	if kind == "" {
		return CallbackData{}, errBadCallback
	}
	decoded := CallbackData{Kind: CallbackKind(kind)}
	if found {
		id, err := strconv.ParseInt(rest, 10, 64)
		if err != nil {
			return CallbackData{}, errBadCallback
		}
		decoded.ID = id
	}
	return decoded, nil
}
