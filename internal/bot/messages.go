package bot

// Тексты бота. Загружаются один раз при компиляции и не меняются;
// обработчики получают их по ссылке на пакет.
const (
	msgWelcome = "Здравствуй, Путник!\n" +
		"Я — Тревел Агент. Страшно звучит, не правда ли? Сейчас всё расскажу!\n" +
		"Я могу взять на себя твои рутинные дела во время путешествия.\n" +
		"Если хочешь рассказать о себе больше, жми /settings.\n" +
		"/help — список команд."

	msgHelp = "Мои команды:\n" +
		"/start — запустить бота\n" +
		"/settings — настройки профиля\n" +
		"/travels — меню путешествий\n" +
		"/newtravel — создать новое путешествие\n" +
		"/help — этот список"

	msgTravelList = "Список твоих путешествий:"
	msgNoTravels  = "У тебя ещё нет путешествий. Создай первое командой /newtravel."

	msgNewTravelName = "Придумайте название для путешествия, постарайтесь сделать его уникальным!\n" +
		"<blockquote>Как корабль назовёшь, так он и поплывёт.</blockquote>"
	msgNameTaken = "К сожалению, это название уже занято. Попробуйте другое."

	msgTravelBioPrompt = "Напишите описание для путешествия."

	msgInvited   = "Тебя пригласили в путешествие «%s»!"
	msgNewMember = "Добавлен новый Путник в путешествие «%s»: %s."

	msgLocationAddress = "Напишите адрес или отправьте геолокацию."
	msgPlaceChoice     = "Что ты имел в виду? :)"
	msgPlacesNotFound  = "Ничего не нашёл. Попробуйте написать адрес по-другому."
	msgStartAtPrompt   = "Отличное место! С какой даты вы планируете там быть? Отправьте в формате ДД.ММ.ГГГГ."
	msgEndAtPrompt     = "А до какого числа там задержитесь? Отправьте в формате ДД.ММ.ГГГГ."
	msgBadDate         = "Неверный формат даты. Отправьте в формате ДД.ММ.ГГГГ."
	msgEndBeforeStart  = "Проверьте, дата конца пребывания должна быть позже даты начала."

	msgSettingsMenu  = "Тут ты можешь больше рассказать о себе. :)"
	msgAgePrompt     = "В ответ на это сообщение напиши свой возраст."
	msgCountryPrompt = "В ответ на это сообщение напиши свою страну."
	msgCityPrompt    = "В ответ на это сообщение напиши свой город."
	msgBioPrompt     = "В ответ на это сообщение расскажи о себе."
	msgBadNumber     = "Неверный формат. Напиши возраст числом."
	msgSexPrompt     = "Выберите пол:"
	msgSaved         = "Отлично!"

	msgNoteTravel   = "Увидел! Укажи к какому путешествию её прикрепить."
	msgNoteAttached = "Добавил в путешествие «%s»!\n" +
		"Если хочешь, чтобы заметка была доступна всем в путешествии, то нажми на кнопку."
	msgNotePublished = "Сделано!"
	msgNoteList      = "<b>Заметки путешествия «%s»</b>"

	msgNoLocations = "В путешествии ещё нет точек маршрута. Добавьте локацию через меню путешествия."

	msgConversationExpired = "Этот диалог устарел. Откройте меню заново."
	msgSomethingWrong      = "Что-то пошло не так. Попробуйте ещё раз."
	msgNotFound            = "Не нашёл такой записи. Возможно, она была удалена."
)
