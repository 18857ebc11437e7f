package entity

// UserState состояние пользователя в диалоге
type UserState string

const (
	StateMainMenu      UserState = "main_menu"      // В главном меню
	StateAwaitingPhoto UserState = "awaiting_photo" // Ожидание фото с лицом
	StateProcessing    UserState = "processing"     // Генерация мультяшного лица
)

// User представляет пользователя бота
type User struct {
	ID      int64     // Telegram User ID
	ChatID  int64     // Telegram Chat ID
	State   UserState // Текущее состояние пользователя
	Debug   bool      // Присылать отладочную картинку с кандидатами
	Renders int       // Количество удачных генераций
}

// NewUser создаёт нового пользователя с начальным состоянием
func NewUser(userID, chatID int64) *User {
	return &User{
		ID:     userID,
		ChatID: chatID,
		State:  StateMainMenu,
	}
}

// SetState обновляет состояние пользователя
func (u *User) SetState(state UserState) {
	u.State = state
}

// ToggleDebug переключает режим отладки и возвращает новое значение
func (u *User) ToggleDebug() bool {
	u.Debug = !u.Debug
	return u.Debug
}

// CountRender учитывает удачную генерацию
func (u *User) CountRender() {
	u.Renders++
}
