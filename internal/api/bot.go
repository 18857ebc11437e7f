package telegram

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"toon-face/internal/container"
	"toon-face/internal/domain/entity"
	"toon-face/internal/log"
)

const (
	msgStart = `👋 Привет! Я превращаю лица на фотографиях в мультяшные.

📸 Отправьте мне фото с лицом, и я дорисую глаза, зрачки и рот.

📋 Команды:
/toon — начать
/debug — включить или выключить отладочную картинку
/help — справка
/cancel — отменить текущую операцию`

	msgHelp = `ℹ️ Как пользоваться ботом:

1️⃣ Отправьте фото, на котором хорошо видно лицо и оба глаза
2️⃣ Бот найдёт самое крупное лицо и пару глаз в нём
3️⃣ Вы получите фото с мультяшным лицом

💡 Рекомендации:
• Лицо должно смотреть в камеру
• Глаза не должны быть закрыты волосами или очками
• Рисунки и аниме тоже подходят

📋 Команды:
/toon — начать
/debug — рамки найденных кандидатов
/cancel — отменить операцию`

	msgAwaitingPhoto   = "📸 Отправьте фото с лицом."
	msgCancelled       = "❌ Операция отменена. Отправьте /toon, чтобы начать заново."
	msgSendPhoto       = "📸 Пожалуйста, отправьте фото с лицом."
	msgUnknownCommand  = "❓ Неизвестная команда. Используйте /help для справки."
	msgProcessing      = "⏳ Рисую..."
	msgNoFace          = "🤷 Не нашёл лицо с двумя глазами. Попробуйте другое фото."
	msgProcessingError = "⚠️ Не удалось обработать изображение. Попробуйте другое фото."
	msgDebugOn         = "🐞 Отладочная картинка включена."
	msgDebugOff        = "🐞 Отладочная картинка выключена."
)

const msgRenders = "\n\n🎨 Нарисовано лиц: %d"

const downloadTimeout = 30 * time.Second

// botAPI методы Telegram API, которые использует бот
type botAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	GetFile(config tgbotapi.FileConfig) (tgbotapi.File, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// Bot представляет Telegram-бота
type Bot struct {
	api      botAPI
	app      *container.Container
	client   *http.Client
	fileLink func(tgbotapi.File) string
}

// NewBot создаёт нового бота
func NewBot(token string, app *container.Container) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log.Info(log.Fields{"account": api.Self.UserName}, "telegram: authorized")

	return newBot(api, app, func(f tgbotapi.File) string { return f.Link(token) }), nil
}

func newBot(api botAPI, app *container.Container, fileLink func(tgbotapi.File) string) *Bot {
	return &Bot{
		api:      api,
		app:      app,
		client:   &http.Client{Timeout: downloadTimeout},
		fileLink: fileLink,
	}
}

// Run запускает основной цикл обработки сообщений до отмены контекста
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

// handleMessage обрабатывает входящее сообщение
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	users := b.app.UserService
	user, err := users.Get(ctx, msg.From.ID, msg.Chat.ID)
	if err != nil {
		log.Error(log.Fields{"error": err.Error()}, "telegram: get user")
		return
	}

	// Обработка команд
	if msg.IsCommand() {
		b.handleCommand(ctx, msg, user)
		return
	}

	// Обработка фото и картинок, присланных файлом
	if fileID, ok := imageFileID(msg); ok {
		b.handlePhoto(ctx, msg, user, fileID)
		return
	}

	// Текстовое сообщение (не команда)
	b.sendMessage(msg.Chat.ID, msgSendPhoto)
}

// handleCommand обрабатывает команды бота
func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message, user *entity.User) {
	users := b.app.UserService

	switch msg.Command() {
	case "start":
		if _, err := users.Cancel(ctx, user.ID, msg.Chat.ID); err != nil {
			logUserError(user.ID, "cancel", err)
		}
		b.sendMessage(msg.Chat.ID, startText(user))

	case "help":
		b.sendMessage(msg.Chat.ID, msgHelp)

	case "toon":
		if _, err := users.BeginToon(ctx, user.ID, msg.Chat.ID); err != nil {
			logUserError(user.ID, "begin toon", err)
		}
		b.sendMessage(msg.Chat.ID, msgAwaitingPhoto)

	case "debug":
		updated, err := users.ToggleDebug(ctx, user.ID, msg.Chat.ID)
		if err != nil {
			logUserError(user.ID, "toggle debug", err)
			return
		}
		if updated.Debug {
			b.sendMessage(msg.Chat.ID, msgDebugOn)
		} else {
			b.sendMessage(msg.Chat.ID, msgDebugOff)
		}

	case "cancel":
		if _, err := users.Cancel(ctx, user.ID, msg.Chat.ID); err != nil {
			logUserError(user.ID, "cancel", err)
		}
		b.sendMessage(msg.Chat.ID, msgCancelled)

	default:
		b.sendMessage(msg.Chat.ID, msgUnknownCommand)
	}
}

// handlePhoto генерирует мультяшное лицо и отправляет результат
func (b *Bot) handlePhoto(ctx context.Context, msg *tgbotapi.Message, user *entity.User, fileID string) {
	users := b.app.UserService
	renderID := uuid.NewString()
	fields := log.Fields{"user": user.ID, "render": renderID}

	// Устанавливаем состояние "обработка"
	if _, err := users.SetState(ctx, user.ID, msg.Chat.ID, entity.StateProcessing); err != nil {
		logUserError(user.ID, "set state", err)
	}
	b.sendMessage(msg.Chat.ID, msgProcessing)

	imageData, err := b.downloadFile(ctx, fileID)
	if err != nil {
		fields["error"] = err.Error()
		log.Error(fields, "telegram: download photo")
		b.sendMessage(msg.Chat.ID, msgProcessingError)
		b.finishRender(ctx, user.ID, msg.Chat.ID, false)
		return
	}

	out, err := b.app.ToonService.Render(ctx, imageData, user.Debug)
	if err != nil {
		fields["error"] = err.Error()
		log.Error(fields, "telegram: render")
		b.sendMessage(msg.Chat.ID, msgProcessingError)
		b.finishRender(ctx, user.ID, msg.Chat.ID, false)
		return
	}

	if out.Debug != nil {
		b.sendPhoto(msg.Chat.ID, "debug-"+renderID+".jpg", out.Debug, debugCaption(out.Result))
	}

	success := out.Result.HasFace()
	if success {
		b.sendPhoto(msg.Chat.ID, "toon-"+renderID+".jpg", out.Toon, "")
	} else {
		b.sendMessage(msg.Chat.ID, msgNoFace)
	}

	fields["success"] = success
	log.Info(fields, "telegram: photo processed")

	// Возвращаем в главное меню
	b.finishRender(ctx, user.ID, msg.Chat.ID, success)
}

// finishRender возвращает пользователя в главное меню
func (b *Bot) finishRender(ctx context.Context, userID, chatID int64, success bool) {
	if _, err := b.app.UserService.FinishRender(ctx, userID, chatID, success); err != nil {
		logUserError(userID, "finish render", err)
	}
}

func logUserError(userID int64, op string, err error) {
	log.Error(log.Fields{"user": userID, "op": op, "error": err.Error()}, "telegram: update user")
}

// startText приветствие со счётчиком удачных генераций
func startText(user *entity.User) string {
	if user.Renders == 0 {
		return msgStart
	}
	return msgStart + fmt.Sprintf(msgRenders, user.Renders)
}

// imageFileID возвращает файл с максимальным разрешением из фото или картинку-документ
func imageFileID(msg *tgbotapi.Message) (string, bool) {
	if len(msg.Photo) > 0 {
		return msg.Photo[len(msg.Photo)-1].FileID, true
	}
	if msg.Document != nil && strings.HasPrefix(msg.Document.MimeType, "image/") {
		return msg.Document.FileID, true
	}
	return "", false
}

// debugCaption перечисляет количество кандидатов и итоги каналов
func debugCaption(result *entity.ToonResult) string {
	c := result.Candidates
	var sb strings.Builder
	fmt.Fprintf(&sb, "faces: %d, eyes: %d, alt faces: %d, alt eyes: %d",
		len(c.Face), len(c.Eye), len(c.AltFace), len(c.AltEye))
	for _, ch := range result.Report.Channels {
		status := "drawn"
		if !ch.Drawn {
			status = string(ch.Reason)
		}
		fmt.Fprintf(&sb, "\n%s: %s", ch.Name, status)
	}
	return sb.String()
}

// downloadFile скачивает файл из Telegram
func (b *Bot) downloadFile(ctx context.Context, fileID string) ([]byte, error) {
	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.fileLink(file), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download file: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return data, nil
}

// sendMessage отправляет текстовое сообщение
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.Error(log.Fields{"chat": chatID, "error": err.Error()}, "telegram: send message")
	}
}

// sendPhoto отправляет JPEG-картинку
func (b *Bot) sendPhoto(chatID int64, name string, data []byte, caption string) {
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: name, Bytes: data})
	photo.Caption = caption
	if _, err := b.api.Send(photo); err != nil {
		log.Error(log.Fields{"chat": chatID, "error": err.Error()}, "telegram: send photo")
	}
}
