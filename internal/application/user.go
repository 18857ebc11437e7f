package app

import (
	"context"

	"toon-face/internal/domain/entity"
	"toon-face/internal/domain/port"
)

type UserService struct {
	repo port.UserRepository
}

func NewUserService(repo port.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Get(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.repo.Get(ctx, userID, chatID)
}

// SetState меняет состояние диалога пользователя
func (s *UserService) SetState(ctx context.Context, userID, chatID int64, state entity.UserState) (*entity.User, error) {
	// Get создаёт сессию при первом обращении
	if _, err := s.repo.Get(ctx, userID, chatID); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateState(ctx, userID, state); err != nil {
		return nil, err
	}

	return s.repo.Get(ctx, userID, chatID)
}

func (s *UserService) BeginToon(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.SetState(ctx, userID, chatID, entity.StateAwaitingPhoto)
}

func (s *UserService) Cancel(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.SetState(ctx, userID, chatID, entity.StateMainMenu)
}

// ToggleDebug переключает отладочную картинку для пользователя
func (s *UserService) ToggleDebug(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.update(ctx, userID, chatID, func(u *entity.User) {
		u.ToggleDebug()
	})
}

// FinishRender возвращает пользователя в меню и учитывает удачную генерацию
func (s *UserService) FinishRender(ctx context.Context, userID, chatID int64, success bool) (*entity.User, error) {
	return s.update(ctx, userID, chatID, func(u *entity.User) {
		if success {
			u.CountRender()
		}
		u.SetState(entity.StateMainMenu)
	})
}

func (s *UserService) update(ctx context.Context, userID, chatID int64, fn func(*entity.User)) (*entity.User, error) {
	user, err := s.repo.Get(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}

	fn(user)
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
