package storage

import (
	"context"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"

	"toon-face/internal/domain/entity"
	"toon-face/internal/domain/port"
)

// CacheUserRepository хранит сессии пользователей в памяти с истечением по TTL
type CacheUserRepository struct {
	users *cache.Cache
}

// NewCacheUserRepository создаёт хранилище, забывающее неактивных пользователей через ttl
func NewCacheUserRepository(ttl time.Duration) *CacheUserRepository {
	return &CacheUserRepository{
		users: cache.New(ttl, ttl*2),
	}
}

func userKey(userID int64) string {
	return strconv.FormatInt(userID, 10)
}

// Get возвращает пользователя по ID, создаёт нового если не найден
func (r *CacheUserRepository) Get(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	if v, ok := r.users.Get(userKey(userID)); ok {
		return v.(*entity.User), nil
	}

	// Создаём нового пользователя; при гонке побеждает первый
	newUser := entity.NewUser(userID, chatID)
	if err := r.users.Add(userKey(userID), newUser, cache.DefaultExpiration); err != nil {
		if v, ok := r.users.Get(userKey(userID)); ok {
			return v.(*entity.User), nil
		}
	}

	return newUser, nil
}

// Save сохраняет состояние пользователя и продлевает сессию
func (r *CacheUserRepository) Save(ctx context.Context, user *entity.User) error {
	r.users.Set(userKey(user.ID), user, cache.DefaultExpiration)
	return nil
}

// UpdateState обновляет состояние пользователя
func (r *CacheUserRepository) UpdateState(ctx context.Context, userID int64, state entity.UserState) error {
	if v, ok := r.users.Get(userKey(userID)); ok {
		user := v.(*entity.User)
		user.SetState(state)
		r.users.Set(userKey(userID), user, cache.DefaultExpiration)
	}

	return nil
}

// Count возвращает количество активных сессий
func (r *CacheUserRepository) Count() int {
	return r.users.ItemCount()
}

// Проверка реализации интерфейса
var _ port.UserRepository = (*CacheUserRepository)(nil)
