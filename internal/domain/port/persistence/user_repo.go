package persistence

import (
	"context"
	"time"

	"github.com/tobiadeyemi/pocketbudget/internal/domain/entity"
)

// UserRepository defines operations for managing users
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Create(ctx context.Context, user *entity.User) error
	UpdateFcmToken(ctx context.Context, id, token string, now time.Time) error
}
