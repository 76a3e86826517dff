package services

import (
	"context"

	"guesthouse/internal/domain"
)

// ContentStore is the slice of the content tables the services need.
type ContentStore interface {
	TextsByLanguage(ctx context.Context, lang string) ([]domain.KeyedText, error)
	ListSections(ctx context.Context) ([]domain.ContentSection, error)
	ListTranslations(ctx context.Context) ([]domain.ContentTranslation, error)
	InsertTranslation(ctx context.Context, t domain.ContentTranslation) (string, error)
	UpdateTranslation(ctx context.Context, id, content string) error
}

type PropertyStore interface {
	Get(ctx context.Context) (domain.PropertyInfo, error)
	Update(ctx context.Context, p domain.PropertyInfo) error
}

type RoomStore interface {
	List(ctx context.Context) ([]domain.Room, error)
	Get(ctx context.Context, id string) (domain.Room, error)
	Count(ctx context.Context) (int, error)
	Insert(ctx context.Context, r domain.Room) (string, error)
	Update(ctx context.Context, r domain.Room) error
	SetSortOrder(ctx context.Context, id string, order int) error
	Delete(ctx context.Context, id string) error
}

type UserStore interface {
	ByEmail(ctx context.Context, email string) (*domain.User, error)
	ByID(ctx context.Context, id string) (*domain.User, error)
}
