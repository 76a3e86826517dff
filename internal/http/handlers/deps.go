package handlers

import (
	"github.com/jmoiron/sqlx"

	"guesthouse/internal/config"
	"guesthouse/internal/mail"
	"guesthouse/internal/media"
	"guesthouse/internal/repos"
	"guesthouse/internal/services"
	"guesthouse/internal/sessions"
)

type Deps struct {
	Auth  *AuthHandler
	Site  *SiteHandler
	Admin *AdminHandler
	Rooms *RoomHandler

	AuthSvc *services.AuthService
}

// NewDeps wires repositories, services and handlers. When sess is nil sessions are kept
// in the database.
func NewDeps(db *sqlx.DB, cfg config.Config, sess sessions.Store, transport mail.Transport, gallery media.Gallery) *Deps {
	userRepo := repos.NewUserRepo(db)
	if sess == nil {
		sess = userRepo
	}
	authSvc := &services.AuthService{Users: userRepo, Sessions: sess}
	contentSvc := services.NewContentService(repos.NewContentRepo(db))
	propertySvc := services.NewPropertyService(repos.NewPropertyRepo(db))
	roomSvc := services.NewRoomService(repos.NewRoomRepo(db))
	contactSvc := &services.ContactService{
		Transport: transport,
		From:      cfg.Mail.From,
		FromName:  cfg.Mail.FromName,
		To:        cfg.Mail.To,
	}

	return &Deps{
		Auth: &AuthHandler{Auth: authSvc, CookieSecure: cfg.CookieSecure},
		Site: &SiteHandler{
			Content:      contentSvc,
			Property:     propertySvc,
			Rooms:        roomSvc,
			Contact:      contactSvc,
			DefaultLang:  cfg.DefaultLang,
			CookieSecure: cfg.CookieSecure,
		},
		Admin: &AdminHandler{
			Content:  contentSvc,
			Property: propertySvc,
			Rooms:    roomSvc,
			Gallery:  gallery,
		},
		Rooms:   &RoomHandler{Rooms: roomSvc, Gallery: gallery},
		AuthSvc: authSvc,
	}
}
