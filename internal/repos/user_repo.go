package repos

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"guesthouse/internal/domain"
	"guesthouse/internal/sessions"
)

// UserRepo holds admin accounts and, for the sql session backend, their sessions.
type UserRepo struct{ DB *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{DB: db} }

func (r *UserRepo) ByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.DB.GetContext(ctx, &u, r.DB.Rebind(`SELECT id,email,name,password_hash,role FROM users WHERE LOWER(email)=LOWER(?)`), email)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) ByID(ctx context.Context, id string) (*domain.User, error) {
	var u domain.User
	err := r.DB.GetContext(ctx, &u, r.DB.Rebind(`SELECT id,email,name,password_hash,role FROM users WHERE id=?`), id)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Bind attaches userID to the session sid.
func (r *UserRepo) Bind(ctx context.Context, sid, userID string) error {
	ts := now()
	_, err := r.DB.ExecContext(ctx, r.DB.Rebind(`INSERT INTO sessions(id,user_id,created_at,last_seen)
                          VALUES(?,?,?,?)
                          ON CONFLICT(id) DO UPDATE SET user_id=excluded.user_id,last_seen=excluded.last_seen`), sid, userID, ts, ts)
	return err
}

// UserID returns the user bound to sid or sessions.ErrNoSession.
func (r *UserRepo) UserID(ctx context.Context, sid string) (string, error) {
	var uid sql.NullString
	err := r.DB.GetContext(ctx, &uid, r.DB.Rebind(`SELECT user_id FROM sessions WHERE id=?`), sid)
	if errors.Is(err, sql.ErrNoRows) || (err == nil && !uid.Valid) {
		return "", sessions.ErrNoSession
	}
	if err != nil {
		return "", err
	}
	return uid.String, nil
}

func (r *UserRepo) Unbind(ctx context.Context, sid string) error {
	_, err := r.DB.ExecContext(ctx, r.DB.Rebind(`UPDATE sessions SET user_id=NULL,last_seen=? WHERE id=?`), now(), sid)
	return err
}
