package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"

	"github.com/iliyamo/auth-service/internal/model"
)

// UserStore is the persistence contract consumed by the handlers.
// Handlers accept this interface so that tests can substitute an
// in-memory implementation; UserRepo is the MySQL-backed one.
type UserStore interface {
	Create(ctx context.Context, username, email, passwordHash string) (uint64, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	GetByUsername(ctx context.Context, username string) (model.User, error)
	GetByID(ctx context.Context, id uint64) (model.User, error)
}

// UserRepo implements UserStore on top of the `users` table.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// Create inserts a user and returns its ID. The password must already
// be hashed by the caller; this layer never sees plaintext.
//
// Uniqueness is ultimately enforced by the database indexes: even when
// the handler's pre-checks pass, a concurrent registration can make
// this insert fail with MySQL error 1062. That case is mapped onto the
// same sentinel errors as the pre-checks so callers always see a
// conflict, never a generic server error.
func (r *UserRepo) Create(ctx context.Context, username, email, passwordHash string) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (username, email, password) VALUES (?,?,?)",
		username, email, passwordHash)
	if err != nil {
		if dup, which := duplicateKey(err); dup {
			if which == "username" {
				return 0, ErrUsernameExists
			}
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	return r.getOne(ctx,
		"SELECT id,username,email,password,created_at FROM users WHERE email=? LIMIT 1",
		strings.ToLower(strings.TrimSpace(email)))
}

// GetByUsername fetches a user by username.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (model.User, error) {
	return r.getOne(ctx,
		"SELECT id,username,email,password,created_at FROM users WHERE username=? LIMIT 1",
		strings.TrimSpace(username))
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	return r.getOne(ctx,
		"SELECT id,username,email,password,created_at FROM users WHERE id=? LIMIT 1", id)
}

func (r *UserRepo) getOne(ctx context.Context, query string, arg any) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx, query, arg).
		Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, ErrUserNotFound
	}
	return u, err
}

// duplicateKey reports whether err is a MySQL duplicate-entry error
// (1062) and, if so, which unique index fired. Only the key name after
// "for key" is inspected: the message also carries the duplicated
// value (e.g. "Duplicate entry 'my_username@x.com' for key
// 'users.email'"), which must not influence the classification.
func duplicateKey(err error) (bool, string) {
	var myErr *mysql.MySQLError
	var msg string
	switch {
	case errors.As(err, &myErr):
		if myErr.Number != 1062 {
			return false, ""
		}
		msg = myErr.Message
	case strings.Contains(err.Error(), "1062"):
		msg = err.Error()
	default:
		return false, ""
	}
	key := strings.ToLower(msg)
	if idx := strings.LastIndex(key, "for key"); idx >= 0 {
		key = key[idx+len("for key"):]
	}
	if strings.Contains(key, "username") {
		return true, "username"
	}
	return true, "email"
}
