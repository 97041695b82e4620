package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/akwaabafreight/tracking-api/internal/domain"
	"github.com/akwaabafreight/tracking-api/internal/domain/entity"
	"github.com/akwaabafreight/tracking-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implements the UserRepository port on PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository builds the user persistence adapter.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// Create persists a new user. The unique index on email backs the
// registration uniqueness invariant.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, email, password_hash, phone, name, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(context.Background(), query,
		user.ID, user.Email, user.PasswordHash, user.Phone, user.Name, string(user.Role), user.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// FindByID returns a user by ID, or nil when absent.
func (r *UserRepo) FindByID(id string) (*entity.User, error) {
	return r.findOne(`
		SELECT id, email, password_hash, phone, name, role, created_at
		FROM users WHERE id = $1`, id)
}

// FindByEmail returns a user by email, or nil when absent.
func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	return r.findOne(`
		SELECT id, email, password_hash, phone, name, role, created_at
		FROM users WHERE email = $1 LIMIT 1`, email)
}

func (r *UserRepo) findOne(query string, arg any) (*entity.User, error) {
	var u entity.User
	var role string
	err := r.pool.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Phone, &u.Name, &role, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	u.Role = entity.Role(role)
	return &u, nil
}
