// Package adapters provides repository and gateway implementations for the
// user feature.
package adapters

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fanbase_backend/internal/feature/user/domain/entity"
	"fanbase_backend/internal/feature/user/usecase"
)

// userPostgres is the PostgreSQL implementation of usecase.UserRepository,
// backed by GORM.
type userPostgres struct {
	db *gorm.DB
}

// Compile-time check that userPostgres implements UserRepository.
var _ usecase.UserRepository = (*userPostgres)(nil)

// NewUserPostgres creates a new userPostgres with the given gorm.DB
// connection. Constructor for dependency injection.
func NewUserPostgres(db *gorm.DB) *userPostgres {
	return &userPostgres{db: db}
}

// Create persists a new user. A unique-index violation on email or CPF is
// translated to usecase.ErrUserAlreadyExists.
func (r *userPostgres) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		return translateDuplicate(err)
	}
	return nil
}

// FindByID retrieves a user by id, mapping gorm.ErrRecordNotFound to
// usecase.ErrUserNotFound.
func (r *userPostgres) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByEmailOrCPF retrieves a user matching either the email or the CPF.
func (r *userPostgres) FindByEmailOrCPF(ctx context.Context, email, cpf string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email = ? OR cpf = ?", email, cpf).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// UpdateWithLock applies mutate to the stored user inside a transaction
// holding a row lock, so concurrent enrichment flows on the same record
// cannot lose updates.
func (r *userPostgres) UpdateWithLock(ctx context.Context, id string, mutate func(*entity.User) error) (*entity.User, error) {
	var out *entity.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx
		// SQLite (used in tests) serializes writers and rejects FOR UPDATE.
		if tx.Dialector.Name() == "postgres" {
			q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var u entity.User
		if err := q.Where("id = ?", id).First(&u).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return usecase.ErrUserNotFound
			}
			return err
		}
		if err := mutate(&u); err != nil {
			return err
		}
		if err := tx.Save(&u).Error; err != nil {
			return translateDuplicate(err)
		}
		out = &u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete permanently removes a user record (hard delete).
func (r *userPostgres) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.User{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrUserNotFound
	}
	return nil
}

// translateDuplicate maps a PostgreSQL unique violation (SQLSTATE 23505)
// to the domain error. Other errors pass through unchanged.
func translateDuplicate(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return usecase.ErrUserAlreadyExists
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return usecase.ErrUserAlreadyExists
	}
	return err
}
