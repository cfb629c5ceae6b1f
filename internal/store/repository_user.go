package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It reads and updates rows of the "users" table.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// FindUserByHandle looks a user up by email.
func (r *userRepository) FindUserByHandle(ctx context.Context, handle string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByHandle", sq.Eq{"email": handle})
}

// FindUserByID looks a user up by its identifier.
func (r *userRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByID", sq.Eq{"user_id": id})
}

func (r *userRepository) findOne(ctx context.Context, funcName string, where sq.Eq) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(userColumns...).
		From(usersTable).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		user   models.User
		role   string
		apiKey sql.NullString
	)
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&user.UserID, &user.Email, &user.PasswordHash, &role, &apiKey, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error querying user")
		return models.User{}, r.db.wrapDriverError(err)
	}

	user.Role = models.Role(role)
	if apiKey.Valid {
		user.APIKey = &apiKey.String
	}

	return user, nil
}

// UpdateUserAPIKey overwrites the api_key column of a single user. No
// version check is made, so concurrent issuances resolve to the last write.
func (r *userRepository) UpdateUserAPIKey(ctx context.Context, id, key string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Update(usersTable).
		Set("api_key", key).
		Where(sq.Eq{"user_id": id}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUserAPIKey").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUserAPIKey").Msg("error updating api key")
		if isUniqueViolation(err) {
			return ErrAPIKeyAlreadyExists
		}
		return r.db.wrapDriverError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}
