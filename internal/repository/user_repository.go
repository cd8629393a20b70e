package repository

import (
	"database/sql"
	"errors"

	"github.com/gofrs/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/datafield/asset-library-backend/internal/model/request"
	"github.com/datafield/asset-library-backend/internal/model/response"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) CreateUserWithPassword(user *request.CreateUserWithPassword, apiToken string) (response.User, error) {
	query := `INSERT INTO users (username, password, api_token) VALUES ($1, $2, $3) RETURNING id, username`

	var userID uuid.UUID
	var username sql.NullString

	err := r.db.QueryRow(query, user.Username, user.Password, apiToken).Scan(&userID, &username)
	if err != nil {
		return response.User{}, err
	}

	return response.User{
		ID:       userID,
		Username: username.String,
	}, nil
}

func (r *UserRepository) GetUserById(userID uuid.UUID) (response.User, error) {
	query := `SELECT id, username, api_token FROM users WHERE id = $1`

	user := response.User{}
	var apiToken sql.NullString

	err := r.db.QueryRow(query, userID).Scan(&user.ID, &user.Username, &apiToken)
	if err != nil {
		return response.User{}, err
	}

	if apiToken.Valid {
		user.APIToken = &apiToken.String
	}

	return user, nil
}

func (r *UserRepository) GetUserByUsername(username string) (response.User, error) {
	query := `SELECT id, username, password FROM users WHERE username = $1`

	var user response.User
	var password sql.NullString
	err := r.db.QueryRow(query, username).Scan(&user.ID, &user.Username, &password)
	if err != nil {
		return response.User{}, err
	}

	if password.Valid {
		user.Password = &password.String
	}

	return user, nil
}

func (r *UserRepository) GetUserByAPIToken(apiToken string) (response.User, error) {
	query := `SELECT id, username FROM users WHERE api_token = $1`

	var user response.User
	err := r.db.QueryRow(query, apiToken).Scan(&user.ID, &user.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return response.User{}, errors.New("invalid API token")
		}
		return response.User{}, err
	}

	return user, nil
}

func (r *UserRepository) RegenerateAPIToken(userID uuid.UUID, apiToken string) error {
	query := `UPDATE users SET api_token = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`

	result, err := r.db.Exec(query, apiToken, userID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return errors.New("user not found")
	}

	return nil
}

func (r *UserRepository) GetAllUsers() ([]response.User, error) {
	query := `SELECT id, username, created_at, updated_at FROM users ORDER BY created_at DESC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []response.User
	for rows.Next() {
		var user response.User
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(&user.ID, &user.Username, &createdAt, &updatedAt)
		if err != nil {
			return nil, err
		}

		if createdAt.Valid {
			user.CreatedAt = &createdAt.Time
		}

		if updatedAt.Valid {
			user.UpdatedAt = &updatedAt.Time
		}

		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}
