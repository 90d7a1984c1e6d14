package rest

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/gustavoSo3/adogtame-back/internal/model"
	"github.com/jackc/pgx/v5"
)

func (api *API) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	stmt := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`

	err := api.DB.QueryRow(ctx, stmt, email).Scan(&exists)
	if err != nil {
		log.Println("error checking email", err)
		return false, err
	}
	return exists, nil
}

func (api *API) CreateUserRepo(ctx context.Context, req model.User) (model.User, error) {
	stmt := `
        INSERT INTO users (
            id, email, password, name, last_name,
            date_birth, tags, phone_number, profile_picture
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id, email, name, last_name, date_birth, tags,
                  phone_number, profile_picture, created_at, updated_at
    `
	var created model.User
	err := api.DB.QueryRow(ctx, stmt,
		req.ID, req.Email, req.PasswordHash, req.Name, req.LastName,
		req.DateBirth, req.Tags, req.PhoneNumber, req.ProfilePicture,
	).Scan(
		&created.ID, &created.Email, &created.Name, &created.LastName,
		&created.DateBirth, &created.Tags, &created.PhoneNumber,
		&created.ProfilePicture, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		log.Println("error creating new user", err)
		return model.User{}, err
	}
	return created, nil
}

func (api *API) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	var user model.User
	stmt := `-- name: get-user-by-email
		SELECT id, email, password, name, last_name, date_birth, tags,
		       phone_number, profile_picture, created_at, updated_at
		FROM users WHERE email = $1`

	err := api.DB.QueryRow(ctx, stmt, email).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.Name, &user.LastName,
		&user.DateBirth, &user.Tags, &user.PhoneNumber, &user.ProfilePicture,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if err != pgx.ErrNoRows {
			log.Println("error getting user by email", err)
		}
		return model.User{}, err
	}
	return user, nil
}

func (api *API) GetUserByID(ctx context.Context, userID string) (model.User, error) {
	var user model.User
	stmt := `SELECT id, email, name, last_name, date_birth, tags,
	                phone_number, profile_picture, created_at, updated_at
	         FROM users WHERE id = $1`

	err := api.DB.QueryRow(ctx, stmt, userID).Scan(
		&user.ID, &user.Email, &user.Name, &user.LastName, &user.DateBirth,
		&user.Tags, &user.PhoneNumber, &user.ProfilePicture,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if err != pgx.ErrNoRows {
			log.Println("error getting user by ID", err)
		}
		return model.User{}, err
	}
	return user, nil
}

// UpdateUserTokenRepo stores the user's current bearer token.
func (api *API) UpdateUserTokenRepo(ctx context.Context, userID uuid.UUID, token string) error {
	stmt := `UPDATE users SET token = $2, updated_at = NOW() WHERE id = $1`

	_, err := api.DB.Exec(ctx, stmt, userID, token)
	if err != nil {
		log.Println("error storing user token", err)
		return err
	}
	return nil
}
