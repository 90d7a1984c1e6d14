package rest

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/gustavoSo3/adogtame-back/internal/model"
)

func (api *API) ListUsersRepo(ctx context.Context) ([]model.User, error) {
	stmt := `SELECT id, email, name, last_name, date_birth, tags,
	                phone_number, profile_picture, created_at, updated_at
	         FROM users ORDER BY created_at DESC`

	rows, err := api.DB.Query(ctx, stmt)
	if err != nil {
		log.Println("error listing users", err)
		return nil, err
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var user model.User
		err := rows.Scan(
			&user.ID, &user.Email, &user.Name, &user.LastName, &user.DateBirth,
			&user.Tags, &user.PhoneNumber, &user.ProfilePicture,
			&user.CreatedAt, &user.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (api *API) UpdateUserRepo(ctx context.Context, userID uuid.UUID, req model.UpdateUserRequest, passwordHash *string) (model.User, error) {
	stmt := `
        UPDATE users SET
            name = COALESCE($2, name),
            last_name = COALESCE($3, last_name),
            date_birth = COALESCE($4, date_birth),
            tags = COALESCE($5, tags),
            phone_number = COALESCE($6, phone_number),
            profile_picture = COALESCE($7, profile_picture),
            password = COALESCE($8, password),
            updated_at = NOW()
        WHERE id = $1
        RETURNING id, email, name, last_name, date_birth, tags,
                  phone_number, profile_picture, created_at, updated_at
    `
	var user model.User
	err := api.DB.QueryRow(ctx, stmt, userID,
		req.Name, req.LastName, req.DateBirth, req.Tags,
		req.PhoneNumber, req.ProfilePicture, passwordHash,
	).Scan(
		&user.ID, &user.Email, &user.Name, &user.LastName, &user.DateBirth,
		&user.Tags, &user.PhoneNumber, &user.ProfilePicture,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return model.User{}, err
	}
	return user, nil
}

func (api *API) DeleteUserRepo(ctx context.Context, userID uuid.UUID) error {
	_, err := api.DB.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		log.Println("error deleting user", err)
	}
	return err
}

// GroupsForUserRepo returns every group the user holds a membership in.
func (api *API) GroupsForUserRepo(ctx context.Context, userID uuid.UUID) ([]model.Group, error) {
	stmt := `
        SELECT g.id, g.name, g.description, g.created_by, g.photo, g.created_at, g.updated_at
        FROM groups g
        JOIN group_users gu ON gu.id_group = g.id
        WHERE gu.id_user = $1
        ORDER BY g.created_at DESC
    `
	return api.collectGroups(ctx, stmt, userID)
}

// GroupsNotSubscribedRepo returns the groups the user has no membership in.
func (api *API) GroupsNotSubscribedRepo(ctx context.Context, userID uuid.UUID) ([]model.Group, error) {
	stmt := `
        SELECT id, name, description, created_by, photo, created_at, updated_at
        FROM groups
        WHERE id NOT IN (SELECT id_group FROM group_users WHERE id_user = $1)
        ORDER BY created_at DESC
    `
	return api.collectGroups(ctx, stmt, userID)
}

func (api *API) collectGroups(ctx context.Context, stmt string, args ...any) ([]model.Group, error) {
	rows, err := api.DB.Query(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []model.Group
	for rows.Next() {
		group, err := scanGroup(rows)
		if err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}
	return groups, rows.Err()
}
