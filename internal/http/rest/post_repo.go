package rest

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/gustavoSo3/adogtame-back/internal/model"
	"github.com/jackc/pgx/v5"
)

const postColumns = `id, id_user, id_group, title, information, photo,
        location, contact_info, pet_type, resolved, created_at, updated_at`

func scanPost(row pgx.Row) (model.Post, error) {
	var post model.Post
	err := row.Scan(
		&post.ID, &post.UserID, &post.GroupID, &post.Title, &post.Information,
		&post.Photo, &post.Location, &post.ContactInfo, &post.PetType,
		&post.Resolved, &post.CreatedAt, &post.UpdatedAt,
	)
	return post, err
}

func (api *API) collectPosts(ctx context.Context, query string, args ...interface{}) ([]model.Post, error) {
	rows, err := api.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []model.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

func (api *API) CreatePostRepo(ctx context.Context, post model.Post) (model.Post, error) {
	query := `
        INSERT INTO posts (
            id, id_user, id_group, title, information, photo,
            location, contact_info, pet_type, resolved
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, FALSE)
        RETURNING ` + postColumns

	created, err := scanPost(api.DB.QueryRow(ctx, query,
		uuid.New(), post.UserID, post.GroupID, post.Title, post.Information,
		post.Photo, post.Location, post.ContactInfo, post.PetType,
	))
	if err != nil {
		log.Println("error creating post", err)
		return model.Post{}, err
	}
	return created, nil
}

func (api *API) GetPostByIDRepo(ctx context.Context, postID uuid.UUID) (model.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`
	return scanPost(api.DB.QueryRow(ctx, query, postID))
}

func (api *API) ListPostsRepo(ctx context.Context) ([]model.Post, error) {
	return api.collectPosts(ctx, `SELECT `+postColumns+` FROM posts`)
}

func (api *API) PostsInGroupRepo(ctx context.Context, groupID uuid.UUID) ([]model.Post, error) {
	return api.collectPosts(ctx, `SELECT `+postColumns+` FROM posts WHERE id_group = $1`, groupID)
}

func (api *API) PostsByUserRepo(ctx context.Context, userID uuid.UUID) ([]model.Post, error) {
	return api.collectPosts(ctx, `SELECT `+postColumns+` FROM posts WHERE id_user = $1`, userID)
}

// PostsForUserGroupsRepo returns posts from every group the user is
// subscribed to, newest first.
func (api *API) PostsForUserGroupsRepo(ctx context.Context, userID uuid.UUID) ([]model.Post, error) {
	query := `
        SELECT ` + postColumns + `
        FROM posts
        WHERE id_group IN (SELECT id_group FROM group_users WHERE id_user = $1)
        ORDER BY created_at DESC`
	return api.collectPosts(ctx, query, userID)
}

func (api *API) UpdatePostRepo(ctx context.Context, postID uuid.UUID, req model.UpdatePostRequest) (model.Post, error) {
	query := `
        UPDATE posts
        SET title = COALESCE($2, title),
            information = COALESCE($3, information),
            photo = COALESCE($4, photo),
            location = COALESCE($5, location),
            contact_info = COALESCE($6, contact_info),
            pet_type = COALESCE($7, pet_type),
            resolved = COALESCE($8, resolved),
            updated_at = NOW()
        WHERE id = $1
        RETURNING ` + postColumns
	return scanPost(api.DB.QueryRow(ctx, query, postID,
		req.Title, req.Information, req.Photo, req.Location,
		req.ContactInfo, req.PetType, req.Resolved,
	))
}

func (api *API) DeletePostRepo(ctx context.Context, postID uuid.UUID) error {
	_, err := api.DB.Exec(ctx, `DELETE FROM posts WHERE id = $1`, postID)
	return err
}

func (api *API) DeletePostsByGroupRepo(ctx context.Context, groupID uuid.UUID) error {
	_, err := api.DB.Exec(ctx, `DELETE FROM posts WHERE id_group = $1`, groupID)
	return err
}
