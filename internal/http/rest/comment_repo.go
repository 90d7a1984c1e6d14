package rest

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/gustavoSo3/adogtame-back/internal/model"
	"github.com/jackc/pgx/v5"
)

const commentColumns = `id, id_post, id_group, id_user, comment, created_at, updated_at`

func scanComment(row pgx.Row) (model.Comment, error) {
	var comment model.Comment
	err := row.Scan(
		&comment.ID, &comment.PostID, &comment.GroupID, &comment.UserID,
		&comment.Comment, &comment.CreatedAt, &comment.UpdatedAt,
	)
	return comment, err
}

func (api *API) CreateCommentRepo(ctx context.Context, comment model.Comment) (model.Comment, error) {
	query := `
        INSERT INTO comments (id, id_post, id_group, id_user, comment)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + commentColumns

	created, err := scanComment(api.DB.QueryRow(ctx, query,
		uuid.New(), comment.PostID, comment.GroupID, comment.UserID, comment.Comment,
	))
	if err != nil {
		log.Println("error creating comment", err)
		return model.Comment{}, err
	}
	return created, nil
}

func (api *API) GetCommentByIDRepo(ctx context.Context, commentID uuid.UUID) (model.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE id = $1`
	return scanComment(api.DB.QueryRow(ctx, query, commentID))
}

func (api *API) CommentsByPostRepo(ctx context.Context, postID uuid.UUID) ([]model.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE id_post = $1`

	rows, err := api.DB.Query(ctx, query, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []model.Comment
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}

func (api *API) DeleteCommentRepo(ctx context.Context, commentID uuid.UUID) error {
	_, err := api.DB.Exec(ctx, `DELETE FROM comments WHERE id = $1`, commentID)
	return err
}

func (api *API) DeleteCommentsByPostRepo(ctx context.Context, postID uuid.UUID) error {
	_, err := api.DB.Exec(ctx, `DELETE FROM comments WHERE id_post = $1`, postID)
	return err
}
