package rest

import (
	"context"

	"github.com/google/uuid"
	"github.com/gustavoSo3/adogtame-back/internal/model"
)

// cascadeStore is the slice of the repository the cascade sequences
// need. The store enforces no foreign keys, so referential cleanup is
// explicit here.
type cascadeStore interface {
	PostsInGroupRepo(ctx context.Context, groupID uuid.UUID) ([]model.Post, error)
	DeleteCommentsByPostRepo(ctx context.Context, postID uuid.UUID) error
	DeletePostsByGroupRepo(ctx context.Context, groupID uuid.UUID) error
	DeleteMembershipsByGroupRepo(ctx context.Context, groupID uuid.UUID) error
	DeleteGroupRepo(ctx context.Context, groupID uuid.UUID) error
	DeletePostRepo(ctx context.Context, postID uuid.UUID) error
}

// deleteGroupCascade removes a group and every record referencing it:
// comments on its posts first, then posts, then memberships, then the
// group itself. Each statement stands alone; a failure mid-sequence
// stops the cascade and leaves the already-deleted records gone, which
// is detectable by the dangling references that remain.
func deleteGroupCascade(ctx context.Context, s cascadeStore, groupID uuid.UUID) error {
	posts, err := s.PostsInGroupRepo(ctx, groupID)
	if err != nil {
		return err
	}
	for _, post := range posts {
		if err := s.DeleteCommentsByPostRepo(ctx, post.ID); err != nil {
			return err
		}
	}
	if err := s.DeletePostsByGroupRepo(ctx, groupID); err != nil {
		return err
	}
	if err := s.DeleteMembershipsByGroupRepo(ctx, groupID); err != nil {
		return err
	}
	return s.DeleteGroupRepo(ctx, groupID)
}

// deletePostCascade removes a post's comments, then the post.
func deletePostCascade(ctx context.Context, s cascadeStore, postID uuid.UUID) error {
	if err := s.DeleteCommentsByPostRepo(ctx, postID); err != nil {
		return err
	}
	return s.DeletePostRepo(ctx, postID)
}
