package rest

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"github.com/gustavoSo3/adogtame-back/internal/model"
	"github.com/gustavoSo3/adogtame-back/util"
	"github.com/gustavoSo3/adogtame-back/util/values"
	"github.com/jackc/pgx/v5"
)

// loadPost mirrors loadGroup: nil means the post does not exist.
func (api *API) loadPost(ctx context.Context, postID uuid.UUID) (*model.Post, error) {
	post, err := api.GetPostByIDRepo(ctx, postID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// CreatePostHelper publishes a post into a group the caller belongs
// to, then pushes it to the live feed of every subscribed member.
func (api *API) CreatePostHelper(ctx context.Context, userID uuid.UUID, req model.CreatePostRequest) (model.Post, string, string, error) {
	if err := util.ValidateStruct(req); err != nil {
		return model.Post{}, values.BadRequestBody, "You need: id_group, title, information, photo, location, contact_info and pet_type", err
	}

	groupID, err := util.StringToUUID(req.GroupID)
	if err != nil {
		return model.Post{}, values.BadRequestBody, "Wrong group id", err
	}

	if _, status, message, authErr := api.authorizeGroup(ctx, groupID, userID, ActionPostCreate); authErr != nil {
		return model.Post{}, status, message, authErr
	}

	post := model.Post{
		ID:          util.GenerateUUID(),
		UserID:      userID,
		GroupID:     groupID,
		Title:       req.Title,
		Information: req.Information,
		Photo:       req.Photo,
		Location:    req.Location,
		ContactInfo: req.ContactInfo,
		PetType:     req.PetType,
	}

	created, err := api.CreatePostRepo(ctx, post)
	if err != nil {
		return model.Post{}, values.Error, "Error creating post", err
	}

	api.broadcastPost(created)

	return created, values.Created, "Post created successfully", nil
}

func (api *API) broadcastPost(post model.Post) {
	if api.Deps == nil || api.Deps.Feed == nil {
		return
	}
	payload, err := json.Marshal(post)
	if err != nil {
		log.Println("error marshaling post for feed", err)
		return
	}
	go api.Deps.Feed.BroadcastNewPost(post.GroupID.String(), payload)
}

// postReader is the slice of the repository single-post reads need.
type postReader interface {
	GetPostByIDRepo(ctx context.Context, postID uuid.UUID) (model.Post, error)
}

func (api *API) GetPostHelper(ctx context.Context, postID uuid.UUID) (model.Post, string, string, error) {
	return getPost(ctx, api, postID)
}

// getPost returns a post to any authenticated caller. Membership gates
// listing a group's posts, never fetching one by id; the global post
// listing is open the same way.
func getPost(ctx context.Context, s postReader, postID uuid.UUID) (model.Post, string, string, error) {
	post, err := s.GetPostByIDRepo(ctx, postID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return model.Post{}, values.NotFound, "Wrong post id", errNotFound
		}
		return model.Post{}, values.Error, "failed to get post", err
	}
	return post, values.Success, "Post retrieved successfully", nil
}

// UpdatePostHelper lets only the author change a post; being a group
// admin is not enough.
func (api *API) UpdatePostHelper(ctx context.Context, postID, userID uuid.UUID, req model.UpdatePostRequest) (model.Post, string, string, error) {
	post, err := api.loadPost(ctx, postID)
	if err != nil {
		return model.Post{}, values.Error, "failed to get post", err
	}
	if post == nil {
		return model.Post{}, values.NotFound, "Wrong post id", errNotFound
	}
	if !canModifyPost(post.UserID, userID) {
		return model.Post{}, values.NotAllowed, "You dont have permisions to do this", errForbidden
	}

	updated, err := api.UpdatePostRepo(ctx, postID, req)
	if err != nil {
		return model.Post{}, values.Error, "Error updating post", err
	}
	return updated, values.Success, "Post updated successfully", nil
}

// DeletePostHelper removes the post's comments, then the post.
func (api *API) DeletePostHelper(ctx context.Context, postID, userID uuid.UUID) (string, string, error) {
	post, err := api.loadPost(ctx, postID)
	if err != nil {
		return values.Error, "failed to get post", err
	}
	if post == nil {
		return values.NotFound, "Wrong post id", errNotFound
	}
	if !canModifyPost(post.UserID, userID) {
		return values.NotAllowed, "You dont have permisions to do this", errForbidden
	}

	if err := deletePostCascade(ctx, api, postID); err != nil {
		return values.Error, "Error deleting post", err
	}
	return values.Success, "Post deleted successfully", nil
}

func (api *API) PostCommentsHelper(ctx context.Context, postID, userID uuid.UUID) ([]model.Comment, string, string, error) {
	post, err := api.loadPost(ctx, postID)
	if err != nil {
		return nil, values.Error, "failed to get post", err
	}
	if post == nil {
		return nil, values.NotFound, "Wrong post id", errNotFound
	}

	if _, status, message, authErr := api.authorizeGroup(ctx, post.GroupID, userID, ActionCommentRead); authErr != nil {
		return nil, status, message, authErr
	}

	comments, err := api.CommentsByPostRepo(ctx, postID)
	if err != nil {
		return nil, values.Error, "Error getting comments", err
	}
	return comments, values.Success, "Comments retrieved successfully", nil
}

// CreateCommentHelper records a comment with the group id taken from
// the author's membership record, not from the post.
func (api *API) CreateCommentHelper(ctx context.Context, postID, userID uuid.UUID, req model.CreateCommentRequest) (model.Comment, string, string, error) {
	if err := util.ValidateStruct(req); err != nil {
		return model.Comment{}, values.BadRequestBody, "You need: comment", err
	}

	post, err := api.loadPost(ctx, postID)
	if err != nil {
		return model.Comment{}, values.Error, "failed to get post", err
	}
	if post == nil {
		return model.Comment{}, values.NotFound, "Wrong post id", errNotFound
	}

	membership, err := api.GetMembershipRepo(ctx, post.GroupID, userID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return model.Comment{}, values.NotAllowed, "You dont have permisions to do this", errForbidden
		}
		return model.Comment{}, values.Error, "failed to get permissions", err
	}

	comment := model.Comment{
		PostID:  postID,
		GroupID: membership.GroupID,
		UserID:  userID,
		Comment: req.Comment,
	}

	created, err := api.CreateCommentRepo(ctx, comment)
	if err != nil {
		return model.Comment{}, values.Error, "Error creating comment", err
	}
	return created, values.Created, "Comment created successfully", nil
}

// DeleteCommentHelper allows the comment's author, or an admin of the
// group the comment belongs to.
func (api *API) DeleteCommentHelper(ctx context.Context, postID, commentID, userID uuid.UUID) (string, string, error) {
	comment, err := api.GetCommentByIDRepo(ctx, commentID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return values.NotFound, "Wrong comment id", errNotFound
		}
		return values.Error, "failed to get comment", err
	}
	if comment.PostID != postID {
		return values.NotFound, "Wrong comment id", errNotFound
	}

	perm, err := api.groupPermission(ctx, comment.GroupID, userID)
	if err != nil {
		return values.Error, "failed to get permissions", err
	}
	if !canDeleteComment(perm, comment.UserID, userID) {
		return values.NotAllowed, "You dont have permisions to do this", errForbidden
	}

	if err := api.DeleteCommentRepo(ctx, commentID); err != nil {
		return values.Error, "Error deleting comment", err
	}
	return values.Success, "Comment deleted successfully", nil
}
