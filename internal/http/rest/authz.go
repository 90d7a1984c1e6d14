package rest

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/gustavoSo3/adogtame-back/internal/model"
	"github.com/gustavoSo3/adogtame-back/util/values"
	"github.com/jackc/pgx/v5"
)

var (
	errBadCredentials = errors.New("bad credentials")
	errEmailTaken     = errors.New("email already registered")
	errNameTaken      = errors.New("group name already taken")
	errBadPermission  = errors.New("unknown permission level")
	errNotFound       = errors.New("resource not found")
	errForbidden      = errors.New("not allowed")
	errBadImageType   = errors.New("unsupported image type")
)

// Action is a capability checked against a caller's group permission.
type Action string

const (
	// member-level actions, any permission will do
	ActionGroupPosts    Action = "group.posts"
	ActionPostCreate    Action = "post.create"
	ActionCommentRead   Action = "comment.read"
	ActionCommentCreate Action = "comment.create"

	// admin-only actions
	ActionGroupUpdate      Action = "group.update"
	ActionGroupDelete      Action = "group.delete"
	ActionPermissionGrant  Action = "permission.grant"
	ActionPermissionRevoke Action = "permission.revoke"
)

// permissionAllows decides whether a membership permission level covers
// an action. perm is empty when the caller holds no membership.
func permissionAllows(perm string, action Action) bool {
	switch action {
	case ActionGroupPosts, ActionPostCreate, ActionCommentRead, ActionCommentCreate:
		return perm != ""
	case ActionGroupUpdate, ActionGroupDelete, ActionPermissionGrant, ActionPermissionRevoke:
		return perm == values.PermissionAdmin
	default:
		return false
	}
}

// canDeleteComment allows the comment's author and group admins.
func canDeleteComment(perm string, commentAuthor, actor uuid.UUID) bool {
	return perm == values.PermissionAdmin || commentAuthor == actor
}

// canModifyPost allows only the post's author.
func canModifyPost(postAuthor, actor uuid.UUID) bool {
	return postAuthor == actor
}

// canActOnUser allows only the user themselves; there is no admin
// override for user records anywhere in the system.
func canActOnUser(target, actor uuid.UUID) bool {
	return target == actor
}

// validPermission reports whether p is a grantable permission level.
func validPermission(p string) bool {
	return p == values.PermissionAdmin || p == values.PermissionUser
}

// authorizeGroupAction is the single capability check for group-scoped
// actions. Existence is always decided before permission, so a caller
// probing a missing group never learns whether it would have been
// allowed: group == nil yields not-found, an insufficient permission
// yields not-allowed.
func authorizeGroupAction(group *model.Group, perm string, action Action) (string, string, error) {
	if group == nil {
		return values.NotFound, "Wrong group id", errNotFound
	}
	if !permissionAllows(perm, action) {
		return values.NotAllowed, "You dont have permisions to do this", errForbidden
	}
	return values.Success, "", nil
}

// groupPermission returns the caller's permission level in a group, or
// the empty string when no membership exists.
func (api *API) groupPermission(ctx context.Context, groupID, userID uuid.UUID) (string, error) {
	membership, err := api.GetMembershipRepo(ctx, groupID, userID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", nil
		}
		return "", err
	}
	return membership.Permissions, nil
}
