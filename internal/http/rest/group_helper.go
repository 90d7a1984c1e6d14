package rest

import (
	"context"

	"github.com/google/uuid"
	"github.com/gustavoSo3/adogtame-back/internal/model"
	"github.com/gustavoSo3/adogtame-back/util"
	"github.com/gustavoSo3/adogtame-back/util/values"
	"github.com/jackc/pgx/v5"
)

// loadGroup returns the group or nil when it does not exist, so
// capability checks can distinguish a missing group from a store error.
func (api *API) loadGroup(ctx context.Context, groupID uuid.UUID) (*model.Group, error) {
	group, err := api.GetGroupByIDRepo(ctx, groupID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &group, nil
}

// authorizeGroup loads the group and runs the capability check for the
// caller in one step.
func (api *API) authorizeGroup(ctx context.Context, groupID, userID uuid.UUID, action Action) (*model.Group, string, string, error) {
	group, err := api.loadGroup(ctx, groupID)
	if err != nil {
		return nil, values.Error, "failed to get group", err
	}

	perm := ""
	if group != nil {
		perm, err = api.groupPermission(ctx, groupID, userID)
		if err != nil {
			return nil, values.Error, "failed to get permissions", err
		}
	}

	if status, message, authErr := authorizeGroupAction(group, perm, action); authErr != nil {
		return nil, status, message, authErr
	}
	return group, values.Success, "", nil
}

func (api *API) CreateGroupHelper(ctx context.Context, userID uuid.UUID, req model.CreateGroupRequest) (model.Group, string, string, error) {
	if err := util.ValidateStruct(req); err != nil {
		return model.Group{}, values.BadRequestBody, "You need at least: name and description", err
	}

	exists, err := api.GroupNameExists(ctx, req.Name)
	if err != nil {
		return model.Group{}, values.Error, "Error checking group name", err
	}
	if exists {
		return model.Group{}, values.Conflict, "There is already a group with that name", errNameTaken
	}

	group := model.Group{
		ID:          util.GenerateUUID(),
		Name:        req.Name,
		Description: req.Description,
		CreatedBy:   userID,
		Photo:       req.Photo,
	}

	created, err := api.CreateGroupRepo(ctx, group)
	if err != nil {
		return model.Group{}, values.Error, "Error creating group", err
	}
	return created, values.Created, "Group created successfully", nil
}

func (api *API) UpdateGroupHelper(ctx context.Context, groupID, userID uuid.UUID, req model.UpdateGroupRequest) (model.Group, string, string, error) {
	if _, status, message, err := api.authorizeGroup(ctx, groupID, userID, ActionGroupUpdate); err != nil {
		return model.Group{}, status, message, err
	}

	group, err := api.UpdateGroupRepo(ctx, groupID, req)
	if err != nil {
		return model.Group{}, values.Error, "Error updating group", err
	}
	return group, values.Success, "Group updated successfully", nil
}

// DeleteGroupHelper removes a group and everything scoped to it. The
// group's posts lose their comments first, then the posts, then the
// memberships, then the group itself.
func (api *API) DeleteGroupHelper(ctx context.Context, groupID, userID uuid.UUID) (string, string, error) {
	if _, status, message, err := api.authorizeGroup(ctx, groupID, userID, ActionGroupDelete); err != nil {
		return status, message, err
	}

	if err := deleteGroupCascade(ctx, api, groupID); err != nil {
		return values.Error, "Error deleting group", err
	}
	return values.Success, "Group deleted successfully", nil
}

func (api *API) GroupPostsHelper(ctx context.Context, groupID, userID uuid.UUID) ([]model.Post, string, string, error) {
	if _, status, message, err := api.authorizeGroup(ctx, groupID, userID, ActionGroupPosts); err != nil {
		return nil, status, message, err
	}

	posts, err := api.PostsInGroupRepo(ctx, groupID)
	if err != nil {
		return nil, values.Error, "Error getting group posts", err
	}
	return posts, values.Success, "Posts retrieved successfully", nil
}

// GroupPermissionHelper reports the caller's own permission level in
// the group; callers with no membership get "none" rather than an
// error.
func (api *API) GroupPermissionHelper(ctx context.Context, groupID, userID uuid.UUID) (map[string]string, string, string, error) {
	group, err := api.loadGroup(ctx, groupID)
	if err != nil {
		return nil, values.Error, "failed to get group", err
	}
	if group == nil {
		return nil, values.NotFound, "Wrong group id", errNotFound
	}

	perm, err := api.groupPermission(ctx, groupID, userID)
	if err != nil {
		return nil, values.Error, "failed to get permissions", err
	}
	if perm == "" {
		perm = "none"
	}
	return map[string]string{"permissions": perm}, values.Success, "Permissions retrieved successfully", nil
}

func (api *API) GrantPermissionHelper(ctx context.Context, groupID, actorID, targetID uuid.UUID, permission string) (model.GroupUser, string, string, error) {
	if _, status, message, err := api.authorizeGroup(ctx, groupID, actorID, ActionPermissionGrant); err != nil {
		return model.GroupUser{}, status, message, err
	}

	if !validPermission(permission) {
		return model.GroupUser{}, values.BadRequestBody, "Permissions must be admin or user", errBadPermission
	}

	_, err := api.GetMembershipRepo(ctx, groupID, targetID)
	if err != nil {
		if err != pgx.ErrNoRows {
			return model.GroupUser{}, values.Error, "Error granting permissions", err
		}
		membership, _, createErr := api.CreateMembershipRepo(ctx, groupID, targetID, permission)
		if createErr != nil {
			return model.GroupUser{}, values.Error, "Error granting permissions", createErr
		}
		return membership, values.Created, "Permissions granted successfully", nil
	}

	membership, err := api.UpdateMembershipRepo(ctx, groupID, targetID, permission)
	if err != nil {
		return model.GroupUser{}, values.Error, "Error granting permissions", err
	}
	return membership, values.Success, "Permissions granted successfully", nil
}

func (api *API) RevokePermissionHelper(ctx context.Context, groupID, actorID, membershipID uuid.UUID) (string, string, error) {
	if _, status, message, err := api.authorizeGroup(ctx, groupID, actorID, ActionPermissionRevoke); err != nil {
		return status, message, err
	}

	membership, err := api.GetMembershipByIDRepo(ctx, membershipID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return values.NotFound, "Wrong permission id", errNotFound
		}
		return values.Error, "Error revoking permissions", err
	}
	if membership.GroupID != groupID {
		return values.NotFound, "Wrong permission id", errNotFound
	}

	if err := api.DeleteMembershipByIDRepo(ctx, membershipID); err != nil {
		return values.Error, "Error revoking permissions", err
	}
	return values.Success, "Permissions revoked successfully", nil
}

// membershipStore is the slice of the repository the subscribe flows
// need.
type membershipStore interface {
	GetGroupByIDRepo(ctx context.Context, groupID uuid.UUID) (model.Group, error)
	CreateMembershipRepo(ctx context.Context, groupID, userID uuid.UUID, permission string) (model.GroupUser, bool, error)
	DeleteMembershipRepo(ctx context.Context, groupID, userID uuid.UUID) error
}

func (api *API) SubscribeHelper(ctx context.Context, groupID, userID uuid.UUID) (model.GroupUser, string, string, error) {
	return subscribeToGroup(ctx, api, groupID, userID)
}

func (api *API) UnsubscribeHelper(ctx context.Context, groupID, userID uuid.UUID) (string, string, error) {
	return unsubscribeFromGroup(ctx, api, groupID, userID)
}

// subscribeToGroup joins the user to the group as a regular member.
// Subscribing twice leaves the existing membership untouched and
// answers 200 instead of 201.
func subscribeToGroup(ctx context.Context, s membershipStore, groupID, userID uuid.UUID) (model.GroupUser, string, string, error) {
	if _, err := s.GetGroupByIDRepo(ctx, groupID); err != nil {
		if err == pgx.ErrNoRows {
			return model.GroupUser{}, values.NotFound, "Wrong group id", errNotFound
		}
		return model.GroupUser{}, values.Error, "failed to get group", err
	}

	membership, created, err := s.CreateMembershipRepo(ctx, groupID, userID, values.PermissionUser)
	if err != nil {
		return model.GroupUser{}, values.Error, "Error subscribing to group", err
	}
	if !created {
		return membership, values.Success, "Already subscribed", nil
	}
	return membership, values.Created, "Subscribed successfully", nil
}

// unsubscribeFromGroup is idempotent the same way: leaving a group you
// are not in succeeds without touching anything.
func unsubscribeFromGroup(ctx context.Context, s membershipStore, groupID, userID uuid.UUID) (string, string, error) {
	if _, err := s.GetGroupByIDRepo(ctx, groupID); err != nil {
		if err == pgx.ErrNoRows {
			return values.NotFound, "Wrong group id", errNotFound
		}
		return values.Error, "failed to get group", err
	}

	if err := s.DeleteMembershipRepo(ctx, groupID, userID); err != nil {
		return values.Error, "Error unsubscribing from group", err
	}
	return values.Success, "Unsubscribed successfully", nil
}
