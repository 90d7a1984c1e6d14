package rest

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/gustavoSo3/adogtame-back/internal/model"
	"github.com/gustavoSo3/adogtame-back/util/values"
	"github.com/jackc/pgx/v5"
)

// fakeMembershipStore holds one group and its memberships in memory.
type fakeMembershipStore struct {
	group       model.Group
	memberships map[uuid.UUID]model.GroupUser
}

func newFakeMembershipStore() *fakeMembershipStore {
	return &fakeMembershipStore{
		group:       model.Group{ID: uuid.New(), Name: "lost-cats"},
		memberships: make(map[uuid.UUID]model.GroupUser),
	}
}

func (f *fakeMembershipStore) GetGroupByIDRepo(_ context.Context, groupID uuid.UUID) (model.Group, error) {
	if groupID != f.group.ID {
		return model.Group{}, pgx.ErrNoRows
	}
	return f.group, nil
}

func (f *fakeMembershipStore) CreateMembershipRepo(_ context.Context, groupID, userID uuid.UUID, permission string) (model.GroupUser, bool, error) {
	if existing, ok := f.memberships[userID]; ok {
		return existing, false, nil
	}
	membership := model.GroupUser{ID: uuid.New(), GroupID: groupID, UserID: userID, Permissions: permission}
	f.memberships[userID] = membership
	return membership, true, nil
}

func (f *fakeMembershipStore) DeleteMembershipRepo(_ context.Context, _, userID uuid.UUID) error {
	delete(f.memberships, userID)
	return nil
}

func (f *fakeMembershipStore) permissionOf(userID uuid.UUID) string {
	if membership, ok := f.memberships[userID]; ok {
		return membership.Permissions
	}
	return ""
}

func TestSubscribeIdempotent(t *testing.T) {
	store := newFakeMembershipStore()
	userID := uuid.New()

	first, status, _, err := subscribeToGroup(context.Background(), store, store.group.ID, userID)
	if err != nil {
		t.Fatalf("first subscribe error = %v", err)
	}
	if status != values.Created {
		t.Errorf("first subscribe status = %q, want %q", status, values.Created)
	}
	if first.Permissions != values.PermissionUser {
		t.Errorf("permissions = %q, want %q", first.Permissions, values.PermissionUser)
	}

	second, status, _, err := subscribeToGroup(context.Background(), store, store.group.ID, userID)
	if err != nil {
		t.Fatalf("second subscribe error = %v", err)
	}
	if status != values.Success {
		t.Errorf("re-subscribe status = %q, want %q", status, values.Success)
	}
	if second.ID != first.ID {
		t.Error("re-subscribing must return the existing membership, not a new one")
	}
	if len(store.memberships) != 1 {
		t.Errorf("memberships = %d, want 1", len(store.memberships))
	}
}

func TestSubscribeMissingGroup(t *testing.T) {
	store := newFakeMembershipStore()

	_, status, _, err := subscribeToGroup(context.Background(), store, uuid.New(), uuid.New())
	if err != errNotFound {
		t.Fatalf("err = %v, want errNotFound", err)
	}
	if status != values.NotFound {
		t.Errorf("status = %q, want %q", status, values.NotFound)
	}
}

func TestUnsubscribeIdempotent(t *testing.T) {
	store := newFakeMembershipStore()
	userID := uuid.New()

	if _, _, _, err := subscribeToGroup(context.Background(), store, store.group.ID, userID); err != nil {
		t.Fatalf("subscribe error = %v", err)
	}

	for i := 0; i < 2; i++ {
		status, _, err := unsubscribeFromGroup(context.Background(), store, store.group.ID, userID)
		if err != nil {
			t.Fatalf("unsubscribe %d error = %v", i+1, err)
		}
		if status != values.Success {
			t.Errorf("unsubscribe %d status = %q, want %q", i+1, status, values.Success)
		}
	}
	if len(store.memberships) != 0 {
		t.Errorf("memberships = %d, want 0", len(store.memberships))
	}
}

// A non-member is turned away from a group's posts until they
// subscribe, and turned away again once they leave.
func TestGroupAccessFollowsSubscription(t *testing.T) {
	store := newFakeMembershipStore()
	userID := uuid.New()

	check := func() (string, error) {
		status, _, err := authorizeGroupAction(&store.group, store.permissionOf(userID), ActionGroupPosts)
		return status, err
	}

	if status, err := check(); err != errForbidden || status != values.NotAllowed {
		t.Fatalf("before subscribing: got (%q, %v), want not-allowed", status, err)
	}

	if _, _, _, err := subscribeToGroup(context.Background(), store, store.group.ID, userID); err != nil {
		t.Fatalf("subscribe error = %v", err)
	}
	if status, err := check(); err != nil || status != values.Success {
		t.Fatalf("after subscribing: got (%q, %v), want success", status, err)
	}

	if _, _, err := unsubscribeFromGroup(context.Background(), store, store.group.ID, userID); err != nil {
		t.Fatalf("unsubscribe error = %v", err)
	}
	if status, err := check(); err != errForbidden || status != values.NotAllowed {
		t.Fatalf("after leaving: got (%q, %v), want not-allowed", status, err)
	}
}
