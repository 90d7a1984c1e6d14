package rest

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/google/uuid"
	"github.com/gustavoSo3/adogtame-back/internal/model"
)

// fakeCascadeStore records every deletion in call order.
type fakeCascadeStore struct {
	posts []model.Post
	calls []string

	failOn string
}

func (f *fakeCascadeStore) record(call string) error {
	f.calls = append(f.calls, call)
	if f.failOn == call {
		return errors.New("store failure")
	}
	return nil
}

func (f *fakeCascadeStore) PostsInGroupRepo(_ context.Context, groupID uuid.UUID) ([]model.Post, error) {
	if err := f.record("posts-in-group " + groupID.String()); err != nil {
		return nil, err
	}
	return f.posts, nil
}

func (f *fakeCascadeStore) DeleteCommentsByPostRepo(_ context.Context, postID uuid.UUID) error {
	return f.record("delete-comments " + postID.String())
}

func (f *fakeCascadeStore) DeletePostsByGroupRepo(_ context.Context, groupID uuid.UUID) error {
	return f.record("delete-posts " + groupID.String())
}

func (f *fakeCascadeStore) DeleteMembershipsByGroupRepo(_ context.Context, groupID uuid.UUID) error {
	return f.record("delete-memberships " + groupID.String())
}

func (f *fakeCascadeStore) DeleteGroupRepo(_ context.Context, groupID uuid.UUID) error {
	return f.record("delete-group " + groupID.String())
}

func (f *fakeCascadeStore) DeletePostRepo(_ context.Context, postID uuid.UUID) error {
	return f.record("delete-post " + postID.String())
}

func TestDeleteGroupCascade(t *testing.T) {
	groupID := uuid.New()
	postA := model.Post{ID: uuid.New(), GroupID: groupID}
	postB := model.Post{ID: uuid.New(), GroupID: groupID}

	store := &fakeCascadeStore{posts: []model.Post{postA, postB}}

	if err := deleteGroupCascade(context.Background(), store, groupID); err != nil {
		t.Fatalf("deleteGroupCascade() error = %v", err)
	}

	want := []string{
		"posts-in-group " + groupID.String(),
		"delete-comments " + postA.ID.String(),
		"delete-comments " + postB.ID.String(),
		"delete-posts " + groupID.String(),
		"delete-memberships " + groupID.String(),
		"delete-group " + groupID.String(),
	}
	if !reflect.DeepEqual(store.calls, want) {
		t.Errorf("cascade order:\n got %v\nwant %v", store.calls, want)
	}
}

func TestDeleteGroupCascadeEmptyGroup(t *testing.T) {
	groupID := uuid.New()
	store := &fakeCascadeStore{}

	if err := deleteGroupCascade(context.Background(), store, groupID); err != nil {
		t.Fatalf("deleteGroupCascade() error = %v", err)
	}

	want := []string{
		"posts-in-group " + groupID.String(),
		"delete-posts " + groupID.String(),
		"delete-memberships " + groupID.String(),
		"delete-group " + groupID.String(),
	}
	if !reflect.DeepEqual(store.calls, want) {
		t.Errorf("cascade order:\n got %v\nwant %v", store.calls, want)
	}
}

func TestDeleteGroupCascadeStopsOnFailure(t *testing.T) {
	groupID := uuid.New()
	post := model.Post{ID: uuid.New(), GroupID: groupID}

	store := &fakeCascadeStore{
		posts:  []model.Post{post},
		failOn: "delete-posts " + groupID.String(),
	}

	if err := deleteGroupCascade(context.Background(), store, groupID); err == nil {
		t.Fatal("deleteGroupCascade() should surface the store failure")
	}

	// nothing after the failing step may run
	last := store.calls[len(store.calls)-1]
	if last != "delete-posts "+groupID.String() {
		t.Errorf("cascade continued past the failure, last call %q", last)
	}
	for _, call := range store.calls {
		if call == "delete-group "+groupID.String() {
			t.Error("group was deleted despite an earlier failure")
		}
	}
}

func TestDeletePostCascade(t *testing.T) {
	postID := uuid.New()
	store := &fakeCascadeStore{}

	if err := deletePostCascade(context.Background(), store, postID); err != nil {
		t.Fatalf("deletePostCascade() error = %v", err)
	}

	want := []string{
		fmt.Sprintf("delete-comments %s", postID),
		fmt.Sprintf("delete-post %s", postID),
	}
	if !reflect.DeepEqual(store.calls, want) {
		t.Errorf("cascade order:\n got %v\nwant %v", store.calls, want)
	}
}

func TestDeletePostCascadeKeepsPostWhenCommentsFail(t *testing.T) {
	postID := uuid.New()
	store := &fakeCascadeStore{failOn: "delete-comments " + postID.String()}

	if err := deletePostCascade(context.Background(), store, postID); err == nil {
		t.Fatal("deletePostCascade() should surface the store failure")
	}
	for _, call := range store.calls {
		if call == "delete-post "+postID.String() {
			t.Error("post was deleted despite comment deletion failing")
		}
	}
}
