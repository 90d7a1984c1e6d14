package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gustavoSo3/adogtame-back/internal/model"
	"github.com/gustavoSo3/adogtame-back/util"
	"github.com/gustavoSo3/adogtame-back/util/tracing"
	"github.com/gustavoSo3/adogtame-back/util/values"
	"github.com/jackc/pgx/v5"
)

func (api *API) UserRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Method(http.MethodPost, "/", Handler(api.Register))
	mux.Method(http.MethodPost, "/login", Handler(api.Login))

	mux.Group(func(r chi.Router) {
		r.Use(api.RequireLogin)
		r.Method(http.MethodGet, "/", Handler(api.ListUsers))
		r.Method(http.MethodGet, "/{userID}", Handler(api.GetUser))
		r.Method(http.MethodPut, "/{userID}", Handler(api.UpdateUser))
		r.Method(http.MethodDelete, "/{userID}", Handler(api.DeleteUser))
		r.Method(http.MethodGet, "/{userID}/groups", Handler(api.GetUserGroups))
		r.Method(http.MethodGet, "/{userID}/posts", Handler(api.GetUserPosts))
		r.Method(http.MethodGet, "/{userID}/groups/posts", Handler(api.GetUserFeed))
		r.Method(http.MethodGet, "/{userID}/groups/not_sub", Handler(api.GetUserGroupsNotSubscribed))
	})

	return mux
}

// pathUUID parses a chi URL parameter as a uuid.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	return util.StringToUUID(chi.URLParam(r, name))
}

func (api *API) ListUsers(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	users, err := api.ListUsersRepo(r.Context())
	if err != nil {
		return respondWithError(err, "failed to list users", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Users retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       users,
	}
}

func (api *API) GetUser(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	userID, err := pathUUID(r, "userID")
	if err != nil {
		return respondWithError(err, "Wrong user id", values.BadRequestBody, &tc)
	}

	user, err := api.GetUserByID(r.Context(), userID.String())
	if err != nil {
		if err == pgx.ErrNoRows {
			return respondWithError(err, "Wrong user id", values.NotFound, &tc)
		}
		return respondWithError(err, "failed to get user", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "User retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       user,
	}
}

func (api *API) UpdateUser(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	targetID, err := pathUUID(r, "userID")
	if err != nil {
		return respondWithError(err, "Wrong user id", values.BadRequestBody, &tc)
	}
	actorID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}
	if !canActOnUser(targetID, actorID) {
		return respondWithError(errForbidden, "You dont have permisions to do this", values.NotAllowed, &tc)
	}

	var req model.UpdateUserRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	var passwordHash *string
	if req.Password != nil {
		hash, hashErr := hashPassword(*req.Password)
		if hashErr != nil {
			return respondWithError(hashErr, "failed to update user", values.Error, &tc)
		}
		passwordHash = &hash
	}

	user, err := api.UpdateUserRepo(r.Context(), targetID, req, passwordHash)
	if err != nil {
		if err == pgx.ErrNoRows {
			return respondWithError(err, "Wrong user id", values.NotFound, &tc)
		}
		return respondWithError(err, "failed to update user", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "User updated successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       user,
	}
}

func (api *API) DeleteUser(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	targetID, err := pathUUID(r, "userID")
	if err != nil {
		return respondWithError(err, "Wrong user id", values.BadRequestBody, &tc)
	}
	actorID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}
	if !canActOnUser(targetID, actorID) {
		return respondWithError(errForbidden, "You dont have permisions to do this", values.NotAllowed, &tc)
	}

	if err := api.DeleteUserRepo(r.Context(), targetID); err != nil {
		return respondWithError(err, "failed to delete user", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "User deleted successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
	}
}

func (api *API) GetUserGroups(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	userID, err := pathUUID(r, "userID")
	if err != nil {
		return respondWithError(err, "Wrong user id", values.BadRequestBody, &tc)
	}

	groups, err := api.GroupsForUserRepo(r.Context(), userID)
	if err != nil {
		return respondWithError(err, "failed to get user groups", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Groups retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       groups,
	}
}

func (api *API) GetUserPosts(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	userID, err := pathUUID(r, "userID")
	if err != nil {
		return respondWithError(err, "Wrong user id", values.BadRequestBody, &tc)
	}

	posts, err := api.PostsByUserRepo(r.Context(), userID)
	if err != nil {
		return respondWithError(err, "failed to get user posts", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Posts retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       posts,
	}
}

// GetUserFeed returns the posts of every group the user belongs to,
// newest first.
func (api *API) GetUserFeed(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	userID, err := pathUUID(r, "userID")
	if err != nil {
		return respondWithError(err, "Wrong user id", values.BadRequestBody, &tc)
	}

	posts, err := api.PostsForUserGroupsRepo(r.Context(), userID)
	if err != nil {
		return respondWithError(err, "failed to get posts", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Posts retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       posts,
	}
}

func (api *API) GetUserGroupsNotSubscribed(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	userID, err := pathUUID(r, "userID")
	if err != nil {
		return respondWithError(err, "Wrong user id", values.BadRequestBody, &tc)
	}

	groups, err := api.GroupsNotSubscribedRepo(r.Context(), userID)
	if err != nil {
		return respondWithError(err, "failed to get groups", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Groups retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       groups,
	}
}
