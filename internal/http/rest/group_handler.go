package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gustavoSo3/adogtame-back/internal/model"
	"github.com/gustavoSo3/adogtame-back/util"
	"github.com/gustavoSo3/adogtame-back/util/tracing"
	"github.com/gustavoSo3/adogtame-back/util/values"
	"github.com/jackc/pgx/v5"
)

func (api *API) GroupRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Group(func(r chi.Router) {
		r.Use(api.RequireLogin)
		r.Method(http.MethodGet, "/", Handler(api.ListGroups))
		r.Method(http.MethodPost, "/", Handler(api.CreateGroup))
		r.Method(http.MethodGet, "/{groupID}", Handler(api.GetGroup))
		r.Method(http.MethodPut, "/{groupID}", Handler(api.UpdateGroup))
		r.Method(http.MethodDelete, "/{groupID}", Handler(api.DeleteGroup))
		r.Method(http.MethodGet, "/{groupID}/posts", Handler(api.GetGroupPosts))
		r.Method(http.MethodGet, "/{groupID}/permissions", Handler(api.GetGroupPermissions))
		r.Method(http.MethodPost, "/{groupID}/permissions/{userID}", Handler(api.GrantGroupPermission))
		r.Method(http.MethodDelete, "/{groupID}/permissions/{permissionID}", Handler(api.RevokeGroupPermission))
		r.Method(http.MethodPost, "/{groupID}/subscribe", Handler(api.SubscribeToGroup))
		r.Method(http.MethodDelete, "/{groupID}/subscribe", Handler(api.UnsubscribeFromGroup))
	})

	return mux
}

func (api *API) ListGroups(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	groups, err := api.ListGroupsRepo(r.Context())
	if err != nil {
		return respondWithError(err, "failed to list groups", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Groups retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       groups,
	}
}

func (api *API) CreateGroup(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	var req model.CreateGroupRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	group, status, message, err := api.CreateGroupHelper(r.Context(), userID, req)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       group,
	}
}

func (api *API) GetGroup(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	groupID, err := pathUUID(r, "groupID")
	if err != nil {
		return respondWithError(err, "Wrong group id", values.BadRequestBody, &tc)
	}

	group, err := api.GetGroupByIDRepo(r.Context(), groupID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return respondWithError(err, "Wrong group id", values.NotFound, &tc)
		}
		return respondWithError(err, "failed to get group", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Group retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       group,
	}
}

func (api *API) UpdateGroup(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	groupID, err := pathUUID(r, "groupID")
	if err != nil {
		return respondWithError(err, "Wrong group id", values.BadRequestBody, &tc)
	}
	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	var req model.UpdateGroupRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	group, status, message, err := api.UpdateGroupHelper(r.Context(), groupID, userID, req)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       group,
	}
}

func (api *API) DeleteGroup(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	groupID, err := pathUUID(r, "groupID")
	if err != nil {
		return respondWithError(err, "Wrong group id", values.BadRequestBody, &tc)
	}
	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	status, message, err := api.DeleteGroupHelper(r.Context(), groupID, userID)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
	}
}

func (api *API) GetGroupPosts(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	groupID, err := pathUUID(r, "groupID")
	if err != nil {
		return respondWithError(err, "Wrong group id", values.BadRequestBody, &tc)
	}
	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	posts, status, message, err := api.GroupPostsHelper(r.Context(), groupID, userID)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       posts,
	}
}

func (api *API) GetGroupPermissions(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	groupID, err := pathUUID(r, "groupID")
	if err != nil {
		return respondWithError(err, "Wrong group id", values.BadRequestBody, &tc)
	}
	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	perms, status, message, err := api.GroupPermissionHelper(r.Context(), groupID, userID)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       perms,
	}
}

func (api *API) GrantGroupPermission(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	groupID, err := pathUUID(r, "groupID")
	if err != nil {
		return respondWithError(err, "Wrong group id", values.BadRequestBody, &tc)
	}
	targetID, err := pathUUID(r, "userID")
	if err != nil {
		return respondWithError(err, "Wrong user id", values.BadRequestBody, &tc)
	}
	actorID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	var req model.GrantPermissionRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	membership, status, message, err := api.GrantPermissionHelper(r.Context(), groupID, actorID, targetID, req.Permissions)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       membership,
	}
}

func (api *API) RevokeGroupPermission(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	groupID, err := pathUUID(r, "groupID")
	if err != nil {
		return respondWithError(err, "Wrong group id", values.BadRequestBody, &tc)
	}
	membershipID, err := pathUUID(r, "permissionID")
	if err != nil {
		return respondWithError(err, "Wrong permission id", values.BadRequestBody, &tc)
	}
	actorID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	status, message, err := api.RevokePermissionHelper(r.Context(), groupID, actorID, membershipID)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
	}
}

func (api *API) SubscribeToGroup(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	groupID, err := pathUUID(r, "groupID")
	if err != nil {
		return respondWithError(err, "Wrong group id", values.BadRequestBody, &tc)
	}
	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	membership, status, message, err := api.SubscribeHelper(r.Context(), groupID, userID)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       membership,
	}
}

func (api *API) UnsubscribeFromGroup(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	groupID, err := pathUUID(r, "groupID")
	if err != nil {
		return respondWithError(err, "Wrong group id", values.BadRequestBody, &tc)
	}
	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	status, message, err := api.UnsubscribeHelper(r.Context(), groupID, userID)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
	}
}
