package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gustavoSo3/adogtame-back/internal/model"
	"github.com/gustavoSo3/adogtame-back/util"
	"github.com/gustavoSo3/adogtame-back/util/tracing"
	"github.com/gustavoSo3/adogtame-back/util/values"
)

func (api *API) PostRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Group(func(r chi.Router) {
		r.Use(api.RequireLogin)
		r.Method(http.MethodGet, "/", Handler(api.ListPosts))
		r.Method(http.MethodPost, "/", Handler(api.CreatePost))
		r.Method(http.MethodGet, "/{postID}", Handler(api.GetPost))
		r.Method(http.MethodPut, "/{postID}", Handler(api.UpdatePost))
		r.Method(http.MethodDelete, "/{postID}", Handler(api.DeletePost))
		r.Method(http.MethodGet, "/{postID}/comments", Handler(api.GetPostComments))
		r.Method(http.MethodPost, "/{postID}/comments", Handler(api.CreateComment))
		r.Method(http.MethodDelete, "/{postID}/comments/{commentID}", Handler(api.DeleteComment))
	})

	return mux
}

func (api *API) ListPosts(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	posts, err := api.ListPostsRepo(r.Context())
	if err != nil {
		return respondWithError(err, "failed to list posts", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Posts retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       posts,
	}
}

func (api *API) CreatePost(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	var req model.CreatePostRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	post, status, message, err := api.CreatePostHelper(r.Context(), userID, req)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       post,
	}
}

func (api *API) GetPost(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	postID, err := pathUUID(r, "postID")
	if err != nil {
		return respondWithError(err, "Wrong post id", values.BadRequestBody, &tc)
	}

	post, status, message, err := api.GetPostHelper(r.Context(), postID)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       post,
	}
}

func (api *API) UpdatePost(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	postID, err := pathUUID(r, "postID")
	if err != nil {
		return respondWithError(err, "Wrong post id", values.BadRequestBody, &tc)
	}
	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	var req model.UpdatePostRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	post, status, message, err := api.UpdatePostHelper(r.Context(), postID, userID, req)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       post,
	}
}

func (api *API) DeletePost(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	postID, err := pathUUID(r, "postID")
	if err != nil {
		return respondWithError(err, "Wrong post id", values.BadRequestBody, &tc)
	}
	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	status, message, err := api.DeletePostHelper(r.Context(), postID, userID)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
	}
}

func (api *API) GetPostComments(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	postID, err := pathUUID(r, "postID")
	if err != nil {
		return respondWithError(err, "Wrong post id", values.BadRequestBody, &tc)
	}
	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	comments, status, message, err := api.PostCommentsHelper(r.Context(), postID, userID)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       comments,
	}
}

func (api *API) CreateComment(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	postID, err := pathUUID(r, "postID")
	if err != nil {
		return respondWithError(err, "Wrong post id", values.BadRequestBody, &tc)
	}
	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	var req model.CreateCommentRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	comment, status, message, err := api.CreateCommentHelper(r.Context(), postID, userID, req)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       comment,
	}
}

func (api *API) DeleteComment(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	postID, err := pathUUID(r, "postID")
	if err != nil {
		return respondWithError(err, "Wrong post id", values.BadRequestBody, &tc)
	}
	commentID, err := pathUUID(r, "commentID")
	if err != nil {
		return respondWithError(err, "Wrong comment id", values.BadRequestBody, &tc)
	}
	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	status, message, err := api.DeleteCommentHelper(r.Context(), postID, commentID, userID)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
	}
}
