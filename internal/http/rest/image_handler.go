package rest

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/gustavoSo3/adogtame-back/util"
	"github.com/gustavoSo3/adogtame-back/util/tracing"
	"github.com/gustavoSo3/adogtame-back/util/values"
)

const maxImageSize = 10 << 20 // 10 MiB

func (api *API) ImageRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Get("/{image}", api.GetImage)

	mux.Group(func(r chi.Router) {
		r.Use(api.RequireLogin)
		r.Method(http.MethodPost, "/", Handler(api.UploadImage))
	})

	return mux
}

// UploadImage takes a multipart "image" part, jpeg only, and returns
// the key the client can GET it back with.
func (api *API) UploadImage(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		return respondWithError(err, "unable to parse upload", values.BadRequestBody, &tc)
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		return respondWithError(err, "You need to send an image", values.BadRequestBody, &tc)
	}
	defer file.Close()

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(header.Filename), "."))
	if ext != "jpeg" && ext != "jpg" {
		return respondWithError(errBadImageType, "Only jpeg images are allowed", values.BadRequestBody, &tc)
	}

	key := util.GenerateFileKey(ext)
	stored, err := api.Deps.Cloudinary.UploadImage(r.Context(), file, key)
	if err != nil {
		return respondWithError(err, "Error uploading image", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Image uploaded successfully",
		Status:     values.Created,
		StatusCode: util.StatusCode(values.Created),
		Data:       map[string]string{"image": stored},
	}
}

// GetImage streams the stored image back. Open endpoint, image keys
// are unguessable enough for the posts that embed them.
func (api *API) GetImage(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "image")
	if key == "" {
		writeErrorResponse(w, nil, values.BadRequestBody, "missing image key")
		return
	}

	url, err := api.Deps.Cloudinary.ImageURL(key)
	if err != nil {
		writeErrorResponse(w, err, values.Error, "failed to resolve image")
		return
	}

	resp, err := http.Get(url)
	if err != nil {
		writeErrorResponse(w, err, values.Error, "failed to fetch image")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		writeErrorResponse(w, nil, values.NotFound, "Wrong image id")
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	if _, err := io.Copy(w, resp.Body); err != nil {
		return
	}
}
