// internal/app/features/uploads/handler.go

// Package uploads accepts multipart image uploads and stores them in
// S3, returning the public URL to put on the record's image_url field.
package uploads

import (
	"context"
	"net/http"

	"github.com/seedscope/seedscope/internal/app/system/auth"
	"github.com/seedscope/seedscope/internal/app/system/storage"
	"github.com/seedscope/seedscope/internal/app/system/timeouts"
	"github.com/seedscope/seedscope/internal/app/system/webjson"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler owns the upload handlers.
type Handler struct {
	Uploader *storage.Uploader
	Log      *zap.Logger
}

// NewHandler constructs an uploads Handler.
func NewHandler(uploader *storage.Uploader, logger *zap.Logger) *Handler {
	return &Handler{Uploader: uploader, Log: logger}
}

// MountRoutes mounts the upload routes. Uploading requires a
// signed-in user.
func (h *Handler) MountRoutes(r chi.Router, sm *auth.SessionManager) {
	r.Group(func(r chi.Router) {
		r.Use(sm.RequireSignedIn)
		r.Post("/companies", h.uploadTo(storage.FolderCompanies))
		r.Post("/investors", h.uploadTo(storage.FolderInvestors))
		r.Post("/people", h.uploadTo(storage.FolderPeople))
	})
}

type uploadResponse struct {
	URL string `json:"url"`
}

// uploadTo returns a handler that stores the "image" form file under
// the given folder prefix.
func (h *Handler) uploadTo(folder string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
		defer cancel()

		if err := r.ParseMultipartForm(storage.MaxImageSize); err != nil {
			webjson.Error(w, http.StatusBadRequest, "malformed multipart body")
			return
		}
		file, header, err := r.FormFile("image")
		if err != nil {
			webjson.Error(w, http.StatusBadRequest, "image file is required")
			return
		}
		defer file.Close()

		if header.Size > storage.MaxImageSize {
			webjson.Error(w, http.StatusRequestEntityTooLarge, "image exceeds the 5MB limit")
			return
		}
		contentType := header.Header.Get("Content-Type")
		if !storage.ValidImageType(contentType) {
			webjson.Error(w, http.StatusUnsupportedMediaType, "unsupported image type")
			return
		}

		url, err := h.Uploader.UploadImage(ctx, folder, contentType, file)
		if err != nil {
			h.Log.Error("uploads: s3 upload failed", zap.Error(err))
			webjson.Error(w, http.StatusBadGateway, "upload failed")
			return
		}
		webjson.Write(w, http.StatusCreated, uploadResponse{URL: url})
	}
}
