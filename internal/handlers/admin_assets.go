// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"luckshop/internal/gallery"
	"luckshop/internal/imaging"
	"luckshop/internal/models"
	"luckshop/internal/slug"
)

const (
	// maxUploadSize is the maximum allowed image upload size (20 MB).
	maxUploadSize = 20 << 20

	// assetPrefix is the object key prefix for gallery images.
	assetPrefix = "gallery/"

	// thumbSuffix marks generated thumbnail objects.
	thumbSuffix = "_thumb.jpg"
)

// allowedImageTypes defines MIME types accepted for upload. The library
// holds product photography only, so documents and vector files stay out.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// thumbableTypes are types that get a preview thumbnail. GIF is excluded
// to preserve animation.
var thumbableTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// AssetList serves GET /api/admin/assets: every object under the gallery
// prefix with a per-asset used flag computed against the current document.
// With ?unused=1 only unreferenced assets are returned.
func (a *Admin) AssetList(w http.ResponseWriter, r *http.Request) {
	if a.storageClient == nil {
		writeError(w, "object storage is not configured", http.StatusServiceUnavailable)
		return
	}

	objects, err := a.storageClient.List(r.Context(), assetPrefix)
	if err != nil {
		slog.Error("asset list failed", "error", err)
		writeError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	doc, ok := a.loadDoc(w)
	if !ok {
		return
	}

	assets := make([]models.Asset, 0, len(objects))
	for _, obj := range objects {
		assets = append(assets, models.Asset{
			Name:       obj.Key,
			URL:        a.storageClient.FileURL(obj.Key),
			ModifiedAt: obj.ModifiedAt.UnixMilli(),
		})
	}

	if r.URL.Query().Get("unused") == "1" {
		assets = gallery.Unused(assets, doc)
	} else {
		assets = gallery.MarkUsage(assets, doc)
	}
	writeJSON(w, http.StatusOK, map[string]any{"assets": assets, "total": len(assets)})
}

// AssetUpload serves POST /api/admin/assets: multipart image upload.
// Content type is sniffed from the bytes, never trusted from the client,
// and large images get a JPEG preview thumbnail alongside the original.
func (a *Admin) AssetUpload(w http.ResponseWriter, r *http.Request) {
	if a.storageClient == nil {
		writeError(w, "object storage is not configured", http.StatusServiceUnavailable)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+1024)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, "file too large, maximum size is 20 MB", http.StatusRequestEntityTooLarge)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, "no file provided", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		writeError(w, "file too large, maximum size is 20 MB", http.StatusRequestEntityTooLarge)
		return
	}

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		writeError(w, "failed to read file", http.StatusInternalServerError)
		return
	}

	sniffLen := len(fileBytes)
	if sniffLen > 512 {
		sniffLen = 512
	}
	contentType := http.DetectContentType(fileBytes[:sniffLen])
	if !allowedImageTypes[contentType] {
		writeError(w, fmt.Sprintf("file type %q is not allowed", contentType), http.StatusBadRequest)
		return
	}

	key := fmt.Sprintf("%s%s-%s", assetPrefix, uuid.New().String(), slug.Filename(header.Filename))

	ctx := r.Context()
	if err := a.storageClient.Upload(ctx, key, contentType, bytes.NewReader(fileBytes), int64(len(fileBytes))); err != nil {
		slog.Error("asset upload failed", "error", err, "key", key)
		writeError(w, "failed to upload file", http.StatusInternalServerError)
		return
	}

	var thumbURL string
	if thumbableTypes[contentType] {
		thumb, err := imaging.GenerateThumbnail(fileBytes, contentType)
		if err != nil {
			slog.Warn("thumbnail generation failed", "error", err, "key", key)
		} else {
			thumbKey := key + thumbSuffix
			if err := a.storageClient.Upload(ctx, thumbKey, thumb.ContentType, bytes.NewReader(thumb.Data), int64(len(thumb.Data))); err != nil {
				slog.Warn("thumbnail upload failed", "error", err, "key", thumbKey)
			} else {
				thumbURL = a.storageClient.FileURL(thumbKey)
			}
		}
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"name":     key,
		"url":      a.storageClient.FileURL(key),
		"thumbUrl": thumbURL,
		"size":     len(fileBytes),
		"type":     contentType,
	})
}

// AssetDelete serves DELETE /api/admin/assets with body {url}. Deletion
// is refused while any product still references the URL; the check runs
// against the document loaded in this request, not a cached snapshot.
func (a *Admin) AssetDelete(w http.ResponseWriter, r *http.Request) {
	if a.storageClient == nil {
		writeError(w, "object storage is not configured", http.StatusServiceUnavailable)
		return
	}

	var req struct {
		URL string `json:"url"`
	}
	if err := decodeBody(r, &req); err != nil || req.URL == "" {
		writeError(w, "url is required", http.StatusBadRequest)
		return
	}

	key, ok := a.storageClient.ExtractS3Key(req.URL)
	if !ok {
		writeError(w, "url does not belong to the asset library", http.StatusBadRequest)
		return
	}

	doc, ok := a.loadDoc(w)
	if !ok {
		return
	}
	if _, used := gallery.UsedURLs(doc)[req.URL]; used {
		writeError(w, "asset is referenced by a product", http.StatusConflict)
		return
	}

	ctx := r.Context()
	if err := a.storageClient.Delete(ctx, key); err != nil {
		slog.Error("asset delete failed", "error", err, "key", key)
		writeError(w, "failed to delete file", http.StatusInternalServerError)
		return
	}
	// Thumbnail cleanup is best effort; a missing object is not an error.
	if err := a.storageClient.Delete(ctx, key+thumbSuffix); err != nil {
		slog.Warn("thumbnail delete failed", "error", err, "key", key+thumbSuffix)
	}

	writeJSON(w, http.StatusOK, map[string]any{"deleted": key})
}
