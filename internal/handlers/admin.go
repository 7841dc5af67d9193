// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"luckshop/internal/cache"
	"luckshop/internal/gallery"
	"luckshop/internal/models"
	"luckshop/internal/storage"
	"luckshop/internal/store"
)

// Admin serves the authenticated catalog-editing API. Every mutation goes
// through the pure editors in internal/gallery, then persists the whole
// document as a new revision and drops the storefront cache.
type Admin struct {
	docs          *store.DocumentStore
	heat          *store.HeatStore
	galleryCache  *cache.GalleryCache
	storageClient *storage.Client // nil when object storage is not configured
}

// NewAdmin creates the admin handler group.
func NewAdmin(docs *store.DocumentStore, heat *store.HeatStore, galleryCache *cache.GalleryCache, storageClient *storage.Client) *Admin {
	return &Admin{
		docs:          docs,
		heat:          heat,
		galleryCache:  galleryCache,
		storageClient: storageClient,
	}
}

// saveAndRespond persists an edited document, invalidates the storefront
// cache and returns the new document with its revision id.
func (a *Admin) saveAndRespond(w http.ResponseWriter, r *http.Request, doc models.Document, extra map[string]any) {
	revision, err := a.docs.Save(doc)
	if err != nil {
		slog.Error("document save failed", "error", err)
		writeError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	a.galleryCache.InvalidateAll(r.Context())

	resp := map[string]any{"document": doc, "revision": revision}
	for k, v := range extra {
		resp[k] = v
	}
	writeJSON(w, http.StatusOK, resp)
}

// loadDoc fetches the current document, writing a 500 on failure.
func (a *Admin) loadDoc(w http.ResponseWriter) (models.Document, bool) {
	doc, err := a.docs.Load()
	if err != nil {
		slog.Error("document load failed", "error", err)
		writeError(w, "internal server error", http.StatusInternalServerError)
		return models.Document{}, false
	}
	return doc, true
}

// GetDocument serves GET /api/admin/document: the raw current document.
func (a *Admin) GetDocument(w http.ResponseWriter, r *http.Request) {
	doc, ok := a.loadDoc(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"document": doc})
}

// PutDocument serves PUT /api/admin/document: wholesale replacement.
// The submitted document is normalized, then validated; the previous
// head is kept as a revision, last write wins.
func (a *Admin) PutDocument(w http.ResponseWriter, r *http.Request) {
	var doc models.Document
	if err := decodeBody(r, &doc); err != nil {
		writeError(w, "invalid document body", http.StatusBadRequest)
		return
	}

	normalized := gallery.Normalize(doc)
	if err := gallery.Validate(normalized); err != nil {
		writeEditorError(w, err)
		return
	}

	a.saveAndRespond(w, r, normalized, nil)
}

// History serves GET /api/admin/document/history: recent revisions,
// newest first.
func (a *Admin) History(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 100 {
			writeError(w, "limit must be between 1 and 100", http.StatusBadRequest)
			return
		}
		limit = n
	}

	revisions, err := a.docs.History(limit)
	if err != nil {
		slog.Error("history load failed", "error", err)
		writeError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"revisions": revisions})
}

// RestoreRevision serves POST /api/admin/document/history/{id}/restore:
// re-saves an old revision as the new head. The restored state becomes a
// fresh revision so the operation is itself undoable.
func (a *Admin) RestoreRevision(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, "invalid revision id", http.StatusBadRequest)
		return
	}

	doc, err := a.docs.LoadRevision(id)
	if err != nil {
		writeError(w, "revision not found", http.StatusNotFound)
		return
	}

	a.saveAndRespond(w, r, gallery.Normalize(doc), nil)
}

// Items serves GET /api/admin/items: the full projection with no status
// exclusion. Unlike the public listing, the search term also matches
// product ids, which is how the operator looks up a specific entry.
func (a *Admin) Items(w http.ResponseWriter, r *http.Request) {
	doc, ok := a.loadDoc(w)
	if !ok {
		return
	}
	counters, err := a.heat.GetAll()
	if err != nil {
		slog.Error("heat load failed", "error", err)
		writeError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	sortMode, _ := gallery.ParseSortMode(r.URL.Query().Get("sort"))
	items := gallery.Query(gallery.Flatten(doc, counters), gallery.QueryOptions{
		Category: r.URL.Query().Get("category"),
		Sort:     sortMode,
	})

	if q := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("q"))); q != "" {
		matched := make([]models.Item, 0, len(items))
		for _, item := range items {
			if strings.Contains(strings.ToLower(item.Name), q) ||
				strings.Contains(strings.ToLower(item.ID), q) {
				matched = append(matched, item)
			}
		}
		items = matched
	}

	writeJSON(w, http.StatusOK, map[string]any{"items": items, "total": len(items)})
}

// CategoryCreate serves POST /api/admin/categories.
func (a *Admin) CategoryCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if msg := validateCategoryInput(req.Name, req.Description); msg != "" {
		writeError(w, msg, http.StatusBadRequest)
		return
	}

	doc, ok := a.loadDoc(w)
	if !ok {
		return
	}
	edited, err := gallery.AddCategory(doc, req.Name, req.Description, time.Now())
	if err != nil {
		writeEditorError(w, err)
		return
	}
	a.saveAndRespond(w, r, edited, nil)
}

// CategoryRename serves PUT /api/admin/categories/{name}.
func (a *Admin) CategoryRename(w http.ResponseWriter, r *http.Request) {
	oldName := chi.URLParam(r, "name")

	var req struct {
		Name string `json:"name"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if msg := validateCategoryInput(req.Name, ""); msg != "" {
		writeError(w, msg, http.StatusBadRequest)
		return
	}

	doc, ok := a.loadDoc(w)
	if !ok {
		return
	}
	edited, err := gallery.RenameCategory(doc, oldName, req.Name, time.Now())
	if err != nil {
		writeEditorError(w, err)
		return
	}
	a.saveAndRespond(w, r, edited, nil)
}

// CategoryDelete serves DELETE /api/admin/categories/{name}. The response
// reports how many products were removed along with the category.
func (a *Admin) CategoryDelete(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	doc, ok := a.loadDoc(w)
	if !ok {
		return
	}
	edited, removed, err := gallery.DeleteCategory(doc, name, time.Now())
	if err != nil {
		writeEditorError(w, err)
		return
	}
	a.saveAndRespond(w, r, edited, map[string]any{"removed": removed})
}

// CategoryReorder serves POST /api/admin/categories/{name}/reorder.
func (a *Admin) CategoryReorder(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var req struct {
		ToIndex int `json:"toIndex"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	doc, ok := a.loadDoc(w)
	if !ok {
		return
	}
	edited, err := gallery.ReorderCategory(doc, name, req.ToIndex, time.Now())
	if err != nil {
		writeEditorError(w, err)
		return
	}
	a.saveAndRespond(w, r, edited, nil)
}

// ProductUpsert serves POST /api/admin/products: create or edit a product.
// On an id change the heat counter follows the product; an explicit heat
// value in the body also syncs the counter store.
func (a *Admin) ProductUpsert(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Product  models.Product `json:"product"`
		Category string         `json:"category"`
		SourceID string         `json:"sourceProductId"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if msg := validateProductInput(req.Product); msg != "" {
		writeError(w, msg, http.StatusBadRequest)
		return
	}

	doc, ok := a.loadDoc(w)
	if !ok {
		return
	}
	edited, err := gallery.UpsertProduct(doc, req.Product, req.Category, req.SourceID, time.Now())
	if err != nil {
		writeEditorError(w, err)
		return
	}

	a.syncHeatCounter(req.Product, req.SourceID)
	a.saveAndRespond(w, r, edited, nil)
}

// syncHeatCounter keeps the external counter aligned with product edits.
// Failures only log: the counter is advisory and absence reads as zero.
func (a *Admin) syncHeatCounter(product models.Product, sourceID string) {
	finalID := strings.TrimSpace(product.ID)

	if sourceID != "" && sourceID != finalID {
		old, err := a.heat.Get(sourceID)
		if err == nil && old > 0 {
			if err := a.heat.Set(finalID, old); err != nil {
				slog.Warn("heat migrate failed", "error", err, "from", sourceID, "to", finalID)
				return
			}
		}
		if err := a.heat.Delete(sourceID); err != nil {
			slog.Warn("heat cleanup failed", "error", err, "id", sourceID)
		}
	}

	if product.Heat > 0 {
		if err := a.heat.Set(finalID, gallery.NormalizeHeat(product.Heat)); err != nil {
			slog.Warn("heat sync failed", "error", err, "id", finalID)
		}
	}
}

// ProductStatus serves PUT /api/admin/products/{id}/status.
func (a *Admin) ProductStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req struct {
		Status string `json:"status"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	doc, ok := a.loadDoc(w)
	if !ok {
		return
	}
	edited, err := gallery.SetProductStatus(doc, id, models.ProductStatus(req.Status), time.Now())
	if err != nil {
		writeEditorError(w, err)
		return
	}
	a.saveAndRespond(w, r, edited, nil)
}
