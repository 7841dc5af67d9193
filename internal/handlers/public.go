// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"luckshop/internal/cache"
	"luckshop/internal/gallery"
	"luckshop/internal/markdown"
	"luckshop/internal/models"
	"luckshop/internal/store"
)

// Public serves the unauthenticated storefront API.
type Public struct {
	docs         *store.DocumentStore
	heat         *store.HeatStore
	galleryCache *cache.GalleryCache
}

// NewPublic creates the public handler group.
func NewPublic(docs *store.DocumentStore, heat *store.HeatStore, galleryCache *cache.GalleryCache) *Public {
	return &Public{
		docs:         docs,
		heat:         heat,
		galleryCache: galleryCache,
	}
}

// categoryInfo summarizes one group for the storefront navigation.
type categoryInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	UpdatedAt   string `json:"updatedAt"`
	Count       int    `json:"count"`
}

// galleryPayload is the full storefront bootstrap response: navigation
// plus the default item listing in one round trip.
type galleryPayload struct {
	UpdatedAt  string         `json:"updatedAt"`
	Categories []categoryInfo `json:"categories"`
	Items      []models.Item  `json:"items"`
}

// loadProjection fetches the current document and all heat counters in
// parallel and flattens them into the item projection.
func (p *Public) loadProjection(r *http.Request) (models.Document, []models.Item, error) {
	var (
		doc      models.Document
		counters map[string]int
	)

	g, _ := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		doc, err = p.docs.Load()
		return err
	})
	g.Go(func() error {
		var err error
		counters, err = p.heat.GetAll()
		return err
	})
	if err := g.Wait(); err != nil {
		return models.Document{}, nil, err
	}

	return doc, gallery.Flatten(doc, counters), nil
}

// Payload serves GET /api/gallery: the whole catalog in storefront shape.
// Off items are hidden. The response is cached in Valkey until an admin
// edit invalidates it.
func (p *Public) Payload(w http.ResponseWriter, r *http.Request) {
	if body, ok := p.galleryCache.Get(r.Context(), cache.PayloadKey()); ok {
		w.Header().Set("Content-Type", "application/json")
		w.Write(body)
		return
	}

	doc, items, err := p.loadProjection(r)
	if err != nil {
		slog.Error("gallery load failed", "error", err)
		writeError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	visible := gallery.Query(items, gallery.QueryOptions{
		ExcludeStatus: []models.ProductStatus{models.ProductStatusOff},
	})

	payload := galleryPayload{
		UpdatedAt:  doc.UpdatedAt,
		Categories: summarizeCategories(doc),
		Items:      visible,
	}

	body := marshalForCache(payload)
	if body == nil {
		writeJSON(w, http.StatusOK, payload)
		return
	}
	p.galleryCache.Set(r.Context(), cache.PayloadKey(), body)
	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}

// Items serves GET /api/gallery/items with category, q and sort query
// parameters. Off items are always hidden from the public listing.
func (p *Public) Items(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	search := r.URL.Query().Get("q")
	sortMode, _ := gallery.ParseSortMode(r.URL.Query().Get("sort"))

	key := fmt.Sprintf("items:%s|%s|%s", category, sortMode, search)
	if body, ok := p.galleryCache.Get(r.Context(), key); ok {
		w.Header().Set("Content-Type", "application/json")
		w.Write(body)
		return
	}

	_, items, err := p.loadProjection(r)
	if err != nil {
		slog.Error("gallery load failed", "error", err)
		writeError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	result := gallery.Query(items, gallery.QueryOptions{
		Category:      category,
		Search:        search,
		Sort:          sortMode,
		ExcludeStatus: []models.ProductStatus{models.ProductStatusOff},
	})

	resp := map[string]any{"items": result, "total": len(result)}
	body := marshalForCache(resp)
	if body == nil {
		writeJSON(w, http.StatusOK, resp)
		return
	}
	p.galleryCache.Set(r.Context(), key, body)
	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}

// itemDetail is an item plus its Markdown description rendered to HTML.
type itemDetail struct {
	models.Item
	DescriptionHTML string `json:"descriptionHtml,omitempty"`
}

// Item serves GET /api/gallery/items/{id}. Off items 404 here so hidden
// products are not reachable by guessing ids.
func (p *Public) Item(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	_, items, err := p.loadProjection(r)
	if err != nil {
		slog.Error("gallery load failed", "error", err)
		writeError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	for _, item := range items {
		if item.ID != id || item.Status == models.ProductStatusOff {
			continue
		}

		detail := itemDetail{Item: item}
		if item.Description != "" {
			html, err := markdown.ToHTML(item.Description)
			if err != nil {
				slog.Warn("description render failed", "error", err, "id", id)
			} else {
				detail.DescriptionHTML = html
			}
		}
		writeJSON(w, http.StatusOK, detail)
		return
	}

	writeError(w, "item not found", http.StatusNotFound)
}

// Heat serves POST /api/gallery/heat: increments the popularity counter
// for the product named in the body and returns the new value. The counter
// lives outside the document so this never creates a catalog revision, but
// cached listings go stale and are dropped.
func (p *Public) Heat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"productId"`
	}
	if err := decodeBody(r, &req); err != nil || req.ProductID == "" {
		writeError(w, "productId is required", http.StatusBadRequest)
		return
	}
	id := req.ProductID

	doc, err := p.docs.Load()
	if err != nil {
		slog.Error("gallery load failed", "error", err)
		writeError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	product, _, ok := gallery.FindProduct(doc, id)
	if !ok || product.Status == models.ProductStatusOff {
		writeError(w, "item not found", http.StatusNotFound)
		return
	}

	value, err := p.heat.Increment(id)
	if err != nil {
		slog.Error("heat increment failed", "error", err, "id", id)
		writeError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	p.galleryCache.InvalidateAll(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{"id": id, "heat": value})
}

// summarizeCategories builds the navigation summary from the document.
func summarizeCategories(doc models.Document) []categoryInfo {
	infos := make([]categoryInfo, 0, len(doc.Groups))
	for _, g := range doc.Groups {
		visible := 0
		for _, p := range g.Images {
			if gallery.NormalizeStatus(string(p.Status)) != models.ProductStatusOff {
				visible++
			}
		}
		infos = append(infos, categoryInfo{
			Name:        g.Category,
			Description: g.Description,
			UpdatedAt:   g.UpdatedAt,
			Count:       visible,
		})
	}
	return infos
}
