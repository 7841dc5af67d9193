// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package gallery

import "luckshop/internal/models"

// UsedURLs computes the set of every image URL referenced anywhere in the
// document: covers, legacy urls and all shots across every product. It is
// a pure derived view with no persistent state. An asset is only safely
// deletable when it is unreferenced at the moment of the check, so callers
// must recompute against the current document right before acting, never
// against a stale snapshot.
func UsedURLs(doc models.Document) map[string]struct{} {
	used := make(map[string]struct{})
	for _, group := range doc.Groups {
		for _, product := range group.Images {
			if product.CoverURL != "" {
				used[product.CoverURL] = struct{}{}
			}
			if product.URL != "" {
				used[product.URL] = struct{}{}
			}
			for _, shot := range product.Shots {
				if shot != "" {
					used[shot] = struct{}{}
				}
			}
		}
	}
	return used
}

// MarkUsage annotates library assets with whether the document references
// them, returning a new slice.
func MarkUsage(assets []models.Asset, doc models.Document) []models.Asset {
	used := UsedURLs(doc)
	out := make([]models.Asset, len(assets))
	for i, asset := range assets {
		asset.Used = false
		if _, ok := used[asset.URL]; ok {
			asset.Used = true
		}
		out[i] = asset
	}
	return out
}

// Unused filters the library down to assets the document does not
// reference, returning a new slice.
func Unused(assets []models.Asset, doc models.Document) []models.Asset {
	used := UsedURLs(doc)
	out := make([]models.Asset, 0, len(assets))
	for _, asset := range assets {
		if _, ok := used[asset.URL]; ok {
			continue
		}
		asset.Used = false
		out = append(out, asset)
	}
	return out
}
