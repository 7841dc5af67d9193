// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package gallery

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"luckshop/internal/models"
)

// SortMode selects the ordering applied to a projected item list.
type SortMode string

const (
	SortTimeDesc SortMode = "time-desc"
	SortTimeAsc  SortMode = "time-asc"
	SortNameAsc  SortMode = "name-asc"
	SortNameDesc SortMode = "name-desc"
	SortHeat     SortMode = "heat"
)

// DefaultSortMode is used when a caller supplies no (or an unknown) mode.
const DefaultSortMode = SortTimeDesc

// ParseSortMode validates a raw sort mode string.
func ParseSortMode(value string) (SortMode, bool) {
	switch SortMode(value) {
	case SortTimeDesc, SortTimeAsc, SortNameAsc, SortNameDesc, SortHeat:
		return SortMode(value), true
	}
	return DefaultSortMode, false
}

// QueryOptions configures filtering and ordering for Query.
type QueryOptions struct {
	// Category filters by exact category name; empty means all categories.
	Category string

	// Search filters by case-insensitive substring match on the name.
	Search string

	// ExcludeStatus drops items in any of the given statuses. A public
	// listing excludes "off"; admin listings exclude nothing.
	ExcludeStatus []models.ProductStatus

	// Sort selects the ordering. Zero value falls back to DefaultSortMode.
	Sort SortMode
}

// Query filters and sorts a projected item list. It never mutates the
// input; the result is a fresh slice.
//
// Name comparisons are locale-aware (the storefront is Chinese-language,
// so collation follows zh rules). Every non-name sort mode breaks exact
// ties by name ascending so the ordering is deterministic.
func Query(items []models.Item, opts QueryOptions) []models.Item {
	search := strings.ToLower(strings.TrimSpace(opts.Search))

	excluded := func(status models.ProductStatus) bool {
		for _, s := range opts.ExcludeStatus {
			if s == status {
				return true
			}
		}
		return false
	}

	filtered := make([]models.Item, 0, len(items))
	for _, item := range items {
		if opts.Category != "" && item.Category != opts.Category {
			continue
		}
		if excluded(item.Status) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(item.Name), search) {
			continue
		}
		filtered = append(filtered, item)
	}

	mode := opts.Sort
	if _, ok := ParseSortMode(string(mode)); !ok || mode == "" {
		mode = DefaultSortMode
	}

	// Collators carry mutable buffers, so build one per call rather than
	// sharing a package-level instance across goroutines.
	coll := collate.New(language.Chinese)
	byName := func(a, b models.Item) int {
		return coll.CompareString(a.Name, b.Name)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		a, b := filtered[i], filtered[j]

		switch mode {
		case SortNameAsc:
			return byName(a, b) < 0
		case SortNameDesc:
			return byName(a, b) > 0
		case SortHeat:
			if a.Heat != b.Heat {
				return a.Heat > b.Heat
			}
			return byName(a, b) < 0
		default: // SortTimeDesc, SortTimeAsc
			at, bt := SortableDate(a.UploadedAt), SortableDate(b.UploadedAt)
			if at != bt {
				if mode == SortTimeAsc {
					return at < bt
				}
				return at > bt
			}
			return byName(a, b) < 0
		}
	})

	return filtered
}
