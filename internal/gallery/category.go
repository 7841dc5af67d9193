// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package gallery

import (
	"strings"
	"time"

	"luckshop/internal/models"
)

// DefaultGroupDescription is the auto-generated description given to a
// category created without one. Rename regenerates it only when the old
// description was still exactly this default.
func DefaultGroupDescription(name string) string {
	return name + " collection"
}

// AddCategory prepends a new empty group. The name must be non-empty after
// trimming and not already in use (exact, case-sensitive match).
func AddCategory(doc models.Document, name, description string, now time.Time) (models.Document, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return doc, validationErr("category name")
	}
	if findGroup(doc, name) >= 0 {
		return doc, duplicateCategoryErr(name)
	}

	description = strings.TrimSpace(description)
	if description == "" {
		description = DefaultGroupDescription(name)
	}

	today := FormatDate(now)
	groups := make([]models.Group, 0, len(doc.Groups)+1)
	groups = append(groups, models.Group{
		Category:    name,
		Description: description,
		UpdatedAt:   today,
		Images:      []models.Product{},
	})
	groups = append(groups, doc.Groups...)

	return models.Document{UpdatedAt: today, Groups: groups}, nil
}

// RenameCategory rewrites a group's category key in place, preserving its
// position and products. A description that was still the auto-generated
// default for the old name is regenerated for the new one; custom
// descriptions are preserved.
func RenameCategory(doc models.Document, oldName, newName string, now time.Time) (models.Document, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return doc, validationErr("category name")
	}
	if newName != oldName && findGroup(doc, newName) >= 0 {
		return doc, duplicateCategoryErr(newName)
	}

	idx := findGroup(doc, oldName)
	if idx < 0 {
		return doc, notFoundErr("category", oldName)
	}

	today := FormatDate(now)
	groups := cloneGroups(doc.Groups)

	g := groups[idx]
	g.Category = newName
	if g.Description == DefaultGroupDescription(oldName) {
		g.Description = DefaultGroupDescription(newName)
	}
	g.UpdatedAt = today
	groups[idx] = g

	return models.Document{UpdatedAt: today, Groups: groups}, nil
}

// DeleteCategory removes a group and all its products. It reports how many
// products were removed so the caller can warn about the cascade.
func DeleteCategory(doc models.Document, name string, now time.Time) (models.Document, int, error) {
	idx := findGroup(doc, name)
	if idx < 0 {
		return doc, 0, notFoundErr("category", name)
	}

	removed := len(doc.Groups[idx].Images)
	groups := make([]models.Group, 0, len(doc.Groups)-1)
	groups = append(groups, doc.Groups[:idx]...)
	groups = append(groups, doc.Groups[idx+1:]...)

	return models.Document{UpdatedAt: FormatDate(now), Groups: groups}, removed, nil
}

// ReorderCategory moves a group to a new index, shifting the others. This
// is the only operation allowed to change group order.
func ReorderCategory(doc models.Document, name string, toIndex int, now time.Time) (models.Document, error) {
	idx := findGroup(doc, name)
	if idx < 0 {
		return doc, notFoundErr("category", name)
	}
	if toIndex < 0 || toIndex >= len(doc.Groups) {
		return doc, notFoundErr("position", name)
	}

	groups := cloneGroups(doc.Groups)
	moving := groups[idx]
	groups = append(groups[:idx], groups[idx+1:]...)

	rest := make([]models.Group, 0, len(doc.Groups))
	rest = append(rest, groups[:toIndex]...)
	rest = append(rest, moving)
	rest = append(rest, groups[toIndex:]...)

	return models.Document{UpdatedAt: FormatDate(now), Groups: rest}, nil
}

// findGroup returns the index of the group with the given category name,
// or -1. Matching is exact and case-sensitive: the name is the key.
func findGroup(doc models.Document, name string) int {
	for i, group := range doc.Groups {
		if group.Category == name {
			return i
		}
	}
	return -1
}

// cloneGroups shallow-copies the group slice so callers can replace
// individual entries without touching the input document.
func cloneGroups(groups []models.Group) []models.Group {
	out := make([]models.Group, len(groups))
	copy(out, groups)
	return out
}
