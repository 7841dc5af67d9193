// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package gallery

import "luckshop/internal/models"

// Validate checks the document's uniqueness invariants: no two groups may
// share a category name and no two products may share an id, across the
// whole document. A plain linear scan is enough at catalog scale. It is
// an independently callable step so the check isn't buried in a save path.
func Validate(doc models.Document) error {
	categories := make(map[string]struct{}, len(doc.Groups))
	ids := make(map[string]struct{})

	for _, group := range doc.Groups {
		if _, dup := categories[group.Category]; dup {
			return duplicateCategoryErr(group.Category)
		}
		categories[group.Category] = struct{}{}

		for _, product := range group.Images {
			if _, dup := ids[product.ID]; dup {
				return duplicateIDErr(product.ID)
			}
			ids[product.ID] = struct{}{}
		}
	}
	return nil
}
