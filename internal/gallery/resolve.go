// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package gallery

import "luckshop/internal/models"

// Resolve layers a caller-held override document on top of a server-provided
// base document. Overrides are document-granular: a non-empty override (one
// with any groups) replaces the base wholesale, an empty override yields the
// base. Either way the result is normalized, so downstream code always sees
// a canonical document regardless of which tier won.
func Resolve(base, override models.Document) models.Document {
	if len(override.Groups) > 0 {
		return Normalize(override)
	}
	return Normalize(base)
}
