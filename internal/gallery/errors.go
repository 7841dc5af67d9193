// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package gallery

import (
	"errors"
	"fmt"
)

// Editor operations are total: they either return a new Document or one of
// these error kinds. Callers distinguish them with errors.Is so "nothing
// changed, here's why" never looks like a crash.
var (
	// ErrNotFound reports a referenced category or product id that does
	// not exist in the document.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateID reports a product id already used by another product.
	ErrDuplicateID = errors.New("duplicate product id")

	// ErrDuplicateCategory reports a category name already in use.
	ErrDuplicateCategory = errors.New("duplicate category")

	// ErrValidation reports a missing or malformed required field.
	ErrValidation = errors.New("validation failed")
)

func notFoundErr(kind, key string) error {
	return fmt.Errorf("%s %q: %w", kind, key, ErrNotFound)
}

func duplicateIDErr(id string) error {
	return fmt.Errorf("%w: %q", ErrDuplicateID, id)
}

func duplicateCategoryErr(name string) error {
	return fmt.Errorf("%w: %q", ErrDuplicateCategory, name)
}

func validationErr(field string) error {
	return fmt.Errorf("%w: %s is required", ErrValidation, field)
}
