// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// ProductStatus represents the selling state of a product.
type ProductStatus string

const (
	ProductStatusOn      ProductStatus = "on"
	ProductStatusOff     ProductStatus = "off"
	ProductStatusSoldOut ProductStatus = "sold-out"
)

// Product is a single catalog entry inside a group. The JSON shape matches
// the gallery document format consumed by the storefront, including the
// legacy single-image URL field kept for older documents.
type Product struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	UploadedAt  string        `json:"uploadedAt"`
	Heat        int           `json:"heat,omitempty"`
	CoverURL    string        `json:"coverUrl,omitempty"`
	Shots       []string      `json:"shots,omitempty"`
	Description string        `json:"description,omitempty"`
	URL         string        `json:"url,omitempty"` // legacy single-image field
	Status      ProductStatus `json:"status,omitempty"`
}

// Group is a category and its ordered products. The Category string is both
// the display name and the stable key; order of Products is display order.
type Group struct {
	Category    string    `json:"category"`
	Description string    `json:"description"`
	UpdatedAt   string    `json:"updatedAt"`
	Images      []Product `json:"images"`
}

// Document is the whole catalog: an ordered sequence of groups plus a
// document-level date used as a fallback for products without one.
// Documents are treated as immutable values; editors return new copies.
type Document struct {
	UpdatedAt string  `json:"updatedAt"`
	Groups    []Group `json:"groups"`
}

// EmptyDocument returns the default document used when nothing has been
// persisted yet.
func EmptyDocument() Document {
	return Document{UpdatedAt: "", Groups: []Group{}}
}

// Item is a product flattened with its owning group's metadata and the
// resolved heat value. It is the read-only projection used for listing,
// searching and sorting; it never feeds back into the Document.
type Item struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	Category         string        `json:"category"`
	UploadedAt       string        `json:"uploadedAt"`
	Heat             int           `json:"heat"`
	CoverURL         string        `json:"coverUrl"`
	Shots            []string      `json:"shots"`
	Description      string        `json:"description,omitempty"`
	GroupDescription string        `json:"groupDescription"`
	GroupUpdatedAt   string        `json:"groupUpdatedAt"`
	Status           ProductStatus `json:"status"`
}

// HeatRecord is one row of the external popularity counter store.
// Absence of a record implies heat 0.
type HeatRecord struct {
	ProductID string `json:"productId"`
	Heat      int    `json:"heat"`
}

// Asset is a stored image file in the object storage library, independent
// of whether any product currently references it.
type Asset struct {
	Name       string `json:"name"`
	URL        string `json:"url"`
	ModifiedAt int64  `json:"modifiedAt"` // unix milliseconds
	Used       bool   `json:"used"`
}

// Admin is the single administrator account. The gallery has exactly one
// operator; credentials live in one database row.
type Admin struct {
	Email        string
	PasswordHash string
	TOTPSecret   string
	TOTPEnabled  bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
