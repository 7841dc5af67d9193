// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package gallery implements the catalog document engine: normalization,
// projection, querying, category/product editing and asset usage tracking.
// Every operation is a pure function over an immutable Document value; the
// caller owns persistence and decides when a mutated copy is saved.
package gallery

import (
	"regexp"
	"strings"
	"time"
)

const canonicalDateLayout = "2006/01/02"

var (
	// looseDate accepts year/month/day with either separator and
	// unpadded month or day, e.g. "2024-3-7".
	looseDate = regexp.MustCompile(`^(\d{4})[/-](\d{1,2})[/-](\d{1,2})$`)

	// canonicalDate matches the canonical zero-padded form.
	canonicalDate = regexp.MustCompile(`^(\d{4})/(\d{2})/(\d{2})$`)
)

// NormalizeDate converts a loosely formatted date string to the canonical
// "YYYY/MM/DD" form. Anything that does not look like a date is trimmed and
// passed through unchanged; documents are never rejected over a bad date.
func NormalizeDate(value string) string {
	text := strings.TrimSpace(value)
	m := looseDate.FindStringSubmatch(text)
	if m == nil {
		return text
	}

	month := m[2]
	if len(month) == 1 {
		month = "0" + month
	}
	day := m[3]
	if len(day) == 1 {
		day = "0" + day
	}
	return m[1] + "/" + month + "/" + day
}

// SortableDate converts a date string to a sortable integer (unix
// milliseconds). Unparseable dates yield 0 so they sort as the minimum
// value rather than erroring.
func SortableDate(value string) int64 {
	normalized := NormalizeDate(value)
	if !canonicalDate.MatchString(normalized) {
		return 0
	}

	t, err := time.Parse(canonicalDateLayout, normalized)
	if err != nil {
		return 0
	}
	return t.UnixMilli()
}

// FormatDate renders a time in the canonical document date form.
func FormatDate(t time.Time) string {
	return t.Format(canonicalDateLayout)
}
