// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// ArchivedFilter selects notes by their archived flag.
type ArchivedFilter string

const (
	// ArchivedAll applies no archived filter.
	ArchivedAll ArchivedFilter = "all"
	// ArchivedOnly selects archived notes.
	ArchivedOnly ArchivedFilter = "true"
	// ArchivedActive selects notes that are not archived.
	ArchivedActive ArchivedFilter = "false"
)

// DateLayout is the format of the date filter accepted by GET /notes/.
const DateLayout = "2006-01-02"

// ParseArchivedFilter converts user input into an [ArchivedFilter]. An empty
// string is treated as [ArchivedAll].
func ParseArchivedFilter(s string) (ArchivedFilter, error) {
	switch f := ArchivedFilter(strings.ToLower(strings.TrimSpace(s))); f {
	case "", ArchivedAll:
		return ArchivedAll, nil
	case ArchivedOnly, ArchivedActive:
		return f, nil
	default:
		return "", fmt.Errorf("unknown archived filter %q", s)
	}
}

// Next cycles all -> false -> true -> all. Used by the filter toggle in the UI.
func (f ArchivedFilter) Next() ArchivedFilter {
	switch f {
	case ArchivedActive:
		return ArchivedOnly
	case ArchivedOnly:
		return ArchivedAll
	default:
		return ArchivedActive
	}
}

// Label returns a short human-readable name of the filter.
func (f ArchivedFilter) Label() string {
	switch f {
	case ArchivedActive:
		return "Active"
	case ArchivedOnly:
		return "Archived"
	default:
		return "All"
	}
}

// ListFilter holds the filters of a notes list request. It is comparable and
// is used directly as a cache key by the query layer.
type ListFilter struct {
	Keyword  string
	Archived ArchivedFilter
	// Date restricts the list to notes created on that day (YYYY-MM-DD).
	Date string
}

// Normalize returns a copy with the zero archived value replaced by
// [ArchivedAll], so that equal selections always produce equal keys.
func (f ListFilter) Normalize() ListFilter {
	if f.Archived == "" {
		f.Archived = ArchivedAll
	}
	return f
}

// Validate checks the date component of the filter.
func (f ListFilter) Validate() error {
	if f.Date == "" {
		return nil
	}
	if _, err := time.Parse(DateLayout, f.Date); err != nil {
		return fmt.Errorf("invalid date filter %q, use YYYY-MM-DD", f.Date)
	}
	return nil
}

// QueryParams renders the filter as GET /notes/ query parameters. Empty
// keyword and date, and the "all" archived selection, are omitted.
func (f ListFilter) QueryParams() url.Values {
	f = f.Normalize()
	params := url.Values{}
	if f.Keyword != "" {
		params.Set("keyword", f.Keyword)
	}
	if f.Archived != ArchivedAll {
		params.Set("archived", string(f.Archived))
	}
	if f.Date != "" {
		params.Set("date", f.Date)
	}
	return params
}
