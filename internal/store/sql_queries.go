// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	slotsTable = "slots"

	// SessionTokenSlot is the name of the slot that keeps the session token.
	SessionTokenSlot = "access_token"
)

func upsertSlotQuery(name, value string, at time.Time) (string, []any, error) {
	return sq.Insert(slotsTable).
		Columns("name", "value", "updated_at").
		Values(name, value, at).
		Suffix("ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func selectSlotQuery(name string) (string, []any, error) {
	return sq.Select("value").
		From(slotsTable).
		Where(sq.Eq{"name": name}).
		Limit(1).
		ToSql()
}

func deleteSlotQuery(name string) (string, []any, error) {
	return sq.Delete(slotsTable).
		Where(sq.Eq{"name": name}).
		ToSql()
}
