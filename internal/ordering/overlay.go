// Copyright (c) 2025-2026 Jean Aguiluz
// SPDX-License-Identifier: GPL-3.0-or-later

// Package ordering implements the admin-curated manual display order for
// catalog entities. The remote API has no ordering concept, so the order is
// kept locally as a persisted sequence of entity IDs and reconciled against
// the live catalog on every load.
package ordering

import "sort"

// Direction is the direction of a manual reorder action.
type Direction string

const (
	// Up moves an entity one position earlier in display order.
	Up Direction = "up"
	// Down moves an entity one position later in display order.
	Down Direction = "down"
)

// ParseDirection returns the Direction for s, or false if s is not a
// valid direction.
func ParseDirection(s string) (Direction, bool) {
	switch Direction(s) {
	case Up, Down:
		return Direction(s), true
	}
	return "", false
}

// Reconcile merges a persisted manual order with the live entity ID set.
// Persisted IDs still present in live keep their relative order; IDs no
// longer present are dropped; live IDs not yet ordered are appended in
// their server-returned order. The result contains every live ID exactly
// once. Reconcile is idempotent: reconciling its own output with the same
// live set returns the same sequence.
func Reconcile(live, persisted []int64) []int64 {
	liveSet := make(map[int64]bool, len(live))
	for _, id := range live {
		liveSet[id] = true
	}

	result := make([]int64, 0, len(live))
	seen := make(map[int64]bool, len(live))
	for _, id := range persisted {
		if liveSet[id] && !seen[id] {
			result = append(result, id)
			seen[id] = true
		}
	}
	for _, id := range live {
		if !seen[id] {
			result = append(result, id)
			seen[id] = true
		}
	}
	return result
}

// Move returns a copy of order with id swapped one position in the given
// direction. The input is returned unchanged (same backing array) when id
// is absent or already at the boundary.
func Move(order []int64, id int64, dir Direction) []int64 {
	index := -1
	for i, v := range order {
		if v == id {
			index = i
			break
		}
	}
	if index == -1 {
		return order
	}

	target := index + 1
	if dir == Up {
		target = index - 1
	}
	if target < 0 || target >= len(order) {
		return order
	}

	next := make([]int64, len(order))
	copy(next, order)
	next[index], next[target] = next[target], next[index]
	return next
}

// Equal reports whether two orders are the same sequence.
func Equal(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// SortByOrder stable-sorts entities in place according to the reconciled
// order. Entities whose ID is not in the order sort last, keeping their
// relative position.
func SortByOrder[T any](entities []T, order []int64, id func(T) int64) {
	index := make(map[int64]int, len(order))
	for i, v := range order {
		index[v] = i
	}
	rank := func(e T) int {
		if i, ok := index[id(e)]; ok {
			return i
		}
		return len(order)
	}
	sort.SliceStable(entities, func(i, j int) bool {
		return rank(entities[i]) < rank(entities[j])
	})
}
