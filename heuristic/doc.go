// Package heuristic estimates the remaining cost from a cell to the goal.
//
// Three metrics are selectable per call:
//
//   - Diagonal  ("one"):   min(dx,dy)·√2 + (max(dx,dy) − min(dx,dy))
//   - Manhattan ("two"):   dx + dy
//   - Euclidean ("three"): √(dx² + dy²)
//
// ParseKind never fails: unknown selectors fall back to Euclidean.
// All functions are pure and O(1).
package heuristic
