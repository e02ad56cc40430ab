// Package kernel contains shared value objects used across all domain aggregates.
//
// The kernel provides:
//   - ID: surrogate integer identifier for persisted entities
//   - Money: fixed-point monetary amount backed by shopspring/decimal
//   - AreaCode: locality identifier scoping restaurant visibility and
//     delivery-partner matching to a customer's region
//
// All kernel types are immutable value objects. Zero values are either invalid
// (ID, AreaCode) or represent a meaningful neutral element (Money, zero amount),
// and every type exposes Validate for use when reconstructing state from
// persistence or external input.
package kernel
