// Package catalog holds read models for the restaurant/dish catalog.
//
// The catalog is an external collaborator of the order lifecycle core: dishes
// and restaurants are managed elsewhere, and this package only models what the
// core needs to read — identity, price, availability, area and fee. The core
// never mutates catalog records; availability is re-checked at cart-add and
// again at checkout, where prices are snapshotted into order lines.
package catalog
