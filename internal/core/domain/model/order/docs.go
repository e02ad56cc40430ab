// Package order contains the Order aggregate root and its lifecycle state
// machine.
//
// An order is an immutable financial record created at checkout: its lines,
// price snapshot and delivery estimate never change after creation. The only
// mutable parts are the status, which moves through a fixed transition graph
// gated by actor roles, and the delivery partner reference set when the order
// goes out for delivery.
//
// Role gating is modelled by the Actor types in this package. A status change
// is legal only if both the transition graph allows the edge and the acting
// Actor is authorized for it on this particular order.
package order
