// Package tracking provides the append-only audit ledger for order status
// transitions. Each accepted transition produces exactly one immutable Entry;
// the sequence of entries for an order is its authoritative history, and the
// most recent entry always agrees with the order's current status.
package tracking
