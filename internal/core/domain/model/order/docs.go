// Package order provides domain entities and business logic for order lifecycle
// management in the order tracking system. It implements the Order aggregate root
// with a validated status state machine and trip assignment.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, properties, and lifecycle
//   - Status: A state machine over 13 lifecycle values with an explicit transition table
//   - TripStatus: A secondary sub-state tracking physical delivery trip progress
//
// Key business rules:
//   - Orders must have a valid unique identifier, retailer reference, and positive units
//   - Status transitions follow the status graph; Delivered, Rejected, and Cancelled are terminal
//   - Entering TripPlanned assigns a trip ID exactly once for the life of the order
//   - Side effects are keyed by the status being entered, not the transition edge
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
