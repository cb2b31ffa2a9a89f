// Package shipment provides domain entities and business logic for shipment
// tracking. It implements the Shipment aggregate root: the denormalized
// current state of a shipment plus its append-only timeline of status events.
//
// The package includes:
//   - Shipment: The aggregate root holding identity, routing, derived delivery
//     fields, and the embedded timeline
//   - Status: The closed set of lifecycle states with progress ordering and
//     display metadata
//   - TimelineEntry: One immutable record of a status event
//   - TrackingNumber: The public, immutable lookup key issued at creation
//   - TransportMethod, CargoUnits: Closed classification value objects
//
// Key business rules:
//   - A new shipment starts in PENDING with a single creation timeline entry
//   - A status update appends exactly one timeline entry; resubmitting the
//     current status is a no-op
//   - Reaching DELIVERED stamps the actual delivery time
//   - Timeline entries are never edited, reordered, or removed
//   - Any status may follow any other; the permissive rule is isolated behind
//     the TransitionPolicy hook so a stricter state machine can be substituted
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package shipment
