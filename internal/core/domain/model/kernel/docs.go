// Package kernel contains shared value objects used across the domain model.
//
// The package currently provides UUID, an immutable identifier value object
// wrapping github.com/google/uuid. Entity and aggregate identifiers (shipments,
// customers, tenants) are all kernel.UUID values so that identity handling,
// validation, and persistence mapping stay uniform across aggregates.
package kernel
