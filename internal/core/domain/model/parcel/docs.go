// Package parcel provides domain entities and business logic for parcel
// management in the tracking system. It implements the Parcel aggregate root
// together with its identifier and priority value objects.
//
// The package includes:
//   - Parcel: The aggregate root carrying identity, routing details, weight and urgency
//   - ID: A positive numeric identifier, unique among active parcels
//   - Priority: A 1..5 urgency scale where 1 is the most urgent
//
// Key business rules:
//   - Parcels must have a positive identifier and non-empty sender, recipient and address
//   - Weight must be strictly positive and is the only mutable attribute
//   - Priority is fixed at registration and drives dispatch ordering
//   - Containers keep point-in-time snapshots of parcels, never live references
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package parcel
