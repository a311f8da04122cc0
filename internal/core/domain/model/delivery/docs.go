// Package delivery provides the audit primitives for completed deliveries.
// It implements the Record value object, one immutable line of the
// append-only delivery ledger.
//
// The package includes:
//   - Record: A receipt pairing its own identity with a delivered-parcel snapshot and timestamp
//
// Key business rules:
//   - Records are immutable once constructed
//   - Records own their parcel snapshots; live parcel changes never show through
//   - The ledger is append-only, and undo never retracts a record
package delivery
