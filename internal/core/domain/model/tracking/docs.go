// Package tracking provides the undoable-history primitives of the
// parcel-tracking system. It implements the Entry value object, a tagged
// record of one reversible mutation, and the Kind enum that names the
// three reversible mutations.
//
// The package includes:
//   - Entry: A kind tag paired with a pre-mutation parcel snapshot
//   - Kind: The closed set of reversible mutations (Registered, Updated, Removed)
//
// Key business rules:
//   - Entries capture the parcel state from before the mutation they reverse
//   - Entries own their snapshots; live parcel changes never show through them
//   - The set of kinds is closed so undo dispatch can be exhaustive
//
// Delivery itself is not represented here: completing a delivery records a
// Removed entry for the registry change, while the delivery ledger keeps its
// record either way.
package tracking
