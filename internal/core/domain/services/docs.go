// Package services holds domain logic that spans more than one aggregate and
// therefore belongs to no single model package.
//
// The package includes:
//   - ReportAggregator: A domain service condensing active parcels and the
//     delivery ledger into a summary Report
//
// Services here are stateless: they take validated domain objects in and
// return computed results, leaving all persistence to the callers.
package services
