package services

import (
	"time"

	"parceltrack/internal/core/domain/model/delivery"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
)

// DeliveredParcel is a single line of the delivery audit listing inside a Report.
// It projects the fields of a delivery record that matter for reporting.
type DeliveredParcel struct {
	ReceiptID   kernel.UUID
	ParcelID    parcel.ID
	Recipient   string
	Priority    parcel.Priority
	DeliveredAt time.Time
}

// Report is an aggregated snapshot of the tracking state at a single point in time.
//
// Field semantics:
//   - TotalRegistered: count of active parcels plus delivered parcels
//   - TotalDelivered: count of completed deliveries
//   - AverageWeight: mean weight across active and delivered parcels,
//     zero when no parcel was ever registered
//   - PendingByPriority: histogram of active parcels keyed by priority level,
//     always carrying an entry for every level from Highest to Lowest
//   - Delivered: audit listing of completed deliveries in completion order
type Report struct {
	TotalRegistered   int
	TotalDelivered    int
	AverageWeight     float64
	PendingByPriority map[parcel.Priority]int
	Delivered         []DeliveredParcel
}

// ReportAggregator is a domain service responsible for condensing the active parcel
// population and the delivery ledger into a single summary Report.
//
// Key responsibilities:
//   - Validating every parcel and delivery record before aggregation
//   - Counting registered and delivered parcels
//   - Averaging parcel weight across the whole registered population
//   - Building the pending-by-priority histogram over active parcels
//
// Business rules:
//   - A parcel counts as registered while active and after delivery
//   - Average weight spans active and delivered parcels together
//   - Priority buckets are always reported for all five levels, zeroes included
//   - The delivered listing preserves ledger order
//   - Aggregation never mutates its inputs
//
// Example usage:
//
//	aggregator := NewReportAggregator()
//
//	report, err := aggregator.Aggregate(activeParcels, deliveredRecords)
//	if err != nil {
//	    // An input failed validation
//	    return
//	}
//	fmt.Println(report.TotalRegistered, report.AverageWeight)
type ReportAggregator struct{}

// NewReportAggregator creates a new ReportAggregator instance.
//
// Returns:
//   - ReportAggregator: A new instance ready for report aggregation
func NewReportAggregator() ReportAggregator {
	return ReportAggregator{}
}

// Aggregate builds a summary Report from the active parcels and the delivery ledger.
//
// Parameters:
//   - active: Parcels currently held in the registry (must all be valid)
//   - delivered: Delivery records in ledger order (must all be valid)
//
// Returns:
//   - Report: The aggregated summary
//   - error: A validation error when any input parcel or record is malformed
//
// Aggregation algorithm:
//   - Validates every parcel and delivery record
//   - Sums weights across both populations for the average
//   - Guards the average against an empty population
//   - Buckets active parcels by priority level
//   - Projects delivery records into audit listing lines
func (r ReportAggregator) Aggregate(active []*parcel.Parcel, delivered []delivery.Record) (Report, error) {
	totalWeight := 0.0

	for _, p := range active {
		if err := p.Validate(); err != nil {
			return Report{}, err
		}

		totalWeight += p.Weight()
	}

	for _, record := range delivered {
		if err := record.Validate(); err != nil {
			return Report{}, err
		}

		totalWeight += record.Parcel().Weight()
	}

	totalRegistered := len(active) + len(delivered)

	averageWeight := 0.0
	if totalRegistered > 0 {
		averageWeight = totalWeight / float64(totalRegistered)
	}

	return Report{
		TotalRegistered:   totalRegistered,
		TotalDelivered:    len(delivered),
		AverageWeight:     averageWeight,
		PendingByPriority: r.pendingByPriority(active),
		Delivered:         r.deliveredListing(delivered),
	}, nil
}

// pendingByPriority buckets the active parcels by priority level.
//
// Parameters:
//   - active: Parcels currently held in the registry
//
// Returns:
//   - map[parcel.Priority]int: Counts per priority level, with every level
//     from Highest to Lowest present even when its count is zero
func (r ReportAggregator) pendingByPriority(active []*parcel.Parcel) map[parcel.Priority]int {
	pending := map[parcel.Priority]int{
		parcel.Highest: 0,
		parcel.High:    0,
		parcel.Normal:  0,
		parcel.Low:     0,
		parcel.Lowest:  0,
	}

	for _, p := range active {
		pending[p.Priority()]++
	}

	return pending
}

// deliveredListing projects delivery records into audit listing lines.
//
// Parameters:
//   - delivered: Delivery records in ledger order
//
// Returns:
//   - []DeliveredParcel: One line per record, preserving the input order
func (r ReportAggregator) deliveredListing(delivered []delivery.Record) []DeliveredParcel {
	listing := make([]DeliveredParcel, 0, len(delivered))

	for _, record := range delivered {
		listing = append(listing, DeliveredParcel{
			ReceiptID:   record.ID(),
			ParcelID:    record.Parcel().ID(),
			Recipient:   record.Parcel().Recipient(),
			Priority:    record.Parcel().Priority(),
			DeliveredAt: record.DeliveredAt(),
		})
	}

	return listing
}
