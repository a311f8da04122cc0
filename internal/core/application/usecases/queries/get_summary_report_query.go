package queries

import (
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrGetSummaryReportQueryIsNotConstructed = errors.New(
		"GetSummaryReportQuery must be created via NewGetSummaryReportQuery constructor",
	)
)

// GetSummaryReportQuery retrieves an aggregated snapshot of the tracking state.
// Returns registration and delivery totals, the average parcel weight, the
// pending-by-priority histogram and the delivery audit listing.
//
// Example:
//
//	query := NewGetSummaryReportQuery()
//	handler := NewGetSummaryReportQueryHandler(uowFactory)
//
//	report, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to build report: %w", err)
//	}
//
//	fmt.Printf("%d registered, %d delivered, avg %.2f kg\n",
//	    report.TotalRegistered, report.TotalDelivered, report.AverageWeight)
type GetSummaryReportQuery struct {
	guard guard.ConstructorGuard
}

// NewGetSummaryReportQuery creates a query to build the summary report.
// This is a parameterless query that aggregates the whole tracking state.
func NewGetSummaryReportQuery() GetSummaryReportQuery {
	return GetSummaryReportQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetSummaryReportQueryIsNotConstructed if validation fails.
func (q GetSummaryReportQuery) Validate() error {
	return q.guard.Validate(ErrGetSummaryReportQueryIsNotConstructed)
}

// DeliveredParcelResponse is one line of the delivery audit listing.
type DeliveredParcelResponse struct {
	ReceiptID   kernel.UUID
	ParcelID    parcel.ID
	Recipient   string
	Priority    parcel.Priority
	DeliveredAt time.Time
}

// GetSummaryReportQueryResponse represents the summary report read model.
//
// TotalRegistered counts active and delivered parcels together; AverageWeight
// spans the same population and is zero when nothing was ever registered.
// PendingByPriority carries an entry for every priority level, zeroes
// included, counted over the active parcels only. Delivered preserves
// ledger order.
type GetSummaryReportQueryResponse struct {
	TotalRegistered   int
	TotalDelivered    int
	AverageWeight     float64
	PendingByPriority map[parcel.Priority]int
	Delivered         []DeliveredParcelResponse
}
