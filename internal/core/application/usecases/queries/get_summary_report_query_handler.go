package queries

import (
	"context"

	"parceltrack/internal/core/domain/services"
)

// GetSummaryReportQueryHandler builds the summary report read model.
// Reads the registry and the delivery ledger within one transaction and
// delegates the aggregation rules to the domain service, so the report
// reflects a single consistent point in time.
//
// Example:
//
//	handler := NewGetSummaryReportQueryHandler(uowFactory)
//	query := NewGetSummaryReportQuery()
//
//	report, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to build report: %v", err)
//	    return err
//	}
//
//	for priority, count := range report.PendingByPriority {
//	    fmt.Printf("Priority %s: %d pending\n", priority, count)
//	}
type GetSummaryReportQueryHandler struct {
	uowFactory ReportingUoWFactory
}

// NewGetSummaryReportQueryHandler creates a handler for summary report queries.
// Requires a ReportingUoWFactory for transactional access to the registry and
// the delivery ledger.
func NewGetSummaryReportQueryHandler(uowFactory ReportingUoWFactory) GetSummaryReportQueryHandler {
	return GetSummaryReportQueryHandler{uowFactory: uowFactory}
}

// Handle executes the query to build the summary report.
// Returns the aggregated read model covering both the active parcels and the
// completed deliveries.
func (h GetSummaryReportQueryHandler) Handle(
	ctx context.Context,
	query GetSummaryReportQuery,
) (GetSummaryReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSummaryReportQueryResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return GetSummaryReportQueryResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	registry := uow.ParcelRegistry()
	ledger := uow.DeliveryLedger()

	active, err := registry.GetAll(ctx)
	if err != nil {
		return GetSummaryReportQueryResponse{}, err
	}

	delivered, err := ledger.GetAll(ctx)
	if err != nil {
		return GetSummaryReportQueryResponse{}, err
	}

	report, err := services.NewReportAggregator().Aggregate(active, delivered)
	if err != nil {
		return GetSummaryReportQueryResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return GetSummaryReportQueryResponse{}, err
	}

	listing := make([]DeliveredParcelResponse, 0, len(report.Delivered))
	for _, line := range report.Delivered {
		listing = append(listing, DeliveredParcelResponse{
			ReceiptID:   line.ReceiptID,
			ParcelID:    line.ParcelID,
			Recipient:   line.Recipient,
			Priority:    line.Priority,
			DeliveredAt: line.DeliveredAt,
		})
	}

	return GetSummaryReportQueryResponse{
		TotalRegistered:   report.TotalRegistered,
		TotalDelivered:    report.TotalDelivered,
		AverageWeight:     report.AverageWeight,
		PendingByPriority: report.PendingByPriority,
		Delivered:         listing,
	}, nil
}
