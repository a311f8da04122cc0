package http

import (
	"time"

	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/delivery"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/tracking"
)

// Error is the error envelope returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewParcel is the request body for registering a parcel.
type NewParcel struct {
	ID        int     `json:"id"`
	Sender    string  `json:"sender"`
	Recipient string  `json:"recipient"`
	Address   string  `json:"address"`
	Weight    float64 `json:"weight"`
	Priority  int     `json:"priority"`
}

// WeightChange is the request body for updating a parcel's weight.
type WeightChange struct {
	Weight float64 `json:"weight"`
}

// Parcel represents one tracked parcel in responses.
type Parcel struct {
	ID        int     `json:"id"`
	Sender    string  `json:"sender"`
	Recipient string  `json:"recipient"`
	Address   string  `json:"address"`
	Weight    float64 `json:"weight"`
	Priority  int     `json:"priority"`
}

// DeliveryReceipt represents the ledger record written when a delivery completes.
type DeliveryReceipt struct {
	ReceiptID   string    `json:"receiptId"`
	ParcelID    int       `json:"parcelId"`
	Recipient   string    `json:"recipient"`
	DeliveredAt time.Time `json:"deliveredAt"`
}

// UndoneOperation reports which mutation an undo request reversed.
type UndoneOperation struct {
	Kind   string `json:"kind"`
	Parcel Parcel `json:"parcel"`
}

// PriorityBucket is one line of the pending-by-priority histogram.
type PriorityBucket struct {
	Priority int    `json:"priority"`
	Name     string `json:"name"`
	Pending  int    `json:"pending"`
}

// DeliveredParcel is one line of the delivery audit listing.
type DeliveredParcel struct {
	ReceiptID   string    `json:"receiptId"`
	ParcelID    int       `json:"parcelId"`
	Recipient   string    `json:"recipient"`
	Priority    int       `json:"priority"`
	DeliveredAt time.Time `json:"deliveredAt"`
}

// SummaryReport is the aggregated tracking snapshot returned by the report endpoint.
type SummaryReport struct {
	TotalRegistered   int               `json:"totalRegistered"`
	TotalDelivered    int               `json:"totalDelivered"`
	AverageWeight     float64           `json:"averageWeight"`
	PendingByPriority []PriorityBucket  `json:"pendingByPriority"`
	Delivered         []DeliveredParcel `json:"delivered"`
}

// parcelFromDomain converts a parcel aggregate to its response representation.
func parcelFromDomain(p *parcel.Parcel) Parcel {
	return Parcel{
		ID:        p.ID().Int(),
		Sender:    p.Sender(),
		Recipient: p.Recipient(),
		Address:   p.Address(),
		Weight:    p.Weight(),
		Priority:  p.Priority().Level(),
	}
}

// receiptFromDomain converts a delivery record to its response representation.
func receiptFromDomain(record delivery.Record) DeliveryReceipt {
	return DeliveryReceipt{
		ReceiptID:   record.ID().String(),
		ParcelID:    record.Parcel().ID().Int(),
		Recipient:   record.Parcel().Recipient(),
		DeliveredAt: record.DeliveredAt(),
	}
}

// undoneFromDomain converts a consumed history entry to its response representation.
func undoneFromDomain(entry tracking.Entry) UndoneOperation {
	return UndoneOperation{
		Kind:   entry.Kind().String(),
		Parcel: parcelFromDomain(entry.Parcel()),
	}
}

// reportFromReadModel converts the summary report read model to its response
// representation. Priority buckets are emitted in level order, most urgent first.
func reportFromReadModel(report queries.GetSummaryReportQueryResponse) SummaryReport {
	buckets := make([]PriorityBucket, 0, len(report.PendingByPriority))
	for level := parcel.Highest; level <= parcel.Lowest; level++ {
		buckets = append(buckets, PriorityBucket{
			Priority: level.Level(),
			Name:     level.String(),
			Pending:  report.PendingByPriority[level],
		})
	}

	delivered := make([]DeliveredParcel, 0, len(report.Delivered))
	for _, line := range report.Delivered {
		delivered = append(delivered, DeliveredParcel{
			ReceiptID:   line.ReceiptID.String(),
			ParcelID:    line.ParcelID.Int(),
			Recipient:   line.Recipient,
			Priority:    line.Priority.Level(),
			DeliveredAt: line.DeliveredAt,
		})
	}

	return SummaryReport{
		TotalRegistered:   report.TotalRegistered,
		TotalDelivered:    report.TotalDelivered,
		AverageWeight:     report.AverageWeight,
		PendingByPriority: buckets,
		Delivered:         delivered,
	}
}
