package queries

import (
	"context"

	"parceltrack/internal/core/ports"
)

// Read-side unit of work interfaces. Queries run under the same store-wide
// lock as commands, so they borrow the transaction lifecycle, but each query
// sees only the containers it reads.
type (
	// TxManager handles transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ParcelRegistryFactory provides access to the parcel registry within a transaction.
	ParcelRegistryFactory interface {
		ParcelRegistry() ports.ParcelRegistry
	}

	// DeliveryLedgerFactory provides access to the delivery ledger within a transaction.
	DeliveryLedgerFactory interface {
		DeliveryLedger() ports.DeliveryLedger
	}

	// ListingUoW reads the registry alone. Used for listing active parcels.
	ListingUoW interface {
		TxManager
		ParcelRegistryFactory
	}

	// ListingUoWFactory creates new listing unit of work instances.
	ListingUoWFactory interface {
		Create() ListingUoW
	}

	// ReportingUoW reads the registry and the delivery ledger together, so a
	// summary report sees both populations at one point in time.
	ReportingUoW interface {
		TxManager
		ParcelRegistryFactory
		DeliveryLedgerFactory
	}

	// ReportingUoWFactory creates new reporting unit of work instances.
	ReportingUoWFactory interface {
		Create() ReportingUoW
	}
)
