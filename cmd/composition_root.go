package cmd

import (
	"log/slog"
	"os"

	"parceltrack/internal/adapters/out/memory"
	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/jobs"
)

type CompositionRoot struct {
	store      *memory.Store
	uowFactory memory.StoreUnitOfWorkFactory
}

func NewCompositionRoot(_ Config) CompositionRoot {
	store := memory.NewStore()
	return CompositionRoot{
		store:      store,
		uowFactory: *memory.NewStoreUnitOfWorkFactory(store),
	}
}

func (c *CompositionRoot) CreateRegisterParcelCommandHandler() commands.RegisterParcelCommandHandler {
	var f commands.TrackingUoWFactory = FuncTrackingUoWFactory(func() commands.TrackingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterParcelCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateParcelWeightCommandHandler() commands.UpdateParcelWeightCommandHandler {
	var f commands.TrackingUoWFactory = FuncTrackingUoWFactory(func() commands.TrackingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateParcelWeightCommandHandler(f)
}

func (c *CompositionRoot) CreateLoadParcelCommandHandler() commands.LoadParcelCommandHandler {
	var f commands.LoadingUoWFactory = FuncLoadingUoWFactory(func() commands.LoadingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewLoadParcelCommandHandler(f)
}

func (c *CompositionRoot) CreateDispatchParcelCommandHandler() commands.DispatchParcelCommandHandler {
	var f commands.DispatchUoWFactory = FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDispatchParcelCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateUndoCommandHandler() commands.UndoCommandHandler {
	var f commands.TrackingUoWFactory = FuncTrackingUoWFactory(func() commands.TrackingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUndoCommandHandler(f)
}

func (c *CompositionRoot) CreateGetActiveParcelsQueryHandler() queries.GetActiveParcelsQueryHandler {
	var f queries.ListingUoWFactory = FuncListingUoWFactory(func() queries.ListingUoW {
		return c.uowFactory.Create()
	})
	return queries.NewGetActiveParcelsQueryHandler(f)
}

func (c *CompositionRoot) CreateGetSummaryReportQueryHandler() queries.GetSummaryReportQueryHandler {
	var f queries.ReportingUoWFactory = FuncReportingUoWFactory(func() queries.ReportingUoW {
		return c.uowFactory.Create()
	})
	return queries.NewGetSummaryReportQueryHandler(f)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	return jobs.NewJobManager(c.CreateGetSummaryReportQueryHandler(), logger)
}

type FuncTrackingUoWFactory func() commands.TrackingUoW

func (f FuncTrackingUoWFactory) Create() commands.TrackingUoW {
	return f()
}

type FuncLoadingUoWFactory func() commands.LoadingUoW

func (f FuncLoadingUoWFactory) Create() commands.LoadingUoW {
	return f()
}

type FuncDispatchUoWFactory func() commands.DispatchUoW

func (f FuncDispatchUoWFactory) Create() commands.DispatchUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncListingUoWFactory func() queries.ListingUoW

func (f FuncListingUoWFactory) Create() queries.ListingUoW {
	return f()
}

type FuncReportingUoWFactory func() queries.ReportingUoW

func (f FuncReportingUoWFactory) Create() queries.ReportingUoW {
	return f()
}
