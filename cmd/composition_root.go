package cmd

import (
	"log/slog"

	httpin "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/auditlog"
	"dispatch/internal/adapters/out/memory"
	"dispatch/internal/adapters/out/postgres/auditrepo"
	"dispatch/internal/adapters/out/postgres/snapshotrepo"
	"dispatch/internal/adapters/out/realtime"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/ports"
	"dispatch/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires the registries, the notification hub and the
// outbound adapters into use case handlers.
//
// gormDB may be nil: snapshots are then kept in process and the audit trail
// goes to the log. mirror may be nil when no event mirror is configured.
type CompositionRoot struct {
	cfg    Config
	logger *slog.Logger

	store      *memory.Store
	uowFactory *memory.UnitOfWorkFactory

	hub         *realtime.Hub
	broadcaster ports.Broadcaster
	audit       ports.AuditLog
	snapshots   ports.SnapshotStore
}

func NewCompositionRoot(cfg Config, logger *slog.Logger, gormDB *gorm.DB, mirror ports.Broadcaster) *CompositionRoot {
	store := memory.NewStore()
	hubCfg := realtime.DefaultConfig()
	hubCfg.SendQueue = cfg.WSSendQueue
	hub := realtime.NewHub(hubCfg, logger)

	c := &CompositionRoot{
		cfg:         cfg,
		logger:      logger,
		store:       store,
		uowFactory:  memory.NewUnitOfWorkFactory(store),
		hub:         hub,
		broadcaster: hub,
	}
	if mirror != nil {
		c.broadcaster = realtime.Fanout{hub, mirror}
	}

	if gormDB != nil {
		c.audit = auditrepo.NewGormAuditLog(gormDB, logger)
		c.snapshots = snapshotrepo.NewGormSnapshotStore(gormDB)
	} else {
		c.audit = auditlog.New(logger)
		c.snapshots = memory.NewSnapshotStore()
	}
	return c
}

// Hub returns the notification hub serving /ws.
func (c *CompositionRoot) Hub() *realtime.Hub {
	return c.hub
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) riderUoW() commands.RiderUoWFactory {
	return FuncRiderUoWFactory(func() commands.RiderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.uow(), c.broadcaster)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.uow(), c.broadcaster, c.audit)
}

func (c *CompositionRoot) CreateAssignOrderCommandHandler() commands.AssignOrderCommandHandler {
	return commands.NewAssignOrderCommandHandler(c.uow(), c.broadcaster)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.uow(), c.broadcaster, c.audit)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.uow(), c.broadcaster, c.audit)
}

func (c *CompositionRoot) CreateCreateRiderCommandHandler() commands.CreateRiderCommandHandler {
	return commands.NewCreateRiderCommandHandler(c.riderUoW(), c.broadcaster)
}

func (c *CompositionRoot) CreateUpdateRiderStatusCommandHandler() commands.UpdateRiderStatusCommandHandler {
	return commands.NewUpdateRiderStatusCommandHandler(c.riderUoW(), c.broadcaster, c.audit)
}

func (c *CompositionRoot) CreateUpdateRiderCommandHandler() commands.UpdateRiderCommandHandler {
	return commands.NewUpdateRiderCommandHandler(c.riderUoW(), c.broadcaster)
}

func (c *CompositionRoot) CreateReconcileRiderAvailabilityCommandHandler() commands.ReconcileRiderAvailabilityCommandHandler {
	return commands.NewReconcileRiderAvailabilityCommandHandler(c.uow(), c.broadcaster, c.audit)
}

func (c *CompositionRoot) CreateCreateBatchCommandHandler() commands.CreateBatchCommandHandler {
	return commands.NewCreateBatchCommandHandler(c.uow(), c.broadcaster)
}

func (c *CompositionRoot) CreateUpdateBatchCommandHandler() commands.UpdateBatchCommandHandler {
	return commands.NewUpdateBatchCommandHandler(c.uow(), c.broadcaster)
}

func (c *CompositionRoot) CreateDeleteBatchCommandHandler() commands.DeleteBatchCommandHandler {
	return commands.NewDeleteBatchCommandHandler(c.uow(), c.broadcaster, c.audit)
}

func (c *CompositionRoot) CreateSaveSnapshotCommandHandler() commands.SaveSnapshotCommandHandler {
	return commands.NewSaveSnapshotCommandHandler(c.uow(), c.snapshots)
}

func (c *CompositionRoot) CreateRestoreSnapshotCommandHandler() commands.RestoreSnapshotCommandHandler {
	return commands.NewRestoreSnapshotCommandHandler(c.uow(), c.snapshots)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetRiderQueryHandler() queries.GetRiderQueryHandler {
	return queries.NewGetRiderQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetRidersQueryHandler() queries.GetRidersQueryHandler {
	return queries.NewGetRidersQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetBatchQueryHandler() queries.GetBatchQueryHandler {
	return queries.NewGetBatchQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetBatchesQueryHandler() queries.GetBatchesQueryHandler {
	return queries.NewGetBatchesQueryHandler(c.store)
}

// CreateHTTPServer assembles the REST handlers around the hub.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateOrder:       c.CreateCreateOrderCommandHandler(),
		UpdateOrderStatus: c.CreateUpdateOrderStatusCommandHandler(),
		AssignOrder:       c.CreateAssignOrderCommandHandler(),
		UpdateOrder:       c.CreateUpdateOrderCommandHandler(),
		DeleteOrder:       c.CreateDeleteOrderCommandHandler(),
		CreateRider:       c.CreateCreateRiderCommandHandler(),
		UpdateRiderStatus: c.CreateUpdateRiderStatusCommandHandler(),
		UpdateRider:       c.CreateUpdateRiderCommandHandler(),
		CreateBatch:       c.CreateCreateBatchCommandHandler(),
		UpdateBatch:       c.CreateUpdateBatchCommandHandler(),
		DeleteBatch:       c.CreateDeleteBatchCommandHandler(),
		GetOrder:          c.CreateGetOrderQueryHandler(),
		GetOrders:         c.CreateGetOrdersQueryHandler(),
		GetRider:          c.CreateGetRiderQueryHandler(),
		GetRiders:         c.CreateGetRidersQueryHandler(),
		GetBatch:          c.CreateGetBatchQueryHandler(),
		GetBatches:        c.CreateGetBatchesQueryHandler(),
	}, c.hub, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateSaveSnapshotCommandHandler(),
		c.CreateReconcileRiderAvailabilityCommandHandler(),
		jobs.Schedules{
			Snapshot:       c.cfg.SnapshotSchedule,
			RiderReconcile: c.cfg.RiderReconcileSchedule,
		},
		c.logger,
	)
}

type FuncRiderUoWFactory func() commands.RiderUoW

func (f FuncRiderUoWFactory) Create() commands.RiderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
