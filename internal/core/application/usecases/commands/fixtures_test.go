package commands_test

import (
	"context"
	"sync"
	"testing"

	"dispatch/internal/adapters/out/memory"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/notification"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/rider"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sentEvent struct {
	Role  notification.Role
	Event notification.Event
}

// spyBroadcaster records every broadcast.
type spyBroadcaster struct {
	mu   sync.Mutex
	sent []sentEvent
}

func (s *spyBroadcaster) Broadcast(role notification.Role, event notification.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, sentEvent{Role: role, Event: event})
}

func (s *spyBroadcaster) events() []sentEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]sentEvent(nil), s.sent...)
}

func (s *spyBroadcaster) count(role notification.Role, t notification.EventType) int {
	n := 0
	for _, e := range s.events() {
		if e.Role == role && e.Event.Type == t {
			n++
		}
	}
	return n
}

func (s *spyBroadcaster) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = nil
}

type MockAuditLog struct{ mock.Mock }

func (m *MockAuditLog) Record(ctx context.Context, action string, details any) {
	m.Called(ctx, action, details)
}

type uowFactory struct{ inner *memory.UnitOfWorkFactory }

func (f uowFactory) Create() commands.UoW { return f.inner.Create() }

type riderUoWFactory struct{ inner *memory.UnitOfWorkFactory }

func (f riderUoWFactory) Create() commands.RiderUoW { return f.inner.Create() }

// env wires every handler to one in-memory store.
type env struct {
	store       *memory.Store
	snapshots   *memory.SnapshotStore
	broadcaster *spyBroadcaster
	audit       *MockAuditLog

	createOrder       commands.CreateOrderCommandHandler
	updateOrderStatus commands.UpdateOrderStatusCommandHandler
	assignOrder       commands.AssignOrderCommandHandler
	updateOrder       commands.UpdateOrderCommandHandler
	deleteOrder       commands.DeleteOrderCommandHandler
	createRider       commands.CreateRiderCommandHandler
	updateRiderStatus commands.UpdateRiderStatusCommandHandler
	updateRider       commands.UpdateRiderCommandHandler
	createBatch       commands.CreateBatchCommandHandler
	updateBatch       commands.UpdateBatchCommandHandler
	deleteBatch       commands.DeleteBatchCommandHandler
	reconcile         commands.ReconcileRiderAvailabilityCommandHandler
	saveSnapshot      commands.SaveSnapshotCommandHandler
	restoreSnapshot   commands.RestoreSnapshotCommandHandler
}

func newEnv(t *testing.T) *env {
	t.Helper()
	store := memory.NewStore()
	inner := memory.NewUnitOfWorkFactory(store)
	f := uowFactory{inner: inner}
	rf := riderUoWFactory{inner: inner}
	b := &spyBroadcaster{}
	audit := new(MockAuditLog)
	audit.On("Record", mock.Anything, mock.Anything, mock.Anything).Maybe()
	snapshots := memory.NewSnapshotStore()

	return &env{
		store:             store,
		snapshots:         snapshots,
		broadcaster:       b,
		audit:             audit,
		createOrder:       commands.NewCreateOrderCommandHandler(f, b),
		updateOrderStatus: commands.NewUpdateOrderStatusCommandHandler(f, b, audit),
		assignOrder:       commands.NewAssignOrderCommandHandler(f, b),
		updateOrder:       commands.NewUpdateOrderCommandHandler(f, b, audit),
		deleteOrder:       commands.NewDeleteOrderCommandHandler(f, b, audit),
		createRider:       commands.NewCreateRiderCommandHandler(rf, b),
		updateRiderStatus: commands.NewUpdateRiderStatusCommandHandler(rf, b, audit),
		updateRider:       commands.NewUpdateRiderCommandHandler(rf, b),
		createBatch:       commands.NewCreateBatchCommandHandler(f, b),
		updateBatch:       commands.NewUpdateBatchCommandHandler(f, b),
		deleteBatch:       commands.NewDeleteBatchCommandHandler(f, b, audit),
		reconcile:         commands.NewReconcileRiderAvailabilityCommandHandler(f, b, audit),
		saveSnapshot:      commands.NewSaveSnapshotCommandHandler(f, snapshots),
		restoreSnapshot:   commands.NewRestoreSnapshotCommandHandler(f, snapshots),
	}
}

func (e *env) mustCreateOrder(t *testing.T, customerID string) *order.Order {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand(customerID, []commands.OrderItem{
		{ID: "1", Quantity: 2, Price: decimal.RequireFromString("4.50")},
	}, "", "")
	require.NoError(t, err)
	o, err := e.createOrder.Handle(t.Context(), cmd)
	require.NoError(t, err)
	return o
}

func (e *env) mustCreateRider(t *testing.T, id string) *rider.Rider {
	t.Helper()
	cmd, err := commands.NewCreateRiderCommand(commands.NewRiderInput{ID: id, Name: "Rider " + id})
	require.NoError(t, err)
	r, err := e.createRider.Handle(t.Context(), cmd)
	require.NoError(t, err)
	return r
}

func (e *env) mustAssign(t *testing.T, orderID, riderID string) *order.Order {
	t.Helper()
	cmd, err := commands.NewAssignOrderCommand(orderID, riderID)
	require.NoError(t, err)
	o, err := e.assignOrder.Handle(t.Context(), cmd)
	require.NoError(t, err)
	return o
}

func (e *env) order(t *testing.T, id string) order.Snapshot {
	t.Helper()
	o, err := e.store.Order(t.Context(), id)
	require.NoError(t, err)
	return o
}
