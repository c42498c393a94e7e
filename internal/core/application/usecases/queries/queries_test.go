package queries_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/memory"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/batch"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/rider"
	"dispatch/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type QueryHandlersTestSuite struct {
	suite.Suite
	store *memory.Store
	base  time.Time
}

func (s *QueryHandlersTestSuite) SetupTest() {
	s.store = memory.NewStore()
	s.base = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
}

func (s *QueryHandlersTestSuite) id(v string) kernel.ID {
	id, err := kernel.IDFromString(v)
	s.Require().NoError(err)
	return id
}

// seed stores three orders (O1 and O3 by C1, O2 assigned to R1), two riders
// (R1 busy) and one batch of R1.
func (s *QueryHandlersTestSuite) seed() {
	ctx := context.Background()
	uow := memory.NewUnitOfWorkFactory(s.store).Create()
	s.Require().NoError(uow.Begin(ctx))

	item, err := order.NewItem("1", 1, decimal.NewFromInt(5))
	s.Require().NoError(err)
	for i, seed := range []struct{ id, customer string }{{"O1", "C1"}, {"O2", "C2"}, {"O3", "C1"}} {
		o, orderErr := order.NewOrder(s.id(seed.id), s.id(seed.customer), []order.Item{item}, order.Details{},
			s.base.Add(time.Duration(i)*time.Minute))
		s.Require().NoError(orderErr)
		if seed.id == "O2" {
			s.Require().NoError(o.AssignToRider(s.id("R1"), s.base))
		}
		s.Require().NoError(uow.OrderRepository().Add(ctx, o))
	}

	r1, err := rider.NewRider(s.id("R1"), "One", rider.Profile{Status: rider.Busy}, s.base)
	s.Require().NoError(err)
	r2, err := rider.NewRider(s.id("R2"), "Two", rider.Profile{}, s.base.Add(time.Second))
	s.Require().NoError(err)
	s.Require().NoError(uow.RiderRepository().Add(ctx, r1))
	s.Require().NoError(uow.RiderRepository().Add(ctx, r2))

	riderID := s.id("R1")
	b, err := batch.NewBatch(s.id("B1"), []kernel.ID{s.id("O2")}, &riderID, s.base)
	s.Require().NoError(err)
	s.Require().NoError(uow.BatchRepository().Add(ctx, b))

	s.Require().NoError(uow.Commit(ctx))
}

func (s *QueryHandlersTestSuite) TestGetOrders_EmptyStore_ReturnsEmptySlice() {
	h := queries.NewGetOrdersQueryHandler(s.store)

	result, err := h.Handle(context.Background(), queries.NewGetOrdersQuery())

	s.Require().NoError(err)
	s.NotNil(result)
	s.Empty(result)
}

func (s *QueryHandlersTestSuite) TestGetOrders_ReturnsOldestFirst() {
	s.seed()
	h := queries.NewGetOrdersQueryHandler(s.store)

	result, err := h.Handle(context.Background(), queries.NewGetOrdersQuery())

	s.Require().NoError(err)
	s.Require().Len(result, 3)
	s.Equal([]string{"O1", "O2", "O3"}, []string{result[0].ID, result[1].ID, result[2].ID})
}

func (s *QueryHandlersTestSuite) TestGetOrders_ByCustomerAndRider() {
	s.seed()
	h := queries.NewGetOrdersQueryHandler(s.store)

	byCustomer, err := queries.NewGetOrdersByCustomerQuery("C1")
	s.Require().NoError(err)
	mine, err := h.Handle(context.Background(), byCustomer)
	s.Require().NoError(err)
	s.Len(mine, 2)

	byRider, err := queries.NewGetOrdersByRiderQuery("R1")
	s.Require().NoError(err)
	assigned, err := h.Handle(context.Background(), byRider)
	s.Require().NoError(err)
	s.Require().Len(assigned, 1)
	s.Equal("O2", assigned[0].ID)
}

func (s *QueryHandlersTestSuite) TestGetOrder() {
	s.seed()
	h := queries.NewGetOrderQueryHandler(s.store)

	query, err := queries.NewGetOrderQuery("O2")
	s.Require().NoError(err)
	o, err := h.Handle(context.Background(), query)
	s.Require().NoError(err)
	s.Equal(order.Assigned, o.Status)
	s.Equal("R1", o.RiderID)

	missing, err := queries.NewGetOrderQuery("O9")
	s.Require().NoError(err)
	_, err = h.Handle(context.Background(), missing)
	s.ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *QueryHandlersTestSuite) TestGetRiders_AvailableOnly() {
	s.seed()
	h := queries.NewGetRidersQueryHandler(s.store)

	all, err := h.Handle(context.Background(), queries.NewGetRidersQuery(false))
	s.Require().NoError(err)
	s.Len(all, 2)

	available, err := h.Handle(context.Background(), queries.NewGetRidersQuery(true))
	s.Require().NoError(err)
	s.Require().Len(available, 1)
	s.Equal("R2", available[0].ID)
}

func (s *QueryHandlersTestSuite) TestGetRider() {
	s.seed()
	h := queries.NewGetRiderQueryHandler(s.store)

	query, err := queries.NewGetRiderQuery("R1")
	s.Require().NoError(err)
	r, err := h.Handle(context.Background(), query)

	s.Require().NoError(err)
	s.Equal("One", r.Name)
	s.Equal(rider.Busy, r.Status)
}

func (s *QueryHandlersTestSuite) TestGetBatches() {
	s.seed()
	h := queries.NewGetBatchesQueryHandler(s.store)

	all, err := h.Handle(context.Background(), queries.NewGetBatchesQuery())
	s.Require().NoError(err)
	s.Len(all, 1)

	byRider, err := queries.NewGetBatchesByRiderQuery("R2")
	s.Require().NoError(err)
	none, err := h.Handle(context.Background(), byRider)
	s.Require().NoError(err)
	s.NotNil(none)
	s.Empty(none)
}

func (s *QueryHandlersTestSuite) TestGetBatch() {
	s.seed()
	h := queries.NewGetBatchQueryHandler(s.store)

	query, err := queries.NewGetBatchQuery("B1")
	s.Require().NoError(err)
	b, err := h.Handle(context.Background(), query)

	s.Require().NoError(err)
	s.Equal([]string{"O2"}, b.OrderIDs)
	s.Equal("R1", b.RiderID)
}

func TestQueryHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersTestSuite))
}

func TestQueries_Validate_WhenNotConstructed_ShouldReturnError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"GetOrderQuery", queries.GetOrderQuery{}.Validate(), queries.ErrGetOrderQueryIsNotConstructed},
		{"GetOrdersQuery", queries.GetOrdersQuery{}.Validate(), queries.ErrGetOrdersQueryIsNotConstructed},
		{"GetRiderQuery", queries.GetRiderQuery{}.Validate(), queries.ErrGetRiderQueryIsNotConstructed},
		{"GetRidersQuery", queries.GetRidersQuery{}.Validate(), queries.ErrGetRidersQueryIsNotConstructed},
		{"GetBatchQuery", queries.GetBatchQuery{}.Validate(), queries.ErrGetBatchQueryIsNotConstructed},
		{"GetBatchesQuery", queries.GetBatchesQuery{}.Validate(), queries.ErrGetBatchesQueryIsNotConstructed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err)
		})
	}
}

func TestQueries_WhenIDIsEmpty_ShouldReturnError(t *testing.T) {
	_, err := queries.NewGetOrderQuery(" ")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	_, err = queries.NewGetOrdersByRiderQuery("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	_, err = queries.NewGetBatchesByRiderQuery("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
