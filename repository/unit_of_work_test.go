package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rustaman254/waveUnit/events"
	"github.com/Rustaman254/waveUnit/repository/testutil"
)

func TestUnitOfWork_CommitPersistsAndFlushesEvents(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	eventBus := events.NewBus()
	received := make(chan events.Event, 1)
	eventBus.Subscribe(events.EventTypeProfileCreated, func(ctx context.Context, event events.Event) {
		received <- event
	})

	factory := NewUnitOfWorkFactory(testDB.DB, eventBus)

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))

	profile := testutil.CreateTestProfile("committed")
	require.NoError(t, uow.ProfileRepository().Create(ctx, profile))

	uow.EventBus().Publish(events.ProfileCreatedEvent{
		ProfileID: profile.ID,
		FullName:  profile.FullName,
	})

	// Event must not leak before the commit
	select {
	case <-received:
		t.Fatal("event emitted before commit")
	case <-time.After(100 * time.Millisecond):
	}

	require.NoError(t, uow.Commit())

	select {
	case event := <-received:
		created, ok := event.(events.ProfileCreatedEvent)
		require.True(t, ok)
		assert.Equal(t, profile.ID, created.ProfileID)
	case <-time.After(2 * time.Second):
		t.Fatal("event not flushed after commit")
	}

	// Data is visible outside the transaction
	repo := NewProfileRepository(testDB.DB)
	found, err := repo.GetByID(ctx, profile.ID)
	require.NoError(t, err)
	assert.NotNil(t, found)
}

func TestUnitOfWork_RollbackDiscardsDataAndEvents(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	eventBus := events.NewBus()
	received := make(chan events.Event, 1)
	eventBus.Subscribe(events.EventTypeProfileCreated, func(ctx context.Context, event events.Event) {
		received <- event
	})

	factory := NewUnitOfWorkFactory(testDB.DB, eventBus)

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))

	profile := testutil.CreateTestProfile("rolledback")
	require.NoError(t, uow.ProfileRepository().Create(ctx, profile))
	uow.EventBus().Publish(events.ProfileCreatedEvent{ProfileID: profile.ID})

	require.NoError(t, uow.Rollback())

	select {
	case <-received:
		t.Fatal("event emitted despite rollback")
	case <-time.After(200 * time.Millisecond):
	}

	repo := NewProfileRepository(testDB.DB)
	found, err := repo.GetByID(ctx, profile.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestUnitOfWork_RollbackAfterCommitIsNoOp(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	factory := NewUnitOfWorkFactory(testDB.DB, events.NewBus())

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))

	profile := testutil.CreateTestProfile("kept")
	require.NoError(t, uow.ProfileRepository().Create(ctx, profile))

	require.NoError(t, uow.Commit())
	assert.NoError(t, uow.Rollback())

	repo := NewProfileRepository(testDB.DB)
	found, err := repo.GetByID(ctx, profile.ID)
	require.NoError(t, err)
	assert.NotNil(t, found)
}

func TestUnitOfWork_RepositoriesShareTransaction(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	factory := NewUnitOfWorkFactory(testDB.DB, events.NewBus())

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	defer uow.Rollback()

	profile := testutil.CreateTestProfile("shared")
	require.NoError(t, uow.ProfileRepository().Create(ctx, profile))

	// The investment insert sees the uncommitted profile row through the
	// shared transaction; its foreign key would fail otherwise
	investment := testutil.CreateTestInvestment(profile.ID, 500)
	require.NoError(t, uow.InvestmentRepository().Create(ctx, investment))
	require.NoError(t, uow.ProfileRepository().ApplyInvestment(ctx, profile.ID, decimal.NewFromInt(500), investment.TotalShares))

	require.NoError(t, uow.Commit())

	repo := NewProfileRepository(testDB.DB)
	found, err := repo.GetByID(ctx, profile.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.True(t, found.TotalShares.Equal(investment.TotalShares))
	assert.NotEqual(t, uuid.Nil, investment.ID)
}

func TestUnitOfWork_GetterPanicsBeforeBegin(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	factory := NewUnitOfWorkFactory(testDB.DB, events.NewBus())
	uow := factory.Create()

	assert.Panics(t, func() {
		uow.ProfileRepository()
	})
}
