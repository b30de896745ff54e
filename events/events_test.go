package events

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBus_EmitReachesAllSubscribers(t *testing.T) {
	bus := NewBus()

	var wg sync.WaitGroup
	wg.Add(2)

	var mu sync.Mutex
	var received []Event

	handler := func(ctx context.Context, event Event) {
		mu.Lock()
		received = append(received, event)
		mu.Unlock()
		wg.Done()
	}

	bus.Subscribe(EventTypeInvestmentCompleted, handler)
	bus.Subscribe(EventTypeInvestmentCompleted, handler)

	event := InvestmentCompletedEvent{
		InvestmentID: uuid.New(),
		ProfileID:    uuid.New(),
		AmountKsh:    decimal.NewFromInt(500),
	}
	bus.Emit(context.Background(), event)

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("handlers did not run in time")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, received, 2)
	assert.Equal(t, event, received[0])
}

func TestBus_EmitOnlyMatchingType(t *testing.T) {
	bus := NewBus()

	called := make(chan Event, 1)
	bus.Subscribe(EventTypeWithdrawalRequested, func(ctx context.Context, event Event) {
		called <- event
	})

	bus.Emit(context.Background(), ProfileCreatedEvent{ProfileID: uuid.New()})

	select {
	case <-called:
		t.Fatal("handler for a different event type was invoked")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestBus_PanickingHandlerDoesNotStopOthers(t *testing.T) {
	bus := NewBus()

	var wg sync.WaitGroup
	wg.Add(1)

	bus.Subscribe(EventTypeProfileCreated, func(ctx context.Context, event Event) {
		panic("handler failure")
	})
	bus.Subscribe(EventTypeProfileCreated, func(ctx context.Context, event Event) {
		wg.Done()
	})

	bus.Emit(context.Background(), ProfileCreatedEvent{ProfileID: uuid.New()})

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("surviving handler did not run")
	}
}

func TestTransactionalBus_FlushForwardsPending(t *testing.T) {
	bus := NewBus()
	txBus := NewTransactionalBus(bus)

	received := make(chan Event, 2)
	bus.Subscribe(EventTypeWalletLinked, func(ctx context.Context, event Event) {
		received <- event
	})

	txBus.Publish(WalletLinkedEvent{ProfileID: uuid.New(), HederaAccountID: "0.0.1234"})
	txBus.Publish(WalletLinkedEvent{ProfileID: uuid.New(), HederaAccountID: "0.0.5678"})

	// Nothing reaches the real bus before the flush
	select {
	case <-received:
		t.Fatal("event leaked before flush")
	case <-time.After(100 * time.Millisecond):
	}

	assert.NoError(t, txBus.Flush(context.Background()))

	for i := 0; i < 2; i++ {
		select {
		case <-received:
		case <-time.After(2 * time.Second):
			t.Fatal("flushed event never arrived")
		}
	}
}

func TestTransactionalBus_DiscardDropsPending(t *testing.T) {
	bus := NewBus()
	txBus := NewTransactionalBus(bus)

	received := make(chan Event, 1)
	bus.Subscribe(EventTypeWalletLinked, func(ctx context.Context, event Event) {
		received <- event
	})

	txBus.Publish(WalletLinkedEvent{ProfileID: uuid.New(), HederaAccountID: "0.0.1234"})
	txBus.Discard()

	assert.NoError(t, txBus.Flush(context.Background()))

	select {
	case <-received:
		t.Fatal("discarded event was emitted")
	case <-time.After(100 * time.Millisecond):
	}
}
