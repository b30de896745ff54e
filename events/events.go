package events

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// EventType represents different types of events in the system
type EventType string

const (
	EventTypeInvestmentCompleted EventType = "investment_completed"
	EventTypeProfileCreated      EventType = "profile_created"
	EventTypeWalletLinked        EventType = "wallet_linked"
	EventTypeWithdrawalRequested EventType = "withdrawal_requested"
	EventTypeProfitDistributed   EventType = "profit_distributed"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// InvestmentCompletedEvent represents a fully settled investment
type InvestmentCompletedEvent struct {
	InvestmentID uuid.UUID
	ProfileID    uuid.UUID
	AmountKsh    decimal.Decimal
	TotalShares  decimal.Decimal
	PaymentTxID  string
	MintTxID     string
}

func (e InvestmentCompletedEvent) Type() EventType {
	return EventTypeInvestmentCompleted
}

// ProfileCreatedEvent represents a new investor registration
type ProfileCreatedEvent struct {
	ProfileID uuid.UUID
	FullName  string
}

func (e ProfileCreatedEvent) Type() EventType {
	return EventTypeProfileCreated
}

// WalletLinkedEvent represents a Hedera account being linked to a profile
type WalletLinkedEvent struct {
	ProfileID       uuid.UUID
	HederaAccountID string
}

func (e WalletLinkedEvent) Type() EventType {
	return EventTypeWalletLinked
}

// WithdrawalRequestedEvent represents a new withdrawal request
type WithdrawalRequestedEvent struct {
	WithdrawalID uuid.UUID
	ProfileID    uuid.UUID
	AmountKsh    decimal.Decimal
}

func (e WithdrawalRequestedEvent) Type() EventType {
	return EventTypeWithdrawalRequested
}

// ProfitDistributedEvent represents a completed daily distribution run
type ProfitDistributedEvent struct {
	RunID               int64
	TotalDistributedKsh decimal.Decimal
	ProfilesPaid        int
}

func (e ProfitDistributedEvent) Type() EventType {
	return EventTypeProfitDistributed
}

// Handler is a function that handles events
type Handler func(ctx context.Context, event Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[EventType][]Handler),
	}
}

// Subscribe adds a handler for a specific event type
func (b *Bus) Subscribe(eventType EventType, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)

	log.WithFields(log.Fields{
		"eventType":    eventType,
		"handlerCount": len(b.handlers[eventType]),
	}).Debug("Subscribed handler to event type")
}

// Emit publishes an event to all registered handlers
func (b *Bus) Emit(ctx context.Context, event Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[event.Type()]))
	copy(handlers, b.handlers[event.Type()])
	b.mu.RUnlock()

	// Call handlers asynchronously to avoid blocking
	for i, handler := range handlers {
		go func(h Handler, handlerIndex int) {
			defer func() {
				if r := recover(); r != nil {
					log.WithFields(log.Fields{
						"eventType":    event.Type(),
						"handlerIndex": handlerIndex,
						"panic":        r,
					}).Error("Event handler panicked")
				}
			}()
			h(ctx, event)
		}(handler, i)
	}
}

// TransactionalBus stashes events raised inside a unit of work and only
// forwards them to the real bus after the database commit succeeds.
type TransactionalBus struct {
	real    *Bus
	pending []Event
}

func NewTransactionalBus(real *Bus) *TransactionalBus {
	return &TransactionalBus{real: real}
}

func (b *TransactionalBus) Publish(e Event) {
	b.pending = append(b.pending, e)
}

// Flush emits all pending events; called after a successful commit
func (b *TransactionalBus) Flush(ctx context.Context) error {
	// Events outlive the transaction context
	eventCtx := context.Background()

	for _, ev := range b.pending {
		b.real.Emit(eventCtx, ev)
	}
	b.pending = nil
	return nil
}

// Discard drops pending events; called after rollback
func (b *TransactionalBus) Discard() {
	b.pending = nil
}
