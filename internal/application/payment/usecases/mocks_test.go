package usecases

import (
	"context"

	"rosecraft/internal/domain/payment"
	"rosecraft/internal/domain/shared/events"
	"rosecraft/internal/domain/ticket"
	"rosecraft/internal/shared/logger"
)

type mockPaymentRepository struct {
	rows map[uint]*payment.Payment

	SaveFunc         func(ctx context.Context, p *payment.Payment) error
	UpdateFunc       func(ctx context.Context, p *payment.Payment) error
	GetByIDFunc      func(ctx context.Context, id uint) (*payment.Payment, error)
	ListByTicketFunc func(ctx context.Context, ticketID uint) ([]*payment.Payment, error)
	DeleteFunc       func(ctx context.Context, id uint) error
}

func newMockPaymentRepository() *mockPaymentRepository {
	return &mockPaymentRepository{rows: make(map[uint]*payment.Payment)}
}

func (m *mockPaymentRepository) Save(ctx context.Context, p *payment.Payment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	if p.ID() == 0 {
		if err := p.SetID(uint(len(m.rows) + 1)); err != nil {
			return err
		}
	}
	m.rows[p.ID()] = p
	return nil
}

func (m *mockPaymentRepository) Update(ctx context.Context, p *payment.Payment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	m.rows[p.ID()] = p
	return nil
}

func (m *mockPaymentRepository) GetByID(ctx context.Context, id uint) (*payment.Payment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return m.rows[id], nil
}

func (m *mockPaymentRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*payment.Payment, error) {
	if m.ListByTicketFunc != nil {
		return m.ListByTicketFunc(ctx, ticketID)
	}
	var out []*payment.Payment
	for _, p := range m.rows {
		if p.TicketID() == ticketID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockPaymentRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	delete(m.rows, id)
	return nil
}

type mockTicketRepository struct {
	GetByIDFunc          func(ctx context.Context, id uint) (*ticket.Ticket, error)
	GetByIDForUpdateFunc func(ctx context.Context, id uint) (*ticket.Ticket, error)
	UpdateFunc           func(ctx context.Context, t *ticket.Ticket) error
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error { return nil }

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetByIDForUpdate(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, id)
	}
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetByNumber(ctx context.Context, number string) (*ticket.Ticket, error) {
	return nil, nil
}

func (m *mockTicketRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	return false, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.ListFilter) ([]*ticket.Ticket, int64, error) {
	return nil, 0, nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, id uint) error { return nil }

type mockTxManager struct{}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockPublisher struct {
	Published []events.DomainEvent
}

func (m *mockPublisher) Publish(event events.DomainEvent) error {
	m.Published = append(m.Published, event)
	return nil
}

func (m *mockPublisher) PublishAll(evts []events.DomainEvent) error {
	m.Published = append(m.Published, evts...)
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
