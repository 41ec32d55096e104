package usecases

import (
	"context"

	"rosecraft/internal/domain/jobtype"
	"rosecraft/internal/domain/shared/events"
	"rosecraft/internal/domain/stock"
	"rosecraft/internal/domain/ticket"
	"rosecraft/internal/shared/logger"
)

type mockItemRepository struct {
	items map[uint]*stock.StockItem

	UpdateFunc func(ctx context.Context, item *stock.StockItem) error
}

func newMockItemRepository(items ...*stock.StockItem) *mockItemRepository {
	repo := &mockItemRepository{items: make(map[uint]*stock.StockItem)}
	for _, item := range items {
		repo.items[item.ID()] = item
	}
	return repo
}

func (m *mockItemRepository) Save(ctx context.Context, item *stock.StockItem) error {
	m.items[item.ID()] = item
	return nil
}

func (m *mockItemRepository) Update(ctx context.Context, item *stock.StockItem) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, item)
	}
	m.items[item.ID()] = item
	return nil
}

func (m *mockItemRepository) GetByID(ctx context.Context, id uint) (*stock.StockItem, error) {
	return m.items[id], nil
}

func (m *mockItemRepository) GetByIDForUpdate(ctx context.Context, id uint) (*stock.StockItem, error) {
	return m.items[id], nil
}

func (m *mockItemRepository) ListActive(ctx context.Context) ([]*stock.StockItem, error) {
	var out []*stock.StockItem
	for _, item := range m.items {
		if item.IsActive() {
			out = append(out, item)
		}
	}
	return out, nil
}

func (m *mockItemRepository) ListBelowMinimum(ctx context.Context) ([]*stock.StockItem, error) {
	var out []*stock.StockItem
	for _, item := range m.items {
		if item.IsBelowMinimum() {
			out = append(out, item)
		}
	}
	return out, nil
}

type mockMovementRepository struct {
	Saved []*stock.Movement
}

func (m *mockMovementRepository) Save(ctx context.Context, movement *stock.Movement) error {
	if movement.ID() == 0 {
		if err := movement.SetID(uint(len(m.Saved) + 1)); err != nil {
			return err
		}
	}
	m.Saved = append(m.Saved, movement)
	return nil
}

func (m *mockMovementRepository) ListByItem(ctx context.Context, itemID uint, limit, offset int) ([]*stock.Movement, error) {
	var out []*stock.Movement
	for _, mv := range m.Saved {
		if mv.StockItemID() == itemID {
			out = append(out, mv)
		}
	}
	return out, nil
}

func (m *mockMovementRepository) ListByReference(ctx context.Context, ref stock.Reference) ([]*stock.Movement, error) {
	var out []*stock.Movement
	for _, mv := range m.Saved {
		if mv.ReferenceKind() == ref.Kind && mv.ReferenceID() == ref.ID {
			out = append(out, mv)
		}
	}
	return out, nil
}

type mockTicketRepository struct {
	GetByIDFunc func(ctx context.Context, id uint) (*ticket.Ticket, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error   { return nil }
func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error { return nil }

func (m *mockTicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetByIDForUpdate(ctx context.Context, id uint) (*ticket.Ticket, error) {
	return m.GetByID(ctx, id)
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

type mockJobTypeRepository struct {
	GetByIDFunc func(ctx context.Context, id uint) (*jobtype.JobType, error)
}

func (m *mockJobTypeRepository) Save(ctx context.Context, j *jobtype.JobType) error   { return nil }
func (m *mockJobTypeRepository) Update(ctx context.Context, j *jobtype.JobType) error { return nil }

func (m *mockJobTypeRepository) GetByID(ctx context.Context, id uint) (*jobtype.JobType, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockJobTypeRepository) GetByCode(ctx context.Context, code string) (*jobtype.JobType, error) {
	return nil, nil
}

func (m *mockJobTypeRepository) ListActive(ctx context.Context) ([]*jobtype.JobType, error) {
	return nil, nil
}

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
