package usecases

import (
	"context"
	"fmt"

	"rosecraft/internal/domain/jobtype"
	"rosecraft/internal/domain/shared/events"
	"rosecraft/internal/domain/ticket"
	"rosecraft/internal/domain/workflow"
	"rosecraft/internal/shared/logger"
)

type mockTicketRepository struct {
	GetByIDFunc func(ctx context.Context, id uint) (*ticket.Ticket, error)
	UpdateFunc  func(ctx context.Context, t *ticket.Ticket) error
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

// mockProgressRepository keeps rows in memory keyed by ticket and step so a
// test can walk a sequence end to end.
type mockProgressRepository struct {
	rows map[string]*workflow.Progress
}

func newMockProgressRepository() *mockProgressRepository {
	return &mockProgressRepository{rows: make(map[string]*workflow.Progress)}
}

func progressKey(ticketID uint, stepKey string) string {
	return fmt.Sprintf("%d/%s", ticketID, stepKey)
}

func (m *mockProgressRepository) Save(ctx context.Context, p *workflow.Progress) error {
	if p.ID() == 0 {
		if err := p.SetID(uint(len(m.rows) + 1)); err != nil {
			return err
		}
	}
	m.rows[progressKey(p.TicketID(), p.StepKey())] = p
	return nil
}

func (m *mockProgressRepository) Update(ctx context.Context, p *workflow.Progress) error {
	m.rows[progressKey(p.TicketID(), p.StepKey())] = p
	return nil
}

func (m *mockProgressRepository) GetByTicketAndStep(ctx context.Context, ticketID uint, stepKey string) (*workflow.Progress, error) {
	return m.rows[progressKey(ticketID, stepKey)], nil
}

func (m *mockProgressRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*workflow.Progress, error) {
	var out []*workflow.Progress
	for _, p := range m.rows {
		if p.TicketID() == ticketID {
			out = append(out, p)
		}
	}
	return out, nil
}

type mockAssignmentRepository struct {
	GetActiveFunc          func(ctx context.Context, ticketID uint, stepKey string, workerID uint) (*workflow.Assignment, error)
	ListActiveByTicketFunc func(ctx context.Context, ticketID uint) ([]*workflow.Assignment, error)
	SaveFunc               func(ctx context.Context, a *workflow.Assignment) error
}

func (m *mockAssignmentRepository) Save(ctx context.Context, a *workflow.Assignment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, a)
	}
	if a.ID() == 0 {
		return a.SetID(1)
	}
	return nil
}

func (m *mockAssignmentRepository) Update(ctx context.Context, a *workflow.Assignment) error {
	return nil
}

func (m *mockAssignmentRepository) GetActive(ctx context.Context, ticketID uint, stepKey string, workerID uint) (*workflow.Assignment, error) {
	if m.GetActiveFunc != nil {
		return m.GetActiveFunc(ctx, ticketID, stepKey, workerID)
	}
	return nil, nil
}

func (m *mockAssignmentRepository) ListActiveByTicket(ctx context.Context, ticketID uint) ([]*workflow.Assignment, error) {
	if m.ListActiveByTicketFunc != nil {
		return m.ListActiveByTicketFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockAssignmentRepository) ListActiveByWorker(ctx context.Context, workerID uint) ([]*workflow.Assignment, error) {
	return nil, nil
}

type mockSequenceResolver struct {
	Sequence []string
	Err      error
}

func (m *mockSequenceResolver) ResolveForTicket(ctx context.Context, t *ticket.Ticket) ([]string, error) {
	return m.Sequence, m.Err
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
