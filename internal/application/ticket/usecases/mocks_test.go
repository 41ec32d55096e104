package usecases

import (
	"context"

	"rosecraft/internal/domain/branch"
	"rosecraft/internal/domain/jobtype"
	"rosecraft/internal/domain/shared/events"
	"rosecraft/internal/domain/ticket"
	"rosecraft/internal/domain/workflow"
	"rosecraft/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc             func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc           func(ctx context.Context, t *ticket.Ticket) error
	GetByIDFunc          func(ctx context.Context, id uint) (*ticket.Ticket, error)
	GetByIDForUpdateFunc func(ctx context.Context, id uint) (*ticket.Ticket, error)
	GetByNumberFunc      func(ctx context.Context, number string) (*ticket.Ticket, error)
	ExistsByNumberFunc   func(ctx context.Context, number string) (bool, error)
	ListFunc             func(ctx context.Context, filter ticket.ListFilter) ([]*ticket.Ticket, int64, error)
	DeleteFunc           func(ctx context.Context, id uint) error
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

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
	if m.GetByNumberFunc != nil {
		return m.GetByNumberFunc(ctx, number)
	}
	return nil, nil
}

func (m *mockTicketRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	if m.ExistsByNumberFunc != nil {
		return m.ExistsByNumberFunc(ctx, number)
	}
	return false, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.ListFilter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockJobTypeRepository struct {
	SaveFunc       func(ctx context.Context, j *jobtype.JobType) error
	UpdateFunc     func(ctx context.Context, j *jobtype.JobType) error
	GetByIDFunc    func(ctx context.Context, id uint) (*jobtype.JobType, error)
	GetByCodeFunc  func(ctx context.Context, code string) (*jobtype.JobType, error)
	ListActiveFunc func(ctx context.Context) ([]*jobtype.JobType, error)
}

func (m *mockJobTypeRepository) Save(ctx context.Context, j *jobtype.JobType) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, j)
	}
	return nil
}

func (m *mockJobTypeRepository) Update(ctx context.Context, j *jobtype.JobType) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, j)
	}
	return nil
}

func (m *mockJobTypeRepository) GetByID(ctx context.Context, id uint) (*jobtype.JobType, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockJobTypeRepository) GetByCode(ctx context.Context, code string) (*jobtype.JobType, error) {
	if m.GetByCodeFunc != nil {
		return m.GetByCodeFunc(ctx, code)
	}
	return nil, nil
}

func (m *mockJobTypeRepository) ListActive(ctx context.Context) ([]*jobtype.JobType, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return nil, nil
}

type mockBranchRepository struct {
	SaveFunc                 func(ctx context.Context, b *branch.Branch) error
	UpdateFunc               func(ctx context.Context, b *branch.Branch) error
	GetByIDFunc              func(ctx context.Context, id uint) (*branch.Branch, error)
	GetDefaultProductionFunc func(ctx context.Context) (*branch.Branch, error)
	ListActiveFunc           func(ctx context.Context) ([]*branch.Branch, error)
}

func (m *mockBranchRepository) Save(ctx context.Context, b *branch.Branch) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, b)
	}
	return nil
}

func (m *mockBranchRepository) Update(ctx context.Context, b *branch.Branch) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, b)
	}
	return nil
}

func (m *mockBranchRepository) GetByID(ctx context.Context, id uint) (*branch.Branch, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockBranchRepository) GetDefaultProduction(ctx context.Context) (*branch.Branch, error) {
	if m.GetDefaultProductionFunc != nil {
		return m.GetDefaultProductionFunc(ctx)
	}
	return nil, nil
}

func (m *mockBranchRepository) ListActive(ctx context.Context) ([]*branch.Branch, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return nil, nil
}

type mockAssignmentRepository struct {
	SaveFunc               func(ctx context.Context, a *workflow.Assignment) error
	UpdateFunc             func(ctx context.Context, a *workflow.Assignment) error
	GetActiveFunc          func(ctx context.Context, ticketID uint, stepKey string, workerID uint) (*workflow.Assignment, error)
	ListActiveByTicketFunc func(ctx context.Context, ticketID uint) ([]*workflow.Assignment, error)
	ListActiveByWorkerFunc func(ctx context.Context, workerID uint) ([]*workflow.Assignment, error)
}

func (m *mockAssignmentRepository) Save(ctx context.Context, a *workflow.Assignment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, a)
	}
	return nil
}

func (m *mockAssignmentRepository) Update(ctx context.Context, a *workflow.Assignment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a)
	}
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
	if m.ListActiveByWorkerFunc != nil {
		return m.ListActiveByWorkerFunc(ctx, workerID)
	}
	return nil, nil
}

type mockAllocator struct {
	AllocateFunc func(ctx context.Context) (string, error)
}

func (m *mockAllocator) Allocate(ctx context.Context) (string, error) {
	if m.AllocateFunc != nil {
		return m.AllocateFunc(ctx)
	}
	return "RC-2026-TEST", nil
}

type mockRenderer struct {
	ToHTMLSanitizedFunc func(markdown string) (string, error)
}

func (m *mockRenderer) ToHTML(markdown string) (string, error) {
	return markdown, nil
}

func (m *mockRenderer) Sanitize(htmlContent string) string {
	return htmlContent
}

func (m *mockRenderer) ToHTMLSanitized(markdown string) (string, error) {
	if m.ToHTMLSanitizedFunc != nil {
		return m.ToHTMLSanitizedFunc(markdown)
	}
	return markdown, nil
}

// mockTxManager runs the function directly; tests exercise the logic, not
// the storage engine.
type mockTxManager struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
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

type mockSequenceResolver struct {
	Sequence []string
	Err      error
}

func (m *mockSequenceResolver) ResolveForTicket(ctx context.Context, t *ticket.Ticket) ([]string, error) {
	return m.Sequence, m.Err
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
