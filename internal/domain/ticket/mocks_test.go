package ticket

import "context"

type mockRepository struct {
	SaveFunc           func(ctx context.Context, t *Ticket) error
	UpdateFunc         func(ctx context.Context, t *Ticket) error
	GetByIDFunc        func(ctx context.Context, id uint) (*Ticket, error)
	GetByNumberFunc    func(ctx context.Context, number string) (*Ticket, error)
	ExistsByNumberFunc func(ctx context.Context, number string) (bool, error)
	ListFunc           func(ctx context.Context, filter ListFilter) ([]*Ticket, int64, error)
	DeleteFunc         func(ctx context.Context, id uint) error
}

func (m *mockRepository) Save(ctx context.Context, t *Ticket) error {
	return m.SaveFunc(ctx, t)
}

func (m *mockRepository) Update(ctx context.Context, t *Ticket) error {
	return m.UpdateFunc(ctx, t)
}

func (m *mockRepository) GetByID(ctx context.Context, id uint) (*Ticket, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *mockRepository) GetByIDForUpdate(ctx context.Context, id uint) (*Ticket, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *mockRepository) GetByNumber(ctx context.Context, number string) (*Ticket, error) {
	return m.GetByNumberFunc(ctx, number)
}

func (m *mockRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	return m.ExistsByNumberFunc(ctx, number)
}

func (m *mockRepository) List(ctx context.Context, filter ListFilter) ([]*Ticket, int64, error) {
	return m.ListFunc(ctx, filter)
}

func (m *mockRepository) Delete(ctx context.Context, id uint) error {
	return m.DeleteFunc(ctx, id)
}
