package jobtype

import "context"

type Repository interface {
	Save(ctx context.Context, j *JobType) error
	Update(ctx context.Context, j *JobType) error
	GetByID(ctx context.Context, id uint) (*JobType, error)
	GetByCode(ctx context.Context, code string) (*JobType, error)
	ListActive(ctx context.Context) ([]*JobType, error)
}
