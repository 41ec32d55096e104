package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"rosecraft/internal/domain/jobtype"
	"rosecraft/internal/infrastructure/persistence/mappers"
	"rosecraft/internal/infrastructure/persistence/models"
	db "rosecraft/internal/shared/db"
)

type JobTypeRepository struct {
	db     *gorm.DB
	mapper mappers.JobTypeMapper
}

func NewJobTypeRepository(db *gorm.DB) *JobTypeRepository {
	return &JobTypeRepository{
		db:     db,
		mapper: mappers.NewJobTypeMapper(),
	}
}

func (r *JobTypeRepository) Save(ctx context.Context, j *jobtype.JobType) error {
	model := r.mapper.ToModel(j)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save job type: %w", err)
	}

	if err := j.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *JobTypeRepository) Update(ctx context.Context, j *jobtype.JobType) error {
	model := r.mapper.ToModel(j)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.JobTypeModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update job type: %w", result.Error)
	}

	return nil
}

func (r *JobTypeRepository) GetByID(ctx context.Context, id uint) (*jobtype.JobType, error) {
	var model models.JobTypeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find job type: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *JobTypeRepository) GetByCode(ctx context.Context, code string) (*jobtype.JobType, error) {
	var model models.JobTypeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("code = ?", code).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find job type: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *JobTypeRepository) ListActive(ctx context.Context) ([]*jobtype.JobType, error) {
	var rows []models.JobTypeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list job types: %w", err)
	}

	jobTypes := make([]*jobtype.JobType, 0, len(rows))
	for i := range rows {
		j, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		jobTypes = append(jobTypes, j)
	}

	return jobTypes, nil
}
