package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"rosecraft/internal/domain/payment"
	"rosecraft/internal/infrastructure/persistence/mappers"
	"rosecraft/internal/infrastructure/persistence/models"
	db "rosecraft/internal/shared/db"
)

type PaymentRepository struct {
	db     *gorm.DB
	mapper mappers.PaymentMapper
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{
		db:     db,
		mapper: mappers.NewPaymentMapper(),
	}
}

func (r *PaymentRepository) Save(ctx context.Context, p *payment.Payment) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save payment: %w", err)
	}

	if err := p.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *PaymentRepository) Update(ctx context.Context, p *payment.Payment) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.PaymentModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at", "deleted_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update payment: %w", result.Error)
	}

	return nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, id uint) (*payment.Payment, error) {
	var model models.PaymentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find payment: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// ListByTicket returns the surviving rows for a ticket in received order.
func (r *PaymentRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*payment.Payment, error) {
	var rows []models.PaymentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("received_at ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	payments := make([]*payment.Payment, 0, len(rows))
	for i := range rows {
		p, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}

	return payments, nil
}

// Delete soft-deletes a row so the ledger stays auditable.
func (r *PaymentRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Delete(&models.PaymentModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}

	return nil
}
