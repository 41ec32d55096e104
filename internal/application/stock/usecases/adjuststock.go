package usecases

import (
	"context"

	"github.com/shopspring/decimal"

	"rosecraft/internal/application/common"
	"rosecraft/internal/domain/stock"
	"rosecraft/internal/shared/errors"
	"rosecraft/internal/shared/logger"
)

type AdjustStockCommand struct {
	StockItemID uint
	NewCount    decimal.Decimal
	Notes       string
	Actor       common.Actor
}

// AdjustStockUseCase reconciles the recorded count with a physical recount.
// The delta lands in the ledger as a manual adjustment.
type AdjustStockUseCase struct {
	itemRepo     stock.ItemRepository
	movementRepo stock.MovementRepository
	txManager    TransactionManager
	logger       logger.Interface
}

func NewAdjustStockUseCase(
	itemRepo stock.ItemRepository,
	movementRepo stock.MovementRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *AdjustStockUseCase {
	return &AdjustStockUseCase{
		itemRepo:     itemRepo,
		movementRepo: movementRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

func (uc *AdjustStockUseCase) Execute(ctx context.Context, cmd AdjustStockCommand) (*MovementResult, error) {
	uc.logger.Infow("executing adjust stock use case",
		"stock_item_id", cmd.StockItemID, "new_count", cmd.NewCount)

	if cmd.StockItemID == 0 {
		return nil, errors.NewValidationError("stock item ID is required")
	}
	if !cmd.Actor.Role.IsAdmin() {
		return nil, errors.NewForbiddenError("only admin may adjust stock counts")
	}

	var result *MovementResult
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		item, err := uc.itemRepo.GetByIDForUpdate(txCtx, cmd.StockItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return errors.NewNotFoundError("stock item not found")
		}

		movement, err := item.Adjust(cmd.NewCount, stock.ManualReference(), actorIDPtr(cmd.Actor), cmd.Notes)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if movement == nil {
			result = &MovementResult{
				StockItemID:  item.ID(),
				CurrentStock: item.CurrentStock(),
			}
			return nil
		}

		if err := uc.itemRepo.Update(txCtx, item); err != nil {
			return err
		}
		if err := uc.movementRepo.Save(txCtx, movement); err != nil {
			return err
		}

		result = &MovementResult{
			StockItemID:  item.ID(),
			MovementID:   movement.ID(),
			CurrentStock: item.CurrentStock(),
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to adjust stock", "stock_item_id", cmd.StockItemID, "error", err)
		return nil, err
	}

	return result, nil
}
