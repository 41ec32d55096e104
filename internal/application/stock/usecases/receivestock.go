package usecases

import (
	"context"

	"github.com/shopspring/decimal"

	"rosecraft/internal/application/common"
	"rosecraft/internal/domain/stock"
	"rosecraft/internal/shared/errors"
	"rosecraft/internal/shared/logger"
)

type ReceiveStockCommand struct {
	StockItemID uint
	Quantity    decimal.Decimal
	// ReceiptID links the delivery paperwork; zero records a manual receipt.
	ReceiptID uint
	UnitCost  *decimal.Decimal
	Notes     string
	Actor     common.Actor
}

type MovementResult struct {
	StockItemID  uint
	MovementID   uint
	CurrentStock decimal.Decimal
}

type ReceiveStockUseCase struct {
	itemRepo     stock.ItemRepository
	movementRepo stock.MovementRepository
	txManager    TransactionManager
	logger       logger.Interface
}

func NewReceiveStockUseCase(
	itemRepo stock.ItemRepository,
	movementRepo stock.MovementRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *ReceiveStockUseCase {
	return &ReceiveStockUseCase{
		itemRepo:     itemRepo,
		movementRepo: movementRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

func (uc *ReceiveStockUseCase) Execute(ctx context.Context, cmd ReceiveStockCommand) (*MovementResult, error) {
	uc.logger.Infow("executing receive stock use case",
		"stock_item_id", cmd.StockItemID, "quantity", cmd.Quantity)

	if cmd.StockItemID == 0 {
		return nil, errors.NewValidationError("stock item ID is required")
	}
	if !cmd.Quantity.IsPositive() {
		return nil, errors.NewValidationError("received quantity must be positive")
	}
	if cmd.Actor.Role.IsDesigner() {
		return nil, errors.NewForbiddenError("role may not receive stock")
	}

	ref := stock.ManualReference()
	if cmd.ReceiptID != 0 {
		ref = stock.PurchaseReference(cmd.ReceiptID)
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

		movement, err := item.Receive(cmd.Quantity, ref, actorIDPtr(cmd.Actor), cmd.Notes)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if cmd.UnitCost != nil {
			if err := item.SetUnitCost(*cmd.UnitCost); err != nil {
				return errors.NewValidationError(err.Error())
			}
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
		uc.logger.Errorw("failed to receive stock", "stock_item_id", cmd.StockItemID, "error", err)
		return nil, err
	}

	return result, nil
}
