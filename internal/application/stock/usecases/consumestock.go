package usecases

import (
	"context"

	"github.com/shopspring/decimal"

	"rosecraft/internal/application/common"
	"rosecraft/internal/domain/jobtype"
	"rosecraft/internal/domain/shared/events"
	"rosecraft/internal/domain/stock"
	"rosecraft/internal/domain/ticket"
	"rosecraft/internal/shared/errors"
	"rosecraft/internal/shared/logger"
)

type ConsumeStockCommand struct {
	TicketID uint
	// StockItemID narrows consumption to one material; zero consumes every
	// material the ticket's job type links.
	StockItemID        uint
	ProductionQuantity int
	Length             *decimal.Decimal
	Width              *decimal.Decimal
	Actor              common.Actor
}

type ConsumedItem struct {
	StockItemID  uint
	Quantity     decimal.Decimal
	CurrentStock decimal.Decimal
	MovementID   uint
}

type ConsumeStockResult struct {
	TicketID uint
	Items    []ConsumedItem
}

// ConsumeStockUseCase deducts the materials a production run used, per the
// job type's consumption links, and writes the ledger movements tagged with
// the ticket. Items are locked for the deduction so concurrent consumption
// serializes per item.
type ConsumeStockUseCase struct {
	ticketRepo   ticket.Repository
	jobTypeRepo  jobtype.Repository
	itemRepo     stock.ItemRepository
	movementRepo stock.MovementRepository
	txManager    TransactionManager
	publisher    events.EventPublisher
	logger       logger.Interface
}

func NewConsumeStockUseCase(
	ticketRepo ticket.Repository,
	jobTypeRepo jobtype.Repository,
	itemRepo stock.ItemRepository,
	movementRepo stock.MovementRepository,
	txManager TransactionManager,
	publisher events.EventPublisher,
	logger logger.Interface,
) *ConsumeStockUseCase {
	return &ConsumeStockUseCase{
		ticketRepo:   ticketRepo,
		jobTypeRepo:  jobTypeRepo,
		itemRepo:     itemRepo,
		movementRepo: movementRepo,
		txManager:    txManager,
		publisher:    publisher,
		logger:       logger,
	}
}

func (uc *ConsumeStockUseCase) Execute(ctx context.Context, cmd ConsumeStockCommand) (*ConsumeStockResult, error) {
	uc.logger.Infow("executing consume stock use case",
		"ticket_id", cmd.TicketID, "stock_item_id", cmd.StockItemID,
		"production_quantity", cmd.ProductionQuantity)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.ProductionQuantity <= 0 {
		return nil, errors.NewValidationError("production quantity must be positive")
	}

	var result *ConsumeStockResult
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.GetByID(txCtx, cmd.TicketID)
		if err != nil {
			return err
		}
		if t == nil {
			return errors.NewNotFoundError("ticket not found")
		}
		if t.JobTypeID() == nil {
			return errors.NewConflictError("custom-job tickets have no consumption links")
		}

		jt, err := uc.jobTypeRepo.GetByID(txCtx, *t.JobTypeID())
		if err != nil {
			return err
		}
		if jt == nil {
			return errors.NewNotFoundError("job type not found")
		}

		// Measurement lookups are resolved against inventory up front; the
		// needs computation itself stays pure.
		areaMeasured := func(itemID uint) bool {
			item, err := uc.itemRepo.GetByID(txCtx, itemID)
			if err != nil || item == nil {
				return false
			}
			return item.IsAreaMeasured()
		}

		needs := jt.MaterialNeeds(cmd.ProductionQuantity, uc.dims(cmd), areaMeasured)
		if cmd.StockItemID != 0 {
			needs = filterNeeds(needs, cmd.StockItemID)
			if len(needs) == 0 {
				return errors.NewValidationError("stock item is not linked to this job type")
			}
		}

		result = &ConsumeStockResult{TicketID: t.ID()}
		for _, need := range needs {
			if !need.Quantity.IsPositive() {
				continue
			}

			item, err := uc.itemRepo.GetByIDForUpdate(txCtx, need.StockItemID)
			if err != nil {
				return err
			}
			if item == nil {
				return errors.NewNotFoundError("stock item not found")
			}

			wasBelow := item.IsBelowMinimum()
			movement, err := item.Consume(need.Quantity, stock.TicketReference(t.ID()), actorIDPtr(cmd.Actor), "")
			if err != nil {
				return errors.NewValidationError(err.Error())
			}
			if err := uc.itemRepo.Update(txCtx, item); err != nil {
				return err
			}
			if err := uc.movementRepo.Save(txCtx, movement); err != nil {
				return err
			}

			if uc.publisher != nil && !wasBelow && item.IsBelowMinimum() {
				if err := uc.publisher.Publish(stock.NewBelowMinimumEvent(item)); err != nil {
					uc.logger.Warnw("failed to publish low stock event", "error", err)
				}
			}

			result.Items = append(result.Items, ConsumedItem{
				StockItemID:  item.ID(),
				Quantity:     need.Quantity,
				CurrentStock: item.CurrentStock(),
				MovementID:   movement.ID(),
			})
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to consume stock", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	return result, nil
}

func (uc *ConsumeStockUseCase) dims(cmd ConsumeStockCommand) *jobtype.Dimensions {
	if cmd.Length == nil || cmd.Width == nil {
		return nil
	}
	return &jobtype.Dimensions{Length: *cmd.Length, Width: *cmd.Width}
}

func filterNeeds(needs []jobtype.MaterialNeed, itemID uint) []jobtype.MaterialNeed {
	filtered := needs[:0]
	for _, n := range needs {
		if n.StockItemID == itemID {
			filtered = append(filtered, n)
		}
	}
	return filtered
}

func actorIDPtr(actor common.Actor) *uint {
	if !actor.IsAuthenticated() {
		return nil
	}
	id := actor.UserID
	return &id
}
