package usecases

import (
	"context"

	"rosecraft/internal/application/common"
	"rosecraft/internal/application/ticket/dto"
	"rosecraft/internal/domain/access"
	"rosecraft/internal/domain/ticket"
	"rosecraft/internal/shared/errors"
	"rosecraft/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID uint
	Number   string
	Actor    common.Actor
}

type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	policy     *access.Policy
	logger     logger.Interface
}

func NewGetTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		policy:     access.NewPolicy(),
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	var (
		t   *ticket.Ticket
		err error
	)
	switch {
	case query.TicketID != 0:
		t, err = uc.ticketRepo.GetByID(ctx, query.TicketID)
	case len(query.Number) > 0:
		t, err = uc.ticketRepo.GetByNumber(ctx, query.Number)
	default:
		return nil, errors.NewValidationError("ticket ID or number is required")
	}
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	view := access.TicketView{
		Status:             t.Status().String(),
		OrderBranchID:      t.OrderBranchID(),
		ProductionBranchID: t.ProductionBranchID(),
	}
	actor := access.Actor{
		UserID:   query.Actor.UserID,
		Role:     query.Actor.Role,
		BranchID: query.Actor.BranchID,
	}
	if !uc.policy.CanView(view, actor) {
		return nil, errors.NewForbiddenError("actor may not view this ticket")
	}

	return dto.FromTicket(t), nil
}
