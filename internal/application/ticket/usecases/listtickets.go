package usecases

import (
	"context"

	"rosecraft/internal/application/common"
	"rosecraft/internal/application/ticket/dto"
	"rosecraft/internal/domain/ticket"
	vo "rosecraft/internal/domain/ticket/valueobjects"
	"rosecraft/internal/shared/errors"
	"rosecraft/internal/shared/logger"
)

type ListTicketsQuery struct {
	Status        string
	PaymentStatus string
	CustomerID    *uint
	Limit         int
	Offset        int
	Actor         common.Actor
}

type ListTicketsResult struct {
	Tickets []*dto.TicketDTO
	Total   int64
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	filter := ticket.ListFilter{
		CustomerID: query.CustomerID,
		Limit:      query.Limit,
		Offset:     query.Offset,
	}

	if len(query.Status) > 0 {
		status, err := vo.NewTicketStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}
	if len(query.PaymentStatus) > 0 {
		ps, err := vo.NewPaymentStatus(query.PaymentStatus)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.PaymentStatus = &ps
	}

	// Branch scoping is pushed into the query: order-side roles see their
	// branch's orders, production sees its production queue.
	switch {
	case query.Actor.Role.IsAdmin() || query.Actor.Role.IsDesigner():
	case query.Actor.Role.IsOrderScoped():
		if query.Actor.BranchID == nil {
			return &ListTicketsResult{}, nil
		}
		filter.OrderBranchID = query.Actor.BranchID
	case query.Actor.Role.IsProduction():
		if query.Actor.BranchID == nil {
			return &ListTicketsResult{}, nil
		}
		filter.ProductionBranchID = query.Actor.BranchID
	default:
		return nil, errors.NewForbiddenError("unknown role")
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	dtos := make([]*dto.TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		dtos = append(dtos, dto.FromTicket(t))
	}
	return &ListTicketsResult{Tickets: dtos, Total: total}, nil
}
