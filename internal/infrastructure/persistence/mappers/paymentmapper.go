package mappers

import (
	"rosecraft/internal/domain/payment"
	vo "rosecraft/internal/domain/payment/valueobjects"
	"rosecraft/internal/infrastructure/persistence/models"
)

// PaymentMapper handles the conversion between Payment domain entities and persistence models.
type PaymentMapper interface {
	ToModel(p *payment.Payment) *models.PaymentModel
	ToDomain(model *models.PaymentModel) (*payment.Payment, error)
}

// PaymentMapperImpl is the concrete implementation of PaymentMapper.
type PaymentMapperImpl struct{}

// NewPaymentMapper creates a new PaymentMapper.
func NewPaymentMapper() PaymentMapper {
	return &PaymentMapperImpl{}
}

func (m *PaymentMapperImpl) ToModel(p *payment.Payment) *models.PaymentModel {
	return &models.PaymentModel{
		ID:            p.ID(),
		TicketID:      p.TicketID(),
		Amount:        p.Amount(),
		PaymentType:   p.PaymentType().String(),
		Allocation:    p.Allocation().String(),
		Status:        p.Status().String(),
		Method:        p.Method(),
		ReferenceNo:   p.ReferenceNo(),
		Notes:         p.Notes(),
		BalanceBefore: p.BalanceBefore(),
		BalanceAfter:  p.BalanceAfter(),
		ReceivedBy:    p.ReceivedBy(),
		ReceivedAt:    p.ReceivedAt(),
		CreatedAt:     p.CreatedAt(),
		UpdatedAt:     p.UpdatedAt(),
	}
}

func (m *PaymentMapperImpl) ToDomain(model *models.PaymentModel) (*payment.Payment, error) {
	paymentType, _ := vo.NewPaymentType(model.PaymentType)
	allocation, _ := vo.NewAllocation(model.Allocation)
	status, _ := vo.NewStatus(model.Status)

	return payment.ReconstructPayment(
		model.ID,
		model.TicketID,
		model.Amount,
		paymentType,
		allocation,
		status,
		model.Method,
		model.ReferenceNo,
		model.Notes,
		model.BalanceBefore,
		model.BalanceAfter,
		model.ReceivedBy,
		model.ReceivedAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
