package billing

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/intellicollect-api/internal/application/dto"
	"github.com/jhoicas/intellicollect-api/internal/application/validation"
	"github.com/jhoicas/intellicollect-api/internal/domain"
	"github.com/jhoicas/intellicollect-api/internal/domain/entity"
	"github.com/jhoicas/intellicollect-api/internal/domain/repository"
)

// CommunicationUseCase envío e historial de comunicaciones con clientes.
type CommunicationUseCase struct {
	comms     repository.CommunicationRepository
	customers repository.CustomerRepository
	validator *validation.Validator
}

// NewCommunicationUseCase construye el caso de uso.
func NewCommunicationUseCase(
	comms repository.CommunicationRepository,
	customers repository.CustomerRepository,
	validator *validation.Validator,
) *CommunicationUseCase {
	return &CommunicationUseCase{comms: comms, customers: customers, validator: validator}
}

// Send registra el mensaje como enviado y entregado en el acto (no hay pasarela real).
func (uc *CommunicationUseCase) Send(ctx context.Context, in dto.SendCommunicationRequest) (*entity.Communication, error) {
	in.Message = strings.TrimSpace(in.Message)
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}
	c, err := uc.customers.GetByID(ctx, in.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("enviar comunicación: %w", err)
	}
	if c == nil {
		return nil, domain.NewValidationError("customer_id", "el cliente no existe")
	}
	comm := &entity.Communication{
		CustomerID: in.CustomerID,
		Type:       in.Type,
		Subject:    in.Subject,
		Message:    in.Message,
	}
	markDelivered(comm)
	if err := uc.comms.Create(ctx, comm); err != nil {
		return nil, fmt.Errorf("enviar comunicación: %w", err)
	}
	return comm, nil
}

// History historial paginado de un cliente, del más reciente al más antiguo.
// Un cliente sin mensajes (o inexistente) devuelve una lista vacía.
func (uc *CommunicationUseCase) History(ctx context.Context, customerID string, page dto.PageRequest) (*dto.CommunicationHistoryResponse, error) {
	all, err := uc.comms.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("historial de comunicaciones: %w", err)
	}
	sortBySentAtDesc(all)
	items, meta := dto.Paginate(all, page)
	return &dto.CommunicationHistoryResponse{Communications: items, PageResponse: meta}, nil
}

func markDelivered(c *entity.Communication) {
	now := time.Now().UTC()
	c.Status = entity.DeliverySent
	c.SentAt = now
	c.DeliveredAt = &now
}

func sortBySentAtDesc(comms []entity.Communication) {
	sort.SliceStable(comms, func(i, j int) bool { return comms[i].SentAt.After(comms[j].SentAt) })
}
