package billing

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/intellicollect-api/internal/application/dto"
	"github.com/jhoicas/intellicollect-api/internal/application/validation"
	"github.com/jhoicas/intellicollect-api/internal/domain"
	"github.com/jhoicas/intellicollect-api/internal/domain/entity"
	"github.com/jhoicas/intellicollect-api/internal/domain/repository"
	"github.com/jhoicas/intellicollect-api/internal/domain/risk"
)

// CustomerUseCase casos de uso para clientes de cartera.
type CustomerUseCase struct {
	repo      repository.CustomerRepository
	invoices  repository.InvoiceRepository
	validator *validation.Validator
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(
	repo repository.CustomerRepository,
	invoices repository.InvoiceRepository,
	validator *validation.Validator,
) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, invoices: invoices, validator: validator}
}

// List lista clientes con búsqueda por nombre, email o empresa (sin distinguir mayúsculas).
func (uc *CustomerUseCase) List(ctx context.Context, params dto.CustomerListParams) (*dto.CustomersResponse, error) {
	all, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar clientes: %w", err)
	}
	if q := strings.ToLower(strings.TrimSpace(params.Search)); q != "" {
		filtered := all[:0]
		for _, c := range all {
			if matchesSearch(&c, q) {
				filtered = append(filtered, c)
			}
		}
		all = filtered
	}
	page, meta := dto.Paginate(all, params.PageRequest)
	return &dto.CustomersResponse{Customers: page, PageResponse: meta}, nil
}

func matchesSearch(c *entity.Customer, q string) bool {
	return strings.Contains(strings.ToLower(c.Name), q) ||
		strings.Contains(strings.ToLower(c.Email), q) ||
		strings.Contains(strings.ToLower(c.Company), q)
}

// Get devuelve el cliente o domain.ErrCustomerNotFound.
func (uc *CustomerUseCase) Get(ctx context.Context, id string) (*entity.Customer, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener cliente: %w", err)
	}
	if c == nil {
		return nil, domain.ErrCustomerNotFound
	}
	return c, nil
}

// Create valida y crea un cliente nuevo.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*entity.Customer, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}
	customer := &entity.Customer{
		Name:     in.Name,
		Email:    in.Email,
		Phone:    in.Phone,
		Address:  in.Address,
		Company:  in.Company,
		Industry: in.Industry,
	}
	if err := uc.repo.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("crear cliente: %w", err)
	}
	return customer, nil
}

// Update aplica una actualización parcial.
func (uc *CustomerUseCase) Update(ctx context.Context, id string, in dto.UpdateCustomerRequest) (*entity.Customer, error) {
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}
	c, err := uc.repo.Update(ctx, id, in.Patch())
	if err != nil {
		return nil, fmt.Errorf("actualizar cliente: %w", err)
	}
	if c == nil {
		return nil, domain.ErrCustomerNotFound
	}
	return c, nil
}

// Delete elimina el cliente. Sus facturas no se tocan.
func (uc *CustomerUseCase) Delete(ctx context.Context, id string) error {
	ok, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("eliminar cliente: %w", err)
	}
	if !ok {
		return domain.ErrCustomerNotFound
	}
	return nil
}

// AssessRisk reclasifica el riesgo del cliente según la proporción de facturas vencidas
// y lo persiste.
func (uc *CustomerUseCase) AssessRisk(ctx context.Context, id string) (*entity.Customer, error) {
	if _, err := uc.Get(ctx, id); err != nil {
		return nil, err
	}
	invs, err := uc.invoices.ListByCustomer(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("evaluar riesgo: %w", err)
	}
	level := risk.Assess(invs)
	c, err := uc.repo.Update(ctx, id, entity.CustomerPatch{RiskLevel: &level})
	if err != nil {
		return nil, fmt.Errorf("evaluar riesgo: %w", err)
	}
	if c == nil {
		return nil, domain.ErrCustomerNotFound
	}
	return c, nil
}
