package organization

import (
	"context"

	"github.com/executiva/backend/internal/application/uow"
	"github.com/executiva/backend/internal/domain/integrity"
	"github.com/executiva/backend/internal/domain/organization"
	"github.com/executiva/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// LegalOrganizationService handles legal organization CRUD
type LegalOrganizationService struct {
	store  uow.Store
	limits shared.PageLimits
	logger *zap.Logger
}

// NewLegalOrganizationService creates a new legal organization service
func NewLegalOrganizationService(store uow.Store, limits shared.PageLimits, logger *zap.Logger) *LegalOrganizationService {
	return &LegalOrganizationService{
		store:  store,
		limits: limits,
		logger: logger,
	}
}

func legalOrganizationRules(repos uow.Repositories) integrity.LegalOrganizationRules {
	return integrity.LegalOrganizationRules{
		LegalOrganizations: repos.LegalOrganizations(),
		Organizations:      repos.Organizations(),
	}
}

// Create creates a legal organization
func (s *LegalOrganizationService) Create(ctx context.Context, in LegalOrganizationInput) (*organization.LegalOrganization, error) {
	org, err := organization.NewLegalOrganization(in.Name.Value, in.CNPJ.Value, in.AddressInput.Address())
	if err != nil {
		return nil, err
	}

	err = uow.Write(ctx, s.store, s.logger, "create legal organization", func(ctx context.Context, repos uow.Repositories) error {
		if err := integrity.Evaluate(ctx, legalOrganizationRules(repos).Create(org)); err != nil {
			return err
		}
		return repos.LegalOrganizations().Create(ctx, org)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Legal organization created",
		zap.Int64("legal_organization_id", org.ID),
		zap.String("name", org.Name))
	return org, nil
}

// GetByID retrieves a legal organization by ID
func (s *LegalOrganizationService) GetByID(ctx context.Context, id int64) (*organization.LegalOrganization, error) {
	var org *organization.LegalOrganization
	err := uow.Read(ctx, s.store, s.logger, "get legal organization", func(ctx context.Context, repos uow.Repositories) error {
		var err error
		org, err = repos.LegalOrganizations().FindByID(ctx, id)
		return err
	})
	return org, err
}

// GetByCNPJ retrieves a legal organization by its tax id
func (s *LegalOrganizationService) GetByCNPJ(ctx context.Context, cnpj string) (*organization.LegalOrganization, error) {
	var org *organization.LegalOrganization
	err := uow.Read(ctx, s.store, s.logger, "get legal organization by cnpj", func(ctx context.Context, repos uow.Repositories) error {
		var err error
		org, err = repos.LegalOrganizations().FindByCNPJ(ctx, cnpj)
		return err
	})
	return org, err
}

// List returns one page of legal organizations ordered by id and the total count
func (s *LegalOrganizationService) List(ctx context.Context, offset, limit int) ([]*organization.LegalOrganization, int64, error) {
	var listing shared.Listing[*organization.LegalOrganization]
	err := uow.Read(ctx, s.store, s.logger, "list legal organizations", func(ctx context.Context, repos uow.Repositories) error {
		var err error
		listing, err = repos.LegalOrganizations().List(ctx, s.limits.Page(offset, limit))
		return err
	})
	if err != nil {
		return nil, 0, err
	}
	return listing.Items, listing.Total, nil
}

// Update applies the supplied fields to a legal organization
func (s *LegalOrganizationService) Update(ctx context.Context, id int64, in LegalOrganizationInput) (*organization.LegalOrganization, error) {
	patch := in.Patch()
	var org *organization.LegalOrganization
	err := uow.Write(ctx, s.store, s.logger, "update legal organization", func(ctx context.Context, repos uow.Repositories) error {
		current, err := repos.LegalOrganizations().FindByID(ctx, id)
		if err != nil {
			return err
		}
		next := *current
		if err := next.Apply(patch); err != nil {
			return err
		}
		if err := integrity.Evaluate(ctx, legalOrganizationRules(repos).Update(current, patch)); err != nil {
			return err
		}
		if err := repos.LegalOrganizations().Update(ctx, &next); err != nil {
			return err
		}
		org = &next
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Legal organization updated", zap.Int64("legal_organization_id", id))
	return org, nil
}

// Delete removes a legal organization that owns no organizations
func (s *LegalOrganizationService) Delete(ctx context.Context, id int64) error {
	err := uow.Write(ctx, s.store, s.logger, "delete legal organization", func(ctx context.Context, repos uow.Repositories) error {
		current, err := repos.LegalOrganizations().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := integrity.Evaluate(ctx, legalOrganizationRules(repos).Delete(current)); err != nil {
			return err
		}
		return repos.LegalOrganizations().Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info("Legal organization deleted", zap.Int64("legal_organization_id", id))
	return nil
}
