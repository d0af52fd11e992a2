package organization

import (
	"context"

	"github.com/executiva/backend/internal/application/uow"
	"github.com/executiva/backend/internal/domain/integrity"
	"github.com/executiva/backend/internal/domain/organization"
	"github.com/executiva/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// OrganizationService handles organization CRUD
type OrganizationService struct {
	store  uow.Store
	limits shared.PageLimits
	logger *zap.Logger
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(store uow.Store, limits shared.PageLimits, logger *zap.Logger) *OrganizationService {
	return &OrganizationService{
		store:  store,
		limits: limits,
		logger: logger,
	}
}

func organizationRules(repos uow.Repositories) integrity.OrganizationRules {
	return integrity.OrganizationRules{
		LegalOrganizations: repos.LegalOrganizations(),
		Organizations:      repos.Organizations(),
		Departments:        repos.Departments(),
	}
}

// Create creates an organization under an existing legal organization
func (s *OrganizationService) Create(ctx context.Context, in OrganizationInput) (*organization.Organization, error) {
	org, err := organization.NewOrganization(in.LegalOrganizationID.Value, in.Name.Value, in.CNPJ.Value, in.AddressInput.Address())
	if err != nil {
		return nil, err
	}

	err = uow.Write(ctx, s.store, s.logger, "create organization", func(ctx context.Context, repos uow.Repositories) error {
		if err := integrity.Evaluate(ctx, organizationRules(repos).Create(org)); err != nil {
			return err
		}
		return repos.Organizations().Create(ctx, org)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Organization created",
		zap.Int64("organization_id", org.ID),
		zap.Int64("legal_organization_id", org.LegalOrganizationID),
		zap.String("name", org.Name))
	return org, nil
}

// GetByID retrieves an organization by ID
func (s *OrganizationService) GetByID(ctx context.Context, id int64) (*organization.Organization, error) {
	var org *organization.Organization
	err := uow.Read(ctx, s.store, s.logger, "get organization", func(ctx context.Context, repos uow.Repositories) error {
		var err error
		org, err = repos.Organizations().FindByID(ctx, id)
		return err
	})
	return org, err
}

// GetByCNPJ retrieves an organization by its tax id
func (s *OrganizationService) GetByCNPJ(ctx context.Context, cnpj string) (*organization.Organization, error) {
	var org *organization.Organization
	err := uow.Read(ctx, s.store, s.logger, "get organization by cnpj", func(ctx context.Context, repos uow.Repositories) error {
		var err error
		org, err = repos.Organizations().FindByCNPJ(ctx, cnpj)
		return err
	})
	return org, err
}

// List returns one page of organizations ordered by id and the total count
func (s *OrganizationService) List(ctx context.Context, offset, limit int) ([]*organization.Organization, int64, error) {
	var listing shared.Listing[*organization.Organization]
	err := uow.Read(ctx, s.store, s.logger, "list organizations", func(ctx context.Context, repos uow.Repositories) error {
		var err error
		listing, err = repos.Organizations().List(ctx, s.limits.Page(offset, limit))
		return err
	})
	if err != nil {
		return nil, 0, err
	}
	return listing.Items, listing.Total, nil
}

// Update applies the supplied fields to an organization
func (s *OrganizationService) Update(ctx context.Context, id int64, in OrganizationInput) (*organization.Organization, error) {
	patch := in.Patch()
	var org *organization.Organization
	err := uow.Write(ctx, s.store, s.logger, "update organization", func(ctx context.Context, repos uow.Repositories) error {
		current, err := repos.Organizations().FindByID(ctx, id)
		if err != nil {
			return err
		}
		next := *current
		if err := next.Apply(patch); err != nil {
			return err
		}
		if err := integrity.Evaluate(ctx, organizationRules(repos).Update(current, patch)); err != nil {
			return err
		}
		if err := repos.Organizations().Update(ctx, &next); err != nil {
			return err
		}
		org = &next
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Organization updated", zap.Int64("organization_id", id))
	return org, nil
}

// Delete removes an organization that owns no departments
func (s *OrganizationService) Delete(ctx context.Context, id int64) error {
	err := uow.Write(ctx, s.store, s.logger, "delete organization", func(ctx context.Context, repos uow.Repositories) error {
		current, err := repos.Organizations().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := integrity.Evaluate(ctx, organizationRules(repos).Delete(current)); err != nil {
			return err
		}
		return repos.Organizations().Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info("Organization deleted", zap.Int64("organization_id", id))
	return nil
}
