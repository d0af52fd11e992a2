package personnel

import (
	"context"

	"github.com/executiva/backend/internal/application/uow"
	"github.com/executiva/backend/internal/domain/integrity"
	"github.com/executiva/backend/internal/domain/personnel"
	"github.com/executiva/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ExecutiveService handles executive CRUD
type ExecutiveService struct {
	store  uow.Store
	policy integrity.PersonnelPolicy
	limits shared.PageLimits
	logger *zap.Logger
}

// NewExecutiveService creates a new executive service
func NewExecutiveService(store uow.Store, policy integrity.PersonnelPolicy, limits shared.PageLimits, logger *zap.Logger) *ExecutiveService {
	return &ExecutiveService{
		store:  store,
		policy: policy,
		limits: limits,
		logger: logger,
	}
}

func (s *ExecutiveService) rules(repos uow.Repositories) integrity.ExecutiveRules {
	return integrity.ExecutiveRules{
		Executives:    repos.Executives(),
		Organizations: repos.Organizations(),
		Departments:   repos.Departments(),
		Policy:        s.policy,
	}
}

// Create creates an executive
func (s *ExecutiveService) Create(ctx context.Context, in ExecutiveInput) (*personnel.Executive, error) {
	exec, err := personnel.NewExecutive(in.Profile())
	if err != nil {
		return nil, err
	}

	err = uow.Write(ctx, s.store, s.logger, "create executive", func(ctx context.Context, repos uow.Repositories) error {
		if err := integrity.Evaluate(ctx, s.rules(repos).Create(exec)); err != nil {
			return err
		}
		return repos.Executives().Create(ctx, exec)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Executive created",
		zap.Int64("executive_id", exec.ID),
		zap.String("full_name", exec.FullName))
	return exec, nil
}

// GetByID retrieves an executive by ID
func (s *ExecutiveService) GetByID(ctx context.Context, id int64) (*personnel.Executive, error) {
	return s.find(ctx, "get executive", func(ctx context.Context, repos uow.Repositories) (*personnel.Executive, error) {
		return repos.Executives().FindByID(ctx, id)
	})
}

// GetByCPF retrieves an executive by tax id
func (s *ExecutiveService) GetByCPF(ctx context.Context, cpf string) (*personnel.Executive, error) {
	return s.find(ctx, "get executive by cpf", func(ctx context.Context, repos uow.Repositories) (*personnel.Executive, error) {
		return repos.Executives().FindByCPF(ctx, cpf)
	})
}

// GetByWorkEmail retrieves an executive by work email
func (s *ExecutiveService) GetByWorkEmail(ctx context.Context, email string) (*personnel.Executive, error) {
	return s.find(ctx, "get executive by work email", func(ctx context.Context, repos uow.Repositories) (*personnel.Executive, error) {
		return repos.Executives().FindByWorkEmail(ctx, email)
	})
}

func (s *ExecutiveService) find(ctx context.Context, op string, fn func(context.Context, uow.Repositories) (*personnel.Executive, error)) (*personnel.Executive, error) {
	var exec *personnel.Executive
	err := uow.Read(ctx, s.store, s.logger, op, func(ctx context.Context, repos uow.Repositories) error {
		var err error
		exec, err = fn(ctx, repos)
		return err
	})
	return exec, err
}

// List returns one page of executives ordered by id and the total count
func (s *ExecutiveService) List(ctx context.Context, offset, limit int) ([]*personnel.Executive, int64, error) {
	var listing shared.Listing[*personnel.Executive]
	err := uow.Read(ctx, s.store, s.logger, "list executives", func(ctx context.Context, repos uow.Repositories) error {
		var err error
		listing, err = repos.Executives().List(ctx, s.limits.Page(offset, limit))
		return err
	})
	if err != nil {
		return nil, 0, err
	}
	return listing.Items, listing.Total, nil
}

// Update applies the supplied fields to an executive
func (s *ExecutiveService) Update(ctx context.Context, id int64, in ExecutiveInput) (*personnel.Executive, error) {
	patch := in.Patch()
	var exec *personnel.Executive
	err := uow.Write(ctx, s.store, s.logger, "update executive", func(ctx context.Context, repos uow.Repositories) error {
		current, err := repos.Executives().FindByID(ctx, id)
		if err != nil {
			return err
		}
		next := *current
		if err := next.Apply(patch); err != nil {
			return err
		}
		if err := integrity.Evaluate(ctx, s.rules(repos).Update(current, patch)); err != nil {
			return err
		}
		if err := repos.Executives().Update(ctx, &next); err != nil {
			return err
		}
		exec = &next
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Executive updated", zap.Int64("executive_id", id))
	return exec, nil
}

// Delete removes an executive. Reports and secretaries pointing at it lose the link.
func (s *ExecutiveService) Delete(ctx context.Context, id int64) error {
	err := uow.Write(ctx, s.store, s.logger, "delete executive", func(ctx context.Context, repos uow.Repositories) error {
		current, err := repos.Executives().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := integrity.Evaluate(ctx, s.rules(repos).Delete(current)); err != nil {
			return err
		}
		return repos.Executives().Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info("Executive deleted", zap.Int64("executive_id", id))
	return nil
}
