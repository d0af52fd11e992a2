package personnel

import (
	"context"

	"github.com/executiva/backend/internal/application/uow"
	"github.com/executiva/backend/internal/domain/integrity"
	"github.com/executiva/backend/internal/domain/personnel"
	"github.com/executiva/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// SecretaryService handles secretary CRUD and the secretary-executive links
type SecretaryService struct {
	store  uow.Store
	policy integrity.PersonnelPolicy
	limits shared.PageLimits
	logger *zap.Logger
}

// NewSecretaryService creates a new secretary service
func NewSecretaryService(store uow.Store, policy integrity.PersonnelPolicy, limits shared.PageLimits, logger *zap.Logger) *SecretaryService {
	return &SecretaryService{
		store:  store,
		policy: policy,
		limits: limits,
		logger: logger,
	}
}

func (s *SecretaryService) rules(repos uow.Repositories) integrity.SecretaryRules {
	return integrity.SecretaryRules{
		Secretaries:   repos.Secretaries(),
		Executives:    repos.Executives(),
		Organizations: repos.Organizations(),
		Departments:   repos.Departments(),
		Policy:        s.policy,
	}
}

// resolveExecutives looks up the requested ids in the same transaction
func resolveExecutives(ctx context.Context, repos uow.Repositories, requested []int64) (integrity.ExecutiveSet, error) {
	ids := personnel.NormalizeIDs(requested)
	set := integrity.ExecutiveSet{Requested: ids, Resolved: []int64{}}
	if len(ids) == 0 {
		return set, nil
	}
	resolved, err := repos.Executives().ExistingIDs(ctx, ids)
	if err != nil {
		return set, err
	}
	set.Resolved = personnel.NormalizeIDs(resolved)
	return set, nil
}

// Create creates a secretary linked to the requested executives that exist
func (s *SecretaryService) Create(ctx context.Context, in SecretaryInput) (*personnel.Secretary, error) {
	sec, err := personnel.NewSecretary(in.Profile())
	if err != nil {
		return nil, err
	}

	err = uow.Write(ctx, s.store, s.logger, "create secretary", func(ctx context.Context, repos uow.Repositories) error {
		set, err := resolveExecutives(ctx, repos, in.ExecutiveIDs.Value)
		if err != nil {
			return err
		}
		if err := integrity.Evaluate(ctx, s.rules(repos).Create(sec, set)); err != nil {
			return err
		}
		sec.ReplaceExecutives(set.Resolved)
		return repos.Secretaries().Create(ctx, sec)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Secretary created",
		zap.Int64("secretary_id", sec.ID),
		zap.Int64s("executive_ids", sec.ExecutiveIDs))
	return sec, nil
}

// GetByID retrieves a secretary with its executive set
func (s *SecretaryService) GetByID(ctx context.Context, id int64) (*personnel.Secretary, error) {
	var sec *personnel.Secretary
	err := uow.Read(ctx, s.store, s.logger, "get secretary", func(ctx context.Context, repos uow.Repositories) error {
		var err error
		sec, err = repos.Secretaries().FindByID(ctx, id)
		return err
	})
	return sec, err
}

// GetByCPF retrieves a secretary by tax id
func (s *SecretaryService) GetByCPF(ctx context.Context, cpf string) (*personnel.Secretary, error) {
	var sec *personnel.Secretary
	err := uow.Read(ctx, s.store, s.logger, "get secretary by cpf", func(ctx context.Context, repos uow.Repositories) error {
		var err error
		sec, err = repos.Secretaries().FindByCPF(ctx, cpf)
		return err
	})
	return sec, err
}

// List returns one page of secretaries ordered by id and the total count
func (s *SecretaryService) List(ctx context.Context, offset, limit int) ([]*personnel.Secretary, int64, error) {
	var listing shared.Listing[*personnel.Secretary]
	err := uow.Read(ctx, s.store, s.logger, "list secretaries", func(ctx context.Context, repos uow.Repositories) error {
		var err error
		listing, err = repos.Secretaries().List(ctx, s.limits.Page(offset, limit))
		return err
	})
	if err != nil {
		return nil, 0, err
	}
	return listing.Items, listing.Total, nil
}

// Update applies the supplied fields. A supplied executive set replaces the
// current one wholesale.
func (s *SecretaryService) Update(ctx context.Context, id int64, in SecretaryInput) (*personnel.Secretary, error) {
	patch := in.Patch()
	var sec *personnel.Secretary
	err := uow.Write(ctx, s.store, s.logger, "update secretary", func(ctx context.Context, repos uow.Repositories) error {
		current, err := repos.Secretaries().FindByID(ctx, id)
		if err != nil {
			return err
		}
		next := *current
		if err := next.Apply(patch); err != nil {
			return err
		}

		var set *integrity.ExecutiveSet
		if patch.ExecutiveIDs.Set {
			resolved, err := resolveExecutives(ctx, repos, patch.ExecutiveIDs.Value)
			if err != nil {
				return err
			}
			set = &resolved
		}
		if err := integrity.Evaluate(ctx, s.rules(repos).Update(current, patch, set)); err != nil {
			return err
		}

		if err := repos.Secretaries().Update(ctx, &next); err != nil {
			return err
		}
		if set != nil {
			next.ReplaceExecutives(set.Resolved)
			if err := repos.Secretaries().ReplaceExecutives(ctx, id, next.ExecutiveIDs); err != nil {
				return err
			}
		}
		sec = &next
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Secretary updated",
		zap.Int64("secretary_id", id),
		zap.Int64s("executive_ids", sec.ExecutiveIDs))
	return sec, nil
}

// Delete removes a secretary and its executive links
func (s *SecretaryService) Delete(ctx context.Context, id int64) error {
	err := uow.Write(ctx, s.store, s.logger, "delete secretary", func(ctx context.Context, repos uow.Repositories) error {
		current, err := repos.Secretaries().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := integrity.Evaluate(ctx, s.rules(repos).Delete(current)); err != nil {
			return err
		}
		return repos.Secretaries().Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info("Secretary deleted", zap.Int64("secretary_id", id))
	return nil
}
