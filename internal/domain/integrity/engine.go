// Package integrity decides whether a create, update or delete is admissible
// given the current state of the entity and of its related entities.
//
// Each rule set turns a candidate mutation into a Plan of checks. Evaluate runs
// the plan in stage order (parent, uniqueness, cascade) and stops at the first
// rejection, which is returned as a ValidationRejected domain error.
package integrity

import (
	"cmp"
	"context"
	"errors"
	"slices"

	"github.com/executiva/backend/internal/domain/shared"
)

// Stage orders checks within a plan
type Stage int

const (
	StageParent Stage = iota
	StageUniqueness
	StageCascade
)

// String returns the stage name used in logs
func (s Stage) String() string {
	switch s {
	case StageParent:
		return "parent"
	case StageUniqueness:
		return "uniqueness"
	case StageCascade:
		return "cascade"
	default:
		return "unknown"
	}
}

// Check is a single invariant test. Run returns nil to pass, a
// *shared.DomainError to reject, or any other error for a store failure.
type Check struct {
	Stage Stage
	Field string
	Run   func(ctx context.Context) error
}

// Plan is the set of checks for one mutation
type Plan []Check

// Add appends checks and returns the plan
func (p Plan) Add(checks ...Check) Plan {
	return append(p, checks...)
}

// Evaluate runs the checks of plan ordered by stage, keeping the declared order
// inside a stage, and returns the first failure. Store failures are wrapped as
// Unexpected so that callers never mistake them for a rejection.
func Evaluate(ctx context.Context, plan Plan) error {
	ordered := slices.Clone(plan)
	slices.SortStableFunc(ordered, func(a, b Check) int {
		return cmp.Compare(a.Stage, b.Stage)
	})

	for _, check := range ordered {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := check.Run(ctx)
		if err == nil {
			continue
		}
		var de *shared.DomainError
		if errors.As(err, &de) {
			if de.Field == "" && check.Field != "" {
				de = de.WithField(check.Field)
			}
			return de
		}
		return shared.NewUnexpected(check.Stage.String()+" check on "+check.Field, err)
	}
	return nil
}
