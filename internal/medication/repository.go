package medication

import (
	"context"
	"errors"

	"github.com/hanimtuba/medication-tracking/pkg/logging"
	"github.com/hanimtuba/medication-tracking/pkg/result"
)

// Repository mediates between the data sources and the use cases. It is
// the classification boundary: collaborator faults never cross it raw —
// every outcome leaves as a Result, with panics wrapped as unexpected
// failures by the guard.
type Repository struct {
	remote RemoteSource
	local  LocalSource
	sink   *logging.Sink
}

// NewRepository wires a repository. sink may be nil, in which case the
// process default is used.
func NewRepository(remote RemoteSource, local LocalSource, sink *logging.Sink) *Repository {
	if sink == nil {
		sink = logging.Default()
	}
	return &Repository{remote: remote, local: local, sink: sink}
}

// classifyFault maps a collaborator error to its failure kind.
func classifyFault(err error) result.Failure {
	var remoteErr *RemoteError
	switch {
	case errors.Is(err, ErrOffline):
		return result.NetworkFailure("")
	case errors.As(err, &remoteErr):
		return result.ServerFailure("")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return result.NetworkFailure("")
	default:
		return result.UnexpectedFailure(err.Error())
	}
}

// List fetches the medication set, network first with write-through
// caching. When the remote fails, cached data is served if any exists;
// otherwise the classified remote failure is returned. Cache faults on the
// fallback path classify as cache failures.
func (r *Repository) List(ctx context.Context) result.Result[[]Medication] {
	return result.Guard(classifyFault, func() ([]Medication, error) {
		items, err := r.remote.List(ctx)
		if err == nil {
			if cerr := r.local.Store(items); cerr != nil {
				// Write-through failure degrades offline support but
				// not the current request.
				r.sink.Failure("repository.List", result.CacheFailure(cerr.Error()))
			}
			return items, nil
		}

		remoteFault := err
		r.sink.Failure("repository.List", classifyFault(remoteFault))

		cached, cerr := r.local.Load()
		if cerr != nil {
			r.sink.Failure("repository.List", result.CacheFailure(cerr.Error()))
			return nil, remoteFault
		}
		if len(cached) > 0 {
			return cached, nil
		}
		return nil, remoteFault
	})
}

// Add validates and stores a new medication, remote first, then
// write-through to the cache.
func (r *Repository) Add(ctx context.Context, m Medication) result.Result[Medication] {
	if err := m.Validate(); err != nil {
		return result.Fail[Medication](result.ValidationFailure(err.Error()))
	}

	return result.Guard(classifyFault, func() (Medication, error) {
		if err := r.remote.Add(ctx, m); err != nil {
			return Medication{}, err
		}
		cached, cerr := r.local.Load()
		if cerr == nil {
			if cerr = r.local.Store(append(cached, m)); cerr == nil {
				return m, nil
			}
		}
		r.sink.Failure("repository.Add", result.CacheFailure(cerr.Error()))
		return m, nil
	})
}
