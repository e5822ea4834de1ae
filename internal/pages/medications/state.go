// Package medications is the medication-list screen: an observable list
// state and the page that binds it to the lifecycle controller.
package medications

import (
	"github.com/hanimtuba/medication-tracking/internal/medication"
	"github.com/hanimtuba/medication-tracking/pkg/observe"
	"github.com/hanimtuba/medication-tracking/pkg/result"
)

// ListState owns the medication list's presentation fields. All mutation
// goes through its own methods, each ending in a notification; a full load
// emits exactly two — loading-started and loading-finished.
type ListState struct {
	observe.StateNotifier
	items   []medication.Medication
	loading bool
	failure *result.Failure
}

// NewListState creates an empty, not-loading state.
func NewListState() *ListState {
	return &ListState{}
}

// BeginLoad marks the load as in progress and clears any previous failure.
func (s *ListState) BeginLoad() {
	s.Mutate(func() {
		s.loading = true
		s.failure = nil
	})
}

// FinishLoad applies a load outcome: either the fetched items or the
// classified failure, never both. One notification covers the whole
// transition.
func (s *ListState) FinishLoad(r result.Result[[]medication.Medication]) {
	s.Mutate(func() {
		s.loading = false
		r.Match(
			func(f result.Failure) {
				s.failure = &f
			},
			func(items []medication.Medication) {
				s.items = items
				s.failure = nil
			},
		)
	})
}

// Items returns the loaded medications.
func (s *ListState) Items() []medication.Medication { return s.items }

// Loading reports whether a load is in progress.
func (s *ListState) Loading() bool { return s.loading }

// Failure returns the current failure, or nil.
func (s *ListState) Failure() *result.Failure { return s.failure }
