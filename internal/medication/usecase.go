package medication

import (
	"context"

	"github.com/hanimtuba/medication-tracking/pkg/result"
)

// ListMedications is the use case behind the medications page's initial
// load.
type ListMedications struct {
	repo *Repository
}

// NewListMedications creates the use case.
func NewListMedications(repo *Repository) *ListMedications {
	return &ListMedications{repo: repo}
}

// Execute returns the current medication set.
func (uc *ListMedications) Execute(ctx context.Context) result.Result[[]Medication] {
	return uc.repo.List(ctx)
}

// AddMedication creates a new medication entry.
type AddMedication struct {
	repo *Repository
}

// NewAddMedication creates the use case.
func NewAddMedication(repo *Repository) *AddMedication {
	return &AddMedication{repo: repo}
}

// Execute validates and stores the medication, returning the stored value.
func (uc *AddMedication) Execute(ctx context.Context, m Medication) result.Result[Medication] {
	return uc.repo.Add(ctx, m)
}
