// Package medication holds the app's domain slice: the medication entity,
// the remote/local data sources, and the repository that translates
// collaborator faults into classified failures at the boundary.
package medication

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Medication is one tracked medication.
type Medication struct {
	ID       uuid.UUID
	Name     string
	Dosage   string
	Schedule string
	Active   bool
}

// New creates an active medication with a fresh ID.
func New(name, dosage, schedule string) Medication {
	return Medication{
		ID:       uuid.New(),
		Name:     name,
		Dosage:   dosage,
		Schedule: schedule,
		Active:   true,
	}
}

// Validate checks the caller-supplied fields.
func (m Medication) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("medication name is required")
	}
	if strings.TrimSpace(m.Dosage) == "" {
		return fmt.Errorf("medication dosage is required")
	}
	return nil
}
