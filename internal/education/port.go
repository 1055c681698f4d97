package education

import (
	"context"

	"rx-education-api/internal/logs"
)

type EducationServicePort interface {
	List(pharmacyID uint) ([]DrugEducation, error)
	Get(pharmacyID, id uint) (*DrugEducation, error)
	Create(pharmacyID uint, input EducationInput) (*DrugEducation, error)
	Update(pharmacyID, id uint, input EducationInput) (*DrugEducation, error)
	Delete(pharmacyID, id uint) error
}

// SummarizerPort drafts a patient-friendly summary for a drug title. The
// production implementation talks to Gemini; tests swap in a stub.
type SummarizerPort interface {
	DraftSummary(ctx context.Context, title, gpi string) (string, error)
}

type LogServicePort interface {
	Log(entry logs.SystemLog, payload any) error
}

var _ EducationServicePort = (*EducationService)(nil)
var _ LogServicePort = (*logs.LogService)(nil)
