package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Colunas do quadro de internação veterinária.
const (
	StayAdmitted    = "admitted"    // internado
	StayObservation = "observation" // em observação
	StaySurgery     = "surgery"     // em cirurgia
	StayDischarged  = "discharged"  // alta
)

// HospitalizationStay internação de um paciente (animal) na clínica.
type HospitalizationStay struct {
	ID           string
	CompanyID    string
	PatientName  string
	Species      string
	Breed        string
	TutorName    string
	TutorPhone   string
	KennelCode   string // baia/canil
	VetName      string
	Status       string // admitted | observation | surgery | discharged
	DailyRate    decimal.Decimal
	AdmittedAt   time.Time
	DischargedAt *time.Time
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ValidStayStatus verifica a coluna do quadro contra o conjunto fechado.
func ValidStayStatus(s string) bool {
	switch s {
	case StayAdmitted, StayObservation, StaySurgery, StayDischarged:
		return true
	}
	return false
}

// AccruedDays dias de internação cobráveis até ref (mínimo 1).
func (h *HospitalizationStay) AccruedDays(ref time.Time) int {
	end := ref
	if h.DischargedAt != nil {
		end = *h.DischargedAt
	}
	days := int(end.Sub(h.AdmittedAt).Hours() / 24)
	if days < 1 {
		return 1
	}
	return days
}
