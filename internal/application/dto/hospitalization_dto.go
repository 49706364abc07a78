package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateStayRequest body para POST /api/hospitalizations. DailyRate chega
// como texto monetário livre.
type CreateStayRequest struct {
	PatientName string `json:"patient_name"`
	Species     string `json:"species,omitempty"`
	Breed       string `json:"breed,omitempty"`
	TutorName   string `json:"tutor_name"`
	TutorPhone  string `json:"tutor_phone,omitempty"`
	KennelCode  string `json:"kennel_code,omitempty"`
	VetName     string `json:"vet_name,omitempty"`
	DailyRate   string `json:"daily_rate,omitempty"`
	AdmittedAt  string `json:"admitted_at,omitempty"` // default: agora
	Notes       string `json:"notes,omitempty"`
}

// UpdateStayRequest body para PUT /api/hospitalizations/:id.
type UpdateStayRequest struct {
	PatientName *string `json:"patient_name,omitempty"`
	Species     *string `json:"species,omitempty"`
	Breed       *string `json:"breed,omitempty"`
	TutorName   *string `json:"tutor_name,omitempty"`
	TutorPhone  *string `json:"tutor_phone,omitempty"`
	KennelCode  *string `json:"kennel_code,omitempty"`
	VetName     *string `json:"vet_name,omitempty"`
	DailyRate   *string `json:"daily_rate,omitempty"`
	Notes       *string `json:"notes,omitempty"`
	// Status move o card entre as colunas do quadro; discharged carimba a alta.
	Status *string `json:"status,omitempty"`
}

// StayResponse internação na resposta da API.
type StayResponse struct {
	ID            string          `json:"id"`
	CompanyID     string          `json:"company_id"`
	PatientName   string          `json:"patient_name"`
	Species       string          `json:"species,omitempty"`
	Breed         string          `json:"breed,omitempty"`
	TutorName     string          `json:"tutor_name"`
	TutorPhone    string          `json:"tutor_phone,omitempty"`
	KennelCode    string          `json:"kennel_code,omitempty"`
	VetName       string          `json:"vet_name,omitempty"`
	Status        string          `json:"status"`
	DailyRate     decimal.Decimal `json:"daily_rate"`
	AccruedDays   int             `json:"accrued_days"`
	AccruedValue  decimal.Decimal `json:"accrued_value"`
	AdmittedAt    time.Time       `json:"admitted_at"`
	DischargedAt  *time.Time      `json:"discharged_at,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// StayBoardResponse quadro de internação agrupado por coluna.
type StayBoardResponse struct {
	Admitted    []StayResponse `json:"admitted"`
	Observation []StayResponse `json:"observation"`
	Surgery     []StayResponse `json:"surgery"`
	Discharged  []StayResponse `json:"discharged"`
}
