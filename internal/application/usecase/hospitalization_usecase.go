package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/raizvet/backoffice-api/internal/application/dto"
	"github.com/raizvet/backoffice-api/internal/domain"
	"github.com/raizvet/backoffice-api/internal/domain/entity"
	"github.com/raizvet/backoffice-api/internal/domain/finance"
	"github.com/raizvet/backoffice-api/internal/domain/repository"
)

// HospitalizationUseCase casos de uso do quadro de internação veterinária.
type HospitalizationUseCase struct {
	repo repository.HospitalizationRepository
}

// NewHospitalizationUseCase constrói o caso de uso.
func NewHospitalizationUseCase(repo repository.HospitalizationRepository) *HospitalizationUseCase {
	return &HospitalizationUseCase{repo: repo}
}

// Create admite um paciente no quadro, na coluna admitted.
func (uc *HospitalizationUseCase) Create(companyID string, in dto.CreateStayRequest) (*dto.StayResponse, error) {
	if in.PatientName == "" || in.TutorName == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	admittedAt := now
	if in.AdmittedAt != "" {
		parsed, err := time.Parse("2006-01-02", in.AdmittedAt)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		admittedAt = parsed.UTC()
	}
	stay := &entity.HospitalizationStay{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		PatientName: in.PatientName,
		Species:     in.Species,
		Breed:       in.Breed,
		TutorName:   in.TutorName,
		TutorPhone:  in.TutorPhone,
		KennelCode:  in.KennelCode,
		VetName:     in.VetName,
		Status:      entity.StayAdmitted,
		DailyRate:   finance.Round2(finance.ParseAmount(in.DailyRate)),
		AdmittedAt:  admittedAt,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(stay); err != nil {
		return nil, err
	}
	return toStayResponse(stay, now), nil
}

// Board monta o quadro agrupado por coluna, só com internações ativas mais as
// altas recentes.
func (uc *HospitalizationUseCase) Board(companyID string) (*dto.StayBoardResponse, error) {
	active, err := uc.repo.ListActive(companyID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	board := &dto.StayBoardResponse{
		Admitted:    []dto.StayResponse{},
		Observation: []dto.StayResponse{},
		Surgery:     []dto.StayResponse{},
		Discharged:  []dto.StayResponse{},
	}
	for _, stay := range active {
		resp := *toStayResponse(stay, now)
		switch stay.Status {
		case entity.StayAdmitted:
			board.Admitted = append(board.Admitted, resp)
		case entity.StayObservation:
			board.Observation = append(board.Observation, resp)
		case entity.StaySurgery:
			board.Surgery = append(board.Surgery, resp)
		}
	}

	// Altas recentes entram na última coluna do quadro.
	recent, err := uc.repo.ListByCompany(companyID, 50, 0)
	if err != nil {
		return nil, err
	}
	for _, stay := range recent {
		if stay.Status == entity.StayDischarged {
			board.Discharged = append(board.Discharged, *toStayResponse(stay, now))
		}
	}
	return board, nil
}

// GetByID busca uma internação, escopada pela empresa.
func (uc *HospitalizationUseCase) GetByID(companyID, id string) (*dto.StayResponse, error) {
	stay, err := uc.loadScoped(companyID, id)
	if err != nil {
		return nil, err
	}
	return toStayResponse(stay, time.Now()), nil
}

// Update altera os campos enviados; mudar Status para discharged carimba a
// data de alta, e sair de discharged a limpa.
func (uc *HospitalizationUseCase) Update(companyID, id string, in dto.UpdateStayRequest) (*dto.StayResponse, error) {
	stay, err := uc.loadScoped(companyID, id)
	if err != nil {
		return nil, err
	}
	if in.PatientName != nil {
		stay.PatientName = *in.PatientName
	}
	if in.Species != nil {
		stay.Species = *in.Species
	}
	if in.Breed != nil {
		stay.Breed = *in.Breed
	}
	if in.TutorName != nil {
		stay.TutorName = *in.TutorName
	}
	if in.TutorPhone != nil {
		stay.TutorPhone = *in.TutorPhone
	}
	if in.KennelCode != nil {
		stay.KennelCode = *in.KennelCode
	}
	if in.VetName != nil {
		stay.VetName = *in.VetName
	}
	if in.DailyRate != nil {
		stay.DailyRate = finance.Round2(finance.ParseAmount(*in.DailyRate))
	}
	if in.Notes != nil {
		stay.Notes = *in.Notes
	}
	now := time.Now()
	if in.Status != nil && *in.Status != stay.Status {
		if !entity.ValidStayStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		if *in.Status == entity.StayDischarged {
			discharged := now
			stay.DischargedAt = &discharged
		} else {
			stay.DischargedAt = nil
		}
		stay.Status = *in.Status
	}
	stay.UpdatedAt = now
	if err := uc.repo.Update(stay); err != nil {
		return nil, err
	}
	return toStayResponse(stay, now), nil
}

// Delete remove uma internação do quadro.
func (uc *HospitalizationUseCase) Delete(companyID, id string) error {
	if _, err := uc.loadScoped(companyID, id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

func (uc *HospitalizationUseCase) loadScoped(companyID, id string) (*entity.HospitalizationStay, error) {
	stay, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if stay == nil {
		return nil, domain.ErrNotFound
	}
	if stay.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return stay, nil
}

func toStayResponse(s *entity.HospitalizationStay, ref time.Time) *dto.StayResponse {
	if s == nil {
		return nil
	}
	days := s.AccruedDays(ref)
	return &dto.StayResponse{
		ID:           s.ID,
		CompanyID:    s.CompanyID,
		PatientName:  s.PatientName,
		Species:      s.Species,
		Breed:        s.Breed,
		TutorName:    s.TutorName,
		TutorPhone:   s.TutorPhone,
		KennelCode:   s.KennelCode,
		VetName:      s.VetName,
		Status:       s.Status,
		DailyRate:    s.DailyRate,
		AccruedDays:  days,
		AccruedValue: finance.Round2(s.DailyRate.Mul(decimal.NewFromInt(int64(days)))),
		AdmittedAt:   s.AdmittedAt,
		DischargedAt: s.DischargedAt,
		Notes:        s.Notes,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
