package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/raizvet/backoffice-api/internal/domain/entity"
	"github.com/raizvet/backoffice-api/internal/domain/repository"
)

var _ repository.HospitalizationRepository = (*HospitalizationRepo)(nil)

// HospitalizationRepo implementação de HospitalizationRepository sobre PostgreSQL.
type HospitalizationRepo struct {
	q Querier
}

// NewHospitalizationRepository constrói o adaptador.
func NewHospitalizationRepository(q Querier) *HospitalizationRepo {
	return &HospitalizationRepo{q: q}
}

const stayColumns = `
	id, company_id, patient_name, species, breed, tutor_name, tutor_phone,
	kennel_code, vet_name, status, daily_rate, admitted_at, discharged_at,
	notes, created_at, updated_at`

// Create persiste uma internação.
func (r *HospitalizationRepo) Create(s *entity.HospitalizationStay) error {
	query := `
		INSERT INTO hospitalization_stays (` + stayColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.CompanyID, s.PatientName, s.Species, s.Breed, s.TutorName,
		s.TutorPhone, s.KennelCode, s.VetName, s.Status, s.DailyRate,
		s.AdmittedAt, s.DischargedAt, s.Notes, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert hospitalization stay: %w", err)
	}
	return nil
}

// GetByID busca uma internação por ID.
func (r *HospitalizationRepo) GetByID(id string) (*entity.HospitalizationStay, error) {
	query := `SELECT ` + stayColumns + ` FROM hospitalization_stays WHERE id = $1`
	s, err := scanStay(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get hospitalization stay: %w", err)
	}
	return s, nil
}

// ListActive lista internações não finalizadas, mais antigas primeiro.
func (r *HospitalizationRepo) ListActive(companyID string) ([]*entity.HospitalizationStay, error) {
	query := `
		SELECT ` + stayColumns + `
		FROM hospitalization_stays
		WHERE company_id = $1 AND status <> $2
		ORDER BY admitted_at`
	return r.list(query, companyID, entity.StayDischarged)
}

// ListByCompany lista internações da empresa, mais recentes primeiro.
func (r *HospitalizationRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.HospitalizationStay, error) {
	query := `
		SELECT ` + stayColumns + `
		FROM hospitalization_stays
		WHERE company_id = $1
		ORDER BY admitted_at DESC
		LIMIT $2 OFFSET $3`
	return r.list(query, companyID, limit, offset)
}

// Update atualiza uma internação.
func (r *HospitalizationRepo) Update(s *entity.HospitalizationStay) error {
	query := `
		UPDATE hospitalization_stays SET
			patient_name = $2, species = $3, breed = $4, tutor_name = $5,
			tutor_phone = $6, kennel_code = $7, vet_name = $8, status = $9,
			daily_rate = $10, admitted_at = $11, discharged_at = $12,
			notes = $13, updated_at = $14
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.PatientName, s.Species, s.Breed, s.TutorName, s.TutorPhone,
		s.KennelCode, s.VetName, s.Status, s.DailyRate, s.AdmittedAt,
		s.DischargedAt, s.Notes, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update hospitalization stay: %w", err)
	}
	return nil
}

// Delete remove uma internação por ID.
func (r *HospitalizationRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM hospitalization_stays WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete hospitalization stay: %w", err)
	}
	return nil
}

func (r *HospitalizationRepo) list(query string, args ...any) ([]*entity.HospitalizationStay, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list hospitalization stays: %w", err)
	}
	defer rows.Close()
	var list []*entity.HospitalizationStay
	for rows.Next() {
		s, serr := scanStay(rows)
		if serr != nil {
			return nil, serr
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func scanStay(row pgx.Row) (*entity.HospitalizationStay, error) {
	var s entity.HospitalizationStay
	err := row.Scan(&s.ID, &s.CompanyID, &s.PatientName, &s.Species, &s.Breed,
		&s.TutorName, &s.TutorPhone, &s.KennelCode, &s.VetName, &s.Status,
		&s.DailyRate, &s.AdmittedAt, &s.DischargedAt, &s.Notes, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
