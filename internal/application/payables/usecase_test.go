package payables_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raizvet/backoffice-api/internal/application/dto"
	"github.com/raizvet/backoffice-api/internal/application/payables"
	"github.com/raizvet/backoffice-api/internal/domain"
	"github.com/raizvet/backoffice-api/internal/domain/entity"
	"github.com/raizvet/backoffice-api/internal/domain/finance"
	"github.com/raizvet/backoffice-api/internal/domain/repository"
)

// ── stubs em memória ──────────────────────────────────────────────────────────

type stubPayableRepo struct {
	store       map[string]*entity.PayableTitle
	seq         int
	agendaItems []finance.AgendaItem
	agendaSumm  finance.AgendaSummary
	agendaErr   error
}

func newStubPayableRepo() *stubPayableRepo {
	return &stubPayableRepo{store: map[string]*entity.PayableTitle{}, agendaSumm: finance.EmptyAgendaSummary()}
}

func (r *stubPayableRepo) Create(p *entity.PayableTitle) error {
	cp := *p
	r.store[p.ID] = &cp
	return nil
}

func (r *stubPayableRepo) GetByID(id string) (*entity.PayableTitle, error) {
	p, ok := r.store[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	cp.Installments = append([]entity.Installment(nil), p.Installments...)
	return &cp, nil
}

func (r *stubPayableRepo) GetByCode(companyID, code string) (*entity.PayableTitle, error) {
	for _, p := range r.store {
		if p.CompanyID == companyID && p.Code == code {
			return r.GetByID(p.ID)
		}
	}
	return nil, nil
}

func (r *stubPayableRepo) ListByCompany(companyID string, _ repository.PayableFilter, _, _ int) ([]*entity.PayableTitle, error) {
	var out []*entity.PayableTitle
	for _, p := range r.store {
		if p.CompanyID == companyID {
			cp, _ := r.GetByID(p.ID)
			out = append(out, cp)
		}
	}
	return out, nil
}

func (r *stubPayableRepo) Update(p *entity.PayableTitle) error {
	if _, ok := r.store[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	cp.Installments = append([]entity.Installment(nil), p.Installments...)
	r.store[p.ID] = &cp
	return nil
}

func (r *stubPayableRepo) Delete(id string) error {
	delete(r.store, id)
	return nil
}

func (r *stubPayableRepo) NextSequentialCode(_ string, year int) (string, error) {
	r.seq++
	return fmt.Sprintf("CP-%d-%05d", year, r.seq), nil
}

func (r *stubPayableRepo) ListAgendaItems(_ context.Context, _ string, _, _ *time.Time) ([]finance.AgendaItem, error) {
	return r.agendaItems, nil
}

func (r *stubPayableRepo) SummarizeAgenda(_ context.Context, _ string, _, _, _ time.Time) (finance.AgendaSummary, error) {
	return r.agendaSumm, r.agendaErr
}

type stubSupplierRepo struct {
	store map[string]*entity.Supplier
}

func (r *stubSupplierRepo) Create(s *entity.Supplier) error { r.store[s.ID] = s; return nil }
func (r *stubSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	return r.store[id], nil
}
func (r *stubSupplierRepo) GetByCompanyAndDocument(_, _ string) (*entity.Supplier, error) {
	return nil, nil
}
func (r *stubSupplierRepo) ListByCompany(companyID string, _, _ int) ([]*entity.Supplier, error) {
	var out []*entity.Supplier
	for _, s := range r.store {
		if s.CompanyID == companyID {
			out = append(out, s)
		}
	}
	return out, nil
}
func (r *stubSupplierRepo) SearchByName(_, _ string, _ int) ([]*entity.Supplier, error) {
	return nil, nil
}
func (r *stubSupplierRepo) Update(s *entity.Supplier) error { r.store[s.ID] = s; return nil }
func (r *stubSupplierRepo) Delete(id string) error          { delete(r.store, id); return nil }

type stubPaymentMethodRepo struct{}

func (stubPaymentMethodRepo) Create(*entity.PaymentMethod) error { return nil }
func (stubPaymentMethodRepo) GetByID(string) (*entity.PaymentMethod, error) {
	return nil, nil
}
func (stubPaymentMethodRepo) ListByCompany(string) ([]*entity.PaymentMethod, error) {
	return nil, nil
}
func (stubPaymentMethodRepo) Update(*entity.PaymentMethod) error { return nil }
func (stubPaymentMethodRepo) Delete(string) error                { return nil }

type stubBankAccountRepo struct{}

func (stubBankAccountRepo) Create(*entity.BankAccount) error            { return nil }
func (stubBankAccountRepo) GetByID(string) (*entity.BankAccount, error) { return nil, nil }
func (stubBankAccountRepo) ListByCompany(string, bool) ([]*entity.BankAccount, error) {
	return nil, nil
}
func (stubBankAccountRepo) Update(*entity.BankAccount) error { return nil }
func (stubBankAccountRepo) Delete(string) error              { return nil }

type stubLedgerAccountRepo struct{}

func (stubLedgerAccountRepo) Create(*entity.LedgerAccount) error            { return nil }
func (stubLedgerAccountRepo) GetByID(string) (*entity.LedgerAccount, error) { return nil, nil }
func (stubLedgerAccountRepo) ListByCompany(string, string, bool) ([]*entity.LedgerAccount, error) {
	return nil, nil
}
func (stubLedgerAccountRepo) Update(*entity.LedgerAccount) error { return nil }
func (stubLedgerAccountRepo) Delete(string) error                { return nil }

type recordedTransition struct {
	from, to entity.Status
}

type stubMetrics struct {
	transitions []recordedTransition
	agendaRuns  int
}

func (m *stubMetrics) RecordTransition(from, to entity.Status) {
	m.transitions = append(m.transitions, recordedTransition{from, to})
}
func (m *stubMetrics) RecordAgendaComputed() { m.agendaRuns++ }

type stubPublisher struct {
	events []payables.StatusChangedEvent
}

func (p *stubPublisher) PublishStatusChanged(_ context.Context, e payables.StatusChangedEvent) {
	p.events = append(p.events, e)
}

// ── fixtures ─────────────────────────────────────────────────────────────────

const testCompanyID = "company-1"

func newFixture() (*payables.PayableUseCase, *stubPayableRepo, *stubSupplierRepo) {
	payableRepo := newStubPayableRepo()
	supplierRepo := &stubSupplierRepo{store: map[string]*entity.Supplier{
		"sup-1": {ID: "sup-1", CompanyID: testCompanyID, TradeName: "Agropecuária Boa Vista", CNPJ: "11222333000144", Active: true},
	}}
	uc := payables.NewPayableUseCase(payableRepo, supplierRepo, stubPaymentMethodRepo{}, stubBankAccountRepo{}, stubLedgerAccountRepo{})
	return uc, payableRepo, supplierRepo
}

// ── testes ───────────────────────────────────────────────────────────────────

func TestCreatePayable_GeraCronograma(t *testing.T) {
	uc, _, _ := newFixture()

	out, err := uc.Create(testCompanyID, dto.CreatePayableRequest{
		SupplierID:       "sup-1",
		IssueDate:        "2024-01-31",
		FirstDueDate:     "2024-01-31",
		TotalValue:       "R$ 250,00",
		InstallmentCount: 4,
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "CP-2024-00001", out.Code, "código sequencial por empresa/ano")
	assert.Equal(t, "Agropecuária Boa Vista", out.SupplierName)
	assert.Equal(t, "R$ 250,00", out.TotalFormatted)
	require.Len(t, out.Installments, 4)
	for i, inst := range out.Installments {
		assert.Equal(t, i+1, inst.Number)
		assert.Equal(t, "62.50", inst.Value.StringFixed(2))
		assert.Equal(t, string(entity.StatusPending), inst.Status)
	}
	// vencimentos fixam no fim dos meses curtos
	assert.Equal(t, time.February, out.Installments[1].DueDate.Month())
	assert.Equal(t, 29, out.Installments[1].DueDate.Day())
}

func TestCreatePayable_ParcelasEditadas(t *testing.T) {
	uc, _, _ := newFixture()

	out, err := uc.Create(testCompanyID, dto.CreatePayableRequest{
		SupplierID: "sup-1",
		IssueDate:  "2024-01-10",
		TotalValue: "100,00",
		Installments: []dto.InstallmentInput{
			{DueDate: "2024-02-10", Value: "60,00"},
			{DueDate: "2024-03-10", Value: "40,00"},
		},
	})
	require.NoError(t, err)
	require.Len(t, out.Installments, 2)
	assert.Equal(t, "60.00", out.Installments[0].Value.StringFixed(2))

	// soma divergente além de um centavo é rejeitada
	_, err = uc.Create(testCompanyID, dto.CreatePayableRequest{
		SupplierID: "sup-1",
		IssueDate:  "2024-01-10",
		TotalValue: "100,00",
		Installments: []dto.InstallmentInput{
			{DueDate: "2024-02-10", Value: "60,00"},
			{DueDate: "2024-03-10", Value: "39,00"},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "tolerância de 0,01 estourada")
}

func TestCreatePayable_Validacoes(t *testing.T) {
	uc, _, _ := newFixture()

	_, err := uc.Create(testCompanyID, dto.CreatePayableRequest{
		IssueDate: "2024-01-10", FirstDueDate: "2024-02-10", TotalValue: "100", InstallmentCount: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "fornecedor obrigatório")

	_, err = uc.Create(testCompanyID, dto.CreatePayableRequest{
		SupplierID: "sup-1", IssueDate: "2024-01-10", FirstDueDate: "2024-02-10",
		TotalValue: "abc", InstallmentCount: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "total sem conteúdo numérico degrada para zero e é rejeitado")

	_, err = uc.Create(testCompanyID, dto.CreatePayableRequest{
		SupplierID: "sup-desconhecido", IssueDate: "2024-01-10", FirstDueDate: "2024-02-10",
		TotalValue: "100", InstallmentCount: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "fornecedor inexistente")
}

func TestDeleteInstallment_Renumera(t *testing.T) {
	uc, _, _ := newFixture()

	created, err := uc.Create(testCompanyID, dto.CreatePayableRequest{
		SupplierID: "sup-1", IssueDate: "2024-01-10", FirstDueDate: "2024-02-10",
		TotalValue: "300,00", InstallmentCount: 3,
	})
	require.NoError(t, err)

	out, err := uc.DeleteInstallment(testCompanyID, created.ID, 2)
	require.NoError(t, err)
	require.Len(t, out.Installments, 2)

	assert.Equal(t, 1, out.Installments[0].Number)
	assert.Equal(t, 2, out.Installments[1].Number, "renumeração contígua após remoção")
	assert.Equal(t, time.April, out.Installments[1].DueDate.Month(), "a parcela remanescente mantém o próprio vencimento")
	assert.Equal(t, "200.00", out.TotalValue.StringFixed(2), "total vira a soma das parcelas restantes")

	_, err = uc.DeleteInstallment(testCompanyID, created.ID, 9)
	assert.ErrorIs(t, err, domain.ErrNotFound, "número inexistente")
}

func TestDeleteInstallment_UltimaParcela(t *testing.T) {
	uc, _, _ := newFixture()

	created, err := uc.Create(testCompanyID, dto.CreatePayableRequest{
		SupplierID: "sup-1", IssueDate: "2024-01-10", FirstDueDate: "2024-02-10",
		TotalValue: "100,00", InstallmentCount: 1,
	})
	require.NoError(t, err)

	_, err = uc.DeleteInstallment(testCompanyID, created.ID, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "título precisa de ao menos uma parcela")
}

func TestUpdatePayable_NovoTotalRegeneraCronograma(t *testing.T) {
	uc, _, _ := newFixture()

	created, err := uc.Create(testCompanyID, dto.CreatePayableRequest{
		SupplierID: "sup-1", IssueDate: "2024-01-10", FirstDueDate: "2024-02-10",
		TotalValue: "100,00", InstallmentCount: 2,
	})
	require.NoError(t, err)

	novoTotal := "150,00"
	out, err := uc.Update(testCompanyID, created.ID, dto.UpdatePayableRequest{TotalValue: &novoTotal})
	require.NoError(t, err)
	require.Len(t, out.Installments, 2, "número de parcelas preservado")
	assert.Equal(t, "75.00", out.Installments[0].Value.StringFixed(2))
	assert.Equal(t, "75.00", out.Installments[1].Value.StringFixed(2))
}

// TestUpdatePayable_ParcelaPagaBloqueiaSubstituicao com parcela liquidada,
// trocar o total ou enviar um cronograma editado destruiria o registro de
// pagamento; ambos devem falhar com conflito até a parcela ser reaberta.
func TestUpdatePayable_ParcelaPagaBloqueiaSubstituicao(t *testing.T) {
	uc, payableRepo, supplierRepo := newFixture()
	lifecycle := payables.NewLifecycleUseCase(payableRepo, supplierRepo, &stubPublisher{}, &stubMetrics{})

	created, err := uc.Create(testCompanyID, dto.CreatePayableRequest{
		SupplierID: "sup-1", IssueDate: "2024-01-10", FirstDueDate: "2024-02-10",
		TotalValue: "100,00", InstallmentCount: 2,
	})
	require.NoError(t, err)

	ctx := context.Background()
	_, err = lifecycle.TransitionInstallment(ctx, testCompanyID, "user-1", created.ID, 1, dto.TransitionRequest{
		Status: "pago", SettledAt: "2024-02-08",
	})
	require.NoError(t, err)

	novoTotal := "150,00"
	_, err = uc.Update(testCompanyID, created.ID, dto.UpdatePayableRequest{TotalValue: &novoTotal})
	assert.ErrorIs(t, err, domain.ErrConflict, "novo total não pode regenerar por cima de parcela paga")

	_, err = uc.Update(testCompanyID, created.ID, dto.UpdatePayableRequest{
		Installments: []dto.InstallmentInput{
			{DueDate: "2024-02-10", Value: "60,00"},
			{DueDate: "2024-03-10", Value: "40,00"},
		},
	})
	assert.ErrorIs(t, err, domain.ErrConflict, "cronograma editado também não")

	// nada mudou: a parcela segue paga, com os metadados intactos
	out, err := uc.GetByID(testCompanyID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, string(entity.StatusPaid), out.Installments[0].Status)
	require.NotNil(t, out.Installments[0].Payment)
	assert.Equal(t, "R$ 100,00", out.TotalFormatted)

	// reabrir a parcela destrava a atualização
	_, err = lifecycle.TransitionInstallment(ctx, testCompanyID, "user-1", created.ID, 1, dto.TransitionRequest{Status: "pendente"})
	require.NoError(t, err)

	updated, err := uc.Update(testCompanyID, created.ID, dto.UpdatePayableRequest{TotalValue: &novoTotal})
	require.NoError(t, err)
	assert.Equal(t, "75.00", updated.Installments[0].Value.StringFixed(2))
}

func TestPayable_EscopoDeEmpresa(t *testing.T) {
	uc, _, _ := newFixture()

	created, err := uc.Create(testCompanyID, dto.CreatePayableRequest{
		SupplierID: "sup-1", IssueDate: "2024-01-10", FirstDueDate: "2024-02-10",
		TotalValue: "100,00", InstallmentCount: 1,
	})
	require.NoError(t, err)

	_, err = uc.GetByID("outra-empresa", created.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden, "título de outra empresa nunca vaza")
}

func TestTransitionInstallment_Pagamento(t *testing.T) {
	uc, payableRepo, supplierRepo := newFixture()
	metrics := &stubMetrics{}
	publisher := &stubPublisher{}
	lifecycle := payables.NewLifecycleUseCase(payableRepo, supplierRepo, publisher, metrics)

	created, err := uc.Create(testCompanyID, dto.CreatePayableRequest{
		SupplierID: "sup-1", IssueDate: "2024-01-10", FirstDueDate: "2024-02-10",
		TotalValue: "100,00", InstallmentCount: 2,
	})
	require.NoError(t, err)

	out, err := lifecycle.TransitionInstallment(context.Background(), testCompanyID, "user-1", created.ID, 1, dto.TransitionRequest{
		Status:    "Pago",
		SettledAt: "2024-02-08",
	})
	require.NoError(t, err)
	assert.Equal(t, string(entity.StatusPaid), out.Installments[0].Status)
	require.NotNil(t, out.Installments[0].Payment)
	assert.Equal(t, string(entity.StatusPending), out.Installments[1].Status, "as demais parcelas não mudam")

	require.Len(t, publisher.events, 1)
	assert.Equal(t, entity.StatusPending, publisher.events[0].From)
	assert.Equal(t, entity.StatusPaid, publisher.events[0].To)
	assert.Equal(t, "user-1", publisher.events[0].ChangedBy)

	require.Len(t, metrics.transitions, 1)
	assert.Equal(t, recordedTransition{entity.StatusPending, entity.StatusPaid}, metrics.transitions[0])
}

func TestTransitionInstallment_Regras(t *testing.T) {
	uc, payableRepo, supplierRepo := newFixture()
	lifecycle := payables.NewLifecycleUseCase(payableRepo, supplierRepo, &stubPublisher{}, &stubMetrics{})

	created, err := uc.Create(testCompanyID, dto.CreatePayableRequest{
		SupplierID: "sup-1", IssueDate: "2024-01-10", FirstDueDate: "2024-02-10",
		TotalValue: "100,00", InstallmentCount: 1,
	})
	require.NoError(t, err)
	ctx := context.Background()

	// pagar sem data de liquidação
	_, err = lifecycle.TransitionInstallment(ctx, testCompanyID, "u", created.ID, 1, dto.TransitionRequest{Status: "paid"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// alvo desconhecido é fail-closed
	_, err = lifecycle.TransitionInstallment(ctx, testCompanyID, "u", created.ID, 1, dto.TransitionRequest{Status: "vencido"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// paga, depois tenta protestar sem reabrir
	_, err = lifecycle.TransitionInstallment(ctx, testCompanyID, "u", created.ID, 1, dto.TransitionRequest{Status: "pago", SettledAt: "2024-02-08"})
	require.NoError(t, err)
	_, err = lifecycle.TransitionInstallment(ctx, testCompanyID, "u", created.ID, 1, dto.TransitionRequest{Status: "protesto"})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	// reabre e o pagamento é descartado
	out, err := lifecycle.TransitionInstallment(ctx, testCompanyID, "u", created.ID, 1, dto.TransitionRequest{Status: "pendente"})
	require.NoError(t, err)
	assert.Equal(t, string(entity.StatusPending), out.Installments[0].Status)
	assert.Nil(t, out.Installments[0].Payment)
}

func TestAgenda_MergeComAgregacaoDoBanco(t *testing.T) {
	_, payableRepo, _ := newFixture()
	metrics := &stubMetrics{}
	agendaUC := payables.NewAgendaUseCase(payableRepo, metrics, nil, nil)

	now := time.Now().UTC()
	payableRepo.agendaItems = []finance.AgendaItem{
		{PayableID: "p-1", PayableCode: "CP-2024-00001", InstallmentNumber: 1, PartyName: "Fornecedor A",
			DueDate: now.AddDate(0, 0, 2), Value: decimal.RequireFromString("300.00"), Status: "Pendente"},
	}
	// agregação do banco traz pending divergente e um paidThisMonth que o
	// recálculo local não enxerga
	payableRepo.agendaSumm = finance.EmptyAgendaSummary()
	payableRepo.agendaSumm.Pending = finance.Bucket{TotalValue: decimal.RequireFromString("500.00"), Installments: 2}
	payableRepo.agendaSumm.PaidThisMonth = finance.Bucket{TotalValue: decimal.RequireFromString("80.00"), Installments: 1}

	out, err := agendaUC.Agenda(context.Background(), testCompanyID, now, 7)
	require.NoError(t, err)

	assert.Equal(t, "300.00", out.Summary.Pending.TotalValue.StringFixed(2), "pending recalculado localmente prevalece")
	assert.Equal(t, 1, out.Summary.Pending.Installments)
	assert.Equal(t, "80.00", out.Summary.PaidThisMonth.TotalValue.StringFixed(2), "paidThisMonth vem da agregação do banco")
	assert.Equal(t, "300.00", out.Summary.Upcoming.TotalValue.StringFixed(2), "vencimento dentro da janela")

	require.Len(t, out.Items, 1)
	assert.Equal(t, string(entity.StatusPending), out.Items[0].Status, "status canonicalizado na saída")
	assert.Equal(t, "R$ 300,00", out.Items[0].ValueFormatted)
	assert.Equal(t, 1, metrics.agendaRuns)
}

func TestAgenda_FalhaDaAgregacaoNaoDerrubaOPainel(t *testing.T) {
	_, payableRepo, _ := newFixture()
	agendaUC := payables.NewAgendaUseCase(payableRepo, &stubMetrics{}, nil, nil)

	now := time.Now().UTC()
	payableRepo.agendaErr = fmt.Errorf("timeout na consulta")
	payableRepo.agendaItems = []finance.AgendaItem{
		{PayableID: "p-1", PayableCode: "CP-2024-00001", InstallmentNumber: 1,
			DueDate: now.AddDate(0, 0, 1), Value: decimal.RequireFromString("50.00"), Status: "pending"},
	}

	out, err := agendaUC.Agenda(context.Background(), testCompanyID, now, 7)
	require.NoError(t, err)
	assert.Equal(t, "50.00", out.Summary.Pending.TotalValue.StringFixed(2), "degrada para o recálculo local")
}
