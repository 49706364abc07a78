package payables

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

// Divergência máxima tolerada entre o total do título e a soma das parcelas
// editadas manualmente no formulário.
var installmentTolerance = decimal.RequireFromString("0.01")

const dateLayout = "2006-01-02"

// PayableUseCase casos de uso CRUD de títulos a pagar, incluindo a geração
// do cronograma de parcelas.
type PayableUseCase struct {
	payableRepo       repository.PayableRepository
	supplierRepo      repository.SupplierRepository
	paymentMethodRepo repository.PaymentMethodRepository
	bankAccountRepo   repository.BankAccountRepository
	ledgerAccountRepo repository.LedgerAccountRepository
}

// NewPayableUseCase constrói o caso de uso.
func NewPayableUseCase(
	payableRepo repository.PayableRepository,
	supplierRepo repository.SupplierRepository,
	paymentMethodRepo repository.PaymentMethodRepository,
	bankAccountRepo repository.BankAccountRepository,
	ledgerAccountRepo repository.LedgerAccountRepository,
) *PayableUseCase {
	return &PayableUseCase{
		payableRepo:       payableRepo,
		supplierRepo:      supplierRepo,
		paymentMethodRepo: paymentMethodRepo,
		bankAccountRepo:   bankAccountRepo,
		ledgerAccountRepo: ledgerAccountRepo,
	}
}

// Create cria um título com seu cronograma de parcelas. O cronograma vem do
// formulário (parcelas editadas) ou é gerado a partir do total, da primeira
// data de vencimento e do número de parcelas.
func (uc *PayableUseCase) Create(companyID string, in dto.CreatePayableRequest) (*dto.PayableResponse, error) {
	if in.SupplierID == "" {
		return nil, domain.ErrInvalidInput
	}
	issueDate, err := parseDate(in.IssueDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	total := finance.Round2(finance.ParseAmount(in.TotalValue))
	if !total.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil || supplier.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}

	var installments []entity.Installment
	if len(in.Installments) > 0 {
		installments, err = installmentsFromInput(in.Installments, issueDate, in.BankAccountID, in.LedgerAccountID)
		if err != nil {
			return nil, err
		}
		if err := checkTotalTolerance(total, installments); err != nil {
			return nil, err
		}
	} else {
		firstDue, perr := parseDate(in.FirstDueDate)
		if perr != nil {
			return nil, domain.ErrInvalidInput
		}
		count := in.InstallmentCount
		if count <= 0 {
			count = 1
		}
		installments, err = finance.GenerateInstallments(total, issueDate, firstDue, count, in.BankAccountID, in.LedgerAccountID)
		if err != nil {
			return nil, err
		}
	}

	code, err := uc.payableRepo.NextSequentialCode(companyID, issueDate.Year())
	if err != nil {
		return nil, err
	}

	now := time.Now()
	payable := &entity.PayableTitle{
		ID:                     uuid.New().String(),
		Code:                   code,
		CompanyID:              companyID,
		SupplierID:             in.SupplierID,
		PaymentMethodID:        in.PaymentMethodID,
		BankAccountID:          in.BankAccountID,
		LedgerAccountID:        in.LedgerAccountID,
		Carrier:                in.Carrier,
		BankDocumentNumber:     in.BankDocumentNumber,
		IssueDate:              issueDate,
		DueDate:                installments[0].DueDate,
		TotalValue:             total,
		InterestFeeValue:       finance.Round2(finance.ParseAmount(in.InterestFeeValue)),
		MonthlyInterestPercent: finance.ParseAmount(in.MonthlyInterestPct),
		InterestPercent:        finance.ParseAmount(in.InterestPct),
		Notes:                  in.Notes,
		Installments:           installments,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
	if err := uc.payableRepo.Create(payable); err != nil {
		return nil, err
	}
	return toPayableResponse(payable, supplier.DisplayName()), nil
}

// GetByID busca um título pelo ID, escopado pela empresa.
func (uc *PayableUseCase) GetByID(companyID, id string) (*dto.PayableResponse, error) {
	payable, err := uc.loadScoped(companyID, id)
	if err != nil {
		return nil, err
	}
	return toPayableResponse(payable, uc.supplierName(payable.SupplierID)), nil
}

// List lista títulos da empresa com filtros e paginação.
func (uc *PayableUseCase) List(companyID string, filter repository.PayableFilter, page dto.PageRequest) (*dto.PayableListResponse, error) {
	page.DefaultPage()
	list, err := uc.payableRepo.ListByCompany(companyID, filter, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PayableResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPayableResponse(p, uc.supplierName(p.SupplierID)))
	}
	return &dto.PayableListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update altera os campos enviados. Um novo conjunto de parcelas substitui o
// cronograma inteiro; mudar só o total regenera o cronograma preservando o
// número de parcelas e o primeiro vencimento.
func (uc *PayableUseCase) Update(companyID, id string, in dto.UpdatePayableRequest) (*dto.PayableResponse, error) {
	payable, err := uc.loadScoped(companyID, id)
	if err != nil {
		return nil, err
	}

	if in.SupplierID != nil {
		supplier, serr := uc.supplierRepo.GetByID(*in.SupplierID)
		if serr != nil {
			return nil, serr
		}
		if supplier == nil || supplier.CompanyID != companyID {
			return nil, domain.ErrNotFound
		}
		payable.SupplierID = *in.SupplierID
	}
	if in.PaymentMethodID != nil {
		payable.PaymentMethodID = *in.PaymentMethodID
	}
	if in.BankAccountID != nil {
		payable.BankAccountID = *in.BankAccountID
	}
	if in.LedgerAccountID != nil {
		payable.LedgerAccountID = *in.LedgerAccountID
	}
	if in.Carrier != nil {
		payable.Carrier = *in.Carrier
	}
	if in.BankDocumentNumber != nil {
		payable.BankDocumentNumber = *in.BankDocumentNumber
	}
	if in.Notes != nil {
		payable.Notes = *in.Notes
	}
	if in.IssueDate != nil {
		issueDate, perr := parseDate(*in.IssueDate)
		if perr != nil {
			return nil, domain.ErrInvalidInput
		}
		payable.IssueDate = issueDate
	}
	if in.InterestFeeValue != nil {
		payable.InterestFeeValue = finance.Round2(finance.ParseAmount(*in.InterestFeeValue))
	}
	if in.MonthlyInterestPct != nil {
		payable.MonthlyInterestPercent = finance.ParseAmount(*in.MonthlyInterestPct)
	}
	if in.InterestPct != nil {
		payable.InterestPercent = finance.ParseAmount(*in.InterestPct)
	}

	totalChanged := false
	if in.TotalValue != nil {
		total := finance.Round2(finance.ParseAmount(*in.TotalValue))
		if !total.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		totalChanged = !total.Equal(payable.TotalValue)
		payable.TotalValue = total
	}

	// Substituir o cronograma apagaria o registro de pagamento de parcelas
	// já liquidadas; com parcela paga, o caller precisa reabri-la antes.
	if (len(in.Installments) > 0 || totalChanged) && hasPaidInstallment(payable.Installments) {
		return nil, domain.ErrConflict
	}

	switch {
	case len(in.Installments) > 0:
		installments, ierr := installmentsFromInput(in.Installments, payable.IssueDate, payable.BankAccountID, payable.LedgerAccountID)
		if ierr != nil {
			return nil, ierr
		}
		if err := checkTotalTolerance(payable.TotalValue, installments); err != nil {
			return nil, err
		}
		payable.Installments = installments
	case totalChanged:
		count := len(payable.Installments)
		firstDue := payable.DueDate
		if count > 0 {
			firstDue = payable.Installments[0].DueDate
		}
		installments, gerr := finance.GenerateInstallments(
			payable.TotalValue, payable.IssueDate, firstDue, count, payable.BankAccountID, payable.LedgerAccountID)
		if gerr != nil {
			return nil, gerr
		}
		payable.Installments = installments
	}

	if len(payable.Installments) > 0 {
		payable.DueDate = payable.Installments[0].DueDate
	}
	payable.UpdatedAt = time.Now()
	if err := uc.payableRepo.Update(payable); err != nil {
		return nil, err
	}
	return toPayableResponse(payable, uc.supplierName(payable.SupplierID)), nil
}

// Delete remove o título e todas as suas parcelas.
func (uc *PayableUseCase) Delete(companyID, id string) error {
	if _, err := uc.loadScoped(companyID, id); err != nil {
		return err
	}
	return uc.payableRepo.Delete(id)
}

// DeleteInstallment remove uma parcela do cronograma e renumera as restantes
// de forma contígua a partir de 1. O total do título passa a ser a soma das
// parcelas remanescentes. A última parcela não pode ser removida.
func (uc *PayableUseCase) DeleteInstallment(companyID, id string, number int) (*dto.PayableResponse, error) {
	payable, err := uc.loadScoped(companyID, id)
	if err != nil {
		return nil, err
	}
	if len(payable.Installments) <= 1 {
		return nil, domain.ErrInvalidInput
	}

	kept := make([]entity.Installment, 0, len(payable.Installments)-1)
	found := false
	for _, inst := range payable.Installments {
		if inst.Number == number {
			found = true
			continue
		}
		kept = append(kept, inst)
	}
	if !found {
		return nil, domain.ErrNotFound
	}
	for i := range kept {
		kept[i].Number = i + 1
	}

	payable.Installments = kept
	payable.TotalValue = finance.SumInstallments(kept)
	payable.DueDate = kept[0].DueDate
	payable.UpdatedAt = time.Now()
	if err := uc.payableRepo.Update(payable); err != nil {
		return nil, err
	}
	return toPayableResponse(payable, uc.supplierName(payable.SupplierID)), nil
}

// Options monta as listas para os selects do formulário de título: só
// fornecedores ativos, contas ativas e contas contábeis de contas a pagar.
func (uc *PayableUseCase) Options(companyID string) (*dto.PayableOptionsResponse, error) {
	out := &dto.PayableOptionsResponse{
		Suppliers:      []dto.OptionDTO{},
		PaymentMethods: []dto.OptionDTO{},
		BankAccounts:   []dto.OptionDTO{},
		LedgerAccounts: []dto.OptionDTO{},
	}

	suppliers, err := uc.supplierRepo.ListByCompany(companyID, 500, 0)
	if err != nil {
		return nil, err
	}
	for _, s := range suppliers {
		if !s.Active {
			continue
		}
		out.Suppliers = append(out.Suppliers, dto.OptionDTO{ID: s.ID, Label: s.DisplayName()})
	}

	methods, err := uc.paymentMethodRepo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	for _, m := range methods {
		out.PaymentMethods = append(out.PaymentMethods, dto.OptionDTO{ID: m.ID, Label: m.Name})
	}

	banks, err := uc.bankAccountRepo.ListByCompany(companyID, true)
	if err != nil {
		return nil, err
	}
	for _, b := range banks {
		out.BankAccounts = append(out.BankAccounts, dto.OptionDTO{ID: b.ID, Label: b.Label()})
	}

	ledgers, err := uc.ledgerAccountRepo.ListByCompany(companyID, entity.PaymentNaturePayable, true)
	if err != nil {
		return nil, err
	}
	for _, l := range ledgers {
		out.LedgerAccounts = append(out.LedgerAccounts, dto.OptionDTO{ID: l.ID, Label: l.Label()})
	}
	return out, nil
}

func (uc *PayableUseCase) loadScoped(companyID, id string) (*entity.PayableTitle, error) {
	payable, err := uc.payableRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if payable == nil {
		return nil, domain.ErrNotFound
	}
	if payable.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return payable, nil
}

func (uc *PayableUseCase) supplierName(supplierID string) string {
	supplier, err := uc.supplierRepo.GetByID(supplierID)
	if err != nil || supplier == nil {
		return ""
	}
	return supplier.DisplayName()
}

// installmentsFromInput converte as parcelas editadas no formulário,
// renumerando de forma contígua e canonicalizando o status para pending.
func installmentsFromInput(inputs []dto.InstallmentInput, issueDate time.Time, bankAccountID, ledgerAccountID string) ([]entity.Installment, error) {
	installments := make([]entity.Installment, 0, len(inputs))
	for i, in := range inputs {
		dueDate, err := parseDate(in.DueDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		instIssue := issueDate
		if in.IssueDate != "" {
			if instIssue, err = parseDate(in.IssueDate); err != nil {
				return nil, domain.ErrInvalidInput
			}
		}
		value := finance.Round2(finance.ParseAmount(in.Value))
		if !value.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		installments = append(installments, entity.Installment{
			Number:          i + 1,
			IssueDate:       instIssue,
			DueDate:         dueDate,
			Value:           value,
			BankAccountID:   bankAccountID,
			LedgerAccountID: ledgerAccountID,
			Status:          entity.StatusPending,
		})
	}
	return installments, nil
}

// checkTotalTolerance garante que a soma das parcelas editadas não diverge do
// total do título além de um centavo.
func checkTotalTolerance(total decimal.Decimal, installments []entity.Installment) error {
	diff := finance.SumInstallments(installments).Sub(finance.Round2(total)).Abs()
	if diff.GreaterThan(installmentTolerance) {
		return domain.ErrInvalidInput
	}
	return nil
}

// hasPaidInstallment informa se alguma parcela está liquidada, já com o
// status canonicalizado (dados legados contam).
func hasPaidInstallment(installments []entity.Installment) bool {
	for i := range installments {
		if finance.CanonicalStatus(string(installments[i].Status)) == entity.StatusPaid {
			return true
		}
	}
	return false
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

func toPayableResponse(p *entity.PayableTitle, supplierName string) *dto.PayableResponse {
	if p == nil {
		return nil
	}
	installments := make([]dto.InstallmentResponse, 0, len(p.Installments))
	for _, inst := range p.Installments {
		item := dto.InstallmentResponse{
			Number:         inst.Number,
			IssueDate:      inst.IssueDate,
			DueDate:        inst.DueDate,
			Value:          inst.Value,
			ValueFormatted: finance.FormatBRL(inst.Value),
			Status:         string(finance.CanonicalStatus(string(inst.Status))),
		}
		if inst.Payment != nil {
			item.Payment = &dto.PaymentResponse{
				SettledAt:       inst.Payment.SettledAt,
				BankAccountID:   inst.Payment.BankAccountID,
				PaymentMethodID: inst.Payment.PaymentMethodID,
				Notes:           inst.Payment.Notes,
			}
		}
		installments = append(installments, item)
	}
	return &dto.PayableResponse{
		ID:                 p.ID,
		Code:               p.Code,
		CompanyID:          p.CompanyID,
		SupplierID:         p.SupplierID,
		SupplierName:       supplierName,
		PaymentMethodID:    p.PaymentMethodID,
		BankAccountID:      p.BankAccountID,
		LedgerAccountID:    p.LedgerAccountID,
		Carrier:            p.Carrier,
		BankDocumentNumber: p.BankDocumentNumber,
		IssueDate:          p.IssueDate,
		DueDate:            p.DueDate,
		TotalValue:         p.TotalValue,
		TotalFormatted:     finance.FormatBRL(p.TotalValue),
		InterestFeeValue:   p.InterestFeeValue,
		MonthlyInterestPct: p.MonthlyInterestPercent,
		InterestPct:        p.InterestPercent,
		Notes:              p.Notes,
		Installments:       installments,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}
