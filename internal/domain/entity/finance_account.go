package entity

import "time"

// Naturezas de pagamento de uma conta contábil.
const (
	PaymentNaturePayable    = "contas_pagar"
	PaymentNatureReceivable = "contas_receber"
)

// BankAccount conta corrente da empresa usada para liquidar parcelas.
type BankAccount struct {
	ID            string
	CompanyID     string
	Alias         string
	BankName      string
	BankCode      string
	Agency        string
	AccountNumber string
	AccountDigit  string
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Label monta o rótulo de exibição: "Alias (Banco Ag. 0001 12345-6)".
func (a *BankAccount) Label() string {
	if a == nil {
		return ""
	}
	bank := a.BankName
	if bank == "" {
		bank = a.BankCode
	}
	number := a.AccountNumber
	if number != "" && a.AccountDigit != "" {
		number += "-" + a.AccountDigit
	}
	doc := joinNonEmpty(" ", bank, prefixNonEmpty("Ag. ", a.Agency), number)
	switch {
	case a.Alias != "" && doc != "":
		return a.Alias + " (" + doc + ")"
	case a.Alias != "":
		return a.Alias
	case doc != "":
		return doc
	}
	return "Conta bancária"
}

// LedgerAccount conta contábil vinculada aos lançamentos financeiros.
type LedgerAccount struct {
	ID            string
	CompanyID     string
	Code          string
	Name          string
	PaymentNature string // contas_pagar | contas_receber
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Label monta o rótulo "codigo - nome".
func (a *LedgerAccount) Label() string {
	if a == nil {
		return ""
	}
	label := joinNonEmpty(" - ", a.Code, a.Name)
	if label == "" {
		return "Conta contábil"
	}
	return label
}

func joinNonEmpty(sep string, parts ...string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += sep
		}
		out += p
	}
	return out
}

func prefixNonEmpty(prefix, s string) string {
	if s == "" {
		return ""
	}
	return prefix + s
}
