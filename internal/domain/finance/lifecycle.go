package finance

import (
	"github.com/raizvet/backoffice-api/internal/domain"
	"github.com/raizvet/backoffice-api/internal/domain/entity"
)

// Arestas permitidas da máquina de estados da parcela. Não há aresta direta
// entre estados finais (ex.: paid → cancelled): o caller precisa reabrir
// para pending antes.
var allowedTransitions = map[entity.Status]map[entity.Status]bool{
	entity.StatusPending: {
		entity.StatusPaid:      true,
		entity.StatusProtest:   true,
		entity.StatusCancelled: true,
	},
	entity.StatusPaid:      {entity.StatusPending: true},
	entity.StatusProtest:   {entity.StatusPending: true},
	entity.StatusCancelled: {entity.StatusPending: true},
}

// CanTransition informa se a aresta current → target existe.
func CanTransition(current, target entity.Status) bool {
	return allowedTransitions[current][target]
}

// ApplyTransition aplica a transição solicitada na parcela e a devolve
// mutada. Regras:
//
//   - pending → paid exige meta com data de liquidação; os dados ficam em
//     Payment;
//   - pending → protest / cancelled não têm efeito monetário;
//   - paid|protest|cancelled → pending é a reabertura explícita e limpa os
//     metadados de pagamento;
//   - alvo fora do vocabulário canônico é ErrInvalidInput: só o status
//     ATUAL canonicaliza fail-open (dados legados), nunca o alvo;
//   - qualquer outra aresta é ErrInvalidTransition.
//
// A transição nunca altera o TotalValue do título dono.
func ApplyTransition(inst *entity.Installment, target entity.Status, meta *entity.PaymentMetadata) error {
	if inst == nil {
		return domain.ErrNotFound
	}
	current := CanonicalStatus(string(inst.Status))
	target, err := ParseTargetStatus(string(target))
	if err != nil {
		return err
	}

	if !CanTransition(current, target) {
		return domain.ErrInvalidTransition
	}

	switch target {
	case entity.StatusPaid:
		if meta == nil || meta.SettledAt.IsZero() {
			return domain.ErrInvalidInput
		}
		metaCopy := *meta
		inst.Payment = &metaCopy
	case entity.StatusPending:
		// reabertura
		inst.Payment = nil
	}

	inst.Status = target
	return nil
}
