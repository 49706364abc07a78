package finance

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/raizvet/backoffice-api/internal/domain"
	"github.com/raizvet/backoffice-api/internal/domain/entity"
)

// Tokens reconhecidos por status, já normalizados (minúsculas, sem acento).
// Qualquer coisa fora destes conjuntos degrada para pending: status ausente
// ou desconhecido nunca bloqueia uma renderização, apenas é tratado como
// ainda devido.
var statusTokens = map[string]entity.Status{
	"paid":       entity.StatusPaid,
	"pago":       entity.StatusPaid,
	"paga":       entity.StatusPaid,
	"quitado":    entity.StatusPaid,
	"quitada":    entity.StatusPaid,
	"liquidado":  entity.StatusPaid,
	"liquidada":  entity.StatusPaid,
	"finalizado": entity.StatusPaid,
	"finalizada": entity.StatusPaid,
	"concluido":  entity.StatusPaid,
	"concluida":  entity.StatusPaid,
	"received":   entity.StatusPaid,
	"recebido":   entity.StatusPaid,

	"protest":     entity.StatusProtest,
	"protesto":    entity.StatusProtest,
	"protestado":  entity.StatusProtest,
	"protestada":  entity.StatusProtest,
	"em protesto": entity.StatusProtest,

	"cancelled": entity.StatusCancelled,
	"canceled":  entity.StatusCancelled,
	"cancelado": entity.StatusCancelled,
	"cancelada": entity.StatusCancelled,
	"anulado":   entity.StatusCancelled,
	"anulada":   entity.StatusCancelled,
}

// Tokens explícitos de pending, aceitos como alvo em transições (reabertura).
var pendingTokens = map[string]bool{
	"pending":   true,
	"pendente":  true,
	"aberto":    true,
	"em aberto": true,
}

// stripAccents decompõe em NFD, remove marcas combinantes e recompõe.
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// CanonicalStatus reduz um token de status arbitrário (acentuado, localizado,
// com pontuação) a um dos quatro valores canônicos. Fail-open: entrada vazia
// ou irreconhecível vira pending. Idempotente sobre valores já canônicos.
func CanonicalStatus(raw string) entity.Status {
	tok := normalizeToken(raw)
	if s, ok := statusTokens[tok]; ok {
		return s
	}
	return entity.StatusPending
}

// ParseTargetStatus interpreta o status alvo de uma transição. Ao contrário
// de CanonicalStatus é fail-closed: token desconhecido é erro, porque uma
// mudança de status engolida silenciosamente é problema de correção
// financeira.
func ParseTargetStatus(raw string) (entity.Status, error) {
	tok := normalizeToken(raw)
	if pendingTokens[tok] {
		return entity.StatusPending, nil
	}
	if s, ok := statusTokens[tok]; ok {
		return s, nil
	}
	return "", domain.ErrInvalidInput
}

// normalizeToken: sem acentos, minúsculas, pontuação/underscore/hífen viram
// espaço único, aparas nas pontas.
func normalizeToken(raw string) string {
	s, _, err := transform.String(stripAccents, raw)
	if err != nil {
		s = raw
	}
	s = strings.ToLower(s)

	var b strings.Builder
	pendingSpace := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteRune(r)
			continue
		}
		pendingSpace = true
	}
	return b.String()
}
