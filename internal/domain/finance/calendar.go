package finance

import "time"

// AddMonths soma n meses à data no calendário UTC, fixando o dia no último
// dia do mês destino quando o dia de origem não existe nele: 31/jan + 1 mês
// cai em 28/fev (29 em ano bissexto), nunca em 3/mar. Devolve sempre a data
// à meia-noite UTC; determinística, sem leitura de relógio.
func AddMonths(date time.Time, n int) time.Time {
	y, m, d := date.UTC().Date()
	// primeiro dia do mês destino; time.Date normaliza estouro de mês/ano
	anchor := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	last := lastDayOfMonth(anchor.Year(), anchor.Month())
	if d > last {
		d = last
	}
	return time.Date(anchor.Year(), anchor.Month(), d, 0, 0, 0, 0, time.UTC)
}

// lastDayOfMonth dia 0 do mês seguinte = último dia válido do mês.
func lastDayOfMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
