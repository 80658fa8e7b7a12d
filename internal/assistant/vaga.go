package assistant

import (
	"fmt"
	"sort"
	"strings"

	"azimute/agenda-assistant-api/internal/dto"
)

// handleVaga finds consultants with no non-vacant booking overlapping the
// requested period. A period is required; the consultant universe is every
// distinct name appearing in the snapshot.
func handleVaga(records []dto.ScheduleRecord, q ParsedQuery) string {
	if q.Dates == nil {
		return "❓ Para verificar vagas, preciso saber o período desejado.\n\n**Exemplo:** _'Preciso de consultor de 10/01 a 20/01'_"
	}
	period := *q.Dates

	seen := make(map[string]bool)
	var consultants []string
	for _, r := range records {
		if !seen[r.Consultant] {
			seen[r.Consultant] = true
			consultants = append(consultants, r.Consultant)
		}
	}
	sort.Strings(consultants)

	var available []string
	for _, name := range consultants {
		busy := false
		for _, r := range records {
			if r.Consultant != name || r.Vacant() {
				continue
			}
			rr, ok := recordRange(r)
			if !ok {
				continue
			}
			if period.Overlaps(rr) {
				busy = true
				break
			}
		}
		if !busy {
			available = append(available, name)
		}
	}

	periodStr := displayPeriod(period)
	if len(available) == 0 {
		return fmt.Sprintf("❌ **Não há consultores disponíveis** para o período de %s.", periodStr)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "✅ **Encontrei %d consultores disponíveis** para %s:\n\n", len(available), periodStr)
	for _, name := range available {
		fmt.Fprintf(&b, "• 👤 **%s**\n", name)
	}
	b.WriteString("\n💡 _Dica: Use o comando 'Agende [Nome] para [Projeto]...' para realizar a alocação._")
	return b.String()
}
