package assistant

import (
	"fmt"
	"strings"

	"azimute/agenda-assistant-api/internal/dto"
)

// recordRange parses a record's stored dates. Records with unparseable
// dates are invisible to every date-based filter instead of failing the
// whole query.
func recordRange(r dto.ScheduleRecord) (DateRange, bool) {
	start, err := ParseStoreDate(r.StartDate)
	if err != nil {
		return DateRange{}, false
	}
	end, err := ParseStoreDate(r.EndDate)
	if err != nil {
		return DateRange{}, false
	}
	return DateRange{start, end}, true
}

// handleDisponibilidade answers "is X free on ...". A consultant is
// required; without a date the check defaults to today.
func (a *Assistant) handleDisponibilidade(records []dto.ScheduleRecord, q ParsedQuery) string {
	if q.Consultant == "" {
		return "❓ Para verificar disponibilidade, mencione o nome do consultor.\n\n" +
			"**Exemplos:**\n" +
			"- _André está livre amanhã?_\n" +
			"- _Sirlene pode dia 15?_\n" +
			"- _Miguel disponível próxima semana?_"
	}

	period := DateRange{a.today(), a.today()}
	if q.Dates != nil {
		period = *q.Dates
	}

	var mine []dto.ScheduleRecord
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Consultant), strings.ToLower(q.Consultant)) {
			mine = append(mine, r)
		}
	}
	if len(mine) == 0 {
		return fmt.Sprintf("❓ Não encontrei agendas para o consultor **%s**. Verifique o nome.", q.Consultant)
	}

	var conflicts []dto.ScheduleRecord
	for _, r := range mine {
		if r.Vacant() {
			continue
		}
		rr, ok := recordRange(r)
		if !ok {
			continue
		}
		if period.Overlaps(rr) {
			conflicts = append(conflicts, r)
		}
	}

	periodLabel := "período de " + displayPeriod(period)
	if period.Start.Equal(period.End) {
		periodLabel = "dia " + FormatDisplay(period.Start)
	}

	if len(conflicts) == 0 {
		return fmt.Sprintf("✅ **SIM, %s está livre no %s!** 🟢", q.Consultant, periodLabel)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "❌ **NÃO, %s está ocupado(a) no %s.**\n\n", q.Consultant, periodLabel)
	fmt.Fprintf(&b, "🔴 %s neste período:\n\n", agendaCount(len(conflicts)))
	for _, c := range conflicts {
		rr, _ := recordRange(c)
		osInfo := ""
		if c.WorkOrder != "" {
			osInfo = fmt.Sprintf(" (OS: %s)", c.WorkOrder)
		}
		managerInfo := ""
		if c.Manager != "" {
			managerInfo = fmt.Sprintf(" - Gerente: %s", c.Manager)
		}
		fmt.Fprintf(&b, "• **%s**%s%s\n", c.Project, osInfo, managerInfo)
		fmt.Fprintf(&b, "  📅 %s até %s\n\n", FormatDisplay(rr.Start), FormatDisplay(rr.End))
	}
	return b.String()
}
