package assistant

import (
	"fmt"
	"strings"

	"azimute/agenda-assistant-api/internal/dto"
)

const (
	listGroupCap    = 5
	listPerGroupCap = 3
)

// handleListar lists schedules grouped by consultant, with consultant and
// project substring filters only. Display is capped to keep chat answers
// short; the dashboard is the place for full listings.
func handleListar(records []dto.ScheduleRecord, q ParsedQuery) string {
	if len(records) == 0 {
		return "📭 Não há agendas cadastradas no momento."
	}

	filtered := records
	if q.Consultant != "" {
		needle := strings.ToLower(q.Consultant)
		filtered = filterRecords(filtered, func(r dto.ScheduleRecord) bool {
			return strings.Contains(strings.ToLower(r.Consultant), needle)
		})
	}
	if q.Project != "" {
		needle := strings.ToLower(q.Project)
		filtered = filterRecords(filtered, func(r dto.ScheduleRecord) bool {
			return strings.Contains(strings.ToLower(r.Project), needle)
		})
	}

	if len(filtered) == 0 {
		return "📭 Não encontrei agendas com os filtros especificados."
	}

	// Group by consultant, preserving first-seen order.
	groups := make(map[string][]dto.ScheduleRecord)
	var order []string
	for _, r := range filtered {
		if _, ok := groups[r.Consultant]; !ok {
			order = append(order, r.Consultant)
		}
		groups[r.Consultant] = append(groups[r.Consultant], r)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📋 **Total de agendas:** %d\n\n", len(filtered))

	shownGroups := order
	if len(shownGroups) > listGroupCap {
		shownGroups = shownGroups[:listGroupCap]
	}
	for _, name := range shownGroups {
		ags := groups[name]
		fmt.Fprintf(&b, "**👤 %s** (%d agenda(s)):\n", name, len(ags))
		shown := ags
		if len(shown) > listPerGroupCap {
			shown = shown[:listPerGroupCap]
		}
		for _, r := range shown {
			fmt.Fprintf(&b, "  • %s (OS %s): %s - %s\n",
				r.Project, r.WorkOrder, displayRecordDate(r.StartDate), displayRecordDate(r.EndDate))
		}
		b.WriteString("\n")
	}

	b.WriteString("_💡 Use o Dashboard para visualização completa e filtros avançados._")
	return b.String()
}
