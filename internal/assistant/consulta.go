package assistant

import (
	"fmt"
	"sort"
	"strings"

	"azimute/agenda-assistant-api/internal/dto"
)

const consultaDisplayCap = 10

// queryFilters are the deterministic filters a consulta applies. Empty
// fields are skipped.
type queryFilters struct {
	consultant string
	dates      *DateRange
	project    string
	workOrder  string
}

func (f queryFilters) empty() bool {
	return f.consultant == "" && f.dates == nil && f.project == "" && f.workOrder == ""
}

// applyFilters narrows the snapshot. Consultant and project matching is
// accent- and case-insensitive; work order is a substring match on the
// stored value; the date filter keeps records overlapping the range.
func applyFilters(records []dto.ScheduleRecord, f queryFilters) []dto.ScheduleRecord {
	out := records
	if f.consultant != "" {
		needle := Normalize(f.consultant)
		out = filterRecords(out, func(r dto.ScheduleRecord) bool {
			return strings.Contains(Normalize(r.Consultant), needle)
		})
	}
	if f.dates != nil {
		out = filterRecords(out, func(r dto.ScheduleRecord) bool {
			rr, ok := recordRange(r)
			return ok && f.dates.Overlaps(rr)
		})
	}
	if f.project != "" {
		needle := Normalize(f.project)
		out = filterRecords(out, func(r dto.ScheduleRecord) bool {
			return strings.Contains(Normalize(r.Project), needle)
		})
	}
	if f.workOrder != "" {
		out = filterRecords(out, func(r dto.ScheduleRecord) bool {
			return strings.Contains(r.WorkOrder, f.workOrder)
		})
	}
	return out
}

func filterRecords(records []dto.ScheduleRecord, keep func(dto.ScheduleRecord) bool) []dto.ScheduleRecord {
	var out []dto.ScheduleRecord
	for _, r := range records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// retryConsultantAsProject is the name/project disambiguation step: when a
// consultant filter matched nothing and no project filter was given, the
// captured name may actually be a project ("Agendas da Natália" where
// Natália is a project). On success the filters are relabeled so the answer
// reports a project match, not a consultant match.
func retryConsultantAsProject(records []dto.ScheduleRecord, f queryFilters) ([]dto.ScheduleRecord, queryFilters, bool) {
	retry := queryFilters{dates: f.dates, project: f.consultant, workOrder: f.workOrder}
	matched := applyFilters(records, retry)
	if len(matched) == 0 {
		return nil, f, false
	}
	return matched, retry, true
}

// handleConsulta answers filtered queries. With no filter at all it returns
// an aggregate per-consultant summary of the whole snapshot.
func handleConsulta(records []dto.ScheduleRecord, q ParsedQuery) string {
	f := queryFilters{
		consultant: q.Consultant,
		dates:      q.Dates,
		project:    q.Project,
		workOrder:  q.WorkOrder,
	}

	if f.empty() {
		return summarizeRecords(records)
	}

	matched := applyFilters(records, f)
	if len(matched) == 0 && f.consultant != "" && f.project == "" {
		if retried, rf, ok := retryConsultantAsProject(records, f); ok {
			matched = retried
			f = rf
		}
	}

	if len(matched) == 0 {
		return fmt.Sprintf("📭 Não encontrei agendas para %s.", describeFilters(f))
	}

	var b strings.Builder
	b.WriteString("### 📋 Resultado da Consulta\n\n")
	if f.consultant != "" {
		fmt.Fprintf(&b, "👤 **Consultor:** %s\n", f.consultant)
	}
	if f.dates != nil {
		if f.dates.Start.Equal(f.dates.End) {
			fmt.Fprintf(&b, "📅 **Data:** %s\n", FormatDisplay(f.dates.Start))
		} else {
			fmt.Fprintf(&b, "📅 **Período:** %s\n", displayPeriod(*f.dates))
		}
	}
	if f.project != "" {
		fmt.Fprintf(&b, "📁 **Projeto:** %s\n", f.project)
	}
	if f.workOrder != "" {
		fmt.Fprintf(&b, "📋 **OS:** %s\n", f.workOrder)
	}

	fmt.Fprintf(&b, "\n---\n\n✅ **Encontrado:** %s\n\n---\n\n", agendaCount(len(matched)))

	shown := matched
	if len(shown) > consultaDisplayCap {
		shown = shown[:consultaDisplayCap]
	}
	for _, r := range shown {
		fmt.Fprintf(&b, "• **Consultor:** %s\n", r.Consultant)
		if r.Vacant() {
			b.WriteString("  **Status:** 🟢 DISPONÍVEL (agenda vaga)\n")
		} else {
			fmt.Fprintf(&b, "  **Projeto:** %s\n", r.Project)
			if r.WorkOrder != "" {
				fmt.Fprintf(&b, "  **OS:** %s\n", r.WorkOrder)
			}
			if r.Manager != "" {
				fmt.Fprintf(&b, "  **Gerente:** %s\n", r.Manager)
			}
		}
		fmt.Fprintf(&b, "  📅 **Período:** %s até %s\n\n", displayRecordDate(r.StartDate), displayRecordDate(r.EndDate))
	}

	if extra := len(matched) - consultaDisplayCap; extra > 0 {
		fmt.Fprintf(&b, "---\n\n_... e mais %s. Use o Dashboard para ver todas._", agendaCount(extra))
	}
	return b.String()
}

// summarizeRecords is the no-filter answer: total plus per-consultant counts.
func summarizeRecords(records []dto.ScheduleRecord) string {
	counts := make(map[string]int)
	for _, r := range records {
		counts[r.Consultant]++
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("### 📊 Resumo Geral\n\n")
	fmt.Fprintf(&b, "**Total:** %d agendas cadastradas\n\n", len(records))
	for _, name := range names {
		fmt.Fprintf(&b, "• **%s:** %d agendas\n", name, counts[name])
	}
	b.WriteString("\n💡 Para consultas específicas, mencione o consultor ou data.\n")
	b.WriteString("**Exemplos:** _Sirlene dia 20/12_, _André em março_")
	return b.String()
}

// describeFilters renders the applied filters for not-found messages.
func describeFilters(f queryFilters) string {
	var parts []string
	if f.consultant != "" {
		parts = append(parts, fmt.Sprintf("consultor **%s**", f.consultant))
	}
	if f.dates != nil {
		if f.dates.Start.Equal(f.dates.End) {
			parts = append(parts, fmt.Sprintf("data **%s**", FormatDisplay(f.dates.Start)))
		} else {
			parts = append(parts, fmt.Sprintf("período **%s**", displayPeriod(*f.dates)))
		}
	}
	if f.project != "" {
		parts = append(parts, fmt.Sprintf("projeto **%s**", f.project))
	}
	if f.workOrder != "" {
		parts = append(parts, fmt.Sprintf("OS **%s**", f.workOrder))
	}
	return strings.Join(parts, ", ")
}

// displayRecordDate converts a stored date for display, passing malformed
// values through untouched.
func displayRecordDate(s string) string {
	t, err := ParseStoreDate(s)
	if err != nil {
		return s
	}
	return FormatDisplay(t)
}
