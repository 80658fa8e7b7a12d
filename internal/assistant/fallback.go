package assistant

import (
	"context"
	"fmt"
	"log"
	"strings"

	"azimute/agenda-assistant-api/internal/dto"
)

const (
	fallbackListingCap = 20
	fallbackHistoryCap = 6
)

// fallbackErrorText is the only thing users see when the generative call
// fails; external errors never propagate past this point.
const fallbackErrorText = "❌ Erro ao processar com IA.\n\nTente reformular sua pergunta ou use o Dashboard."

// generativeAnswer delegates a question the rule-based core could not
// answer. The prompt still carries the deterministic filters and a capped
// record listing so the model grounds its answer in real data.
func (a *Assistant) generativeAnswer(ctx context.Context, query string, records []dto.ScheduleRecord, q ParsedQuery, history []dto.ChatMessage) string {
	prompt := buildFallbackPrompt(query, records, q, history)
	answer, err := a.fallback.Answer(ctx, prompt)
	if err != nil {
		log.Printf("[Assistant] Generative fallback failed: %v", err)
		return fallbackErrorText
	}
	return strings.TrimSpace(answer)
}

// buildFallbackPrompt assembles the question, applied filters, recent
// conversation turns and a capped listing of matching records.
func buildFallbackPrompt(query string, records []dto.ScheduleRecord, q ParsedQuery, history []dto.ChatMessage) string {
	filtered := applyFilters(records, queryFilters{
		consultant: q.Consultant,
		dates:      q.Dates,
		project:    q.Project,
		workOrder:  q.WorkOrder,
	})

	var listing strings.Builder
	if len(filtered) == 0 {
		listing.WriteString("Nenhuma agenda encontrada com os filtros aplicados.")
	} else {
		listing.WriteString("Agendas encontradas:\n\n")
		shown := filtered
		if len(shown) > fallbackListingCap {
			shown = shown[:fallbackListingCap]
		}
		for i, r := range shown {
			fmt.Fprintf(&listing, "%d. Consultor: %s, Projeto: %s, OS: %s, Período: %s até %s\n",
				i+1, r.Consultant, r.Project, r.WorkOrder,
				displayRecordDate(r.StartDate), displayRecordDate(r.EndDate))
		}
		if extra := len(filtered) - fallbackListingCap; extra > 0 {
			fmt.Fprintf(&listing, "\n... e mais %d agendas.\n", extra)
		}
	}

	var filters []string
	if q.Consultant != "" {
		filters = append(filters, "Consultor: "+q.Consultant)
	}
	if q.Dates != nil {
		if q.Dates.Start.Equal(q.Dates.End) {
			filters = append(filters, "Data: "+FormatDisplay(q.Dates.Start))
		} else {
			filters = append(filters, "Período: "+displayPeriod(*q.Dates))
		}
	}
	if q.Project != "" {
		filters = append(filters, "Projeto: "+q.Project)
	}
	if q.WorkOrder != "" {
		filters = append(filters, "OS: "+q.WorkOrder)
	}
	filtersText := "Nenhum filtro específico"
	if len(filters) > 0 {
		filtersText = strings.Join(filters, ", ")
	}

	var b strings.Builder
	if len(history) > 0 {
		turns := history
		if len(turns) > fallbackHistoryCap {
			turns = turns[len(turns)-fallbackHistoryCap:]
		}
		b.WriteString("Conversa anterior:\n")
		for _, t := range turns {
			fmt.Fprintf(&b, "[%s] %s\n", t.Role, t.Text)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, `Pergunta do usuário: %s

Filtros aplicados: %s

%s

Total de agendas encontradas: %d

IMPORTANTE:
- Responda de forma clara e objetiva em português brasileiro
- Se encontrou agendas, liste as principais (máximo 10) com formatação clara
- Use emojis para deixar mais visual: 👤 para consultor, 📁 para projeto, 📋 para OS, 📅 para datas
- Se não encontrou nada, explique e sugira verificar o nome ou data
- Se encontrou muitas (mais de 10), liste as 10 primeiras e informe quantas mais existem
- Seja direto e preciso na resposta`, query, filtersText, listing.String(), len(filtered))

	return b.String()
}
