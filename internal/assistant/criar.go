package assistant

import (
	"fmt"
	"strings"

	"azimute/agenda-assistant-api/internal/dto"
)

// handleCriar collects the fields of a create command. With all four fields
// present it returns a recap plus a deferred create_record action for the
// caller to confirm; otherwise it names exactly what is missing.
func (a *Assistant) handleCriar(q ParsedQuery) Response {
	var b strings.Builder
	b.WriteString("📝 Para criar uma agenda, preciso das seguintes informações:\n\n")

	var missing []string

	if q.Consultant != "" {
		fmt.Fprintf(&b, "✅ **Consultor:** %s\n", q.Consultant)
	} else {
		missing = append(missing, "Nome do consultor")
	}
	if q.Project != "" {
		fmt.Fprintf(&b, "✅ **Projeto:** %s\n", q.Project)
	} else {
		missing = append(missing, "Nome do projeto")
	}
	if q.WorkOrder != "" {
		fmt.Fprintf(&b, "✅ **OS:** %s\n", q.WorkOrder)
	} else {
		missing = append(missing, "Número da OS")
	}
	if q.Dates != nil {
		fmt.Fprintf(&b, "✅ **Período:** %s\n", displayPeriod(*q.Dates))
	} else {
		missing = append(missing, "Datas (início e fim)")
	}

	if len(missing) > 0 {
		fmt.Fprintf(&b, "\n❌ **Informações faltando:** %s\n\n", strings.Join(missing, ", "))
		b.WriteString("**Exemplo de comando completo:**\n")
		b.WriteString("_Agende o consultor João Silva para o Projeto Alpha, OS 12345, de 15/01/2025 a 20/01/2025_")
		return Response{Text: b.String()}
	}

	b.WriteString("\n✨ **Todas as informações foram coletadas!**\n\n")
	b.WriteString("Confirme os dados abaixo para criar a agenda:\n")
	fmt.Fprintf(&b, "- **Consultor:** %s\n", q.Consultant)
	fmt.Fprintf(&b, "- **Projeto:** %s\n", q.Project)
	fmt.Fprintf(&b, "- **OS:** %s\n", q.WorkOrder)
	fmt.Fprintf(&b, "- **Período:** %s\n", displayPeriod(*q.Dates))

	return Response{
		Text: b.String(),
		Action: &dto.CreateAction{
			Type: dto.ActionTypeCreateRecord,
			Fields: dto.CreateActionFields{
				Consultant: q.Consultant,
				Project:    q.Project,
				WorkOrder:  q.WorkOrder,
				StartDate:  FormatStore(q.Dates.Start),
				EndDate:    FormatStore(q.Dates.End),
			},
		},
	}
}
