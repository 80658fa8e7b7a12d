package assistant

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"azimute/agenda-assistant-api/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFallback records whether the generative path was taken.
type fakeFallback struct {
	answer string
	err    error
	called bool
	prompt string
}

func (f *fakeFallback) Answer(_ context.Context, prompt string) (string, error) {
	f.called = true
	f.prompt = prompt
	return f.answer, f.err
}

func fixedClock() func() time.Time {
	return func() time.Time { return wednesday }
}

func testAssistant(opts ...Option) *Assistant {
	return New(append([]Option{WithClock(fixedClock())}, opts...)...)
}

func record(consultant, project, workOrder, start, end string) dto.ScheduleRecord {
	return dto.ScheduleRecord{
		Consultant: consultant,
		Project:    project,
		WorkOrder:  workOrder,
		StartDate:  start,
		EndDate:    end,
	}
}

func TestProcessQuery_AvailabilityBusy(t *testing.T) {
	a := testAssistant()
	records := []dto.ScheduleRecord{
		record("André Santos", "Projeto Fiscal", "100", "2025-01-10", "2025-01-20"),
	}

	resp := a.ProcessQuery(context.Background(), "O André está livre amanhã?", records, nil)

	assert.Contains(t, resp.Text, "NÃO")
	assert.Contains(t, resp.Text, "André")
	assert.Contains(t, resp.Text, "Projeto Fiscal")
	assert.Contains(t, resp.Text, "dia 16/01/2025")
	assert.Nil(t, resp.Action)
}

func TestProcessQuery_AvailabilityFree(t *testing.T) {
	a := testAssistant()
	records := []dto.ScheduleRecord{
		record("André Santos", "Projeto Fiscal", "100", "2025-02-01", "2025-02-10"),
	}

	resp := a.ProcessQuery(context.Background(), "O André está livre amanhã?", records, nil)

	assert.Contains(t, resp.Text, "SIM")
	assert.Contains(t, resp.Text, "livre")
}

func TestProcessQuery_AvailabilityVacantRecordMeansFree(t *testing.T) {
	a := testAssistant()
	records := []dto.ScheduleRecord{
		record("André Santos", "VAGO", "", "2025-01-01", "2025-01-31"),
	}

	resp := a.ProcessQuery(context.Background(), "O André está livre amanhã?", records, nil)

	assert.Contains(t, resp.Text, "SIM", "a vacancy record is not a conflict")
}

func TestProcessQuery_AvailabilityWithoutConsultant(t *testing.T) {
	a := testAssistant()

	resp := a.ProcessQuery(context.Background(), "está livre amanhã?", nil, nil)

	assert.Contains(t, resp.Text, "mencione o nome do consultor")
}

func TestProcessQuery_AvailabilityUnknownConsultant(t *testing.T) {
	a := testAssistant()
	records := []dto.ScheduleRecord{
		record("Mayara", "Projeto Fiscal", "", "2025-01-10", "2025-01-20"),
	}

	resp := a.ProcessQuery(context.Background(), "O Miguel está livre amanhã?", records, nil)

	assert.Contains(t, resp.Text, "Não encontrei agendas para o consultor")
	assert.Contains(t, resp.Text, "Miguel")
}

func TestProcessQuery_AvailabilityDefaultsToToday(t *testing.T) {
	a := testAssistant()
	records := []dto.ScheduleRecord{
		record("Sirlene", "Projeto Fiscal", "", "2025-01-15", "2025-01-15"),
	}

	resp := a.ProcessQuery(context.Background(), "Sirlene está ocupado?", records, nil)

	assert.Contains(t, resp.Text, "NÃO")
	assert.Contains(t, resp.Text, "dia 15/01/2025")
}

func TestProcessQuery_OpenSlot(t *testing.T) {
	a := testAssistant()
	records := []dto.ScheduleRecord{
		record("Ana", "Projeto Fiscal", "1", "2025-03-12", "2025-03-14"),
		record("Bruno", "Projeto Contábil", "2", "2025-02-01", "2025-02-05"),
		record("Carla", "VAGO", "", "2025-03-01", "2025-03-31"),
	}

	resp := a.ProcessQuery(context.Background(), "Preciso de alguém de 10/03 a 15/03", records, nil)

	assert.Contains(t, resp.Text, "Encontrei 2 consultores disponíveis")
	assert.Contains(t, resp.Text, "Bruno")
	assert.Contains(t, resp.Text, "Carla", "vacancy records do not make a consultant busy")
	assert.NotContains(t, resp.Text, "Ana")
}

func TestProcessQuery_OpenSlotNobodyFree(t *testing.T) {
	a := testAssistant()
	records := []dto.ScheduleRecord{
		record("Ana", "Projeto Fiscal", "1", "2025-03-01", "2025-03-31"),
	}

	resp := a.ProcessQuery(context.Background(), "Preciso de alguém de 10/03 a 15/03", records, nil)

	assert.Contains(t, resp.Text, "Não há consultores disponíveis")
}

func TestProcessQuery_OpenSlotRequiresPeriod(t *testing.T) {
	a := testAssistant()

	resp := a.ProcessQuery(context.Background(), "preciso de um recurso extra", nil, nil)

	assert.Contains(t, resp.Text, "preciso saber o período")
}

func TestProcessQuery_CreateComplete(t *testing.T) {
	a := testAssistant()

	resp := a.ProcessQuery(context.Background(),
		"Agende o consultor João Silva para o Projeto Alpha, OS 12345, de 15/01/2025 a 20/01/2025", nil, nil)

	require.NotNil(t, resp.Action)
	assert.Equal(t, dto.ActionTypeCreateRecord, resp.Action.Type)
	assert.Equal(t, "João Silva", resp.Action.Fields.Consultant)
	assert.Equal(t, "Alpha", resp.Action.Fields.Project)
	assert.Equal(t, "12345", resp.Action.Fields.WorkOrder)
	assert.Equal(t, "2025-01-15", resp.Action.Fields.StartDate)
	assert.Equal(t, "2025-01-20", resp.Action.Fields.EndDate)
	assert.Contains(t, resp.Text, "Todas as informações foram coletadas")
}

func TestProcessQuery_CreateIncomplete(t *testing.T) {
	a := testAssistant()

	resp := a.ProcessQuery(context.Background(), "Agende o João", nil, nil)

	assert.Nil(t, resp.Action, "incomplete commands must not produce an action")
	assert.Contains(t, resp.Text, "Informações faltando")
	assert.Contains(t, resp.Text, "Nome do projeto")
	assert.Contains(t, resp.Text, "Número da OS")
	assert.Contains(t, resp.Text, "Datas (início e fim)")
	assert.NotContains(t, resp.Text, "Nome do consultor", "the consultant was provided")
}

func TestProcessQuery_ListGroupsByConsultant(t *testing.T) {
	a := testAssistant()
	records := []dto.ScheduleRecord{
		record("Ana", "Projeto Fiscal", "1", "2025-01-10", "2025-01-20"),
		record("Bruno", "Projeto Contábil", "2", "2025-01-12", "2025-01-18"),
		record("Ana", "Projeto Beta", "3", "2025-02-01", "2025-02-10"),
	}

	resp := a.ProcessQuery(context.Background(), "Liste todas as agendas", records, nil)

	assert.Contains(t, resp.Text, "Total de agendas:** 3")
	assert.Contains(t, resp.Text, "Ana** (2 agenda(s))")
	assert.Contains(t, resp.Text, "Bruno** (1 agenda(s))")
}

func TestProcessQuery_ListEmpty(t *testing.T) {
	a := testAssistant()

	resp := a.ProcessQuery(context.Background(), "Liste todas as agendas", nil, nil)

	assert.Contains(t, resp.Text, "Não há agendas cadastradas")
}

func TestProcessQuery_ConsultaByWorkOrder(t *testing.T) {
	records := []dto.ScheduleRecord{
		record("Ana", "Projeto Fiscal", "123", "2025-01-10", "2025-01-20"),
		record("Bruno", "Projeto Contábil", "456", "2025-01-12", "2025-01-18"),
	}
	fb := &fakeFallback{answer: "nunca"}
	a := testAssistant(WithFallback(fb))

	resp := a.ProcessQuery(context.Background(), "OS 123", records, nil)

	assert.Contains(t, resp.Text, "Ana")
	assert.NotContains(t, resp.Text, "Bruno")
	assert.False(t, fb.called, "a work-order filter keeps the answer deterministic")
}

func TestProcessQuery_ConsultaRetriesNameAsProject(t *testing.T) {
	a := testAssistant(WithConsultants([]string{"Natália"}))
	records := []dto.ScheduleRecord{
		record("Ana", "Natália", "9", "2025-01-10", "2025-01-20"),
	}

	resp := a.ProcessQuery(context.Background(), "mostre as agendas da natália", records, nil)

	assert.Contains(t, resp.Text, "Projeto:** Natália", "the captured name matched a project, not a consultant")
	assert.Contains(t, resp.Text, "Ana")
}

func TestProcessQuery_SummaryWhenNoFilters(t *testing.T) {
	a := testAssistant()
	records := []dto.ScheduleRecord{
		record("Ana", "Projeto Fiscal", "1", "2025-01-10", "2025-01-20"),
		record("Ana", "Projeto Beta", "2", "2025-02-01", "2025-02-05"),
		record("Bruno", "Projeto Contábil", "3", "2025-01-12", "2025-01-18"),
	}

	resp := a.ProcessQuery(context.Background(), "como estão as coisas?", records, nil)

	assert.Contains(t, resp.Text, "Resumo Geral")
	assert.Contains(t, resp.Text, "Total:** 3 agendas")
	assert.Contains(t, resp.Text, "Ana:** 2 agendas")
	assert.Contains(t, resp.Text, "Bruno:** 1 agendas")
}

func TestProcessQuery_FallbackInvoked(t *testing.T) {
	fb := &fakeFallback{answer: "resposta gerada"}
	a := testAssistant(WithFallback(fb))
	records := []dto.ScheduleRecord{
		record("Ana", "Projeto Fiscal", "1", "2025-01-10", "2025-01-20"),
	}
	history := []dto.ChatMessage{{Role: "user", Text: "oi"}}

	resp := a.ProcessQuery(context.Background(), "me conte uma piada", records, history)

	assert.True(t, fb.called)
	assert.Equal(t, "resposta gerada", resp.Text)
	assert.Contains(t, fb.prompt, "me conte uma piada")
	assert.Contains(t, fb.prompt, "Conversa anterior")
	assert.Contains(t, fb.prompt, "Ana")
}

func TestProcessQuery_FallbackErrorUsesFixedText(t *testing.T) {
	fb := &fakeFallback{err: errors.New("quota exceeded")}
	a := testAssistant(WithFallback(fb))

	resp := a.ProcessQuery(context.Background(), "me conte uma piada", nil, nil)

	assert.Equal(t, fallbackErrorText, resp.Text)
	assert.NotContains(t, resp.Text, "quota", "provider errors never leak to the user")
}

func TestProcessQuery_FallbackDisabledDegradesToSummary(t *testing.T) {
	a := testAssistant()
	records := []dto.ScheduleRecord{
		record("Ana", "Projeto Fiscal", "1", "2025-01-10", "2025-01-20"),
	}

	resp := a.ProcessQuery(context.Background(), "me conte uma piada", records, nil)

	assert.Contains(t, resp.Text, "Resumo Geral")
}

func TestProcessQuery_ConsultaDisplayCap(t *testing.T) {
	a := testAssistant()
	var records []dto.ScheduleRecord
	for i := 0; i < 14; i++ {
		records = append(records, record("Ana", fmt.Sprintf("Projeto %d", i), "1", "2025-01-10", "2025-01-20"))
	}

	resp := a.ProcessQuery(context.Background(), "mostre a agenda da ana em 15/01/2025", records, nil)

	assert.Contains(t, resp.Text, "Encontrado:** 14 agendas")
	assert.Contains(t, resp.Text, "e mais 4 agendas")
}

func TestProcessQuery_MalformedRecordDatesInvisibleToDateFilters(t *testing.T) {
	a := testAssistant()
	records := []dto.ScheduleRecord{
		record("Ana", "Projeto Fiscal", "1", "corrompido", "2025-01-20"),
	}

	resp := a.ProcessQuery(context.Background(), "O Ana está livre amanhã?", records, nil)

	assert.Contains(t, resp.Text, "SIM", "records with unparseable dates never conflict")
}
