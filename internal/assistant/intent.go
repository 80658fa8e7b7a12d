package assistant

import "strings"

// Intent is the classified purpose of a user message. Values match the
// handler vocabulary used in responses and logs.
type Intent string

const (
	IntentCreate       Intent = "criar"
	IntentOpenSlot     Intent = "verificar_vaga"
	IntentAvailability Intent = "disponibilidade"
	IntentList         Intent = "listar"
	IntentQuery        Intent = "consulta"
)

// ParsedQuery holds everything extracted from one message. All entity fields
// are optional; the zero value means "not specified by the user".
type ParsedQuery struct {
	Consultant string
	Project    string
	WorkOrder  string
	Dates      *DateRange
	Intent     Intent
	// Rule names the classifier rule that fired, for logs and for the
	// fallback decision (only the default rule may delegate to the
	// generative fallback).
	Rule string
}

var createKeywords = []string{
	"agende", "criar", "adicionar", "adicione", "registrar", "registre", "alocar", "aloque", "reserve",
}

var openSlotKeywords = []string{
	"vaga", "preciso de", "tem alguem", "tem alguém", "quem pode", "quem está livre", "quem esta livre", "sugira", "sugestão",
}

var availabilityKeywords = []string{
	"livre", "ocupado", "disponível", "disponivel", "pode", "está livre", "esta livre", "tem vaga", "tem agenda livre",
}

var listKeywords = []string{
	"liste", "listar", "mostre todas", "exiba todas", "todas as agendas", "todos os", "lista de",
}

var queryVerbs = []string{
	"mostre", "exiba", "ver", "veja", "consultar", "qual", "quais", "quem", "onde", "quando",
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// intentSignals are the inputs the classification rules see.
type intentSignals struct {
	lower         string
	hasConsultant bool
	hasDates      bool
}

// intentRule is one (predicate, intent) pair. Rules are evaluated
// top-to-bottom with early exit so the priority order stays auditable and
// testable rule by rule.
type intentRule struct {
	name    string
	applies func(s intentSignals) bool
	intent  Intent
}

var intentRules = []intentRule{
	{"create-keyword", func(s intentSignals) bool {
		return containsAny(s.lower, createKeywords)
	}, IntentCreate},
	{"open-slot-keyword", func(s intentSignals) bool {
		return containsAny(s.lower, openSlotKeywords)
	}, IntentOpenSlot},
	// Availability keywords alone are too generic ("pode", "livre"); they
	// only count when the message also names a subject or a date.
	{"availability-keyword", func(s intentSignals) bool {
		return containsAny(s.lower, availabilityKeywords) && (s.hasConsultant || s.hasDates)
	}, IntentAvailability},
	{"list-keyword", func(s intentSignals) bool {
		return containsAny(s.lower, listKeywords)
	}, IntentList},
	{"entities-and-query-verb", func(s intentSignals) bool {
		return s.hasConsultant && s.hasDates && containsAny(s.lower, queryVerbs)
	}, IntentQuery},
	{"entity-and-query-verb", func(s intentSignals) bool {
		return (s.hasConsultant || s.hasDates) && containsAny(s.lower, queryVerbs)
	}, IntentQuery},
	{"entity-only", func(s intentSignals) bool {
		return s.hasConsultant || s.hasDates
	}, IntentQuery},
}

// defaultRule names the fall-through classification.
const defaultRule = "default"

// classifyIntent runs the rule table over the message signals. The default
// is a plain query, which at worst produces a general summary.
func classifyIntent(text string, hasConsultant, hasDates bool) (Intent, string) {
	s := intentSignals{
		lower:         strings.ToLower(text),
		hasConsultant: hasConsultant,
		hasDates:      hasDates,
	}
	for _, r := range intentRules {
		if r.applies(s) {
			return r.intent, r.name
		}
	}
	return IntentQuery, defaultRule
}
