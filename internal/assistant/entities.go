package assistant

import (
	"regexp"
	"strings"
)

// DefaultConsultants is the known-name registry checked before any pattern
// matching. Overridable through configuration.
var DefaultConsultants = []string{"André", "Andre", "Gracina", "Sirlene", "Mayara", "Miguel", "Lucas"}

// consultantPatterns are tried in order against the original-case text; the
// capitalization requirement keeps generic lowercase words from matching.
var consultantPatterns = []*regexp.Regexp{
	regexp.MustCompile(`consultor[a]?\s+([A-ZÀ-Ú][a-zà-ú]+(?:\s+[A-ZÀ-Ú][a-zà-ú]+)?)`),
	regexp.MustCompile(`(?:do|da|de|o|a)\s+([A-ZÀ-Ú][a-zà-ú]+(?:\s+[A-ZÀ-Ú][a-zà-ú]+)?)`),
	regexp.MustCompile(`([A-ZÀ-Ú][a-zà-ú]+(?:\s+[A-ZÀ-Ú][a-zà-ú]+)?)\s+(?:está|tem|pode|livre|ocupado)`),
	regexp.MustCompile(`agende\s+(?:o|a)?\s*([A-ZÀ-Ú][a-zà-ú]+(?:\s+[A-ZÀ-Ú][a-zà-ú]+)?)`),
	regexp.MustCompile(`agendas?\s+(?:do|da|de)\s+([A-ZÀ-Ú][a-zà-ú]+(?:\s+[A-ZÀ-Ú][a-zà-ú]+)?)`),
}

// consultantStoplist rejects captures that are generic nouns, not names.
var consultantStoplist = map[string]bool{
	"consultor":  true,
	"consultora": true,
	"projeto":    true,
	"agenda":     true,
}

var projectRe = regexp.MustCompile(`[Pp]rojeto\s+([A-ZÀ-Ú][A-Za-zà-ú0-9\s]+?)(?:\s*,|\s+OS|\s+os|\s*$)`)

var workOrderRe = regexp.MustCompile(`(?i)OS\s*[:\-]?\s*(\d+)`)

// ExtractConsultant pulls a consultant name out of free text. The registry
// is checked first (case-insensitive substring) so known names win over the
// generic capitalized-word patterns. Returns "" when nothing matches, which
// is a common, normal outcome.
func (a *Assistant) ExtractConsultant(text string) string {
	lower := strings.ToLower(text)
	for _, name := range a.registry {
		if strings.Contains(lower, strings.ToLower(name)) {
			return name
		}
	}

	for _, re := range consultantPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			name := strings.TrimSpace(m[1])
			if !consultantStoplist[strings.ToLower(name)] {
				return name
			}
		}
	}
	return ""
}

// ExtractProject matches "Projeto <Name...>", cutting the capture at a
// comma, an OS token or end of string.
func ExtractProject(text string) string {
	if m := projectRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// ExtractWorkOrder matches an OS number such as "OS 12345" or "os: 99".
func ExtractWorkOrder(text string) string {
	if m := workOrderRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}
