package finder

import "strings"

// Message is one turn of a chat conversation as the API receives it. Role
// follows the usual chat convention ("user" or "assistant").
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// reportTriggers mark user turns that asked for a report rather than stating
// search criteria; such turns are skipped when reconstructing context.
var reportTriggers = []string{"reporte", "informe", "generar", "genera"}

// PreviousCriteria reconstructs the most recent search criteria from the
// conversation history, scanning user turns newest-first. Turns that were
// report requests, bare numeric selections, or small talk carry no criteria
// and are skipped; the first turn that yields anything wins.
func PreviousCriteria(history []Message) Criteria {
	for i := len(history) - 1; i >= 0; i-- {
		msg := history[i]
		if msg.Role != "user" {
			continue
		}
		q := canonicalize(msg.Content)
		if q == "" || isReportRequest(q) || isNumericSelection(q) {
			continue
		}
		if _, conversational := ClassifyConversational(msg.Content); conversational {
			continue
		}
		if c := Extract(msg.Content); !c.IsEmpty() {
			return c
		}
	}
	return Criteria{}
}

// HasReportRequest reports whether any user turn in the history asked for a
// report.
func HasReportRequest(history []Message) bool {
	for _, msg := range history {
		if msg.Role == "user" && isReportRequest(canonicalize(msg.Content)) {
			return true
		}
	}
	return false
}

// AnnotateContext appends a report-request note to the caller-supplied
// conversation context when the history contains one, so consumers that never
// see the raw history still know a report was asked for.
func AnnotateContext(base string, history []Message) string {
	if !HasReportRequest(history) {
		return base
	}
	const note = "El usuario pidió un reporte de las propiedades encontradas."
	if base == "" {
		return note
	}
	return base + "\n" + note
}

func isReportRequest(q string) bool {
	for _, tok := range reportTriggers {
		if strings.Contains(q, tok) {
			return true
		}
	}
	return false
}

// isNumericSelection catches turns like "3" or "2, 5" where the user picked
// listings from a previous answer.
func isNumericSelection(q string) bool {
	for _, r := range q {
		switch {
		case r >= '0' && r <= '9':
		case r == ' ' || r == ',' || r == 'y':
		default:
			return false
		}
	}
	return true
}
