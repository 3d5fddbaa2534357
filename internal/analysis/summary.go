package analysis

import (
	"fmt"
	"strings"
)

// Fixed advisory messages. The summary is best-effort guidance derived from
// heuristic extraction, not verified clinical data.
const (
	MsgNoTests        = "No recognized tests found in this report."
	MsgAllNormal      = "All analyzed values appear within expected ranges."
	msgAbnormalHeader = "Abnormal findings detected:"
)

// Summarize reduces an analysis result to a single advisory narrative.
// Normal records are not mentioned; abnormal findings appear in result order.
func Summarize(result AnalysisResult) string {
	if len(result) == 0 {
		return MsgNoTests
	}

	var notes []string
	for _, rec := range result {
		switch rec.Status {
		case StatusHigh:
			notes = append(notes, fmt.Sprintf("High %s → %s", rec.Test, rec.Meaning))
		case StatusLow:
			notes = append(notes, fmt.Sprintf("Low %s → %s", rec.Test, rec.Meaning))
		}
	}

	if len(notes) == 0 {
		return MsgAllNormal
	}

	return msgAbnormalHeader + "\n- " + strings.Join(notes, "\n- ")
}
