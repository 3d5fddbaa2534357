package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeValue(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		want  float64
		valid bool
	}{
		{name: "plain integer", raw: "110", want: 110, valid: true},
		{name: "decimal", raw: "10.5", want: 10.5, valid: true},
		{name: "thousands separator", raw: "12,000", want: 12000, valid: true},
		{name: "less-than bound", raw: "<10", want: 10, valid: true},
		{name: "greater-than bound with unit", raw: ">5.5 mg/dL", want: 5.5, valid: true},
		{name: "value with unit", raw: "10.5 g/dL", want: 10.5, valid: true},
		{name: "percent unit", raw: "6.4%", want: 6.4, valid: true},
		{name: "micro unit", raw: "4.2 M/µL", want: 4.2, valid: true},
		{name: "lakh magnitude", raw: "1.2 Lakh", want: 120000, valid: true},
		{name: "lac magnitude", raw: "2 Lac", want: 200000, valid: true},
		{name: "number buried in text", raw: "approx 42 or so", want: 42, valid: true},
		{name: "surrounding whitespace", raw: "  7.0  ", want: 7, valid: true},
		{name: "letters only", raw: "abc", valid: false},
		{name: "empty string", raw: "", valid: false},
		{name: "whitespace only", raw: "   ", valid: false},
		{name: "dots only", raw: "..", valid: false},
		{name: "lakh without number", raw: "Lakh", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeValue(tt.raw)
			assert.Equal(t, tt.valid, ok)
			if tt.valid {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}
