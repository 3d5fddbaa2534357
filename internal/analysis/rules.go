package analysis

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// RuleEntry defines the default reference range and clinical meaning for one
// known lab test. Entries are immutable once loaded.
type RuleEntry struct {
	// Name is the lower-cased human test name searched for in report text.
	Name string `json:"name"`
	// Low and High are the default reference bounds, Low <= High.
	Low  float64 `json:"low"`
	High float64 `json:"high"`
	// Unit is the display unit for values and ranges.
	Unit string `json:"unit"`
	// Meaning is the advisory note attached to abnormal findings.
	Meaning string `json:"meaning"`
}

// Ruleset is an ordered, read-only rule table. Iteration order is the order
// entries were defined in, which also determines analysis output order.
type Ruleset struct {
	entries []RuleEntry
}

// NewRuleset validates entries and builds a rule table. Names are lower-cased
// and must be unique; every entry must satisfy Low <= High.
func NewRuleset(entries []RuleEntry) (*Ruleset, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("ruleset cannot be empty")
	}

	seen := make(map[string]bool, len(entries))
	normalized := make([]RuleEntry, 0, len(entries))
	for _, e := range entries {
		name := strings.ToLower(strings.TrimSpace(e.Name))
		if name == "" {
			return nil, fmt.Errorf("rule with empty name")
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate rule: %s", name)
		}
		if e.Low > e.High {
			return nil, fmt.Errorf("rule %s: low %v exceeds high %v", name, e.Low, e.High)
		}
		seen[name] = true
		e.Name = name
		normalized = append(normalized, e)
	}

	return &Ruleset{entries: normalized}, nil
}

// Entries returns the rules in iteration order. Callers must not modify the
// returned slice.
func (r *Ruleset) Entries() []RuleEntry {
	return r.entries
}

// Len returns the number of rules.
func (r *Ruleset) Len() int {
	return len(r.entries)
}

// LoadRulesFile reads a JSON array of rule entries from disk. The file
// replaces the compiled-in table but must satisfy the same constraints.
func LoadRulesFile(path string) (*Ruleset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}

	var entries []RuleEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse rules file %s: %w", path, err)
	}

	rs, err := NewRuleset(entries)
	if err != nil {
		return nil, fmt.Errorf("invalid rules file %s: %w", path, err)
	}
	return rs, nil
}

// DefaultRuleset returns the compiled-in rule table.
func DefaultRuleset() *Ruleset {
	rs, err := NewRuleset(defaultRules())
	if err != nil {
		// The compiled-in table is validated by tests; this is unreachable.
		panic(fmt.Sprintf("default ruleset invalid: %v", err))
	}
	return rs
}

// defaultRules returns the known lab tests with their default reference
// ranges. Order matters: it drives analysis output order.
func defaultRules() []RuleEntry {
	return []RuleEntry{
		// Diabetes / sugar
		{Name: "glucose", Low: 70, High: 99, Unit: "mg/dL", Meaning: "Diabetes risk if high"},
		{Name: "fasting blood sugar", Low: 74, High: 106, Unit: "mg/dL", Meaning: "Diabetes risk if high"},
		{Name: "postprandial glucose", Low: 70, High: 140, Unit: "mg/dL", Meaning: "Elevated after meals indicates diabetes"},
		{Name: "hba1c", Low: 4, High: 6.4, Unit: "%", Meaning: "Diabetes marker; >6.5% indicates diabetes"},

		// Complete blood count
		{Name: "hemoglobin", Low: 12, High: 16.5, Unit: "g/dL", Meaning: "Low may indicate anemia"},
		{Name: "wbc", Low: 4000, High: 11000, Unit: "/µL", Meaning: "Abnormal count may indicate infection"},
		{Name: "platelets", Low: 150000, High: 450000, Unit: "/µL", Meaning: "Low = bleeding risk; High = clotting risk"},
		{Name: "rbc", Low: 4.2, High: 5.9, Unit: "M/µL", Meaning: "Low = anemia; High = dehydration/polycythemia"},
		{Name: "hematocrit", Low: 36, High: 50, Unit: "%", Meaning: "Low = anemia; High = dehydration"},
		{Name: "mcv", Low: 80, High: 100, Unit: "fL", Meaning: "Red cell size; low = microcytic anemia"},
		{Name: "mch", Low: 27, High: 33, Unit: "pg", Meaning: "Hemoglobin per RBC; low = anemia"},
		{Name: "mchc", Low: 32, High: 36, Unit: "g/dL", Meaning: "RBC concentration; low = iron deficiency"},
		{Name: "esr", Low: 0, High: 20, Unit: "mm/hr", Meaning: "High = inflammation/infection"},

		// Lipid profile
		{Name: "cholesterol", Low: 0, High: 200, Unit: "mg/dL", Meaning: "High indicates cardiovascular risk"},
		{Name: "ldl", Low: 0, High: 100, Unit: "mg/dL", Meaning: "High LDL = bad cholesterol"},
		{Name: "hdl", Low: 40, High: 60, Unit: "mg/dL", Meaning: "Low HDL increases heart risk"},
		{Name: "triglyceride", Low: 0, High: 150, Unit: "mg/dL", Meaning: "High indicates metabolic risk"},

		// Kidney function
		{Name: "creatinine", Low: 0.6, High: 1.2, Unit: "mg/dL", Meaning: "High = kidney dysfunction"},
		{Name: "urea", Low: 19, High: 43, Unit: "mg/dL", Meaning: "Kidney function marker"},
		{Name: "uric acid", Low: 3.4, High: 7.0, Unit: "mg/dL", Meaning: "High = gout or kidney issue"},
		{Name: "bun", Low: 7, High: 20, Unit: "mg/dL", Meaning: "Kidney function marker"},

		// Liver function
		{Name: "sgpt", Low: 0, High: 40, Unit: "U/L", Meaning: "High = liver damage"},
		{Name: "sgot", Low: 0, High: 40, Unit: "U/L", Meaning: "High = liver/muscle damage"},
		{Name: "bilirubin", Low: 0.3, High: 1.2, Unit: "mg/dL", Meaning: "High = jaundice/liver issue"},
		{Name: "alkaline phosphatase", Low: 44, High: 147, Unit: "U/L", Meaning: "High = liver/bone disease"},
		{Name: "total protein", Low: 6.0, High: 8.3, Unit: "g/dL", Meaning: "Low = malnutrition/liver issue"},
		{Name: "albumin", Low: 3.5, High: 5.5, Unit: "g/dL", Meaning: "Low = malnutrition/liver/kidney disease"},

		// Thyroid
		{Name: "tsh", Low: 0.4, High: 4.0, Unit: "µIU/mL", Meaning: "Thyroid disorder if abnormal"},
		{Name: "t3", Low: 80, High: 200, Unit: "ng/dL", Meaning: "Thyroid hormone"},
		{Name: "t4", Low: 5.0, High: 12.0, Unit: "µg/dL", Meaning: "Thyroid hormone"},

		// Vitamins and minerals
		{Name: "vitamin d", Low: 30, High: 100, Unit: "ng/mL", Meaning: "Low = Vitamin D deficiency"},
		{Name: "vitamin b12", Low: 187, High: 833, Unit: "pg/mL", Meaning: "Low = Vitamin B12 deficiency"},
		{Name: "calcium", Low: 8.5, High: 10.5, Unit: "mg/dL", Meaning: "Abnormal = bone/metabolic issue"},
		{Name: "sodium", Low: 135, High: 145, Unit: "mmol/L", Meaning: "Electrolyte imbalance if abnormal"},
		{Name: "potassium", Low: 3.5, High: 5.1, Unit: "mmol/L", Meaning: "Abnormal = heart/muscle issues"},

		// Tumor markers
		{Name: "psa", Low: 0, High: 4, Unit: "ng/mL", Meaning: "Prostate cancer marker"},
		{Name: "ca 15-3", Low: 0, High: 30, Unit: "U/mL", Meaning: "Breast cancer progression marker"},
		{Name: "ca-125", Low: 0, High: 35, Unit: "U/mL", Meaning: "Ovarian cancer marker"},
		{Name: "cea", Low: 0, High: 5, Unit: "ng/mL", Meaning: "Colon cancer marker"},
		{Name: "afp", Low: 0, High: 10, Unit: "ng/mL", Meaning: "Liver cancer marker"},

		// Allergy
		{Name: "ige", Low: 0, High: 87, Unit: "IU/mL", Meaning: "High = allergy or asthma risk"},
	}
}
