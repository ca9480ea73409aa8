package accent

import (
	"slices"
	"strings"
)

// UnknownCase is what TranslateCaseName returns for a name it does not know.
const UnknownCase = "UNKNOWN"

// Canonical Lithuanian case labels as emitted by the analyzer.
const (
	Vardininkas   = "Vardininkas"
	Kilmininkas   = "Kilmininkas"
	Naudininkas   = "Naudininkas"
	Galininkas    = "Galininkas"
	Inagininkas   = "Įnagininkas"
	Vietininkas   = "Vietininkas"
	Sauksmininkas = "Šauksmininkas"
)

var caseNames = map[string]string{
	"nominative":   Vardininkas,
	"genitive":     Kilmininkas,
	"dative":       Naudininkas,
	"accusative":   Galininkas,
	"instrumental": Inagininkas,
	"locative":     Vietininkas,
	"vocative":     Sauksmininkas,
}

var caseLabels = []string{
	Vardininkas,
	Kilmininkas,
	Naudininkas,
	Galininkas,
	Inagininkas,
	Vietininkas,
	Sauksmininkas,
}

// TranslateCaseName converts an English case name such as "Nominative" or
// "INSTRUMENTAL" into its Lithuanian label. Unrecognized names yield
// UnknownCase rather than an error.
func TranslateCaseName(english string) string {
	if label, ok := caseNames[strings.ToLower(english)]; ok {
		return label
	}
	return UnknownCase
}

// CaseLabels returns the seven Lithuanian case labels, nominative first.
func CaseLabels() []string {
	return slices.Clone(caseLabels)
}

// IsCaseLabel reports whether s is exactly one of the Lithuanian case labels.
func IsCaseLabel(s string) bool {
	return slices.Contains(caseLabels, s)
}
