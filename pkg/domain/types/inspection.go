package types

import "fmt"

// InspectionKind identifies the inspection regime a report belongs to
type InspectionKind string

const (
	InspectionElectrical InspectionKind = "electrical"
	InspectionDrainage   InspectionKind = "drainage"
)

// AllInspectionKinds returns all valid inspection kinds
func AllInspectionKinds() []InspectionKind {
	return []InspectionKind{
		InspectionElectrical,
		InspectionDrainage,
	}
}

// IsValid checks if the inspection kind is valid
func (k InspectionKind) IsValid() bool {
	switch k {
	case InspectionElectrical, InspectionDrainage:
		return true
	default:
		return false
	}
}

// String returns the string representation of the inspection kind
func (k InspectionKind) String() string {
	return string(k)
}

// ParseInspectionKind parses a string into an InspectionKind
func ParseInspectionKind(s string) (InspectionKind, error) {
	kind := InspectionKind(s)
	if !kind.IsValid() {
		return "", fmt.Errorf("invalid inspection kind: %s", s)
	}
	return kind, nil
}

// ReportOutcome is the inspector's verdict on a report. Electrical reports
// use satisfactory/unsatisfactory, drainage reports use good/issues-found.
type ReportOutcome string

const (
	OutcomeSatisfactory   ReportOutcome = "satisfactory"
	OutcomeUnsatisfactory ReportOutcome = "unsatisfactory"
	OutcomeGood           ReportOutcome = "good"
	OutcomeIssuesFound    ReportOutcome = "issues_found"
)

// IsValid checks if the report outcome is valid
func (o ReportOutcome) IsValid() bool {
	switch o {
	case OutcomeSatisfactory,
		OutcomeUnsatisfactory,
		OutcomeGood,
		OutcomeIssuesFound:
		return true
	default:
		return false
	}
}

// ValidFor checks whether the outcome belongs to the given inspection kind
func (o ReportOutcome) ValidFor(kind InspectionKind) bool {
	switch kind {
	case InspectionElectrical:
		return o == OutcomeSatisfactory || o == OutcomeUnsatisfactory
	case InspectionDrainage:
		return o == OutcomeGood || o == OutcomeIssuesFound
	default:
		return false
	}
}

// Compliant reports whether the outcome counts toward the compliance rate
func (o ReportOutcome) Compliant() bool {
	return o == OutcomeSatisfactory || o == OutcomeGood
}

// String returns the string representation of the report outcome
func (o ReportOutcome) String() string {
	return string(o)
}
