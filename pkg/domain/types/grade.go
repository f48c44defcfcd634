package types

// ComplianceGrade is the display label for a management score band
type ComplianceGrade string

const (
	GradeExcellent ComplianceGrade = "Excellent"
	GradeGood      ComplianceGrade = "Good"
	GradeFair      ComplianceGrade = "Fair"
	GradePoor      ComplianceGrade = "Poor"
	GradeVeryPoor  ComplianceGrade = "Very Poor"
)

// AllComplianceGrades returns all valid compliance grades
func AllComplianceGrades() []ComplianceGrade {
	return []ComplianceGrade{
		GradeExcellent,
		GradeGood,
		GradeFair,
		GradePoor,
		GradeVeryPoor,
	}
}

// IsValid checks if the compliance grade is valid
func (g ComplianceGrade) IsValid() bool {
	switch g {
	case GradeExcellent,
		GradeGood,
		GradeFair,
		GradePoor,
		GradeVeryPoor:
		return true
	default:
		return false
	}
}

// String returns the string representation of the compliance grade
func (g ComplianceGrade) String() string {
	return string(g)
}
