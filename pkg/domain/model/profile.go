package model

// BusinessProfile captures the onboarding questionnaire. Values are the
// exact option strings presented during signup; unrecognized values are
// allowed and simply contribute nothing to the preliminary score.
type BusinessProfile struct {
	BusinessActivity     string
	BuildingAgeRange     string
	ManagementExperience string
	Qualifications       []string
	ComplianceItems      []string
	EmployeeCountRange   string
	AnnualTurnoverRange  string
	SizeCategory         string
}
