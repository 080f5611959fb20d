package registry

import (
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

// Stage is one step of the fixed conservation/digitization workflow.
type Stage string

const (
	StageReceipt      Stage = "receipt"
	StageInspection   Stage = "inspection"
	StageRestoration  Stage = "restoration-or-sterilization"
	StageDigitization Stage = "digitization"
	StageQualityCheck Stage = "quality-review"
	StageCataloging   Stage = "cataloging"
)

var allStages = []Stage{
	StageReceipt,
	StageInspection,
	StageRestoration,
	StageDigitization,
	StageQualityCheck,
	StageCataloging,
}

var stageSet = func() map[Stage]struct{} {
	set := make(map[Stage]struct{}, len(allStages))
	for _, stage := range allStages {
		set[stage] = struct{}{}
	}
	return set
}()

// Department is the organizational unit that owns a manuscript in its
// current stage.
type Department string

const (
	DepartmentRestoration  Department = "restoration-and-sterilization-center"
	DepartmentDigitization Department = "digitization-and-cataloging-center"
	DepartmentAccess       Department = "access-services"
)

var allDepartments = []Department{
	DepartmentRestoration,
	DepartmentDigitization,
	DepartmentAccess,
}

var departmentSet = func() map[Department]struct{} {
	set := make(map[Department]struct{}, len(allDepartments))
	for _, department := range allDepartments {
		set[department] = struct{}{}
	}
	return set
}()

// Arabic display labels used on the export surface. Storage keeps the
// canonical tokens; the report file mirrors the labels operators know.
var stageLabels = map[Stage]string{
	StageReceipt:      "استلام",
	StageInspection:   "فحص",
	StageRestoration:  "ترميم أو تعقيم",
	StageDigitization: "رقمنة",
	StageQualityCheck: "مراجعة جودة",
	StageCataloging:   "فهرسة",
}

var departmentLabels = map[Department]string{
	DepartmentRestoration:  "مركز الترميم والتعقيم",
	DepartmentDigitization: "مركز الرقمنة والفهرسة",
	DepartmentAccess:       "الإتاحة",
}

// EnteredDateLayout is the storage format for stage-entry dates.
const EnteredDateLayout = "2006-01-02"

// Record represents a manuscript row persisted in SQLite.
type Record struct {
	ID          int64
	Number      string
	Title       string
	Stage       Stage
	Department  Department
	Assignee    string
	EnteredDate string // YYYY-MM-DD, empty when unknown
	SLADays     int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AllStages returns the workflow stages in display order.
func AllStages() []Stage {
	cp := make([]Stage, len(allStages))
	copy(cp, allStages)
	return cp
}

// AllDepartments returns the departments in display order.
func AllDepartments() []Department {
	cp := make([]Department, len(allDepartments))
	copy(cp, allDepartments)
	return cp
}

// ParseStage converts a string into a known Stage.
func ParseStage(value string) (Stage, bool) {
	normalized := Stage(strings.ToLower(strings.TrimSpace(value)))
	if normalized == "" {
		return "", false
	}
	_, ok := stageSet[normalized]
	return normalized, ok
}

// ParseDepartment converts a string into a known Department.
func ParseDepartment(value string) (Department, bool) {
	normalized := Department(strings.ToLower(strings.TrimSpace(value)))
	if normalized == "" {
		return "", false
	}
	_, ok := departmentSet[normalized]
	return normalized, ok
}

// Label returns the Arabic display label for a stage. Unknown stages fall
// back to the stored token so legacy rows remain visible.
func (s Stage) Label() string {
	if label, ok := stageLabels[s]; ok {
		return label
	}
	return string(s)
}

// Label returns the Arabic display label for a department.
func (d Department) Label() string {
	if label, ok := departmentLabels[d]; ok {
		return label
	}
	return string(d)
}

// Normalize trims free-text fields and applies NFC so visually identical
// Arabic strings compare equal under the uniqueness constraint.
func (r *Record) Normalize() {
	r.Number = normalizeText(r.Number)
	r.Title = normalizeText(r.Title)
	r.Assignee = normalizeText(r.Assignee)
	r.EnteredDate = strings.TrimSpace(r.EnteredDate)
}

// Validate checks the record against the registry invariants. Stage and
// department may be empty (the columns are nullable) but non-empty values
// must come from the fixed vocabularies.
func (r *Record) Validate() error {
	if r.Number == "" {
		return ErrEmptyNumber
	}
	if r.SLADays < 0 {
		return ErrNegativeSLA
	}
	if r.Stage != "" {
		if _, ok := stageSet[r.Stage]; !ok {
			return &VocabularyError{Field: "stage", Value: string(r.Stage)}
		}
	}
	if r.Department != "" {
		if _, ok := departmentSet[r.Department]; !ok {
			return &VocabularyError{Field: "department", Value: string(r.Department)}
		}
	}
	if r.EnteredDate != "" {
		if _, err := time.Parse(EnteredDateLayout, r.EnteredDate); err != nil {
			return &DateError{Value: r.EnteredDate}
		}
	}
	return nil
}

func normalizeText(value string) string {
	return norm.NFC.String(strings.TrimSpace(value))
}
