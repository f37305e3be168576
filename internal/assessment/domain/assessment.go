package domain

import "time"

// MaturityLevel is the ordinal capability tag attached to each answer option.
type MaturityLevel string

const (
	MaturityInitial   MaturityLevel = "Initial"
	MaturityDefined   MaturityLevel = "Defined"
	MaturityManaged   MaturityLevel = "Managed"
	MaturityOptimized MaturityLevel = "Optimized"
)

// MaturityLevels in ascending order. The histogram always carries all four.
var MaturityLevels = []MaturityLevel{
	MaturityInitial,
	MaturityDefined,
	MaturityManaged,
	MaturityOptimized,
}

// Priority of a recommendation.
type Priority string

const (
	PriorityCritical Priority = "Critical"
	PriorityHigh     Priority = "High"
	PriorityMedium   Priority = "Medium"
)

// Option is one selectable answer for a question. The engine uses the
// declared score, never an assumed score-per-maturity mapping.
type Option struct {
	Value         string        `json:"value"`
	Label         string        `json:"label"`
	Score         int           `json:"score"`
	MaturityLevel MaturityLevel `json:"maturity_level"`
}

// EvidenceRequirement describes a document a question expects.
type EvidenceRequirement struct {
	Type        string   `json:"type"` // mandatory or optional
	Description string   `json:"description"`
	Formats     []string `json:"formats"`
	Examples    []string `json:"examples"`
}

// Question is one catalog entry. Static data, never mutated at runtime.
type Question struct {
	ID                   string                `json:"id"`
	ControlID            string                `json:"control_id"`
	Category             string                `json:"category"` // category id
	Title                string                `json:"title"`
	Description          string                `json:"description"`
	BusinessContext      string                `json:"business_context,omitempty"`
	LegalBasis           string                `json:"legal_basis"`
	Options              []Option              `json:"options"`
	EvidenceRequirements []EvidenceRequirement `json:"evidence_requirements,omitempty"`
}

// Option returns the option with the given value.
func (q *Question) Option(value string) (Option, bool) {
	for _, o := range q.Options {
		if o.Value == value {
			return o, true
		}
	}
	return Option{}, false
}

// Control is one entry of the NIS2 control register.
type Control struct {
	ID            string   `json:"id"`
	Article       string   `json:"article"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Category      string   `json:"category"` // category id
	Mandatory     bool     `json:"mandatory"`
	Applicability []string `json:"applicability"`
	Requirements  []string `json:"requirements"`
	Evidence      []string `json:"evidence"`
}

// Category is one of the fixed weighted assessment categories. Definition
// order is significant: it breaks ties when ranking recommendations.
type Category struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Weight      float64 `json:"weight"`
}

// EvidenceDescriptor is an attached-file reference. Contents are opaque;
// only presence and counts matter here.
type EvidenceDescriptor struct {
	ID          string    `db:"id" json:"id"`
	FileName    string    `db:"file_name" json:"file_name"`
	ContentType string    `db:"content_type" json:"content_type"`
	SizeBytes   int64     `db:"size_bytes" json:"size_bytes"`
	UploadedAt  time.Time `db:"uploaded_at" json:"uploaded_at"`
}

// Answer is a recorded response. Score and maturity level are copied from
// the catalog option at answer time and never re-derived, so later catalog
// edits cannot rewrite history.
type Answer struct {
	QuestionID    string               `json:"question_id"`
	OptionValue   string               `json:"option_value"`
	Score         int                  `json:"score"`
	MaturityLevel MaturityLevel        `json:"maturity_level"`
	AnsweredAt    time.Time            `json:"answered_at"`
	Evidence      []EvidenceDescriptor `json:"evidence,omitempty"`
}

// CategoryScore carries an explicit Answered flag so a category with no
// answers is distinguishable from one that genuinely scored zero.
type CategoryScore struct {
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
	Score      int    `json:"score"`
	Answered   bool   `json:"answered"`
}

// Gap is an answer below the gap threshold, annotated with its question.
type Gap struct {
	QuestionID    string        `json:"question_id"`
	Title         string        `json:"title"`
	Category      string        `json:"category"`
	CurrentScore  int           `json:"current_score"`
	MaturityLevel MaturityLevel `json:"maturity_level"`
	ControlID     string        `json:"control_id"`
}

// Recommendation is a ranked remediation suggestion.
type Recommendation struct {
	Priority    Priority `json:"priority"`
	Category    string   `json:"category"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Effort      string   `json:"effort"`
	Timeline    string   `json:"timeline"`
	ControlRef  string   `json:"control_ref,omitempty"`
}

// AnalysisResult is the full output of one scoring run.
type AnalysisResult struct {
	OverallScore         int                   `json:"overall_score"`
	CategoryScores       []CategoryScore       `json:"category_scores"`
	MaturityDistribution map[MaturityLevel]int `json:"maturity_distribution"`
	CompletionRate       int                   `json:"completion_rate"`
	CriticalGaps         []Gap                 `json:"critical_gaps"`
	Recommendations      []Recommendation      `json:"recommendations"`

	// Warnings lists orphaned answers (question ids absent from the
	// catalog) that were skipped during aggregation.
	Warnings []string `json:"warnings,omitempty"`
}

// RecommendationPolicy tunes gap detection and recommendation ranking.
// Product behavior, not a legal requirement, so it is a parameter.
type RecommendationPolicy struct {
	GapThreshold       int
	CategoryTarget     int
	CategoryCount      int
	MaxRecommendations int
}

// DefaultRecommendationPolicy mirrors the reference product behavior.
func DefaultRecommendationPolicy() RecommendationPolicy {
	return RecommendationPolicy{
		GapThreshold:       50,
		CategoryTarget:     75,
		CategoryCount:      3,
		MaxRecommendations: 10,
	}
}
