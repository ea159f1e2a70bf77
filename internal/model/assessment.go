package model

import "time"

// TrophyLevel is the four-tier classification derived from the total score.
type TrophyLevel string

const (
	TrophyChampion TrophyLevel = "champion" // 75-100
	TrophyLeader   TrophyLevel = "leader"   // 50-74
	TrophyAdvocate TrophyLevel = "advocate" // 25-49
	TrophyNone     TrophyLevel = "none"     // 0-24
)

// CategoryScores holds the normalized 0-100 score for each dimension.
type CategoryScores struct {
	General     float64 `json:"general" bson:"general"`
	Environment float64 `json:"environment" bson:"environment"`
	Social      float64 `json:"social" bson:"social"`
	Governance  float64 `json:"governance" bson:"governance"`
}

// Get returns the score for a category.
func (s CategoryScores) Get(c Category) float64 {
	switch c {
	case CategoryGeneral:
		return s.General
	case CategoryEnvironment:
		return s.Environment
	case CategorySocial:
		return s.Social
	case CategoryGovernance:
		return s.Governance
	}
	return 0
}

// Mean is the unweighted average across the four fixed categories.
// Every category counts equally regardless of how many questions or
// how much weight landed in it.
func (s CategoryScores) Mean() float64 {
	return (s.General + s.Environment + s.Social + s.Governance) / 4
}

// AIAnalysis is the narrative overlay attached to an assessment,
// produced by the AI service or its deterministic fallback.
type AIAnalysis struct {
	Level             string   `json:"level" bson:"level"`
	OverallAssessment string   `json:"overall_assessment,omitempty" bson:"overall_assessment,omitempty"`
	Recommendation    string   `json:"recommendation,omitempty" bson:"recommendation,omitempty"`
	Strengths         []string `json:"strengths" bson:"strengths"`
	Weaknesses        []string `json:"weaknesses" bson:"weaknesses"`
	NextSteps         []string `json:"next_steps,omitempty" bson:"next_steps,omitempty"`
}

// IsZero reports whether no overlay was attached.
func (a AIAnalysis) IsZero() bool {
	return a.Level == "" && len(a.Strengths) == 0 && len(a.Weaknesses) == 0
}

// Assessment is one completed scoring run persisted per user.
type Assessment struct {
	ID             string         `json:"id" bson:"_id,omitempty"`
	UserID         string         `json:"userId" bson:"user_id"`
	TotalScore     float64        `json:"totalScore" bson:"total_score"`
	CategoryScores CategoryScores `json:"categoryScores" bson:"category_scores"`
	Answers        AnswerSet      `json:"answers" bson:"answers"`
	Industry       string         `json:"industry" bson:"industry"`
	CompanySize    string         `json:"companySize" bson:"company_size"`
	Location       string         `json:"location" bson:"location"`
	TrophyLevel    TrophyLevel    `json:"trophyLevel" bson:"trophy_level"`
	Status         string         `json:"status" bson:"status"`
	AIAnalysis     AIAnalysis     `json:"aiAnalysis" bson:"ai_analysis"`
	CreatedAt      time.Time      `json:"createdAt" bson:"created_at"`
	UpdatedAt      time.Time      `json:"updatedAt" bson:"updated_at"`
}

// AssessmentContext is the free-form company context submitted with answers.
type AssessmentContext struct {
	Industry    string `json:"industry"`
	CompanySize string `json:"company_size"`
	Location    string `json:"location"`
}

// SubmitResult is returned from a submission. Failures are values,
// not faults: persistence errors land in Error with Success=false.
type SubmitResult struct {
	Success        bool           `json:"success"`
	AssessmentID   string         `json:"assessmentId,omitempty"`
	TotalScore     float64        `json:"totalScore,omitempty"`
	CategoryScores CategoryScores `json:"categoryScores,omitempty"`
	TrophyLevel    TrophyLevel    `json:"trophyLevel,omitempty"`
	AIAnalysis     AIAnalysis     `json:"aiAnalysis,omitempty"`
	Error          string         `json:"error,omitempty"`
}

// ScoresSummary is the dashboard read projection. When no assessment
// exists it is explicitly zero-valued with HasAssessment=false so
// display code never branches on null.
type ScoresSummary struct {
	Total              float64        `json:"total"`
	Categories         CategoryScores `json:"categories"`
	TrophyLevel        TrophyLevel    `json:"trophyLevel"`
	HasAssessment      bool           `json:"hasAssessment"`
	LastAssessmentDate *time.Time     `json:"lastAssessmentDate,omitempty"`
	AIAnalysis         AIAnalysis     `json:"aiAnalysis"`
}
