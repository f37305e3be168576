package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nis2ready/nis2ready-backend/internal/assessment/catalog"
	"github.com/nis2ready/nis2ready-backend/internal/assessment/domain"
)

func answer(questionID string, score int, level domain.MaturityLevel) domain.Answer {
	return domain.Answer{
		QuestionID:    questionID,
		OptionValue:   "partially-compliant",
		Score:         score,
		MaturityLevel: level,
		AnsweredAt:    time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestAnalyze_NoAnswers(t *testing.T) {
	result := Analyze(nil, catalog.Load(), domain.DefaultRecommendationPolicy())

	assert.Equal(t, 0, result.OverallScore)
	assert.Equal(t, 0, result.CompletionRate)
	assert.Empty(t, result.CriticalGaps)
	assert.Empty(t, result.Recommendations)
	assert.Empty(t, result.Warnings)

	require.Len(t, result.CategoryScores, 9)
	for _, cs := range result.CategoryScores {
		assert.False(t, cs.Answered, cs.CategoryID)
		assert.Equal(t, 0, cs.Score, cs.CategoryID)
	}

	require.Len(t, result.MaturityDistribution, 4)
	for _, level := range domain.MaturityLevels {
		assert.Equal(t, 0, result.MaturityDistribution[level])
	}
}

func TestAnalyze_CategoryAverageAndGaps(t *testing.T) {
	cat := catalog.Load()
	answers := []domain.Answer{
		answer("risk-mgmt-policies", 100, domain.MaturityOptimized),
		answer("risk-assessment-process", 50, domain.MaturityDefined),
		answer("compliance-monitoring", 0, domain.MaturityInitial),
	}

	result := Analyze(answers, cat, domain.DefaultRecommendationPolicy())

	assert.Equal(t, 50, result.OverallScore)

	riskScore := categoryScore(t, result, "risk-management")
	assert.True(t, riskScore.Answered)
	assert.Equal(t, 75, riskScore.Score)

	require.Len(t, result.CriticalGaps, 1)
	gap := result.CriticalGaps[0]
	assert.Equal(t, "compliance-monitoring", gap.QuestionID)
	assert.Equal(t, 0, gap.CurrentScore)
	assert.Equal(t, "Compliance", gap.Category)
	assert.Equal(t, "NIS2-22.1", gap.ControlID)
}

func TestAnalyze_SameCategoryAverage(t *testing.T) {
	// Three scores in one category average to the rounded mean; only the
	// sub-threshold answer becomes a gap.
	cat := catalog.Load()
	answers := []domain.Answer{
		answer("incident-response-plan", 100, domain.MaturityOptimized),
		answer("business-continuity", 50, domain.MaturityDefined),
		answer("incident-classification", 0, domain.MaturityInitial),
	}

	result := Analyze(answers, cat, domain.DefaultRecommendationPolicy())

	incident := categoryScore(t, result, "incident-response")
	assert.Equal(t, 75, incident.Score)

	require.Len(t, result.CriticalGaps, 1)
	assert.Equal(t, "incident-classification", result.CriticalGaps[0].QuestionID)
}

func TestAnalyze_OverallIgnoresCategoryDistribution(t *testing.T) {
	cat := catalog.Load()
	policy := domain.DefaultRecommendationPolicy()

	concentrated := []domain.Answer{
		answer("risk-mgmt-policies", 80, domain.MaturityManaged),
		answer("risk-assessment-process", 60, domain.MaturityDefined),
	}
	spread := []domain.Answer{
		answer("risk-mgmt-policies", 80, domain.MaturityManaged),
		answer("cryptographic-controls", 60, domain.MaturityDefined),
	}

	assert.Equal(t, 70, Analyze(concentrated, cat, policy).OverallScore)
	assert.Equal(t, 70, Analyze(spread, cat, policy).OverallScore)
}

func TestAnalyze_RoundsHalfUp(t *testing.T) {
	cat := catalog.Load()
	answers := []domain.Answer{
		answer("risk-mgmt-policies", 100, domain.MaturityOptimized),
		answer("risk-assessment-process", 75, domain.MaturityManaged),
	}

	result := Analyze(answers, cat, domain.DefaultRecommendationPolicy())

	// mean 87.5 rounds up
	assert.Equal(t, 88, result.OverallScore)
}

func TestAnalyze_CompletionRate(t *testing.T) {
	cat := catalog.Load()
	require.Len(t, cat.Questions(), 15)

	answers := []domain.Answer{
		answer("risk-mgmt-policies", 100, domain.MaturityOptimized),
		answer("incident-response-plan", 100, domain.MaturityOptimized),
		answer("network-security", 100, domain.MaturityOptimized),
	}

	result := Analyze(answers, cat, domain.DefaultRecommendationPolicy())

	// 3 of 15 = 20%
	assert.Equal(t, 20, result.CompletionRate)
}

func TestAnalyze_MaturityDistribution(t *testing.T) {
	cat := catalog.Load()
	answers := []domain.Answer{
		answer("risk-mgmt-policies", 100, domain.MaturityOptimized),
		answer("risk-assessment-process", 75, domain.MaturityManaged),
		answer("incident-response-plan", 75, domain.MaturityManaged),
		answer("network-security", 0, domain.MaturityInitial),
		answer("access-control", 50, "Legacy"),
	}

	result := Analyze(answers, cat, domain.DefaultRecommendationPolicy())

	require.Len(t, result.MaturityDistribution, 4)
	assert.Equal(t, 1, result.MaturityDistribution[domain.MaturityOptimized])
	assert.Equal(t, 2, result.MaturityDistribution[domain.MaturityManaged])
	assert.Equal(t, 0, result.MaturityDistribution[domain.MaturityDefined])
	// Unrecognized tags from old catalog revisions count as Initial.
	assert.Equal(t, 2, result.MaturityDistribution[domain.MaturityInitial])
}

func TestAnalyze_OrphanedAnswersAreSkipped(t *testing.T) {
	cat := catalog.Load()
	answers := []domain.Answer{
		answer("risk-mgmt-policies", 100, domain.MaturityOptimized),
		answer("retired-question", 0, domain.MaturityInitial),
	}

	result := Analyze(answers, cat, domain.DefaultRecommendationPolicy())

	assert.Equal(t, 100, result.OverallScore)
	assert.Equal(t, 7, result.CompletionRate) // 1 of 15
	assert.Empty(t, result.CriticalGaps)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "retired-question")
}

func TestAnalyze_RecommendationRanking(t *testing.T) {
	cat := catalog.Load()
	answers := []domain.Answer{
		answer("incident-response-plan", 60, domain.MaturityDefined),
		answer("risk-mgmt-policies", 30, domain.MaturityInitial),
		answer("supplier-security-assessment", 40, domain.MaturityInitial),
		answer("secure-development", 70, domain.MaturityDefined),
	}

	result := Analyze(answers, cat, domain.DefaultRecommendationPolicy())

	require.Len(t, result.CriticalGaps, 2)
	assert.Equal(t, "risk-mgmt-policies", result.CriticalGaps[0].QuestionID)
	assert.Equal(t, "supplier-security-assessment", result.CriticalGaps[1].QuestionID)

	// Three lowest categories first, ascending by score, then one Critical
	// entry per gap with a registered control.
	require.Len(t, result.Recommendations, 5)

	assert.Equal(t, domain.PriorityHigh, result.Recommendations[0].Priority)
	assert.Equal(t, "Improve Risk Management", result.Recommendations[0].Title)
	assert.Contains(t, result.Recommendations[0].Description, "Current score: 30%")
	assert.Contains(t, result.Recommendations[0].Description, "risk management")

	assert.Equal(t, domain.PriorityHigh, result.Recommendations[1].Priority)
	assert.Equal(t, "Improve Supply Chain Security", result.Recommendations[1].Title)

	assert.Equal(t, domain.PriorityMedium, result.Recommendations[2].Priority)
	assert.Equal(t, "Improve Incident Response", result.Recommendations[2].Title)

	assert.Equal(t, domain.PriorityCritical, result.Recommendations[3].Priority)
	assert.Equal(t, "Address Cybersecurity Risk Analysis Policies", result.Recommendations[3].Title)
	assert.Equal(t, "NIS2-20.1", result.Recommendations[3].ControlRef)
	assert.Equal(t, "Implement Cybersecurity Policies to meet NIS2 requirements.", result.Recommendations[3].Description)

	assert.Equal(t, domain.PriorityCritical, result.Recommendations[4].Priority)
	assert.Equal(t, "NIS2-20.3", result.Recommendations[4].ControlRef)
}

func TestAnalyze_CategoryTieBreaksByDefinitionOrder(t *testing.T) {
	cat := catalog.Load()
	answers := []domain.Answer{
		answer("cryptographic-controls", 60, domain.MaturityDefined),
		answer("risk-mgmt-policies", 60, domain.MaturityDefined),
	}

	result := Analyze(answers, cat, domain.DefaultRecommendationPolicy())

	require.Len(t, result.Recommendations, 2)
	assert.Equal(t, "Improve Risk Management", result.Recommendations[0].Title)
	assert.Equal(t, "Improve Cryptography", result.Recommendations[1].Title)
}

func TestAnalyze_GapInStrongCategoryYieldsNoRecommendations(t *testing.T) {
	// An isolated low answer inside a category that still meets the target
	// surfaces as a gap but must not trigger remediation planning.
	cat := catalog.Load()
	answers := []domain.Answer{
		answer("risk-mgmt-policies", 100, domain.MaturityOptimized),
		answer("risk-assessment-process", 49, domain.MaturityInitial),
		answer("incident-response-plan", 90, domain.MaturityOptimized),
	}

	result := Analyze(answers, cat, domain.DefaultRecommendationPolicy())

	riskScore := categoryScore(t, result, "risk-management")
	assert.Equal(t, 75, riskScore.Score) // 74.5 rounds up to the target

	require.Len(t, result.CriticalGaps, 1)
	assert.Equal(t, "risk-assessment-process", result.CriticalGaps[0].QuestionID)
	assert.Empty(t, result.Recommendations)
}

func TestAnalyze_UnansweredCategoriesAreNotRanked(t *testing.T) {
	cat := catalog.Load()
	answers := []domain.Answer{
		answer("risk-mgmt-policies", 60, domain.MaturityDefined),
	}

	result := Analyze(answers, cat, domain.DefaultRecommendationPolicy())

	// Eight categories have no answers; only the one answered category
	// below target is recommended.
	require.Len(t, result.Recommendations, 1)
	assert.Equal(t, "Improve Risk Management", result.Recommendations[0].Title)
}

func TestAnalyze_RecommendationsCapped(t *testing.T) {
	cat := catalog.Load()
	answers := make([]domain.Answer, 0, len(cat.Questions()))
	for _, q := range cat.Questions() {
		answers = append(answers, answer(q.ID, 0, domain.MaturityInitial))
	}

	result := Analyze(answers, cat, domain.DefaultRecommendationPolicy())

	// 3 category entries plus 15 gap entries, truncated.
	assert.Len(t, result.CriticalGaps, 15)
	assert.Len(t, result.Recommendations, 10)
}

func TestAnalyze_PolicyIsConfigurable(t *testing.T) {
	cat := catalog.Load()
	answers := make([]domain.Answer, 0, len(cat.Questions()))
	for _, q := range cat.Questions() {
		answers = append(answers, answer(q.ID, 0, domain.MaturityInitial))
	}

	policy := domain.RecommendationPolicy{
		GapThreshold:       50,
		CategoryTarget:     75,
		CategoryCount:      2,
		MaxRecommendations: 4,
	}

	result := Analyze(answers, cat, policy)

	require.Len(t, result.Recommendations, 4)
	assert.Equal(t, domain.PriorityHigh, result.Recommendations[0].Priority)
	assert.Equal(t, domain.PriorityHigh, result.Recommendations[1].Priority)
	assert.Equal(t, domain.PriorityCritical, result.Recommendations[2].Priority)
	assert.Equal(t, domain.PriorityCritical, result.Recommendations[3].Priority)
}

func TestAnalyze_Deterministic(t *testing.T) {
	cat := catalog.Load()
	policy := domain.DefaultRecommendationPolicy()
	answers := []domain.Answer{
		answer("risk-mgmt-policies", 30, domain.MaturityInitial),
		answer("incident-response-plan", 60, domain.MaturityDefined),
		answer("cryptographic-controls", 100, domain.MaturityOptimized),
	}

	first := Analyze(answers, cat, policy)
	second := Analyze(answers, cat, policy)

	assert.Equal(t, first, second)
}

func categoryScore(t *testing.T, result domain.AnalysisResult, categoryID string) domain.CategoryScore {
	t.Helper()
	for _, cs := range result.CategoryScores {
		if cs.CategoryID == categoryID {
			return cs
		}
	}
	t.Fatalf("category %s not present in result", categoryID)
	return domain.CategoryScore{}
}
