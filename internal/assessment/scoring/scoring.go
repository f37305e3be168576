// Package scoring turns a set of recorded answers into compliance scores,
// maturity distribution, gaps and ranked recommendations. Analyze is pure:
// same answers and catalog in, same result out, cheap enough to re-run on
// every mutation.
package scoring

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/nis2ready/nis2ready-backend/internal/assessment/catalog"
	"github.com/nis2ready/nis2ready-backend/internal/assessment/domain"
)

// Analyze scores the given answers against the catalog. Answers must be in
// recording order; gap order follows it. Answers referencing questions
// absent from the catalog are skipped and reported in Warnings, never
// counted or raised as errors.
func Analyze(answers []domain.Answer, cat *catalog.Catalog, policy domain.RecommendationPolicy) domain.AnalysisResult {
	result := domain.AnalysisResult{
		CategoryScores:       make([]domain.CategoryScore, 0, len(cat.Categories())),
		MaturityDistribution: emptyDistribution(),
		CriticalGaps:         []domain.Gap{},
		Recommendations:      []domain.Recommendation{},
	}

	type scored struct {
		answer   domain.Answer
		question *domain.Question
	}
	recorded := make([]scored, 0, len(answers))
	for _, a := range answers {
		q, ok := cat.Question(a.QuestionID)
		if !ok {
			result.Warnings = append(result.Warnings, fmt.Sprintf("answer references unknown question %q and was skipped", a.QuestionID))
			continue
		}
		recorded = append(recorded, scored{answer: a, question: q})
	}

	if len(recorded) > 0 {
		total := 0
		for _, r := range recorded {
			total += r.answer.Score
		}
		result.OverallScore = roundHalfUp(float64(total) / float64(len(recorded)))
	}

	if size := len(cat.Questions()); size > 0 {
		result.CompletionRate = roundHalfUp(100 * float64(len(recorded)) / float64(size))
	}

	for _, r := range recorded {
		level := r.answer.MaturityLevel
		if _, ok := result.MaturityDistribution[level]; !ok {
			// Unknown tags come from historical answers recorded before a
			// catalog revision. Counted at the bottom of the scale.
			level = domain.MaturityInitial
		}
		result.MaturityDistribution[level]++
	}

	perCategory := make(map[string][]int)
	for _, r := range recorded {
		perCategory[r.question.Category] = append(perCategory[r.question.Category], r.answer.Score)
	}
	for _, c := range cat.Categories() {
		scores := perCategory[c.ID]
		cs := domain.CategoryScore{CategoryID: c.ID, Name: c.Name}
		if len(scores) > 0 {
			total := 0
			for _, s := range scores {
				total += s
			}
			cs.Score = roundHalfUp(float64(total) / float64(len(scores)))
			cs.Answered = true
		}
		result.CategoryScores = append(result.CategoryScores, cs)
	}

	for _, r := range recorded {
		if r.answer.Score >= policy.GapThreshold {
			continue
		}
		gap := domain.Gap{
			QuestionID:    r.answer.QuestionID,
			Title:         r.question.Title,
			Category:      r.question.Category,
			CurrentScore:  r.answer.Score,
			MaturityLevel: r.answer.MaturityLevel,
			ControlID:     r.question.ControlID,
		}
		if c, ok := cat.Category(r.question.Category); ok {
			gap.Category = c.Name
		}
		result.CriticalGaps = append(result.CriticalGaps, gap)
	}

	result.Recommendations = recommend(result.CategoryScores, result.CriticalGaps, cat, policy)

	return result
}

// recommend ranks the weakest answered categories, then annotates critical
// gaps that map to a registered control. When every answered category meets
// the target, the list stays empty even if isolated gaps exist: a single
// low answer inside an otherwise strong category is visible in CriticalGaps
// but does not by itself drive the remediation plan.
func recommend(categoryScores []domain.CategoryScore, gaps []domain.Gap, cat *catalog.Catalog, policy domain.RecommendationPolicy) []domain.Recommendation {
	weak := make([]domain.CategoryScore, 0, len(categoryScores))
	for _, cs := range categoryScores {
		if cs.Answered && cs.Score < policy.CategoryTarget {
			weak = append(weak, cs)
		}
	}
	if len(weak) == 0 {
		return []domain.Recommendation{}
	}

	// Stable sort keeps category definition order on ties.
	sort.SliceStable(weak, func(i, j int) bool { return weak[i].Score < weak[j].Score })
	if len(weak) > policy.CategoryCount {
		weak = weak[:policy.CategoryCount]
	}

	recommendations := make([]domain.Recommendation, 0, len(weak)+len(gaps))
	for _, cs := range weak {
		priority := domain.PriorityMedium
		if cs.Score < policy.GapThreshold {
			priority = domain.PriorityHigh
		}
		recommendations = append(recommendations, domain.Recommendation{
			Priority:    priority,
			Category:    cs.Name,
			Title:       "Improve " + cs.Name,
			Description: fmt.Sprintf("Current score: %d%%. Focus on implementing comprehensive %s measures.", cs.Score, strings.ToLower(cs.Name)),
			Effort:      "High",
			Timeline:    "3-6 months",
		})
	}

	for _, gap := range gaps {
		control, ok := cat.Control(gap.ControlID)
		if !ok {
			continue
		}
		recommendations = append(recommendations, domain.Recommendation{
			Priority:    domain.PriorityCritical,
			Category:    gap.Category,
			Title:       "Address " + gap.Title,
			Description: "Implement " + control.Title + " to meet NIS2 requirements.",
			Effort:      "Medium",
			Timeline:    "1-3 months",
			ControlRef:  control.ID,
		})
	}

	if len(recommendations) > policy.MaxRecommendations {
		recommendations = recommendations[:policy.MaxRecommendations]
	}
	return recommendations
}

func emptyDistribution() map[domain.MaturityLevel]int {
	dist := make(map[domain.MaturityLevel]int, len(domain.MaturityLevels))
	for _, level := range domain.MaturityLevels {
		dist[level] = 0
	}
	return dist
}

// roundHalfUp rounds to the nearest integer with .5 going up, matching how
// the scores were rounded for existing stored analyses.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
