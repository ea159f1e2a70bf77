// Package sri implements the Sustainability Readiness Index: the fixed
// question catalog, the weighted scoring engine and the trophy ladder.
// Everything here is pure; fallible concerns (persistence, AI) live in
// the service layer.
package sri

import "github.com/dhananjayaDev/trivity/internal/model"

// accumulator collects weighted contributions for one category during
// a single scoring pass.
type accumulator struct {
	weightedScore float64
	totalWeight   float64
}

func (a accumulator) score() float64 {
	if a.totalWeight <= 0 {
		return 0
	}
	return a.weightedScore / a.totalWeight
}

// Result is the outcome of one scoring pass. UnknownIDs lists answer
// keys that matched no catalog question; they contribute nothing and
// are surfaced only as diagnostics.
type Result struct {
	CategoryScores model.CategoryScores
	TotalScore     float64
	TrophyLevel    model.TrophyLevel
	UnknownIDs     []string
}

// Score converts an answer set into per-category and total scores over
// the given catalog.
//
// Each answered question contributes optionScore*weight to its
// category; a category's score is the weighted average of its answered
// questions, or 0 when nothing in it was answered. The total is the
// unweighted mean across the four fixed categories, so a category with
// one question counts the same as one with ten.
func Score(answers model.AnswerSet, catalog []model.Question) Result {
	index := make(map[string]model.Question, len(catalog))
	for _, q := range catalog {
		index[q.ID] = q
	}

	acc := map[model.Category]*accumulator{
		model.CategoryGeneral:     {},
		model.CategoryEnvironment: {},
		model.CategorySocial:      {},
		model.CategoryGovernance:  {},
	}

	var unknown []string
	for id, value := range answers {
		q, ok := index[id]
		if !ok {
			unknown = append(unknown, id)
			continue
		}
		a := acc[q.Category]
		a.weightedScore += resolve(q, value) * q.Weight
		a.totalWeight += q.Weight
	}

	scores := model.CategoryScores{
		General:     acc[model.CategoryGeneral].score(),
		Environment: acc[model.CategoryEnvironment].score(),
		Social:      acc[model.CategorySocial].score(),
		Governance:  acc[model.CategoryGovernance].score(),
	}
	total := scores.Mean()

	return Result{
		CategoryScores: scores,
		TotalScore:     total,
		TrophyLevel:    TrophyFor(total),
		UnknownIDs:     unknown,
	}
}

// resolve maps a submitted value to a score. Option keys resolve by
// exact match against the question's options; an unmatched key scores
// 0 (no credit, not an error). Numeric answers are used directly,
// clamped to the option score domain.
func resolve(q model.Question, v model.AnswerValue) float64 {
	if v.Numeric {
		switch {
		case v.Score < 0:
			return 0
		case v.Score > 100:
			return 100
		}
		return v.Score
	}
	for _, opt := range q.Options {
		if opt.Value == v.Key {
			return opt.Score
		}
	}
	return 0
}

// TrophyFor classifies a total score. Boundaries are closed at the
// bottom of each band: 75.0 is champion, 50.0 is leader, 25.0 is
// advocate.
func TrophyFor(total float64) model.TrophyLevel {
	switch {
	case total >= 75:
		return model.TrophyChampion
	case total >= 50:
		return model.TrophyLeader
	case total >= 25:
		return model.TrophyAdvocate
	}
	return model.TrophyNone
}
