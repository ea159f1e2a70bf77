package sri

import "github.com/dhananjayaDev/trivity/internal/model"

func yesNo() []model.QuestionOption {
	return []model.QuestionOption{
		{Value: "yes", Score: 100, Text: "Yes"},
		{Value: "no", Score: 0, Text: "No"},
	}
}

// Catalog returns the fixed SRI questionnaire in section order:
// general, environment, social, governance.
func Catalog() []model.Question {
	return []model.Question{
		// General (4 questions)
		{ID: "general_1", Text: "Is Sustainability important in your company?", Category: model.CategoryGeneral, Weight: 1.5, Options: yesNo(), Required: true},
		{ID: "general_2", Text: "Does your company have a team to look at Sustainability aspects?", Category: model.CategoryGeneral, Weight: 1.0, Options: yesNo(), Required: true},
		{ID: "general_3", Text: "Do you think Sustainability is crucial for every company?", Category: model.CategoryGeneral, Weight: 1.0, Options: yesNo(), Required: true},
		{ID: "general_4", Text: "Does your company have a clear understanding of what ESG means?", Category: model.CategoryGeneral, Weight: 1.0, Options: yesNo(), Required: true},

		// Environment (5 questions)
		{ID: "environment_1", Text: "Is your company aware of its carbon footprint?", Category: model.CategoryEnvironment, Weight: 1.5, Options: yesNo(), Required: true},
		{ID: "environment_2", Text: "Are there steps planned to reduce carbon footprint?", Category: model.CategoryEnvironment, Weight: 1.5, Options: yesNo(), Required: true},
		{ID: "environment_3", Text: "Is your company aware of its energy usage?", Category: model.CategoryEnvironment, Weight: 1.0, Options: yesNo(), Required: true},
		{ID: "environment_4", Text: "Is your company aware of its impact on air and water quality?", Category: model.CategoryEnvironment, Weight: 1.0, Options: yesNo(), Required: true},
		{ID: "environment_5", Text: "Are you aware of the natural resources used by your company?", Category: model.CategoryEnvironment, Weight: 1.0, Options: yesNo(), Required: true},

		// Social (8 questions)
		{ID: "social_1", Text: "Does your company have equal employment opportunities for both genders?", Category: model.CategorySocial, Weight: 1.0, Options: yesNo(), Required: true},
		{ID: "social_2", Text: "Are you satisfied with the company's culture?", Category: model.CategorySocial, Weight: 1.0, Options: yesNo(), Required: true},
		{ID: "social_3", Text: "Is your company aware of the importance of mental wellbeing?", Category: model.CategorySocial, Weight: 1.0, Options: yesNo(), Required: true},
		{ID: "social_4", Text: "Are you satisfied with the company's working environment?", Category: model.CategorySocial, Weight: 1.0, Options: yesNo(), Required: true},
		{ID: "social_5", Text: "Does your company provide equal career advancement opportunities?", Category: model.CategorySocial, Weight: 1.0, Options: yesNo(), Required: true},
		{ID: "social_6", Text: "Do you feel safe working in your company?", Category: model.CategorySocial, Weight: 1.0, Options: yesNo(), Required: true},
		{ID: "social_7", Text: "Are the company policies fair to employees?", Category: model.CategorySocial, Weight: 1.0, Options: yesNo(), Required: true},
		{ID: "social_8", Text: "Do company policies keep up with the times?", Category: model.CategorySocial, Weight: 1.0, Options: yesNo(), Required: true},

		// Governance (10 questions)
		{ID: "governance_1", Text: "Can you trust management to handle difficult situations fairly?", Category: model.CategoryGovernance, Weight: 1.0, Options: yesNo(), Required: true},
		{ID: "governance_2", Text: "Does your company have a balanced board composition?", Category: model.CategoryGovernance, Weight: 1.0, Options: yesNo(), Required: true},
		{ID: "governance_3", Text: "Is management aware of the importance of corporate culture?", Category: model.CategoryGovernance, Weight: 1.0, Options: yesNo(), Required: true},
		{ID: "governance_4", Text: "Is management aware of any unethical behavior?", Category: model.CategoryGovernance, Weight: 1.0, Options: yesNo(), Required: true},
		{ID: "governance_5", Text: "Does your company have a board of directors to hold CEO accountable?", Category: model.CategoryGovernance, Weight: 1.0, Options: yesNo(), Required: true},
		{ID: "governance_6", Text: "Does your company have PDPA policies?", Category: model.CategoryGovernance, Weight: 1.0, Options: yesNo(), Required: true},
		{ID: "governance_7", Text: "Does your company have a team to manage data protection?", Category: model.CategoryGovernance, Weight: 1.0, Options: yesNo(), Required: true},
		{ID: "governance_8", Text: "Does your company prioritize diversity and inclusivity?", Category: model.CategoryGovernance, Weight: 1.0, Options: yesNo(), Required: true},
		{ID: "governance_9", Text: "Can you trust management to make ethical decisions?", Category: model.CategoryGovernance, Weight: 1.0, Options: yesNo(), Required: true},
		{ID: "governance_10", Text: "Are there policies to prevent corruption and bribery?", Category: model.CategoryGovernance, Weight: 1.0, Options: yesNo(), Required: true},
	}
}

// Questions returns the catalog, optionally filtered to one category.
// Order is preserved in both cases.
func Questions(category model.Category) []model.Question {
	all := Catalog()
	if category == "" {
		return all
	}
	filtered := make([]model.Question, 0, len(all))
	for _, q := range all {
		if q.Category == category {
			filtered = append(filtered, q)
		}
	}
	return filtered
}
