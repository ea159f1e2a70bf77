package model

import "time"

// SDGGoal is one recommended UN Sustainable Development Goal.
type SDGGoal struct {
	Number         int      `json:"number" bson:"number"`
	Title          string   `json:"title" bson:"title"`
	Description    string   `json:"description" bson:"description"`
	Priority       string   `json:"priority" bson:"priority"`
	RelevanceScore int      `json:"relevance_score" bson:"relevance_score"`
	Opportunities  []string `json:"opportunities" bson:"opportunities"`
	Timeline       string   `json:"implementation_timeline" bson:"implementation_timeline"`
	ExpectedImpact string   `json:"expected_impact" bson:"expected_impact"`
}

// SDGRecommendation is the persisted primary/secondary goal pair for a user.
type SDGRecommendation struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	UserID      string    `json:"userId" bson:"user_id"`
	Goals       []SDGGoal `json:"goals" bson:"goals"`
	GeneratedAt time.Time `json:"generatedAt" bson:"generated_at"`
}
