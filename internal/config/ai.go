package config

import "os"

// GeminiModels defines which Gemini models to use for different tasks
type GeminiModels struct {
	// Analysis is for post-submission SRI narrative analysis
	Analysis string `json:"analysis"`

	// SDG is for UN SDG goal recommendations (quality over speed)
	SDG string `json:"sdg"`

	// Carbon is for carbon footprint insights
	Carbon string `json:"carbon"`
}

// AIConfig holds all AI-related configuration
type AIConfig struct {
	APIKey    string       `json:"-"` // Never serialize
	BaseURL   string       `json:"baseUrl"`
	Models    GeminiModels `json:"models"`
	TimeoutMS int          `json:"timeoutMs"`
}

// DefaultAIConfig returns the default AI configuration
func DefaultAIConfig() *AIConfig {
	return &AIConfig{
		APIKey:  os.Getenv("GEMINI_API_KEY"),
		BaseURL: "https://generativelanguage.googleapis.com/v1beta/models",
		Models: GeminiModels{
			Analysis: getEnvOrDefault("GEMINI_MODEL_ANALYSIS", "gemini-2.0-flash-exp"),
			SDG:      getEnvOrDefault("GEMINI_MODEL_SDG", "gemini-2.0-flash"),
			Carbon:   getEnvOrDefault("GEMINI_MODEL_CARBON", "gemini-2.0-flash"),
		},
		TimeoutMS: 10000, // 10 second default timeout
	}
}

// IsEnabled returns true if the AI API is configured
func (c *AIConfig) IsEnabled() bool {
	return c.APIKey != ""
}

// ModelEndpoint returns the full endpoint for a given model
func (c *AIConfig) ModelEndpoint(model string) string {
	return c.BaseURL + "/" + model + ":generateContent"
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
