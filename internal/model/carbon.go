package model

import "time"

// CarbonInput is the request body for saving emission figures.
// Values are tonnes CO2e for the reporting period.
type CarbonInput struct {
	Electricity    float64 `json:"electricity"`
	Transportation float64 `json:"transportation"`
	Refrigerants   float64 `json:"refrigerants"`
	Mobile         float64 `json:"mobile"`
	Combustion     float64 `json:"combustion"`
	Period         string  `json:"period"`
}

// CarbonData is one persisted carbon footprint record.
type CarbonData struct {
	ID                      string    `json:"id" bson:"_id,omitempty"`
	UserID                  string    `json:"userId" bson:"user_id"`
	ElectricityEmissions    float64   `json:"electricityEmissions" bson:"electricity_emissions"`
	TransportationEmissions float64   `json:"transportationEmissions" bson:"transportation_emissions"`
	RefrigerantEmissions    float64   `json:"refrigerantEmissions" bson:"refrigerant_emissions"`
	MobileEmissions         float64   `json:"mobileEmissions" bson:"mobile_emissions"`
	CombustionEmissions     float64   `json:"combustionEmissions" bson:"combustion_emissions"`
	TotalEmissions          float64   `json:"totalEmissions" bson:"total_emissions"`
	Period                  string    `json:"period" bson:"period"`
	CreatedAt               time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt               time.Time `json:"updatedAt" bson:"updated_at"`
}

// ComputeTotal recalculates the total from the five sources.
func (c *CarbonData) ComputeTotal() float64 {
	c.TotalEmissions = c.ElectricityEmissions +
		c.TransportationEmissions +
		c.RefrigerantEmissions +
		c.MobileEmissions +
		c.CombustionEmissions
	return c.TotalEmissions
}

// CarbonAnalysis is the AI (or fallback) narrative for a carbon record.
type CarbonAnalysis struct {
	OverallAssessment  string   `json:"overall_assessment" bson:"overall_assessment"`
	KeyInsights        []string `json:"key_insights" bson:"key_insights"`
	IndustryComparison string   `json:"industry_comparison" bson:"industry_comparison"`
	Recommendations    []string `json:"improvement_recommendations" bson:"improvement_recommendations"`
	PriorityActions    []string `json:"priority_actions" bson:"priority_actions"`
	ReductionPotential string   `json:"estimated_reduction_potential" bson:"estimated_reduction_potential"`
}
