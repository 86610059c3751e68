package dto

import "github.com/google/uuid"

type FactorScoresResponse struct {
	Salary   float64 `json:"salary"`
	Skills   float64 `json:"skills"`
	Career   float64 `json:"career"`
	Company  float64 `json:"company"`
	Location float64 `json:"location"`
	Growth   float64 `json:"growth"`
}

type RecommendationItem struct {
	JobID              uuid.UUID            `json:"job_id"`
	Title              string               `json:"title"`
	Company            string               `json:"company"`
	SalaryMin          float64              `json:"salary_min"`
	SalaryMax          float64              `json:"salary_max"`
	OverallScore       float64              `json:"overall_score"`
	FactorScores       FactorScoresResponse `json:"factor_scores"`
	SalaryIncreasePct  float64              `json:"salary_increase_pct"`
	SuccessProbability float64              `json:"success_probability"`
	Tier               string               `json:"tier"`
}

type TieredRecommendationsResponse struct {
	Conservative []RecommendationItem `json:"conservative"`
	Optimal      []RecommendationItem `json:"optimal"`
	Stretch      []RecommendationItem `json:"stretch"`
}
