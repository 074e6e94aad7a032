package diagnostics

import "time"

type Response struct {
	Success     bool      `json:"success"`
	HasAPIKey   bool      `json:"hasApiKey"`
	APIKeyStart string    `json:"apiKeyStart"`
	Provider    string    `json:"provider"`
	Environment string    `json:"environment"`
	Timestamp   time.Time `json:"timestamp"`
}
