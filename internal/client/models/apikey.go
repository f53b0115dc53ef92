package models

import "github.com/dmitrijs2005/wepub/internal/timex"

// DefaultProvider is the LLM provider assumed when none is given.
const DefaultProvider = "siliconflow"

// APIKey describes a stored provider key. The key itself is never returned.
type APIKey struct {
	ID              int64      `json:"id"`
	Provider        string     `json:"provider"`
	IsValid         bool       `json:"is_valid"`
	LastValidatedAt timex.Time `json:"last_validated_at"`
	CreatedAt       timex.Time `json:"created_at"`
	UpdatedAt       timex.Time `json:"updated_at"`
}

type APIKeyCreate struct {
	Provider string `json:"provider"`
	APIKey   string `json:"api_key"`
}

type APIKeyUpdate struct {
	APIKey string `json:"api_key"`
}
