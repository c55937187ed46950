package domain

import "time"

// CraftedArtifact is one row of the crafted-artifact ledger: the output of a
// committed brew with at least one successful trial.
type CraftedArtifact struct {
	ID          string            `json:"artifact_id"`
	CharacterID string            `json:"character_id"`
	Category    Category          `json:"category"`
	EffectNames []string          `json:"effect_names"`
	Description string            `json:"description"`
	Choices     map[string]string `json:"choices,omitempty"`
	Quantity    int               `json:"quantity"`
	CreatedAt   time.Time         `json:"created_at,omitempty"`
}
