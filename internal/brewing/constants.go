package brewing

// Die and difficulty for outcome trials
const (
	// BrewDieSides is the uniform die range for a single trial (1..20).
	BrewDieSides = 20
	// DefaultThreshold is the success threshold a trial total must meet.
	DefaultThreshold = 11
	// MaxBatchSize bounds one batched attempt.
	MaxBatchSize = 20
)

// Template fallback formatting
const (
	// PotencyMarkerFormat suffixes a templateless effect name when potency > 1.
	PotencyMarkerFormat = "%s (x%d)"
)

// Error context strings for wrapped errors
const (
	ErrContextFailedToBeginTx        = "failed to begin transaction"
	ErrContextFailedToCommitTx       = "failed to commit transaction"
	ErrContextFailedToConsume        = "failed to consume ingredients"
	ErrContextFailedToCreateArtifact = "failed to create crafted artifact"
)

// Log messages
const (
	LogMsgCommitCraftCalled = "CommitCraft called"
	LogMsgBrewCalled        = "Brew called"
	LogMsgCraftCommitted    = "Craft committed"
	LogMsgBatchFullyFailed  = "Batch fully failed, ingredients still consumed"
)
