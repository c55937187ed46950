package postgres

import (
	"fmt"

	"github.com/google/uuid"
)

// parseCharacterUUID parses a character ID string with a consistent error
// message instead of repeating uuid.Parse + wrapping at every call site.
func parseCharacterUUID(characterID string) (uuid.UUID, error) {
	u, err := uuid.Parse(characterID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid character id: %w", err)
	}
	return u, nil
}
