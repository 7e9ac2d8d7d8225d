package saveprovider

import (
	"encoding/json"
	"fmt"

	"github.com/Amund211/savewatch/internal/domain"
)

// ParseGameState parses a save document
//
// Unknown fields are ignored and missing fields are left nil.
func ParseGameState(data []byte) (*domain.GameState, error) {
	var state *domain.GameState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("%w: failed to parse save: %w", domain.ErrMalformedSave, err)
	}

	if state == nil {
		// The game has not written any data yet
		return nil, fmt.Errorf("%w: save is null", domain.ErrSaveNotFound)
	}

	return state, nil
}
