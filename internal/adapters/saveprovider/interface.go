package saveprovider

import (
	"context"

	"github.com/Amund211/savewatch/internal/domain"
)

type SaveProvider interface {
	// Raises domain.ErrSaveNotFound if there is no save yet
	//
	// Raises domain.ErrMalformedSave if the save could be read, but is not a valid save document
	//
	// Raises domain.ErrTemporarilyUnavailable if the provider implementation receives an error believed to be intermittent. The call may be retried later.
	GetSave(ctx context.Context) (*domain.GameState, error)
}
