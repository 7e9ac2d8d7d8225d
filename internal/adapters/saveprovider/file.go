package saveprovider

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/Amund211/savewatch/internal/domain"
)

type FileSaveProvider struct {
	path     string
	readFile func(name string) ([]byte, error)
}

func NewFileSaveProvider(path string) *FileSaveProvider {
	return &FileSaveProvider{
		path:     path,
		readFile: os.ReadFile,
	}
}

func (p *FileSaveProvider) GetSave(ctx context.Context) (*domain.GameState, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context done before reading save: %w", err)
	}

	data, err := p.readFile(p.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s does not exist", domain.ErrSaveNotFound, p.path)
	} else if err != nil {
		return nil, fmt.Errorf("failed to read save file: %w", err)
	}

	state, err := ParseGameState(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", p.path, err)
	}

	return state, nil
}

func (p *FileSaveProvider) String() string {
	return fmt.Sprintf("file:%s", p.path)
}
