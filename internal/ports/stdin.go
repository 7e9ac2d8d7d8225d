package ports

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/Amund211/savewatch/internal/logging"
)

// ListenForRefreshKey triggers a refresh for every line of input that is "r" or "R"
//
// Returns nil when input ends or ctx is cancelled. The reader is not closed,
// so a read blocked on it may outlive the call.
func ListenForRefreshKey(ctx context.Context, input io.Reader, triggerRefresh TriggerRefresh) error {
	logger := logging.FromContext(ctx)
	lines := make(chan string)
	scanErr := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(input)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					if err != nil {
						return fmt.Errorf("failed to read input: %w", err)
					}
				default:
				}
				logger.InfoContext(ctx, "Input closed, no longer listening for refresh key")
				return nil
			}

			if !strings.EqualFold(strings.TrimSpace(line), "r") {
				continue
			}

			queued := triggerRefresh()
			logger.InfoContext(ctx, "Refresh key pressed", "queued", queued)
		}
	}
}
