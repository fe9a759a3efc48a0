package dathost

import "context"

// GameServerClient defines the DatHost game-server operations the application
// consumes. This decouples the pipeline and the relay from the concrete HTTP
// client so tests can substitute a mock.
type GameServerClient interface {
	// GetFile downloads a named file (typically the recorded demo) from a
	// game server instance.
	GetFile(ctx context.Context, serverID, path string) ([]byte, error)
	// SendConsoleCommand runs one console line on a game server instance.
	SendConsoleCommand(ctx context.Context, serverID, line string) error
	// StopServer stops a game server instance.
	StopServer(ctx context.Context, serverID string) error
}
