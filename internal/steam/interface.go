package steam

import "context"

// ProfileClient resolves steam ids to display names in bulk. The pipeline
// only ever needs persona names, so the interface stays narrow.
type ProfileClient interface {
	GetPlayerSummaries(ctx context.Context, steamIDs []uint64) (map[uint64]string, error)
}
