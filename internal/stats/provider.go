package stats

import (
	"context"

	"github.com/mcoot/leaguebot-go/internal/model"
)

// Provider fetches external game profiles by player tag.
//
// Callers in the free-agent path treat any failure as "no data"; only the
// verification flow distinguishes model.ErrProfileNotFound from transport
// errors.
type Provider interface {
	FetchProfile(ctx context.Context, tag string) (*model.PlayerStats, error)
}
