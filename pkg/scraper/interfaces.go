package scraper

import (
	"context"
	"time"

	"igosint/pkg/httpclient"
	"igosint/pkg/instagram"
	"igosint/pkg/presence"
)

// ProfileFetcher retrieves and parses a profile page
type ProfileFetcher interface {
	FetchProfile(ctx context.Context, username string) (*instagram.ProfileRecord, error)
}

// PresenceProber checks a username against third-party sites
type PresenceProber interface {
	Probe(ctx context.Context, username string) *presence.Result
}

// Downloader fetches raw bytes, failing on non-2xx statuses
type Downloader interface {
	GetOK(ctx context.Context, url string, timeout time.Duration) (*httpclient.Response, error)
}
