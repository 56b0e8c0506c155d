package assets

import (
	"context"
	"net/url"
)

// Fetcher downloads a resource. httputil.Client is the production implementation
//
//go:generate mockgen -source fetcher.go -destination mock_fetcher.go -package assets
type Fetcher interface {
	Get(ctx context.Context, u url.URL) ([]byte, error)
}
