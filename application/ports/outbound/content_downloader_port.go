package outbound

import "context"

// ContentDownloaderPort fetches a remote artifact into memory.
type ContentDownloaderPort interface {
	Download(ctx context.Context, url string) ([]byte, error)
}
