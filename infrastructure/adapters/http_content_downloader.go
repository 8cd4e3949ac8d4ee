package adapters

import (
	"context"
	"net/http"

	"github.com/ammar-bay/remotion-othman-backend/application/ports/outbound"
)

type httpContentDownloader struct {
	ContentFetcher
	logger outbound.LoggerPort
}

func NewHTTPContentDownloader(contentFetcher ContentFetcher, logger outbound.LoggerPort) outbound.ContentDownloaderPort {
	return &httpContentDownloader{
		ContentFetcher: contentFetcher,
		logger:         logger,
	}
}

func (d *httpContentDownloader) Download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		d.logger.Error(err, "Failed to create the artifact download request")
		return nil, err
	}

	return d.FetchContent(req)
}
