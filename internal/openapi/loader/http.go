package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
)

const acceptDocuments = "application/json, application/yaml;q=0.9, */*;q=0.5"

func fetchURL(ctx context.Context, client *http.Client, url string, limit int64) ([]byte, error) {
	if url == "" {
		return nil, errors.New("url is required")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", acceptDocuments)

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	// one extra byte tells an exact fit from an overflow
	return readLimited(func() ([]byte, error) {
		return io.ReadAll(io.LimitReader(resp.Body, limit+1))
	}, limit)
}
