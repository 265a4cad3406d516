package dataset

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
)

type Fetcher struct {
	Client         *http.Client
	UserAgent      string
	MaxElapsedTime time.Duration
	MaxRetries     uint64
}

func NewFetcher() *Fetcher {
	return &Fetcher{
		Client:         &http.Client{Timeout: 5 * time.Minute},
		UserAgent:      "stopfinder",
		MaxElapsedTime: 2 * time.Minute,
		MaxRetries:     5,
	}
}

// Fetch returns the raw bytes of a dataset source, which is either a URL or a
// local file path. HTTP requests are retried with exponential backoff on
// transport errors, 429 and 5xx responses.
func (f *Fetcher) Fetch(ctx context.Context, source string) ([]byte, error) {
	if !isValidUrl(source) {
		return os.ReadFile(source)
	}

	retryBackoff := backoff.NewExponentialBackOff()
	retryBackoff.MaxElapsedTime = f.MaxElapsedTime

	var body []byte
	operation := func() error {
		var err error
		body, err = f.get(ctx, source)
		return err
	}

	notify := func(err error, wait time.Duration) {
		log.Warn().Err(err).Str("source", source).Str("wait", wait.String()).Msg("Retrying dataset download")
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(retryBackoff, f.MaxRetries), ctx)
	if err := backoff.RetryNotify(operation, policy, notify); err != nil {
		return nil, err
	}

	return body, nil
}

func (f *Fetcher) get(ctx context.Context, source string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, backoff.Permanent(err)
	}
	req.Header.Set("User-Agent", f.UserAgent)

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, backoff.Permanent(ctx.Err())
		}
		return nil, fmt.Errorf("download %s: %w", source, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
		return nil, fmt.Errorf("download %s: HTTP %d", source, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, backoff.Permanent(fmt.Errorf("download %s: HTTP %d", source, resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", source, err)
	}

	return body, nil
}

func isValidUrl(toTest string) bool {
	_, err := url.ParseRequestURI(toTest)
	if err != nil {
		return false
	}

	u, err := url.Parse(toTest)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return false
	}

	return true
}
