package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/miniproductivity/backend/internal/dto"
)

// ErrNoQuote is returned when the upstream answers with an empty or
// non-array body: anything parseable that just holds no quote.
var ErrNoQuote = errors.New("no quote found")

// QuoteService proxies a third-party random-quote API. A single failure
// surfaces immediately: no retries, no caching.
type QuoteService struct {
	httpClient *http.Client
	apiURL     string
}

func NewQuoteService(apiURL string, timeout time.Duration) *QuoteService {
	return &QuoteService{
		httpClient: &http.Client{Timeout: timeout},
		apiURL:     apiURL,
	}
}

// upstream answers a JSON array of {"q": text, "a": author}.
type upstreamQuote struct {
	Q string `json:"q"`
	A string `json:"a"`
}

// Random fetches one quote and reshapes it, defaulting the author to
// "Unknown" when the upstream omits it.
func (s *QuoteService) Random(ctx context.Context) (*dto.QuoteResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build quote request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("quote upstream unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("quote upstream returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read quote response: %w", err)
	}

	var quotes []upstreamQuote
	if err := json.Unmarshal(body, &quotes); err != nil {
		// Valid JSON that isn't an array of quotes counts as "no quote",
		// the same as an empty array; only a broken body is an error.
		if json.Valid(body) {
			return nil, ErrNoQuote
		}
		return nil, fmt.Errorf("failed to decode quote response: %w", err)
	}

	if len(quotes) == 0 {
		return nil, ErrNoQuote
	}

	author := quotes[0].A
	if author == "" {
		author = "Unknown"
	}
	return &dto.QuoteResponse{Quote: quotes[0].Q, Author: author}, nil
}
