package safebrowsing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/user/safebrowse-service/internal/entity"
	"github.com/user/safebrowse-service/pkg/metrics"
	"go.uber.org/zap"
)

const (
	defaultEndpoint = "https://safebrowsing.googleapis.com/v4/threatMatches:find"
	requestTimeout  = 15 * time.Second
	maxAttempts     = 6
	initialBackoff  = 1 * time.Second

	clientID      = "safebrowse-checker"
	clientVersion = "1.0"
)

var (
	// ErrRetriesExhausted is returned when every attempt hit a transient failure.
	ErrRetriesExhausted = errors.New("threat check retries exhausted")
)

// findRequest is the threatMatches:find request body.
type findRequest struct {
	Client     clientInfo `json:"client"`
	ThreatInfo threatInfo `json:"threatInfo"`
}

type clientInfo struct {
	ClientID      string `json:"clientId"`
	ClientVersion string `json:"clientVersion"`
}

type threatInfo struct {
	ThreatTypes      []entity.ThreatType `json:"threatTypes"`
	PlatformTypes    []string            `json:"platformTypes"`
	ThreatEntryTypes []string            `json:"threatEntryTypes"`
	ThreatEntries    []threatEntry       `json:"threatEntries"`
}

type threatEntry struct {
	URL string `json:"url"`
}

// findResponse is the threatMatches:find response body. The matches
// key is absent when nothing was flagged.
type findResponse struct {
	Matches []matchEntry `json:"matches"`
}

type matchEntry struct {
	Threat     threatEntry       `json:"threat"`
	ThreatType entity.ThreatType `json:"threatType"`
}

// ThreatCheckerRepoImpl provides a concrete implementation for the
// ThreatCheckerRepository interface using the Safe Browsing v4 API.
type ThreatCheckerRepoImpl struct {
	client   *resty.Client
	apiKey   string
	endpoint string
	logger   *zap.Logger
	sleep    func(time.Duration)
}

// NewThreatCheckerRepo creates a new instance of ThreatCheckerRepoImpl.
func NewThreatCheckerRepo(apiKey string, logger *zap.Logger) *ThreatCheckerRepoImpl {
	return &ThreatCheckerRepoImpl{
		client:   resty.New().SetTimeout(requestTimeout),
		apiKey:   apiKey,
		endpoint: defaultEndpoint,
		logger:   logger,
		sleep:    time.Sleep,
	}
}

// FindThreats checks one batch of URLs against the configured threat types.
// Transient failures (transport errors and status 429/500/502/503/504) are
// retried with doubling backoff, up to 6 attempts total. Any other non-200
// status aborts immediately. The error marks the batch check incomplete.
func (c *ThreatCheckerRepoImpl) FindThreats(ctx context.Context, urls []string) ([]entity.ThreatMatch, error) {
	body := c.buildRequest(urls)

	backoff := initialBackoff
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		resp, err := c.client.R().
			SetContext(ctx).
			SetQueryParam("key", c.apiKey).
			SetHeader("Content-Type", "application/json").
			SetBody(body).
			Post(c.endpoint)
		if err != nil {
			c.logger.Error("Request failed",
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
			metrics.CheckRetriesTotal.Inc()
			c.sleep(backoff)
			backoff *= 2
			continue
		}

		status := resp.StatusCode()
		switch {
		case status == 200:
			matches, err := parseMatches(resp.Body())
			if err != nil {
				c.logger.Error("Invalid JSON in threat-matching response", zap.Error(err))
				return nil, err
			}
			c.logger.Info("Threat check completed",
				zap.Int("urls", len(urls)),
				zap.Int("matches", len(matches)),
				zap.Int("attempt", attempt),
			)
			return matches, nil
		case status == 429 || status == 500 || status == 502 || status == 503 || status == 504:
			c.logger.Warn("Rate/server error, backing off",
				zap.Int("status", status),
				zap.Duration("backoff", backoff),
				zap.Int("attempt", attempt),
			)
			metrics.CheckRetriesTotal.Inc()
			c.sleep(backoff)
			backoff *= 2
		default:
			c.logger.Error("Unexpected status from threat-matching API",
				zap.Int("status", status),
				zap.String("body", snippet(resp.Body(), 300)),
			)
			return nil, fmt.Errorf("unexpected status %d from threat-matching API", status)
		}
	}

	c.logger.Error("Exceeded retries for threat check", zap.Int("urls", len(urls)))
	return nil, ErrRetriesExhausted
}

func (c *ThreatCheckerRepoImpl) buildRequest(urls []string) findRequest {
	entries := make([]threatEntry, 0, len(urls))
	for _, u := range urls {
		entries = append(entries, threatEntry{URL: u})
	}
	return findRequest{
		Client: clientInfo{ClientID: clientID, ClientVersion: clientVersion},
		ThreatInfo: threatInfo{
			ThreatTypes:      entity.CheckedThreatTypes,
			PlatformTypes:    []string{"ANY_PLATFORM"},
			ThreatEntryTypes: []string{"URL"},
			ThreatEntries:    entries,
		},
	}
}

func parseMatches(body []byte) ([]entity.ThreatMatch, error) {
	var parsed findResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, err
	}
	matches := make([]entity.ThreatMatch, 0, len(parsed.Matches))
	for _, m := range parsed.Matches {
		url := m.Threat.URL
		if url == "" {
			url = "unknown"
		}
		threatType := m.ThreatType
		if threatType == "" {
			threatType = "UNKNOWN"
		}
		matches = append(matches, entity.ThreatMatch{
			URL:        url,
			ThreatType: threatType,
		})
	}
	return matches, nil
}

func snippet(body []byte, limit int) string {
	if len(body) > limit {
		body = body[:limit]
	}
	return string(body)
}
