// Package insight narrates financial health snapshots through an external
// LLM service. The service is optional, slow and costs money per call, so
// the client rate-limits itself and caches answers for inputs that have not
// meaningfully changed.
package insight

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/casazen/backend/internal/health"
	"github.com/shopspring/decimal"
)

// Type selects the narration the service produces.
// swagger:enum Type
type Type string

const (
	// TypeGeneral is the overall "how am I doing" narration.
	TypeGeneral Type = "general"
	// TypeChart explains the projected balance chart.
	TypeChart Type = "chart"
)

// Valid reports whether the type is one the service understands.
func (t Type) Valid() bool {
	return t == TypeGeneral || t == TypeChart
}

var (
	ErrUnconfigured = errors.New("no insight service is configured")
	ErrCooldown     = errors.New("an insight was requested too recently. Please wait before requesting another one")
	ErrUnavailable  = errors.New("the insight service could not be reached")
)

// Insight is the narration returned by the service.
type Insight struct {
	Emoji        string `json:"emoji" example:"🌤️"`
	Title        string `json:"title" example:"A tight week ahead"`
	Explanation  string `json:"explanation" example:"Rent is due before your salary arrives, which squeezes your budget until the 5th."`
	WhenImproves string `json:"whenImproves" example:"After June 5th your daily budget roughly doubles."`
	Tip          string `json:"tip" example:"Hold off on non-essential purchases until after rent is paid."`
	Tone         string `json:"tone" example:"encouraging"`
}

// request is the snapshot subset the service needs. Everything else the
// snapshot carries stays local.
type request struct {
	Type                Type            `json:"insightType"`
	Date                time.Time       `json:"date"`
	CurrentBalance      decimal.Decimal `json:"currentBalance"`
	AvailableBalance    decimal.Decimal `json:"availableBalance"`
	DailyBudget         decimal.Decimal `json:"dailyBudget"`
	SafeLiquidity       decimal.Decimal `json:"safeLiquidity"`
	DaysUntilBottleneck decimal.Decimal `json:"daysUntilBottleneck"`
	ProjectedEndBalance decimal.Decimal `json:"projectedEndBalance"`
	Status              health.Status   `json:"status"`
	Alerts              []health.Alert  `json:"alerts"`
}

// Client is a rate-limited client for the insight service. The zero value is
// unusable, use NewClient.
type Client struct {
	url      string
	cooldown time.Duration
	client   *http.Client

	mutex       sync.Mutex
	lastRequest time.Time
	cache       map[string]Insight
}

// NewClient returns a client for the service at url. An empty url returns a
// client that answers every request with ErrUnconfigured.
func NewClient(url string, cooldown time.Duration) *Client {
	return &Client{
		url:      url,
		cooldown: cooldown,
		client:   &http.Client{Timeout: 30 * time.Second},
		cache:    make(map[string]Insight),
	}
}

// fingerprint identifies the financial situation an insight describes.
// Amounts are rounded to whole units so that insignificant changes reuse the
// cached narration, and the hour is included so that a stale narration
// expires even when nothing changes.
func fingerprint(snapshot health.Snapshot, insightType Type) string {
	return fmt.Sprintf("%s:%s:%s:%s:%s:%d",
		insightType,
		snapshot.Status,
		snapshot.CurrentBalance.Round(0),
		snapshot.DailyBudget.Round(0),
		snapshot.SafeLiquidity.Round(0),
		snapshot.Date.UTC().Hour(),
	)
}

// Get returns the narration for a snapshot, from the cache when the
// financial situation has not changed since the last call.
func (c *Client) Get(ctx context.Context, snapshot health.Snapshot, insightType Type) (Insight, error) {
	if c == nil || c.url == "" {
		return Insight{}, ErrUnconfigured
	}

	key := fingerprint(snapshot, insightType)

	c.mutex.Lock()
	cached, ok := c.cache[key]
	if !ok && time.Since(c.lastRequest) < c.cooldown {
		c.mutex.Unlock()
		return Insight{}, ErrCooldown
	}
	c.mutex.Unlock()

	if ok {
		return cached, nil
	}

	insight, err := c.request(ctx, snapshot, insightType)
	if err != nil {
		return Insight{}, err
	}

	c.mutex.Lock()
	c.lastRequest = time.Now()
	c.cache[key] = insight
	c.mutex.Unlock()

	return insight, nil
}

func (c *Client) request(ctx context.Context, snapshot health.Snapshot, insightType Type) (Insight, error) {
	body, err := json.Marshal(request{
		Type:                insightType,
		Date:                snapshot.Date,
		CurrentBalance:      snapshot.CurrentBalance,
		AvailableBalance:    snapshot.AvailableBalance,
		DailyBudget:         snapshot.DailyBudget,
		SafeLiquidity:       snapshot.SafeLiquidity,
		DaysUntilBottleneck: snapshot.DaysUntilBottleneck,
		ProjectedEndBalance: snapshot.ProjectedEndBalance,
		Status:              snapshot.Status,
		Alerts:              snapshot.Alerts,
	})
	if err != nil {
		return Insight{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return Insight{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return Insight{}, fmt.Errorf("%w: %s", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Insight{}, fmt.Errorf("%w: HTTP %d", ErrUnavailable, resp.StatusCode)
	}

	var insight Insight
	if err := json.NewDecoder(resp.Body).Decode(&insight); err != nil {
		return Insight{}, fmt.Errorf("%w: %s", ErrUnavailable, err)
	}

	return insight, nil
}
