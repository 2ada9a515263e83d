package insights

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/kashifaziz477/Money-Management-Ledger/internal/domain"
	"github.com/kashifaziz477/Money-Management-Ledger/internal/infrastructure/metrics"
)

// ErrNoAPIKey is returned when the client is constructed without a key.
var ErrNoAPIKey = errors.New("insights: no API key configured")

// Config holds Gemini client configuration.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// GeminiClient implements usecase.InsightsGenerator against the
// Gemini generateContent REST endpoint. Transient HTTP failures are
// retried briefly with exponential backoff before giving up.
type GeminiClient struct {
	cfg     Config
	client  *http.Client
	logger  zerolog.Logger
	metrics *metrics.Metrics
}

// NewGeminiClient creates a new GeminiClient. metrics may be nil.
func NewGeminiClient(cfg Config, logger zerolog.Logger, m *metrics.Metrics) *GeminiClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &GeminiClient{
		cfg:     cfg,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
		metrics: m,
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Generate asks the model for a two-sentence financial summary plus
// one suggestion for the treasurer, denominated in Rs.
func (c *GeminiClient) Generate(ctx context.Context, transactions []*domain.Transaction, members []*domain.Member) (string, error) {
	if c.metrics != nil {
		c.metrics.InsightsRequests.Inc()
	}

	text, err := c.generate(ctx, buildPrompt(transactions, members))
	if err != nil {
		if c.metrics != nil {
			c.metrics.InsightsFailures.Inc()
		}
		return "", err
	}
	return text, nil
}

func (c *GeminiClient) generate(ctx context.Context, prompt string) (string, error) {
	if c.cfg.APIKey == "" {
		return "", ErrNoAPIKey
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("insights: marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.cfg.BaseURL, c.cfg.Model)

	var text string
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("x-goog-api-key", c.cfg.APIKey)

		resp, err := c.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		// Quota and auth problems will not fix themselves within a
		// few retries; only retry server-side errors.
		if resp.StatusCode >= http.StatusInternalServerError {
			return fmt.Errorf("insights: upstream status %d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			return backoff.Permanent(fmt.Errorf("insights: upstream status %d", resp.StatusCode))
		}

		var parsed generateResponse
		if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
			return backoff.Permanent(fmt.Errorf("insights: decode response: %w", err))
		}

		text = firstText(parsed)
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 200 * time.Millisecond
	b.MaxInterval = 2 * time.Second
	b.MaxElapsedTime = 10 * time.Second

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		c.logger.Warn().Err(err).Msg("insights request failed")
		return "", err
	}

	return text, nil
}

func firstText(resp generateResponse) string {
	for _, cand := range resp.Candidates {
		for _, p := range cand.Content.Parts {
			if p.Text != "" {
				return p.Text
			}
		}
	}
	return ""
}

// buildPrompt embeds member count, aggregate totals and the five most
// recent transactions into the analyst prompt.
func buildPrompt(transactions []*domain.Transaction, members []*domain.Member) string {
	income := decimal.Zero
	expense := decimal.Zero
	for _, tx := range transactions {
		if tx.IsIncome() {
			income = income.Add(tx.Amount)
		} else {
			expense = expense.Add(tx.Amount)
		}
	}

	recent := transactions
	if len(recent) > 5 {
		recent = recent[len(recent)-5:]
	}
	serialized := make([]map[string]string, len(recent))
	for i, tx := range recent {
		serialized[i] = map[string]string{
			"date":        tx.Date.Format("2006-01-02"),
			"type":        string(tx.Type),
			"amount":      tx.Amount.String(),
			"description": tx.Description,
			"category":    tx.Category,
		}
	}
	recentJSON, _ := json.Marshal(serialized)

	return fmt.Sprintf(`As a financial analyst for a Pakistani organization using PKR (Rs.), analyze the following financial summary:
- Total Members: %d
- Total Income: Rs. %s
- Total Expenses: Rs. %s
- Current Balance: Rs. %s

Recent Transactions: %s

Provide a short, professional 2-sentence summary of the financial health in the context of a local organization or committee (kameti), and one actionable suggestion for the treasurer to optimize savings or collection in PKR.`,
		len(members), income.String(), expense.String(), income.Sub(expense).String(), recentJSON)
}
