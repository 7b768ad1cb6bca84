// webhook.go
package datapush

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"ChurnIntelligence/src/processor"
)

const (
	defaultRetryTimes    = 5
	defaultRetryInterval = 2 * time.Second
)

// SummaryPusher POSTs the headline snapshot to the retention team's
// webhook after each report export.
type SummaryPusher struct {
	URL           string
	Client        *http.Client
	RetryTimes    int
	RetryInterval time.Duration
}

func NewSummaryPusher(url string, timeout time.Duration) *SummaryPusher {
	return &SummaryPusher{
		URL:           url,
		Client:        &http.Client{Timeout: timeout},
		RetryTimes:    defaultRetryTimes,
		RetryInterval: defaultRetryInterval,
	}
}

type summaryPayload struct {
	GeneratedAt string                  `json:"generated_at"`
	Headline    processor.HeadlineStats `json:"headline"`
	RiskLevels  []processor.RiskCount   `json:"risk_levels"`
	ReportFile  string                  `json:"report_file,omitempty"`
}

// Push sends the snapshot, retrying transient failures.
func (p *SummaryPusher) Push(stats processor.HeadlineStats, dist []processor.RiskCount, reportFile string) error {
	body, err := json.Marshal(summaryPayload{
		GeneratedAt: time.Now().Format("2006-01-02 15:04:05"),
		Headline:    stats,
		RiskLevels:  dist,
		ReportFile:  reportFile,
	})
	if err != nil {
		return fmt.Errorf("marshal summary payload: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt < p.RetryTimes; attempt++ {
		if attempt > 0 {
			time.Sleep(p.RetryInterval)
		}
		if lastErr = p.post(body); lastErr == nil {
			return nil
		}
	}
	return fmt.Errorf("push summary after %d attempts: %w", p.RetryTimes, lastErr)
}

func (p *SummaryPusher) post(body []byte) error {
	resp, err := p.Client.Post(p.URL, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("send webhook request: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}
