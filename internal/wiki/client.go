// Package wiki looks up article summaries on the language-scoped
// Wikipedia REST API.
package wiki

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// summaryLimit caps the returned summary; the cut is a hard character
// count, not word-aware.
const summaryLimit = 1000

type summaryResponse struct {
	Extract string `json:"extract"`
}

type Client struct {
	httpClient *http.Client
	userAgent  string
	baseURL    string // overrides the per-language host when set (tests)
}

func NewClient(userAgent string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		userAgent:  userAgent,
	}
}

// Summarize fetches the lead summary for query from the lang edition of
// Wikipedia. The bool is false both when no page exists and when the
// lookup fails for any reason; callers treat both as "no result".
// Failures never propagate, they are logged here.
func (c *Client) Summarize(ctx context.Context, query, lang string) (string, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.summaryURL(query, lang), nil)
	if err != nil {
		log.Printf("wiki: build request for %q: %v", query, err)
		return "", false
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("wiki: fetch %q: %v", query, err)
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", false
	}
	if resp.StatusCode != http.StatusOK {
		log.Printf("wiki: fetch %q: unexpected status %d", query, resp.StatusCode)
		return "", false
	}

	var body summaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		log.Printf("wiki: decode response for %q: %v", query, err)
		return "", false
	}

	summary := strings.TrimSpace(body.Extract)
	if summary == "" {
		return "", false
	}
	return truncate(summary, summaryLimit), true
}

func (c *Client) summaryURL(query, lang string) string {
	base := c.baseURL
	if base == "" {
		base = fmt.Sprintf("https://%s.wikipedia.org", lang)
	}
	return base + "/api/rest_v1/page/summary/" + url.PathEscape(query)
}

// truncate cuts s to at most limit characters. It counts code points, not
// bytes, so multi-byte text is never split mid-rune.
func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit])
}
