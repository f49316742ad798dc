package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const userAgent = "apdetax/1.0 (research dashboard; github.com/riziyan/apdetax)"

// Client is a typed wrapper over the backend HTTP surface. One method per
// capability, no retries, no per-call timeout beyond the client-wide one.
// The cookie jar carries the auth session for the credentialed endpoints.
type Client struct {
	base string
	http *http.Client
}

// NewClient builds a client for the given base URL (no trailing slash
// required). A nil jar means requests carry no session credentials.
func NewClient(baseURL string, timeout time.Duration, jar http.CookieJar) *Client {
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: timeout,
			Jar:     jar,
		},
	}
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string { return c.base }

// LoginURL returns the navigational Google login URL. It is meant to be
// opened in a browser, never fetched by the client.
func (c *Client) LoginURL() string {
	return c.base + "/api/auth/google"
}

// SearchVideos queries YouTube search. regionCode is omitted from the
// request entirely when region is blank.
func (c *Client) SearchVideos(ctx context.Context, query, order, region string) ([]Video, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("search query is required")
	}
	if order == "" {
		order = "relevance"
	}
	q := url.Values{}
	q.Set("q", query)
	q.Set("order", order)
	if region = strings.TrimSpace(region); region != "" {
		q.Set("regionCode", region)
	}
	var videos []Video
	if err := c.do(ctx, http.MethodGet, "/api/youtubesearch", q, nil, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

// SearchWeb queries general web search starting at the given result index
// (1-based). The returned page carries the next start index, or nil when
// the result set is exhausted.
func (c *Client) SearchWeb(ctx context.Context, query string, start int) (*WebPage, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("search query is required")
	}
	if start < 1 {
		start = 1
	}
	q := url.Values{}
	q.Set("q", query)
	q.Set("start", strconv.Itoa(start))
	var page WebPage
	if err := c.do(ctx, http.MethodGet, "/api/websearch", q, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// NewsFeed fetches the aggregated news digest. It takes no query; the
// backend decides the source set.
func (c *Client) NewsFeed(ctx context.Context) ([]Article, error) {
	var articles []Article
	if err := c.do(ctx, http.MethodGet, "/api/rssnews", nil, nil, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

// VideoDetails fetches the full detail record for one video, comment
// threads included.
func (c *Client) VideoDetails(ctx context.Context, videoID string) (*VideoDetails, error) {
	if videoID == "" {
		return nil, fmt.Errorf("video ID is required to fetch details")
	}
	var details VideoDetails
	if err := c.do(ctx, http.MethodGet, "/api/video/"+url.PathEscape(videoID), nil, nil, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

// Transcript fetches the caption track for one video. Wire offsets are
// milliseconds; entries are returned with offsets in seconds.
func (c *Client) Transcript(ctx context.Context, videoID string) ([]TranscriptEntry, error) {
	if videoID == "" {
		return nil, fmt.Errorf("video ID is required to fetch the transcript")
	}
	var wire struct {
		Transcript []struct {
			Offset float64 `json:"offset"`
			Text   string  `json:"text"`
		} `json:"transcript"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/transcript/"+url.PathEscape(videoID), nil, nil, &wire); err != nil {
		return nil, err
	}
	entries := make([]TranscriptEntry, 0, len(wire.Transcript))
	for _, e := range wire.Transcript {
		entries = append(entries, TranscriptEntry{
			OffsetSeconds: e.Offset / 1000,
			Text:          e.Text,
		})
	}
	return entries, nil
}

// Chat sends one user message and returns the assistant reply. Only the
// latest message goes over the wire; conversational memory is the
// backend's concern.
func (c *Client) Chat(ctx context.Context, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", fmt.Errorf("cannot send an empty message")
	}
	var out struct {
		Message string `json:"message"`
	}
	body := map[string]string{"message": message}
	if err := c.do(ctx, http.MethodPost, "/api/chat", nil, body, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// AnalyzeComments asks the backend to analyze a video's comment section.
func (c *Client) AnalyzeComments(ctx context.Context, videoID string) (string, error) {
	if videoID == "" {
		return "", fmt.Errorf("video ID is required to analyze comments")
	}
	var out struct {
		Analysis string `json:"analysis"`
	}
	body := map[string]string{"videoId": videoID}
	if err := c.do(ctx, http.MethodPost, "/api/analyze", nil, body, &out); err != nil {
		return "", err
	}
	return out.Analysis, nil
}

// SummarizeText summarizes caller-provided text (typically a transcript
// the client already holds).
func (c *Client) SummarizeText(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("cannot summarize empty text")
	}
	var out struct {
		Summary string `json:"summary"`
	}
	body := map[string]string{"text": text}
	if err := c.do(ctx, http.MethodPost, "/api/summarize-text", nil, body, &out); err != nil {
		return "", err
	}
	return out.Summary, nil
}

// SummarizeVideo has the backend fetch the transcript itself and summarize
// it in one call.
func (c *Client) SummarizeVideo(ctx context.Context, videoID string) (string, error) {
	if videoID == "" {
		return "", fmt.Errorf("video ID is required for direct summarization")
	}
	var out struct {
		Summary string `json:"summary"`
	}
	body := map[string]string{"videoId": videoID}
	if err := c.do(ctx, http.MethodPost, "/api/summarize-direct", nil, body, &out); err != nil {
		return "", err
	}
	return out.Summary, nil
}

// Profile resolves the current auth session. Callers decide what a failure
// means; this method reports it as-is.
func (c *Client) Profile(ctx context.Context) (*AuthStatus, error) {
	var status AuthStatus
	if err := c.do(ctx, http.MethodGet, "/api/auth/profile", nil, nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// Logout destroys the server-side session identified by the cookie jar.
func (c *Client) Logout(ctx context.Context) error {
	var out struct {
		Message string `json:"message"`
	}
	return c.do(ctx, http.MethodPost, "/api/auth/logout", nil, struct{}{}, &out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	endpoint := c.base + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s: %w", path, err)
	}
	defer resp.Body.Close()

	return decodeResponse(resp, out)
}

// decodeResponse maps the response onto out (2xx) or onto an error. A
// declared JSON content type is parsed as JSON, anything else is raw text;
// a 204 or zero-length body counts as an empty object. Error messages
// prefer the body's JSON message field, then a non-empty text body, then
// the HTTP status text.
func decodeResponse(resp *http.Response, out any) error {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	isJSON := false
	if ct := resp.Header.Get("Content-Type"); ct != "" {
		if mediaType, _, mimeErr := mime.ParseMediaType(ct); mimeErr == nil {
			isJSON = mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
		}
	}
	empty := resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(data)) == 0

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(resp, data, isJSON, empty),
		}
	}

	if empty || out == nil {
		return nil
	}

	if isJSON {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("parsing JSON response (status %d): %w", resp.StatusCode, err)
		}
		return nil
	}

	if s, ok := out.(*string); ok {
		*s = string(data)
	}
	return nil
}

func errorMessage(resp *http.Response, data []byte, isJSON, empty bool) string {
	if isJSON && !empty {
		var body struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(data, &body); err == nil && body.Message != "" {
			return body.Message
		}
	}
	if text := strings.TrimSpace(string(data)); text != "" {
		return text
	}
	if text := http.StatusText(resp.StatusCode); text != "" {
		return text
	}
	return fmt.Sprintf("request failed with status %d", resp.StatusCode)
}
