package apihubs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/bizday/internal/core/domain"
	"github.com/custodia-labs/bizday/internal/core/ports/driven"
	"github.com/custodia-labs/bizday/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.CalendarSource = (*Source)(nil)

const (
	// Name identifies the source in logs and errors.
	Name = "apihubs"

	// pageSize covers a leap year in one page.
	pageSize = 400

	// maxErrorBody bounds how much of an error response is kept.
	maxErrorBody = 512

	defaultHTTPTimeout = 30 * time.Second
)

// Config holds apihubs source configuration.
type Config struct {
	// BaseURL is the holiday endpoint.
	BaseURL string

	// RequestsPerSecond is the sustained request rate.
	RequestsPerSecond float64

	// Burst is the maximum burst size.
	Burst int

	// HTTPClient overrides the default client.
	HTTPClient *http.Client
}

// ConfigFromSettings builds a Config from application settings.
func ConfigFromSettings(s domain.APIHubsSettings) Config {
	return Config{
		BaseURL:           s.BaseURL,
		RequestsPerSecond: float64(s.RequestsPerSecond),
		Burst:             s.Burst,
	}
}

// Source fetches business days from the apihubs holiday API.
type Source struct {
	domain.Codec

	baseURL string
	client  *http.Client
	limiter *RateLimiter
}

// New creates an apihubs source. An empty BaseURL selects the public endpoint.
func New(cfg Config) *Source {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = domain.DefaultAPIHubsBaseURL
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: defaultHTTPTimeout}
	}

	return &Source{
		baseURL: baseURL,
		client:  client,
		limiter: NewRateLimiter(cfg.RequestsPerSecond, cfg.Burst),
	}
}

// Name returns "apihubs".
func (s *Source) Name() string {
	return Name
}

// holidayResponse is the body of a holiday/get response.
type holidayResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data struct {
		Total int          `json:"total"`
		List  []holidayDay `json:"list"`
	} `json:"data"`
}

type holidayDay struct {
	Date dayNumber `json:"date"`
}

// dayNumber accepts a YYYYMMDD date encoded either as a JSON number or a string.
type dayNumber string

func (d *dayNumber) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = unquoted
	}
	if raw == "" || raw == "null" {
		return errors.New("empty date")
	}
	*d = dayNumber(raw)
	return nil
}

// Workdays fetches the business days of year.
//
// Every failure wraps domain.ErrDataUnavailable. A 429 response additionally
// wraps domain.ErrRateLimited and starts a backoff window.
func (s *Source) Workdays(ctx context.Context, year int) (domain.WorkdayList, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: waiting for rate limiter: %w", domain.ErrDataUnavailable, err)
	}

	reqURL, err := s.requestURL(year)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrDataUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %w", domain.ErrDataUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	logger.Debug("POST %s", reqURL)
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch %d: %w", domain.ErrDataUnavailable, year, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		s.limiter.RecordRateLimitError(retryAfter(resp))
		return nil, fmt.Errorf("%w: %w", domain.ErrDataUnavailable, apiError(resp, reqURL))
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %w", domain.ErrDataUnavailable, apiError(resp, reqURL))
	}

	var body holidayResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode response for %d: %w", domain.ErrDataUnavailable, year, err)
	}
	if body.Code != 0 {
		return nil, fmt.Errorf("%w: %w", domain.ErrDataUnavailable, &APIError{
			StatusCode: resp.StatusCode,
			Code:       body.Code,
			Message:    body.Msg,
			URL:        reqURL,
		})
	}

	list, err := toWorkdayList(year, body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrDataUnavailable, err)
	}

	logger.Since(start, "apihubs returned %d business days for %d", len(list), year)
	return list, nil
}

// requestURL appends the holiday query to the base URL, keeping any query
// parameters already present.
func (s *Source) requestURL(year int) (string, error) {
	u, err := url.Parse(s.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL %q: %w", s.baseURL, err)
	}

	q := u.Query()
	q.Set("year", strconv.Itoa(year))
	q.Set("workday", "1")
	q.Set("cn", "1")
	q.Set("size", strconv.Itoa(pageSize))
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// toWorkdayList converts the response entries, which the API returns
// newest first, into an ascending list for year.
func toWorkdayList(year int, body holidayResponse) (domain.WorkdayList, error) {
	if len(body.Data.List) == 0 {
		return nil, fmt.Errorf("no business days for %d", year)
	}
	if body.Data.Total > len(body.Data.List) {
		return nil, fmt.Errorf("truncated response for %d: %d of %d days", year, len(body.Data.List), body.Data.Total)
	}

	codes := make([]domain.BusinessDayCode, 0, len(body.Data.List))
	for _, day := range body.Data.List {
		code, err := domain.ParseCode(string(day.Date))
		if err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}

	return domain.NewWorkdayList(year, codes)
}

func apiError(resp *http.Response, reqURL string) *APIError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    msg,
		URL:        reqURL,
	}
}

// retryAfter reads a Retry-After header given in seconds.
func retryAfter(resp *http.Response) time.Duration {
	seconds, err := strconv.Atoi(resp.Header.Get("Retry-After"))
	if err != nil || seconds <= 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}
