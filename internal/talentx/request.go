package talentx

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	"github.com/spigell/talentx/internal/utils"
)

const (
	contentType     = "application/json"
	contentEncoding = "gzip"
	maxLogBody      = 300
)

type errorBody struct {
	Error string `mapstructure:"error"`
	Code  string `mapstructure:"code"`
}

// call performs one request and returns the decoded JSON body (nil when empty).
// Requests wait for the rate limiter and run through the circuit breaker.
func (c *Client) call(ctx context.Context, method, path string, q url.Values, payload any, auth bool) (any, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%s %s: rate limit: %w", method, path, err)
		}
	}

	do := func() (any, error) {
		return c.roundTrip(ctx, method, path, q, payload, auth)
	}

	var (
		body any
		err  error
	)
	if c.breaker != nil {
		body, err = c.breaker.Execute(do)
		err = breakerError(err)
	} else {
		body, err = do()
	}
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}

	return body, nil
}

func (c *Client) roundTrip(ctx context.Context, method, path string, q url.Values, payload any, auth bool) (any, error) {
	var reader io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path), reader)
	if err != nil {
		return nil, err
	}
	if q != nil {
		req.URL.RawQuery = q.Encode()
	}

	c.setHeaders(req)
	if auth {
		c.authorize(ctx, req)
	}

	resp, err := c.request(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	c.recorder.RecordRemoteStatus(resp.StatusCode)

	data, err := readBody(resp)
	if err != nil {
		return nil, err
	}

	var body any
	if len(bytes.TrimSpace(data)) > 0 {
		// A body that is not JSON is treated as empty.
		if err := json.Unmarshal(data, &body); err != nil {
			c.logger.Debug("response body is not json",
				zap.String("url", req.URL.String()),
				zap.String("body", utils.TruncateForLog(string(data), maxLogBody)),
			)
			body = nil
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(resp, body)
	}

	return body, nil
}

func (c *Client) request(req *http.Request) (*http.Response, error) {
	c.logger.Debug("make request", zap.String("method", req.Method), zap.String("url", req.URL.String()))
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (c *Client) endpoint(path string) string {
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", contentType)
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept-Encoding", contentEncoding)
}

// authorize attaches the bearer token. A failing token source does not stop the
// request: the service decides whether the call needs it.
func (c *Client) authorize(ctx context.Context, req *http.Request) {
	if c.tokens == nil {
		return
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		c.logger.Warn("getting api token failed, sending request without it",
			zap.String("url", req.URL.Path),
			zap.Error(err),
		)
		return
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func readBody(resp *http.Response) ([]byte, error) {
	var reader io.Reader = resp.Body
	if resp.Header.Get("Content-Encoding") == "gzip" {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		reader = gz
	}

	return io.ReadAll(reader)
}

func newAPIError(resp *http.Response, body any) *APIError {
	apiErr := &APIError{Status: resp.StatusCode}

	var eb errorBody
	if m, ok := body.(map[string]any); ok {
		_ = decode(m, &eb)
	}

	apiErr.Code = eb.Code
	apiErr.Message = eb.Error
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	if apiErr.Message == "" {
		apiErr.Message = "request failed"
	}

	return apiErr
}

// decode maps a generic JSON value onto a wire struct. Numbers and strings are
// converted loosely because the service is not strict about either.
func decode(input any, target any) error {
	if input == nil {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
		Result:           target,
	})
	if err != nil {
		return err
	}

	if err := decoder.Decode(input); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
