package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"agenda-bff/pkg/log"
	"agenda-bff/pkg/metrics"
)

// Get performs a GET request.
func (c *clientImpl) Get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	return c.Do(ctx, Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request with JSON body.
func (c *clientImpl) Post(ctx context.Context, path string, body any) ([]byte, error) {
	return c.Do(ctx, Request{Method: http.MethodPost, Path: path, Body: body})
}

// Do sends req. GETs are retried on transport errors and 5xx responses.
func (c *clientImpl) Do(ctx context.Context, req Request) ([]byte, error) {
	if req.Method == "" {
		req.Method = http.MethodGet
	}

	var payload []byte
	if req.Body != nil {
		b, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
		payload = b
	}

	retries := 0
	if req.Method == http.MethodGet {
		retries = c.config.Retries
	}

	var (
		body []byte
		err  error
	)
	for attempt := 0; attempt <= retries; attempt++ {
		if attempt > 0 {
			c.config.Logger.Debugf(ctx, "pkg.http.Do: retry %d %s %s", attempt, req.Method, req.Path)
			if werr := c.wait(ctx); werr != nil {
				return nil, &RequestError{Method: req.Method, Path: req.Path, Err: werr}
			}
		}

		body, err = c.send(ctx, req, payload)
		if ctx.Err() != nil || !retryable(err) {
			break
		}
	}
	if err != nil {
		c.logFailure(ctx, err)
		return nil, err
	}
	return body, nil
}

func (c *clientImpl) wait(ctx context.Context) error {
	if c.config.RetryWait <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(c.config.RetryWait)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// send builds a fresh *http.Request each time so a retried body is never half consumed.
func (c *clientImpl) send(ctx context.Context, req Request, payload []byte) ([]byte, error) {
	target := c.baseURL + req.Path
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, bodyReader)
	if err != nil {
		return nil, &RequestError{Method: req.Method, Path: req.Path, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	httpReq.Header.Set(headerAccept, contentTypeJSON)
	if payload != nil {
		httpReq.Header.Set(headerContentType, contentTypeJSON)
	}
	if id := log.RequestIDFromContext(ctx); id != "" {
		httpReq.Header.Set(headerRequestID, id)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	c.config.Logger.Debugf(ctx, "pkg.http.send: %s %s", req.Method, target)
	start := time.Now()
	resp, err := c.client.Do(httpReq)
	if err != nil {
		c.config.Metrics.ObserveUpstream(req.Method, req.Path, metrics.StatusTransport, time.Since(start))
		return nil, &RequestError{Method: req.Method, Path: req.Path, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	c.config.Metrics.ObserveUpstream(req.Method, req.Path, resp.StatusCode, time.Since(start))
	if err != nil {
		return nil, &RequestError{Method: req.Method, Path: req.Path, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read response body: %w", err)}
	}
	c.config.Logger.Debugf(ctx, "pkg.http.send: %s %s -> %d (%d bytes)", req.Method, req.Path, resp.StatusCode, len(body))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		kept := body
		if len(kept) > maxErrorBody {
			kept = kept[:maxErrorBody]
		}
		return nil, &RequestError{
			Method:     req.Method,
			Path:       req.Path,
			StatusCode: resp.StatusCode,
			Detail:     extractDetail(body),
			Body:       kept,
		}
	}
	return body, nil
}

func retryable(err error) bool {
	reqErr, ok := AsRequestError(err)
	if !ok {
		return false
	}
	return reqErr.IsTransport() || reqErr.IsServer()
}

func (c *clientImpl) logFailure(ctx context.Context, err error) {
	if ctx.Err() != nil {
		c.config.Logger.Debugf(ctx, "pkg.http.Do: request abandoned: %v", err)
		return
	}
	reqErr, ok := AsRequestError(err)
	if !ok {
		c.config.Logger.Errorf(ctx, "pkg.http.Do: %v", err)
		return
	}
	switch {
	case reqErr.IsTransport():
		c.config.Logger.Errorf(ctx, "pkg.http.Do: no response from %s %s: %v", reqErr.Method, reqErr.Path, reqErr.Err)
	case reqErr.IsValidation():
		c.config.Logger.Warnf(ctx, "pkg.http.Do: validation error on %s %s: %s", reqErr.Method, reqErr.Path, reqErr.Message())
	case reqErr.IsNotFound():
		c.config.Logger.Warnf(ctx, "pkg.http.Do: not found %s %s", reqErr.Method, reqErr.Path)
	case reqErr.IsServer():
		c.config.Logger.Errorf(ctx, "pkg.http.Do: server error %d on %s %s: %s", reqErr.StatusCode, reqErr.Method, reqErr.Path, reqErr.Message())
	default:
		c.config.Logger.Warnf(ctx, "pkg.http.Do: %v", reqErr)
	}
}
