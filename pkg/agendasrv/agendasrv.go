package agendasrv

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	pkghttp "agenda-bff/pkg/http"
)

func defaultHTTPClient() pkghttp.IClient {
	return pkghttp.NewClient(pkghttp.ClientConfig{
		Timeout:   DefaultTimeout,
		Retries:   DefaultRetries,
		RetryWait: DefaultRetryWait,
	})
}

// List retrieves one page of a collection.
func (c *agendaImpl) List(ctx context.Context, path string, q ListQuery) ([]byte, error) {
	query := url.Values{}
	query.Set(ParamLimit, strconv.Itoa(q.Limit))
	query.Set(ParamSkip, strconv.Itoa(q.Skip))
	if q.Filter != "" {
		query.Set(ParamFilter, q.Filter)
	}

	body, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", path, err)
	}
	return body, nil
}

// GetDashboardSummary retrieves total cadastros and agendamentos.
func (c *agendaImpl) GetDashboardSummary(ctx context.Context) (*DashboardSummary, error) {
	body, err := c.httpClient.Get(ctx, PathDashboardSummary, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get dashboard summary: %w", err)
	}

	var summary DashboardSummary
	if err := json.Unmarshal(body, &summary); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dashboard summary: %w", err)
	}
	return &summary, nil
}

// GetDashboardActivity retrieves agendamento counts for today, this week and this month.
func (c *agendaImpl) GetDashboardActivity(ctx context.Context) (*DashboardActivity, error) {
	body, err := c.httpClient.Get(ctx, PathDashboardAtividade, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get dashboard activity: %w", err)
	}

	var activity DashboardActivity
	if err := json.Unmarshal(body, &activity); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dashboard activity: %w", err)
	}
	return &activity, nil
}
