package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// RestError is returned when the hosted data API answers with an error status
type RestError struct {
	StatusCode int
	Body       string
}

func (e *RestError) Error() string {
	return fmt.Sprintf("data api returned %d: %s", e.StatusCode, e.Body)
}

// RestGateway talks to a PostgREST-compatible hosted data API
// (tables under /rest/v1, filters as col=op.value query parameters).
// It does not support transactions.
type RestGateway struct {
	client *resty.Client
}

// NewRestGateway creates a gateway for the project at baseURL authenticated with apiKey
func NewRestGateway(baseURL, apiKey string, timeout time.Duration) *RestGateway {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")+"/rest/v1").
		SetTimeout(timeout).
		SetHeader("apikey", apiKey).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &RestGateway{client: client}
}

func (g *RestGateway) Select(ctx context.Context, table string, q Query, dest any) error {
	if err := validateQuery(q); err != nil {
		return err
	}

	params, err := filterParams(q.Filters)
	if err != nil {
		return err
	}
	params.Set("select", "*")
	if q.Order != nil {
		direction := "asc"
		if q.Order.Desc {
			direction = "desc"
		}
		params.Set("order", q.Order.Column+"."+direction)
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}

	resp, err := g.client.R().
		SetContext(ctx).
		SetQueryParamsFromValues(params).
		SetResult(dest).
		Get("/" + table)
	if err != nil {
		return fmt.Errorf("select %s: %w", table, err)
	}
	if resp.IsError() {
		return &RestError{StatusCode: resp.StatusCode(), Body: resp.String()}
	}
	return nil
}

// Insert creates record and refreshes it from the stored representation
func (g *RestGateway) Insert(ctx context.Context, table string, record any) error {
	var rows []json.RawMessage
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Prefer", "return=representation").
		SetBody(record).
		SetResult(&rows).
		Post("/" + table)
	if err != nil {
		return fmt.Errorf("insert %s: %w", table, err)
	}
	if resp.IsError() {
		return &RestError{StatusCode: resp.StatusCode(), Body: resp.String()}
	}
	if len(rows) > 0 {
		if err := json.Unmarshal(rows[0], record); err != nil {
			return fmt.Errorf("decode inserted %s row: %w", table, err)
		}
	}
	return nil
}

// Update patches matching rows; the affected count is the number of rows returned
func (g *RestGateway) Update(ctx context.Context, table string, filters []Filter, patch map[string]any) (int64, error) {
	if len(filters) == 0 {
		return 0, fmt.Errorf("%w: update without filters", ErrInvalidFilter)
	}
	if err := validateFilters(filters); err != nil {
		return 0, err
	}
	if err := validatePatch(patch); err != nil {
		return 0, err
	}

	params, err := filterParams(filters)
	if err != nil {
		return 0, err
	}

	var rows []json.RawMessage
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Prefer", "return=representation").
		SetQueryParamsFromValues(params).
		SetBody(patch).
		SetResult(&rows).
		Patch("/" + table)
	if err != nil {
		return 0, fmt.Errorf("update %s: %w", table, err)
	}
	if resp.IsError() {
		return 0, &RestError{StatusCode: resp.StatusCode(), Body: resp.String()}
	}
	return int64(len(rows)), nil
}

func filterParams(filters []Filter) (url.Values, error) {
	params := url.Values{}
	for _, f := range filters {
		switch f.Op {
		case OpEq, OpLt:
			params.Add(f.Column, string(f.Op)+"."+restScalar(f.Value))
		case OpIn:
			values := f.Value.([]string)
			quoted := make([]string, len(values))
			for i, v := range values {
				quoted[i] = strconv.Quote(v)
			}
			params.Add(f.Column, "in.("+strings.Join(quoted, ",")+")")
		default:
			return nil, fmt.Errorf("%w: unknown op %q", ErrInvalidFilter, f.Op)
		}
	}
	return params, nil
}

func restScalar(v any) string {
	switch t := v.(type) {
	case time.Time:
		return t.UTC().Format(time.RFC3339Nano)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(v)
	}
}
