package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memoryRow map[string]any

// MemoryGateway keeps rows in process memory. Rows are held in their JSON
// form, so any model with json tags matching its column names can be stored.
// Transactions snapshot the whole store and restore it on error; they are
// serialized with each other but not isolated from plain writes.
type MemoryGateway struct {
	mu       sync.RWMutex
	txMu     sync.Mutex
	tables   map[string][]memoryRow
	failures map[string]error
}

func NewMemoryGateway() *MemoryGateway {
	return &MemoryGateway{
		tables:   make(map[string][]memoryRow),
		failures: make(map[string]error),
	}
}

// FailOn makes every later call of op ("select", "insert", "update") on table
// return err. A nil err clears the failure.
func (m *MemoryGateway) FailOn(op, table string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := op + ":" + table
	if err == nil {
		delete(m.failures, key)
		return
	}
	m.failures[key] = err
}

// Len returns the number of rows stored in table
func (m *MemoryGateway) Len(table string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.tables[table])
}

func (m *MemoryGateway) Select(ctx context.Context, table string, q Query, dest any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateQuery(q); err != nil {
		return err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.failures["select:"+table]; err != nil {
		return err
	}
	var rows []memoryRow
	for _, row := range m.tables[table] {
		if matchesAll(row, q.Filters) {
			rows = append(rows, row)
		}
	}

	if q.Order != nil {
		col, desc := q.Order.Column, q.Order.Desc
		sort.SliceStable(rows, func(i, j int) bool {
			c := compareValues(rows[i][col], rows[j][col])
			if desc {
				return c > 0
			}
			return c < 0
		})
	}
	if q.Limit > 0 && len(rows) > q.Limit {
		rows = rows[:q.Limit]
	}
	if rows == nil {
		rows = []memoryRow{}
	}

	data, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("encode rows: %w", err)
	}
	return json.Unmarshal(data, dest)
}

func (m *MemoryGateway) Insert(ctx context.Context, table string, record any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	row, err := toRow(record)
	if err != nil {
		return err
	}
	if id, _ := row["id"].(string); id == "" {
		row["id"] = uuid.NewString()
	}
	if ts, _ := row["created_at"].(string); ts == "" || strings.HasPrefix(ts, "0001-01-01") {
		row["created_at"] = time.Now().UTC().Format(time.RFC3339Nano)
	}

	m.mu.Lock()
	if err := m.failures["insert:"+table]; err != nil {
		m.mu.Unlock()
		return err
	}
	m.tables[table] = append(m.tables[table], row)
	m.mu.Unlock()

	data, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("encode row: %w", err)
	}
	return json.Unmarshal(data, record)
}

func (m *MemoryGateway) Update(ctx context.Context, table string, filters []Filter, patch map[string]any) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if len(filters) == 0 {
		return 0, fmt.Errorf("%w: update without filters", ErrInvalidFilter)
	}
	if err := validateFilters(filters); err != nil {
		return 0, err
	}
	if err := validatePatch(patch); err != nil {
		return 0, err
	}

	normalized := make(map[string]any, len(patch))
	for k, v := range patch {
		normalized[k] = normalize(v)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failures["update:"+table]; err != nil {
		return 0, err
	}

	var affected int64
	for _, row := range m.tables[table] {
		if !matchesAll(row, filters) {
			continue
		}
		for k, v := range normalized {
			row[k] = v
		}
		affected++
	}
	return affected, nil
}

// InTx runs fn against the store and restores the previous contents if fn fails
func (m *MemoryGateway) InTx(ctx context.Context, fn func(tx Gateway) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.txMu.Lock()
	defer m.txMu.Unlock()

	snapshot := m.snapshot()
	if err := fn(m); err != nil {
		m.mu.Lock()
		m.tables = snapshot
		m.mu.Unlock()
		return err
	}
	return nil
}

func (m *MemoryGateway) snapshot() map[string][]memoryRow {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string][]memoryRow, len(m.tables))
	for table, rows := range m.tables {
		copied := make([]memoryRow, len(rows))
		for i, row := range rows {
			r := make(memoryRow, len(row))
			for k, v := range row {
				r[k] = v
			}
			copied[i] = r
		}
		out[table] = copied
	}
	return out
}

func toRow(record any) (memoryRow, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	var row memoryRow
	if err := json.Unmarshal(data, &row); err != nil {
		return nil, fmt.Errorf("record must encode as a JSON object: %w", err)
	}
	return row, nil
}

// normalize turns v into the same shape stored rows have after a JSON round trip
func normalize(v any) any {
	data, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return v
	}
	return out
}

func matchesAll(row memoryRow, filters []Filter) bool {
	for _, f := range filters {
		if !matches(row[f.Column], f) {
			return false
		}
	}
	return true
}

func matches(value any, f Filter) bool {
	switch f.Op {
	case OpEq:
		return equalValues(value, normalize(f.Value))
	case OpLt:
		if value == nil {
			return false
		}
		return compareValues(value, normalize(f.Value)) < 0
	case OpIn:
		for _, candidate := range f.Value.([]string) {
			if equalValues(value, candidate) {
				return true
			}
		}
	}
	return false
}

func equalValues(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return compareValues(a, b) == 0
}

// compareValues orders JSON scalars. nil sorts first; timestamps compare as
// instants; mismatched kinds compare by their string forms.
func compareValues(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	switch av := a.(type) {
	case float64:
		if bv, ok := b.(float64); ok {
			switch {
			case av < bv:
				return -1
			case av > bv:
				return 1
			}
			return 0
		}
	case bool:
		if bv, ok := b.(bool); ok {
			switch {
			case av == bv:
				return 0
			case !av:
				return -1
			}
			return 1
		}
	case string:
		if bv, ok := b.(string); ok {
			at, aerr := time.Parse(time.RFC3339Nano, av)
			bt, berr := time.Parse(time.RFC3339Nano, bv)
			if aerr == nil && berr == nil {
				return at.Compare(bt)
			}
			return strings.Compare(av, bv)
		}
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}
