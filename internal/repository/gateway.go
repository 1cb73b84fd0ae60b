package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
)

// Table names
const (
	TableRooms         = "rooms"
	TableGuests        = "guests"
	TableBookings      = "bookings"
	TableStaffUsers    = "staff_users"
	TableRefreshTokens = "refresh_tokens"
	TableAuditLogs     = "audit_logs"
)

// Op is a filter predicate supported by every gateway
type Op string

const (
	OpEq Op = "eq"
	OpIn Op = "in"
	OpLt Op = "lt"
)

var (
	ErrInvalidColumn = errors.New("invalid column name")
	ErrInvalidFilter = errors.New("invalid filter")
)

var columnPattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// Filter restricts the rows a Select or Update touches
type Filter struct {
	Column string
	Op     Op
	Value  any
}

// Eq matches rows whose column equals value
func Eq(column string, value any) Filter {
	return Filter{Column: column, Op: OpEq, Value: value}
}

// In matches rows whose column is one of values
func In(column string, values []string) Filter {
	return Filter{Column: column, Op: OpIn, Value: values}
}

// Lt matches rows whose column is strictly less than value
func Lt(column string, value any) Filter {
	return Filter{Column: column, Op: OpLt, Value: value}
}

// Order sorts a Select by one column
type Order struct {
	Column string
	Desc   bool
}

// Asc orders by column ascending
func Asc(column string) *Order {
	return &Order{Column: column}
}

// Desc orders by column descending
func Desc(column string) *Order {
	return &Order{Column: column, Desc: true}
}

// Query describes a Select. A zero Limit means no limit.
type Query struct {
	Filters []Filter
	Order   *Order
	Limit   int
}

// Gateway is the record store: typed rows of named tables, filtered and ordered.
// dest passed to Select must be a pointer to a slice of the table's model.
type Gateway interface {
	Select(ctx context.Context, table string, q Query, dest any) error
	Insert(ctx context.Context, table string, record any) error
	Update(ctx context.Context, table string, filters []Filter, patch map[string]any) (int64, error)
}

// Transactor is implemented by gateways that can run several writes atomically.
// fn receives a Gateway bound to the transaction; returning an error rolls it back.
type Transactor interface {
	InTx(ctx context.Context, fn func(tx Gateway) error) error
}

func validateQuery(q Query) error {
	if err := validateFilters(q.Filters); err != nil {
		return err
	}
	if q.Order != nil && !columnPattern.MatchString(q.Order.Column) {
		return fmt.Errorf("%w: %q", ErrInvalidColumn, q.Order.Column)
	}
	if q.Limit < 0 {
		return fmt.Errorf("%w: negative limit", ErrInvalidFilter)
	}
	return nil
}

func validateFilters(filters []Filter) error {
	for _, f := range filters {
		if !columnPattern.MatchString(f.Column) {
			return fmt.Errorf("%w: %q", ErrInvalidColumn, f.Column)
		}
		switch f.Op {
		case OpEq, OpLt:
		case OpIn:
			if _, ok := f.Value.([]string); !ok {
				return fmt.Errorf("%w: %s expects []string", ErrInvalidFilter, f.Op)
			}
		default:
			return fmt.Errorf("%w: unknown op %q", ErrInvalidFilter, f.Op)
		}
	}
	return nil
}

func validatePatch(patch map[string]any) error {
	if len(patch) == 0 {
		return fmt.Errorf("%w: empty patch", ErrInvalidFilter)
	}
	for column := range patch {
		if !columnPattern.MatchString(column) {
			return fmt.Errorf("%w: %q", ErrInvalidColumn, column)
		}
	}
	return nil
}
