package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/vladislavdragonenkov/retail/internal/recordstore"
)

const opTimeout = 5 * time.Second

// identPattern ограничивает имена таблиц и колонок: запросы собираются
// динамически, и идентификаторы не могут передаваться плейсхолдерами.
var identPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

type client struct {
	db *sql.DB
}

// NewClient возвращает PostgreSQL-реализацию recordstore.Client.
func NewClient(store *Store) recordstore.Client {
	return &client{db: store.DB()}
}

func (c *client) Select(ctx context.Context, q recordstore.Query) ([]recordstore.Record, error) {
	query, args, err := buildSelect(q)
	if err != nil {
		return nil, err
	}

	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	rows, err := c.db.QueryContext(opCtx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select from %s: %w", q.Table, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("select columns: %w", err)
	}

	result := make([]recordstore.Record, 0)
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan row from %s: %w", q.Table, err)
		}

		rec := make(recordstore.Record, len(columns))
		for i, col := range columns {
			rec[col] = normalizeValue(values[i])
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows from %s: %w", q.Table, err)
	}

	return result, nil
}

func (c *client) Insert(ctx context.Context, table string, rec recordstore.Record) error {
	query, args, err := buildInsert(table, rec)
	if err != nil {
		return err
	}

	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := c.db.ExecContext(opCtx, query, args...); err != nil {
		return fmt.Errorf("insert into %s: %w", table, err)
	}
	return nil
}

func (c *client) Update(ctx context.Context, table string, fields recordstore.Record, filters []recordstore.Filter) error {
	query, args, err := buildUpdate(table, fields, filters)
	if err != nil {
		return err
	}

	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := c.db.ExecContext(opCtx, query, args...); err != nil {
		return fmt.Errorf("update %s: %w", table, err)
	}
	return nil
}

func (c *client) Delete(ctx context.Context, table string, filters []recordstore.Filter) error {
	query, args, err := buildDelete(table, filters)
	if err != nil {
		return err
	}

	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := c.db.ExecContext(opCtx, query, args...); err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	return nil
}

func (c *client) Aggregate(ctx context.Context, q recordstore.AggregateQuery) ([]recordstore.AggregateRow, error) {
	query, args, err := buildAggregate(q)
	if err != nil {
		return nil, err
	}

	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	rows, err := c.db.QueryContext(opCtx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("aggregate %s: %w", q.Table, err)
	}
	defer rows.Close()

	result := make([]recordstore.AggregateRow, 0)
	for rows.Next() {
		var row recordstore.AggregateRow
		var value sql.NullFloat64
		if q.GroupBy != "" {
			var group any
			if err := rows.Scan(&group, &value); err != nil {
				return nil, fmt.Errorf("scan aggregate row: %w", err)
			}
			row.Group = normalizeValue(group)
		} else {
			if err := rows.Scan(&value); err != nil {
				return nil, fmt.Errorf("scan aggregate row: %w", err)
			}
		}
		row.Value = value.Float64
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate aggregate rows: %w", err)
	}

	return result, nil
}

func buildSelect(q recordstore.Query) (string, []any, error) {
	if err := checkIdent(q.Table); err != nil {
		return "", nil, err
	}

	cols := "*"
	if len(q.Columns) > 0 {
		for _, col := range q.Columns {
			if err := checkIdent(col); err != nil {
				return "", nil, err
			}
		}
		cols = strings.Join(q.Columns, ", ")
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "SELECT %s FROM %s", cols, q.Table)

	args, err := appendWhere(&sb, q.Filters, nil)
	if err != nil {
		return "", nil, err
	}

	if q.OrderBy != "" {
		if err := checkIdent(q.OrderBy); err != nil {
			return "", nil, err
		}
		fmt.Fprintf(&sb, " ORDER BY %s", q.OrderBy)
		if q.Desc {
			sb.WriteString(" DESC")
		}
	}
	if q.Limit > 0 {
		fmt.Fprintf(&sb, " LIMIT %d", q.Limit)
	}

	return sb.String(), args, nil
}

func buildInsert(table string, rec recordstore.Record) (string, []any, error) {
	if err := checkIdent(table); err != nil {
		return "", nil, err
	}
	if len(rec) == 0 {
		return "", nil, fmt.Errorf("insert into %s: empty record", table)
	}

	cols := sortedColumns(rec)
	placeholders := make([]string, 0, len(cols))
	args := make([]any, 0, len(cols))
	for i, col := range cols {
		if err := checkIdent(col); err != nil {
			return "", nil, err
		}
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+1))
		args = append(args, rec[col])
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(cols, ", "), strings.Join(placeholders, ", "),
	)
	return query, args, nil
}

func buildUpdate(table string, fields recordstore.Record, filters []recordstore.Filter) (string, []any, error) {
	if err := checkIdent(table); err != nil {
		return "", nil, err
	}
	if len(fields) == 0 {
		return "", nil, fmt.Errorf("update %s: no fields to set", table)
	}

	cols := sortedColumns(fields)
	sets := make([]string, 0, len(cols))
	args := make([]any, 0, len(cols)+len(filters))
	for i, col := range cols {
		if err := checkIdent(col); err != nil {
			return "", nil, err
		}
		sets = append(sets, fmt.Sprintf("%s = $%d", col, i+1))
		args = append(args, fields[col])
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "UPDATE %s SET %s", table, strings.Join(sets, ", "))

	args, err := appendWhere(&sb, filters, args)
	if err != nil {
		return "", nil, err
	}

	return sb.String(), args, nil
}

func buildDelete(table string, filters []recordstore.Filter) (string, []any, error) {
	if err := checkIdent(table); err != nil {
		return "", nil, err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "DELETE FROM %s", table)

	args, err := appendWhere(&sb, filters, nil)
	if err != nil {
		return "", nil, err
	}

	return sb.String(), args, nil
}

func buildAggregate(q recordstore.AggregateQuery) (string, []any, error) {
	if err := checkIdent(q.Table); err != nil {
		return "", nil, err
	}
	if err := checkIdent(q.Column); err != nil {
		return "", nil, err
	}

	var fn string
	switch q.Func {
	case recordstore.AggSum:
		fn = "SUM"
	case recordstore.AggCount:
		fn = "COUNT"
	default:
		return "", nil, fmt.Errorf("unsupported aggregate func: %s", q.Func)
	}
	agg := fmt.Sprintf("COALESCE(%s(%s), 0)", fn, q.Column)

	var sb strings.Builder
	if q.GroupBy != "" {
		if err := checkIdent(q.GroupBy); err != nil {
			return "", nil, err
		}
		fmt.Fprintf(&sb, "SELECT %s, %s FROM %s", q.GroupBy, agg, q.Table)
	} else {
		fmt.Fprintf(&sb, "SELECT %s FROM %s", agg, q.Table)
	}

	args, err := appendWhere(&sb, q.Filters, nil)
	if err != nil {
		return "", nil, err
	}

	if q.GroupBy != "" {
		fmt.Fprintf(&sb, " GROUP BY %s", q.GroupBy)
		if q.Having != nil {
			if err := checkOp(q.Having.Op); err != nil {
				return "", nil, err
			}
			fmt.Fprintf(&sb, " HAVING %s(%s) %s $%d", fn, q.Column, q.Having.Op, len(args)+1)
			args = append(args, q.Having.Value)
		}
		fmt.Fprintf(&sb, " ORDER BY 2")
		if q.Desc {
			sb.WriteString(" DESC")
		}
		if q.Limit > 0 {
			fmt.Fprintf(&sb, " LIMIT %d", q.Limit)
		}
	}

	return sb.String(), args, nil
}

func appendWhere(sb *strings.Builder, filters []recordstore.Filter, args []any) ([]any, error) {
	for i, f := range filters {
		if err := checkIdent(f.Column); err != nil {
			return nil, err
		}
		if err := checkOp(f.Op); err != nil {
			return nil, err
		}
		if i == 0 {
			sb.WriteString(" WHERE ")
		} else {
			sb.WriteString(" AND ")
		}
		fmt.Fprintf(sb, "%s %s $%d", f.Column, f.Op, len(args)+1)
		args = append(args, f.Value)
	}
	return args, nil
}

func checkIdent(name string) error {
	if !identPattern.MatchString(name) {
		return fmt.Errorf("invalid identifier: %q", name)
	}
	return nil
}

func checkOp(op recordstore.Op) error {
	switch op {
	case recordstore.OpEq, recordstore.OpGt, recordstore.OpGte, recordstore.OpLte:
		return nil
	default:
		return fmt.Errorf("unsupported filter op: %s", op)
	}
}

func sortedColumns(rec recordstore.Record) []string {
	cols := make([]string, 0, len(rec))
	for col := range rec {
		cols = append(cols, col)
	}
	sort.Strings(cols)
	return cols
}

// normalizeValue приводит значения драйвера к типам, которые видят репозитории.
func normalizeValue(v any) any {
	switch typed := v.(type) {
	case []byte:
		return string(typed)
	default:
		return v
	}
}

var _ recordstore.Client = (*client)(nil)
