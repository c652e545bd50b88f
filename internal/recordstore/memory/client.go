// Package memory реализует recordstore.Client поверх таблиц в памяти.
// Используется в тестах и как подстановка вместо удалённой базы.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vladislavdragonenkov/retail/internal/recordstore"
)

// idColumns задаёт автоинкрементный первичный ключ для известных таблиц.
var idColumns = map[string]string{
	"customers":   "customer_id",
	"products":    "product_id",
	"orders":      "order_id",
	"order_items": "order_item_id",
	"payments":    "payment_id",
}

type client struct {
	mu     sync.RWMutex
	tables map[string][]recordstore.Record
	nextID map[string]int64
}

// NewClient возвращает пустой in-memory Record Store.
func NewClient() recordstore.Client {
	return &client{
		tables: make(map[string][]recordstore.Record),
		nextID: make(map[string]int64),
	}
}

func (c *client) Select(ctx context.Context, q recordstore.Query) ([]recordstore.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]recordstore.Record, 0)
	for _, rec := range c.tables[q.Table] {
		ok, err := matchesAll(rec, q.Filters)
		if err != nil {
			return nil, err
		}
		if ok {
			result = append(result, projectRecord(rec, q.Columns))
		}
	}

	if q.OrderBy != "" {
		column, desc := q.OrderBy, q.Desc
		sort.SliceStable(result, func(i, j int) bool {
			cmp, err := compareValues(result[i][column], result[j][column])
			if err != nil {
				return false
			}
			if desc {
				return cmp > 0
			}
			return cmp < 0
		})
	}

	if q.Limit > 0 && len(result) > q.Limit {
		result = result[:q.Limit]
	}

	return result, nil
}

func (c *client) Insert(ctx context.Context, table string, rec recordstore.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	stored := copyRecord(rec)
	if idCol, ok := idColumns[table]; ok {
		if _, has := stored[idCol]; !has {
			c.nextID[table]++
			stored[idCol] = c.nextID[table]
		}
	}
	c.tables[table] = append(c.tables[table], stored)
	return nil
}

func (c *client) Update(ctx context.Context, table string, fields recordstore.Record, filters []recordstore.Filter) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, rec := range c.tables[table] {
		ok, err := matchesAll(rec, filters)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		for k, v := range fields {
			rec[k] = v
		}
	}
	return nil
}

func (c *client) Delete(ctx context.Context, table string, filters []recordstore.Filter) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	kept := make([]recordstore.Record, 0, len(c.tables[table]))
	for _, rec := range c.tables[table] {
		ok, err := matchesAll(rec, filters)
		if err != nil {
			return err
		}
		if !ok {
			kept = append(kept, rec)
		}
	}
	c.tables[table] = kept
	return nil
}

func (c *client) Aggregate(ctx context.Context, q recordstore.AggregateQuery) ([]recordstore.AggregateRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	type bucket struct {
		group any
		value float64
	}
	buckets := make(map[string]*bucket)
	keys := make([]string, 0)

	for _, rec := range c.tables[q.Table] {
		ok, err := matchesAll(rec, q.Filters)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		var group any
		key := ""
		if q.GroupBy != "" {
			group = rec[q.GroupBy]
			key = fmt.Sprintf("%v", group)
		}

		b, exists := buckets[key]
		if !exists {
			b = &bucket{group: group}
			buckets[key] = b
			keys = append(keys, key)
		}

		switch q.Func {
		case recordstore.AggSum:
			v, err := numericValue(rec[q.Column])
			if err != nil {
				return nil, err
			}
			b.value += v
		case recordstore.AggCount:
			if rec[q.Column] != nil {
				b.value++
			}
		default:
			return nil, fmt.Errorf("unsupported aggregate func: %s", q.Func)
		}
	}

	// Запрос без группировки всегда возвращает одну строку, даже по пустой выборке.
	if q.GroupBy == "" && len(buckets) == 0 {
		return []recordstore.AggregateRow{{Value: 0}}, nil
	}

	rows := make([]recordstore.AggregateRow, 0, len(buckets))
	for _, key := range keys {
		b := buckets[key]
		if q.Having != nil {
			ok, err := compareFloat(b.value, q.Having.Op, q.Having.Value)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
		}
		rows = append(rows, recordstore.AggregateRow{Group: b.group, Value: b.value})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if q.Desc {
			return rows[i].Value > rows[j].Value
		}
		return rows[i].Value < rows[j].Value
	})

	if q.Limit > 0 && len(rows) > q.Limit {
		rows = rows[:q.Limit]
	}

	return rows, nil
}

func matchesAll(rec recordstore.Record, filters []recordstore.Filter) (bool, error) {
	for _, f := range filters {
		ok, err := matches(rec, f)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

func matches(rec recordstore.Record, f recordstore.Filter) (bool, error) {
	cmp, err := compareValues(rec[f.Column], f.Value)
	if err != nil {
		return false, err
	}
	switch f.Op {
	case recordstore.OpEq:
		return cmp == 0, nil
	case recordstore.OpGt:
		return cmp > 0, nil
	case recordstore.OpGte:
		return cmp >= 0, nil
	case recordstore.OpLte:
		return cmp <= 0, nil
	default:
		return false, fmt.Errorf("unsupported filter op: %s", f.Op)
	}
}

// compareValues сравнивает значения колонок; nil меньше любого значения.
func compareValues(a, b any) (int, error) {
	if a == nil && b == nil {
		return 0, nil
	}
	if a == nil {
		return -1, nil
	}
	if b == nil {
		return 1, nil
	}

	if at, aok := a.(time.Time); aok {
		bt, bok := b.(time.Time)
		if !bok {
			return 0, fmt.Errorf("cannot compare time with %T", b)
		}
		switch {
		case at.Before(bt):
			return -1, nil
		case at.After(bt):
			return 1, nil
		default:
			return 0, nil
		}
	}

	if as, aok := a.(string); aok {
		bs, bok := b.(string)
		if !bok {
			return 0, fmt.Errorf("cannot compare string with %T", b)
		}
		switch {
		case as < bs:
			return -1, nil
		case as > bs:
			return 1, nil
		default:
			return 0, nil
		}
	}

	af, err := numericValue(a)
	if err != nil {
		return 0, err
	}
	bf, err := numericValue(b)
	if err != nil {
		return 0, err
	}
	switch {
	case af < bf:
		return -1, nil
	case af > bf:
		return 1, nil
	default:
		return 0, nil
	}
}

func compareFloat(value float64, op recordstore.Op, bound float64) (bool, error) {
	switch op {
	case recordstore.OpEq:
		return value == bound, nil
	case recordstore.OpGt:
		return value > bound, nil
	case recordstore.OpGte:
		return value >= bound, nil
	case recordstore.OpLte:
		return value <= bound, nil
	default:
		return false, fmt.Errorf("unsupported having op: %s", op)
	}
}

func numericValue(v any) (float64, error) {
	switch n := v.(type) {
	case int:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case float32:
		return float64(n), nil
	case float64:
		return n, nil
	case nil:
		return 0, nil
	default:
		return 0, fmt.Errorf("value %v (%T) is not numeric", v, v)
	}
}

func copyRecord(rec recordstore.Record) recordstore.Record {
	// Сохраняем копию, чтобы избежать непредсказуемых мутаций извне.
	cp := make(recordstore.Record, len(rec))
	for k, v := range rec {
		cp[k] = v
	}
	return cp
}

func projectRecord(rec recordstore.Record, columns []string) recordstore.Record {
	if len(columns) == 0 {
		return copyRecord(rec)
	}
	cp := make(recordstore.Record, len(columns))
	for _, col := range columns {
		cp[col] = rec[col]
	}
	return cp
}

var _ recordstore.Client = (*client)(nil)
