// Package recordstore задаёт обобщённую модель табличного хранилища:
// фильтруемые select/insert/update/delete и простые агрегатные запросы.
// Конкретные реализации — postgres (продакшен) и memory (тесты, демо).
package recordstore

import "context"

// Record — сырая запись таблицы. За пределы слоя доступа не выходит:
// репозитории превращают записи в типизированные доменные структуры.
type Record map[string]any

// Op — оператор сравнения в фильтре.
type Op string

const (
	OpEq  Op = "="
	OpGt  Op = ">"
	OpGte Op = ">="
	OpLte Op = "<="
)

// Filter ограничивает выборку по значению одной колонки.
type Filter struct {
	Column string
	Op     Op
	Value  any
}

// Eq — сокращение для самого частого фильтра "колонка = значение".
func Eq(column string, value any) Filter {
	return Filter{Column: column, Op: OpEq, Value: value}
}

// Query описывает select-запрос к одной таблице.
type Query struct {
	Table string
	// Columns пуст — выбираются все колонки таблицы.
	Columns []string
	Filters []Filter
	OrderBy string
	Desc    bool
	// Limit <= 0 — без ограничения.
	Limit int
}

// AggFunc — агрегатная функция запроса.
type AggFunc string

const (
	AggSum   AggFunc = "sum"
	AggCount AggFunc = "count"
)

// Having фильтрует группы по значению агрегата.
type Having struct {
	Op    Op
	Value float64
}

// AggregateQuery описывает агрегатный запрос: func(column) [group by GroupBy].
// Пустой GroupBy означает единственную строку-итог по всей выборке.
type AggregateQuery struct {
	Table   string
	Func    AggFunc
	Column  string
	GroupBy string
	Filters []Filter
	Having  *Having
	// Desc сортирует группы по убыванию значения агрегата.
	Desc  bool
	Limit int
}

// AggregateRow — одна строка результата агрегатного запроса.
type AggregateRow struct {
	// Group — значение группирующей колонки; nil для запроса без группировки.
	Group any
	Value float64
}

// Client — клиент Record Store. Каждый вызов фиксируется независимо:
// транзакций, охватывающих несколько вызовов, модель не предоставляет.
type Client interface {
	Select(ctx context.Context, q Query) ([]Record, error)
	Insert(ctx context.Context, table string, rec Record) error
	Update(ctx context.Context, table string, fields Record, filters []Filter) error
	Delete(ctx context.Context, table string, filters []Filter) error
	Aggregate(ctx context.Context, q AggregateQuery) ([]AggregateRow, error)
}
