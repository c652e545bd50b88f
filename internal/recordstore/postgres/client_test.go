package postgres

import (
	"testing"

	"github.com/vladislavdragonenkov/retail/internal/recordstore"
)

func TestBuildSelect(t *testing.T) {
	query, args, err := buildSelect(recordstore.Query{
		Table:   "orders",
		Filters: []recordstore.Filter{recordstore.Eq("customer_id", int64(7))},
		OrderBy: "order_id",
		Desc:    true,
		Limit:   1,
	})
	if err != nil {
		t.Fatalf("buildSelect failed: %v", err)
	}

	want := "SELECT * FROM orders WHERE customer_id = $1 ORDER BY order_id DESC LIMIT 1"
	if query != want {
		t.Errorf("unexpected query:\n got %q\nwant %q", query, want)
	}
	if len(args) != 1 || args[0] != int64(7) {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestBuildSelect_Columns(t *testing.T) {
	query, _, err := buildSelect(recordstore.Query{
		Table:   "products",
		Columns: []string{"price"},
		Filters: []recordstore.Filter{recordstore.Eq("product_id", int64(1))},
	})
	if err != nil {
		t.Fatalf("buildSelect failed: %v", err)
	}

	want := "SELECT price FROM products WHERE product_id = $1"
	if query != want {
		t.Errorf("unexpected query:\n got %q\nwant %q", query, want)
	}
}

func TestBuildInsert_SortsColumns(t *testing.T) {
	query, args, err := buildInsert("customers", recordstore.Record{
		"name":  "Anna",
		"email": "anna@example.com",
	})
	if err != nil {
		t.Fatalf("buildInsert failed: %v", err)
	}

	want := "INSERT INTO customers (email, name) VALUES ($1, $2)"
	if query != want {
		t.Errorf("unexpected query:\n got %q\nwant %q", query, want)
	}
	if len(args) != 2 || args[0] != "anna@example.com" || args[1] != "Anna" {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestBuildInsert_EmptyRecord(t *testing.T) {
	if _, _, err := buildInsert("customers", recordstore.Record{}); err == nil {
		t.Fatal("expected error for empty record")
	}
}

func TestBuildUpdate(t *testing.T) {
	query, args, err := buildUpdate("products",
		recordstore.Record{"stock": int64(3)},
		[]recordstore.Filter{recordstore.Eq("product_id", int64(5))})
	if err != nil {
		t.Fatalf("buildUpdate failed: %v", err)
	}

	want := "UPDATE products SET stock = $1 WHERE product_id = $2"
	if query != want {
		t.Errorf("unexpected query:\n got %q\nwant %q", query, want)
	}
	if len(args) != 2 || args[0] != int64(3) || args[1] != int64(5) {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestBuildDelete(t *testing.T) {
	query, args, err := buildDelete("customers",
		[]recordstore.Filter{recordstore.Eq("customer_id", int64(2))})
	if err != nil {
		t.Fatalf("buildDelete failed: %v", err)
	}

	want := "DELETE FROM customers WHERE customer_id = $1"
	if query != want {
		t.Errorf("unexpected query:\n got %q\nwant %q", query, want)
	}
	if len(args) != 1 {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestBuildAggregate_GroupByHaving(t *testing.T) {
	query, args, err := buildAggregate(recordstore.AggregateQuery{
		Table:   "orders",
		Func:    recordstore.AggCount,
		Column:  "order_id",
		GroupBy: "customer_id",
		Having:  &recordstore.Having{Op: recordstore.OpGt, Value: 2},
	})
	if err != nil {
		t.Fatalf("buildAggregate failed: %v", err)
	}

	want := "SELECT customer_id, COALESCE(COUNT(order_id), 0) FROM orders GROUP BY customer_id HAVING COUNT(order_id) > $1 ORDER BY 2"
	if query != want {
		t.Errorf("unexpected query:\n got %q\nwant %q", query, want)
	}
	if len(args) != 1 || args[0] != float64(2) {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestBuildAggregate_SumWithFilters(t *testing.T) {
	query, args, err := buildAggregate(recordstore.AggregateQuery{
		Table:  "orders",
		Func:   recordstore.AggSum,
		Column: "total_amount",
		Filters: []recordstore.Filter{
			recordstore.Eq("status", "COMPLETED"),
			{Column: "created_at", Op: recordstore.OpGte, Value: "2026-07-01"},
			{Column: "created_at", Op: recordstore.OpLte, Value: "2026-07-31"},
		},
	})
	if err != nil {
		t.Fatalf("buildAggregate failed: %v", err)
	}

	want := "SELECT COALESCE(SUM(total_amount), 0) FROM orders WHERE status = $1 AND created_at >= $2 AND created_at <= $3"
	if query != want {
		t.Errorf("unexpected query:\n got %q\nwant %q", query, want)
	}
	if len(args) != 3 {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestBuildAggregate_TopProducts(t *testing.T) {
	query, _, err := buildAggregate(recordstore.AggregateQuery{
		Table:   "order_items",
		Func:    recordstore.AggSum,
		Column:  "quantity",
		GroupBy: "product_id",
		Desc:    true,
		Limit:   5,
	})
	if err != nil {
		t.Fatalf("buildAggregate failed: %v", err)
	}

	want := "SELECT product_id, COALESCE(SUM(quantity), 0) FROM order_items GROUP BY product_id ORDER BY 2 DESC LIMIT 5"
	if query != want {
		t.Errorf("unexpected query:\n got %q\nwant %q", query, want)
	}
}

func TestCheckIdent_RejectsInjection(t *testing.T) {
	bad := []string{
		"orders; DROP TABLE orders",
		"Orders",
		"1orders",
		"",
		"total-amount",
	}
	for _, name := range bad {
		if err := checkIdent(name); err == nil {
			t.Errorf("expected identifier %q to be rejected", name)
		}
	}
	if err := checkIdent("order_items"); err != nil {
		t.Errorf("valid identifier rejected: %v", err)
	}
}

func TestBuildSelect_InvalidTable(t *testing.T) {
	if _, _, err := buildSelect(recordstore.Query{Table: "orders; --"}); err == nil {
		t.Fatal("expected error for invalid table name")
	}
}

func TestNormalizeValue(t *testing.T) {
	if got := normalizeValue([]byte("hello")); got != "hello" {
		t.Errorf("expected bytes to become string, got %v", got)
	}
	if got := normalizeValue(int64(5)); got != int64(5) {
		t.Errorf("expected passthrough, got %v", got)
	}
}
