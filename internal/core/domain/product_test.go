package domain

import (
	"reflect"
	"testing"
)

func TestSummarizeByCategory_Empty(t *testing.T) {
	summaries := SummarizeByCategory(nil)
	if len(summaries) != 0 {
		t.Fatalf("expected empty summaries, got %v", summaries)
	}
}

func TestSummarizeByCategory_GroupsAndSorts(t *testing.T) {
	products := []Product{
		{Category: "B", Price: 1, Stock: 0},
		{Category: "A", Price: 10, Stock: 2},
		{Category: "A", Price: 5, Stock: 1},
	}

	got := SummarizeByCategory(products)
	want := []CategorySummary{
		{Category: "A", Count: 2, TotalStock: 3, TotalValue: 25.00},
		{Category: "B", Count: 1, TotalStock: 0, TotalValue: 0.00},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestSummarizeByCategory_RoundsToTwoDecimals(t *testing.T) {
	products := []Product{
		{Category: "A", Price: 0.1, Stock: 3},
		{Category: "A", Price: 0.035, Stock: 1},
	}

	got := SummarizeByCategory(products)
	if len(got) != 1 {
		t.Fatalf("expected one summary, got %d", len(got))
	}
	if got[0].TotalValue != 0.34 {
		t.Fatalf("expected total value 0.34, got %v", got[0].TotalValue)
	}
}

func TestSummarizeByCategory_CaseSensitiveLabels(t *testing.T) {
	products := []Product{
		{Category: "Tools", Price: 1, Stock: 1},
		{Category: "tools", Price: 1, Stock: 1},
	}

	got := SummarizeByCategory(products)
	if len(got) != 2 {
		t.Fatalf("expected distinct groups for Tools/tools, got %+v", got)
	}
	if got[0].Category != "Tools" || got[1].Category != "tools" {
		t.Fatalf("unexpected order: %+v", got)
	}
}
