package support_test

import (
	"reflect"
	"strconv"
	"testing"

	"github.com/hasbyte1/go-fluent/support"
)

func TestMapFunc(t *testing.T) {
	got := support.Map(fruit(), func(n int, k string) string {
		return k + "=" + strconv.Itoa(n)
	})
	assertSlice(t, keysOf(got), []string{"b", "a", "c"})
	assertSlice(t, valuesOf(got), []string{"b=2", "a=1", "c=3"})
}

func TestMapFuncKeepsSparseKeys(t *testing.T) {
	sparse := ints(1, 2, 3, 4).DropWhere(func(n, _ int) bool { return n%2 == 0 })
	got := support.Map(sparse, func(n, _ int) float64 { return float64(n) / 2 })
	assertSlice(t, keysOf(got), []int{0, 2})
	assertSlice(t, valuesOf(got), []float64{0.5, 1.5})
}

func TestReduceFunc(t *testing.T) {
	s := support.Reduce(fruit(), func(acc string, n int, k string) string {
		return acc + k + strconv.Itoa(n)
	}, "")
	if s != "b2a1c3" {
		t.Fatalf("Reduce = %q; want \"b2a1c3\"", s)
	}
}

func TestContains(t *testing.T) {
	m := support.List("a", "b", "")
	if !support.Contains(m, "b") {
		t.Fatal("Contains should be true")
	}
	if !support.Contains(m, "") {
		t.Fatal("Contains should find an empty value")
	}
	if support.Contains(m, "z") {
		t.Fatal("Contains should be false")
	}
	if support.Contains(support.New[string, int](), 0) {
		t.Fatal("Contains on empty should be false")
	}
}

func TestContainsUncomparableValues(t *testing.T) {
	m := support.List[any]([]int{1, 2}, "a", map[string]any{"k": 1}, nil)
	if !support.Contains(m, any([]int{1, 2})) {
		t.Fatal("Contains should find an equal slice")
	}
	if support.Contains(m, any([]int{2})) {
		t.Fatal("Contains should not match a different slice")
	}
	if !support.Contains(m, any(map[string]any{"k": 1})) {
		t.Fatal("Contains should find an equal map")
	}
	if !support.Contains(m, any("a")) {
		t.Fatal("Contains should still compare comparable values with ==")
	}
	if !support.Contains(m, nil) {
		t.Fatal("Contains should find a nil value")
	}
	if support.Contains(support.List[any]("x"), nil) {
		t.Fatal("Contains(nil) should be false without a nil value")
	}
}

func TestAppend(t *testing.T) {
	m := support.New[int, string]()
	if k := support.Append(m, "a"); k != 0 {
		t.Fatalf("Append on empty used key %d; want 0", k)
	}
	if k := support.Append(m, "b"); k != 1 {
		t.Fatalf("Append used key %d; want 1", k)
	}

	sparse := support.FromPairs(support.P(5, "x"), support.P(2, "y"))
	if k := support.Append(sparse, "z"); k != 6 {
		t.Fatalf("Append after max key 5 used key %d; want 6", k)
	}
	assertSlice(t, keysOf(sparse), []int{5, 2, 6})
}

type row = map[string]any

func sampleRows() *support.OrderedMap[int, row] {
	return support.List(
		row{"g": 1, "v": "a"},
		row{"g": 2, "v": "b"},
		row{"g": 1, "v": "c"},
	)
}

func TestGroupBy(t *testing.T) {
	got := support.GroupBy(sampleRows(),
		support.ByField[row]("g"),
		support.ByField[row]("v"),
		"name", "values")

	want := []row{
		{"name": 1, "values": []any{"a", "c"}},
		{"name": 2, "values": []any{"b"}},
	}
	assertSlice(t, keysOf(got), []int{0, 1})
	if !reflect.DeepEqual(valuesOf(got), want) {
		t.Fatalf("GroupBy = %v; want %v", valuesOf(got), want)
	}
}

func TestGroupByReindexesWhileDropWhereDoesNot(t *testing.T) {
	sparse := sampleRows().DropWhere(func(r row, _ int) bool { return r["v"] == "a" })
	assertSlice(t, keysOf(sparse), []int{1, 2})

	grouped := support.GroupBy(sparse, support.ByField[row]("g"), support.ByField[row]("v"), "g", "items")
	assertSlice(t, keysOf(grouped), []int{0, 1})
	first, _ := grouped.First()
	if first["g"] != 2 {
		t.Fatalf("first group = %v; want g=2 (first seen)", first)
	}
}

func TestGroupByNestedFieldNames(t *testing.T) {
	got := support.GroupBy(ints(1, 2, 3),
		func(n int) bool { return n%2 == 1 },
		func(n int) int { return n * n },
		"meta.odd", "meta.squares")
	first, _ := got.First()
	meta, ok := first["meta"].(map[string]any)
	if !ok {
		t.Fatalf("record = %v; want nested meta", first)
	}
	if meta["odd"] != true || !reflect.DeepEqual(meta["squares"], []int{1, 9}) {
		t.Fatalf("meta = %v", meta)
	}
}

func TestGroupsTyped(t *testing.T) {
	words := support.List("apple", "avocado", "banana", "blueberry", "cherry")
	got := support.Groups(words,
		func(s string) byte { return s[0] },
		func(s string) int { return len(s) })
	if got.Count() != 3 {
		t.Fatalf("Groups count = %d; want 3", got.Count())
	}
	g, _ := got.Last()
	if g.Name != 'c' || !reflect.DeepEqual(g.Values, []int{6}) {
		t.Fatalf("last group = %+v", g)
	}
}

func TestGroupByEmpty(t *testing.T) {
	got := support.GroupBy(support.New[string, row](), support.ByField[row]("g"), support.ByField[row]("v"), "n", "v")
	if !got.IsEmpty() {
		t.Fatalf("GroupBy on empty = %v", got)
	}
}

func TestByFieldOnOrderedMapRecords(t *testing.T) {
	rec := support.FromPairs(support.P[string, any]("user", row{"id": 7}))
	if v := support.ByField[*support.OrderedMap[string, any]]("user.id")(rec); v != 7 {
		t.Fatalf("ByField = %v; want 7", v)
	}
}

func TestPairString(t *testing.T) {
	if got := support.P("hello", 42).String(); got != "hello: 42" {
		t.Fatalf("Pair.String() = %q; want %q", got, "hello: 42")
	}
}
