package reconcile

import (
	"reflect"
	"testing"
)

type item struct {
	id      string
	enabled bool
}

func itemKey(i item) string { return i.id }

func newItem(id string) item { return item{id: id, enabled: true} }

func TestMergeDropsAndAppends(t *testing.T) {
	persisted := []item{{"b", false}, {"gone", true}, {"a", false}}
	discovered := []string{"a", "b", "c", "d"}

	got := Merge(persisted, discovered, itemKey, newItem)
	want := []item{{"b", false}, {"a", false}, {"c", true}, {"d", true}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Merge = %#v, want %#v", got, want)
	}
	if len(persisted) != 3 || persisted[1].id != "gone" {
		t.Fatal("Merge must not modify the persisted slice")
	}
}

func TestMergeIsIdempotent(t *testing.T) {
	persisted := []item{{"x", false}, {"y", true}}
	discovered := []string{"z", "y", "w"}

	first := Merge(persisted, discovered, itemKey, newItem)
	second := Merge(first, discovered, itemKey, newItem)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("second merge differs: %#v vs %#v", first, second)
	}
}

func TestMergeAppendsRepeatedKeyOnce(t *testing.T) {
	got := Merge(nil, []string{"a", "a", "b"}, itemKey, newItem)
	if len(got) != 2 || got[0].id != "a" || got[1].id != "b" {
		t.Fatalf("unexpected merge result %#v", got)
	}
}

func TestMergeKeepsFirstPersistedDuplicate(t *testing.T) {
	persisted := []item{{"a", false}, {"b", false}, {"a", true}, {"b", true}}
	got := Merge(persisted, []string{"b", "a"}, itemKey, newItem)
	want := []item{{"a", false}, {"b", false}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Merge = %#v, want %#v", got, want)
	}
	if again := Merge(got, []string{"b", "a"}, itemKey, newItem); !reflect.DeepEqual(again, want) {
		t.Fatalf("second merge = %#v, want %#v", again, want)
	}
}

func TestMergeEmpty(t *testing.T) {
	if got := Merge(nil, []string(nil), itemKey, newItem); len(got) != 0 {
		t.Fatalf("expected empty result, got %#v", got)
	}
	if got := Merge([]item{{"a", true}}, nil, itemKey, newItem); len(got) != 0 {
		t.Fatalf("expected all entries dropped, got %#v", got)
	}
}

func TestDropped(t *testing.T) {
	got := Dropped([]item{{"a", true}, {"b", true}, {"c", true}}, []string{"b"}, itemKey)
	if !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Fatalf("Dropped = %v", got)
	}
}
