package fst

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/derekparker/trie"
)

func insertAll(t *testing.T, store *MemStore[int64], pairs []struct {
	key   string
	value int64
}) {
	t.Helper()
	for _, p := range pairs {
		if err := store.InsertString(p.key, p.value); err != nil {
			t.Fatalf("insert %q failed: %v", p.key, err)
		}
	}
}

func TestStoreInsertAndLookup(t *testing.T) {
	store := NewMemStore[int64](IntOutputs{})
	insertAll(t, store, []struct {
		key   string
		value int64
	}{{"cat", 5}, {"car", 9}})
	store.Freeze()
	if v, ok := LookupString(store, "cat"); !ok || v != 5 {
		t.Fatalf("cat should be 5, is %d (found=%v)", v, ok)
	}
	if v, ok := LookupString(store, "car"); !ok || v != 9 {
		t.Fatalf("car should be 9, is %d (found=%v)", v, ok)
	}
}

func TestStoreTraversalBeforeFreeze(t *testing.T) {
	store := NewMemStore[int64](IntOutputs{})
	insertAll(t, store, []struct {
		key   string
		value int64
	}{{"cat", 5}, {"car", 9}, {"cattle", 12}})
	before := make(map[string]int64)
	for _, probe := range []string{"cat", "car", "cattle"} {
		v, ok := LookupString(store, probe)
		if !ok {
			t.Fatalf("%q should be accepted before Freeze", probe)
		}
		before[probe] = v
	}
	store.Freeze()
	for probe, want := range before {
		if v, ok := LookupString(store, probe); !ok || v != want {
			t.Fatalf("%q should still be %d after Freeze, is %d (found=%v)", probe, want, v, ok)
		}
	}
	if _, ok := LookupString(store, "ca"); ok {
		t.Fatalf("prefix ca must not be accepted")
	}
}

func TestStoreInsertOrderIndependence(t *testing.T) {
	pairs := []struct {
		key   string
		value int64
	}{{"a", 5}, {"ab", 2}, {"abc", 11}}
	reversed := []struct {
		key   string
		value int64
	}{{"abc", 11}, {"ab", 2}, {"a", 5}}

	forward := NewMemStore[int64](IntOutputs{})
	insertAll(t, forward, pairs)
	forward.Freeze()
	backward := NewMemStore[int64](IntOutputs{})
	insertAll(t, backward, reversed)
	backward.Freeze()

	for _, p := range pairs {
		fv, fok := LookupString(forward, p.key)
		bv, bok := LookupString(backward, p.key)
		if !fok || !bok || fv != p.value || bv != p.value {
			t.Fatalf("%q should be %d in both orders, is %d/%d (found=%v/%v)",
				p.key, p.value, fv, bv, fok, bok)
		}
	}
	for _, probe := range []string{"b", "ac", "abcd"} {
		if _, ok := LookupString(forward, probe); ok {
			t.Fatalf("%q must not be accepted", probe)
		}
	}
}

func TestStoreDuplicateKey(t *testing.T) {
	store := NewMemStore[int64](IntOutputs{})
	if err := store.InsertString("cat", 5); err != nil {
		t.Fatal(err)
	}
	if err := store.InsertString("cat", 7); err == nil {
		t.Fatalf("expected duplicate key error")
	}
	store.Freeze()
	if v, ok := LookupString(store, "cat"); !ok || v != 5 {
		t.Fatalf("cat should still be 5 after rejected duplicate, is %d (found=%v)", v, ok)
	}
}

func TestStoreFrozenInsert(t *testing.T) {
	store := NewMemStore[int64](IntOutputs{})
	store.Freeze()
	if err := store.InsertString("late", 1); err == nil {
		t.Fatalf("expected error inserting into a frozen store")
	}
}

func TestStoreDirectLayout(t *testing.T) {
	store := NewMemStore[int64](IntOutputs{})
	for i, c := range "abcdefghijkl" {
		if err := store.InsertString(string(c), int64(i)); err != nil {
			t.Fatal(err)
		}
	}
	store.Freeze()
	var arc Arc[int64]
	store.StartArc(&arc)
	if !store.ExpandedTarget(&arc) {
		t.Fatalf("start state with 12 dense arcs should use the direct layout")
	}
	stats := store.Stats()
	if stats.DirectStates != 1 {
		t.Fatalf("expected exactly one direct state\n%s", spew.Sdump(stats))
	}
	if stats.FillRatio() != 1.0 {
		t.Fatalf("dense window should be fully occupied\n%s", spew.Sdump(stats))
	}
	for i, c := range "abcdefghijkl" {
		if v, ok := LookupString(store, string(c)); !ok || v != int64(i) {
			t.Fatalf("%c should be %d, is %d (found=%v)", c, i, v, ok)
		}
	}
	if _, ok := LookupString(store, "m"); ok {
		t.Fatalf("m lies outside the window and must not be accepted")
	}
}

func TestStoreSparseStateStaysSequential(t *testing.T) {
	store := NewMemStore[int64](IntOutputs{})
	labels := []Label{'a', 'z', 0x100, 0x200, 0x300, 0x400}
	for i, l := range labels {
		if err := store.Insert([]Label{l}, int64(i+1)); err != nil {
			t.Fatal(err)
		}
	}
	store.Freeze()
	var arc Arc[int64]
	store.StartArc(&arc)
	if store.ExpandedTarget(&arc) {
		t.Fatalf("sparse state should stay in the sequential layout")
	}
	if stats := store.Stats(); stats.DirectStates != 0 {
		t.Fatalf("expected no direct states\n%s", spew.Sdump(stats))
	}
	if v, ok := Lookup(store, []Label{0x300}); !ok || v != 5 {
		t.Fatalf("label 0x300 should map to 5, is %d (found=%v)", v, ok)
	}
}

func TestStoreStats(t *testing.T) {
	store := NewMemStore[int64](IntOutputs{})
	insertAll(t, store, []struct {
		key   string
		value int64
	}{{"cat", 5}, {"car", 9}})
	if store.Stats() != (StoreStats{}) {
		t.Fatalf("stats should be zero before Freeze")
	}
	store.Freeze()
	stats := store.Stats()
	if stats.States != 5 || stats.Arcs != 4 || stats.TotalSlots != 4 {
		t.Fatalf("unexpected table dimensions\n%s", spew.Sdump(stats))
	}
	if fill := stats.FillRatio(); fill <= 0 || fill > 1 {
		t.Fatalf("expected fill ratio in (0,1], got %f", fill)
	}
	if store.NumKeys() != 2 {
		t.Fatalf("store should hold 2 keys, holds %d", store.NumKeys())
	}
}

func TestStoreAgainstTrieOracle(t *testing.T) {
	words := []struct {
		key   string
		value int64
	}{
		{"car", 9}, {"cat", 5}, {"cattle", 12}, {"dog", 1}, {"do", 0},
		{"door", 17}, {"d", 3}, {"zebra", 44}, {"zeal", 8}, {"z", 2},
		{"für", 7}, {"fürung", 21},
	}
	oracle := trie.New()
	store := NewMemStore[int64](IntOutputs{})
	for _, w := range words {
		oracle.Add(w.key, w.value)
		if err := store.InsertString(w.key, w.value); err != nil {
			t.Fatalf("insert %q failed: %v", w.key, err)
		}
	}
	store.Freeze()
	probes := []string{
		"car", "cat", "cattle", "dog", "do", "door", "d",
		"zebra", "zeal", "z", "für", "fürung",
		"ca", "cars", "catt", "doo", "zeb", "x", "fü", "zebras",
	}
	for _, probe := range probes {
		node, found := oracle.Find(probe)
		value, ok := LookupString(store, probe)
		if found != ok {
			t.Fatalf("acceptance of %q: oracle says %v, store says %v\n%s",
				probe, found, ok, spew.Sdump(store.Stats()))
		}
		if !ok {
			continue
		}
		if want := node.Meta().(int64); value != want {
			t.Fatalf("value of %q should be %d, is %d", probe, want, value)
		}
	}
}
