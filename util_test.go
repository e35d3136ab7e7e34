package main

import (
	"fmt"
	"testing"
)

func TestSliceToSlice(t *testing.T) {
	got := SliceToSlice([]int{1, 2, 3}, func(v int) int { return v * v })
	want := []int{1, 4, 9}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %d, want %d", i, got[i], want[i])
		}
	}
	if SliceToSlice(nil, func(v int) int { return v }) != nil {
		t.Error("nil in should give nil out")
	}
}

func TestFilterSlice(t *testing.T) {
	got := FilterSlice([]int{1, 2, 3, 4}, func(v int) bool { return v%2 == 0 })
	if len(got) != 2 || got[0] != 2 || got[1] != 4 {
		t.Errorf("got %v", got)
	}
}

func TestFind(t *testing.T) {
	in := []string{"cat", "dog", "rabbit"}
	if idx := Find(in, func(v string) bool { return v == "dog" }); idx != 1 {
		t.Errorf("Find = %d, want 1", idx)
	}
	if idx := Find(in, func(v string) bool { return v == "horse" }); idx != -1 {
		t.Errorf("Find of missing = %d, want -1", idx)
	}
}

func TestSliceToMap(t *testing.T) {
	got := SliceToMap([]string{"a", "bb"}, func(v string) (string, int) { return v, len(v) })
	if got["a"] != 1 || got["bb"] != 2 {
		t.Errorf("got %v", got)
	}
}

func TestSliceToMapErr(t *testing.T) {
	got, err := SliceToMapErr([]string{"x", "y"}, func(i int, v string) (string, int, error) {
		return v, i, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if got["x"] != 0 || got["y"] != 1 {
		t.Errorf("got %v", got)
	}
	if _, err := SliceToMapErr(nil, func(i int, v string) (string, int, error) { return v, i, nil }); err == nil {
		t.Error("expected error for nil slice")
	}
	if _, err := SliceToMapErr([]string{"x"}, func(i int, v string) (string, int, error) {
		return v, i, fmt.Errorf("boom")
	}); err == nil {
		t.Error("expected error to propagate")
	}
}
