// File: slicex_test.go
// Title: Slice Helper Tests
// Description: Tests for building, reshaping and predicate helpers.
// Author: ersinkoc
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19

package slicex

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRange(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
		want       []int
	}{
		{"weekdays", 0, 7, []int{0, 1, 2, 3, 4, 5, 6}},
		{"offset", 3, 5, []int{3, 4}},
		{"empty", 5, 5, nil},
		{"reversed", 5, 1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Range(tt.start, tt.end)); diff != "" {
				t.Errorf("Range() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFillAndMap(t *testing.T) {
	squares := Fill(4, func(i int) int { return i * i })
	if diff := cmp.Diff([]int{0, 1, 4, 9}, squares); diff != "" {
		t.Errorf("Fill() mismatch (-want +got):\n%s", diff)
	}
	if got := Fill[int](0, func(i int) int { return i }); got != nil {
		t.Errorf("Fill(0) = %v, want nil", got)
	}

	labels := Map(squares, strconv.Itoa)
	if diff := cmp.Diff([]string{"0", "1", "4", "9"}, labels); diff != "" {
		t.Errorf("Map() mismatch (-want +got):\n%s", diff)
	}
	if got := Map[int, string](nil, strconv.Itoa); got != nil {
		t.Errorf("Map(nil) = %v, want nil", got)
	}
}

func TestFilter(t *testing.T) {
	zones := []string{"Europe/Berlin", "Asia/Tokyo", "Europe/Istanbul"}
	got := Filter(zones, func(z string) bool { return z[:6] == "Europe" })
	if diff := cmp.Diff([]string{"Europe/Berlin", "Europe/Istanbul"}, got); diff != "" {
		t.Errorf("Filter() mismatch (-want +got):\n%s", diff)
	}
	if got := Filter[string](nil, func(string) bool { return true }); got != nil {
		t.Errorf("Filter(nil) = %v, want nil", got)
	}
}

func TestChunk(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		size  int
		want  [][]int
	}{
		{"even rows", []int{1, 2, 3, 4}, 2, [][]int{{1, 2}, {3, 4}}},
		{"short last row", []int{1, 2, 3, 4, 5}, 2, [][]int{{1, 2}, {3, 4}, {5}}},
		{"one row", []int{1, 2}, 7, [][]int{{1, 2}}},
		{"zero size", []int{1, 2}, 0, nil},
		{"nil input", nil, 3, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Chunk(tt.input, tt.size)); diff != "" {
				t.Errorf("Chunk() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFlattenUndoesChunk(t *testing.T) {
	input := Range(1, 32)
	if diff := cmp.Diff(input, Flatten(Chunk(input, 7))); diff != "" {
		t.Errorf("Flatten(Chunk()) mismatch (-want +got):\n%s", diff)
	}
	if got := Flatten[int](nil); got != nil {
		t.Errorf("Flatten(nil) = %v, want nil", got)
	}
}

func TestRotate(t *testing.T) {
	week := []int{0, 1, 2, 3, 4, 5, 6}

	tests := []struct {
		n    int
		want []int
	}{
		{0, []int{0, 1, 2, 3, 4, 5, 6}},
		{1, []int{1, 2, 3, 4, 5, 6, 0}},
		{6, []int{6, 0, 1, 2, 3, 4, 5}},
		{8, []int{1, 2, 3, 4, 5, 6, 0}},
		{-1, []int{6, 0, 1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.n), func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Rotate(week, tt.n)); diff != "" {
				t.Errorf("Rotate(%d) mismatch (-want +got):\n%s", tt.n, diff)
			}
		})
	}

	if week[0] != 0 {
		t.Error("Rotate() modified its input")
	}
	if got := Rotate([]int{}, 3); got != nil {
		t.Errorf("Rotate(empty) = %v, want nil", got)
	}
}

func TestSomeAndCount(t *testing.T) {
	days := []int{6, 7, 13, 14, 20}
	weekend := func(d int) bool { return d%7 == 6 || d%7 == 0 }

	if !Some(days, weekend) {
		t.Error("Some() = false, want true")
	}
	if Some(days, func(d int) bool { return d > 31 }) {
		t.Error("Some() = true, want false")
	}
	if got := Count(days, weekend); got != 5 {
		t.Errorf("Count() = %d, want 5", got)
	}
	if Some(days, nil) || Count(days, nil) != 0 {
		t.Error("nil predicate matched")
	}
}
