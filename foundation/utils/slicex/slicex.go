// File: slicex.go
// Title: Slice Helpers
// Description: Generic slice helpers used to lay out calendar grids and
//              filter listings: building, chunking, rotating and testing
//              slices.
// Author: ersinkoc
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19

package slicex

// ===============================
// Building
// ===============================

// Range returns the integers in [start, end)
func Range(start, end int) []int {
	if start >= end {
		return nil
	}
	result := make([]int, end-start)
	for i := range result {
		result[i] = start + i
	}
	return result
}

// Fill returns length elements produced by generator from their index
func Fill[T any](length int, generator func(int) T) []T {
	if length <= 0 || generator == nil {
		return nil
	}
	result := make([]T, length)
	for i := range result {
		result[i] = generator(i)
	}
	return result
}

// Map transforms each element
func Map[T, R any](slice []T, mapper func(T) R) []R {
	if slice == nil || mapper == nil {
		return nil
	}
	result := make([]R, len(slice))
	for i, item := range slice {
		result[i] = mapper(item)
	}
	return result
}

// Filter keeps the elements matching predicate
func Filter[T any](slice []T, predicate func(T) bool) []T {
	if slice == nil || predicate == nil {
		return nil
	}
	result := make([]T, 0, len(slice))
	for _, item := range slice {
		if predicate(item) {
			result = append(result, item)
		}
	}
	return result
}

// ===============================
// Reshaping
// ===============================

// Chunk splits slice into rows of size elements; the last row may be
// shorter.
func Chunk[T any](slice []T, size int) [][]T {
	if slice == nil || size <= 0 {
		return nil
	}
	chunks := make([][]T, 0, (len(slice)+size-1)/size)
	for i := 0; i < len(slice); i += size {
		chunks = append(chunks, slice[i:min(i+size, len(slice))])
	}
	return chunks
}

// Flatten concatenates rows
func Flatten[T any](rows [][]T) []T {
	if rows == nil {
		return nil
	}
	total := 0
	for _, row := range rows {
		total += len(row)
	}
	result := make([]T, 0, total)
	for _, row := range rows {
		result = append(result, row...)
	}
	return result
}

// Rotate returns a copy of slice shifted left by n, so that slice[n] comes
// first. Negative n shifts right.
func Rotate[T any](slice []T, n int) []T {
	if len(slice) == 0 {
		return nil
	}
	n = ((n % len(slice)) + len(slice)) % len(slice)
	result := make([]T, 0, len(slice))
	result = append(result, slice[n:]...)
	return append(result, slice[:n]...)
}

// ===============================
// Predicates
// ===============================

// Some reports whether any element matches predicate
func Some[T any](slice []T, predicate func(T) bool) bool {
	if predicate == nil {
		return false
	}
	for _, item := range slice {
		if predicate(item) {
			return true
		}
	}
	return false
}

// Count returns the number of elements matching predicate
func Count[T any](slice []T, predicate func(T) bool) int {
	if predicate == nil {
		return 0
	}
	count := 0
	for _, item := range slice {
		if predicate(item) {
			count++
		}
	}
	return count
}
