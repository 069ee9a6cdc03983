// Package strset implements a set of strings.
package strset

import (
	"sort"
)

type Set struct {
	items map[string]struct{}
}

func New(items ...string) *Set {
	result := &Set{make(map[string]struct{})}
	return result.Add(items...)
}

func (s *Set) Add(items ...string) *Set {
	for _, item := range items {
		s.items[item] = struct{}{}
	}
	return s
}

func (s *Set) Remove(items ...string) *Set {
	for _, item := range items {
		delete(s.items, item)
	}
	return s
}

func (s *Set) Contains(item string) bool {
	_, found := s.items[item]
	return found
}

func (s *Set) Copy() *Set {
	result := New()
	for item := range s.items {
		result.items[item] = struct{}{}
	}
	return result
}

func (s *Set) IsEmpty() bool {
	return len(s.items) == 0
}

func (s *Set) Len() int {
	return len(s.items)
}

// ToSlice returns the set items in lexicographic order.
func (s *Set) ToSlice() []string {
	result := make([]string, 0, len(s.items))
	for item := range s.items {
		result = append(result, item)
	}
	sort.Strings(result)
	return result
}
