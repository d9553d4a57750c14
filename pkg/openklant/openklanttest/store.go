package openklanttest

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// store keeps every collection in insertion order.
type store struct {
	mu      sync.RWMutex
	records map[string]map[string]map[string]any
	order   map[string][]string
	numbers map[string]int
}

func newStore() *store {
	return &store{
		records: make(map[string]map[string]map[string]any),
		order:   make(map[string][]string),
		numbers: make(map[string]int),
	}
}

func (s *store) put(path string, record map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	uuid, _ := record["uuid"].(string)

	if s.records[path] == nil {
		s.records[path] = make(map[string]map[string]any)
	}

	if _, exists := s.records[path][uuid]; !exists {
		s.order[path] = append(s.order[path], uuid)
	}

	s.records[path][uuid] = record
}

func (s *store) get(path, uuid string) (map[string]any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[path][uuid]

	return record, ok
}

func (s *store) exists(path, uuid string) bool {
	_, ok := s.get(path, uuid)

	return ok
}

// all returns the records of path in insertion order.
func (s *store) all(path string) []map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]map[string]any, 0, len(s.order[path]))
	for _, uuid := range s.order[path] {
		records = append(records, s.records[path][uuid])
	}

	return records
}

func (s *store) count(path string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.order[path])
}

// nextNumber returns the next ten digit nummer for path.
func (s *store) nextNumber(path string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.numbers[path]++

	return fmt.Sprintf("%010d", s.numbers[path])
}

func (s *store) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = make(map[string]map[string]map[string]any)
	s.order = make(map[string][]string)
	s.numbers = make(map[string]int)
}

// walk follows a dotted path through nested objects.
func walk(record map[string]any, path string) any {
	var current any = record

	for _, part := range strings.Split(path, ".") {
		object, ok := current.(map[string]any)
		if !ok {
			return nil
		}

		current = object[part]
	}

	return current
}

// lookup renders the value at path as a filter string.
func lookup(record map[string]any, path string) string {
	return scalar(walk(record, path))
}

// matches compares the value at path with want. When a path segment holds a
// list, any element may match.
func matches(value any, path []string, want string) bool {
	if len(path) == 0 {
		if list, ok := value.([]any); ok {
			for _, item := range list {
				if scalar(item) == want {
					return true
				}
			}

			return false
		}

		return scalar(value) == want
	}

	switch v := value.(type) {
	case map[string]any:
		return matches(v[path[0]], path[1:], want)
	case []any:
		for _, item := range v {
			if matches(item, path, want) {
				return true
			}
		}
	}

	return false
}

func scalar(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// clone deep-copies a decoded JSON value.
func clone(value any) any {
	switch v := value.(type) {
	case map[string]any:
		copied := make(map[string]any, len(v))
		for key, item := range v {
			copied[key] = clone(item)
		}

		return copied
	case []any:
		copied := make([]any, len(v))
		for i, item := range v {
			copied[i] = clone(item)
		}

		return copied
	default:
		return v
	}
}
