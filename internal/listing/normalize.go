package listing

import (
	"bytes"
	"encoding/json"
	"math"
)

// Shape is the envelope a response matched.
type Shape int

const (
	ShapeUnmatched Shape = iota
	ShapeEnvelope        // {<key>: [...], total: n}
	ShapeArray           // [...]
)

func (s Shape) String() string {
	switch s {
	case ShapeEnvelope:
		return "envelope"
	case ShapeArray:
		return "array"
	default:
		return "unmatched"
	}
}

// Normalize decodes a list response. Rules are tried in order:
//  1. an object whose key holds an array and whose total is a non-negative integer
//  2. a bare array; total is its length
//  3. anything else is ShapeUnmatched with an empty result
//
// A bare array longer than req.Limit means the backend ignored limit/skip,
// so the requested page is cut out of it.
func Normalize[T any](raw []byte, key string, req PageRequest) (PageResult[T], Shape) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return PageResult[T]{Items: []T{}}, ShapeUnmatched
	}

	switch raw[0] {
	case '{':
		if res, ok := matchEnvelope[T](raw, key); ok {
			return res, ShapeEnvelope
		}
	case '[':
		if res, ok := matchArray[T](raw, req); ok {
			return res, ShapeArray
		}
	}
	return PageResult[T]{Items: []T{}}, ShapeUnmatched
}

func matchEnvelope[T any](raw []byte, key string) (PageResult[T], bool) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return PageResult[T]{}, false
	}

	rawItems, ok := obj[key]
	if !ok || !isArray(rawItems) {
		return PageResult[T]{}, false
	}
	rawTotal, ok := obj["total"]
	if !ok {
		return PageResult[T]{}, false
	}
	var total float64
	if err := json.Unmarshal(rawTotal, &total); err != nil {
		return PageResult[T]{}, false
	}
	if total < 0 || total != math.Trunc(total) || total > math.MaxInt32 {
		return PageResult[T]{}, false
	}

	items := []T{}
	if err := json.Unmarshal(rawItems, &items); err != nil {
		return PageResult[T]{}, false
	}
	return PageResult[T]{Items: items, Total: int(total)}, true
}

func matchArray[T any](raw []byte, req PageRequest) (PageResult[T], bool) {
	items := []T{}
	if err := json.Unmarshal(raw, &items); err != nil {
		return PageResult[T]{}, false
	}

	total := len(items)
	if req.Limit > 0 && total > req.Limit {
		start := min(req.Skip, total)
		end := min(start+req.Limit, total)
		items = items[start:end:end]
	}
	return PageResult[T]{Items: items, Total: total}, true
}

func isArray(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '['
}
