package models

import (
	"encoding/json"
	"strconv"
)

// Dashboard is the schema-less body of /api/dashboard/{role}. Keys differ
// per role and between server versions, so values are looked up by path.
type Dashboard map[string]any

// Int resolves a dotted path of keys (e.g. "applicationStats", "total")
// to an integer. Numbers, numeric strings and json.Number are accepted;
// anything else reports ok=false.
func (d Dashboard) Int(path ...string) (int, bool) {
	var cur any = map[string]any(d)
	for _, key := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return 0, false
		}
		cur, ok = m[key]
		if !ok || cur == nil {
			return 0, false
		}
	}
	return toInt(cur)
}

// FirstInt returns the first path that resolves, mirroring a chain of
// fallbacks between dashboard versions.
func (d Dashboard) FirstInt(paths ...[]string) (int, bool) {
	for _, p := range paths {
		if v, ok := d.Int(p...); ok {
			return v, true
		}
	}
	return 0, false
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	case int64:
		return int(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return int(f), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return int(f), true
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}
