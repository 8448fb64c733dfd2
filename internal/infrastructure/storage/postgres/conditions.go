package postgres

import (
	"sort"

	"github.com/Masterminds/squirrel"
)

// BuildConditions turns a sparse filter map into a squirrel predicate.
//
// Keys with nil or empty-string values are dropped. Nested maps recurse into
// predicates on qualified "parent.child" columns (filtering by attributes of
// a related entity). Slices are leaf values: squirrel.Eq renders them as IN.
// Returns nil when nothing survives, so callers can skip the WHERE clause.
//
// Pure function: no side effects, no I/O. Callers own column naming; filter
// keys must never come verbatim from request input.
func BuildConditions(filter map[string]any) squirrel.Sqlizer {
	conj := appendConditions(squirrel.And{}, "", filter)
	if len(conj) == 0 {
		return nil
	}
	return conj
}

func appendConditions(conj squirrel.And, prefix string, filter map[string]any) squirrel.And {
	// Deterministic column order keeps generated SQL stable.
	keys := make([]string, 0, len(filter))
	for k := range filter {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		col := k
		if prefix != "" {
			col = prefix + "." + k
		}

		switch v := filter[k].(type) {
		case nil:
			continue
		case string:
			if v == "" {
				continue
			}
			conj = append(conj, squirrel.Eq{col: v})
		case map[string]any:
			conj = appendConditions(conj, col, v)
		default:
			conj = append(conj, squirrel.Eq{col: v})
		}
	}

	return conj
}
