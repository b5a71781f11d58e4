package telemetry

import (
	"fmt"
	"time"

	"github.com/meridian-labs/vita-cli/internal/core/domain"
)

// normaliseItem resolves one upstream item into a Record using the
// kind's field table. A missing or malformed day fails the record.
func normaliseItem(item map[string]any, kind domain.Kind, userID string) (domain.Record, error) {
	rawDay, ok := item["day"].(string)
	if !ok {
		return domain.Record{}, fmt.Errorf("%w: item has no day", domain.ErrInvalidInput)
	}
	day, err := time.Parse(domain.DayFormat, rawDay)
	if err != nil {
		return domain.Record{}, fmt.Errorf("%w: malformed day %q", domain.ErrInvalidInput, rawDay)
	}

	fields := make(map[string]float64)
	for _, spec := range fieldsOf[kind] {
		if v, ok := resolveField(item, spec); ok {
			fields[spec.name] = v
		}
	}

	return domain.Record{
		UserID: userID,
		Kind:   kind,
		Day:    day,
		Fields: fields,
	}, nil
}

// resolveField applies the alias table to one field. Scalar aliases are
// preferred over compound ones regardless of declaration order, matching
// the documented resolution rules.
func resolveField(item map[string]any, spec fieldSpec) (float64, bool) {
	// First pass: a scalar alias wins outright.
	for _, alias := range spec.aliases {
		if raw, present := item[alias]; present {
			if v, ok := asScalar(raw); ok {
				return v, true
			}
		}
	}

	// Second pass: reduce the first compound alias that yields a scalar.
	for _, alias := range spec.aliases {
		if raw, present := item[alias]; present {
			if v, ok := resolveScalar(raw); ok {
				return v, true
			}
		}
	}

	if spec.def != nil {
		return *spec.def, true
	}
	return 0, false
}

// asScalar reports a plain JSON number.
func asScalar(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}

// resolveScalar reduces a compound upstream value to a scalar:
//
//  1. an object's named average/mean/value field,
//  2. else the mean of an enclosed items list of {value: number},
//  3. else the first numeric element of a list (bare or {value: number}).
//
// Anything else does not resolve.
func resolveScalar(raw any) (float64, bool) {
	switch v := raw.(type) {
	case map[string]any:
		for _, key := range []string{"average", "mean", "value"} {
			if n, ok := asScalar(v[key]); ok {
				return n, true
			}
		}
		if items, ok := v["items"].([]any); ok {
			if mean, ok := meanOfValueItems(items); ok {
				return mean, true
			}
		}
	case []any:
		if len(v) == 0 {
			return 0, false
		}
		if n, ok := asScalar(v[0]); ok {
			return n, true
		}
		if first, ok := v[0].(map[string]any); ok {
			if n, ok := asScalar(first["value"]); ok {
				return n, true
			}
		}
	}
	return 0, false
}

// meanOfValueItems averages the numeric "value" entries of an items list.
func meanOfValueItems(items []any) (float64, bool) {
	var sum float64
	var count int
	for _, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if n, ok := asScalar(entry["value"]); ok {
			sum += n
			count++
		}
	}
	if count == 0 {
		return 0, false
	}
	return sum / float64(count), true
}
