package component

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// PropError reports a property that could not be applied to a component.
type PropError struct {
	Prop   string // Property name
	Value  any    // Offending value
	Reason string // Human-readable reason
}

// Error returns the error message.
func (e *PropError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("component: prop %q: %s", e.Prop, e.Reason)
	}
	return fmt.Sprintf("component: prop %q (%v): %s", e.Prop, e.Value, e.Reason)
}

// Decode applies props to the struct pointed to by out. Fields already set on
// out act as defaults.
//
// Numeric fields accept numeric strings such as "3"; any other string is a
// *PropError. Keys that match no field are a *PropError as well.
func Decode(props Props, out any) error {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("component: decode target must be a struct pointer, got %T", out)
	}
	fields := propFields(rv.Elem().Type())

	input := make(map[string]any, len(props))
	for key, value := range props {
		kind, ok := fields[strings.ToLower(key)]
		if !ok {
			return &PropError{Prop: key, Reason: "unknown prop"}
		}
		converted, err := convertNumeric(key, value, kind)
		if err != nil {
			return err
		}
		input[key] = converted
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      out,
		ErrorUnused: true,
		TagName:     "mapstructure",
	})
	if err != nil {
		return fmt.Errorf("component: %w", err)
	}
	if err := dec.Decode(input); err != nil {
		return fmt.Errorf("component: decode props: %w", err)
	}
	return nil
}

// propFields maps lowercased prop names to the kind of the field they set.
func propFields(t reflect.Type) map[string]reflect.Kind {
	fields := make(map[string]reflect.Kind, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("mapstructure"), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = f.Name
		}
		fields[strings.ToLower(name)] = f.Type.Kind()
	}
	return fields
}

func convertNumeric(key string, value any, kind reflect.Kind) (any, error) {
	s, ok := value.(string)
	if !ok {
		return checkIntegral(key, value, kind)
	}
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return nil, &PropError{Prop: key, Value: s, Reason: "not an integer"}
		}
		return n, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return nil, &PropError{Prop: key, Value: s, Reason: "not a non-negative integer"}
		}
		return n, nil
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil, &PropError{Prop: key, Value: s, Reason: "not a number"}
		}
		return f, nil
	}
	return value, nil
}

// checkIntegral rejects fractional floats for integer fields, which
// mapstructure would otherwise truncate.
func checkIntegral(key string, value any, kind reflect.Kind) (any, error) {
	var f float64
	switch v := value.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	default:
		return value, nil
	}
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if f != math.Trunc(f) || math.IsInf(f, 0) {
			return nil, &PropError{Prop: key, Value: value, Reason: "not an integer"}
		}
	}
	return value, nil
}
