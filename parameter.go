package clicklite

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Parameter describes one formal parameter of a command: a single exported field of the
// command's argument struct.
type Parameter struct {
	// Name is the flag name: the cli tag if present, otherwise the lower-cased field
	// name.
	Name string

	// Type is the Go type of the underlying struct field.
	Type reflect.Type

	// Required is true iff the field carries no default tag.
	Required bool

	// Default holds the parsed default tag value, or nil when the parameter is
	// required.
	Default any

	// Description is back-filled from the Args section of the command's documentation
	// string. Possibly empty.
	Description string

	// fieldIndex locates the field within the argument struct for binding.
	fieldIndex int
}

var durationType = reflect.TypeOf(time.Duration(0))

// parameterFromField builds a Parameter from a reflected struct field. It accepts any so
// that misuse is reported with the offending type rather than a compile-time dead end in
// callers that juggle reflection values.
func parameterFromField(field any) (*Parameter, error) {
	sf, ok := field.(reflect.StructField)
	if !ok {
		return nil, &InvalidParameterError{
			Expected: "reflect.StructField",
			Actual:   fmt.Sprintf("%T", field),
		}
	}
	if !supportedFieldType(sf.Type) {
		return nil, fmt.Errorf("parameter %q has unsupported type %s", sf.Name, sf.Type)
	}

	name := strings.ToLower(sf.Name)
	if tag, ok := sf.Tag.Lookup("cli"); ok && tag != "" {
		name = tag
	}

	p := &Parameter{
		Name:     name,
		Type:     sf.Type,
		Required: true,
	}
	if raw, ok := sf.Tag.Lookup("default"); ok {
		def, err := convertDefault(sf.Type, raw)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: invalid default %q: %w", name, raw, err)
		}
		p.Default = def
		p.Required = false
	}
	return p, nil
}

func supportedFieldType(t reflect.Type) bool {
	if t == durationType {
		return true
	}
	switch t.Kind() {
	case reflect.String, reflect.Bool, reflect.Int, reflect.Int64,
		reflect.Uint, reflect.Uint64, reflect.Float64:
		return true
	}
	return false
}

// convertDefault parses a default tag into the field's type.
func convertDefault(t reflect.Type, raw string) (any, error) {
	if t == durationType {
		return time.ParseDuration(raw)
	}
	switch t.Kind() {
	case reflect.String:
		return raw, nil
	case reflect.Bool:
		return strconv.ParseBool(raw)
	case reflect.Int:
		v, err := strconv.ParseInt(raw, 10, 0)
		return int(v), err
	case reflect.Int64:
		return strconv.ParseInt(raw, 10, 64)
	case reflect.Uint:
		v, err := strconv.ParseUint(raw, 10, 0)
		return uint(v), err
	case reflect.Uint64:
		return strconv.ParseUint(raw, 10, 64)
	case reflect.Float64:
		return strconv.ParseFloat(raw, 64)
	}
	return nil, fmt.Errorf("unsupported type %s", t)
}
