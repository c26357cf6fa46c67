package content

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"

	"snapassert/internal/snaperr"
)

// Stringify converts a value into the text stored in a string snapshot.
//
//   - nil, strings, byte slices, booleans and numbers render directly
//   - fmt.Stringer and error values use their own text
//   - slices, arrays and maps render as compact JSON
//   - structs, and pointers to them, render as indented JSON
//
// Channels, functions, complex numbers and raw pointers are rejected with
// snaperr.ErrInvalidInput.
func Stringify(v any) (string, error) {
	// A typed nil renders like nil, before any method is called on it.
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return "", nil
	}

	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	case []byte:
		return string(x), nil
	case fmt.Stringer:
		return x.String(), nil
	case error:
		return x.Error(), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64), nil
	case reflect.String:
		return rv.String(), nil
	case reflect.Slice, reflect.Array, reflect.Map:
		return marshal(v, false)
	case reflect.Struct:
		return marshal(v, true)
	case reflect.Pointer:
		if rv.Elem().Kind() == reflect.Struct {
			return marshal(v, true)
		}
		return Stringify(rv.Elem().Interface())
	}
	return "", fmt.Errorf("%w: cannot stringify a value of kind %s", snaperr.ErrInvalidInput, rv.Kind())
}

func marshal(v any, pretty bool) (string, error) {
	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = json.MarshalIndent(v, "", "    ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", snaperr.ErrInvalidInput, err)
	}
	return string(data), nil
}
