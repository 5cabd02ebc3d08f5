package configparser

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"time"
)

var ErrNotStructPointer = errors.New("destination must be a non-nil pointer to a struct")

var durationType = reflect.TypeOf(time.Duration(0))

// ParseEnv fills the fields of dst from environment variables named by the
// `env` tag, falling back to the `default` tag. Nested structs are walked.
func ParseEnv(dst any) error {
	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return ErrNotStructPointer
	}

	return parseStruct(v.Elem())
}

func parseStruct(v reflect.Value) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		fv := v.Field(i)
		if field.Type.Kind() == reflect.Struct && field.Type != durationType {
			if err := parseStruct(fv); err != nil {
				return err
			}
			continue
		}

		key, ok := field.Tag.Lookup("env")
		if !ok {
			continue
		}

		raw, set := os.LookupEnv(key)
		if !set || raw == "" {
			raw = field.Tag.Get("default")
		}
		if raw == "" {
			continue
		}

		if err := setValue(fv, raw); err != nil {
			return fmt.Errorf("env %s: %w", key, err)
		}
	}

	return nil
}

func setValue(fv reflect.Value, raw string) error {
	if fv.Type() == durationType {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return err
		}
		fv.SetInt(int64(d))
		return nil
	}

	switch fv.Kind() {
	case reflect.String:
		fv.SetString(raw)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		fv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, fv.Type().Bits())
		if err != nil {
			return err
		}
		fv.SetInt(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(raw, fv.Type().Bits())
		if err != nil {
			return err
		}
		fv.SetFloat(f)
	default:
		return fmt.Errorf("unsupported field kind %s", fv.Kind())
	}

	return nil
}
