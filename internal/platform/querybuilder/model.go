package querybuilder

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// Columns lists the db-tagged column names of a struct model in field order.
func Columns(model any) ([]string, error) {
	cols, _, err := reflectColumns(model)
	return cols, err
}

// InsertModels builds a multi-row insert from db-tagged structs of one type.
func InsertModels[T any](table string, models []T) (*InsertBuilder, error) {
	if len(models) == 0 {
		return nil, errors.New("insert models are required")
	}
	cols, _, err := reflectColumns(models[0])
	if err != nil {
		return nil, err
	}
	b := InsertInto(table).Columns(cols...)
	for _, m := range models {
		_, vals, err := reflectColumns(m)
		if err != nil {
			return nil, err
		}
		b.Values(vals...)
	}
	return b, nil
}

func reflectColumns(model any) ([]string, []any, error) {
	v := reflect.ValueOf(model)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, nil, errors.New("model cannot be nil")
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("model must be struct, got %s", v.Kind())
	}

	t := v.Type()
	cols := make([]string, 0, t.NumField())
	vals := make([]any, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("db"), ",")
		name = strings.TrimSpace(name)
		if name == "" || name == "-" {
			continue
		}
		cols = append(cols, name)
		vals = append(vals, v.Field(i).Interface())
	}
	if len(cols) == 0 {
		return nil, nil, errors.New("model has no db columns")
	}
	return cols, vals, nil
}
