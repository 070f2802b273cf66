package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

// InsertRows builds one multi-row INSERT from a slice of structs, using their
// db tags as columns.
func InsertRows[T any](table string, rows []T, suffix string) (string, []any, error) {
	if len(rows) == 0 {
		return "", nil, fmt.Errorf("insert rows are required")
	}

	builder := InsertInto(table).Suffix(suffix)
	for i, row := range rows {
		cols, vals, err := taggedColumns(row)
		if err != nil {
			return "", nil, fmt.Errorf("row %d: %w", i, err)
		}
		if i == 0 {
			builder.Columns(cols...)
		}
		builder.Values(vals...)
	}
	return builder.ToSQL()
}

// Columns lists the db-tagged columns of a struct in field order.
func Columns(model any) []string {
	cols, _, err := taggedColumns(model)
	if err != nil {
		return nil
	}
	return cols
}

func taggedColumns(model any) ([]string, []any, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, nil, fmt.Errorf("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("model must be struct, got %s", value.Kind())
	}

	typ := value.Type()
	cols := make([]string, 0, typ.NumField())
	vals := make([]any, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		col, _, _ := strings.Cut(field.Tag.Get("db"), ",")
		col = strings.TrimSpace(col)
		if col == "" || col == "-" {
			continue
		}
		cols = append(cols, col)
		vals = append(vals, value.Field(i).Interface())
	}

	if len(cols) == 0 {
		return nil, nil, fmt.Errorf("model has no db columns")
	}
	return cols, vals, nil
}
