package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

// UpsertModel builds INSERT ... ON CONFLICT (conflict) DO UPDATE for a struct with db tags.
// Every non-conflict column is overwritten from EXCLUDED; columns named in skip are not written.
// The statement returns the row id and whether the row was freshly inserted.
func UpsertModel(table string, model any, conflict []string, skip ...string) (string, []any, error) {
	if len(conflict) == 0 {
		return "", nil, fmt.Errorf("upsert conflict columns are required")
	}
	cols, vals, err := columnsAndValuesFromModel(model, skip)
	if err != nil {
		return "", nil, err
	}

	keys := make(map[string]struct{}, len(conflict))
	for _, col := range conflict {
		keys[col] = struct{}{}
	}
	updates := make([]string, 0, len(cols))
	for _, col := range cols {
		if _, isKey := keys[col]; isKey {
			continue
		}
		updates = append(updates, col+" = EXCLUDED."+col)
	}

	var suffix strings.Builder
	suffix.WriteString("ON CONFLICT (")
	suffix.WriteString(strings.Join(conflict, ", "))
	suffix.WriteString(") DO UPDATE SET ")
	if len(updates) == 0 {
		// keep RETURNING populated when there is nothing else to write
		suffix.WriteString(conflict[0] + " = EXCLUDED." + conflict[0])
	} else {
		suffix.WriteString(strings.Join(updates, ", "))
	}
	suffix.WriteString(" RETURNING id, (xmax = 0) AS inserted")

	return InsertInto(table).
		Columns(cols...).
		Values(vals...).
		Suffix(suffix.String()).
		ToSQL()
}

func columnsAndValuesFromModel(model any, skip []string) ([]string, []any, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, nil, fmt.Errorf("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("model must be struct")
	}

	skipped := make(map[string]struct{}, len(skip))
	for _, col := range skip {
		skipped[col] = struct{}{}
	}

	typ := value.Type()
	cols := make([]string, 0, typ.NumField())
	vals := make([]any, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if field.PkgPath != "" {
			continue
		}
		col := strings.TrimSpace(strings.Split(field.Tag.Get("db"), ",")[0])
		if col == "" || col == "-" {
			continue
		}
		if _, ok := skipped[col]; ok {
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
