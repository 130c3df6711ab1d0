package minidb

import "encoding/json"

// Row maps every declared column name to a value, NULL included. A stored
// row always carries an entry for each column of its table's schema.
type Row map[string]any

func (r Row) Clone() Row {
	clone := make(Row, len(r))
	for k, v := range r {
		clone[k] = v
	}
	return clone
}

// normalizeValue coerces a value freshly decoded from a snapshot back to the
// runtime type the column's kind implies. JSON decoding yields json.Number
// (or float64) for INT columns, which would never compare equal to the int64
// values the parser produces.
func normalizeValue(aColumn Column, value any) any {
	if value == nil {
		return nil
	}
	switch aColumn.Kind {
	case Int:
		switch v := value.(type) {
		case json.Number:
			if i, err := v.Int64(); err == nil {
				return i
			}
			if f, err := v.Float64(); err == nil {
				return f
			}
		case float64:
			return int64(v)
		case int:
			return int64(v)
		}
	case Text:
		if v, ok := value.(json.Number); ok {
			return v.String()
		}
	}
	return value
}

// normalizeRow applies normalizeValue to every schema column of a loaded row.
func normalizeRow(columns []Column, aRow Row) Row {
	normalized := make(Row, len(aRow))
	for k, v := range aRow {
		normalized[k] = v
	}
	for _, aColumn := range columns {
		if v, ok := aRow[aColumn.Name]; ok {
			normalized[aColumn.Name] = normalizeValue(aColumn, v)
		}
	}
	return normalized
}
