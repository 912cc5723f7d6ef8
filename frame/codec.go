package frame

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"

	lenserrors "github.com/authcorp/optics/errors"
	"gopkg.in/yaml.v3"
)

// Records and frames keep their field order through both codecs: nested
// mappings and objects decode to Record, sequences and arrays to []Value.
//
// A frame encodes as {columns: [...], rows: [[...], ...]}, so a frame with
// columns and no rows keeps its columns. Decoding also accepts a sequence of
// records, whose columns are the names of the first record.

// frameDoc is the encoded form of a Frame.
type frameDoc struct {
	Columns []string  `json:"columns" yaml:"columns"`
	Rows    [][]Value `json:"rows" yaml:"rows"`
}

func (f Frame) doc() frameDoc {
	d := frameDoc{Columns: f.Columns(), Rows: make([][]Value, len(f.rows))}
	if d.Columns == nil {
		d.Columns = []string{}
	}
	for i, row := range f.rows {
		d.Rows[i] = slices.Clone(row)
	}
	return d
}

// DecodeYAML decodes a YAML frame, either {columns, rows} or a sequence of
// mappings.
func DecodeYAML(data []byte) (Frame, error) {
	var f Frame
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Frame{}, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return f, nil
}

// DecodeRecordYAML decodes a YAML mapping into a record.
func DecodeRecordYAML(data []byte) (Record, error) {
	var r Record
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Record{}, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return r, nil
}

// DecodeJSON decodes a JSON frame, either {"columns", "rows"} or an array of
// objects.
func DecodeJSON(data []byte) (Frame, error) {
	var f Frame
	if err := json.Unmarshal(data, &f); err != nil {
		return Frame{}, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return f, nil
}

// DecodeRecordJSON decodes a JSON object into a record.
func DecodeRecordJSON(data []byte) (Record, error) {
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return Record{}, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return r, nil
}

// MarshalYAML implements yaml.Marshaler.
func (r Record) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for i, name := range r.names {
		var value yaml.Node
		if err := value.Encode(r.values[i]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name},
			&value,
		)
	}
	return node, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (r *Record) UnmarshalYAML(node *yaml.Node) error {
	v, err := decodeYAMLValue(node)
	if err != nil {
		return err
	}
	rec, ok := v.(Record)
	if !ok {
		return lenserrors.TypeMismatch("mapping", v)
	}
	*r = rec
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (f Frame) MarshalYAML() (any, error) {
	return f.doc(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *Frame) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		var records []Record
		if err := node.Decode(&records); err != nil {
			return err
		}
		decoded, err := FromRecords(records...)
		if err != nil {
			return err
		}
		*f = decoded
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return lenserrors.TypeMismatch("mapping or sequence", node.Value)
	}
	var columns []string
	var rows [][]Value
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i].Value, node.Content[i+1]
		switch key {
		case "columns":
			if err := value.Decode(&columns); err != nil {
				return err
			}
		case "rows":
			for _, item := range value.Content {
				row, err := decodeYAMLValue(item)
				if err != nil {
					return err
				}
				values, ok := row.([]Value)
				if !ok {
					return lenserrors.TypeMismatch("sequence", row)
				}
				rows = append(rows, values)
			}
		}
	}
	decoded, err := NewFrame(columns, rows...)
	if err != nil {
		return err
	}
	*f = decoded
	return nil
}

func decodeYAMLValue(node *yaml.Node) (Value, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return decodeYAMLValue(node.Content[0])
	case yaml.AliasNode:
		return decodeYAMLValue(node.Alias)
	case yaml.MappingNode:
		fields := make([]NamedValue, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			value, err := decodeYAMLValue(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			fields = append(fields, F(node.Content[i].Value, value))
		}
		return NewRecord(fields...), nil
	case yaml.SequenceNode:
		values := make([]Value, len(node.Content))
		for i, item := range node.Content {
			value, err := decodeYAMLValue(item)
			if err != nil {
				return nil, err
			}
			values[i] = value
		}
		return values, nil
	default:
		var value Value
		if err := node.Decode(&value); err != nil {
			return nil, err
		}
		return value, nil
	}
}

// MarshalJSON implements json.Marshaler.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range r.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(r.values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Record) UnmarshalJSON(data []byte) error {
	v, err := decodeJSON(data)
	if err != nil {
		return err
	}
	rec, ok := v.(Record)
	if !ok {
		return lenserrors.TypeMismatch("object", v)
	}
	*r = rec
	return nil
}

// MarshalJSON implements json.Marshaler.
func (f Frame) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.doc())
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *Frame) UnmarshalJSON(data []byte) error {
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
		var records []Record
		if err := json.Unmarshal(data, &records); err != nil {
			return err
		}
		decoded, err := FromRecords(records...)
		if err != nil {
			return err
		}
		*f = decoded
		return nil
	}
	var raw struct {
		Columns []string            `json:"columns"`
		Rows    [][]json.RawMessage `json:"rows"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	rows := make([][]Value, len(raw.Rows))
	for i, cells := range raw.Rows {
		rows[i] = make([]Value, len(cells))
		for j, cell := range cells {
			value, err := decodeJSON(cell)
			if err != nil {
				return err
			}
			rows[i][j] = value
		}
	}
	decoded, err := NewFrame(raw.Columns, rows...)
	if err != nil {
		return err
	}
	*f = decoded
	return nil
}

func decodeJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return decodeJSONValue(dec)
}

func decodeJSONValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			var fields []NamedValue
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, _ := keyTok.(string)
				value, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				fields = append(fields, F(key, value))
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return NewRecord(fields...), nil
		case '[':
			values := []Value{}
			for dec.More() {
				value, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				values = append(values, value)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return values, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %v", t)
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return int(i), nil
		}
		return t.Float64()
	default:
		return t, nil
	}
}
