package inventory

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrNotObject indicates the snapshot file held valid JSON whose top-level
// value is not an object.
var ErrNotObject = errors.New("snapshot is not a JSON object")

// Load replaces the entire inventory with the contents of the JSON snapshot
// at path. The replacement is all-or-nothing: on any failure the current
// in-memory state is left untouched.
//
// A missing file is recoverable (warning, nil error). Invalid JSON or a
// non-object top level abort the load with an error. Key order in the file
// becomes the new insertion order.
//
// Loaded values are accepted verbatim: a negative quantity enters the store
// unchecked. The decoder does reject non-integer values as a side effect of
// the snapshot's integer value type.
func (s *Store) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			s.rep.Warn("load: snapshot not found, keeping current inventory", "path", path)
			return nil
		}
		s.rep.Error("load: cannot read snapshot", "path", path, "error", err)
		return fmt.Errorf("read %s: %w", path, err)
	}

	items, order, err := decodeSnapshot(data)
	if err != nil {
		s.rep.Error("load: invalid snapshot", "path", path, "error", err)
		return fmt.Errorf("decode %s: %w", path, err)
	}

	s.items = items
	s.order = order
	return nil
}

// Save writes the inventory to path as an indented JSON object, fully
// overwriting any existing file. Items appear in insertion order and
// non-ASCII characters are written literally. In-memory state is unchanged
// regardless of outcome.
func (s *Store) Save(path string) error {
	data, err := s.encodeSnapshot()
	if err != nil {
		s.rep.Error("save: cannot encode inventory", "path", path, "error", err)
		return fmt.Errorf("encode inventory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		s.rep.Error("save: cannot write snapshot", "path", path, "error", err)
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// decodeSnapshot walks the JSON token stream instead of unmarshalling into a
// map so that the file's key order is preserved as insertion order.
func decodeSnapshot(data []byte) (map[string]int, []string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, nil, ErrNotObject
	}

	items := make(map[string]int)
	var order []string
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}
		name, ok := keyTok.(string)
		if !ok {
			return nil, nil, fmt.Errorf("unexpected key token %v", keyTok)
		}
		var qty int
		if err := dec.Decode(&qty); err != nil {
			return nil, nil, fmt.Errorf("item %q: %w", name, err)
		}
		if _, seen := items[name]; !seen {
			order = append(order, name)
		}
		items[name] = qty
	}
	if _, err := dec.Token(); err != nil { // closing brace
		return nil, nil, err
	}
	switch _, err := dec.Token(); {
	case err == io.EOF:
	case err != nil:
		return nil, nil, err
	default:
		return nil, nil, errors.New("trailing data after snapshot object")
	}
	return items, order, nil
}

func (s *Store) encodeSnapshot() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range s.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString("\n  ")
		key, err := encodeString(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		fmt.Fprintf(&buf, ": %d", s.items[name])
	}
	if len(s.order) > 0 {
		buf.WriteByte('\n')
	}
	buf.WriteString("}\n")
	return buf.Bytes(), nil
}

// encodeString renders a JSON string without escaping HTML or non-ASCII
// runes.
func encodeString(s string) ([]byte, error) {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimRight(b.Bytes(), "\n"), nil
}
