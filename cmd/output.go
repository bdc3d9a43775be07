package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/vipcxj/intervals/internal/interval"
	"github.com/vipcxj/intervals/internal/multivalue"
)

// boundDoc is one side of a range. Value is empty for an unbounded side.
type boundDoc struct {
	Value     string `json:"value,omitempty" yaml:"value,omitempty"`
	Closed    bool   `json:"closed" yaml:"closed"`
	Unbounded bool   `json:"unbounded,omitempty" yaml:"unbounded,omitempty"`
}

type rangeDoc struct {
	Lower boundDoc `json:"lower" yaml:"lower"`
	Upper boundDoc `json:"upper" yaml:"upper"`
}

// setDoc is the structured form of a normalized set.
type setDoc struct {
	Text   string     `json:"text" yaml:"text"`
	Empty  bool       `json:"empty" yaml:"empty"`
	Ranges []rangeDoc `json:"ranges" yaml:"ranges"`
}

func boundOf[T interval.Ordered](o interval.Ordinal[T], closed bool) boundDoc {
	if !o.IsReal() {
		return boundDoc{Unbounded: true}
	}
	return boundDoc{Value: fmt.Sprint(o.Value()), Closed: closed}
}

func newSetDoc[T interval.Ordered](set interval.Interval[T]) setDoc {
	doc := setDoc{
		Text:   set.String(),
		Empty:  set.IsEmpty(),
		Ranges: []rangeDoc{},
	}
	for _, r := range set.Ranges() {
		doc.Ranges = append(doc.Ranges, rangeDoc{
			Lower: boundOf(r.Lower(), !r.IsLeftOpen()),
			Upper: boundOf(r.Upper(), !r.IsRightOpen()),
		})
	}
	return doc
}

// writeSet prints set to w in the requested format.
func writeSet[T interval.Ordered](w io.Writer, format string, set interval.Interval[T]) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(newSetDoc(set)); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newSetDoc(set)); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	default:
		_, err := fmt.Fprintln(w, set.String())
		return err
	}
}

// writeResults prints "value: bool" per value, or with join formats the
// accepted values on a single line.
func writeResults(w io.Writer, join []string, values []string, results []bool) error {
	if len(join) == 0 {
		for i, value := range values {
			if _, err := fmt.Fprintf(w, "%s: %t\n", value, results[i]); err != nil {
				return err
			}
		}
		return nil
	}
	accepted := make([]string, 0, len(values))
	for i, value := range values {
		if results[i] {
			accepted = append(accepted, value)
		}
	}
	line, err := multivalue.Format(join, accepted)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, line)
	return err
}
