// Package ingest parses tabular data from an input stream into a header
// and ordered rows ready for a table. Keyed formats (json/yaml/xml object
// rows) are flattened into ordered rows against the computed header, so
// the table's alias derivation never has to match the source's key
// spelling. Empty and missing fields come through as nil, which the table
// treats as null values.
package ingest

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"io"
	"sort"

	"github.com/beevik/etree"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/tabloid/pkg/errors"
	"github.com/arthur-debert/tabloid/pkg/logging"
)

// Format identifies a supported input encoding.
type Format string

const (
	CSV  Format = "csv"
	TSV  Format = "tsv"
	JSON Format = "json"
	YAML Format = "yaml"
	XML  Format = "xml"
)

// ParseFormat resolves a format name, failing with an INPUT_FORMAT error
// for anything unsupported.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case CSV, TSV, JSON, YAML, XML:
		return Format(name), nil
	}
	return "", errors.Newf(errors.ErrInputFormat, "unsupported input format: %s", name)
}

// Result is parsed tabular input: an optional header and ordered rows.
type Result struct {
	Header []string
	Rows   []interface{}
}

// Read parses tabular data from r in the given format.
func Read(r io.Reader, format Format) (*Result, error) {
	log := logging.GetLogger("ingest")

	var (
		result *Result
		err    error
	)
	switch format {
	case CSV:
		result, err = readDelimited(r, ',')
	case TSV:
		result, err = readDelimited(r, '\t')
	case JSON:
		result, err = readJSON(r)
	case YAML:
		result, err = readYAML(r)
	case XML:
		result, err = readXML(r)
	default:
		return nil, errors.Newf(errors.ErrInputFormat, "unsupported input format: %s", format)
	}
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("format", string(format)).
		Int("columns", len(result.Header)).
		Int("rows", len(result.Rows)).
		Msg("input parsed")
	return result, nil
}

func readDelimited(r io.Reader, comma rune) (*Result, error) {
	reader := csv.NewReader(r)
	reader.Comma = comma
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInputParse, "failed to parse delimited input")
	}
	if len(records) == 0 {
		return &Result{}, nil
	}

	result := &Result{Header: records[0]}
	for _, record := range records[1:] {
		row := make([]interface{}, len(record))
		for i, field := range record {
			if field == "" {
				row[i] = nil
				continue
			}
			row[i] = field
		}
		result.Rows = append(result.Rows, row)
	}
	return result, nil
}

func readJSON(r io.Reader) (*Result, error) {
	var docs []interface{}
	if err := json.NewDecoder(r).Decode(&docs); err != nil {
		return nil, errors.Wrap(err, errors.ErrInputParse, "failed to parse json input")
	}
	return fromDocuments(docs)
}

func readYAML(r io.Reader) (*Result, error) {
	payload, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInputRead, "failed to read yaml input")
	}
	var docs []interface{}
	if err := yaml.Unmarshal(payload, &docs); err != nil {
		return nil, errors.Wrap(err, errors.ErrInputParse, "failed to parse yaml input")
	}
	return fromDocuments(docs)
}

// fromDocuments converts decoded json/yaml elements into header and rows.
// Object rows contribute their keys to the header (sorted union) and are
// flattened into ordered rows; array rows pass through positionally.
func fromDocuments(docs []interface{}) (*Result, error) {
	keySet := make(map[string]bool)
	hasKeyed := false
	for _, doc := range docs {
		if m, ok := toStringMap(doc); ok {
			hasKeyed = true
			for k := range m {
				keySet[k] = true
			}
		}
	}

	result := &Result{}
	if !hasKeyed {
		for _, doc := range docs {
			switch row := doc.(type) {
			case []interface{}:
				result.Rows = append(result.Rows, row)
			default:
				result.Rows = append(result.Rows, []interface{}{doc})
			}
		}
		return result, nil
	}

	header := make([]string, 0, len(keySet))
	for k := range keySet {
		header = append(header, k)
	}
	sort.Strings(header)
	result.Header = header

	for _, doc := range docs {
		m, ok := toStringMap(doc)
		if !ok {
			return nil, errors.New(errors.ErrInputParse, "mixed object and array rows in keyed input")
		}
		row := make([]interface{}, len(header))
		for i, key := range header {
			row[i] = m[key]
		}
		result.Rows = append(result.Rows, row)
	}
	return result, nil
}

// toStringMap normalizes json's map[string]interface{} and yaml's
// map[interface{}]interface{} object shapes.
func toStringMap(doc interface{}) (map[string]interface{}, bool) {
	switch m := doc.(type) {
	case map[string]interface{}:
		return m, true
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(m))
		for k, v := range m {
			key, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[key] = v
		}
		return out, true
	}
	return nil, false
}

// readXML treats each child element of the root as a row and that row's
// child elements as columns keyed by tag. The header preserves tag order
// of first appearance.
func readXML(r io.Reader) (*Result, error) {
	payload, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInputRead, "failed to read xml input")
	}

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(bytes.NewReader(payload)); err != nil {
		return nil, errors.Wrap(err, errors.ErrInputParse, "failed to parse xml input")
	}
	root := doc.Root()
	if root == nil {
		return &Result{}, nil
	}

	result := &Result{}
	seen := make(map[string]bool)
	var keyed []map[string]interface{}
	for _, rowEl := range root.ChildElements() {
		row := make(map[string]interface{})
		for _, colEl := range rowEl.ChildElements() {
			if !seen[colEl.Tag] {
				seen[colEl.Tag] = true
				result.Header = append(result.Header, colEl.Tag)
			}
			row[colEl.Tag] = colEl.Text()
		}
		keyed = append(keyed, row)
	}

	for _, m := range keyed {
		row := make([]interface{}, len(result.Header))
		for i, key := range result.Header {
			if v, ok := m[key]; ok {
				row[i] = v
			}
		}
		result.Rows = append(result.Rows, row)
	}
	return result, nil
}
