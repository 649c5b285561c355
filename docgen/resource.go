package docgen

import (
	"bytes"
	"encoding/json"
)

// ResourceRecord is the metadata extracted from one documentation page.
type ResourceRecord struct {
	// The Fn::GetAtt attribute names, in the order the page documents them
	Targets []string `json:"targets"`

	// The description of what Ref returns, or null when the page does not
	// document Ref
	Ref *string `json:"ref"`
}

// ResultSet collects ResourceRecords keyed by resource type name. Unlike a
// plain map it remembers insertion order, so the JSON output lists resources
// in the order their pages were processed. Putting a name twice overwrites
// the record but keeps the original position.
type ResultSet struct {
	names   []string
	records map[string]*ResourceRecord
}

func NewResultSet() *ResultSet {
	return &ResultSet{records: map[string]*ResourceRecord{}}
}

func (set *ResultSet) Put(name string, record *ResourceRecord) {
	if _, exists := set.records[name]; !exists {
		set.names = append(set.names, name)
	}

	set.records[name] = record
}

func (set *ResultSet) Get(name string) (*ResourceRecord, bool) {
	record, exists := set.records[name]
	return record, exists
}

func (set *ResultSet) Len() int {
	return len(set.names)
}

// Names returns the resource type names in insertion order.
func (set *ResultSet) Names() []string {
	names := make([]string, len(set.names))
	copy(names, set.names)

	return names
}

// MarshalJSON renders the set as a JSON object whose keys appear in
// insertion order.
func (set *ResultSet) MarshalJSON() ([]byte, error) {
	var buffer bytes.Buffer

	buffer.WriteByte('{')

	for i, name := range set.names {
		if i > 0 {
			buffer.WriteByte(',')
		}

		key, err := marshalWithoutHTMLEscaping(name)
		if err != nil {
			return nil, err
		}

		buffer.Write(key)
		buffer.WriteByte(':')

		record, err := marshalWithoutHTMLEscaping(set.records[name])
		if err != nil {
			return nil, err
		}

		buffer.Write(record)
	}

	buffer.WriteByte('}')

	return buffer.Bytes(), nil
}

// marshalWithoutHTMLEscaping is json.Marshal minus the escaping of <, > and
// &. The documentation pages are markdown with inline HTML, so escaped
// descriptions would be unreadable in the output.
func marshalWithoutHTMLEscaping(value interface{}) ([]byte, error) {
	var buffer bytes.Buffer

	encoder := json.NewEncoder(&buffer)
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(value); err != nil {
		return nil, err
	}

	return bytes.TrimRight(buffer.Bytes(), "\n"), nil
}
