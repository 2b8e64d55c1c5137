package s377m

import "context"

// CType names a content type identified inside an opaque payload, e.g.
// "application/json". These are a separate type to make them easy to
// identify with autocomplete etc.
type CType string

// ContentTypeKey is the key the identified content type is stored under
// in a sniff result map.
const ContentTypeKey = "ContentType"

// DataIdentifier pairs a content type with the check that recognises it
// in a stream of bytes.
type DataIdentifier struct {
	DataFunc    func([]byte) bool
	ContentType CType
}

// Sniffer takes a stream of bytes, sniffs it (a quick look at the data)
// then returns a result of the sniff.
type Sniffer *func(data []byte) SniffResult

// SniffResult is the result of a sniff test.
type SniffResult struct {
	// The sniff test key
	Key string
	// The sniff test result field
	Field string
	// The content type of the data the sniff ran on
	Data CType
	// what certainty did the sniff test pass as a %
	Certainty float64
}

// SniffTest pairs an identifier with the tests to run on any payload it
// recognises.
type SniffTest struct {
	DataID DataIdentifier
	Sniffs []Sniffer
}

// Sniff offers a payload to each identifier in turn and runs the sniffs
// of the first one that recognises it. It stops searching after finding a
// data type that matches; payloads nothing recognises return an empty
// map.
func Sniff(data []byte, sniffers map[*DataIdentifier][]Sniffer) map[string]*SniffResult {

	sniffRes := make(map[string]*SniffResult)
	for ident, sniffs := range sniffers {

		id := *ident
		if !id.DataFunc(data) {
			// check the next datatype
			continue
		}

		sniffRes[ContentTypeKey] = &SniffResult{Key: ContentTypeKey, Field: string(id.ContentType)}

		for _, sniff := range sniffs {
			run := *sniff
			res := run(data)
			// only keep results with some certainty behind them
			if res.Certainty > 0 {
				res.Data = id.ContentType
				sniffRes[res.Key] = &res
			}
		}
		return sniffRes
	}

	return sniffRes
}

// NewSniffContext returns an empty context for sniffers to share state
// through, such as schemas compiled once per run.
func NewSniffContext() SniffContext {
	c := context.Background()

	return SniffContext{c: &c}
}

// SniffContext carries values between sniff invocations so repeated work
// can be cached.
type SniffContext struct {
	c *context.Context
}

// GetData returns the data for a sniff context.
// if no data is present a nil object is returned.
func (s *SniffContext) GetData(key any) any {
	cont := *s.c
	return cont.Value(key)
}

// CacheData caches an item in the sniff context,
// it can be retrieved with GetData()
func (s *SniffContext) CacheData(key, data any) {
	midC := context.WithValue(*s.c, key, data)
	*s.c = midC
}
