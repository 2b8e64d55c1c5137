// Package jsonhandle identifies JSON essence payloads and sniffs them
// against schemas, for wiring into a parse with WithSniffers.
package jsonhandle

import (
	"encoding/json"

	s377m "github.com/metarex-media/mxf-s377m"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

const (
	// Content is the JSON content type
	Content s377m.CType = "application/json"
)

// DataIdentifier recognises JSON payloads.
var DataIdentifier = s377m.DataIdentifier{DataFunc: jSONIdentifier, ContentType: Content}

func jSONIdentifier(dataStream []byte) bool {
	var js json.RawMessage

	return json.Unmarshal(dataStream, &js) == nil
}

type contKey struct {
	path, functionName string
}

// SchemaCheck creates a sniffer where the bytes are validated against a
// **local** schema. A payload that passes comes back with the field
// "pass", otherwise an empty result is returned with no inclination of
// why it failed.
//
// This is quite a slow sniff as it checks all the data is valid, so do
// not expect quick results for:
// - Large JSON payloads
// - Large and complex schemas
//
// The compiled schema is cached in the sniff context under key, so one
// schema serves a whole parse.
func SchemaCheck(sc s377m.SniffContext, schemaFile []byte, key string) (s377m.Sniffer, error) {

	// check if this function has been made before
	pathKey := contKey{path: key, functionName: "the schema checker using "}
	sniffFunc := sc.GetData(pathKey)

	if sniffFunc != nil {
		return sniffFunc.(s377m.Sniffer), nil
	}

	// compile the schema outside of the sniffer so the cost is paid once
	c := jsonschema.NewCompiler()

	var schMid any
	err := json.Unmarshal(schemaFile, &schMid)
	if err != nil {
		return nil, err
	}

	c.AddResource("", schMid)
	sch, err := c.Compile("")

	if err != nil {
		return nil, err
	}

	jsonSniff := func(b []byte) s377m.SniffResult {

		var doc any
		err := json.Unmarshal(b, &doc)

		if err != nil {
			return s377m.SniffResult{}
		}

		err = sch.Validate(doc)

		if err == nil {
			return s377m.SniffResult{Key: key, Certainty: 100, Field: "pass"}
		}

		return s377m.SniffResult{}
	}

	// cache the function
	var jSniff s377m.Sniffer = &jsonSniff
	sc.CacheData(pathKey, jSniff)

	return jSniff, nil
}
