package s377m

import (
	"errors"
	"fmt"
)

// Registry and codec sentinels. They surface wrapped inside a FieldError
// so callers can pick them out with errors.Is.
var (
	// ErrNotRegistered flags a format label with no registry entry.
	ErrNotRegistered = errors.New("universal label not registered")
	// ErrBadValue flags bytes a codec cannot decode.
	ErrBadValue = errors.New("value does not match its registered type")
	// ErrUnknownTag flags a local tag with no primer pack entry.
	ErrUnknownTag = errors.New("local tag not in the primer pack")
)

// StructuralError reports a violation of the ST 377 structural rules that
// makes it unsafe to carry on: bad framing, truncated payloads or header
// fields off the specification. It pins the failure to a stream offset and,
// when one is known, the record key.
type StructuralError struct {
	Offset int64
	Key    UL
	Msg    string
	Err    error
}

func (e *StructuralError) Error() string {
	msg := "s377m: " + e.Msg
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Key != (UL{}) {
		msg = fmt.Sprintf("%s (key %s)", msg, e.Key)
	}
	return fmt.Sprintf("%s at offset %d", msg, e.Offset)
}

func (e *StructuralError) Unwrap() error { return e.Err }

func structuralErr(f Frame, format string, a ...any) *StructuralError {
	return &StructuralError{Offset: f.Offset, Key: f.Key, Msg: fmt.Sprintf(format, a...)}
}

// FieldError records why a single metadata field did not decode. It rides
// on the field itself and never stops a set parse.
type FieldError struct {
	Tag  Tag
	Name string
	Err  error
}

func (e *FieldError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("s377m: field %s (tag %s): %v", e.Name, e.Tag, e.Err)
	}
	return fmt.Sprintf("s377m: field tag %s: %v", e.Tag, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }
