// Package jsonvalue provides an immutable, closed tagged-variant JSON tree.
//
// Payloads mirrored from the export site are dynamically shaped, so they are parsed
// into a Value rather than into fixed structs. Each Value carries exactly one Kind:
// Null, Bool, Number, String, Array or Object.
//
// # Numbers
//
// Numbers keep their literal text. A number is an integer only when its literal has no
// fraction or exponent ("12" is an integer, "12.0" and "1e3" are not). The pool decoder
// depends on this distinction because integers are pool references while floats are
// plain data.
//
// # Objects
//
// Object members keep document order so that tree walks are deterministic. Lookups by
// key ignore order. When a key is repeated the last value wins.
//
// # Usage
//
//	v, err := jsonvalue.Parse(data)
//	if err != nil {
//	    return err
//	}
//	nodes, ok := v.Get("nodes")
package jsonvalue
