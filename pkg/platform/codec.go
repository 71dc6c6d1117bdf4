// Package platform connects the host utilities to the native browser host.
// Go code calls host APIs (script execution, navigation) over named method
// channels and receives callbacks (load start, load end, load errors) from
// the host through the same channels.
//
// Arguments and results cross the bridge as JSON. Numbers therefore arrive
// as float64 and objects as map[string]any.
package platform

import "encoding/json"

// MessageCodec encodes and decodes messages exchanged with the host.
type MessageCodec interface {
	Encode(value any) ([]byte, error)
	Decode(data []byte) (any, error)
}

// JSONCodec is the MessageCodec spoken by the browser host.
type JSONCodec struct{}

func (JSONCodec) Encode(value any) ([]byte, error) {
	return json.Marshal(value)
}

// Decode treats an empty message as a nil value.
func (JSONCodec) Decode(data []byte) (any, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var v any
	err := json.Unmarshal(data, &v)
	return v, err
}

// DefaultCodec is the codec used by method channels.
var DefaultCodec MessageCodec = JSONCodec{}
