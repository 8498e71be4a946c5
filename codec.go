// ABOUTME: Structural JSON codec for requests, responses, and error objects
// ABOUTME: Field-by-field mapping; opaque payloads delegate to encoding/json

package jsonrpc2

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
)

// The envelope layout deviates from plain struct mapping: result and error
// are mutually exclusive, the id is polymorphic, and optional keys must be
// omitted rather than nulled. Encoding and decoding are therefore written
// out field by field instead of relying on struct tags. Opaque payloads
// (params, result, error data) are handed to encoding/json as the generic
// nested codec. Every call is re-entrant; no encoder state is shared.

// MarshalJSON encodes the request envelope. The id key is omitted entirely
// for notifications; params is omitted when absent.
func (r *Request) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"jsonrpc":"2.0","method":`)
	method, err := json.Marshal(r.method)
	if err != nil {
		return nil, err
	}
	buf.Write(method)
	if params, ok := r.Params(); ok {
		buf.WriteString(`,"params":`)
		payload, err := json.Marshal(params)
		if err != nil {
			return nil, err
		}
		buf.Write(payload)
	}
	if id, ok := r.ID(); ok {
		buf.WriteString(`,"id":`)
		buf.Write(encodeID(id))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes into r via DecodeRequest.
func (r *Request) UnmarshalJSON(data []byte) error {
	req, err := DecodeRequest(data)
	if err != nil {
		return err
	}
	*r = *req
	return nil
}

// DecodeRequest parses data into a validated Request. Syntactically invalid
// input fails with a Parse error; structural violations fail with Invalid
// Request errors naming the failing check in the data field. The decoder
// checks presence and wire shape only; method and id rules are enforced by
// the request constructor, which stays the single source of truth.
func DecodeRequest(data []byte) (*Request, error) {
	obj, err := decodeObject(data, "Request")
	if err != nil {
		return nil, err
	}
	if err := checkWireVersion(obj); err != nil {
		return nil, err
	}
	methodRaw, ok := obj["method"]
	if !ok {
		return nil, InvalidRequest("Missing 'method' field")
	}
	var method string
	if err := json.Unmarshal(methodRaw, &method); err != nil {
		return nil, InvalidRequest("Invalid 'method' field: must be a string")
	}
	b := NewRequestBuilder().Method(method)
	if paramsRaw, ok := obj["params"]; ok {
		b.Params(paramsRaw)
	}
	if idRaw, ok := obj["id"]; ok {
		id, err := decodeID(idRaw)
		if err != nil {
			return nil, err
		}
		b.ID(id)
	}
	return b.Build()
}

// MarshalJSON encodes the response envelope. Exactly one of the result and
// error keys is written; a nil result still appears as an explicit null.
// The id key is always written, as null when no id is held.
func (r *Response) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"jsonrpc":"2.0",`)
	if r.success {
		buf.WriteString(`"result":`)
		if r.result == nil {
			buf.WriteString("null")
		} else {
			payload, err := json.Marshal(r.result)
			if err != nil {
				return nil, err
			}
			buf.Write(payload)
		}
	} else {
		buf.WriteString(`"error":`)
		errObj, err := json.Marshal(r.err)
		if err != nil {
			return nil, err
		}
		buf.Write(errObj)
	}
	buf.WriteString(`,"id":`)
	buf.Write(encodeID(r.id))
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes into r via DecodeResponse.
func (r *Response) UnmarshalJSON(data []byte) error {
	resp, err := DecodeResponse(data)
	if err != nil {
		return err
	}
	*r = *resp
	return nil
}

// DecodeResponse parses data into a Response. Unlike request decoding, the
// id key is mandatory: a response always correlates to some request
// context, even if only as an explicit null, so a missing id key is itself
// a protocol violation.
func DecodeResponse(data []byte) (*Response, error) {
	obj, err := decodeObject(data, "Response")
	if err != nil {
		return nil, err
	}
	if err := checkWireVersion(obj); err != nil {
		return nil, err
	}
	idRaw, ok := obj["id"]
	if !ok {
		return nil, InvalidRequest("Missing 'id' field")
	}
	id, err := decodeID(idRaw)
	if err != nil {
		return nil, err
	}
	resultRaw, hasResult := obj["result"]
	errRaw, hasError := obj["error"]
	if hasResult && hasError {
		return nil, InvalidRequest("Response cannot have both 'result' and 'error'")
	}
	if !hasResult && !hasError {
		return nil, InvalidRequest("Response must have either 'result' or 'error'")
	}
	if hasResult {
		var result any
		if !isJSONNull(resultRaw) {
			result = resultRaw
		}
		return SuccessResponse(id, result)
	}
	errObj, err := DecodeError(errRaw)
	if err != nil {
		return nil, err
	}
	return ErrorResponse(id, errObj)
}

// MarshalJSON encodes the error object. The data key is omitted when no
// data is present.
func (e *Error) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"code":`)
	buf.WriteString(strconv.Itoa(e.code))
	buf.WriteString(`,"message":`)
	message, err := json.Marshal(e.message)
	if err != nil {
		return nil, err
	}
	buf.Write(message)
	if data, ok := e.Data(); ok {
		buf.WriteString(`,"data":`)
		payload, err := json.Marshal(data)
		if err != nil {
			return nil, err
		}
		buf.Write(payload)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes into e via DecodeError.
func (e *Error) UnmarshalJSON(data []byte) error {
	decoded, err := DecodeError(data)
	if err != nil {
		return err
	}
	*e = *decoded
	return nil
}

// DecodeError parses a JSON-RPC error object. The decoded message passes
// through the same validation as a locally constructed error, so an empty
// message on the wire fails with an Internal Error.
func DecodeError(data []byte) (*Error, error) {
	obj, err := decodeObject(data, "Error object")
	if err != nil {
		return nil, err
	}
	codeRaw, ok := obj["code"]
	if !ok {
		return nil, InvalidRequest("Missing 'code' field in error object")
	}
	var code float64
	if err := json.Unmarshal(codeRaw, &code); err != nil {
		return nil, InvalidRequest("Invalid 'code' field: must be a number")
	}
	messageRaw, ok := obj["message"]
	if !ok {
		return nil, InvalidRequest("Missing 'message' field in error object")
	}
	var message string
	if err := json.Unmarshal(messageRaw, &message); err != nil {
		return nil, InvalidRequest("Invalid 'message' field: must be a string")
	}
	var payload any
	if dataRaw, ok := obj["data"]; ok {
		payload = dataRaw
	}
	return NewErrorWithData(int(code), message, payload)
}

// MarshalJSON encodes the id as a string, number, or null. Absent ids also
// encode as null; whether the key is written at all is the envelope's
// decision.
func (id ID) MarshalJSON() ([]byte, error) {
	return encodeID(id), nil
}

// UnmarshalJSON decodes a wire id. Anything other than a string, a number,
// or null fails with an Invalid Request error.
func (id *ID) UnmarshalJSON(data []byte) error {
	decoded, err := decodeID(data)
	if err != nil {
		return err
	}
	*id = decoded
	return nil
}

func encodeID(id ID) []byte {
	switch id.kind {
	case idString:
		encoded, _ := json.Marshal(id.str)
		return encoded
	case idNumber:
		encoded, _ := json.Marshal(id.num)
		return encoded
	default:
		return []byte("null")
	}
}

func decodeID(raw json.RawMessage) (ID, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return ID{}, InvalidRequest("Invalid 'id' type")
	}
	switch val := v.(type) {
	case nil:
		return NullID(), nil
	case string:
		return StringID(val), nil
	case json.Number:
		n, err := val.Float64()
		if err != nil {
			return ID{}, InvalidRequest("Invalid 'id' type")
		}
		return NumberID(n), nil
	default:
		return ID{}, InvalidRequest("Invalid 'id' type")
	}
}

// decodeObject parses data into a key-to-raw-value map, distinguishing
// malformed JSON from valid JSON that is not an object.
func decodeObject(data []byte, kind string) (map[string]json.RawMessage, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			return nil, ParseError("Invalid JSON")
		}
		return nil, InvalidRequest(kind + " must be a JSON object")
	}
	if obj == nil {
		return nil, InvalidRequest(kind + " must be a JSON object")
	}
	return obj, nil
}

func checkWireVersion(obj map[string]json.RawMessage) error {
	raw, ok := obj["jsonrpc"]
	if !ok {
		return InvalidRequest("Missing 'jsonrpc' field")
	}
	var version string
	if err := json.Unmarshal(raw, &version); err != nil {
		return InvalidRequest("Invalid 'jsonrpc' version: " + string(raw))
	}
	if err := ValidateVersion(version); err != nil {
		return InvalidRequest("Invalid 'jsonrpc' version: " + version)
	}
	return nil
}

func isJSONNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}
