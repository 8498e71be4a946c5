// ABOUTME: Polymorphic message id as a closed variant over absent, null, string, number
// ABOUTME: Conversion to and from wire JSON happens only at the codec boundary

package jsonrpc2

import (
	"strconv"

	"github.com/google/uuid"
)

type idKind uint8

const (
	idAbsent idKind = iota
	idNull
	idString
	idNumber
)

// ID is a JSON-RPC message id: a string, a number, an explicit JSON null,
// or absent entirely. The zero value is the absent id, which on a request
// marks it as a notification. Booleans, objects, and arrays are not valid
// ids and cannot be represented.
//
// IDs are comparable with ==.
type ID struct {
	kind idKind
	str  string
	num  float64
}

// StringID returns a string id.
func StringID(s string) ID { return ID{kind: idString, str: s} }

// NumberID returns a numeric id. Fractional values are legal but
// discouraged; validation emits an advisory for them.
func NumberID(n float64) ID { return ID{kind: idNumber, num: n} }

// NullID returns the explicit JSON null id. A null id is valid in specific
// contexts only, such as a response to a request whose id could not be
// read.
func NullID() ID { return ID{kind: idNull} }

// RandomID returns a fresh string id backed by a random UUID.
func RandomID() ID { return StringID(uuid.New().String()) }

// IsNull reports whether the id is the explicit null id.
func (id ID) IsNull() bool { return id.kind == idNull }

// IsString reports whether the id is a string.
func (id ID) IsString() bool { return id.kind == idString }

// IsNumber reports whether the id is a number.
func (id ID) IsNumber() bool { return id.kind == idNumber }

// StringValue returns the string form of the id and whether the id is a
// string.
func (id ID) StringValue() (string, bool) { return id.str, id.kind == idString }

// NumberValue returns the numeric form of the id and whether the id is a
// number.
func (id ID) NumberValue() (float64, bool) { return id.num, id.kind == idNumber }

// String renders the id for display and logging.
func (id ID) String() string {
	switch id.kind {
	case idString:
		return id.str
	case idNumber:
		return strconv.FormatFloat(id.num, 'f', -1, 64)
	case idNull:
		return "null"
	default:
		return ""
	}
}
