package alder

import "fmt"

// BuiltinType is a closed enumeration of the source language's primitive
// type identifiers. Every value has a total mapping to a C type spelling,
// looked up through BuiltinTypeToC.
type BuiltinType uint8

const (
	I8 BuiltinType = iota
	I16
	I32
	I64
	U8
	U16
	U32
	U64
	F32
	F64
	Bool
	Char
	Void
	String
)

// builtinNames maps the source-language spelling of a builtin type (as it
// appears in the keyword table, see lexer.go) to its BuiltinType value.
var builtinNames = map[string]BuiltinType{
	"i8":     I8,
	"i16":    I16,
	"i32":    I32,
	"i64":    I64,
	"u8":     U8,
	"u16":    U16,
	"u32":    U32,
	"u64":    U64,
	"f32":    F32,
	"f64":    F64,
	"bool":   Bool,
	"char":   Char,
	"void":   Void,
	"string": String,
}

// builtinToC is the total mapping from a BuiltinType to its C spelling.
var builtinToC = map[BuiltinType]string{
	I8:     "int8_t",
	I16:    "int16_t",
	I32:    "int32_t",
	I64:    "int64_t",
	U8:     "uint8_t",
	U16:    "uint16_t",
	U32:    "uint32_t",
	U64:    "uint64_t",
	F32:    "float",
	F64:    "double",
	Bool:   "bool",
	Char:   "char",
	Void:   "void",
	String: "char*",
}

// BuiltinTypeToC maps a builtin type to its C spelling. The mapping is
// total over BuiltinType; an unrepresentable value is a type-system
// violation in the caller, and BuiltinTypeToC panics on one rather than
// returning an error.
func BuiltinTypeToC(b BuiltinType) string {
	c, ok := builtinToC[b]
	if !ok {
		panic(fmt.Sprintf("alder: no C mapping registered for builtin type %d", b))
	}

	return c
}

// builtinFromName resolves a source-language type spelling (e.g. "i32")
// to its BuiltinType. Used by the Function argument grammar and the
// sample parser, both of which hold type identifiers as plain text until
// render time.
func builtinFromName(name string) (BuiltinType, bool) {
	b, ok := builtinNames[name]
	return b, ok
}

// String pretty-prints the C spelling of a builtin type.
func (b BuiltinType) String() string {
	return BuiltinTypeToC(b)
}
