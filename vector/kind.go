package vector

// Kind identifies the storage type of a vector or of a single Value.
type Kind uint8

const (
	// KindInvalid represents an invalid kind.
	KindInvalid Kind = iota
	// KindNull represents a missing element. Vectors never report it.
	KindNull
	// KindBool represents a boolean vector or value.
	KindBool
	// KindInt represents a 64-bit integer vector or value.
	KindInt
	// KindFloat represents a float64 vector or value.
	KindFloat
	// KindString represents a string vector or value.
	KindString
	// KindFrame represents a rectangular collection of named columns.
	KindFrame
	// KindRecord represents a record vector.
	KindRecord
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindFrame:
		return "frame"
	case KindRecord:
		return "record"
	default:
		return "invalid"
	}
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) Kind {
	switch s {
	case "null":
		return KindNull
	case "bool":
		return KindBool
	case "int":
		return KindInt
	case "float":
		return KindFloat
	case "string":
		return KindString
	case "frame":
		return KindFrame
	case "record":
		return KindRecord
	default:
		return KindInvalid
	}
}

// Atomic reports whether k is one of the scalar element kinds.
func (k Kind) Atomic() bool {
	return k >= KindBool && k <= KindString
}
