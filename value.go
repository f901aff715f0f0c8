package jotson

// ValueType identifies the variant held by a Value.
type ValueType int

const (
	NullValue ValueType = iota
	IntValue
	UintValue
	RealValue
	StringValue
	BooleanValue
	ArrayValue
	ObjectValue
)

func (t ValueType) String() string {
	switch t {
	case NullValue:
		return "null"
	case IntValue:
		return "int"
	case UintValue:
		return "uint"
	case RealValue:
		return "real"
	case StringValue:
		return "string"
	case BooleanValue:
		return "boolean"
	case ArrayValue:
		return "array"
	case ObjectValue:
		return "object"
	}
	return "<unknown ValueType>"
}

// CommentPlacement selects one of the three comment slots carried by a
// Value.
type CommentPlacement int

const (
	// CommentBefore is a comment placed on the line(s) before a value.
	CommentBefore CommentPlacement = iota
	// CommentAfterOnSameLine is a comment on the same line, after a value.
	CommentAfterOnSameLine
	// CommentAfter is a comment on the line(s) after a value.
	CommentAfter

	numberOfCommentPlacements
)

// Value is a node of a parsed JSON document: a tagged variant over null,
// signed and unsigned integers, reals, strings, booleans, arrays, and
// insertion-ordered objects.  Each node additionally carries up to three
// comment slots and the [OffsetStart, OffsetLimit) byte range of the
// token(s) that produced it.
//
// The zero Value is null.  Mutating a Value's payload preserves its
// comments and offsets.
type Value struct {
	typ ValueType

	intVal    int64
	uintVal   uint64
	realVal   float64
	boolVal   bool
	stringVal string

	elements []*Value
	keys     []string
	members  map[string]*Value

	comments    [numberOfCommentPlacements]string
	offsetStart int
	offsetLimit int
}

// NewNull returns a null Value.
func NewNull() *Value { return &Value{} }

// NewInt returns a signed integer Value.
func NewInt(v int64) *Value { return &Value{typ: IntValue, intVal: v} }

// NewUint returns an unsigned integer Value.
func NewUint(v uint64) *Value { return &Value{typ: UintValue, uintVal: v} }

// NewReal returns a double Value.
func NewReal(v float64) *Value { return &Value{typ: RealValue, realVal: v} }

// NewString returns a string Value.
func NewString(v string) *Value { return &Value{typ: StringValue, stringVal: v} }

// NewBool returns a boolean Value.
func NewBool(v bool) *Value { return &Value{typ: BooleanValue, boolVal: v} }

// NewArray returns an empty array Value.
func NewArray() *Value { return &Value{typ: ArrayValue} }

// NewObject returns an empty object Value.
func NewObject() *Value { return &Value{typ: ObjectValue} }

// Type reports the variant held by v.
func (v *Value) Type() ValueType { return v.typ }

// IsNull reports whether v holds null.
func (v *Value) IsNull() bool { return v.typ == NullValue }

// IsArray reports whether v holds an array.
func (v *Value) IsArray() bool { return v.typ == ArrayValue }

// IsObject reports whether v holds an object.
func (v *Value) IsObject() bool { return v.typ == ObjectValue }

// reset replaces the payload while keeping comments and offsets.
func (v *Value) reset(typ ValueType) {
	v.typ = typ
	v.intVal = 0
	v.uintVal = 0
	v.realVal = 0
	v.boolVal = false
	v.stringVal = ""
	v.elements = nil
	v.keys = nil
	v.members = nil
}

// SetNull replaces v's payload with null.
func (v *Value) SetNull() { v.reset(NullValue) }

// SetInt replaces v's payload with a signed integer.
func (v *Value) SetInt(n int64) {
	v.reset(IntValue)
	v.intVal = n
}

// SetUint replaces v's payload with an unsigned integer.
func (v *Value) SetUint(n uint64) {
	v.reset(UintValue)
	v.uintVal = n
}

// SetReal replaces v's payload with a double.
func (v *Value) SetReal(n float64) {
	v.reset(RealValue)
	v.realVal = n
}

// SetString replaces v's payload with a string.
func (v *Value) SetString(s string) {
	v.reset(StringValue)
	v.stringVal = s
}

// SetBool replaces v's payload with a boolean.
func (v *Value) SetBool(b bool) {
	v.reset(BooleanValue)
	v.boolVal = b
}

// SetArray replaces v's payload with an empty array.
func (v *Value) SetArray() { v.reset(ArrayValue) }

// SetObject replaces v's payload with an empty object.
func (v *Value) SetObject() { v.reset(ObjectValue) }

// AsInt returns the signed integer payload.
func (v *Value) AsInt() int64 {
	switch v.typ {
	case IntValue:
		return v.intVal
	case UintValue:
		return int64(v.uintVal)
	case RealValue:
		return int64(v.realVal)
	}
	return 0
}

// AsUint returns the unsigned integer payload.
func (v *Value) AsUint() uint64 {
	switch v.typ {
	case IntValue:
		return uint64(v.intVal)
	case UintValue:
		return v.uintVal
	case RealValue:
		return uint64(v.realVal)
	}
	return 0
}

// AsReal returns the payload as a float64.
func (v *Value) AsReal() float64 {
	switch v.typ {
	case IntValue:
		return float64(v.intVal)
	case UintValue:
		return float64(v.uintVal)
	case RealValue:
		return v.realVal
	}
	return 0
}

// AsBool returns the boolean payload.
func (v *Value) AsBool() bool {
	return v.typ == BooleanValue && v.boolVal
}

// AsString converts v to a string.  Strings are returned as-is, numbers
// and booleans are formatted the way the writers format them, and null
// yields the empty string.  AsString panics on arrays and objects.
func (v *Value) AsString() string {
	switch v.typ {
	case NullValue:
		return ""
	case StringValue:
		return v.stringVal
	case IntValue:
		return intToString(v.intVal)
	case UintValue:
		return uintToString(v.uintVal)
	case RealValue:
		return realToString(v.realVal)
	case BooleanValue:
		return boolToString(v.boolVal)
	}
	panic("jotson: AsString called on " + v.typ.String() + " value")
}

// Size returns the number of array elements or object members, or 0 for
// scalar values.
func (v *Value) Size() int {
	switch v.typ {
	case ArrayValue:
		return len(v.elements)
	case ObjectValue:
		return len(v.keys)
	}
	return 0
}

// Index returns the i'th array element, materializing null elements up
// to and including i.  A null Value becomes an array on first use; any
// other non-array payload panics.
func (v *Value) Index(i int) *Value {
	if v.typ == NullValue {
		v.reset(ArrayValue)
	}
	if v.typ != ArrayValue {
		panic("jotson: Index called on " + v.typ.String() + " value")
	}
	for len(v.elements) <= i {
		v.elements = append(v.elements, &Value{})
	}
	return v.elements[i]
}

// Member returns the named object member, inserting a null member if
// absent.  A null Value becomes an object on first use; any other
// non-object payload panics.  Insertion order of first occurrence is
// preserved by MemberNames.
func (v *Value) Member(name string) *Value {
	if v.typ == NullValue {
		v.reset(ObjectValue)
	}
	if v.typ != ObjectValue {
		panic("jotson: Member called on " + v.typ.String() + " value")
	}
	if v.members == nil {
		v.members = make(map[string]*Value)
	}
	if m, ok := v.members[name]; ok {
		return m
	}
	m := &Value{}
	v.members[name] = m
	v.keys = append(v.keys, name)
	return m
}

// HasMember reports whether an object member with the given name exists.
func (v *Value) HasMember(name string) bool {
	_, ok := v.members[name]
	return ok
}

// MemberNames returns the object member names in insertion order.
func (v *Value) MemberNames() []string {
	names := make([]string, len(v.keys))
	copy(names, v.keys)
	return names
}

// SetComment stores text in the given comment slot.
func (v *Value) SetComment(text string, placement CommentPlacement) {
	v.comments[placement] = text
}

// Comment returns the text stored in the given comment slot.
func (v *Value) Comment(placement CommentPlacement) string {
	return v.comments[placement]
}

// HasComment reports whether the given comment slot is non-empty.
func (v *Value) HasComment(placement CommentPlacement) bool {
	return v.comments[placement] != ""
}

func (v *Value) hasAnyComment() bool {
	for _, c := range v.comments {
		if c != "" {
			return true
		}
	}
	return false
}

// SetOffsetStart records the starting byte offset of the value in its
// source document.
func (v *Value) SetOffsetStart(off int) { v.offsetStart = off }

// SetOffsetLimit records the byte offset just past the value in its
// source document.
func (v *Value) SetOffsetLimit(off int) { v.offsetLimit = off }

// OffsetStart returns the starting byte offset of the value.
func (v *Value) OffsetStart() int { return v.offsetStart }

// OffsetLimit returns the byte offset just past the value.
func (v *Value) OffsetLimit() int { return v.offsetLimit }

// Equal reports structural equality of two value trees.  Numbers are
// compared numerically across the signed, unsigned and real domains, so
// a real that round-trips through text as an integer still compares
// equal.  Comments and offsets are ignored.
func (v *Value) Equal(o *Value) bool {
	if v == nil || o == nil {
		return v == o
	}
	vn := v.typ == IntValue || v.typ == UintValue || v.typ == RealValue
	on := o.typ == IntValue || o.typ == UintValue || o.typ == RealValue
	if vn && on {
		return numbersEqual(v, o)
	}
	if v.typ != o.typ {
		return false
	}
	switch v.typ {
	case NullValue:
		return true
	case StringValue:
		return v.stringVal == o.stringVal
	case BooleanValue:
		return v.boolVal == o.boolVal
	case ArrayValue:
		if len(v.elements) != len(o.elements) {
			return false
		}
		for i, e := range v.elements {
			if !e.Equal(o.elements[i]) {
				return false
			}
		}
		return true
	case ObjectValue:
		if len(v.keys) != len(o.keys) {
			return false
		}
		for i, k := range v.keys {
			if o.keys[i] != k {
				return false
			}
			if !v.members[k].Equal(o.members[k]) {
				return false
			}
		}
		return true
	}
	return false
}

func numbersEqual(a, b *Value) bool {
	if a.typ == b.typ {
		switch a.typ {
		case IntValue:
			return a.intVal == b.intVal
		case UintValue:
			return a.uintVal == b.uintVal
		default:
			return a.realVal == b.realVal
		}
	}
	// Mixed signed/unsigned compare exactly; anything involving a real
	// compares as float64.
	if a.typ == IntValue && b.typ == UintValue {
		return a.intVal >= 0 && uint64(a.intVal) == b.uintVal
	}
	if a.typ == UintValue && b.typ == IntValue {
		return b.intVal >= 0 && uint64(b.intVal) == a.uintVal
	}
	return a.AsReal() == b.AsReal()
}

// String returns the compact JSON rendering of v without a trailing
// newline.
func (v *Value) String() string {
	var w CompactWriter
	w.OmitEndingLineFeed()
	return w.Write(v)
}
