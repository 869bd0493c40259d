package json

// Kind identifies the variant of a Value.
type Kind int

const (
	KindObject Kind = iota
	KindArray
	KindString
	KindBool
	KindNull
	KindNumber
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindNull:
		return "null"
	case KindNumber:
		return "number"
	default:
		return "unknown"
	}
}

// Value is one node of a document tree. The variant set is closed: Object,
// Array, String, Bool, Null and Number are the only implementations, so a
// type switch over Value is exhaustive.
//
// A tree is immutable once assembled apart from AddValue on Object and
// Array, and is safe for concurrent reads after construction. References
// returned by the getters borrow from the tree and stay valid only while
// the owning root is reachable.
type Value interface {
	Kind() Kind
	isValue()
}

// member is one key/value pair of an Object.
type member struct {
	key   string
	value Value
}

// Object is a JSON object. Members keep insertion order; re-adding an
// existing key replaces its value in place (last write wins).
type Object struct {
	members []member
}

// NewObject returns an empty object.
func NewObject() *Object { return &Object{} }

func (o *Object) Kind() Kind { return KindObject }
func (o *Object) isValue()   {}

// Size returns the number of members.
func (o *Object) Size() int { return len(o.members) }

// AddValue adds a member, taking ownership of value.
func (o *Object) AddValue(name string, value Value) {
	for i := range o.members {
		if o.members[i].key == name {
			o.members[i].value = value
			return
		}
	}
	o.members = append(o.members, member{key: name, value: value})
}

// Value returns the value under name. Direct members are checked first;
// when the key is absent the lookup descends into nested member objects in
// insertion order, so a field of an inner object is reachable from the
// outer one. Returns nil when no member matches anywhere.
func (o *Object) Value(name string) Value {
	for i := range o.members {
		if o.members[i].key == name {
			return o.members[i].value
		}
	}
	for i := range o.members {
		if inner, ok := o.members[i].value.(*Object); ok {
			if v := inner.Value(name); v != nil {
				return v
			}
		}
	}
	return nil
}

// Values returns a snapshot mapping of every member key to its value. The
// map is a copy; mutating it does not touch the object.
func (o *Object) Values() map[string]Value {
	m := make(map[string]Value, len(o.members))
	for i := range o.members {
		m[o.members[i].key] = o.members[i].value
	}
	return m
}

// Keys returns the member keys in insertion order.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.members))
	for i := range o.members {
		keys[i] = o.members[i].key
	}
	return keys
}

// Each calls fn for every member in insertion order.
func (o *Object) Each(fn func(name string, value Value)) {
	for i := range o.members {
		fn(o.members[i].key, o.members[i].value)
	}
}

// GetStringValue returns the string under name, or def when the member is
// absent or not a String.
func (o *Object) GetStringValue(name, def string) string {
	if s, ok := o.Value(name).(*String); ok {
		return s.Value()
	}
	return def
}

// GetBoolValue returns the bool under name, or def when the member is
// absent or not a Bool.
func (o *Object) GetBoolValue(name string, def bool) bool {
	if b, ok := o.Value(name).(*Bool); ok {
		return b.Value()
	}
	return def
}

// GetNumberValue returns the number under name, or def when the member is
// absent or not a Number.
func (o *Object) GetNumberValue(name string, def float64) float64 {
	if n, ok := o.Value(name).(*Number); ok {
		return n.Value()
	}
	return def
}

// GetNullValue returns the Null under name, or nil when the member is
// absent or not a Null.
func (o *Object) GetNullValue(name string) *Null {
	if n, ok := o.Value(name).(*Null); ok {
		return n
	}
	return nil
}

// GetObjectValue returns the object under name, or nil when the member is
// absent or not an Object.
func (o *Object) GetObjectValue(name string) *Object {
	if obj, ok := o.Value(name).(*Object); ok {
		return obj
	}
	return nil
}

// GetArrayValue returns the array under name, or nil when the member is
// absent or not an Array.
func (o *Object) GetArrayValue(name string) *Array {
	if arr, ok := o.Value(name).(*Array); ok {
		return arr
	}
	return nil
}

// Array is an ordered, 0-indexed sequence of values.
type Array struct {
	values []Value
}

// NewArray returns an empty array.
func NewArray() *Array { return &Array{} }

func (a *Array) Kind() Kind { return KindArray }
func (a *Array) isValue()   {}

// Size returns the number of elements.
func (a *Array) Size() int { return len(a.values) }

// AddValue appends value, taking ownership of it.
func (a *Array) AddValue(value Value) {
	a.values = append(a.values, value)
}

// Value returns the element at index i, or nil when i is out of range.
func (a *Array) Value(i int) Value {
	if i < 0 || i >= len(a.values) {
		return nil
	}
	return a.values[i]
}

// Values returns the elements in order. The slice is a copy; mutating it
// does not touch the array.
func (a *Array) Values() []Value {
	return append([]Value(nil), a.values...)
}

// Each calls fn for every element in order.
func (a *Array) Each(fn func(i int, value Value)) {
	for i := range a.values {
		fn(i, a.values[i])
	}
}

// GetStringValue returns the string at index i, or def when i is out of
// range or the element is not a String.
func (a *Array) GetStringValue(i int, def string) string {
	if s, ok := a.Value(i).(*String); ok {
		return s.Value()
	}
	return def
}

// GetBoolValue returns the bool at index i, or def when i is out of range
// or the element is not a Bool.
func (a *Array) GetBoolValue(i int, def bool) bool {
	if b, ok := a.Value(i).(*Bool); ok {
		return b.Value()
	}
	return def
}

// GetNumberValue returns the number at index i, or def when i is out of
// range or the element is not a Number.
func (a *Array) GetNumberValue(i int, def float64) float64 {
	if n, ok := a.Value(i).(*Number); ok {
		return n.Value()
	}
	return def
}

// GetNullValue returns the Null at index i, or nil when i is out of range
// or the element is not a Null.
func (a *Array) GetNullValue(i int) *Null {
	if n, ok := a.Value(i).(*Null); ok {
		return n
	}
	return nil
}

// GetObjectValue returns the object at index i, or nil when i is out of
// range or the element is not an Object.
func (a *Array) GetObjectValue(i int) *Object {
	if obj, ok := a.Value(i).(*Object); ok {
		return obj
	}
	return nil
}

// GetArrayValue returns the array at index i, or nil when i is out of range
// or the element is not an Array.
func (a *Array) GetArrayValue(i int) *Array {
	if arr, ok := a.Value(i).(*Array); ok {
		return arr
	}
	return nil
}

// String is a JSON string holding decoded text.
type String struct {
	value string
}

// NewString returns a String holding value.
func NewString(value string) *String { return &String{value: value} }

func (s *String) Kind() Kind    { return KindString }
func (s *String) isValue()      {}
func (s *String) Value() string { return s.value }

// Bool is a JSON boolean.
type Bool struct {
	value bool
}

// NewBool returns a Bool holding value.
func NewBool(value bool) *Bool { return &Bool{value: value} }

func (b *Bool) Kind() Kind  { return KindBool }
func (b *Bool) isValue()    {}
func (b *Bool) Value() bool { return b.value }

// Null is a JSON null. Each occurrence in a document is a distinct instance.
type Null struct{}

// NewNull returns a Null.
func NewNull() *Null { return &Null{} }

func (n *Null) Kind() Kind { return KindNull }
func (n *Null) isValue()   {}

// Number is a JSON number. All numbers, integer or fractional, are held as
// 64-bit floating point.
type Number struct {
	value float64
}

// NewNumber returns a Number holding value.
func NewNumber(value float64) *Number { return &Number{value: value} }

func (n *Number) Kind() Kind     { return KindNumber }
func (n *Number) isValue()       {}
func (n *Number) Value() float64 { return n.value }
