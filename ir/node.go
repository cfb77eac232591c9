package ir

// Value is one tagged-union value in a deparse tree: a scalar leaf, an array
// of values, or a nested Node.
type Value struct {
	Type Type

	Bool    bool
	Int64   int64
	Float64 float64
	String  string

	Values []*Value // ArrayType elements
	Object *Node    // ObjectType node
}

// Node is one composite unit of a command: a whole command, a clause, or an
// optional sub-phrase.  Params are kept in attachment order; the format
// string references each param by exactly one %{name[:sep]}C placeholder.
//
// Present defaults to true.  A node marked not-present expands to nothing,
// which is how optional clauses are suppressed without conditional logic in
// the format string itself.
type Node struct {
	Format    string
	HasFormat bool
	Present   bool

	Names  []string
	Values []*Value
}

// PresentName is the reserved param name recording an explicit presence flag.
const PresentName = "present"

// New allocates a node with the given format string.  Use it when the full
// literal shape is known up front, or with an empty format to grow the format
// attachment by attachment.
func New(format string) *Node {
	return &Node{
		Format:    format,
		HasFormat: true,
		Present:   true,
	}
}

// NewBare allocates a node with no format at all.  Bare nodes carry params
// consumed by dedicated renderings (%{..}D, %{..}T) rather than by their own
// format string; attachments to them never grow a format.
func NewBare() *Node {
	return &Node{Present: true}
}

// Param is a (name, value) pair for NewVA.
type Param struct {
	Name  string
	Value *Value
}

// NewVA allocates a node with a fixed format and the given params, in order.
// Unlike Attach, param names are given directly and the format is not grown;
// the caller is responsible for the format referencing each param.
func NewVA(format string, params ...Param) (*Node, error) {
	n := New(format)
	for _, p := range params {
		if err := n.Put(p.Name, p.Value); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// NewBareVA is NewVA for nodes without a format.
func NewBareVA(params ...Param) (*Node, error) {
	n := NewBare()
	for _, p := range params {
		if err := n.Put(p.Name, p.Value); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// Get returns the value for name, or nil.
func (n *Node) Get(name string) *Value {
	for i := range n.Names {
		if n.Names[i] == name {
			return n.Values[i]
		}
	}
	return nil
}

func (n *Node) has(name string) bool {
	return n.Get(name) != nil
}

// Value constructors.

func FromString(v string) *Value {
	return &Value{Type: StringType, String: v}
}

func FromInt(v int64) *Value {
	return &Value{Type: IntType, Int64: v}
}

func FromFloat(v float64) *Value {
	return &Value{Type: FloatType, Float64: v}
}

func FromBool(v bool) *Value {
	return &Value{Type: BoolType, Bool: v}
}

func Null() *Value {
	return &Value{Type: NullType}
}

func FromSlice(vs []*Value) *Value {
	return &Value{Type: ArrayType, Values: vs}
}

func FromNode(n *Node) *Value {
	return &Value{Type: ObjectType, Object: n}
}

// Strings wraps each argument as a string value, for array attachments.
func Strings(ss ...string) []*Value {
	vs := make([]*Value, len(ss))
	for i, s := range ss {
		vs[i] = FromString(s)
	}
	return vs
}

// Nodes wraps each argument as a node value, for array attachments.
func Nodes(ns ...*Node) []*Value {
	vs := make([]*Value, len(ns))
	for i, n := range ns {
		vs[i] = FromNode(n)
	}
	return vs
}

// NewQualName builds the bare node consumed by %{..}D renderings.  An empty
// schema renders the object name unqualified.
func NewQualName(schema, name string) *Node {
	n := NewBare()
	n.Put("schemaname", FromString(schema))
	n.Put("objname", FromString(name))
	return n
}

// NewTypeName builds the bare node consumed by %{..}T renderings.  The typmod
// text is emitted verbatim after the type name (the producer parenthesizes
// it); isArray appends "[]".
func NewTypeName(schema, typename, typmod string, isArray bool) *Node {
	n := NewBare()
	n.Put("schemaname", FromString(schema))
	n.Put("typename", FromString(typename))
	n.Put("typmod", FromString(typmod))
	n.Put("typarray", FromBool(isArray))
	return n
}
