package ddl

import (
	"fmt"

	"github.com/signadot/ddl-format/go-ddl/ir"
)

// Command descriptors for the built-in producers.  These are deliberately
// plain structs so that callers which already hold parsed command metadata
// can map it over without going through SQL text.

// ObjectKind names the class of object a DropCommand removes.
type ObjectKind string

const (
	TableObject    ObjectKind = "TABLE"
	SequenceObject ObjectKind = "SEQUENCE"
	ViewObject     ObjectKind = "VIEW"
	IndexObject    ObjectKind = "INDEX"
	SchemaObject   ObjectKind = "SCHEMA"
)

// DropCommand describes a DROP of one object.
type DropCommand struct {
	Kind     ObjectKind
	Schema   string
	Name     string
	IfExists bool
	Cascade  bool
}

// TypeRef names a column type the way the catalog reports it: standard
// types arrive as fixed keywords with the type modifier already rendered.
type TypeRef struct {
	Schema  string
	Name    string
	Typmod  string
	IsArray bool
}

// ColumnDef describes one column of a CreateTableCommand.
type ColumnDef struct {
	Name    string
	Type    TypeRef
	NotNull bool
	Collate string
	Default string
}

// CreateTableCommand describes a CREATE TABLE with column definitions.
type CreateTableCommand struct {
	Schema      string
	Name        string
	IfNotExists bool
	Unlogged    bool
	Columns     []ColumnDef
}

// NewDropProducer returns the producer for DropCommand descriptors.  Other
// command kinds are declined with a nil tree.
func NewDropProducer() Producer {
	return ProducerFunc(produceDrop)
}

// NewCreateTableProducer returns the producer for CreateTableCommand
// descriptors.
func NewCreateTableProducer() Producer {
	return ProducerFunc(produceCreateTable)
}

func produceDrop(cmd any) (*ir.Node, error) {
	dc, ok := cmd.(*DropCommand)
	if !ok {
		return nil, nil
	}
	if dc.Name == "" {
		return nil, fmt.Errorf("drop: empty object name")
	}
	node, err := ir.NewVA("DROP %{objtype}s %{if_exists}s %{name}D %{cascade}s",
		ir.Param{Name: "objtype", Value: ir.FromString(string(dc.Kind))},
		ir.Param{Name: "name", Value: ir.FromNode(ir.NewQualName(dc.Schema, dc.Name))},
	)
	if err != nil {
		return nil, err
	}
	ifExists := ir.New("IF EXISTS")
	ifExists.SetPresent(dc.IfExists)
	if err := node.Put("if_exists", ir.FromNode(ifExists)); err != nil {
		return nil, err
	}
	cascade := ir.New("CASCADE")
	cascade.SetPresent(dc.Cascade)
	if err := node.Put("cascade", ir.FromNode(cascade)); err != nil {
		return nil, err
	}
	return node, nil
}

func produceCreateTable(cmd any) (*ir.Node, error) {
	ct, ok := cmd.(*CreateTableCommand)
	if !ok {
		return nil, nil
	}
	if ct.Name == "" {
		return nil, fmt.Errorf("create table: empty table name")
	}
	node := ir.New("CREATE %{persistence}s TABLE %{if_not_exists}s %{identity}D (%{table_elements:, }s)")
	persistence := ir.New("UNLOGGED")
	persistence.SetPresent(ct.Unlogged)
	if err := node.Put("persistence", ir.FromNode(persistence)); err != nil {
		return nil, err
	}
	ifNot := ir.New("IF NOT EXISTS")
	ifNot.SetPresent(ct.IfNotExists)
	if err := node.Put("if_not_exists", ir.FromNode(ifNot)); err != nil {
		return nil, err
	}
	if err := node.Put("identity", ir.FromNode(ir.NewQualName(ct.Schema, ct.Name))); err != nil {
		return nil, err
	}
	elems := make([]*ir.Value, 0, len(ct.Columns))
	for i := range ct.Columns {
		col, err := produceColumn(&ct.Columns[i])
		if err != nil {
			return nil, err
		}
		elems = append(elems, ir.FromNode(col))
	}
	if err := node.Put("table_elements", ir.FromSlice(elems)); err != nil {
		return nil, err
	}
	return node, nil
}

func produceColumn(col *ColumnDef) (*ir.Node, error) {
	if col.Name == "" {
		return nil, fmt.Errorf("create table: empty column name")
	}
	node := ir.New("%{name}I %{coltype}T %{collation}s %{not_null}s %{default}s")
	if err := node.AttachString("%{name}I", col.Name); err != nil {
		return nil, err
	}
	typ := ir.NewTypeName(col.Type.Schema, col.Type.Name, col.Type.Typmod, col.Type.IsArray)
	if err := node.Put("coltype", ir.FromNode(typ)); err != nil {
		return nil, err
	}
	collation := ir.New("COLLATE %{name}I")
	collation.SetPresent(col.Collate != "")
	if err := collation.AttachString("%{name}I", col.Collate); err != nil {
		return nil, err
	}
	if err := node.Put("collation", ir.FromNode(collation)); err != nil {
		return nil, err
	}
	notNull := ir.New("NOT NULL")
	notNull.SetPresent(col.NotNull)
	if err := node.Put("not_null", ir.FromNode(notNull)); err != nil {
		return nil, err
	}
	deflt := ir.New("DEFAULT %{expr}s")
	deflt.SetPresent(col.Default != "")
	if err := deflt.AttachString("%{expr}s", col.Default); err != nil {
		return nil, err
	}
	if err := node.Put("default", ir.FromNode(deflt)); err != nil {
		return nil, err
	}
	return node, nil
}
