package discord

import "fmt"

// enums.go implements a small registry mirroring Discord's constant tables.
// The typed constants in this package are plain Go constants; the registry
// adds the runtime layer on top: resolving a wire value to its documented
// name, a name back to its value, and iterating a table in declaration order.

// EnumMember is a single named wire value.
type EnumMember[T comparable] struct {
	Name  string
	Value T
}

// Member constructs an EnumMember. Shorthand for table declarations.
func Member[T comparable](name string, value T) EnumMember[T] {
	return EnumMember[T]{Name: name, Value: value}
}

// Enum is an immutable table of named wire values for one constant type.
// Multiple names may share a value; the first declared name is canonical and
// later ones act as aliases which resolve through ValueOf but are skipped
// when iterating members.
type Enum[T comparable] struct {
	name    string
	members []EnumMember[T]
	byValue map[T]string
	byName  map[string]T
}

// NewEnum builds an enum table. Panics on duplicate names, as that is always
// a declaration mistake.
func NewEnum[T comparable](name string, members ...EnumMember[T]) *Enum[T] {
	e := &Enum[T]{
		name:    name,
		members: make([]EnumMember[T], 0, len(members)),
		byValue: make(map[T]string, len(members)),
		byName:  make(map[string]T, len(members)),
	}

	for _, member := range members {
		if _, ok := e.byName[member.Name]; ok {
			panic(fmt.Sprintf("enum %s: duplicate member name %q", name, member.Name))
		}

		e.byName[member.Name] = member.Value

		if _, ok := e.byValue[member.Value]; ok {
			// Alias. The canonical name keeps the value slot.
			continue
		}

		e.byValue[member.Value] = member.Name
		e.members = append(e.members, member)
	}

	return e
}

// Name returns the name of the enum type itself.
func (e *Enum[T]) Name() string {
	return e.name
}

// NameOf resolves a wire value to its canonical name. Returns an empty
// string for values the table does not know, so callers can fall back to a
// numeric rendering for constants Discord added after this table was written.
func (e *Enum[T]) NameOf(value T) string {
	return e.byValue[value]
}

// ValueOf resolves a canonical name or alias to its wire value.
func (e *Enum[T]) ValueOf(name string) (T, bool) {
	value, ok := e.byName[name]

	return value, ok
}

// MustValue is ValueOf for table-driven code where the name is known good.
func (e *Enum[T]) MustValue(name string) T {
	value, ok := e.byName[name]
	if !ok {
		panic(fmt.Sprintf("enum %s: unknown member name %q", e.name, name))
	}

	return value
}

// Contains reports whether the value is a documented member.
func (e *Enum[T]) Contains(value T) bool {
	_, ok := e.byValue[value]

	return ok
}

// Members returns the canonical members in declaration order.
func (e *Enum[T]) Members() []EnumMember[T] {
	members := make([]EnumMember[T], len(e.members))
	copy(members, e.members)

	return members
}

// Len returns the number of canonical members, aliases excluded.
func (e *Enum[T]) Len() int {
	return len(e.members)
}

func (e *Enum[T]) String() string {
	return "<enum " + e.name + ">"
}
