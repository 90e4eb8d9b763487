package command

// Ref holds either a bare platform identifier or a handle to a fully
// resolved object of type T. Classic-path parsing produces identifiers,
// interaction resolution and special arguments produce objects. Consumers
// read ID either way; inspecting the full object requires an explicit
// cache or HTTP lookup at the use site when only the identifier is known.
type Ref[T any] struct {
	id  string
	obj *T
}

// RefID wraps a bare identifier.
func RefID[T any](id string) Ref[T] {
	return Ref[T]{id: id}
}

// RefObj wraps a resolved object together with its identifier.
func RefObj[T any](id string, obj *T) Ref[T] {
	return Ref[T]{id: id, obj: obj}
}

// ID returns the platform identifier regardless of variant.
func (r Ref[T]) ID() string { return r.id }

// Obj returns the resolved object, if this reference carries one.
func (r Ref[T]) Obj() (*T, bool) { return r.obj, r.obj != nil }

// IsZero reports whether the reference carries neither id nor object.
func (r Ref[T]) IsZero() bool { return r.id == "" && r.obj == nil }
