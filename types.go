package zenjson

// Types is a validated, immutable handler list.
// It is safe to share across goroutines; the stores passed to its
// traversals are not.
type Types struct {
	handlers []Handler
	names    NameSet
	byName   map[string]Handler
}

// NewTypes validates handlers and returns the ordered handler set.
// Handlers are tried in the given order and the first match wins.
// A repeated name fails with a *TypeError wrapping ErrDuplicatedTypeName.
func NewTypes(handlers ...Handler) (*Types, error) {
	byName := make(map[string]Handler, len(handlers))
	names := make([]string, 0, len(handlers))
	for _, h := range handlers {
		name := h.Name()
		if _, dup := byName[name]; dup {
			return nil, newTypeError(ErrDuplicatedTypeName, name)
		}
		byName[name] = h
		names = append(names, name)
	}

	list := make([]Handler, len(handlers))
	copy(list, handlers)

	return &Types{
		handlers: list,
		names:    newNameSet(names...),
		byName:   byName,
	}, nil
}

// DefaultTypes returns a new slice holding the built-in handlers:
// date, undefined, number and array.
// Append to it to build a custom list that keeps the defaults.
func DefaultTypes() []Handler {
	return []Handler{Date(), UndefinedType(), SpecialNumber(), Array()}
}

// defaultTypes backs Sanitize, Restore and Use.
var defaultTypes = mustNewTypes(DefaultTypes()...)

func mustNewTypes(handlers ...Handler) *Types {
	t, err := NewTypes(handlers...)
	if err != nil {
		panic("zenjson: " + err.Error())
	}
	return t
}

// Handlers returns a copy of the handler list in registration order.
func (t *Types) Handlers() []Handler {
	out := make([]Handler, len(t.handlers))
	copy(out, t.handlers)
	return out
}

// Names returns the valid name set derived from the handler list.
func (t *Types) Names() NameSet {
	return t.names
}

// Lookup returns the handler registered under name.
func (t *Types) Lookup(name string) (Handler, bool) {
	h, ok := t.byName[name]
	return h, ok
}
