package zenjson

// Handler describes one custom representable type.
//
// Check claims a value during sanitize. Encode turns a claimed value into a
// JSON-safe payload and Decode turns that payload back into the value. Encode
// and Decode must be exact inverses over the values Check accepts.
//
// Name doubles as the wire tag: a handled value is written as [Name(), payload].
type Handler interface {
	// Name returns the wire tag. It must be unique within a handler list.
	Name() string

	// Check reports whether this handler claims v.
	Check(v any, ctx *CheckContext) bool

	// Encode returns the JSON-safe payload for v.
	// Nested values that may need handling should go through ctx.Encode.
	Encode(v any, ctx *EncodeContext) (any, error)

	// Decode rebuilds the value from its payload.
	// Nested values encoded with ctx.Encode should go through ctx.Decode.
	Decode(payload any, ctx *DecodeContext) (any, error)
}

// NameSet is the set of handler names active for one traversal.
type NameSet struct {
	names []string
	set   map[string]struct{}
}

func newNameSet(names ...string) NameSet {
	s := NameSet{
		names: names,
		set:   make(map[string]struct{}, len(names)),
	}
	for _, n := range names {
		s.set[n] = struct{}{}
	}
	return s
}

// Has reports whether name is an active handler name.
func (s NameSet) Has(name string) bool {
	_, ok := s.set[name]
	return ok
}

// Names returns the names in registration order.
func (s NameSet) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Len returns the number of names.
func (s NameSet) Len() int {
	return len(s.names)
}

// CheckContext is passed to Handler.Check.
type CheckContext struct {
	Names NameSet
	Store *TypedMap
}

// EncodeContext is passed to Handler.Encode.
type EncodeContext struct {
	Names NameSet
	Store *TypedMap

	encode func(any) (any, error)
}

// Encode sanitizes v with the same handler list and store as the
// current traversal.
func (c *EncodeContext) Encode(v any) (any, error) {
	return c.encode(v)
}

// DecodeContext is passed to Handler.Decode.
type DecodeContext struct {
	Names NameSet
	Store *TypedMap

	decode func(any) (any, error)
}

// Decode restores v with the same handler list and store as the
// current traversal.
func (c *DecodeContext) Decode(v any) (any, error) {
	return c.decode(v)
}

// definedType is a Handler assembled from plain functions.
type definedType struct {
	name   string
	check  func(any, *CheckContext) bool
	encode func(any, *EncodeContext) (any, error)
	decode func(any, *DecodeContext) (any, error)
}

// Define builds a Handler from three functions.
//
//	setType := zenjson.Define("set",
//	    func(v any, _ *zenjson.CheckContext) bool { _, ok := v.(Set); return ok },
//	    func(v any, _ *zenjson.EncodeContext) (any, error) { return v.(Set).Items(), nil },
//	    func(p any, _ *zenjson.DecodeContext) (any, error) { return NewSet(p.([]any)...), nil },
//	)
func Define(
	name string,
	check func(v any, ctx *CheckContext) bool,
	encode func(v any, ctx *EncodeContext) (any, error),
	decode func(payload any, ctx *DecodeContext) (any, error),
) Handler {
	return &definedType{name: name, check: check, encode: encode, decode: decode}
}

func (d *definedType) Name() string { return d.name }

func (d *definedType) Check(v any, ctx *CheckContext) bool { return d.check(v, ctx) }

func (d *definedType) Encode(v any, ctx *EncodeContext) (any, error) { return d.encode(v, ctx) }

func (d *definedType) Decode(payload any, ctx *DecodeContext) (any, error) {
	return d.decode(payload, ctx)
}
