package zenjson

// TypedKey is implemented by every *Key[T]. It lets TypedMap operations that
// do not touch the value accept keys of any type.
type TypedKey interface {
	Name() string
	typedKey()
}

// Key addresses a value of type T in a TypedMap.
//
// Keys are compared by identity, not by name: two keys created with the same
// display name are distinct slots.
type Key[T any] struct {
	name string
}

// NewKey creates a key for values of type T. The name is only used in
// error messages.
func NewKey[T any](name string) *Key[T] {
	return &Key[T]{name: name}
}

// Name returns the display name.
func (k *Key[T]) Name() string { return k.name }

func (k *Key[T]) typedKey() {}

// TypedMap is a heterogeneous store keyed by *Key[T] identity.
// It is not safe for concurrent use.
type TypedMap struct {
	data map[TypedKey]any
}

// NewTypedMap returns an empty store.
func NewTypedMap() *TypedMap {
	return &TypedMap{data: make(map[TypedKey]any)}
}

// Has reports whether key holds a value.
func (m *TypedMap) Has(key TypedKey) bool {
	if m == nil {
		return false
	}
	_, ok := m.data[key]
	return ok
}

// Delete removes key from the store.
func (m *TypedMap) Delete(key TypedKey) {
	if m == nil {
		return
	}
	delete(m.data, key)
}

// Len returns the number of keys holding a value.
func (m *TypedMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.data)
}

// Get returns the value stored under k.
func (k *Key[T]) Get(m *TypedMap) (T, bool) {
	var zero T
	if m == nil {
		return zero, false
	}
	v, ok := m.data[k]
	if !ok {
		return zero, false
	}
	t, _ := v.(T)
	return t, true
}

// GetOrDefault returns the value stored under k, or def when absent.
func (k *Key[T]) GetOrDefault(m *TypedMap, def T) T {
	if v, ok := k.Get(m); ok {
		return v
	}
	return def
}

// GetOrFail returns the value stored under k or a *KeyError wrapping ErrKeyNotFound.
func (k *Key[T]) GetOrFail(m *TypedMap) (T, error) {
	v, ok := k.Get(m)
	if !ok {
		return v, newKeyError(k.name)
	}
	return v, nil
}

// Set stores v under k. Setting into a nil store is a no-op, as are the
// Update variants built on it.
func (k *Key[T]) Set(m *TypedMap, v T) {
	if m == nil {
		return
	}
	m.data[k] = v
}

// Has reports whether k holds a value.
func (k *Key[T]) Has(m *TypedMap) bool {
	return m.Has(k)
}

// Delete removes k from the store.
func (k *Key[T]) Delete(m *TypedMap) {
	m.Delete(k)
}

// Update replaces the value under k with fn(current, present).
func (k *Key[T]) Update(m *TypedMap, fn func(v T, ok bool) T) {
	k.Set(m, fn(k.Get(m)))
}

// UpdateOrFail replaces the value under k with fn(current).
// It fails with ErrKeyNotFound when k holds nothing, leaving the store unchanged.
func (k *Key[T]) UpdateOrFail(m *TypedMap, fn func(v T) T) error {
	v, err := k.GetOrFail(m)
	if err != nil {
		return err
	}
	k.Set(m, fn(v))
	return nil
}

// UpdateOrDefault replaces the value under k with fn(current), using def
// as the current value when k holds nothing.
func (k *Key[T]) UpdateOrDefault(m *TypedMap, def T, fn func(v T) T) {
	k.Set(m, fn(k.GetOrDefault(m, def)))
}
