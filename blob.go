package zenjson

import (
	"strconv"
	"strings"
)

// TypeBlob is the name of the BlobType handler.
const TypeBlob = "blob"

// BlobsKey is the default store slot for extracted blobs, keyed by blob id.
var BlobsKey = NewKey[map[string][]byte]("blobs")

// BlobOption configures BlobType.
type BlobOption func(*blobHandler)

// WithHasher sets the hasher used to compute content ids. Defaults to SHA-256.
func WithHasher(h Hasher) BlobOption {
	return func(b *blobHandler) {
		b.hasher = h
	}
}

// WithBlobKey stores blobs under key instead of BlobsKey.
func WithBlobKey(key *Key[map[string][]byte]) BlobOption {
	return func(b *blobHandler) {
		b.key = key
	}
}

// blobHandler moves []byte payloads out of the tree and into the store.
type blobHandler struct {
	hasher Hasher
	key    *Key[map[string][]byte]
}

// BlobType returns the "blob" handler. Sanitize replaces each []byte with a
// blob id and files the bytes in the store; restore looks the id up in the
// same store and returns the stored slice itself.
//
// The id is the content id. A different slice with the same contents gets
// its own slot, "<content id>#<n>", so every payload restores to the slice it
// came from; the same slice seen twice shares one slot.
//
// Restoring with a store that holds no blobs fails with ErrKeyNotFound; an id
// missing from the blob map fails with ErrBlobNotFound.
func BlobType(opts ...BlobOption) Handler {
	b := &blobHandler{
		hasher: SHA256Hasher(),
		key:    BlobsKey,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *blobHandler) Name() string { return TypeBlob }

func (b *blobHandler) Check(v any, _ *CheckContext) bool {
	_, ok := v.([]byte)
	return ok
}

func (b *blobHandler) Encode(v any, ctx *EncodeContext) (any, error) {
	data, ok := v.([]byte)
	if !ok {
		return nil, newValueError(ErrInvalidPayload, TypeBlob, v, nil)
	}
	contentID := ContentID(b.hasher, data)
	var id string
	b.key.UpdateOrDefault(ctx.Store, make(map[string][]byte), func(blobs map[string][]byte) map[string][]byte {
		id = fileBlob(blobs, contentID, data)
		return blobs
	})
	return id, nil
}

// fileBlob stores data in the first slot for contentID that is free or
// already holds the same slice, and returns that slot's id.
func fileBlob(blobs map[string][]byte, contentID string, data []byte) string {
	id := contentID
	for n := 1; ; n++ {
		stored, exists := blobs[id]
		if !exists {
			blobs[id] = data
			return id
		}
		if sameSlice(stored, data) {
			return id
		}
		id = contentID + "#" + strconv.Itoa(n)
	}
}

func sameSlice(a, b []byte) bool {
	if len(a) != len(b) || cap(a) != cap(b) || (a == nil) != (b == nil) {
		return false
	}
	return len(a) == 0 || &a[0] == &b[0]
}

func (b *blobHandler) Decode(payload any, ctx *DecodeContext) (any, error) {
	id, ok := payload.(string)
	if !ok {
		return nil, newValueError(ErrInvalidPayload, TypeBlob, payload, nil)
	}
	blobs, err := b.key.GetOrFail(ctx.Store)
	if err != nil {
		return nil, err
	}
	data, ok := blobs[id]
	if !ok {
		return nil, newValueError(ErrBlobNotFound, TypeBlob, id, nil)
	}
	return data, nil
}

// Blobs returns the blobs extracted into store under BlobsKey.
func Blobs(store *TypedMap) map[string][]byte {
	blobs, _ := BlobsKey.Get(store)
	return blobs
}

// VerifyBlobs checks that every blob under key still matches the content id
// its blob id starts with.
// Use it after blobs have travelled separately from the sanitized tree.
func VerifyBlobs(store *TypedMap, key *Key[map[string][]byte]) error {
	blobs, err := key.GetOrFail(store)
	if err != nil {
		return err
	}
	for id, data := range blobs {
		contentID, _, _ := strings.Cut(id, "#")
		algo, _, found := strings.Cut(contentID, ":")
		if !found {
			return newValueError(ErrInvalidPayload, TypeBlob, id, nil)
		}
		h, ok := HasherFor(HashAlgo(algo))
		if !ok {
			return newValueError(ErrInvalidPayload, TypeBlob, id, nil)
		}
		if ContentID(h, data) != contentID {
			return newValueError(ErrBlobCorrupt, TypeBlob, id, nil)
		}
	}
	return nil
}
