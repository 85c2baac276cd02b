package nodestore

const (
	// DefaultHashSize is the digest width of the sha256 and keccak-256 hashers
	DefaultHashSize = 32
)

type Options struct {
	// HashSize, when non zero, is the exact length every stored value must
	// have.
	HashSize int
	// Capacity pre-allocates space for this many nodes
	Capacity int
}

// Option is a generic option type used for the store implementations.
// Implementations type assert to the *Options target record and if that fails
// they ignore the option
type Option func(any)

func WithHashSize(size int) Option {
	return func(a any) {
		opts, ok := a.(*Options)
		if !ok {
			return
		}
		opts.HashSize = size
	}
}

func WithCapacity(nodes int) Option {
	return func(a any) {
		opts, ok := a.(*Options)
		if !ok {
			return
		}
		opts.Capacity = nodes
	}
}
