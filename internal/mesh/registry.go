package mesh

import (
	"fmt"
	"strings"
	"sync"
)

// Decoder turns raw file bytes into a Mesh or fails with a decode error.
// Decoders must not retain the input slice.
type Decoder func(data []byte) (*Mesh, error)

var (
	registryMu sync.RWMutex
	registry   = map[string]Decoder{}
)

// RegisterDecoder registers a decoder under a file kind ("stl", ".STL" and
// "stl" are equivalent). Registering the same kind twice replaces the
// earlier decoder; tests use this to inject failing decoders.
func RegisterDecoder(kind string, d Decoder) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[normalizeKind(kind)] = d
}

// DecoderFor returns the decoder registered for a file kind.
func DecoderFor(kind string) (Decoder, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	d, ok := registry[normalizeKind(kind)]
	return d, ok
}

// Kinds returns the registered decoder kinds (unordered).
func Kinds() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	return out
}

func normalizeKind(kind string) string {
	return strings.TrimPrefix(strings.ToLower(strings.TrimSpace(kind)), ".")
}

func init() {
	RegisterDecoder("stl", DecodeSTL)
	RegisterDecoder("obj", DecodeOBJ)
}

// errDecode wraps a decoder failure with the kind for log lines.
func errDecode(kind string, err error) error {
	return fmt.Errorf("decoding %s: %w", kind, err)
}
