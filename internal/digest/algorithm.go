// file: internal/digest/algorithm.go
// version: 1.2.0
// guid: 6b4c0d3e-1f5a-4c7d-0e8f-9a3b4c5d6e7f

package digest

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"
	"hash"
	"strings"

	"golang.org/x/crypto/sha3"
)

// ErrUnsupportedAlgorithm indicates an algorithm name outside the
// supported set.
var ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")

// Algorithm identifies one of the supported digest algorithms.
type Algorithm string

const (
	MD5     Algorithm = "md5"
	SHA1    Algorithm = "sha1"
	SHA256  Algorithm = "sha256"
	SHA384  Algorithm = "sha384"
	SHA512  Algorithm = "sha512"
	SHA3256 Algorithm = "sha3-256"
	SHA3512 Algorithm = "sha3-512"
)

// DefaultAlgorithm is used when no algorithm is selected.
const DefaultAlgorithm = MD5

// algorithms maps each supported algorithm to its constructor and the
// size of its output in bytes.
var algorithms = map[Algorithm]struct {
	constructor func() hash.Hash
	size        int
}{
	MD5:     {md5.New, md5.Size},
	SHA1:    {sha1.New, sha1.Size},
	SHA256:  {sha256.New, sha256.Size},
	SHA384:  {sha512.New384, sha512.Size384},
	SHA512:  {sha512.New, sha512.Size},
	SHA3256: {sha3.New256, 32},
	SHA3512: {sha3.New512, 64},
}

// ParseAlgorithm resolves a user-supplied algorithm name. Matching is
// case-insensitive and accepts both "sha3-256" and "sha3256" spellings.
func ParseAlgorithm(name string) (Algorithm, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	switch normalized {
	case "sha3256", "sha3_256":
		normalized = string(SHA3256)
	case "sha3512", "sha3_512":
		normalized = string(SHA3512)
	}

	algo := Algorithm(normalized)
	if _, ok := algorithms[algo]; !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, name)
	}
	return algo, nil
}

// Names lists the supported algorithm names in a stable order, for
// help text and error messages.
func Names() []string {
	return []string{
		string(MD5), string(SHA1), string(SHA256), string(SHA384),
		string(SHA512), string(SHA3256), string(SHA3512),
	}
}

// New returns a fresh hash state for the algorithm.
func (a Algorithm) New() hash.Hash {
	return algorithms[a].constructor()
}

// HexLength returns the length of the rendered hex digest.
func (a Algorithm) HexLength() int {
	return algorithms[a].size * 2
}

// String returns the lower-case algorithm name.
func (a Algorithm) String() string {
	return string(a)
}
