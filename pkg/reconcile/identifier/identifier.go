// Package identifier generates collision-resistant, human-greppable ids for
// reconciliation sessions, adapted from mutagen's pkg/identifier +
// pkg/random + pkg/encoding trio.
package identifier

import (
	"crypto/rand"
	"errors"
	"regexp"
	"strings"

	"github.com/eknkc/basex"
)

const (
	// PrefixSession is the prefix used for core.Session identifiers.
	PrefixSession = "rcon"

	// requiredPrefixLength is the required length for identifier prefixes.
	requiredPrefixLength = 4
	// collisionResistantLength is the number of random bytes needed to
	// ensure collision-resistance in an identifier.
	collisionResistantLength = 32
	// targetBase62Length is the target length for the Base62-encoded
	// portion of the identifier: the maximum length that a
	// collisionResistantLength-byte array can take when Base62-encoded,
	// ceil(n*8*ln(2)/ln(62)).
	targetBase62Length = 43

	// base62Alphabet is the alphabet used for Base62 encoding.
	base62Alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

var base62 *basex.Encoding

func init() {
	encoding, err := basex.NewEncoding(base62Alphabet)
	if err != nil {
		panic("unable to initialize Base62 encoder")
	}
	base62 = encoding
}

// matcher recognizes identifiers produced by New.
var matcher = regexp.MustCompile("^[a-z]{4}_[0-9a-zA-Z]{43}$")

// New generates a new collision-resistant identifier with the given
// four-letter lowercase prefix, e.g. "rcon_<43-char Base62>".
func New(prefix string) (string, error) {
	if len(prefix) != requiredPrefixLength {
		return "", errors.New("incorrect prefix length")
	}
	for _, r := range prefix {
		if !('a' <= r && r <= 'z') {
			return "", errors.New("invalid prefix character")
		}
	}

	raw := make([]byte, collisionResistantLength)
	if _, err := rand.Read(raw); err != nil {
		return "", errors.New("unable to read random data: " + err.Error())
	}

	encoded := base62.Encode(raw)
	if len(encoded) > targetBase62Length {
		panic("encoded random data length longer than expected")
	}

	var builder strings.Builder
	builder.WriteString(prefix)
	builder.WriteByte('_')
	for i := targetBase62Length - len(encoded); i > 0; i-- {
		builder.WriteByte(base62Alphabet[0])
	}
	builder.WriteString(encoded)

	return builder.String(), nil
}

// IsValid reports whether value has the shape of an identifier produced by
// New.
func IsValid(value string) bool {
	return matcher.MatchString(value)
}
