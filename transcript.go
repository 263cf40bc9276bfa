package cpace

import (
	"crypto/sha512"

	"github.com/gtank/ristretto255"
	"golang.org/x/crypto/cryptobyte"
)

const (
	// Domain separation tags binding the hashes to this exact protocol, group, and wire format.
	// The generator tag and the key derivation tag are declared separately but are textually
	// identical in the deployed protocol revision.
	dsi1 = "CPaceRistretto255-1"
	dsi2 = "CPaceRistretto255-1"

	// maxIDLength is the capacity of the one-byte length prefix under which identifiers are hashed.
	maxIDLength = 255
)

// channelID assembles the unambiguous encoding of the channel identities: each identifier is
// preceded by its length in a single byte, the optional associated data follows raw as the final
// field (nothing can come after it, so it needs no prefix).
func channelID(idA, idB, ad []byte) ([]byte, error) {
	if len(idA) > maxIDLength || len(idB) > maxIDLength {
		return nil, ErrIdentifierTooLong
	}

	b := cryptobyte.NewBuilder(make([]byte, 0, 2+len(idA)+len(idB)+len(ad)))
	b.AddUint8LengthPrefixed(func(b *cryptobyte.Builder) { b.AddBytes(idA) })
	b.AddUint8LengthPrefixed(func(b *cryptobyte.Builder) { b.AddBytes(idB) })
	b.AddBytes(ad)

	return b.Bytes()
}

// generator maps the run's inputs onto a group element. Both parties feed identical inputs and
// obtain the same element; without the password the element is indistinguishable from random.
func generator(sid, password, idA, idB, ad []byte) (*ristretto255.Element, error) {
	ci, err := channelID(idA, idB, ad)
	if err != nil {
		return nil, err
	}

	// Zero padding aligns the tag and password on a hash block boundary, so every later field
	// starts at a fixed offset in the hash stream regardless of the password's length.
	var zpad [sha512.BlockSize]byte
	padLen := (sha512.BlockSize - len(dsi1) - len(password)) & (sha512.BlockSize - 1)

	h := sha512.New()
	h.Write([]byte(dsi1))
	h.Write(password)
	h.Write(zpad[:padLen])
	h.Write(sid)
	h.Write(ci)

	return ristretto255.NewIdentityElement().SetUniformBytes(h.Sum(nil))
}

// deriveKeys hashes the Diffie-Hellman element together with both public elements, always the
// initiator's first, and splits the digest into the two session keys. Both roles must keep that
// ordering: swapping it on one side silently yields keys that never match the peer's.
func deriveKeys(k, epkA, epkB *ristretto255.Element) *SharedKeys {
	h := sha512.New()
	h.Write([]byte(dsi2))
	h.Write(k.Bytes())
	h.Write(epkA.Bytes())
	h.Write(epkB.Bytes())
	digest := h.Sum(nil)

	return &SharedKeys{
		K1: digest[:SharedKeyLength],
		K2: digest[SharedKeyLength:],
	}
}
