package cpace

import (
	"github.com/gtank/ristretto255"
	"golang.org/x/crypto/cryptobyte"
)

// Wire format sizes, in bytes. Both packets are fixed-size with no framing or version tag: the
// format is frozen under the protocol identifier.
const (
	// SessionIDLength is the size of the random session identifier carried in the step 1 packet.
	SessionIDLength = 16

	// PublicElementLength is the size of a canonically encoded ristretto255 element.
	PublicElementLength = 32

	// Step1PacketLength is the size of the initiator's packet: session id, then public element.
	Step1PacketLength = SessionIDLength + PublicElementLength

	// Step2PacketLength is the size of the responder's packet: its public element.
	Step2PacketLength = PublicElementLength

	// SharedKeyLength is the size of each of the two derived session keys.
	SharedKeyLength = 32
)

// decodeElement strictly decodes a canonical 32-byte element encoding. The identity element is
// rejected: an honest peer never sends it, and accepting it would hand an attacker a
// password-independent key.
func decodeElement(encoded []byte) (*ristretto255.Element, error) {
	e, err := ristretto255.NewIdentityElement().SetCanonicalBytes(encoded)
	if err != nil {
		return nil, ErrInvalidPublicKey
	}

	if e.Equal(ristretto255.NewIdentityElement()) == 1 {
		return nil, ErrInvalidPublicKey
	}

	return e, nil
}

func encodeStep1(sid []byte, element *ristretto255.Element) []byte {
	b := cryptobyte.NewBuilder(make([]byte, 0, Step1PacketLength))
	b.AddBytes(sid)
	b.AddBytes(element.Bytes())

	return b.BytesOrPanic()
}

// decodeStep1 splits a step 1 packet into the session id and the initiator's public element.
func decodeStep1(packet []byte) (sid []byte, element *ristretto255.Element, err error) {
	if len(packet) != Step1PacketLength {
		return nil, nil, ErrInvalidMessageLength
	}

	var encoded []byte

	s := cryptobyte.String(packet)
	if !s.ReadBytes(&sid, SessionIDLength) || !s.ReadBytes(&encoded, PublicElementLength) {
		return nil, nil, ErrInvalidMessageLength
	}

	element, err = decodeElement(encoded)
	if err != nil {
		return nil, nil, err
	}

	return sid, element, nil
}

// decodeStep2 decodes a step 2 packet into the responder's public element.
func decodeStep2(packet []byte) (*ristretto255.Element, error) {
	if len(packet) != Step2PacketLength {
		return nil, ErrInvalidMessageLength
	}

	return decodeElement(packet)
}
