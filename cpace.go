package cpace

import (
	"crypto/rand"
	"fmt"

	"github.com/gtank/ristretto255"
)

// SharedKeys holds the two independent 32-byte session keys. K1 and K2 agree with the peer's if
// and only if both parties used the same password, identifiers, and associated data, and neither
// packet was tampered with.
type SharedKeys struct {
	K1 []byte
	K2 []byte
}

// State is the initiator's context between Start and Finish. It is single use and exclusively
// owned by the run that created it; it must not be shared across goroutines without external
// synchronization.
type State struct {
	sessionID []byte
	scalar    *ristretto255.Scalar
	epk       *ristretto255.Element
	packet    []byte
}

// Response holds the responder's step 2 packet together with the session keys it already derived
// from the initiator's packet. The responder retains no other state.
type Response struct {
	packet     []byte
	sharedKeys *SharedKeys
}

func randomBytes(length int) ([]byte, error) {
	r := make([]byte, length)
	if _, err := rand.Read(r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRandomSource, err)
	}

	return r, nil
}

// randomScalar draws a uniform secret scalar by wide reduction of 64 random bytes, avoiding the
// bias a direct 32-byte reduction would introduce.
func randomScalar() (*ristretto255.Scalar, error) {
	wide, err := randomBytes(64)
	if err != nil {
		return nil, err
	}

	return ristretto255.NewScalar().SetUniformBytes(wide)
}

// newState derives the generator for the run's inputs and equips it with a fresh ephemeral
// key pair.
func newState(sid, password, idA, idB, ad []byte) (*State, error) {
	g, err := generator(sid, password, idA, idB, ad)
	if err != nil {
		return nil, err
	}

	r, err := randomScalar()
	if err != nil {
		return nil, err
	}

	return &State{
		sessionID: sid,
		scalar:    r,
		epk:       ristretto255.NewIdentityElement().ScalarMult(r, g),
	}, nil
}

// Start runs the initiator's step: it draws a random session id and an ephemeral key pair, and
// returns the state whose Packet goes to the responder. idA identifies the initiator and idB the
// responder, each at most 255 bytes. ad is optional associated data and may be nil.
func Start(password, idA, idB, ad []byte) (*State, error) {
	sid, err := randomBytes(SessionIDLength)
	if err != nil {
		return nil, err
	}

	s, err := newState(sid, password, idA, idB, ad)
	if err != nil {
		return nil, err
	}

	s.packet = encodeStep1(sid, s.epk)

	return s, nil
}

// Packet returns the 48-byte step 1 packet to send to the responder.
func (s *State) Packet() []byte {
	return s.packet
}

// SessionID returns the run's 16-byte session identifier, also carried in the step 1 packet.
func (s *State) SessionID() []byte {
	return s.sessionID
}

// Finish consumes the responder's step 2 packet and returns the shared session keys. The state is
// consumed on entry, whatever the outcome: a failed run must restart from Start with a fresh
// session id and scalar, and a second call returns ErrStateConsumed.
func (s *State) Finish(step2Packet []byte) (*SharedKeys, error) {
	if s.scalar == nil {
		return nil, ErrStateConsumed
	}

	r := s.scalar
	s.scalar = nil

	epkB, err := decodeStep2(step2Packet)
	if err != nil {
		return nil, err
	}

	k := ristretto255.NewIdentityElement().ScalarMult(r, epkB)

	return deriveKeys(k, s.epk, epkB), nil
}

// Respond runs the responder's single step: given the initiator's step 1 packet and the locally
// known password, identifiers and associated data, it derives the session keys and the step 2
// packet in one call. ad may be nil, and must match the initiator's.
func Respond(step1Packet, password, idA, idB, ad []byte) (*Response, error) {
	sid, epkA, err := decodeStep1(step1Packet)
	if err != nil {
		return nil, err
	}

	s, err := newState(sid, password, idA, idB, ad)
	if err != nil {
		return nil, err
	}

	k := ristretto255.NewIdentityElement().ScalarMult(s.scalar, epkA)

	return &Response{
		packet:     s.epk.Bytes(),
		sharedKeys: deriveKeys(k, epkA, s.epk),
	}, nil
}

// Packet returns the 32-byte step 2 packet to send back to the initiator.
func (r *Response) Packet() []byte {
	return r.packet
}

// SharedKeys returns the responder's derived session keys.
func (r *Response) SharedKeys() *SharedKeys {
	return r.sharedKeys
}
