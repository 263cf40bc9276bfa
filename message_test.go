package cpace

import (
	"bytes"
	"errors"
	"testing"

	"github.com/gtank/ristretto255"
)

func TestStep1RoundTrip(t *testing.T) {
	sid := bytes.Repeat([]byte{0x42}, SessionIDLength)
	element := ristretto255.NewGeneratorElement()

	packet := encodeStep1(sid, element)
	if len(packet) != Step1PacketLength {
		t.Fatalf("packet is %d bytes, want %d", len(packet), Step1PacketLength)
	}

	gotSid, gotElement, err := decodeStep1(packet)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(gotSid, sid) {
		t.Fatal("session id did not round trip")
	}

	if gotElement.Equal(element) != 1 {
		t.Fatal("element did not round trip")
	}
}

func TestDecodeElement(t *testing.T) {
	if _, err := decodeElement(make([]byte, PublicElementLength)); !errors.Is(err, ErrInvalidPublicKey) {
		t.Fatalf("identity encoding accepted: %v", err)
	}

	if _, err := decodeElement(bytes.Repeat([]byte{0xff}, PublicElementLength)); !errors.Is(err, ErrInvalidPublicKey) {
		t.Fatalf("non-canonical encoding accepted: %v", err)
	}

	if _, err := decodeElement(ristretto255.NewGeneratorElement().Bytes()); err != nil {
		t.Fatalf("canonical encoding rejected: %v", err)
	}
}

func TestDecodeLengths(t *testing.T) {
	if _, _, err := decodeStep1(make([]byte, Step1PacketLength-1)); !errors.Is(err, ErrInvalidMessageLength) {
		t.Fatalf("want ErrInvalidMessageLength, got %v", err)
	}

	if _, err := decodeStep2(make([]byte, Step2PacketLength+1)); !errors.Is(err, ErrInvalidMessageLength) {
		t.Fatalf("want ErrInvalidMessageLength, got %v", err)
	}
}
