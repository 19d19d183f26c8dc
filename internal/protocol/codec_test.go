package protocol

import "testing"

func TestEncodeDecodeInput(t *testing.T) {
	b, err := Encode(MsgInput, Input{Up: true, Action: true})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	env, err := DecodeEnvelope(b)
	if err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if env.T != MsgInput {
		t.Fatalf("type = %q, want %q", env.T, MsgInput)
	}
	in, err := DecodePayload[Input](env)
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if !in.Up || !in.Action || in.Down {
		t.Fatalf("unexpected input %+v", in)
	}
}

func TestEncodeRejectsMissingTypeOrPayload(t *testing.T) {
	if _, err := Encode("", Hello{}); err == nil {
		t.Fatalf("expected error for empty type")
	}
	if _, err := Encode(MsgHello, nil); err == nil {
		t.Fatalf("expected error for nil payload")
	}
}

func TestDecodeEnvelopeErrors(t *testing.T) {
	if _, err := DecodeEnvelope(nil); err != ErrEmptyFrame {
		t.Fatalf("expected ErrEmptyFrame, got %v", err)
	}
	if _, err := DecodeEnvelope([]byte("{not json")); err == nil {
		t.Fatalf("expected error for malformed frame")
	}
	if _, err := DecodePayload[Hello](Envelope{T: MsgHello}); err == nil {
		t.Fatalf("expected error for empty payload")
	}
}

func TestMessageNames(t *testing.T) {
	if MsgHello != "hello" || MsgInput != "input" || MsgState != "state" {
		t.Fatalf("wire names changed")
	}
}
