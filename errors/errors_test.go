package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseConvert,
				Kind:   KindIllegalSequence,
				Source: "SHIFT_JIS",
				Target: "UTF-8",
				Detail: "byte 0x80 is not valid",
			},
			contains: []string{"[convert]", "illegal_sequence", "SHIFT_JIS -> UTF-8", "byte 0x80 is not valid"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseFlush,
				Kind:  KindOther,
			},
			contains: []string{"[flush]", "other"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseOpen,
				Kind:   KindUnsupported,
				Detail: "conversion not supported",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[open]", "unsupported", "conversion not supported", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := IllegalSequence(PhaseConvert, cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is should match the cause")
	}
	if err.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}
}

func TestError_Is(t *testing.T) {
	a := IncompleteSequence(PhaseConvert, nil)
	b := &Error{Phase: PhaseConvert, Kind: KindIncompleteSequence}
	c := &Error{Phase: PhaseFlush, Kind: KindIncompleteSequence}

	if !errors.Is(a, b) {
		t.Error("errors with same phase and kind should match")
	}
	if errors.Is(a, c) {
		t.Error("errors with different phases should not match")
	}
	if errors.Is(a, errors.New("plain")) {
		t.Error("structured error should not match a plain error")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("resolver failure")
	err := New(PhaseLookup, KindUnsupported).
		Pair("KLINGON", "UTF-8").
		Detail("unknown encoding %q", "KLINGON").
		Cause(cause).
		Build()

	if err.Phase != PhaseLookup || err.Kind != KindUnsupported {
		t.Errorf("unexpected phase/kind: %s/%s", err.Phase, err.Kind)
	}
	if err.Source != "KLINGON" || err.Target != "UTF-8" {
		t.Errorf("unexpected pair: %s -> %s", err.Source, err.Target)
	}
	if err.Detail != `unknown encoding "KLINGON"` {
		t.Errorf("unexpected detail: %q", err.Detail)
	}
	if err.Cause != cause {
		t.Error("cause not preserved")
	}
}

func TestConvenienceConstructors(t *testing.T) {
	tests := []struct {
		name  string
		err   *Error
		phase Phase
		kind  Kind
	}{
		{"incomplete", IncompleteSequence(PhaseConvert, nil), PhaseConvert, KindIncompleteSequence},
		{"illegal", IllegalSequence(PhaseFlush, nil), PhaseFlush, KindIllegalSequence},
		{"oom", OutOfMemory(PhaseConvert, 1024), PhaseConvert, KindOutOfMemory},
		{"unsupported", Unsupported("A", "B", nil), PhaseOpen, KindUnsupported},
		{"unknown name", UnknownName("A", nil), PhaseLookup, KindUnsupported},
		{"closed", Closed(PhaseConvert), PhaseConvert, KindClosed},
		{"other", Other(PhaseConvert, errors.New("x")), PhaseConvert, KindOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Phase != tt.phase {
				t.Errorf("phase = %s, want %s", tt.err.Phase, tt.phase)
			}
			if tt.err.Kind != tt.kind {
				t.Errorf("kind = %s, want %s", tt.err.Kind, tt.kind)
			}
		})
	}
}
