package validation

import (
	"errors"
	"testing"
)

type sample struct {
	Text   string `json:"text" validate:"notblank"`
	Target string `json:"target" validate:"omitempty,max=5"`
	Note   string `validate:"required"`
}

func TestGet_Singleton(t *testing.T) {
	t.Parallel()

	if Get() != Get() {
		t.Error("Get() should return the same instance")
	}
}

func TestStruct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		in         sample
		wantFields []string
		wantMsg    string
	}{
		{"valid", sample{Text: "hola", Target: "en", Note: "x"}, nil, ""},
		{"blank_text", sample{Text: "   ", Note: "x"}, []string{"text"}, "text must not be blank"},
		{"missing_note", sample{Text: "hola"}, []string{"Note"}, "Note is required"},
		{"long_target", sample{Text: "hola", Target: "toolong", Note: "x"}, []string{"target"}, "target must be at most 5 characters"},
		{"several", sample{}, []string{"text", "Note"}, "text must not be blank; Note is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := Struct(&tt.in)
			if tt.wantFields == nil {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}

			var verr *Error
			if !errors.As(err, &verr) {
				t.Fatalf("expected *Error, got %T (%v)", err, err)
			}
			if len(verr.Fields) != len(tt.wantFields) {
				t.Fatalf("fields = %+v, want %v", verr.Fields, tt.wantFields)
			}
			for i, f := range verr.Fields {
				if f.Field != tt.wantFields[i] {
					t.Errorf("field %d = %q, want %q", i, f.Field, tt.wantFields[i])
				}
			}
			if verr.Error() != tt.wantMsg {
				t.Errorf("message = %q, want %q", verr.Error(), tt.wantMsg)
			}
		})
	}
}
