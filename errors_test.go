package gui

import (
	"errors"
	"io/fs"
	"testing"
)

func TestError_Codes(t *testing.T) {
	cause := fs.ErrNotExist
	err := WrapError(ErrCodeConfig, cause, "read config %s", "gui.toml")

	if !IsCode(err, ErrCodeConfig) {
		t.Error("IsCode should match the error's own code")
	}
	if IsCode(err, ErrCodeOwnership) {
		t.Error("IsCode should not match a different code")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("errors.Is should see the wrapped cause")
	}
	if got := CodeOf(err); got != ErrCodeConfig {
		t.Errorf("CodeOf() = %s, want %s", got, ErrCodeConfig)
	}
	if got := CodeOf(errors.New("plain")); got != "" {
		t.Errorf("CodeOf(plain) = %q, want empty", got)
	}
	if want := "CONFIG: read config gui.toml: file does not exist"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestOptions_PanicWithError(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(*Error)
		if !ok {
			t.Fatalf("recover() = %v, want *Error", r)
		}
		if err.Code != ErrCodeInvalidArgument {
			t.Errorf("Code = %s, want %s", err.Code, ErrCodeInvalidArgument)
		}
	}()
	New(WithWidth(-1))
}
