package host

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func newTestFatal() (*Fatal, *bytes.Buffer, *[]int) {
	var buf bytes.Buffer
	var codes []int
	f := NewFatal(log.New(&buf)).WithExit(func(code int) {
		codes = append(codes, code)
	})
	return f, &buf, &codes
}

func TestStaticSpeed(t *testing.T) {
	tests := []struct {
		name    string
		speed   float64
		wantErr bool
	}{
		{"typical", 400, false},
		{"zero", 0, false},
		{"negative", -1, true},
		{"nan", math.NaN(), true},
		{"inf", math.Inf(1), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Static{SpeedValue: tc.speed}.Speed()
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidSpeed) {
					t.Errorf("Speed() error = %v, expected ErrInvalidSpeed", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Speed() failed: %v", err)
			}
			if got != tc.speed {
				t.Errorf("Speed() = %v, expected %v", got, tc.speed)
			}
		})
	}
}

func TestOnceSpeedReadsOnce(t *testing.T) {
	calls := 0
	src := OnceSpeed(SpeedFunc(func() (float64, error) {
		calls++
		return float64(calls) * 100, nil
	}))

	for i := 0; i < 5; i++ {
		got, err := src.Speed()
		if err != nil {
			t.Fatalf("Speed() failed: %v", err)
		}
		if got != 100 {
			t.Errorf("Speed() call %d = %v, expected first value 100", i, got)
		}
	}
	if calls != 1 {
		t.Errorf("underlying source called %d times, expected 1", calls)
	}

	if OnceSpeed(src) != src {
		t.Error("OnceSpeed should not double-wrap")
	}
}

func TestOnceSpeedKeepsError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	src := OnceSpeed(SpeedFunc(func() (float64, error) {
		calls++
		return 0, boom
	}))

	for i := 0; i < 3; i++ {
		if _, err := src.Speed(); !errors.Is(err, boom) {
			t.Errorf("Speed() error = %v, expected boom", err)
		}
	}
	if calls != 1 {
		t.Errorf("underlying source called %d times, expected 1", calls)
	}
}

func TestGreetingSources(t *testing.T) {
	got, err := Static{GreetingText: "Hello, World!"}.Greeting()
	if err != nil || got != "Hello, World!" {
		t.Errorf("Static.Greeting() = %q, %v", got, err)
	}

	n := 0
	fn := GreetingFunc(func() (string, error) {
		n++
		return strings.Repeat("!", n), nil
	})
	first, _ := fn.Greeting()
	second, _ := fn.Greeting()
	if first != "!" || second != "!!" {
		t.Errorf("GreetingFunc should be polled on every call, got %q then %q", first, second)
	}
}

func TestFatalPanicMessage(t *testing.T) {
	f, buf, codes := newTestFatal()
	f.Panic(PanicTagMessage, []byte("index out of bounds"))

	if len(*codes) != 1 || (*codes)[0] != ExitFatal {
		t.Fatalf("exit codes = %v, expected [1]", *codes)
	}
	if !strings.Contains(buf.String(), "index out of bounds") {
		t.Errorf("log output %q should contain the panic message", buf.String())
	}
}

func TestFatalPanicUnreachable(t *testing.T) {
	tests := []struct {
		name    string
		tag     PanicTag
		payload []byte
		logs    string
	}{
		{"unknown tag", 7, []byte("whatever"), "unsupported tag"},
		{"non-text payload", PanicTagMessage, []byte{0xff, 0xfe, 0xfd}, "malformed payload"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f, buf, codes := newTestFatal()
			f.Panic(tc.tag, tc.payload)

			if len(*codes) != 1 || (*codes)[0] != ExitFatal {
				t.Fatalf("exit codes = %v, expected [1]", *codes)
			}
			if !strings.Contains(buf.String(), tc.logs) {
				t.Errorf("log output %q should contain %q", buf.String(), tc.logs)
			}
		})
	}
}

func TestFatalAbort(t *testing.T) {
	f, buf, codes := newTestFatal()
	f.Abort("could not load config", errors.New("no such file"), "path", "x.yaml")

	if len(*codes) != 1 || (*codes)[0] != ExitFatal {
		t.Fatalf("exit codes = %v, expected [1]", *codes)
	}
	out := buf.String()
	for _, want := range []string{"could not load config", "no such file", "x.yaml"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q should contain %q", out, want)
		}
	}
}

func TestFatalRecover(t *testing.T) {
	f, buf, codes := newTestFatal()

	func() {
		defer f.Recover()
		panic("paddle query matched twice")
	}()

	if len(*codes) != 1 || (*codes)[0] != ExitFatal {
		t.Fatalf("exit codes = %v, expected [1]", *codes)
	}
	if !strings.Contains(buf.String(), "paddle query matched twice") {
		t.Errorf("log output %q should contain the recovered value", buf.String())
	}

	// No panic, no exit.
	f2, _, codes2 := newTestFatal()
	func() {
		defer f2.Recover()
	}()
	if len(*codes2) != 0 {
		t.Errorf("Recover without panic should not exit, got %v", *codes2)
	}
}
