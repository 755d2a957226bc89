package script

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gogeom/euclid"
	"github.com/gogeom/euclid/trace"
)

func TestRegisteredByImport(t *testing.T) {
	if !trace.IsRegistered("script") {
		t.Fatal("script backend not registered")
	}
	b, err := trace.NewBackend("script")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := b.(*Backend); !ok {
		t.Fatalf("registry returned %T", b)
	}
}

func TestScriptOutput(t *testing.T) {
	rec := trace.NewRecorder()
	pl := euclid.NewPlane(euclid.WithTracer(rec))

	a, err := pl.Int(1)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := a.Add(a); err != nil {
		t.Fatal(err)
	}

	b := New()
	if err := rec.Finish().Playback(b); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	if out == "" {
		t.Fatal("empty script")
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	for _, line := range lines {
		if !strings.HasPrefix(line, "point ") &&
			!strings.HasPrefix(line, "line ") &&
			!strings.HasPrefix(line, "circle ") {
			t.Errorf("malformed script line %q", line)
		}
	}
}

func TestScriptDeterministic(t *testing.T) {
	render := func() string {
		rec := trace.NewRecorder()
		pl := euclid.NewPlane(euclid.WithTracer(rec))
		x, err := pl.Int(5)
		if err != nil {
			t.Fatal(err)
		}
		y, err := pl.Int(3)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := x.Mul(y); err != nil {
			t.Fatal(err)
		}
		b := New()
		if err := rec.Finish().Playback(b); err != nil {
			t.Fatal(err)
		}
		return b.String()
	}

	if render() != render() {
		t.Errorf("identical computations produced different scripts")
	}
}

func TestWriteTo(t *testing.T) {
	b := New()
	if err := b.Begin(1); err != nil {
		t.Fatal(err)
	}
	if err := b.Point(euclid.IntPt(0, 0)); err != nil {
		t.Fatal(err)
	}
	if err := b.End(); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	n, err := b.WriteTo(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != int64(buf.Len()) || buf.Len() == 0 {
		t.Errorf("WriteTo wrote %d bytes, buffer has %d", n, buf.Len())
	}
}
