package testkit

import (
	"os"
	"strings"
	"testing"
)

func TestDiceSample_Deterministic(t *testing.T) {
	a := NewKit(42).DiceSample(50, 0.85, 0.05)
	b := NewKit(42).DiceSample(50, 0.85, 0.05)

	if len(a.Values) != 50 {
		t.Fatalf("n = %d, want 50", len(a.Values))
	}
	for i := range a.Values {
		if a.Values[i] != b.Values[i] {
			t.Fatalf("values diverge at %d for identical seeds", i)
		}
	}
}

func TestDiceSample_Clipped(t *testing.T) {
	sample := NewKit(7).DiceSample(500, 0.95, 0.2)
	for _, v := range sample.Values {
		if v < 0 || v > 1 {
			t.Fatalf("value %g outside [0, 1]", v)
		}
	}
}

func TestWriteCSV(t *testing.T) {
	dir := t.TempDir()
	path, err := NewKit(1).WriteCSV(dir, []float64{0.5, 0.75})
	if err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}
	content := string(raw)
	if !strings.HasPrefix(content, "Case,Dice\n") {
		t.Errorf("missing header in %q", content)
	}
	if !strings.Contains(content, "1,0.5\n") || !strings.Contains(content, "2,0.75\n") {
		t.Errorf("missing rows in %q", content)
	}
}
