package cudrv

import (
	"strings"
	"testing"
)

func TestSymbols(t *testing.T) {
	s := Symbols()
	if len(s) != 29 {
		t.Fatalf("%d wrapped symbols, want 29", len(s))
	}
	seen := map[string]Version{}
	for _, y := range s {
		if !strings.HasPrefix(y.Name, "cu") {
			t.Fatalf("alien symbol %q", y.Name)
		}
		if y.Version != CUDA11 && y.Version != CUDA12 {
			t.Fatalf("%s carries version %d", y.Name, int(y.Version))
		}
		if _, ok := seen[y.Name]; ok {
			t.Fatalf("duplicate symbol %q", y.Name)
		}
		seen[y.Name] = y.Version
	}
	if seen[symInit] != CUDA11 {
		t.Fatal("cuInit not registered at the 11.x baseline")
	}
	if seen["cuTensorMapEncodeTiled"] != CUDA12 || seen["cuTensorMapReplaceAddress"] != CUDA12 {
		t.Fatal("tensor map entry points not gated at 12.x")
	}
	s[0].Name = "mutated"
	if Symbols()[0].Name == "mutated" {
		t.Fatal("Symbols leaks the internal table")
	}
}

func TestResultString(t *testing.T) {
	// the fake driver names the out-of-memory code only
	if got := ErrorOutOfMemory.String(); got != "CUDA_ERROR_OUT_OF_MEMORY" {
		t.Fatalf("String() = %q", got)
	}
	if got := Result(7777).String(); got != "CUDA_ERROR(7777)" {
		t.Fatalf("fallback String() = %q", got)
	}
}

func TestResultErr(t *testing.T) {
	if err := Success.Err(); err != nil {
		t.Fatalf("Success.Err() = %v", err)
	}
	err := ErrorOutOfMemory.Err()
	if err == nil || !strings.Contains(err.Error(), "CUDA_ERROR_OUT_OF_MEMORY") {
		t.Fatalf("Err() = %v", err)
	}
}
