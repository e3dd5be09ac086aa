package cudrv

import (
	"testing"
)

func benchWorld(b *testing.B) *stubWorld {
	b.Helper()
	w := newStubWorld()
	b.Cleanup(w.install())
	return w
}

func BenchmarkInvokeWarm(b *testing.B) {
	w := benchWorld(b)
	w.add(symFoo, 100, func(x int32) int32 { return x * 2 })
	p := &proc[typeBinary]{sym: Symbol{Name: symFoo, Version: 100}}
	p.invoke()(1)
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p.invoke()(int32(i))
	}
}

func BenchmarkAvailableWarm(b *testing.B) {
	w := benchWorld(b)
	w.add(symFoo, 100, func(x int32) int32 { return x })
	Available(symFoo, 100)
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Available(symFoo, 100)
	}
}

func double(x int32) int32 {
	return x * 2
}

func BenchmarkInvokeRaw(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		double(int32(i))
	}
}
