package singleton_test

import (
	"testing"

	"github.com/sghaida/singleton/singleton"
)

type benchConn struct{ dsn string }

func newBenchConn() *benchConn { return &benchConn{dsn: "postgres://prod"} }

func BenchmarkNew(b *testing.B) {
	b.ReportAllocs()
	ctor := singleton.Func(newBenchConn)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = singleton.New(ctor)
	}
}

func BenchmarkGet_Populated(b *testing.B) {
	cases := []struct {
		name string
		opts []singleton.Option
	}{
		{name: "thread-safe"},
		{name: "unsafe", opts: []singleton.Option{singleton.WithThreadSafe(false)}},
	}

	for _, tc := range cases {
		b.Run(tc.name, func(b *testing.B) {
			w := singleton.New(singleton.Func(newBenchConn), tc.opts...)
			_ = w.MustGet()

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = w.Get()
			}
		})
	}
}

func BenchmarkGet_PopulatedParallel(b *testing.B) {
	w := singleton.Of(singleton.Func(newBenchConn))
	_ = w.MustGet()

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _ = w.Get()
		}
	})
}

func BenchmarkGet_StrictRejected(b *testing.B) {
	w := singleton.New(singleton.Func(newBenchConn), singleton.WithStrict(true))
	_ = w.MustGet()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = w.Get()
	}
}

func BenchmarkResolve(b *testing.B) {
	r := singleton.NewRegistry()
	if _, err := singleton.Register(r, singleton.Func(newBenchConn)); err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = singleton.Resolve[benchConn](r)
	}
}
