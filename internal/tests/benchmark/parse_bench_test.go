package benchmark

import (
	"testing"

	"github.com/yndnr/atlascfg/internal/cli/config"
	"github.com/yndnr/atlascfg/internal/infra/confloader"
)

// BenchmarkParse benchmarks decoding documents of increasing size.
func BenchmarkParse(b *testing.B) {
	runWithProfileCounts(b, ProfileCounts, func(b *testing.B, count int) {
		doc := newDocument(count)

		b.SetBytes(int64(len(doc)))
		b.ResetTimer()
		b.ReportAllocs()

		for i := 0; i < b.N; i++ {
			cfg, err := config.Parse(doc)
			if err != nil {
				b.Fatalf("Parse failed: %v", err)
			}
			if len(cfg.Profiles) != count {
				b.Fatalf("Parse returned %d profiles, want %d", len(cfg.Profiles), count)
			}
		}

		b.StopTimer()
		reportMemory(b, "after")
	})
}

// BenchmarkParse_Error benchmarks the failure path on an unknown auth type
// in the last profile.
func BenchmarkParse_Error(b *testing.B) {
	runWithProfileCounts(b, SmallProfileCounts, func(b *testing.B, count int) {
		doc := newDocument(count) + "\n[zz_last]\nauth_type = \"admin\"\n"

		b.ResetTimer()
		b.ReportAllocs()

		for i := 0; i < b.N; i++ {
			if _, err := config.Parse(doc); config.KindOf(err) != config.KindUnknownVariant {
				b.Fatalf("Parse error = %v, want unknown variant", err)
			}
		}
	})
}

// BenchmarkLoad benchmarks reading and decoding a config file.
func BenchmarkLoad(b *testing.B) {
	runWithProfileCounts(b, SmallProfileCounts, func(b *testing.B, count int) {
		path := writeDocument(b, count)

		b.ResetTimer()
		b.ReportAllocs()

		for i := 0; i < b.N; i++ {
			if _, err := config.Load(path); err != nil {
				b.Fatalf("Load failed: %v", err)
			}
		}
	})
}

// BenchmarkLoader_Get benchmarks effective value lookups through the
// layered loader.
func BenchmarkLoader_Get(b *testing.B) {
	path := writeDocument(b, 100)

	l := confloader.NewLoader(
		confloader.WithConfigFile(path),
		confloader.WithEnvFilter(config.IsFixedKey),
	)
	if err := l.Load(); err != nil {
		b.Fatalf("Load failed: %v", err)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if l.Get("profile_42.org_id") == nil {
			b.Fatal("profile_42.org_id not found")
		}
	}
}
