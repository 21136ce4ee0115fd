package benchmark

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// ProfileCounts defines the profile counts for benchmarking.
var ProfileCounts = []int{1, 10, 100, 1000, 10000}

// SmallProfileCounts for quick benchmarks.
var SmallProfileCounts = []int{1, 10, 100}

var authTypes = []string{"user_account", "api_keys", "service_account"}

// newDocument renders a config document with count profiles, alternating
// inline tables and sections.
func newDocument(count int) string {
	var sb strings.Builder
	sb.WriteString("version = 2\n")
	sb.WriteString("telemetry_enabled = true\n")
	sb.WriteString("mongosh_path = \"/usr/local/bin/mongosh\"\n\n")

	for i := 0; i < count; i++ {
		name := fmt.Sprintf("profile_%d", i)
		auth := authTypes[i%len(authTypes)]
		if i%2 == 0 {
			fmt.Fprintf(&sb, "%s = { auth_type = %q, org_id = \"689eeba6559f4608e426b%03d\" }\n", name, auth, i%1000)
			continue
		}
		fmt.Fprintf(&sb, "\n[%s]\nauth_type = %q\nproject_id = \"689eebca5ebb720663a2d%03d\"\nservice = \"cloud\"\noutput = \"json\"\n",
			name, auth, i%1000)
	}
	return sb.String()
}

// writeDocument writes a document with count profiles to a temp file.
func writeDocument(b *testing.B, count int) string {
	b.Helper()
	path := filepath.Join(b.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(newDocument(count)), 0600); err != nil {
		b.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

// reportMemory reports memory usage.
func reportMemory(b *testing.B, prefix string) {
	var m runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&m)
	b.ReportMetric(float64(m.Alloc)/(1024*1024), prefix+"_MB")
	b.ReportMetric(float64(m.NumGC), prefix+"_GC")
}

// runWithProfileCounts runs a benchmark function with various profile counts.
func runWithProfileCounts(b *testing.B, counts []int, benchFn func(b *testing.B, count int)) {
	for _, count := range counts {
		b.Run(fmt.Sprintf("profiles_%d", count), func(b *testing.B) {
			benchFn(b, count)
		})
	}
}
