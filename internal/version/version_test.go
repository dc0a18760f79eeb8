package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestNewInfo(t *testing.T) {
	info := NewInfo("1.2.3", "abc1234", "2026-01-01")

	if info.Version != "1.2.3" {
		t.Errorf("Version = %q, want 1.2.3", info.Version)
	}
	if info.GoVer != runtime.Version() {
		t.Errorf("GoVer = %q, want %q", info.GoVer, runtime.Version())
	}
	if info.OS != runtime.GOOS || info.Arch != runtime.GOARCH {
		t.Errorf("OS/Arch = %s/%s, want %s/%s", info.OS, info.Arch, runtime.GOOS, runtime.GOARCH)
	}
}

func TestInfoString(t *testing.T) {
	info := NewInfo("1.2.3", "abc1234", "2026-01-01")

	s := info.String()
	if !strings.Contains(s, "ventctl 1.2.3") || !strings.Contains(s, "abc1234") {
		t.Errorf("String() = %q", s)
	}

	full := info.FullString()
	for _, want := range []string{"ventctl 1.2.3", "Commit:", "Built:", "Go:", "OS/Arch:"} {
		if !strings.Contains(full, want) {
			t.Errorf("FullString() missing %q: %q", want, full)
		}
	}
}
