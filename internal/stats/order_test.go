package stats

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRankListedAndUnlisted(t *testing.T) {
	p := PortalPriority{"ciudadania", "empresas"}
	if got := p.Rank("ciudadania"); got != 0 {
		t.Fatalf("Rank(ciudadania): want=0 got=%d", got)
	}
	if got := p.Rank("empresas"); got != 1 {
		t.Fatalf("Rank(empresas): want=1 got=%d", got)
	}
	if got := p.Rank("cultura"); got != len(p) {
		t.Fatalf("Rank(cultura): want=%d got=%d", len(p), got)
	}
}

func TestLoadPortalPriorityMissingFileFallsBack(t *testing.T) {
	p, err := LoadPortalPriority(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadPortalPriority: %v", err)
	}
	if len(p) != len(DefaultPortalPriority) || p[0] != DefaultPortalPriority[0] {
		t.Fatalf("want default priority, got=%v", p)
	}
}

func TestLoadPortalPriorityReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portales.yaml")
	data := "portales:\n  - justicia\n  - ciudadania\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	p, err := LoadPortalPriority(path)
	if err != nil {
		t.Fatalf("LoadPortalPriority: %v", err)
	}
	if len(p) != 2 || p[0] != "justicia" || p[1] != "ciudadania" {
		t.Fatalf("want [justicia ciudadania], got=%v", p)
	}
}

func TestLoadPortalPriorityMalformedFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portales.yaml")
	if err := os.WriteFile(path, []byte("portales: [unclosed"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := LoadPortalPriority(path); err == nil {
		t.Fatalf("expected parse error, got nil")
	}
}

func TestLoadPortalPriorityEmptyListFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portales.yaml")
	if err := os.WriteFile(path, []byte("portales: []\n"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	p, err := LoadPortalPriority(path)
	if err != nil {
		t.Fatalf("LoadPortalPriority: %v", err)
	}
	if len(p) != len(DefaultPortalPriority) {
		t.Fatalf("want default priority, got=%v", p)
	}
}
