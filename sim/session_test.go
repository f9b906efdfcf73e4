package sim

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	goccy "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"

	seaofstars "github.com/tenth-speed-writer/sea-of-stars-tech-demo"
	"github.com/tenth-speed-writer/sea-of-stars-tech-demo/anatomy"
	"github.com/tenth-speed-writer/sea-of-stars-tech-demo/catalog"
	"github.com/tenth-speed-writer/sea-of-stars-tech-demo/storage"
)

func newSession(t *testing.T, store *storage.Store) (*Session, *bytes.Buffer) {
	t.Helper()
	return newAuditedSession(t, store, nil)
}

func newAuditedSession(t *testing.T, store *storage.Store, audit *storage.AuditLogger) (*Session, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	s, err := NewSession(context.Background(), "billy", "humanoid", catalog.New("", time.Minute, 10), store, audit, NewRand(1), out)
	if err != nil {
		t.Fatal(err)
	}
	return s, out
}

func TestParseDamage(t *testing.T) {
	d, err := parseDamage([]string{"impact=5", "Energy=2.5", "impact=1"})
	if err != nil {
		t.Fatal(err)
	}
	if want := (anatomy.Damage{Impact: 6, Energy: 2.5}); d != want {
		t.Errorf("got %+v, want %+v", d, want)
	}
	for _, args := range [][]string{{"impact"}, {"psychic=3"}, {"shear=lots"}, {"corrosive=-1"}} {
		if _, err := parseDamage(args); !errors.Is(err, seaofstars.ErrValidation) {
			t.Errorf("%v: got %v, want ErrValidation", args, err)
		}
	}
}

func TestHitReports(t *testing.T) {
	s, out := newSession(t, nil)
	before := s.Body().Integrity()
	if err := s.Exec(context.Background(), "hit impact=5 shear=5"); err != nil {
		t.Fatal(err)
	}
	if s.Body().Integrity() >= before {
		t.Errorf("integrity did not drop from %v", before)
	}
	if !strings.Contains(out.String(), "struck") {
		t.Errorf("got output %q", out.String())
	}
}

func TestRepeatUntilEmpty(t *testing.T) {
	s, out := newSession(t, nil)
	if err := s.Exec(context.Background(), "repeat 10000 hit impact=40 energy=40"); err != nil {
		t.Fatal(err)
	}
	if !s.Body().IsEmpty() {
		t.Fatalf("got limbs %v, want none", s.Body().LimbNames())
	}
	if !strings.Contains(out.String(), "billy has no limbs left") {
		t.Errorf("output lacks death notice:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "limbs destroyed") && !strings.Contains(out.String(), "1 limb destroyed") {
		t.Errorf("output lacks destruction notice:\n%s", out.String())
	}
	if err := s.Exec(context.Background(), "hit impact=1"); !errors.Is(err, seaofstars.ErrPrecondition) {
		t.Errorf("got %v, want ErrPrecondition", err)
	}
	if err := s.Exec(context.Background(), "reset"); err != nil {
		t.Fatal(err)
	}
	if s.Body().IsEmpty() {
		t.Errorf("reset left body empty")
	}
}

func TestStatusAndHelp(t *testing.T) {
	s, out := newSession(t, nil)
	out.Reset()
	if err := s.Exec(context.Background(), "status"); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Limb", "Integrity", "Torso Tissue", "7 limbs"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("status lacks %q:\n%s", want, out.String())
		}
	}
	out.Reset()
	if err := s.Exec(context.Background(), "help"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "repeat N hit") {
		t.Errorf("help lacks repeat:\n%s", out.String())
	}
}

func TestExecErrors(t *testing.T) {
	s, _ := newSession(t, nil)
	ctx := context.Background()
	for _, line := range []string{"dance", "repeat x hit impact=1", "repeat 3 status", "reset kraken"} {
		if err := s.Exec(ctx, line); err == nil {
			t.Errorf("%q: got nil error", line)
		}
	}
	if err := s.Exec(ctx, "save"); !errors.Is(err, errNoStore) {
		t.Errorf("got %v, want errNoStore", err)
	}
	for _, line := range []string{"", "   ", "# comment"} {
		if err := s.Exec(ctx, line); err != nil {
			t.Errorf("%q: got %v", line, err)
		}
	}
}

func TestRunContinuesPastErrors(t *testing.T) {
	s, out := newSession(t, nil)
	script := "hit impact=3\nbogus\nreset drone\nstatus\n"
	if err := s.Run(context.Background(), strings.NewReader(script)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), `error: `) || !strings.Contains(out.String(), "Materia Core") {
		t.Errorf("got output:\n%s", out.String())
	}
}

func TestSaveAndResume(t *testing.T) {
	ctx := context.Background()
	store, err := storage.Open(ctx, ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	s, _ := newSession(t, store)
	for _, line := range []string{"reset drone", "repeat 5 hit shear=15", "save"} {
		if err := s.Exec(ctx, line); err != nil {
			t.Fatal(err)
		}
	}
	want := s.Body().Integrity()

	resumed, out := newSession(t, store)
	if got := resumed.Body().Integrity(); got != want {
		t.Errorf("got integrity %v, want %v", got, want)
	}
	if !strings.Contains(out.String(), "resumed as a drone") {
		t.Errorf("got output %q", out.String())
	}
	out.Reset()
	if err := resumed.Exec(ctx, "list"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "billy") {
		t.Errorf("list lacks billy:\n%s", out.String())
	}
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("SOS_BLUEPRINT", "drone")
	t.Setenv("SOS_SEED", "42")
	t.Setenv("SOS_CACHE_TTL", "30s")
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Blueprint != "drone" || cfg.Seed != 42 || cfg.CacheTTL != 30*time.Second || cfg.ID != "subject" {
		t.Errorf("got %+v", cfg)
	}
}

func readAuditEvents(t *testing.T, path string) []string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var events []string
	for _, line := range strings.Split(strings.TrimSpace(string(b)), "\n") {
		var entry struct {
			Body  string `json:"body"`
			Event string `json:"event"`
		}
		if err := goccy.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("parsing %q: %v", line, err)
		}
		if entry.Body != "billy" {
			t.Errorf("got body %q in %s", entry.Body, line)
		}
		events = append(events, entry.Event)
	}
	return events
}

func TestAuditedSessionLogsInitialReset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.log")
	audit, err := storage.NewAuditLogger(path)
	if err != nil {
		t.Fatal(err)
	}
	s, _ := newAuditedSession(t, nil, audit)
	if err := s.Exec(context.Background(), "hit impact=5"); err != nil {
		t.Fatal(err)
	}
	if err := audit.Close(); err != nil {
		t.Fatal(err)
	}
	want := []string{storage.AuditEventReset, storage.AuditEventHit}
	if diff := cmp.Diff(want, readAuditEvents(t, path)); diff != "" {
		t.Errorf("events (-want +got):\n%s", diff)
	}
}

func TestAuditedSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.log")
	audit, err := storage.NewAuditLogger(path)
	if err != nil {
		t.Fatal(err)
	}
	s, _ := newAuditedSession(t, nil, audit)
	for _, line := range []string{"reset drone", "hit impact=10", "hit energy=5"} {
		if err := s.Exec(context.Background(), line); err != nil {
			t.Fatal(err)
		}
	}
	if err := audit.Close(); err != nil {
		t.Fatal(err)
	}
	want := []string{storage.AuditEventReset, storage.AuditEventReset, storage.AuditEventHit, storage.AuditEventHit}
	if diff := cmp.Diff(want, readAuditEvents(t, path)); diff != "" {
		t.Errorf("events (-want +got):\n%s", diff)
	}
}
