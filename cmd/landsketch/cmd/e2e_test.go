package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const e2ePlan = `
plan "e2e lot"

boundary (0,0) (10,0) (10,10) (0,10)

floor 0 {
  wall w1 (0,0) -> (5,0)
  wall w2 (5,0) -> (5,5)
  wall w3 (5,5) -> (0,5)
  wall w4 (0,5) -> (0,0)
}

place cabin size 4 x 4 at (5,5) setback 1.0
`

const e2eBadPlan = `
boundary (0,0) (10,10) (10,0) (0,10)

place tower size 4 x 4 at (1,1)
`

func writePlan(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// runCommand executes the root command with args and returns captured
// stdout plus the command error.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// Capture stdout
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	var buf bytes.Buffer
	done := make(chan struct{})
	go func() {
		buf.ReadFrom(r)
		close(done)
	}()

	// Reset flags to prevent accumulation between tests
	roomsJSON = false
	placeSize = ""
	placeAt = ""
	placeRotate = 0
	placeSetback = 0
	placeSnap = true
	convertOut = ""
	verbose = false

	rootCmd.SetArgs(args)
	err := rootCmd.Execute()

	w.Close()
	os.Stdout = old
	<-done

	return buf.String(), err
}

func TestCheckE2E(t *testing.T) {
	good := writePlan(t, "good.plan", e2ePlan)
	out, err := runCommand(t, "check", good)
	if err != nil {
		t.Fatalf("check failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "all checks passed") {
		t.Errorf("output missing pass line:\n%s", out)
	}

	// Bowtie boundary + placement poking outside: both flagged.
	bad := writePlan(t, "bad.plan", e2eBadPlan)
	out, err = runCommand(t, "check", bad)
	if err == nil {
		t.Fatal("check of an invalid design should fail")
	}
	if !strings.Contains(out, "FAIL boundary edges do not cross") {
		t.Errorf("output missing boundary failure:\n%s", out)
	}
	if !strings.Contains(out, "FAIL placement tower") {
		t.Errorf("output missing placement failure:\n%s", out)
	}
}

func TestCheckOpenWallRunE2E(t *testing.T) {
	// w4 is missing, so the run ends in two dangling endpoints; the fence
	// joins nothing but is exempt from the connectivity check.
	openPlan := `
boundary (0,0) (10,0) (10,10) (0,10)

floor 0 {
  wall w1 (0,0) -> (5,0)
  wall w2 (5,0) -> (5,5)
  wall w3 (5,5) -> (0,5)
  fence f1 (8,8) -> (9,9)
}
`
	path := writePlan(t, "open.plan", openPlan)
	out, err := runCommand(t, "check", path)
	if err == nil {
		t.Fatal("check of an open wall run should fail")
	}
	if !strings.Contains(out, "FAIL floor 0 wall runs are closed (2 open endpoint(s))") {
		t.Errorf("output missing connectivity failure:\n%s", out)
	}

	// Closing the loop clears the failure.
	closed := writePlan(t, "closed.plan", strings.Replace(openPlan,
		"fence f1", "wall w4 (0,5) -> (0,0)\n  fence f1", 1))
	if out, err := runCommand(t, "check", closed); err != nil {
		t.Fatalf("closed run should pass: %v\n%s", err, out)
	}
}

func TestInfoE2E(t *testing.T) {
	path := writePlan(t, "lot.plan", e2ePlan)
	out, err := runCommand(t, "info", path)
	if err != nil {
		t.Fatalf("info failed: %v", err)
	}
	for _, want := range []string{"e2e lot", "4 vertices", "100.00 m2", "40.00 m", "4 across 1 floor(s)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRoomsE2E(t *testing.T) {
	path := writePlan(t, "lot.plan", e2ePlan)
	out, err := runCommand(t, "rooms", path)
	if err != nil {
		t.Fatalf("rooms failed: %v", err)
	}
	if !strings.Contains(out, "room at (2.50, 2.50)") {
		t.Errorf("output missing detected room:\n%s", out)
	}

	out, err = runCommand(t, "rooms", path, "--json")
	if err != nil {
		t.Fatalf("rooms --json failed: %v", err)
	}
	for _, want := range []string{`"area_m2": 25`, `"wall_ids"`, `"w1"`} {
		if !strings.Contains(out, want) {
			t.Errorf("JSON output missing %q:\n%s", want, out)
		}
	}
}

func TestPlaceE2E(t *testing.T) {
	path := writePlan(t, "lot.plan", e2ePlan)

	out, err := runCommand(t, "place", path, "--size", "4x4", "--at", "5,5", "--setback", "1")
	if err != nil {
		t.Fatalf("valid placement rejected: %v\n%s", err, out)
	}
	if !strings.Contains(out, "placement valid") {
		t.Errorf("output missing verdict:\n%s", out)
	}

	// Corner at (-1,-1) lies outside the parcel.
	if _, err := runCommand(t, "place", path, "--size", "4x4", "--at", "1,1"); err == nil {
		t.Error("out-of-bounds placement should fail")
	}
}

func TestConvertE2E(t *testing.T) {
	path := writePlan(t, "lot.plan", e2ePlan)
	outPath := filepath.Join(t.TempDir(), "lot.json")

	if _, err := runCommand(t, "convert", path, "--out", outPath); err != nil {
		t.Fatalf("convert failed: %v", err)
	}

	// The JSON output round-trips through every other command.
	out, err := runCommand(t, "rooms", outPath)
	if err != nil {
		t.Fatalf("rooms on converted JSON failed: %v", err)
	}
	if !strings.Contains(out, "room at (2.50, 2.50)") {
		t.Errorf("converted design lost its room:\n%s", out)
	}
}
