package cli

import (
	"bytes"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestTransitionsCommand(t *testing.T) {
	t.Run("single status", func(t *testing.T) {
		out, err := runCLI(t, "transitions", "deposit_sent")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "DEPOSIT_SENT") || !strings.Contains(out, "DEPOSIT_RECEIVED, CANCELLED") {
			t.Fatalf("unexpected output: %q", out)
		}
	})

	t.Run("terminal status", func(t *testing.T) {
		out, err := runCLI(t, "transitions", "COMPLETED")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "(terminal)") {
			t.Fatalf("expected terminal marker, got %q", out)
		}
	})

	t.Run("full table", func(t *testing.T) {
		out, err := runCLI(t, "transitions")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := strings.Count(out, "->"); got != 8 {
			t.Fatalf("expected 8 rows, got %d: %q", got, out)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		if _, err := runCLI(t, "transitions", "PAID"); err == nil {
			t.Fatalf("expected error for unknown status")
		}
	})
}

func TestMigrateCommand_UnsupportedDriver(t *testing.T) {
	_, err := runCLI(t, "migrate", "--driver", "memory")
	if err == nil || !strings.Contains(err.Error(), "unsupported driver") {
		t.Fatalf("expected unsupported driver error, got %v", err)
	}
}

func TestTimelineCommand_MemoryDriverHasNoEvents(t *testing.T) {
	out, err := runCLI(t, "timeline", "missing-id", "--driver", "memory")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "no events") {
		t.Fatalf("unexpected output: %q", out)
	}
}
