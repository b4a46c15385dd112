package operation

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/grigouze/gandi.cli/cmd/commands/cmdtest"
	"github.com/grigouze/gandi.cli/internal/domain"
)

func TestInfo(t *testing.T) {
	b := &cmdtest.Backend{OpStep: domain.StepRun}
	cmdtest.Setup(t, b)

	stdout, _, err := cmdtest.Execute(t, NewCommand(), "info", "21")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := b.Last("OperationInfo").Args[0]; got != 21 {
		t.Errorf("operation id = %v, want 21", got)
	}
	for _, want := range []string{"id:", "21", "step:", "RUN"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("expected %q in output:\n%s", want, stdout)
		}
	}
}

func TestInfo_JSON(t *testing.T) {
	cmdtest.Setup(t, &cmdtest.Backend{})

	stdout, _, err := cmdtest.Execute(t, NewCommand(), "info", "21", "-o", "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout, `"step": "DONE"`) {
		t.Errorf("unexpected output:\n%s", stdout)
	}
}

func TestInfo_InvalidID(t *testing.T) {
	for _, arg := range []string{"abc", "0", "-3"} {
		b := &cmdtest.Backend{}
		cmdtest.Setup(t, b)

		_, _, err := cmdtest.Execute(t, NewCommand(), "info", "--", arg)
		if err == nil || !strings.Contains(err.Error(), "invalid operation id") {
			t.Fatalf("info %s: expected invalid id error, got %v", arg, err)
		}
		if len(b.Calls) != 0 {
			t.Errorf("info %s: backend called: %v", arg, b.Methods())
		}
	}
}

func TestWait(t *testing.T) {
	b := &cmdtest.Backend{}
	cmdtest.Setup(t, b)

	stdout, _, err := cmdtest.Execute(t, NewCommand(), "wait", "31", "32")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Operation 31: done\nOperation 31 completed.\nOperation 32: done\nOperation 32 completed.\n"
	if diff := cmp.Diff(want, stdout); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestWait_Failed(t *testing.T) {
	b := &cmdtest.Backend{OpStep: domain.StepError}
	cmdtest.Setup(t, b)

	stdout, _, err := cmdtest.Execute(t, NewCommand(), "wait", "51", "52")
	if !errors.Is(err, domain.ErrOperationFailed) {
		t.Fatalf("expected ErrOperationFailed, got %v", err)
	}
	if strings.Contains(stdout, "completed") {
		t.Errorf("failed operation reported as completed:\n%s", stdout)
	}
	if diff := cmp.Diff([]string{"OperationInfo", "OperationInfo"}, b.Methods()); diff != "" {
		t.Errorf("every operation should be awaited (-want +got):\n%s", diff)
	}
}

func TestWait_RequiresID(t *testing.T) {
	cmdtest.Setup(t, &cmdtest.Backend{})

	if _, _, err := cmdtest.Execute(t, NewCommand(), "wait"); err == nil {
		t.Fatal("expected error without an operation id")
	}
}
