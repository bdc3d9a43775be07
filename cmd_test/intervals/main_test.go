package intervals

import (
	"flag"
	"testing"

	"github.com/google/go-cmdtest"

	"github.com/vipcxj/intervals/cmd"
	"github.com/vipcxj/intervals/internal/clitest"
)

var update = flag.Bool("update", false, "update test files with results")

func TestCLI(t *testing.T) {
	ts, err := cmdtest.Read("testdata")
	if err != nil {
		t.Fatal(err)
	}
	ts.Commands["intervals"] = cmdtest.InProcessProgram("intervals", cmd.Execute)
	ts.Run(t, *update)
}

// TestCLIEnv covers flags defaulted from INTERVALS_* variables, which need
// the environment restored after each case.
func TestCLIEnv(t *testing.T) {
	s, err := clitest.Read("testdata", "intervals", cmd.Execute)
	if err != nil {
		t.Fatal(err)
	}
	s.Run(t, *update)
}
