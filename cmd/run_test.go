package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/propcheck/internal/controller"
	"github.com/mouse-blink/propcheck/internal/suite"
)

func TestRunCmd_ForwardsArgs(t *testing.T) {
	m := &mockRunner{}
	swapRunner(t, m)

	m.On("Run", mock.MatchedBy(func(args suite.RunArgs) bool {
		return len(args.Names) == 2 &&
			args.Names[0] == "reverse-involution" &&
			args.Names[1] == "sort-idempotent" &&
			args.Threads == 2 &&
			args.Seed == 5
	})).Return([]controller.Summary{}, nil)

	cmd := newTestRoot()
	cmd.SetArgs([]string{
		"run", "--simple", "--parallel", "2", "--seed", "5",
		"reverse-involution", "sort-idempotent",
	})

	require.NoError(t, cmd.Execute())
	m.AssertExpectations(t)
}

func TestRunCmd_ParamFlags(t *testing.T) {
	m := &mockRunner{}
	swapRunner(t, m)

	m.On("Run", mock.MatchedBy(func(args suite.RunArgs) bool {
		return args.Params.MinSuccessfulTests == 10 &&
			args.Params.MaxDiscardedTests == 20 &&
			args.Params.MaxSize == 30
	})).Return([]controller.Summary{}, nil)

	cmd := newTestRoot()
	cmd.SetArgs([]string{
		"run", "--simple",
		"--min-success", "10", "--max-discarded", "20", "--max-size", "30",
	})

	require.NoError(t, cmd.Execute())
	m.AssertExpectations(t)
}

func TestListCmd_DelegatesToRunner(t *testing.T) {
	m := &mockRunner{}
	swapRunner(t, m)

	m.On("List").Return(nil)

	cmd := newTestRoot()
	cmd.SetArgs([]string{"list", "--simple"})

	require.NoError(t, cmd.Execute())
	m.AssertExpectations(t)
}
