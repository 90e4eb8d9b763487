package discord

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvisle/herald/internal/command"
)

func testContext() *command.Context {
	return &command.Context{Log: zerolog.Nop()}
}

func TestExecuteNoHandlers(t *testing.T) {
	_, err := execute(testContext(), []command.ClassicFunc(nil), &command.ClassicRequest{})
	assert.ErrorIs(t, err, command.ErrNotImplemented)
}

func TestExecuteSingleHandler(t *testing.T) {
	fns := []command.ClassicFunc{
		func(_ *command.Context, _ *command.ClassicRequest) (command.Response, error) {
			return command.CreateMessage("done"), nil
		},
	}
	resp, err := execute(testContext(), fns, &command.ClassicRequest{})
	require.NoError(t, err)
	assert.Equal(t, command.ResponseCreateMessage, resp.Kind)
	assert.Equal(t, "done", resp.Text)
}

func TestExecuteErrorBeatsSuccess(t *testing.T) {
	boom := errors.New("boom")
	fns := []command.ClassicFunc{
		func(_ *command.Context, _ *command.ClassicRequest) (command.Response, error) {
			return command.CreateMessage("fine"), nil
		},
		func(_ *command.Context, _ *command.ClassicRequest) (command.Response, error) {
			return command.None(), boom
		},
	}
	resp, err := execute(testContext(), fns, &command.ClassicRequest{})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, command.ResponseNone, resp.Kind)
}

func TestExecuteAllSucceedReturnsOne(t *testing.T) {
	fns := []command.ClassicFunc{
		func(_ *command.Context, _ *command.ClassicRequest) (command.Response, error) {
			return command.CreateMessage("first"), nil
		},
		func(_ *command.Context, _ *command.ClassicRequest) (command.Response, error) {
			return command.CreateMessage("second"), nil
		},
	}
	resp, err := execute(testContext(), fns, &command.ClassicRequest{})
	require.NoError(t, err)
	assert.Contains(t, []string{"first", "second"}, resp.Text)
}

func TestExecuteAllHandlersRun(t *testing.T) {
	ran := make(chan string, 3)
	mark := func(name string) command.ClassicFunc {
		return func(_ *command.Context, _ *command.ClassicRequest) (command.Response, error) {
			ran <- name
			return command.None(), nil
		}
	}
	_, err := execute(testContext(), []command.ClassicFunc{mark("a"), mark("b"), mark("c")}, &command.ClassicRequest{})
	require.NoError(t, err)
	assert.Len(t, ran, 3)
}
