package shell

import (
	"bytes"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClearScreenCommands(t *testing.T) {
	assert.Equal(t, []Command{{Exe: "cmd", Args: []string{"/c", "cls"}}}, ClearScreenCommands("windows"))
	assert.Equal(t, []Command{{Exe: "clear"}}, ClearScreenCommands("linux"))
	assert.Equal(t, []Command{{Exe: "clear"}}, ClearScreenCommands("darwin"))
}

func TestClearHistoryCommands(t *testing.T) {
	assert.Equal(t, "doskey", ClearHistoryCommands("windows")[0].Exe)

	cmds := ClearHistoryCommands("linux")
	require.Len(t, cmds, 2)
	assert.Equal(t, []string{"-c", "history -c"}, cmds[0].Args)
	assert.Equal(t, []string{"-c", "history -w"}, cmds[1].Args)
}

func TestRunReportsFirstError(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses sh")
	}
	var stdout, stderr bytes.Buffer
	err := run([]Command{
		{Exe: "sh", Args: []string{"-c", "echo one"}},
		{Exe: "sh", Args: []string{"-c", "exit 3"}},
		{Exe: "sh", Args: []string{"-c", "echo two"}},
	}, &stdout, &stderr)
	assert.Error(t, err)
	assert.Equal(t, "one\ntwo\n", stdout.String())

	err = run([]Command{{Exe: "this-program-does-not-exist-notedb"}}, &stdout, &stderr)
	assert.Error(t, err)
}
