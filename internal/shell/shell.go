// Package shell runs the terminal housekeeping commands offered next to
// the store commands. They only shell out and never touch a database.
package shell

import (
	"io"
	"os/exec"
	"runtime"
)

// Command is an external program and its arguments.
type Command struct {
	Exe  string
	Args []string
}

// ClearScreenCommands returns what clears the terminal on goos.
func ClearScreenCommands(goos string) []Command {
	if goos == "windows" {
		return []Command{{Exe: "cmd", Args: []string{"/c", "cls"}}}
	}
	return []Command{{Exe: "clear"}}
}

// ClearHistoryCommands returns what clears the command history on goos.
// On unix it only affects the history of the spawned shell and its
// history file, not the history held in memory by the calling shell.
func ClearHistoryCommands(goos string) []Command {
	if goos == "windows" {
		return []Command{{Exe: "doskey", Args: []string{"/reinstall"}}}
	}
	return []Command{
		{Exe: "sh", Args: []string{"-c", "history -c"}},
		{Exe: "sh", Args: []string{"-c", "history -w"}},
	}
}

// ClearScreen clears the terminal.
func ClearScreen(stdout, stderr io.Writer) error {
	return run(ClearScreenCommands(runtime.GOOS), stdout, stderr)
}

// ClearHistory clears the command history.
func ClearHistory(stdout, stderr io.Writer) error {
	return run(ClearHistoryCommands(runtime.GOOS), stdout, stderr)
}

// run runs cmds in order and returns the first error,
// after trying all of them.
func run(cmds []Command, stdout, stderr io.Writer) error {
	var firstErr error
	for _, c := range cmds {
		cmd := exec.Command(c.Exe, c.Args...)
		cmd.Stdout = stdout
		cmd.Stderr = stderr
		if err := cmd.Run(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
