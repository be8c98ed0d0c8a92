package main

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	libcsd "github.com/bellrise/libcsd"
)

func newTestShell(t *testing.T) (*shell, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	sh, err := newShell(&out, t.TempDir(), nil)
	require.NoError(t, err)
	return sh, &out
}

func TestShellListCommands(t *testing.T) {
	sh, out := newTestShell(t)
	lines := []string{
		"push 5 3 8 1",
		"rm 2",
		"push 9",
		"at -1",
		"grep 3",
		"list",
	}
	for _, l := range lines {
		require.NoError(t, sh.exec(l), l)
	}
	assert.Equal(t, "4\n[5, 3, 1]\n4\n9\n[3]\n[3]\n", out.String())
}

func TestShellSplit(t *testing.T) {
	sh, out := newTestShell(t)
	require.NoError(t, sh.exec("split , a,b,,c"))
	assert.Equal(t, "[a, b, , c]\n", out.String())
	assert.Equal(t, 4, sh.list.Len())
}

func TestShellErrors(t *testing.T) {
	sh, _ := newTestShell(t)

	err := sh.exec("at 0")
	assert.Equal(t, libcsd.KindIndex, libcsd.KindOf(err))

	err = sh.exec("get missing")
	assert.ErrorIs(t, err, libcsd.ErrUnpack)

	err = sh.exec("at")
	assert.EqualError(t, err, "usage: at <index>")

	err = sh.exec("frobnicate")
	assert.ErrorContains(t, err, "unknown command")

	require.NoError(t, sh.exec("push a b"))
	err = sh.exec("rm 0 7")
	assert.ErrorIs(t, err, libcsd.ErrIndex)
	assert.Equal(t, 2, sh.list.Len())

	assert.NoError(t, sh.exec("   "))
	assert.NoError(t, sh.exec("# comment"))
}

func TestShellVariables(t *testing.T) {
	sh, out := newTestShell(t)
	require.NoError(t, sh.exec("set greeting hello there"))
	require.NoError(t, sh.exec("set n 1"))
	require.NoError(t, sh.exec("set greeting hi"))
	require.NoError(t, sh.exec("get greeting"))
	require.NoError(t, sh.exec("vars"))
	require.NoError(t, sh.exec("del n"))
	assert.Error(t, sh.exec("del n"))

	assert.Equal(t, "hi\n{greeting: hi, n: 1}\n", out.String())
}

func TestShellSaveLoad(t *testing.T) {
	var logs bytes.Buffer
	var out bytes.Buffer
	sh, err := newShell(&out, t.TempDir(), log.New(&logs, "", 0))
	require.NoError(t, err)

	require.NoError(t, sh.exec("set b 2"))
	require.NoError(t, sh.exec("set a 1"))
	require.NoError(t, sh.exec("save"))
	id := strings.TrimSpace(out.String())
	require.Len(t, id, 36)

	require.NoError(t, sh.exec("clear"))
	out.Reset()
	require.NoError(t, sh.exec("docs"))
	assert.Equal(t, id+"\n", out.String())

	out.Reset()
	require.NoError(t, sh.exec("load "+id))
	assert.Equal(t, "{b: 2, a: 1}\n", out.String())
	assert.Contains(t, logs.String(), "LOG: Saving document")
}

func TestShellQuitAndNames(t *testing.T) {
	sh, _ := newTestShell(t)
	assert.Equal(t, []string{"del", "docs"}, sh.names("d"))
	require.NoError(t, sh.exec("quit"))
	assert.True(t, sh.quit)
}

func TestRunScript(t *testing.T) {
	sh, out := newTestShell(t)
	var errOut bytes.Buffer
	script := "push x\nbogus\nlist\nquit\npush never\n"
	require.NoError(t, runScript(sh, strings.NewReader(script), &errOut))
	assert.Equal(t, "1\n[x]\n", out.String())
	assert.Contains(t, errOut.String(), "line 2: unknown command")
	assert.Equal(t, 1, sh.list.Len())
}

func TestShellHelp(t *testing.T) {
	sh, out := newTestShell(t)
	require.NoError(t, sh.exec("help"))
	assert.Equal(t, sh.commands.Len(), strings.Count(out.String(), "\n"))
	assert.Contains(t, out.String(), "push")
}
