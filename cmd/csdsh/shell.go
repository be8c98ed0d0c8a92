package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	libcsd "github.com/bellrise/libcsd"
	"github.com/bellrise/libcsd/store"
)

// command is one shell builtin.
type command struct {
	usage string
	help  string
	run   libcsd.Routine[[]string, error]
}

// shell holds a scratch list of strings and a map of variables, and runs
// one command line at a time against them.
type shell struct {
	out      io.Writer
	list     *libcsd.List[string]
	vars     *libcsd.Map[string, string]
	commands *libcsd.Map[string, command]
	docs     store.Persister[string]
	quit     bool
}

func newShell(out io.Writer, dir string, logger *log.Logger) (*shell, error) {
	yp, err := store.NewYAMLPersister[string](dir)
	if err != nil {
		return nil, err
	}
	var docs store.Persister[string] = yp
	if logger != nil {
		docs = store.NewLoggingPersister(docs, logger)
	}

	sh := &shell{
		out:      out,
		list:     libcsd.NewList[string](),
		vars:     libcsd.NewMap[string, string](),
		commands: libcsd.NewMap[string, command](),
		docs:     docs,
	}
	sh.register("help", "", "list commands", sh.help)
	sh.register("push", "<value>...", "append values to the list", sh.push)
	sh.register("at", "<index>", "print a list element, negative indices count from the end", sh.at)
	sh.register("rm", "<index>...", "remove list elements", sh.rm)
	sh.register("grep", "<text>", "keep list elements containing text", sh.grep)
	sh.register("split", "<sep> <text>", "replace the list with text split around sep", sh.split)
	sh.register("list", "", "print the list", sh.show)
	sh.register("clear", "", "empty the list and the variables", sh.clear)
	sh.register("set", "<name> <value>...", "set a variable", sh.set)
	sh.register("get", "<name>", "print a variable", sh.get)
	sh.register("del", "<name>", "remove a variable", sh.del)
	sh.register("vars", "", "print every variable", sh.showVars)
	sh.register("save", "", "store the variables as a new document", sh.save)
	sh.register("load", "<id>", "replace the variables with a stored document", sh.load)
	sh.register("docs", "", "list stored documents", sh.listDocs)
	sh.register("quit", "", "leave the shell", sh.exit)
	return sh, nil
}

func (sh *shell) register(name, usage, help string, fn func([]string) error) {
	sh.commands.Append(name, command{usage: usage, help: help, run: libcsd.Func(fn)})
}

// names returns command names starting with prefix, in registration order.
func (sh *shell) names(prefix string) []string {
	keys := sh.commands.Keys()
	keys.Filter(func(k string) bool { return strings.HasPrefix(k, prefix) })
	return keys.Slice()
}

// exec runs one line. Blank lines and lines starting with # do nothing.
func (sh *shell) exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}
	cmd, ok := sh.commands.Get(fields[0]).Peek()
	if !ok {
		return fmt.Errorf("unknown command %q, try help", fields[0])
	}
	cmdErr, err := cmd.run.Call(fields[1:])
	if err != nil {
		return err
	}
	return cmdErr
}

func (sh *shell) printf(format string, args ...any) {
	fmt.Fprintf(sh.out, format, args...)
}

func (sh *shell) help([]string) error {
	for name, cmd := range sh.commands.All() {
		sh.printf("  %-6s %-20s %s\n", name, cmd.usage, cmd.help)
	}
	return nil
}

func (sh *shell) push(args []string) error {
	for _, a := range args {
		sh.list.Append(a)
	}
	sh.printf("%d\n", sh.list.Len())
	return nil
}

func (sh *shell) at(args []string) error {
	if len(args) != 1 {
		return usageError("at <index>")
	}
	i, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("at: %w", err)
	}
	v, err := sh.list.At(i)
	if err != nil {
		return err
	}
	sh.printf("%s\n", v)
	return nil
}

func (sh *shell) rm(args []string) error {
	if len(args) == 0 {
		return usageError("rm <index>...")
	}
	indices := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return fmt.Errorf("rm: %w", err)
		}
		indices[i] = n
	}
	if err := sh.list.RemoveMany(indices...); err != nil {
		return err
	}
	sh.printf("%s\n", sh.list)
	return nil
}

func (sh *shell) grep(args []string) error {
	if len(args) != 1 {
		return usageError("grep <text>")
	}
	sh.list.Filter(func(s string) bool { return strings.Contains(s, args[0]) })
	sh.printf("%s\n", sh.list)
	return nil
}

func (sh *shell) split(args []string) error {
	if len(args) < 2 {
		return usageError("split <sep> <text>")
	}
	sh.list.Clear()
	sh.list.Extend(libcsd.SplitString(strings.Join(args[1:], " "), args[0]))
	sh.printf("%s\n", sh.list)
	return nil
}

func (sh *shell) show([]string) error {
	sh.printf("%s\n", sh.list)
	return nil
}

func (sh *shell) clear([]string) error {
	sh.list.Clear()
	sh.vars.Clear()
	return nil
}

func (sh *shell) set(args []string) error {
	if len(args) < 2 {
		return usageError("set <name> <value>...")
	}
	sh.vars.Append(args[0], strings.Join(args[1:], " "))
	return nil
}

func (sh *shell) get(args []string) error {
	if len(args) != 1 {
		return usageError("get <name>")
	}
	v := sh.vars.Get(args[0])
	value, err := v.Unpack()
	if err != nil {
		return fmt.Errorf("get %s: %w", args[0], err)
	}
	sh.printf("%s\n", value)
	return nil
}

func (sh *shell) del(args []string) error {
	if len(args) != 1 {
		return usageError("del <name>")
	}
	if !sh.vars.Remove(args[0]) {
		return fmt.Errorf("del: no variable %q", args[0])
	}
	return nil
}

func (sh *shell) showVars([]string) error {
	sh.printf("%s\n", sh.vars)
	return nil
}

func (sh *shell) save([]string) error {
	doc := store.NewDocument(sh.vars.Clone())
	if err := sh.docs.Save(context.Background(), doc); err != nil {
		return err
	}
	sh.printf("%s\n", doc.ID)
	return nil
}

func (sh *shell) load(args []string) error {
	if len(args) != 1 {
		return usageError("load <id>")
	}
	doc, err := sh.docs.Load(context.Background(), args[0])
	if err != nil {
		return err
	}
	sh.vars = doc.Values
	sh.printf("%s\n", sh.vars)
	return nil
}

func (sh *shell) listDocs([]string) error {
	ids, err := sh.docs.IDs(context.Background())
	if err != nil {
		return err
	}
	for id := range ids.Values() {
		sh.printf("%s\n", id)
	}
	return nil
}

func (sh *shell) exit([]string) error {
	sh.quit = true
	return nil
}

func usageError(usage string) error {
	return &libcsd.InvalidArgumentError{Msg: "usage: " + usage}
}
