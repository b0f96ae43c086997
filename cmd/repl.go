package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/arr-ai/packrat/arith"
	"github.com/arr-ai/packrat/parse"
)

const historyFile = ".packrat_history"

var replCommand = cli.Command{
	Name:   "repl",
	Usage:  "Evaluate expressions interactively",
	Action: repl,
	Flags:  []cli.Flag{engineFlag, strictFlag, verboseFlag},
	Before: setupLogging,
}

func repl(c *cli.Context) error {
	e, err := selectedEngine()
	if err != nil {
		return err
	}
	session := &replSession{engine: e, out: c.App.Writer}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := ""
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}

	for {
		line, err := ln.Prompt(session.prompt())
		if err != nil {
			if err != io.EOF && err != liner.ErrPromptAborted {
				logrus.Error(err)
			}
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)
		if session.handle(line) {
			break
		}
	}

	if histPath != "" {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}
	return nil
}

type replSession struct {
	engine arith.Engine
	out    io.Writer
}

func (s *replSession) prompt() string {
	return s.engine.Name() + "> "
}

// handle evaluates one line or runs a command, and reports whether the
// session is over.
func (s *replSession) handle(line string) (exit bool) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, ":") {
		if v, _, err := s.engine.ParseSource(parse.NewSourceWithFilename(line, "<repl>")); err != nil {
			var pe *arith.ParseError
			if errors.As(err, &pe) {
				fmt.Fprintln(s.out, pe.Context())
			}
			fmt.Fprintln(s.out, strings.TrimSpace(err.Error()))
		} else {
			fmt.Fprintln(s.out, v)
		}
		return false
	}

	fields := strings.Fields(line)
	switch fields[0] {
	case ":quit", ":q":
		return true
	case ":engine":
		if len(fields) != 2 {
			fmt.Fprintf(s.out, "usage: :engine <%s>\n", strings.Join(arith.Names(), "|"))
			return false
		}
		e, err := arith.Lookup(fields[1])
		if err != nil {
			fmt.Fprintln(s.out, err)
			return false
		}
		if s.engine.IsStrict() {
			e = e.Strict()
		}
		s.engine = e
		fmt.Fprintf(s.out, "%s: %s\n", e.Name(), e.About())
	case ":grammar":
		fmt.Fprint(s.out, s.engine.Grammar().EBNF())
	case ":stats":
		if len(fields) < 2 {
			fmt.Fprintln(s.out, "usage: :stats <expr>")
			return false
		}
		if err := printStats(s.out, s.engine, strings.TrimSpace(strings.TrimPrefix(line, ":stats"))); err != nil {
			fmt.Fprintln(s.out, strings.TrimSpace(err.Error()))
		}
	default:
		fmt.Fprintln(s.out, "commands: :engine NAME, :grammar, :stats EXPR, :quit")
	}
	return false
}
