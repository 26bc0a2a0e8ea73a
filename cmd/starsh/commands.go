package main

import (
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"dasa.cc/rating/rating"
	"dasa.cc/rating/render"
)

var errUsage = errors.New("bad arguments")

type command struct {
	usage string
	run   func(sh *shell, args []string) error
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"value": {"value X; set the value", func(sh *shell, args []string) error {
			x, err := float(args)
			if err != nil {
				return err
			}
			sh.c.SetValue(x)
			return nil
		}},
		"max": {"max N; set the number of stars", func(sh *shell, args []string) error {
			if len(args) != 1 {
				return errUsage
			}
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			return sh.c.SetMaximum(n)
		}},
		"step": {"step X; set the step frequency", func(sh *shell, args []string) error {
			x, err := float(args)
			if err != nil {
				return err
			}
			sh.c.SetStep(x)
			return nil
		}},
		"tie": {"tie up|even; set the halfway tie-break", func(sh *shell, args []string) error {
			if len(args) != 1 {
				return errUsage
			}
			t := sh.c.Tie()
			if err := t.Set(args[0]); err != nil {
				return err
			}
			sh.c.SetTie(t)
			return nil
		}},
		"fill": {"fill continuous|stepped; set the fill policy", func(sh *shell, args []string) error {
			if len(args) != 1 {
				return errUsage
			}
			p := sh.c.FillPolicy()
			if err := p.Set(args[0]); err != nil {
				return err
			}
			sh.c.SetFill(p)
			return nil
		}},
		"mode": {"mode tap|drag; set the input mode", func(sh *shell, args []string) error {
			if len(args) != 1 {
				return errUsage
			}
			m := sh.c.InputMode()
			if err := m.Set(args[0]); err != nil {
				return err
			}
			sh.c.SetInput(m)
			return nil
		}},
		"tap": {"tap X; tap at x using the tap formula", func(sh *shell, args []string) error {
			return sh.point(rating.Tap, args)
		}},
		"drag": {"drag X; drag to x using the drag formula", func(sh *shell, args []string) error {
			return sh.point(rating.Drag, args)
		}},
		"fills": {"fills; print the value and every star's fill", func(sh *shell, args []string) error {
			sh.print()
			return nil
		}},
		"png": {"png FILE; render the control to a png", func(sh *shell, args []string) error {
			if len(args) != 1 {
				return errUsage
			}
			f, err := os.Create(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			if err := png.Encode(f, render.Draw(sh.c, render.DefaultStyle)); err != nil {
				return err
			}
			return f.Close()
		}},
		"help": {"help; list commands", func(sh *shell, args []string) error {
			for _, name := range names() {
				fmt.Fprintln(sh.out, commands[name].usage)
			}
			return nil
		}},
	}
}

func names() []string {
	var ns []string
	for name := range commands {
		ns = append(ns, name)
	}
	sort.Strings(ns)
	return ns
}

func float(args []string) (float64, error) {
	if len(args) != 1 {
		return 0, errUsage
	}
	return strconv.ParseFloat(args[0], 64)
}

type shell struct {
	c   *rating.Control
	out io.Writer
}

// exec runs a single line and prints the resulting state of the control.
func (sh *shell) exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, ok := commands[fields[0]]
	if !ok {
		return fmt.Errorf("unknown command %q", fields[0])
	}
	if err := cmd.run(sh, fields[1:]); err != nil {
		if err == errUsage {
			return fmt.Errorf("usage: %s", cmd.usage)
		}
		return err
	}
	switch fields[0] {
	case "help", "fills":
	default:
		sh.print()
	}
	return nil
}

// point applies x with mode m against the control's natural width, leaving
// the configured input mode untouched.
func (sh *shell) point(m rating.Mode, args []string) error {
	x, err := float(args)
	if err != nil {
		return err
	}
	prev := sh.c.InputMode()
	sh.c.SetInput(m)
	defer sh.c.SetInput(prev)
	if !sh.c.Point(x, sh.c.Width()) {
		return errors.New("control is read only")
	}
	return nil
}

func (sh *shell) print() {
	fmt.Fprintf(sh.out, "value %v of %v (step %v, tie %v, fill %v, mode %v)\n",
		sh.c.Value(), sh.c.Maximum(), sh.c.Step(), sh.c.Tie(), sh.c.FillPolicy(), sh.c.InputMode())
	for i, it := range sh.c.Items() {
		if i > 0 {
			fmt.Fprint(sh.out, " ")
		}
		fmt.Fprintf(sh.out, "%.3g", it.Fill)
	}
	fmt.Fprintln(sh.out)
}
