// Starsh is a REPL for poking at a star rating control.
//
// Each line is a command followed by its arguments; "help" lists them.
package main

import (
	"io"
	"io/ioutil"
	"log"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"dasa.cc/rating/rating"
)

func completer() *readline.PrefixCompleter {
	var items []readline.PrefixCompleterInterface
	for _, name := range names() {
		items = append(items, readline.PcItem(name))
	}
	return readline.NewPrefixCompleter(items...)
}

func main() {
	tmp, err := ioutil.TempFile("", "starsh")
	if err != nil {
		log.Fatal(err)
	}
	defer os.Remove(tmp.Name())

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            "stars: ",
		HistoryFile:       tmp.Name(),
		AutoComplete:      completer(),
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer rl.Close()

	log.SetFlags(0)
	log.SetOutput(rl.Stderr())

	c, err := rating.New(5)
	if err != nil {
		log.Fatal(err)
	}
	sh := &shell{c: c, out: rl.Stdout()}
	sh.exec("fills")

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if err := sh.exec(line); err != nil {
			log.Printf("%[1]T: %[1]v\n", err)
		}
	}
}
