package main

import (
	"fmt"
	"io"
	"log"
	"sort"
	"strings"

	"github.com/peterh/liner"
)

func repl(out io.Writer) error {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)
	cli.SetCompleter(completeOp)

	for {
		line, err := cli.Prompt("> ")
		switch err {
		case nil:
		case liner.ErrPromptAborted, io.EOF:
			return nil
		default:
			return err
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		cli.AppendHistory(line)

		res, err := Eval(fields[0], fields[1:])
		if err != nil {
			log.Print(err)
			continue
		}
		fmt.Fprintln(out, res)
	}
}

// completeOp completes the operation name at the start of a line.
func completeOp(line string) []string {
	if strings.ContainsAny(line, " \t") {
		return nil
	}
	var cs []string
	for name := range ops {
		if strings.HasPrefix(name, line) {
			cs = append(cs, name+" ")
		}
	}
	sort.Strings(cs)
	return cs
}
