// Command ratcalc applies one rational operation to literal operands.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

const version = "ratcalc 0.1.0"

const usage = `ratcalc

Usage:
  ratcalc [--] OP X [Y]
  ratcalc
  ratcalc -h
  ratcalc -v

Arguments:
  OP  One of: add sub mul div pow cmp eq lt gt lte gte
              neg inv abs floor ceil round float int
  X   First operand: an integer, a decimal or a fraction such as -3/4.
  Y   Second operand for binary operations; for pow, an integer exponent.

Options:
  -h, --help     Display this help.
  -v, --version  Print ratcalc version.

Use -- before operands that start with a minus sign. Without arguments,
ratcalc reads one "OP X [Y]" command per line from stdin, with line editing
when stdin is a terminal.
`

func main() {
	log.SetFlags(0)
	log.SetPrefix("ratcalc: ")

	opts, err := docopt.ParseArgs(usage, os.Args[1:], version)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	op, _ := opts.String("OP")
	if op == "" {
		if isatty.IsTerminal(os.Stdin.Fd()) {
			err = repl(os.Stdout)
		} else {
			err = batch(os.Stdin, os.Stdout)
		}
		if err != nil {
			log.Fatal(err)
		}
		return
	}

	args := []string{}
	if x, _ := opts.String("X"); x != "" {
		args = append(args, x)
	}
	if y, ok := opts["Y"].(string); ok {
		args = append(args, y)
	}
	out, err := Eval(op, args)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(out)
}

// batch evaluates one command per input line. Failed commands are logged and
// make the final result an error, but do not stop the remaining lines.
func batch(in io.Reader, out io.Writer) error {
	failed := 0
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		res, err := Eval(fields[0], fields[1:])
		if err != nil {
			log.Print(err)
			failed++
			continue
		}
		fmt.Fprintln(out, res)
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d command(s) failed", failed)
	}
	return nil
}
