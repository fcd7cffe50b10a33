// Command lgparse is an interactive REPL over a lgcore.Parser. Reading a
// real affix/dictionary file is out of the core's scope, so the REPL
// lets the user build a small in-memory dictionary by hand with "word"
// before parsing sentences against it.
package main

import (
	"bufio"
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	lgcore "github.com/linkgrammar-go/lgcore"
)

const helpText = `lgparse interactive REPL

Commands:
  word <surface> <expr>   Define a dictionary entry, e.g. word dog.n "Ss+"
  null <min> <max>        Set the null-word count range (default 0 0)
  limit <n>                Set the linkage limit (default 100)
  random                   Show one random linkage instead of all ranked ones
  list                     Print a notice (defined words are not tracked)
  help                     Show this help message
  exit / quit              Exit the REPL

Any other input is parsed as a sentence against the current dictionary.
`

func main() {
	d := lgcore.NewMemDictionary()
	nullMin, nullMax := 0, 0
	limit := 100
	showRandom := false

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("lgparse — link grammar dependency parser")
	fmt.Println(`Type "help" for available commands.`)
	fmt.Println()

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := strings.ToLower(parts[0])

		switch cmd {
		case "exit", "quit":
			return

		case "help":
			fmt.Print(helpText)

		case "word":
			rest := strings.TrimSpace(strings.TrimPrefix(line, parts[0]))
			fields := strings.SplitN(rest, " ", 2)
			if len(fields) != 2 {
				fmt.Fprintln(os.Stderr, `usage: word <surface> <expr>`)
				continue
			}
			surface := fields[0]
			exprStr := strings.Trim(strings.TrimSpace(fields[1]), `"`)
			if err := d.AddWord(surface, exprStr); err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				continue
			}
			fmt.Printf("defined %q\n", surface)

		case "null":
			if len(parts) != 3 {
				fmt.Fprintln(os.Stderr, "usage: null <min> <max>")
				continue
			}
			min, err1 := strconv.Atoi(parts[1])
			max, err2 := strconv.Atoi(parts[2])
			if err1 != nil || err2 != nil {
				fmt.Fprintln(os.Stderr, "null counts must be integers")
				continue
			}
			nullMin, nullMax = min, max
			fmt.Printf("null-word count range set to [%d,%d]\n", min, max)

		case "limit":
			if len(parts) != 2 {
				fmt.Fprintln(os.Stderr, "usage: limit <n>")
				continue
			}
			n, err := strconv.Atoi(parts[1])
			if err != nil {
				fmt.Fprintln(os.Stderr, "limit must be an integer")
				continue
			}
			limit = n
			fmt.Printf("linkage limit set to %d\n", n)

		case "random":
			showRandom = !showRandom
			fmt.Printf("random mode: %v\n", showRandom)

		case "list":
			fmt.Println("(dictionary listing not tracked by this demo; re-run 'word' to redefine)")

		default:
			opts := lgcore.NewOptions(
				lgcore.WithNullCountRange(nullMin, nullMax),
				lgcore.WithLinkageLimit(limit),
			)
			p := lgcore.New(d, opts, nil, nil)

			if showRandom {
				lk, ok, err := p.RandomLinkage(line, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
				if err != nil {
					fmt.Fprintf(os.Stderr, "parse error: %v\n", err)
					continue
				}
				if !ok {
					fmt.Println("no linkage found")
					continue
				}
				printLinkage(lk)
				continue
			}

			res, err := p.Parse(line)
			if err != nil {
				fmt.Fprintf(os.Stderr, "parse error: %v\n", err)
				continue
			}
			if len(res.Linkages) == 0 {
				fmt.Println("no linkage found")
				continue
			}
			fmt.Printf("%d linkage(s) found (exhausted=%v)\n", len(res.Linkages), res.Exhausted)
			for i, lk := range res.Linkages {
				fmt.Printf("--- linkage %d ---\n", i+1)
				printLinkage(lk)
			}
		}
	}
}

func printLinkage(lk *lgcore.Linkage) {
	fmt.Println(strings.Join(lk.Words, " "))
	for _, l := range lk.Links {
		fmt.Printf("  %d %s-%s %d\n", l.LeftWord, l.LeftName, l.RightName, l.RightWord)
	}
	if len(lk.UnusedWords()) > 0 {
		fmt.Printf("  unused: %v\n", lk.UnusedWords())
	}
	fmt.Printf("  cost: unused=%.1f disjunct=%.2f link=%.0f\n", lk.Cost.Unused, lk.Cost.Disjunct, lk.Cost.Link)
}
