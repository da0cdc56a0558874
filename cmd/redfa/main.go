// Command redfa tests lines of input against a pattern.
//
// It reads the named files (or stdin when none are given) and prints
// every line whose entire text matches the pattern, highlighted.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"

	"github.com/coregx/redfa"
)

var matchColor = color.New(color.FgRed)

var cli struct {
	Pattern string   `arg:"" name:"pattern" help:"Pattern to match lines against."`
	Paths   []string `arg:"" optional:"" name:"path" help:"Files to read; stdin when omitted." type:"path"`
	Invert  bool     `short:"v" help:"Print lines that do not match."`
	Count   bool     `short:"c" help:"Print only the number of selected lines."`
}

func main() {
	kong.Parse(&cli,
		kong.Name("redfa"),
		kong.Description("Prints input lines whose entire text matches a regex pattern."),
		kong.UsageOnError(),
	)

	re, err := redfa.Compile(cli.Pattern)
	if err != nil {
		log.Fatalf("failed to compile pattern: %v", err)
	}

	selected := 0
	if len(cli.Paths) == 0 {
		selected += scan(os.Stdin, "", re)
	}
	for _, path := range cli.Paths {
		f, err := os.Open(path)
		if err != nil {
			log.Fatalf("%s: %v", path, err)
		}
		selected += scan(f, path, re)
		f.Close()
	}

	if cli.Count {
		fmt.Println(selected)
	}
}

func scan(f *os.File, path string, re *redfa.Regex) int {
	selected := 0
	scanner := bufio.NewScanner(f)
	for n := 1; scanner.Scan(); n++ {
		line := scanner.Text()
		if re.MatchString(line) == cli.Invert {
			continue
		}
		selected++
		if cli.Count {
			continue
		}
		if path != "" {
			fmt.Printf("%s:%d:%s\n", path, n, format(line))
		} else {
			fmt.Printf("%d:%s\n", n, format(line))
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("read: %v", err)
	}
	return selected
}

func format(line string) string {
	if cli.Invert {
		return line
	}
	return matchColor.Sprint(line)
}
