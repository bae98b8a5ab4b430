package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/mkestner/cfguide"
	"github.com/mkestner/cfguide/cfg"
	"github.com/mkestner/cfguide/guide"
	"github.com/mkestner/cfguide/scanner"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 Martin Kestner

*/

// tracer traces with key 'cfguide.repl'.
func tracer() tracing.Trace {
	return tracing.Select("cfguide.repl")
}

// A fallback grammar for experiments when no grammar file is given.
//
//  start      : expression
//  expression : term { ("+" | "-") term }
//  term       : Regex("[0-9]+")
//
const defaultGrammar = `
start : expression
expression : term { ("+" | "-") term }
term : Regex("[0-9]+")
`

// main() starts an interactive CLI, where users derive a string step by
// step: the REPL displays the admissible next terminals, the user picks
// one (by number or by lexeme), and the derivation advances until no
// terminal is admissible any more.
//
// Please refer to packages "cfg" and "guide".
//
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	gfile := flag.String("grammar", "", "Grammar file to load")
	flag.Parse()
	tracer().SetTraceLevel(traceLevel(*tlevel))
	pterm.Info.Println("Welcome to the derivation REPL")
	tracer().Infof("Trace level is %s", *tlevel)
	//
	// set up grammar and guide
	source := defaultGrammar
	if *gfile != "" {
		data, err := ioutil.ReadFile(*gfile)
		if err != nil {
			tracer().Errorf("Unable to open grammar file: %s", *gfile)
			os.Exit(2)
		}
		source = string(data)
	}
	g, err := guide.New(source)
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(2)
	}
	lm, err := scanner.New(g.Grammar())
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(2)
	}
	//
	// set up REPL
	repl, err := readline.New("cfg> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{
		guide: g,
		lm:    lm,
		repl:  repl,
	}
	tracer().Infof("Quit with <ctrl>D")
	intp.restart()
	intp.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}

// Intp is our interpreter object
type Intp struct {
	guide   *guide.Guide
	lm      *scanner.Adapter
	repl    *readline.Instance
	result  *guide.Result
	emitted []string
}

// restart begins a fresh derivation.
func (intp *Intp) restart() {
	res, err := intp.guide.NextTerminals(nil, nil)
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(2)
	}
	intp.result = res
	intp.emitted = nil
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		intp.showChoices()
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ":") {
			if quit := intp.command(line); quit {
				break
			}
			continue
		}
		if err := intp.choose(line); err != nil {
			pterm.Error.Println(err.Error())
		}
	}
	pterm.Info.Println("Good bye!")
}

// showChoices prints the admissible next terminals, numbered.
func (intp *Intp) showChoices() {
	if intp.result.Empty() {
		pterm.Info.Println("Derivation complete: " + strings.Join(intp.emitted, " "))
		intp.restart()
	}
	for i, sym := range intp.result.Terminals() {
		kind := ""
		if sym.Kind == cfguide.Regex {
			kind = "  (regex)"
		}
		pterm.Printf(" [%d] %s%s\n", i, sym.Content, kind)
	}
}

// choose advances the derivation by one terminal, selected by number or
// by lexeme.
func (intp *Intp) choose(input string) error {
	terminals := intp.result.Terminals()
	var sym *cfguide.Symbol
	if n, err := strconv.Atoi(input); err == nil && n >= 0 && n < len(terminals) {
		sym = terminals[n]
	} else {
		s, err := intp.guide.Retrace(input, intp.result)
		if err != nil {
			return err
		}
		sym = s
	}
	state, ok := intp.result.State(sym)
	if !ok {
		return fmt.Errorf("no state recorded for %s", sym)
	}
	res, err := intp.guide.NextTerminals(state, sym)
	if err != nil {
		return err
	}
	intp.emitted = append(intp.emitted, sym.Content)
	intp.result = res
	return nil
}

// command dispatches `:` commands. Returns true to quit.
func (intp *Intp) command(line string) bool {
	args := strings.Fields(line)
	switch args[0] {
	case ":quit", ":q":
		return true
	case ":reset":
		intp.restart()
	case ":emitted":
		pterm.Info.Println(strings.Join(intp.emitted, " "))
	case ":rules":
		for name := range intp.guide.Grammar() {
			pterm.Println(name)
		}
	case ":dot":
		if len(args) != 3 {
			pterm.Error.Println("usage: :dot <rule> <file>")
			break
		}
		graph, ok := intp.guide.Grammar()[args[1]]
		if !ok {
			pterm.Error.Println("no such rule: " + args[1])
			break
		}
		cfg.Graph2GraphViz(graph, args[1], args[2])
		pterm.Info.Println("wrote " + args[2])
	case ":scan":
		if len(args) < 2 {
			pterm.Error.Println("usage: :scan <text>")
			break
		}
		intp.scan(strings.Join(args[1:], " "))
	default:
		pterm.Error.Println("unknown command: " + args[0])
	}
	return false
}

// scan tokenizes text against the grammar's terminal alphabet.
func (intp *Intp) scan(text string) {
	s, err := intp.lm.Scanner(text)
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	for {
		tok, done := s.NextToken()
		if done {
			break
		}
		pterm.Printf(" %4d…%-4d | %-10s | %s\n", tok.Start, tok.End, tok.Kind, tok.Lexeme)
	}
}
