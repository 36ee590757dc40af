// Command anagramtree builds minimum-cost anagram trees for one or
// more word lists and prints them, following the shape of the zodiac
// demo in the implementation this module's solver was distilled from
// (original_source/src/main.rs): for a built-in set of sign names, it
// solves once with repeat-guessing allowed and once without, and
// prints every tied optimal tree up to a display cap.
//
// Flag parsing uses the standard library's flag package rather than a
// third-party CLI framework: the one CLI library anywhere in this
// module's reference pack (github.com/scott-cotton/cli) is pulled in
// via a local filesystem replace directive that points outside this
// workspace, so it cannot actually be fetched here (see DESIGN.md).
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gitrdm/anagramtree/internal/batch"
	"github.com/gitrdm/anagramtree/pkg/anagram/render"
	"github.com/gitrdm/anagramtree/pkg/anagram/solver"
)

var zodiacWords = []string{
	"aries", "taurus", "gemini", "cancer", "leo", "virgo", "libra",
	"scorpio", "sagittarius", "capricorn", "aquarius", "pisces",
}

const displayCap = 10

func main() {
	var (
		wordsFlag = flag.String("words", "", "comma-separated word list; defaults to the zodiac signs")
		color     = flag.Bool("color", false, "force-enable colorized tree output")
		noColor   = flag.Bool("no-color", false, "force-disable colorized tree output")
		limit     = flag.Int("limit", 5, "max number of tied optimal trees to keep per sub-problem")
		verbose   = flag.Bool("v", false, "enable debug-level logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	var renderOpts []render.Option
	switch {
	case *color:
		renderOpts = append(renderOpts, render.WithColor(true))
	case *noColor:
		renderOpts = append(renderOpts, render.WithColor(false))
	}

	words := zodiacWords
	if *wordsFlag != "" {
		words = splitWords(*wordsFlag)
	}

	jobs := []batch.Job{
		{Name: "allow-repeat", Words: words, Opts: []solver.Option{solver.WithAllowRepeat(true), solver.WithLimit(*limit)}},
		{Name: "no-repeat", Words: words, Opts: []solver.Option{solver.WithAllowRepeat(false), solver.WithLimit(*limit)}},
	}

	pool := batch.NewPool(0, log)
	outcomes, err := pool.Run(context.Background(), jobs)
	if err != nil {
		log.Error("one or more solves failed", "error", err)
	}

	for _, o := range outcomes {
		printOutcome(o, renderOpts)
	}

	if err != nil {
		os.Exit(1)
	}
}

func printOutcome(o batch.Outcome, renderOpts []render.Option) {
	if o.Err != nil {
		fmt.Printf("%s: error: %v\n\n", o.Name, o.Err)
		return
	}

	res := o.Result
	preview := len(res.Trees)
	if preview > displayCap {
		preview = displayCap
	}
	fmt.Printf("%s | cost = %+v | %d tree(s)\n", o.Name, res.Cost, len(res.Trees))

	for i, t := range res.Trees[:preview] {
		fmt.Printf("--- Tree %d ---\n", i+1)
		if err := render.Write(os.Stdout, t, renderOpts...); err != nil {
			fmt.Printf("render error: %v\n", err)
		}
	}

	if len(res.Trees) > preview {
		more := len(res.Trees) - preview
		if res.Exhausted {
			fmt.Printf("... %d stored (limit reached, more optimal trees exist)\n", more)
		} else {
			fmt.Printf("... %d more optimal tree(s) omitted\n", more)
		}
	} else if res.Exhausted {
		fmt.Println("(tree list truncated; additional optimal trees exist)")
	}
	fmt.Println()
}

func splitWords(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
