package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/hexaroni/game"
	"github.com/zucenko/hexaroni/model"
)

var (
	colorA    = color.New(color.FgRed, color.Bold).SprintFunc()
	colorB    = color.New(color.FgBlue, color.Bold).SprintFunc()
	colorWall = color.New(color.FgHiBlack).SprintFunc()
	colorHole = color.New(color.FgYellow).SprintFunc()
	ok        = color.New(color.FgGreen).SprintFunc()
	bad       = color.New(color.FgRed).SprintFunc()
)

func main() {
	generate := flag.Int("generate", 0, "print a generated layout of this size instead of checking files")
	seed := flag.Int64("seed", 0, "seed for -generate, random when 0")
	env := flag.String("env", ".env", "dotenv file with HEXARONI_* settings")
	quiet := flag.Bool("q", false, "do not print boards")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] layout...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	settings, err := game.LoadSettings(*env)
	if err != nil {
		log.Fatal(err)
	}

	if *generate > 0 {
		layout, err := game.GenerateLayout(*generate, *seed)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(layout)
		return
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}
	failed := 0
	for _, path := range flag.Args() {
		if !check(os.Stdout, path, settings, *quiet) {
			failed++
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func check(out io.Writer, path string, settings game.Settings, quiet bool) bool {
	b, err := game.Load(path, settings)
	if err != nil {
		fmt.Fprintf(out, "%s %s\n", bad("FAIL"), path)
		var merr *multierror.Error
		if errors.As(err, &merr) {
			for _, e := range merr.Errors {
				fmt.Fprintf(out, "  - %v\n", e)
			}
		} else {
			fmt.Fprintf(out, "  - %v\n", err)
		}
		return false
	}
	fmt.Fprintf(out, "%s %s: size %d, %d tiles, A %d pieces, B %d pieces\n",
		ok("OK"), path, b.Size, len(b.Tiles()),
		len(b.LivingPieces(model.PlayerA)), len(b.LivingPieces(model.PlayerB)))
	if !quiet {
		fmt.Fprint(out, colorize(game.FormatBoard(b)))
	}
	return true
}

// colorize paints the cells of a formatted layout by owner.
func colorize(layout string) string {
	var sb strings.Builder
	for _, line := range strings.SplitAfter(layout, "\n") {
		if strings.HasPrefix(line, "size") {
			sb.WriteString(line)
			continue
		}
		for _, r := range line {
			switch r {
			case 'D', 'J':
				sb.WriteString(colorA(string(r)))
			case 'd', 'j':
				sb.WriteString(colorB(string(r)))
			case 'W':
				sb.WriteString(colorWall(string(r)))
			case '_':
				sb.WriteString(colorHole(string(r)))
			default:
				sb.WriteRune(r)
			}
		}
	}
	return sb.String()
}
