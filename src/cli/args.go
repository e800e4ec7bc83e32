package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/integrii/flaggy"
	"github.com/logrusorgru/aurora"
	"termlife/src/universe"
)

//MaxArgs is the number of positional arguments
const MaxArgs = 5

const Usage = "usage: termlife [width] [height] [fps] [fast-forward] [history] " +
	"[-n|--interactive] [-o|--once] [-p|--plain] [-s|--seed N] [-t|--settle N] [-e|--engine NAME]\n" +
	"  positional arguments are integers from 1 to 255, defaults: 20 20 20 0 3"

//ErrHelp is returned when help was requested and printed
var ErrHelp = errors.New("help requested")

//UsageError reports arguments the program can not run with
type UsageError struct {
	msg string
}

func (e *UsageError) Error() string {
	return e.msg
}

func usageErrorf(format string, a ...interface{}) error {
	return &UsageError{msg: fmt.Sprintf(format, a...)}
}

//EnvOptions holds the options of the program around the universe
type EnvOptions struct {
	Interactive bool
	Colors      bool
	Seed        int64
}

var (
	positionalNames = [MaxArgs]string{"width", "height", "fps", "fast-forward", "history"}
	positionalDescr = [MaxArgs]string{
		"Width of the field",
		"Height of the field",
		"Frames per second",
		"Frames at the start of an epoch shown without delay",
		"Generations kept to detect still lifes and oscillators",
	}

	boolFlags  = []string{"-n", "--interactive", "-o", "--once", "-p", "--plain"}
	valueFlags = []string{"-s", "--seed", "-t", "--settle", "-e", "--engine"}
	helpFlags  = []string{"-h", "--help"}
)

//Validate converts one positional argument: 1 to 3 ASCII digits with a value from 1 to 255
func Validate(arg string) (uint8, error) {
	if len(arg) == 0 || len(arg) > 3 {
		return 0, usageErrorf("args have to be ints from 1-255, got %q", arg)
	}
	n := 0
	for i := 0; i < len(arg); i++ {
		c := arg[i]
		if c < '0' || c > '9' {
			return 0, usageErrorf("args have to be ints from 1-255, got %q", arg)
		}
		n = n*10 + int(c-'0')
	}
	if n < 1 || n > 255 {
		return 0, usageErrorf("args have to be ints from 1-255, got %q", arg)
	}
	return uint8(n), nil
}

//Parse parses the command line arguments (without the program name)
func Parse(args []string) (eo *EnvOptions, uo *universe.Options, err error) {
	positionals, seen, err := splitArgs(args)
	if err != nil {
		return nil, nil, err
	}

	o := universe.DefaultUniverseOptions
	uo = &o
	eo = &EnvOptions{}

	p := newParser()
	var values [MaxArgs]string
	for i := range values {
		p.AddPositionalValue(&values[i], positionalNames[i], i+1, false, positionalDescr[i])
	}
	var plain bool
	var settle int
	p.Bool(&eo.Interactive, "n", "interactive", "Start interactive mode")
	p.Bool(&uo.Once, "o", "once", "Stop after the first epoch")
	p.Bool(&plain, "p", "plain", "Do not use colors")
	p.Int64(&eo.Seed, "s", "seed", "Seed of the random data, 0 seeds from the clock")
	p.Int(&settle, "t", "settle", "Generations an oscillation may last before the epoch ends, defaults to fps")
	p.String(&uo.Engine, "e", "engine", "Engine to use ["+strings.Join(universe.EngineNames(), "|")+"]")

	if _, ok := given(seen, helpFlags...); ok {
		p.ShowHelp()
		return nil, nil, ErrHelp
	}

	//positionals are checked exactly as given, flaggy only ever sees valid ones
	n := [MaxArgs]int{uo.Width, uo.Height, uo.FPS, uo.FastForward, uo.Depth}
	for i := range positionals {
		v, err := Validate(positionals[i])
		if err != nil {
			return nil, nil, err
		}
		n[i] = int(v)
	}
	uo.Width, uo.Height, uo.FPS, uo.FastForward, uo.Depth = n[0], n[1], n[2], n[3], n[4]

	if err := p.ParseArgs(args); err != nil {
		return nil, nil, usageErrorf("%v", err)
	}

	if uo.Depth < universe.MinDepth {
		return nil, nil, usageErrorf("history has to keep at least %d generations", universe.MinDepth)
	}
	if _, ok := universe.EvaluatorByName(uo.Engine); !ok {
		return nil, nil, usageErrorf("unknown engine %q", uo.Engine)
	}
	if raw, ok := given(seen, "-t", "--settle"); !ok {
		settle = uo.FPS
	} else if strings.HasPrefix(raw, "-") || settle < 0 || settle > 255 {
		return nil, nil, usageErrorf("settle has to be an int from 0-255, got %s", raw)
	}
	uo.SettleThreshold = settle
	uo.Interval = time.Second / time.Duration(uo.FPS)

	eo.Colors = !plain
	if eo.Seed == 0 {
		eo.Seed = time.Now().UnixNano()
	}
	return eo, uo, nil
}

//PrintUsage writes the error and the usage line
func PrintUsage(w io.Writer, err error, colors bool) {
	au := aurora.NewAurora(colors)
	_, _ = fmt.Fprintln(w, au.Red(err.Error()).String())
	_, _ = fmt.Fprintln(w, Usage)
}

func newParser() *flaggy.Parser {
	p := flaggy.NewParser("termlife")
	p.Description = "Conway's Game of Life in the terminal, a new random field every time the old one settles"
	p.ShowHelpOnUnexpected = false
	p.ShowHelpWithHFlag = false
	p.ShowVersionWithVersionFlag = false
	return p
}

//splitArgs checks the shape of the command line before it is handed to flaggy:
//only known flags with non empty values, no more than MaxArgs positionals
func splitArgs(args []string) (positionals []string, seen map[string]string, err error) {
	seen = map[string]string{}
	for i := 0; i < len(args); i++ {
		a := args[i]
		if !strings.HasPrefix(a, "-") {
			positionals = append(positionals, a)
			continue
		}
		name, value := a, ""
		if eq := strings.Index(a, "="); eq >= 0 {
			name, value = a[:eq], a[eq+1:]
		}
		switch {
		case contains(helpFlags, name), contains(boolFlags, name):
		case contains(valueFlags, name):
			if name == a {
				if i+1 >= len(args) {
					return nil, nil, usageErrorf("flag %s needs a value", a)
				}
				i++
				value = args[i]
			}
			if value == "" {
				return nil, nil, usageErrorf("flag %s needs a value", name)
			}
		default:
			return nil, nil, usageErrorf("unknown flag %s", a)
		}
		seen[name] = value
	}
	if len(positionals) > MaxArgs {
		return nil, nil, usageErrorf("takes up to %d optional args: width, height, fps, fast-forward & history", MaxArgs)
	}
	return positionals, seen, nil
}

//given returns the raw value of the first of the flag names that was seen
func given(seen map[string]string, names ...string) (string, bool) {
	for _, n := range names {
		if v, ok := seen[n]; ok {
			return v, true
		}
	}
	return "", false
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
