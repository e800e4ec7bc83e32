package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"termlife/src/universe"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		arg  string
		want uint8
		ok   bool
	}{
		{"1", 1, true},
		{"20", 20, true},
		{"255", 255, true},
		{"007", 7, true},
		{"0", 0, false},
		{"000", 0, false},
		{"256", 0, false},
		{"999", 0, false},
		{"1234", 0, false},
		{"abc", 0, false},
		{"1a", 0, false},
		{"+5", 0, false},
		{"-5", 0, false},
		{" 5", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, err := Validate(tt.arg)
		if tt.ok {
			if err != nil {
				t.Errorf("Validate(%q) unexpected error: %v", tt.arg, err)
			} else if got != tt.want {
				t.Errorf("Validate(%q) = %d, want %d", tt.arg, got, tt.want)
			}
			continue
		}
		var ue *UsageError
		if !errors.As(err, &ue) {
			t.Errorf("Validate(%q) expected a usage error, got %v", tt.arg, err)
		}
	}
}

func TestParseDefaults(t *testing.T) {
	eo, uo, err := Parse(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if uo.Width != 20 || uo.Height != 20 || uo.FPS != 20 || uo.FastForward != 0 || uo.Depth != 3 {
		t.Errorf("unexpected defaults: %+v", uo)
	}
	if uo.SettleThreshold != uo.FPS {
		t.Errorf("Expected settle threshold %d, got %d", uo.FPS, uo.SettleThreshold)
	}
	if uo.Interval != 50*time.Millisecond {
		t.Errorf("Expected interval 50ms, got %v", uo.Interval)
	}
	if uo.Engine != universe.DefEngine {
		t.Errorf("Expected engine %q, got %q", universe.DefEngine, uo.Engine)
	}
	if uo.Once || eo.Interactive || !eo.Colors {
		t.Errorf("unexpected env options: %+v, once %v", eo, uo.Once)
	}
	if eo.Seed == 0 {
		t.Error("Expected a seed from the clock")
	}
	if universe.DefaultUniverseOptions.Width != universe.DefWidth {
		t.Error("Parse must not modify the default options")
	}
}

func TestParsePositionals(t *testing.T) {
	_, uo, err := Parse([]string{"80", "41", "10", "5", "6"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if uo.Width != 80 || uo.Height != 41 || uo.FPS != 10 || uo.FastForward != 5 || uo.Depth != 6 {
		t.Errorf("unexpected options: %+v", uo)
	}
	if uo.SettleThreshold != 10 {
		t.Errorf("Expected settle threshold 10, got %d", uo.SettleThreshold)
	}
	if uo.Interval != 100*time.Millisecond {
		t.Errorf("Expected interval 100ms, got %v", uo.Interval)
	}

	_, uo, err = Parse([]string{"33"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if uo.Width != 33 || uo.Height != universe.DefHeight {
		t.Errorf("Expected only the width to change, got %+v", uo)
	}
}

func TestParseFlags(t *testing.T) {
	eo, uo, err := Parse([]string{"30", "--seed", "7", "-o", "-p", "-t", "4", "--engine=masked", "12"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if uo.Width != 30 || uo.Height != 12 {
		t.Errorf("Expected 30x12, got %dx%d", uo.Width, uo.Height)
	}
	if eo.Seed != 7 {
		t.Errorf("Expected seed 7, got %d", eo.Seed)
	}
	if !uo.Once || eo.Colors {
		t.Errorf("Expected once without colors, got once %v colors %v", uo.Once, eo.Colors)
	}
	if uo.SettleThreshold != 4 {
		t.Errorf("Expected settle threshold 4, got %d", uo.SettleThreshold)
	}
	if uo.Engine != "masked" {
		t.Errorf("Expected engine masked, got %q", uo.Engine)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"zero", []string{"0"}},
		{"too big", []string{"20", "256"}},
		{"letters", []string{"abc"}},
		{"empty", []string{""}},
		{"four digits", []string{"1000"}},
		{"too many", []string{"1", "2", "3", "4", "5", "6"}},
		{"unknown flag", []string{"--wrap"}},
		{"negative", []string{"-5"}},
		{"history of one", []string{"20", "20", "20", "0", "1"}},
		{"missing value", []string{"--seed"}},
		{"unknown engine", []string{"-e", "hashlife"}},
		{"settle too big", []string{"-t", "300"}},
		{"negative settle", []string{"-t", "-3"}},
		{"negative settle inline", []string{"--settle=-3"}},
		{"empty engine", []string{"--engine="}},
		{"empty seed", []string{"20", "-s", ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Parse(tt.args)
			var ue *UsageError
			if !errors.As(err, &ue) {
				t.Errorf("Expected a usage error, got %v", err)
			}
		})
	}
}

func TestParseEmptyPositional(t *testing.T) {
	for _, args := range [][]string{{""}, {"20", ""}, {"20", "20", "", "0"}} {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Fatalf("Parse(%q) panicked: %v", args, r)
				}
			}()
			_, _, err := Parse(args)
			var ue *UsageError
			if !errors.As(err, &ue) {
				t.Errorf("Parse(%q) expected a usage error, got %v", args, err)
			}
		}()
	}
}

func TestParseSettleZero(t *testing.T) {
	_, uo, err := Parse([]string{"-t", "0"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if uo.SettleThreshold != 0 {
		t.Errorf("Expected settle threshold 0, got %d", uo.SettleThreshold)
	}
}

func TestParseHelp(t *testing.T) {
	if _, _, err := Parse([]string{"--help"}); !errors.Is(err, ErrHelp) {
		t.Errorf("Expected ErrHelp, got %v", err)
	}
}

func TestPrintUsage(t *testing.T) {
	var b bytes.Buffer
	PrintUsage(&b, &UsageError{msg: "args have to be ints from 1-255"}, false)
	out := b.String()
	if !strings.HasPrefix(out, "args have to be ints from 1-255\n") {
		t.Errorf("Expected the error first, got %q", out)
	}
	if !strings.Contains(out, Usage) {
		t.Errorf("Expected the usage line, got %q", out)
	}
}
