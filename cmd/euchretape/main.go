package main

import (
	"encoding/json"
	"errors"
	"flag"
	"io"
	"log/slog"
	"os"

	"github.com/pterm/pterm"

	"euchre-lite/replay"
)

// euchretape turns a hand spec into a replay tape: a JSON transcript of
// every event the engine produced while re-running the scripted hand.
func main() {
	inFlag := flag.String("in", "-", "hand spec JSON file (- for stdin)")
	outFlag := flag.String("out", "-", "tape JSON output file (- for stdout)")
	wireFlag := flag.Bool("wire", false, "emit the camelCase wire form for web viewers")
	flag.Parse()

	logger := slog.New(pterm.NewSlogHandler(&pterm.DefaultLogger))

	raw, err := readInput(*inFlag)
	if err != nil {
		logger.Error("read spec failed", "err", err)
		os.Exit(1)
	}

	var spec replay.HandSpec
	if err := json.Unmarshal(raw, &spec); err != nil {
		logger.Error("parse spec failed", "err", err)
		os.Exit(1)
	}

	tape, err := replay.GenerateTape(spec)
	if err != nil {
		var replayErr *replay.ReplayError
		if errors.As(err, &replayErr) {
			detail, _ := json.MarshalIndent(replayErr, "", "  ")
			logger.Error("replay failed", "step", replayErr.StepIndex, "reason", replayErr.Reason)
			os.Stderr.Write(append(detail, '\n'))
			os.Exit(2)
		}
		logger.Error("replay failed", "err", err)
		os.Exit(1)
	}

	var out any = tape
	if *wireFlag {
		out = replay.ToWireTape(tape)
	}
	encoded, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		logger.Error("encode tape failed", "err", err)
		os.Exit(1)
	}
	if err := writeOutput(*outFlag, append(encoded, '\n')); err != nil {
		logger.Error("write tape failed", "err", err)
		os.Exit(1)
	}
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path string, data []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
