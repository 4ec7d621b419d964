/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/Seednode/guessbox/games/guesser"
	"github.com/spf13/cobra"
)

var errNoAnswer = errors.New("input ended before the game finished")

var answerWords = map[string]float64{
	"y":            1,
	"yes":          1,
	"p":            0.75,
	"probably":     0.75,
	"?":            0.5,
	"u":            0.5,
	"unsure":       0.5,
	"pn":           0.25,
	"probably not": 0.25,
	"n":            0,
	"no":           0,
}

// parseAnswer accepts a word from answerWords or a confidence in [0,1].
func parseAnswer(s string) (float64, bool) {
	s = strings.ToLower(strings.TrimSpace(s))

	if c, ok := answerWords[s]; ok {
		return c, true
	}

	c, err := strconv.ParseFloat(s, 64)
	if err != nil || !(c >= 0 && c <= 1) {
		return 0, false
	}

	return c, true
}

// terminalAnswerer puts each question to a player on a line-based terminal.
type terminalAnswerer struct {
	in  *bufio.Scanner
	out io.Writer
}

func newTerminalAnswerer(in io.Reader, out io.Writer) *terminalAnswerer {
	return &terminalAnswerer{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

func (t *terminalAnswerer) Answer(ctx context.Context, q guesser.Question) (float64, error) {
	fmt.Fprintf(t.out, "\n[%d/%d] %s\n", q.Number, q.Max, q.Text)

	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		fmt.Fprint(t.out, "(yes/probably/unsure/probably not/no) > ")

		if !t.in.Scan() {
			if err := t.in.Err(); err != nil {
				return 0, err
			}
			return 0, errNoAnswer
		}

		if c, ok := parseAnswer(t.in.Text()); ok {
			return c, nil
		}

		fmt.Fprintln(t.out, "Please answer yes, probably, unsure, probably not or no.")
	}
}

func playGame(ctx context.Context, engine *guesser.Engine, in io.Reader, out io.Writer, verbose bool) (guesser.Result, error) {
	fmt.Fprintf(out, "Think of a Pokémon. I know %d of them.\n", engine.NumEntities())

	session := engine.NewSession()

	res, err := session.Run(ctx, newTerminalAnswerer(in, out))
	if err != nil {
		return guesser.Result{}, err
	}

	fmt.Fprintf(out, "\nI think it's %s! (%.0f%% sure after %d questions)\n", res.Name, res.Confidence*100, res.Questions)

	if verbose {
		snap := session.Snapshot(5)

		fmt.Fprintf(out, "Stopped: %s, average gain %.3f bits, took %s\n", res.Stop, snap.AverageGain, snap.Duration.Round(time.Millisecond))
		for i, r := range snap.Top {
			fmt.Fprintf(out, "  %d. %s (%.3f)\n", i+1, r.Name, r.Confidence)
		}
	}

	return res, nil
}

func newPlayCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play a game in the terminal.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := loadEngine(cfg)
			if err != nil {
				return err
			}

			_, err = playGame(cmd.Context(), engine, cmd.InOrStdin(), cmd.OutOrStdout(), cfg.verbose)

			return err
		},
	}
}
