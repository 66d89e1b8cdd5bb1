package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/colorstring"
	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3" // imports as package "cli"

	"github.com/mpurins/wordlehint/solver"
	"github.com/mpurins/wordlehint/words"
)

type globalConfiguration struct {
	dictionary []solver.Word
	ranker     *solver.Ranker
	progress   bool
	log        zerolog.Logger
}

func globalCofiguration(wordsPath string, workers int, progress, verbose bool) (globalConfiguration, error) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	var dictionary []solver.Word
	if wordsPath == "" {
		dictionary = words.Default()
	} else {
		var err error
		dictionary, err = words.LoadFile(wordsPath)
		if err != nil {
			return globalConfiguration{}, err
		}
	}
	log.Debug().Int("words", len(dictionary)).Int("workers", workers).Msg("dictionary loaded")
	return globalConfiguration{
		dictionary: dictionary,
		ranker:     solver.NewRanker(workers),
		progress:   progress,
		log:        log,
	}, nil
}

func cpuProfile() func() {
	f, err := os.Create("cpu.prof")
	if err != nil {
		panic(err)
	}
	pprof.StartCPUProfile(f)
	return pprof.StopCPUProfile
}

// rankCandidates runs one ranking pass with a progress bar and timing.
func rankCandidates(cfg globalConfiguration, session *solver.Session) (solver.Ranking, error) {
	var bar *progressbar.ProgressBar
	if cfg.progress {
		bar = progressbar.Default(int64(session.Len()))
	} else {
		bar = progressbar.DefaultSilent(int64(session.Len()))
	}
	start := time.Now()
	ranking, err := session.RankProgress(func() { bar.Add(1) })
	if err != nil {
		return nil, err
	}
	cfg.log.Debug().Int("candidates", session.Len()).Dur("took", time.Since(start)).Msg("ranking pass")
	return ranking, nil
}

func showRanking(ranking solver.Ranking, top int) {
	fmt.Println("\nRanked words:")
	if top > len(ranking) {
		top = len(ranking)
	}
	for i := 0; i < top; i++ {
		fmt.Printf("%2d. %s   %.2f\n", i+1, ranking[i].Word, ranking[i].Expected)
	}
}

// coloredGuess renders the guess with its feedback colors for the echo line.
func coloredGuess(guess solver.Word, fb solver.Feedback) string {
	var b strings.Builder
	for i := 0; i < solver.WordLen; i++ {
		switch fb[i] {
		case solver.Exact:
			b.WriteString(colorstring.Color("[green]" + string(guess[i])))
		case solver.Present:
			b.WriteString(colorstring.Color("[yellow]" + string(guess[i])))
		default:
			b.WriteString(colorstring.Color("[default]" + string(guess[i])))
		}
	}
	return b.String()
}

// readObservation prompts for a guess and its colors until both parse.
func readObservation(in *bufio.Reader, out io.Writer) (solver.Word, solver.Feedback, error) {
	for {
		fmt.Fprint(out, "\nGuess:  ")
		guessLine, err := in.ReadString('\n')
		if err != nil {
			return solver.Word{}, solver.Feedback{}, err
		}
		guess, err := solver.ParseWord(strings.TrimSpace(guessLine))
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		fmt.Fprint(out, "Colors: ")
		colorsLine, err := in.ReadString('\n')
		if err != nil {
			return solver.Word{}, solver.Feedback{}, err
		}
		fb, err := solver.ParseFeedback(strings.TrimSpace(colorsLine))
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		return guess, fb, nil
	}
}

// play runs the interactive six-turn loop against the real game.
func play(cfg globalConfiguration, cachePath string, top int) error {
	session := solver.NewSession(cfg.dictionary, cfg.ranker)
	in := bufio.NewReader(os.Stdin)
	for turn := 0; turn < solver.MaxTurns; turn++ {
		var ranking solver.Ranking
		var err error
		if turn == 0 && cachePath != "" {
			// The full dictionary never changes on turn one, so a
			// precomputed table substitutes for the live pass.
			ranking, err = words.LoadRankingFile(cachePath)
		} else {
			ranking, err = rankCandidates(cfg, session)
		}
		if err != nil {
			return err
		}
		showRanking(ranking, top)

		guess, fb, err := readObservation(in, os.Stdout)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		fmt.Println(coloredGuess(guess, fb))

		switch session.Observe(guess, fb) {
		case solver.OutcomeSolved:
			answer, _ := session.Answer()
			fmt.Printf("\n%s is the word!\n", answer)
			return nil
		case solver.OutcomeContradicted:
			fmt.Println("\nNo words match that description!")
			return nil
		}
	}
	fmt.Println("\nNo more turns!")
	return nil
}

// rank narrows the dictionary by the guess/colors pairs given as arguments,
// then prints the ranking of what remains.
func rank(cfg globalConfiguration, pairs []string, top int) error {
	session := solver.NewSession(cfg.dictionary, cfg.ranker)
	for i := 0; i < len(pairs); i += 2 {
		guess, err := solver.ParseWord(pairs[i])
		if err != nil {
			return err
		}
		fb, err := solver.ParseFeedback(pairs[i+1])
		if err != nil {
			return err
		}
		switch session.Observe(guess, fb) {
		case solver.OutcomeSolved:
			answer, _ := session.Answer()
			fmt.Printf("%s is the word!\n", answer)
			return nil
		case solver.OutcomeContradicted:
			fmt.Println("No words match that description!")
			return nil
		}
	}
	ranking, err := rankCandidates(cfg, session)
	if err != nil {
		return err
	}
	showRanking(ranking, top)
	return nil
}

// first computes the full first-turn ranking and writes the CSV cache that
// play --cache consumes.
func first(cfg globalConfiguration, outPath string) error {
	session := solver.NewSession(cfg.dictionary, cfg.ranker)
	ranking, err := rankCandidates(cfg, session)
	if err != nil {
		return err
	}
	out := os.Stdout
	if outPath != "-" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating ranking cache: %w", err)
		}
		defer f.Close()
		out = f
	}
	return words.WriteRanking(out, ranking)
}

// sim plays the assistant against a known solution and prints the guesses it
// would have made.
func sim(cfg globalConfiguration, solutionString, firstGuessString string) error {
	solution, err := solver.ParseWord(solutionString)
	if err != nil {
		return err
	}
	session := solver.NewSession(cfg.dictionary, cfg.ranker)
	for turn := 0; turn < solver.MaxTurns; turn++ {
		var guess solver.Word
		if turn == 0 && firstGuessString != "" {
			if guess, err = solver.ParseWord(firstGuessString); err != nil {
				return err
			}
		} else if answer, ok := session.Answer(); ok {
			guess = answer
		} else {
			ranking, err := rankCandidates(cfg, session)
			if err != nil {
				return err
			}
			guess = ranking[0].Word
		}
		fb := solver.Score(guess, solution)
		fmt.Printf("%d: %s %s\n", turn+1, guess, fb)
		if fb.AllExact() {
			return nil
		}
		if session.Observe(guess, fb) == solver.OutcomeContradicted {
			return fmt.Errorf("solution %q is not in the dictionary", solution)
		}
	}
	fmt.Println("No more turns!")
	return nil
}

func main() {
	// A .env next to the binary can hold WORDLEHINT_* defaults.
	godotenv.Load()

	wordsPath := ""
	workers := 0
	progress := true
	profile := false
	verbose := false
	top := 10
	// command specific flags
	cachePath := ""
	outPath := "first_word_stats.csv"
	firstGuess := ""
	cmd := &cli.Command{
		Name:  "wordlehint",
		Usage: "assistant for five-letter word guessing games",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "words",
				Aliases:     []string{"w"},
				Usage:       "word list file, empty for the built-in list",
				Sources:     cli.EnvVars("WORDLEHINT_WORDS"),
				Destination: &wordsPath,
			},
			&cli.IntFlag{
				Name:        "workers",
				Usage:       "ranking worker count, 0 is one per CPU",
				Sources:     cli.EnvVars("WORDLEHINT_WORKERS"),
				Destination: &workers,
			},
			&cli.BoolFlag{
				Name:        "progress",
				Value:       true,
				Aliases:     []string{"p"},
				Usage:       "show progress bar during ranking",
				Destination: &progress,
			},
			&cli.IntFlag{
				Name:        "top",
				Value:       10,
				Aliases:     []string{"t"},
				Usage:       "number of ranked words to show",
				Destination: &top,
			},
			&cli.BoolFlag{
				Name:        "profile",
				Usage:       "store profile data to analyze",
				Destination: &profile,
			},
			&cli.BoolFlag{
				Name:        "verbose",
				Aliases:     []string{"v"},
				Usage:       "log timings and diagnostics",
				Destination: &verbose,
			},
		},
		Commands: []*cli.Command{
			{
				Name: "play",
				Usage: `interactive assistant: shows ranked guesses each turn,
				reads your guess and the colors the game reported (g=green y=yellow b=black)`,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "cache",
						Usage:       "precomputed first-turn ranking CSV",
						Sources:     cli.EnvVars("WORDLEHINT_CACHE"),
						Destination: &cachePath,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if profile {
						def := cpuProfile()
						defer def()
					}
					cfg, err := globalCofiguration(wordsPath, workers, progress, verbose)
					if err != nil {
						return err
					}
					return play(cfg, cachePath, top)
				},
			},
			{
				Name:  "rank",
				Usage: `rank [guess colors]... rank the words consistent with the given pairs`,
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.NArg()%2 != 0 {
						return cli.Exit("must have pairs of guess colors", 1)
					}
					if profile {
						def := cpuProfile()
						defer def()
					}
					cfg, err := globalCofiguration(wordsPath, workers, progress, verbose)
					if err != nil {
						return err
					}
					return rank(cfg, cmd.Args().Slice(), top)
				},
			},
			{
				Name:  "first",
				Usage: `compute the first-turn ranking cache ("-" writes CSV to stdout)`,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "out",
						Aliases:     []string{"o"},
						Value:       "first_word_stats.csv",
						Usage:       "output CSV path",
						Destination: &outPath,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if profile {
						def := cpuProfile()
						defer def()
					}
					cfg, err := globalCofiguration(wordsPath, workers, progress, verbose)
					if err != nil {
						return err
					}
					return first(cfg, outPath)
				},
			},
			{
				Name:  "sim",
				Usage: `sim solution: self-play a game against a known solution`,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "first",
						Aliases:     []string{"f"},
						Usage:       "first word to guess instead of ranking turn one",
						Destination: &firstGuess,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.NArg() != 1 {
						return cli.Exit("must have exactly one solution word", 1)
					}
					if profile {
						def := cpuProfile()
						defer def()
					}
					cfg, err := globalCofiguration(wordsPath, workers, progress, verbose)
					if err != nil {
						return err
					}
					return sim(cfg, cmd.Args().First(), firstGuess)
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
