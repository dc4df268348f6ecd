package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"copycat/internal/run"
	"copycat/internal/statistics"
	"copycat/internal/workspace"
)

// solveCmd runs a single trial
var solveCmd = &cobra.Command{
	Use:   "solve [initial] [modified] [target]",
	Short: "Run one trial and print the answer",
	Long: `Runs a single stochastic trial on the puzzle and prints the answer
with the temperature it was found at.

Example:
  copycat solve abc abd ijk`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		session := run.NewSession(cfg.Run.Seed)
		answer, err := session.RunTrial(args[0], args[1], args[2])
		if err != nil {
			return err
		}
		logger.Info("trial complete",
			zap.String("answer", answer.Text),
			zap.Float64("temperature", answer.Temperature))
		fmt.Printf("%s : %s :: %s : %s\n", args[0], args[1], args[2],
			answerStyle.Render(answer.Text))
		fmt.Printf("final temperature %.1f after %d ticks\n", answer.Temperature, answer.Ticks)
		return nil
	},
}

// batchCmd runs the configured problems repeatedly
var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Run the configured problems and print answer distributions",
	Long: `Runs every problem from the config file for its configured number of
iterations, in parallel, and prints each problem's answer distribution.
With two or more problems sharing the same puzzle strings, their
distributions are compared with a G-test.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		problems := make([]run.Problem, len(cfg.Problems))
		for i, p := range cfg.Problems {
			problems[i] = run.Problem{
				Initial:    p.Initial,
				Modified:   p.Modified,
				Target:     p.Target,
				Iterations: p.Iterations,
			}
		}
		batch := run.NewBatch(logger, cfg.Run.Seed, cfg.Run.Workers)
		results, err := batch.Run(cmd.Context(), problems)
		if err != nil {
			return err
		}
		for _, result := range results {
			renderResult(result)
		}
		compareResults(results)
		return nil
	},
}

// ticksCmd drives the network and prints activations
var ticksCmd = &cobra.Command{
	Use:   "ticks [initial] [modified] [target]",
	Short: "Run the engine for a while and show concept activations",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		session := run.NewSession(cfg.Run.Seed)
		if err := session.Reset(args[0], args[1], args[2]); err != nil {
			return err
		}
		session.RunTicks(cfg.Run.Ticks)
		fmt.Printf("after %d ticks, temperature %.1f\n\n",
			session.Ticks(), session.Temperature().Value())
		renderActivations(session.Net())
		return nil
	},
}

// describeCmd shows the descriptions and values of the puzzle's objects
var describeCmd = &cobra.Command{
	Use:   "describe [initial] [modified] [target]",
	Short: "Show the objects' descriptions, happiness and salience",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		session := run.NewSession(cfg.Run.Seed)
		if err := session.Reset(args[0], args[1], args[2]); err != nil {
			return err
		}
		session.Tick()
		work := session.Workspace()
		for _, s := range []*workspace.String{work.Initial, work.Modified, work.Target} {
			fmt.Printf("%s\n", headerStyle.Render(s.Text))
			for _, letter := range s.Letters {
				base := letter.Base()
				fmt.Printf("  %s%d  unhappiness %5.1f  salience %5.1f\n",
					string(letter.Char()), base.LeftIndex,
					base.TotalUnhappiness, base.TotalSalience)
				for _, d := range base.Descriptions {
					fmt.Printf("    %s: %s\n", d.DescriptionType.Name, d.Descriptor.Name)
				}
			}
		}
		return nil
	},
}

// mappingsCmd shows the concept mappings between two strings' letters
var mappingsCmd = &cobra.Command{
	Use:   "mappings [initial] [target]",
	Short: "Show concept mappings between two strings' letters",
	Long: `Pairs every letter of the first string with every letter of the second
and prints the concept mappings between their descriptions, with each
mapping's strength and slippability.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		session := run.NewSession(cfg.Run.Seed)
		if err := session.Reset(args[0], args[0], args[1]); err != nil {
			return err
		}
		work := session.Workspace()
		for _, initial := range work.Initial.Letters {
			for _, target := range work.Target.Letters {
				mappings := workspace.GetMappings(initial, target,
					initial.RelevantDescriptions(), target.RelevantDescriptions())
				for _, m := range mappings {
					fmt.Printf("%s%d -> %s%d  %s: %s -> %s  strength %.1f  slippability %.1f\n",
						string(initial.Char()), initial.LeftIndex,
						string(target.Char()), target.LeftIndex,
						m.String(),
						m.InitialDescriptor.Name, m.TargetDescriptor.Name,
						m.Strength(), m.Slippability())
				}
			}
		}
		return nil
	},
}

// compareResults G-tests every pair of results over the same puzzle.
func compareResults(results []run.BatchResult) {
	for i, a := range results {
		for _, b := range results[i+1:] {
			if a.Problem.Initial != b.Problem.Initial ||
				a.Problem.Modified != b.Problem.Modified ||
				a.Problem.Target != b.Problem.Target {
				continue
			}
			consistent, err := statistics.DistTest(a.Counts, b.Counts, statistics.GValue)
			if err != nil {
				fmt.Printf("cannot compare distributions: %v\n", err)
				continue
			}
			diff := statistics.ProbabilityDifference(a.Counts, b.Counts)
			fmt.Printf("distributions for %s:%s::%s consistent=%v probability difference %.3f\n",
				a.Problem.Initial, a.Problem.Modified, a.Problem.Target, consistent, diff)
		}
	}
}

func sortedAnswers(counts statistics.Counts) []string {
	answers := make([]string, 0, len(counts))
	for answer := range counts {
		answers = append(answers, answer)
	}
	sort.Slice(answers, func(i, j int) bool {
		if counts[answers[i]] != counts[answers[j]] {
			return counts[answers[i]] > counts[answers[j]]
		}
		return answers[i] < answers[j]
	})
	return answers
}
