// Command plangen generates a macrocycle offline and prints it as JSON or YAML.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"alcyxob/training-periodization/internal/domain"
	"alcyxob/training-periodization/internal/periodization"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type options struct {
	name        string
	user        string
	goal        string
	level       string
	frequency   int
	months      int
	start       string
	ptype       string
	targets     []string
	secondary   []string
	noNutrition bool
	format      string
}

func newRootCmd(now func() time.Time) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "plangen",
		Short: "Generate a periodized training plan",
		Long: `Builds a macrocycle (mesocycles, weekly microcycles, deload schedule and
nutrition phases) from the given parameters and writes it to stdout.
Nothing is stored.`,
		Example:      "  plangen --goal hypertrophy --level beginner --frequency 4 --months 3 --start 2024-01-01 --format yaml",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), opts, now)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.name, "name", "Generated plan", "plan name")
	f.StringVar(&opts.user, "user", "local", "owner recorded on the plan")
	f.StringVar(&opts.goal, "goal", string(domain.GoalGeneralFitness), "primary goal (hypertrophy, strength, power, fat_loss, general_fitness)")
	f.StringVar(&opts.level, "level", string(domain.LevelBeginner), "training level (beginner, intermediate, advanced, elite)")
	f.IntVar(&opts.frequency, "frequency", 3, "training days per week")
	f.IntVar(&opts.months, "months", 3, "program length in months")
	f.StringVar(&opts.start, "start", "", "start date YYYY-MM-DD (default today)")
	f.StringVar(&opts.ptype, "type", "", "periodization type (block, linear, undulating)")
	f.StringSliceVar(&opts.targets, "targets", nil, "muscle groups to emphasise")
	f.StringSliceVar(&opts.secondary, "secondary", nil, "secondary goals")
	f.BoolVar(&opts.noNutrition, "no-nutrition", false, "skip nutrition periodization")
	f.StringVarP(&opts.format, "format", "o", "json", "output format (json, yaml)")
	return cmd
}

func run(out io.Writer, opts *options, now func() time.Time) error {
	start := now()
	if opts.start != "" {
		parsed, err := time.Parse(periodization.DateLayout, opts.start)
		if err != nil {
			return fmt.Errorf("invalid --start %q: want YYYY-MM-DD", opts.start)
		}
		start = parsed
	}

	include := !opts.noNutrition
	req := periodization.Request{
		UserID:            opts.user,
		Name:              opts.name,
		PrimaryGoal:       domain.Goal(opts.goal),
		TrainingLevel:     domain.TrainingLevel(opts.level),
		Frequency:         opts.frequency,
		DurationMonths:    opts.months,
		StartDate:         start,
		PeriodizationType: domain.PeriodizationType(opts.ptype),
		IncludeNutrition:  &include,
	}
	for _, g := range opts.secondary {
		req.SecondaryGoals = append(req.SecondaryGoals, domain.Goal(g))
	}
	for _, t := range opts.targets {
		req.TargetMuscleGroups = append(req.TargetMuscleGroups, domain.MuscleGroup(t))
	}

	builder := periodization.NewBuilder()
	builder.Now = now
	macro, err := builder.Build(req)
	if err != nil {
		return err
	}

	switch opts.format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(macro)
	case "yaml", "yml":
		doc, err := toYAML(macro)
		if err != nil {
			return err
		}
		_, err = out.Write(doc)
		return err
	default:
		return fmt.Errorf("unknown --format %q (json, yaml)", opts.format)
	}
}

// toYAML renders v with its JSON field names and field order.
func toYAML(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var node yaml.Node
	if err := yaml.Unmarshal(raw, &node); err != nil {
		return nil, err
	}
	blockStyle(&node)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// blockStyle drops the flow and quoting styles a JSON source leaves behind.
// The encoder still quotes strings that would otherwise resolve to another type.
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}

func main() {
	if err := newRootCmd(time.Now).Execute(); err != nil {
		os.Exit(1)
	}
}
