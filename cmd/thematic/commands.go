package main

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/talekit/pkg/logger"
)

var errInvalidGender = errors.New("invalid gender")

func newGenerateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "generate <category>...",
		Short: "Draw one value from each category and print them joined",
		Example: `  thematic generate color personality
  thematic --seed 42 generate abstract_artistic scifi_trope`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			start := time.Now()

			result, err := a.gen.Generate(args...)
			if err != nil {
				return err
			}
			a.log.DebugContext(ctx, "generated",
				logger.Category(strings.Join(args, ",")),
				logger.Duration(time.Since(start)),
			)
			_, err = fmt.Fprintln(a.out, result)
			return err
		},
	}
}

func newCategoriesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the available categories and their kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
			for _, name := range a.gen.Categories() {
				kind, err := a.gen.Kind(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%s\n", name, kind)
			}
			return w.Flush()
		},
	}
}

func newNameCmd(a *app) *cobra.Command {
	var gender, ethnicity string

	cmd := &cobra.Command{
		Use:   "name",
		Short: "Print a human given name",
		Example: `  thematic name --gender male --ethnicity scandinavian
  thematic name`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				name string
				err  error
			)
			switch strings.ToLower(strings.TrimSpace(gender)) {
			case "female", "f":
				name, err = a.gen.HumanNameFemale(ethnicity)
			case "male", "m":
				name, err = a.gen.HumanNameMale(ethnicity)
			default:
				return fmt.Errorf("%w %q: must be female or male", errInvalidGender, gender)
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.out, name)
			return err
		},
	}
	cmd.Flags().StringVar(&gender, "gender", "female", "female or male")
	cmd.Flags().StringVar(&ethnicity, "ethnicity", "", "ethnicity to draw from; random when empty")
	return cmd
}
