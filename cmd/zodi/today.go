package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/zodi-core/internal/application/handlers"
	"github.com/ersonp/zodi-core/internal/domain/entities"
)

func newTodayCmd() *cobra.Command {
	var (
		category string
		all      bool
	)

	cmd := &cobra.Command{
		Use:   "today <sign>",
		Short: "Show today's prediction for a sign",
		Long:  "Shows the prediction fixed for today. The same sign always gets the same text within one calendar day.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(deps *Deps) error {
				return runToday(cmd, deps, args[0], category, all)
			})
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Single category (general, love, career, finance, health, advice)")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Show all categories")

	return cmd
}

func runToday(cmd *cobra.Command, deps *Deps, signName, category string, all bool) error {
	ctx := cmd.Context()

	var result *handlers.TodayResult
	switch {
	case all:
		result = deps.TodayHandler.HandleAll(ctx, signName)
	case category != "":
		var err error
		result, err = deps.TodayHandler.HandleCategory(ctx, signName, category)
		if err != nil {
			return err
		}
	default:
		result = deps.TodayHandler.Handle(ctx, signName)
	}

	fmt.Printf("%s %s — %s\n\n", result.Sign.Symbol(), result.Sign, result.Date)
	for _, c := range entities.AllCategories() {
		text, ok := result.Texts[c]
		if !ok {
			continue
		}
		if len(result.Texts) == 1 {
			fmt.Println(text)
		} else {
			fmt.Printf("%s: %s\n", c.Label(), text)
		}
	}
	return nil
}
