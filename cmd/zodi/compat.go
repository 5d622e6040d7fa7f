package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCompatCmd() *cobra.Command {
	var relType string

	cmd := &cobra.Command{
		Use:   "compat <sign1> <sign2>",
		Short: "Score the compatibility of two signs",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(deps *Deps) error {
				return runCompat(cmd, deps, args[0], args[1], relType)
			})
		},
	}

	cmd.Flags().StringVarP(&relType, "type", "t", "romantic", "Relationship type (romantic, friendship, business, family)")

	return cmd
}

func runCompat(cmd *cobra.Command, deps *Deps, name1, name2, relType string) error {
	report, err := deps.CompatHandler.Handle(cmd.Context(), name1, name2, relType)
	if err != nil {
		return err
	}

	r := report.Result
	fmt.Printf("%s %s + %s %s — %s\n\n", report.Sign1.Symbol(), report.Sign1, report.Sign2.Symbol(), report.Sign2, r.RelationshipType.Label())
	fmt.Printf("Совместимость: %d/100\n\n", r.Score)
	fmt.Println(r.Description)
	fmt.Println()

	fmt.Printf("Любовь:        %3d  (вес 40%%)\n", r.LoveScore)
	fmt.Printf("Дружба:        %3d  (вес 25%%)\n", r.FriendshipScore)
	fmt.Printf("Дело:          %3d  (вес 20%%)\n", r.BusinessScore)
	fmt.Printf("Интеллект:     %3d  (вес 15%%)\n", r.IntellectualScore)
	fmt.Printf("Взвешенный:    %3d\n\n", r.WeightedScore)

	fmt.Printf("Элементы (%s): %s\n", r.ElementAnalysis.Compatibility, r.ElementAnalysis.Description)
	fmt.Printf("Планеты (%s): %s\n\n", r.RulingBodyAnalysis.Influence, r.RulingBodyAnalysis.Description)

	printList("Сильные стороны", r.Strengths)
	printList("Вызовы", r.Challenges)
	printList("Рекомендации", r.Recommendations)
	return nil
}

func printList(title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Printf("%s:\n", title)
	for _, item := range items {
		fmt.Printf("  - %s\n", item)
	}
	fmt.Println()
}
