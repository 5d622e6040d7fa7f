package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ersonp/zodi-core/internal/domain/entities"
)

func newSignCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sign <day> <month>",
		Short: "Resolve the zodiac sign for a birth date",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid day %q", args[0])
			}
			month, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid month %q", args[1])
			}
			return runSign(day, month)
		},
	}
}

func runSign(day, month int) error {
	sign, ok := entities.SignForBirthDate(day, month)
	if !ok {
		return fmt.Errorf("no sign for day=%d month=%d", day, month)
	}

	fmt.Printf("%s %s\n", sign.Symbol(), sign)
	fmt.Printf("  Элемент: %s\n", sign.Element())
	fmt.Printf("  Планета: %s\n", sign.RulingBody())
	return nil
}
