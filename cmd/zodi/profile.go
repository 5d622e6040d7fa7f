package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/zodi-core/internal/domain/entities"
)

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage the user profile",
	}

	cmd.AddCommand(
		newProfileSetCmd(),
		newProfileShowCmd(),
		newProfileFavCmd(),
		newProfileClearCmd(),
		newProfileExportCmd(),
		newProfileImportCmd(),
	)
	return cmd
}

func newProfileFavCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fav",
		Short: "Manage favorite predictions",
	}
	cmd.AddCommand(newProfileFavAddCmd(), newProfileFavListCmd())
	return cmd
}

func newProfileFavAddCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Save today's prediction to favorites",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(deps *Deps) error {
				return runProfileFavAdd(cmd, deps, category)
			})
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "general", "Category to save (general, love, career, finance, health, advice)")

	return cmd
}

func runProfileFavAdd(cmd *cobra.Command, deps *Deps, categoryName string) error {
	sign := profileSign(deps)
	if !sign.Valid() {
		return fmt.Errorf("no sign in the profile: use 'zodi profile set' first")
	}
	category, ok := entities.ParseCategory(categoryName)
	if !ok {
		return fmt.Errorf("unknown category %q", categoryName)
	}

	text := deps.Selector.CategoryText(cmd.Context(), sign, category)
	if err := deps.ProfHandler.SaveFavorite(cmd.Context(), category, text); err != nil {
		return err
	}

	fmt.Printf("Сохранено в избранное (%s):\n%s\n", category.Label(), text)
	return nil
}

func newProfileFavListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show saved favorite predictions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(deps *Deps) error {
				favorites := deps.ProfHandler.Favorites(DefaultHistoryLimit)
				if len(favorites) == 0 {
					fmt.Println("Избранных предсказаний пока нет. Используйте 'zodi profile fav add'.")
					return nil
				}
				for _, fav := range favorites {
					fmt.Printf("%s  %s\n  %s\n", fav.CreatedAt.Format("02.01.2006"), fav.Category.Label(), fav.Text)
				}
				return nil
			})
		},
	}
}

func newProfileSetCmd() *cobra.Command {
	var (
		name  string
		day   int
		month int
		year  int
		place string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set personal information",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(deps *Deps) error {
				sign, err := deps.ProfHandler.SetInfo(cmd.Context(), name, day, month, year, place)
				if err != nil {
					return err
				}
				if sign.Valid() {
					fmt.Printf("Профиль сохранён. Ваш знак: %s %s\n", sign.Symbol(), sign)
				} else {
					fmt.Println("Профиль сохранён. Знак не определён — проверьте дату рождения.")
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name")
	cmd.Flags().IntVarP(&day, "day", "d", 0, "Birth day")
	cmd.Flags().IntVarP(&month, "month", "m", 0, "Birth month")
	cmd.Flags().IntVarP(&year, "year", "y", 0, "Birth year (optional)")
	cmd.Flags().StringVarP(&place, "place", "p", "", "Birth place (optional)")
	_ = cmd.MarkFlagRequired("day")
	_ = cmd.MarkFlagRequired("month")

	return cmd
}

func newProfileShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the stored profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(deps *Deps) error {
				return runProfileShow(deps.ProfHandler.Show())
			})
		},
	}
}

func runProfileShow(profile *entities.Profile) error {
	if !profile.HasIdentity() {
		fmt.Println("Профиль пуст. Используйте 'zodi profile set'.")
		return nil
	}

	fmt.Printf("Имя: %s\n", profile.Name)
	fmt.Printf("Дата рождения: %02d.%02d", profile.BirthDate.Day, profile.BirthDate.Month)
	if profile.BirthDate.Year != 0 {
		fmt.Printf(".%d", profile.BirthDate.Year)
	}
	fmt.Println()
	if profile.BirthPlace != "" {
		fmt.Printf("Место рождения: %s\n", profile.BirthPlace)
	}
	if profile.Sign != "" {
		fmt.Printf("Знак: %s (%s, %s)\n", profile.Sign, profile.Element, profile.RulingBody)
	}

	if history := profile.RecentHistory(DefaultHistoryLimit); len(history) > 0 {
		fmt.Printf("\nПоследние проверки совместимости:\n")
		for _, rec := range history {
			fmt.Printf("  %s + %s (%s): %d/100\n", rec.Sign1, rec.Sign2, rec.RelationshipType.Label(), rec.Score)
		}
	}
	return nil
}

func newProfileClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Reset the profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(deps *Deps) error {
				if err := deps.ProfHandler.Clear(cmd.Context()); err != nil {
					return err
				}
				fmt.Println("Профиль очищен.")
				return nil
			})
		},
	}
}

func newProfileExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <path>",
		Short: "Export the profile as plaintext JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(deps *Deps) error {
				if err := deps.ProfHandler.Export(args[0]); err != nil {
					return err
				}
				fmt.Printf("Профиль экспортирован в %s\n", args[0])
				return nil
			})
		},
	}
}

func newProfileImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <path>",
		Short: "Import a profile from plaintext JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(deps *Deps) error {
				if err := deps.ProfHandler.Import(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Println("Профиль импортирован.")
				return nil
			})
		},
	}
}
