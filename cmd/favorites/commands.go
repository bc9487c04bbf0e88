package main

import (
	"Recipe-Catalog/domain"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List favorite recipes",
		Args:  cobra.NoArgs,
		RunE: a.withSession(func(cmd *cobra.Command, _ []string, s *session) error {
			favorites := s.replica.Favorites()
			if len(favorites) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No favorites yet")
				return nil
			}
			for _, favorite := range favorites {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s [%s] added %s\n",
					favorite.ID, favorite.Title, favorite.Category,
					favorite.DateAdded.Local().Format("2006-01-02 15:04"))
				for _, ingredient := range favorite.Ingredients {
					fmt.Fprintf(cmd.OutOrStdout(), "    - %s %s\n", ingredient.Quantity, ingredient.Name)
				}
			}
			return nil
		}),
	}
}

func (a *app) recipesCmd() *cobra.Command {
	var query domain.RecipeQueryRequest

	cmd := &cobra.Command{
		Use:   "recipes",
		Short: "List catalog recipes, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: a.withSession(func(cmd *cobra.Command, _ []string, s *session) error {
			recipes, err := s.catalog.GetRecipes(cmd.Context(), query)
			if err != nil {
				return fmt.Errorf("get recipes: %w", err)
			}
			if len(recipes) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No recipes found")
				return nil
			}
			for _, recipe := range recipes {
				marker := " "
				if s.replica.IsFavorite(recipe.ID) {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s  %s [%s]\n", marker, recipe.ID, recipe.Title, recipe.Category)
			}
			return nil
		}),
	}
	cmd.Flags().StringVar(&query.Category, "category", "", "only recipes in this category")
	cmd.Flags().StringVar(&query.Ingredient, "ingredient", "", "only recipes using an ingredient containing this text")
	return cmd
}

func (a *app) toggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <recipe-id>",
		Short: "Add a recipe to the favorites or remove it",
		Args:  cobra.ExactArgs(1),
		RunE: a.withSession(func(cmd *cobra.Command, args []string, s *session) error {
			recipeID := strings.TrimSpace(args[0])
			if recipeID == "" {
				return domain.ErrMissingIdentifier
			}

			recipe, err := s.catalog.GetRecipe(cmd.Context(), recipeID)
			if err != nil {
				if errors.Is(err, domain.ErrRecipeNotFound) {
					return fmt.Errorf("recipe %q not found", recipeID)
				}
				return fmt.Errorf("get recipe: %w", err)
			}
			// A favorite without instructions is dropped on the next load.
			if recipe.Instructions == "" && !s.replica.IsFavorite(recipe.ID) {
				return fmt.Errorf("recipe %q has no instructions and cannot be kept as a favorite", recipe.Title)
			}

			added, err := s.replica.Toggle(cmd.Context(), recipe)
			if err != nil && !errors.Is(err, domain.ErrFavoritesNotPersisted) {
				return err
			}
			if added {
				fmt.Fprintf(cmd.OutOrStdout(), "Added %q to favorites\n", recipe.Title)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %q from favorites\n", recipe.Title)
			}
			return err
		}),
	}
}

func (a *app) forgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "forget <recipe-id>",
		Short: "Drop a favorite whose recipe no longer exists",
		Args:  cobra.ExactArgs(1),
		RunE: a.withSession(func(cmd *cobra.Command, args []string, s *session) error {
			removed, err := s.replica.ReactToDeletion(cmd.Context(), args[0])
			if removed {
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from favorites\n", args[0])
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s is not a favorite\n", args[0])
			}
			return err
		}),
	}
}

func (a *app) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <recipe-id>",
		Short: "Delete a recipe from the catalog and from the favorites",
		Args:  cobra.ExactArgs(1),
		RunE: a.withSession(func(cmd *cobra.Command, args []string, s *session) error {
			if err := s.catalog.DeleteRecipe(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("delete recipe: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted recipe %s\n", args[0])

			removed, err := s.replica.ReactToDeletion(cmd.Context(), args[0])
			if removed {
				fmt.Fprintln(cmd.OutOrStdout(), "Removed it from favorites")
			}
			return err
		}),
	}
}

func (a *app) categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the recipe categories",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, category := range domain.Categories {
				fmt.Fprintln(cmd.OutOrStdout(), category)
			}
		},
	}
}
