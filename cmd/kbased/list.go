package main

import (
	"fmt"

	"kbase"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := kbase.ArticleFilter{SortBy: kbase.SortByID}
	if c.Status != "" {
		filter.Status = &c.Status
	}
	if c.Category != "" {
		filter.Category = &c.Category
	}

	articles, err := deps.Articles.FindArticles(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", kbase.ErrorMessage(err))
		return err
	}

	if len(articles) == 0 {
		fmt.Fprintln(deps.Stdout, "No articles found. Use 'kbased import' to create some.")
		return nil
	}

	fmt.Fprintln(deps.Stdout, kbase.FormatArticles(articles))
	return nil
}
