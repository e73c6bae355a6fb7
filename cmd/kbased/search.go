package main

import (
	"fmt"

	"kbase"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	articles, err := deps.Articles.SearchArticles(deps.Ctx, c.Query, c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", kbase.ErrorMessage(err))
		return err
	}

	if len(articles) == 0 {
		fmt.Fprintf(deps.Stdout, "No articles match %q\n", c.Query)
		return nil
	}

	fmt.Fprintln(deps.Stdout, kbase.FormatArticles(articles))
	return nil
}
