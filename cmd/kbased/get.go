package main

import (
	"fmt"
	"strings"

	"kbase"
)

// Run executes the get command.
func (c *GetCmd) Run(deps *Dependencies) error {
	article, err := deps.Articles.FindArticleByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", kbase.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "%s  %s\n", article.ID, article.Title)
	fmt.Fprintf(deps.Stdout, "status: %s  category: %s\n", article.Status, article.Category)
	if len(article.Tags) > 0 {
		fmt.Fprintf(deps.Stdout, "tags: %s\n", strings.Join(article.Tags, ", "))
	}
	fmt.Fprintln(deps.Stdout)
	fmt.Fprintln(deps.Stdout, article.Content)
	return nil
}
