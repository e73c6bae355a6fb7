package main

import (
	"fmt"
	"io"
	"os"

	"kbase"
)

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	var text []byte
	var err error
	if c.File != "" {
		text, err = os.ReadFile(c.File)
	} else {
		text, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	req := kbase.ImportRequest{
		Text:     string(text),
		Marker:   c.Marker,
		Prefix:   c.Prefix,
		Start:    c.Start,
		Tags:     c.Tags,
		Category: c.Category,
		Status:   c.Status,
	}

	result, err := deps.Importer.ImportText(deps.Ctx, req)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", kbase.ErrorMessage(err))
		return err
	}

	printImportResult(deps.Stdout, result)
	return nil
}

func printImportResult(w io.Writer, result *kbase.ImportResult) {
	switch result.Created {
	case 0:
		fmt.Fprintln(w, "No articles created")
	case 1:
		fmt.Fprintf(w, "Created %s\n", result.FirstID)
	default:
		fmt.Fprintf(w, "Created %d articles (%s through %s)\n", result.Created, result.FirstID, result.LastID)
	}
	if result.Skipped > 0 {
		fmt.Fprintf(w, "Skipped %d duplicate sections\n", result.Skipped)
	}
}
