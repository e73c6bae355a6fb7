package main

import (
	"fmt"
	"os"

	"kbase"
)

// Run executes the upload command.
func (c *UploadCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	req := kbase.ImportRequest{
		Marker:   c.Marker,
		Prefix:   c.Prefix,
		Start:    c.Start,
		Tags:     c.Tags,
		Category: c.Category,
		Status:   c.Status,
	}

	result, err := deps.Importer.ImportFile(deps.Ctx, c.File, data, c.Mode, req)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", kbase.ErrorMessage(err))
		return err
	}

	printImportResult(deps.Stdout, result)
	return nil
}
