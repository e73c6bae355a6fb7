package mock

import "kbase"

var _ kbase.Converter = (*Converter)(nil)

// Converter is a mock implementation of kbase.Converter.
type Converter struct {
	ConvertFn func(data []byte, ext string) (*kbase.ConvertResult, error)
}

func (c *Converter) Convert(data []byte, ext string) (*kbase.ConvertResult, error) {
	return c.ConvertFn(data, ext)
}

var _ kbase.HTMLConverter = (*HTMLConverter)(nil)

// HTMLConverter is a mock implementation of kbase.HTMLConverter.
type HTMLConverter struct {
	ConvertFn func(html string) (string, error)
}

func (c *HTMLConverter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
