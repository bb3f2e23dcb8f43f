package mock

import "github.com/skowalczyk/forage"

var _ forage.Converter = (*Converter)(nil)

// Converter is a mock implementation of forage.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
