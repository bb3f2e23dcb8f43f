// Package htmltomarkdown converts post body HTML to Markdown for the
// optional markdown rendering of forum records.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/microcosm-cc/bluemonday"
	"github.com/skowalczyk/forage"
)

// Ensure Converter implements forage.Converter at compile time.
var _ forage.Converter = (*Converter)(nil)

// Converter sanitizes HTML with bluemonday and converts the result to
// Markdown. Sanitizing first strips the scripts, style blocks and
// event-handler attributes that saved forum pages tend to carry.
type Converter struct {
	policy *bluemonday.Policy
	conv   *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{
		policy: bluemonday.UGCPolicy(),
		conv:   conv,
	}
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", forage.Errorf(forage.EINVALID, "empty HTML input")
	}

	sanitized := c.policy.Sanitize(html)

	result, err := c.conv.ConvertString(sanitized)
	if err != nil {
		return "", err
	}

	return result, nil
}
