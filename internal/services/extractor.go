package services

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/nexconsult/cnpj-toolkit/internal/cnpj"
	"github.com/sirupsen/logrus"
)

// attributes that commonly carry a CNPJ outside the visible text
var cnpjAttributes = []string{"value", "content", "data-cnpj", "title"}

// ExtractorService finds CNPJs in HTML documents
type ExtractorService struct {
	logger *logrus.Logger
}

// NewExtractorService creates a new extractor service
func NewExtractorService(logger *logrus.Logger) *ExtractorService {
	return &ExtractorService{
		logger: logger,
	}
}

// ExtractHTML parses an HTML document and returns the valid CNPJs it mentions
func (e *ExtractorService) ExtractHTML(r io.Reader) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, noscript").Remove()

	var b strings.Builder
	b.WriteString(e.collectText(doc.Find("body")))

	doc.Find("*").Each(func(_ int, s *goquery.Selection) {
		for _, attr := range cnpjAttributes {
			if v, ok := s.Attr(attr); ok && v != "" {
				b.WriteString(" ")
				b.WriteString(v)
			}
		}
	})

	found := cnpj.Extract(b.String())

	e.logger.WithFields(logrus.Fields{
		"found": len(found),
		"bytes": b.Len(),
	}).Debug("HTML extraction finished")

	return found, nil
}

// collectText joins the text nodes of a selection in document order, separated by spaces
// so that adjacent cells do not glue their digits together
func (e *ExtractorService) collectText(s *goquery.Selection) string {
	var parts []string
	var walk func(*goquery.Selection)
	walk = func(sel *goquery.Selection) {
		sel.Contents().Each(func(_ int, node *goquery.Selection) {
			if goquery.NodeName(node) == "#text" {
				if text := strings.TrimSpace(node.Text()); text != "" {
					parts = append(parts, text)
				}
				return
			}
			walk(node)
		})
	}
	walk(s)
	return strings.Join(parts, " ")
}
