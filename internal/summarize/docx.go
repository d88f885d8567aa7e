package summarize

import (
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	docxFont     = "Calibri"
	docxFontSize = 11
)

var (
	reHeading  = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	reBold     = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBullet   = regexp.MustCompile(`^[\-\*]\s+(.+)$`)
	reNumbered = regexp.MustCompile(`^\d+\.\s+(.+)$`)
)

// WriteDocx renders a markdown summary into a styled docx file.
func WriteDocx(title, markdown, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addHeading(doc, title, 16)

	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed == "---" {
			continue
		}

		if m := reHeading.FindStringSubmatch(trimmed); m != nil {
			addHeading(doc, m[2], headingSize(len(m[1])))
			continue
		}

		if m := reBullet.FindStringSubmatch(trimmed); m != nil {
			addRichText(doc.AddParagraph(""), "• "+m[1])
			continue
		}

		if m := reNumbered.FindStringSubmatch(trimmed); m != nil {
			addRichText(doc.AddParagraph(""), trimmed)
			continue
		}

		addRichText(doc.AddParagraph(""), trimmed)
	}

	return doc.SaveTo(outputPath)
}

func headingSize(level int) uint64 {
	switch level {
	case 1:
		return 16
	case 2:
		return 14
	case 3:
		return 12
	default:
		return docxFontSize
	}
}

func addHeading(doc *docx.RootDoc, text string, size uint64) {
	p := doc.AddParagraph("")
	run := p.AddText(stripInlineMarkdown(text)).Font(docxFont).Size(size).Color("000000")
	run.Bold(true)
}

// addRichText splits a line on **bold** spans and emits alternating
// plain and bold runs.
func addRichText(p *docx.Paragraph, text string) {
	parts := reBold.Split(text, -1)
	matches := reBold.FindAllStringSubmatch(text, -1)

	for i, part := range parts {
		if part != "" {
			p.AddText(stripInlineMarkdown(part)).Font(docxFont).Size(docxFontSize).Color("000000")
		}
		if i < len(matches) {
			p.AddText(stripInlineMarkdown(matches[i][1])).Font(docxFont).Size(docxFontSize).Color("000000").Bold(true)
		}
	}
}

func stripInlineMarkdown(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	s = strings.ReplaceAll(s, "`", "")
	return s
}
