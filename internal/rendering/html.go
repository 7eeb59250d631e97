package rendering

import (
	"fmt"
	"html"
	"strings"

	"github.com/jonathan/resume-layout/internal/pagetree"
	"github.com/jonathan/resume-layout/internal/templates"
)

// HTMLRenderer walks a page tree into a standalone HTML document with all
// styling inlined. It needs no template knowledge: everything it draws is
// baked into the tree. Fonts are registered per renderer instance.
type HTMLRenderer struct {
	fonts []FontAsset
}

// NewHTMLRenderer creates a renderer with the given font assets. Pass
// DefaultFontAssets() to cover the families the built-in templates use.
func NewHTMLRenderer(fonts []FontAsset) *HTMLRenderer {
	return &HTMLRenderer{fonts: fonts}
}

// Render produces the HTML document for one page tree.
func (r *HTMLRenderer) Render(tree *pagetree.Tree) (string, error) {
	if tree == nil {
		return "", &RenderError{Message: "page tree is nil"}
	}

	var sb strings.Builder
	sb.WriteString("<!doctype html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&sb, "<title>%s</title>\n", html.EscapeString("Resume - "+tree.TemplateID))
	sb.WriteString("<style>\n")
	sb.WriteString(fontFaceCSS(r.fonts))
	sb.WriteString(baseCSS(tree))
	sb.WriteString("</style>\n</head>\n<body>\n")
	writePage(&sb, tree)
	sb.WriteString("</body>\n</html>\n")
	return sb.String(), nil
}

// baseCSS translates the resolved style set into the document stylesheet.
func baseCSS(tree *pagetree.Tree) string {
	st := tree.Style
	var sb strings.Builder

	sb.WriteString("*{box-sizing:border-box;margin:0;padding:0;}\n")
	fmt.Fprintf(&sb, "@page{size:A4;margin:0;}\n")
	fmt.Fprintf(&sb, "body{font-family:%s;font-size:%.4gpt;line-height:%.4g;color:%s;background:%s;}\n",
		cssFontFamily(st.FontFamily), st.FontSize, st.LineHeight, st.TextPrimary, st.Background)
	fmt.Fprintf(&sb, ".page{width:%.2fpt;min-height:%.2fpt;margin:0 auto;background:%s;padding:%s;}\n",
		tree.Size.Width, tree.Size.Height, st.Background, cssSpacing(st.PageMargin))
	sb.WriteString(".body-row{display:flex;width:100%;}\n")
	sb.WriteString(".body-column{display:flex;flex-direction:column;width:100%;}\n")
	sb.WriteString(".region{display:flex;flex-direction:column;}\n")
	fmt.Fprintf(&sb, ".section-title{font-family:%s;font-size:%.4gpt;font-weight:700;color:%s;text-transform:uppercase;letter-spacing:0.5pt;margin-bottom:6pt;padding-bottom:3pt;border-bottom:1.5pt solid %s;}\n",
		cssFontFamily(st.HeadingFamily), st.FontSize+1, st.Accent, st.Accent)
	fmt.Fprintf(&sb, ".summary-text{font-size:%.4gpt;}\n", st.FontSize)
	fmt.Fprintf(&sb, ".item{margin-bottom:%.4gpt;break-inside:avoid;page-break-inside:avoid;}\n", st.BlockSpacing)
	sb.WriteString(".item:last-child{margin-bottom:0;}\n")
	sb.WriteString(".item-header{display:flex;justify-content:space-between;align-items:flex-start;margin-bottom:3pt;}\n")
	fmt.Fprintf(&sb, ".item-title{font-size:%.4gpt;font-weight:700;}\n", st.FontSize+1)
	fmt.Fprintf(&sb, ".item-date{font-size:%.4gpt;color:%s;flex-shrink:0;margin-left:8pt;}\n", st.FontSize-1, st.TextSecondary)
	fmt.Fprintf(&sb, ".item-subtitle{font-size:%.4gpt;color:%s;font-style:italic;margin-bottom:3pt;}\n", st.FontSize-1, st.TextSecondary)
	fmt.Fprintf(&sb, ".item-description{font-size:%.4gpt;margin-top:1pt;}\n", st.FontSize-1)
	sb.WriteString(".tags{display:flex;flex-wrap:wrap;margin-top:4pt;}\n")
	fmt.Fprintf(&sb, ".tag{background:#f1f5f9;padding:3pt 8pt;font-size:%.4gpt;margin-right:4pt;margin-bottom:4pt;break-inside:avoid;}\n", st.FontSize-1)
	fmt.Fprintf(&sb, ".header-block{border-bottom:2pt solid %s;padding-bottom:6pt;width:100%%;}\n", st.Accent)
	sb.WriteString(".header-row{display:flex;justify-content:space-between;align-items:center;width:100%;}\n")
	fmt.Fprintf(&sb, ".header-name{font-family:%s;font-size:%.4gpt;font-weight:700;color:%s;margin-bottom:2pt;}\n",
		cssFontFamily(st.HeadingFamily), st.FontSize+7, st.Accent)
	fmt.Fprintf(&sb, ".header-job{font-size:%.4gpt;color:%s;margin-bottom:4pt;}\n", st.FontSize+1, st.TextSecondary)
	fmt.Fprintf(&sb, ".contact-line{display:flex;flex-wrap:wrap;font-size:%.4gpt;color:%s;}\n", st.FontSize-1, st.TextSecondary)
	sb.WriteString(".contact-sep{margin:0 4pt;}\n")
	fmt.Fprintf(&sb, "a{color:%s;text-decoration:none;}\n", st.Accent)
	sb.WriteString(".photo{border-radius:50%;object-fit:cover;}\n")
	sb.WriteString(".photo-standalone{display:block;margin:0 auto 6pt;}\n")
	return sb.String()
}

func writePage(sb *strings.Builder, tree *pagetree.Tree) {
	sb.WriteString("<div class=\"page\">\n")

	for _, region := range tree.Header {
		writeRegion(sb, region, false)
	}

	if body := tree.Body; body != nil {
		wrapper := "body-column"
		if body.Direction == templates.FlowRow {
			wrapper = "body-row"
		}
		fmt.Fprintf(sb, "<div class=%q>\n", wrapper)
		for i, region := range body.Regions {
			gutter := body.Direction == templates.FlowRow && i < len(body.Regions)-1
			writeRegionWithGutter(sb, region, body.Direction == templates.FlowRow, gutter, body.Gutter)
		}
		sb.WriteString("</div>\n")
	}

	for _, region := range tree.Footer {
		writeRegion(sb, region, false)
	}

	sb.WriteString("</div>\n")
}

func writeRegion(sb *strings.Builder, region pagetree.Region, inRow bool) {
	writeRegionWithGutter(sb, region, inRow, false, 0)
}

func writeRegionWithGutter(sb *strings.Builder, region pagetree.Region, inRow, gutter bool, gutterSize float64) {
	var style strings.Builder
	if region.Background != "" {
		fmt.Fprintf(&style, "background:%s;", region.Background)
	}
	if region.Padding != (templates.Spacing{}) {
		fmt.Fprintf(&style, "padding:%s;", cssSpacing(region.Padding))
	}
	if inRow {
		// Fractions are relative flex weights; an empty region keeps its
		// share so sibling geometry is independent of content.
		weight := region.WidthFraction
		if weight == 0 {
			weight = 1
		}
		fmt.Fprintf(&style, "flex-grow:%.4g;flex-shrink:0;flex-basis:0;", weight)
	}
	if gutter {
		fmt.Fprintf(&style, "margin-right:%.4gpt;", gutterSize)
	}

	fmt.Fprintf(sb, "<div class=\"region\" data-region=%q", html.EscapeString(region.ID))
	if style.Len() > 0 {
		fmt.Fprintf(sb, " style=%q", style.String())
	}
	sb.WriteString(">\n")

	for i, block := range region.Blocks {
		var blockStyle string
		if i > 0 && region.Gap > 0 {
			blockStyle = fmt.Sprintf("margin-top:%.4gpt;", region.Gap)
		}
		writeBlock(sb, block, blockStyle)
	}

	sb.WriteString("</div>\n")
}

func writeBlock(sb *strings.Builder, block pagetree.Block, style string) {
	fmt.Fprintf(sb, "<div class=\"block\" data-kind=%q", string(block.Kind))
	if style != "" {
		fmt.Fprintf(sb, " style=%q", style)
	}
	sb.WriteString(">\n")

	switch block.Kind {
	case pagetree.KindHeader:
		writeHeader(sb, block.Header)
	case pagetree.KindSummary:
		writeSummary(sb, block.Summary)
	case pagetree.KindContact:
		writeContact(sb, block.Contact)
	case pagetree.KindPhoto:
		writePhoto(sb, block.Photo, "photo photo-standalone")
	case pagetree.KindSection:
		writeSection(sb, block.Section)
	}

	sb.WriteString("</div>\n")
}

func writeHeader(sb *strings.Builder, header *pagetree.HeaderBlock) {
	if header == nil {
		return
	}
	sb.WriteString("<div class=\"header-block\">\n<div class=\"header-row\">\n<div>\n")
	if header.Name != "" {
		fmt.Fprintf(sb, "<div class=\"header-name\">%s</div>\n", html.EscapeString(header.Name))
	}
	if header.JobTitle != "" {
		fmt.Fprintf(sb, "<div class=\"header-job\">%s</div>\n", html.EscapeString(header.JobTitle))
	}
	sb.WriteString("</div>\n")
	if header.Photo != nil {
		writePhoto(sb, header.Photo, "photo")
	}
	sb.WriteString("</div>\n")
	if header.Contact != nil {
		writeContactLine(sb, *header.Contact)
	}
	sb.WriteString("</div>\n")
}

func writeSummary(sb *strings.Builder, summary *pagetree.SummaryBlock) {
	if summary == nil {
		return
	}
	fmt.Fprintf(sb, "<div class=\"section-title\">%s</div>\n", html.EscapeString(summary.Title))
	fmt.Fprintf(sb, "<div class=\"summary-text\">%s</div>\n", html.EscapeString(summary.Text))
}

func writeContact(sb *strings.Builder, contact *pagetree.ContactBlock) {
	if contact == nil {
		return
	}
	fmt.Fprintf(sb, "<div class=\"section-title\">%s</div>\n", html.EscapeString(contact.Title))
	writeContactLine(sb, contact.Line)
}

func writeContactLine(sb *strings.Builder, line pagetree.ContactLine) {
	sb.WriteString("<div class=\"contact-line\">")
	for i, part := range line.Parts {
		if i > 0 {
			sb.WriteString("<span class=\"contact-sep\">•</span>")
		}
		if part.Href != "" {
			fmt.Fprintf(sb, "<a href=\"%s\">%s</a>", html.EscapeString(part.Href), html.EscapeString(part.Label))
		} else {
			fmt.Fprintf(sb, "<span>%s</span>", html.EscapeString(part.Label))
		}
	}
	sb.WriteString("</div>\n")
}

func writePhoto(sb *strings.Builder, photo *pagetree.PhotoBlock, class string) {
	if photo == nil {
		return
	}
	fmt.Fprintf(sb, "<img class=%q src=\"%s\" width=\"%.4g\" height=\"%.4g\" alt=\"\">\n",
		class, html.EscapeString(photo.Source), photo.Diameter, photo.Diameter)
}

func writeSection(sb *strings.Builder, section *pagetree.SectionBlock) {
	if section == nil {
		return
	}
	fmt.Fprintf(sb, "<div class=\"section\" data-section=%q>\n", html.EscapeString(section.SectionID))
	if section.Title != "" {
		fmt.Fprintf(sb, "<div class=\"section-title\">%s</div>\n", html.EscapeString(section.Title))
	}

	switch section.Variant {
	case pagetree.VariantTags:
		sb.WriteString("<div class=\"tags\">\n")
		for _, tag := range section.Tags {
			fmt.Fprintf(sb, "<span class=\"tag\">%s</span>\n", html.EscapeString(tag.Label))
		}
		sb.WriteString("</div>\n")
	default:
		for _, item := range section.Items {
			writeItem(sb, item)
		}
	}

	sb.WriteString("</div>\n")
}

func writeItem(sb *strings.Builder, item pagetree.Item) {
	sb.WriteString("<div class=\"item\">\n<div class=\"item-header\">\n")
	fmt.Fprintf(sb, "<span class=\"item-title\">%s</span>\n", html.EscapeString(item.Title))
	if item.Date != "" {
		fmt.Fprintf(sb, "<span class=\"item-date\">%s</span>\n", html.EscapeString(item.Date))
	}
	sb.WriteString("</div>\n")
	if item.Subtitle != "" {
		fmt.Fprintf(sb, "<div class=\"item-subtitle\">%s</div>\n", html.EscapeString(item.Subtitle))
	}
	if item.Description != "" {
		fmt.Fprintf(sb, "<div class=\"item-description\">%s</div>\n", html.EscapeString(item.Description))
	}
	sb.WriteString("</div>\n")
}

// cssFontFamily quotes a family name and appends a sans-serif fallback.
func cssFontFamily(family string) string {
	return fmt.Sprintf("%q,sans-serif", family)
}

// cssSpacing renders a 4-side shorthand in points.
func cssSpacing(s templates.Spacing) string {
	return fmt.Sprintf("%.4gpt %.4gpt %.4gpt %.4gpt", s.Top, s.Right, s.Bottom, s.Left)
}
