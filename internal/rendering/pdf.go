package rendering

import (
	"context"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// A4 paper size in inches for Chrome's print endpoint.
const (
	paperWidthInches  = 8.27
	paperHeightInches = 11.69
)

// DefaultPrintTimeout bounds one headless-browser print run.
const DefaultPrintTimeout = 30 * time.Second

// PrintOptions configures the PDF printer.
type PrintOptions struct {
	// Timeout for the whole browser session; DefaultPrintTimeout when zero.
	Timeout time.Duration
}

// PrintPDF loads the rendered HTML in a headless browser and prints it to
// PDF bytes. This is the external rendering collaborator: it owns
// pagination and rasterization, honoring the tree's atomic item blocks via
// the emitted break-inside rules. Requires Chrome/Chromium on the system.
func PrintPDF(ctx context.Context, htmlDoc string, opts PrintOptions) ([]byte, error) {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultPrintTimeout
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlDoc).Do(ctx)
		}),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidthInches).
				WithPaperHeight(paperHeightInches).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, &PrintError{Message: "headless browser print failed", Cause: err}
	}

	return pdf, nil
}
