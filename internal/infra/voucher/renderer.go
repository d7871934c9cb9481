package voucher

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"time"

	"hostel-admin/internal/pkg/config"
	"hostel-admin/internal/pkg/errs"
	"hostel-admin/internal/usecase/queries"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

//go:embed templates/*.html
var templateFS embed.FS

var ErrRenderTimeout = errs.New("voucher rendering timed out")

// A4 in inches, the unit PrintToPDF takes.
const (
	paperWidth  = 8.27
	paperHeight = 11.69
	margin      = 0.4
)

type Renderer struct {
	tmpl        *template.Template
	timeout     time.Duration
	allocCtx    context.Context
	allocCancel context.CancelFunc
}

func NewRenderer(cfg config.VoucherConfig) (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/voucher.html")
	if err != nil {
		return nil, errs.Wrap(err, "failed to parse voucher template")
	}

	r := &Renderer{tmpl: tmpl, timeout: cfg.Timeout}
	if r.timeout == 0 {
		r.timeout = 30 * time.Second
	}

	if cfg.ChromeURL != "" {
		r.allocCtx, r.allocCancel = chromedp.NewRemoteAllocator(context.Background(), cfg.ChromeURL)
		return r, nil
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("no-first-run", true),
	)
	if cfg.NoSandbox {
		opts = append(opts, chromedp.Flag("no-sandbox", true))
	}
	r.allocCtx, r.allocCancel = chromedp.NewExecAllocator(context.Background(), opts...)
	return r, nil
}

// RenderHTML fills the voucher template without touching the browser.
func (r *Renderer) RenderHTML(doc queries.VoucherDocument) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, doc); err != nil {
		return "", errs.Wrap(err, "failed to execute voucher template")
	}
	return buf.String(), nil
}

func (r *Renderer) RenderPDF(ctx context.Context, doc queries.VoucherDocument) ([]byte, error) {
	html, err := r.RenderHTML(doc)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	browserCtx, browserCancel := chromedp.NewContext(r.allocCtx)
	defer browserCancel()

	// the browser context must also end when the request does
	stop := context.AfterFunc(ctx, browserCancel)
	defer stop()

	var pdf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			data, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidth).
				WithPaperHeight(paperHeight).
				WithMarginTop(margin).
				WithMarginBottom(margin).
				WithMarginLeft(margin).
				WithMarginRight(margin).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = data
			return nil
		}),
	)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, errs.Mark(errs.Wrapf(err, "after %v", r.timeout), ErrRenderTimeout)
		}
		return nil, errs.Wrap(err, "failed to render voucher pdf")
	}

	slog.Debug("voucher rendered", "code", doc.Reservation.Code, "bytes", len(pdf))
	return pdf, nil
}

func (r *Renderer) Close() {
	if r.allocCancel != nil {
		r.allocCancel()
	}
}
