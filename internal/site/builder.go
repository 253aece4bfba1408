package site

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/dgallion1/mdsite/internal/config"
	"github.com/dgallion1/mdsite/internal/page"
	"github.com/dgallion1/mdsite/internal/parser"
	"github.com/dgallion1/mdsite/internal/stats"
	"github.com/dgallion1/mdsite/internal/template"
	"github.com/dustin/go-humanize"
)

// Builder renders a content tree into the public directory.
type Builder struct {
	cfg   config.Config
	stats *stats.Renders
	log   *slog.Logger
}

func NewBuilder(cfg config.Config, st *stats.Renders, log *slog.Logger) *Builder {
	if st == nil {
		st = stats.NewRenders(time.Hour)
	}
	return &Builder{cfg: cfg, stats: st, log: log}
}

// Stats returns the render latency tracker shared by every build.
func (b *Builder) Stats() *stats.Renders {
	return b.stats
}

// Run executes a full build for job. Page failures are recorded on the job
// and do not stop the remaining pages.
func (b *Builder) Run(ctx context.Context, job *Job) {
	log := b.log.With("build_id", job.ID)
	start := time.Now()

	// Phase 1: Prepare output and copy static assets.
	job.SetStatus(StatusCopying, "copying")
	if err := b.cfg.Validate(); err != nil {
		log.Error("invalid build configuration", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "copying")
		return
	}
	tmpl, err := template.Load(b.cfg.TemplatePath)
	if err != nil {
		log.Error("template load failed", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "copying")
		return
	}

	if b.cfg.Clean {
		err = resetDir(b.cfg.PublicDir)
	} else {
		err = os.MkdirAll(b.cfg.PublicDir, 0o755)
	}
	if err != nil {
		log.Error("prepare public dir failed", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "copying")
		return
	}

	if b.cfg.StaticDir != "" && dirExists(b.cfg.StaticDir) {
		files, n, err := copyTree(b.cfg.StaticDir, b.cfg.PublicDir)
		job.AddCopied(files, n)
		if err != nil {
			log.Error("static copy failed", "error", err)
			job.AddError(err.Error())
			job.SetStatus(StatusFailed, "copying")
			return
		}
		log.Info("copied static assets", "files", files, "size", humanize.Bytes(uint64(n)))
	}

	// Phase 2: Collect sources.
	pages, assets, err := b.collect()
	if err != nil {
		log.Error("content walk failed", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "copying")
		return
	}
	for _, rel := range assets {
		n, err := copyFile(filepath.Join(b.cfg.ContentDir, rel), filepath.Join(b.cfg.PublicDir, rel))
		if err != nil {
			log.Warn("asset copy failed", "path", rel, "error", err)
			job.AddError(fmt.Sprintf("%s: %s", rel, err))
			continue
		}
		job.AddCopied(1, n)
	}

	// Phase 3: Render pages with a bounded worker pool.
	job.SetStatus(StatusRendering, "rendering")
	job.SetTotalPages(len(pages))

	tasks := make(chan string)
	var wg sync.WaitGroup
	for i := 0; i < min(b.cfg.WorkerCount, max(len(pages), 1)); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for rel := range tasks {
				out, err := b.renderPage(rel, tmpl)
				if err != nil {
					log.Error("page failed", "path", rel, "error", err)
					job.AddFailure(rel, err)
					continue
				}
				log.Debug("page written", "path", out.Dest, "unchanged", out.Unchanged)
				job.AddOutput(out)
			}
		}()
	}

feed:
	for _, rel := range pages {
		select {
		case <-ctx.Done():
			break feed
		case tasks <- rel:
		}
	}
	close(tasks)
	wg.Wait()

	snap := job.Snapshot()
	log.Info("build finished",
		"pages", snap.Progress.TotalPages,
		"written", snap.Progress.PagesWritten,
		"unchanged", snap.Progress.PagesUnchanged,
		"failed", snap.Progress.PagesFailed,
		"size", humanize.Bytes(uint64(snap.Progress.BytesWritten)),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	switch {
	case ctx.Err() != nil:
		job.AddError(ctx.Err().Error())
		job.SetStatus(StatusFailed, "cancelled")
	case snap.Progress.PagesFailed == 0:
		job.SetStatus(StatusCompleted, "done")
	case snap.Progress.PagesWritten+snap.Progress.PagesUnchanged > 0:
		job.SetStatus(StatusPartial, "done")
	default:
		job.SetStatus(StatusFailed, "rendering")
	}
}

// collect walks the content dir and splits its files into page sources and
// verbatim assets, both relative to ContentDir.
func (b *Builder) collect() (pages, assets []string, err error) {
	err = filepath.WalkDir(b.cfg.ContentDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(b.cfg.ContentDir, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		if b.ignored(filepath.ToSlash(rel)) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if parser.IsSupportedExtension(rel) {
			pages = append(pages, rel)
		} else {
			assets = append(assets, rel)
		}
		return nil
	})
	return pages, assets, err
}

func (b *Builder) ignored(rel string) bool {
	for _, pattern := range b.cfg.Ignore {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}

// renderPage converts one source file and writes it below PublicDir.
func (b *Builder) renderPage(rel string, tmpl *template.Template) (page.Output, error) {
	src, err := os.ReadFile(filepath.Join(b.cfg.ContentDir, rel))
	if err != nil {
		return page.Output{}, err
	}

	var html []byte
	var title string
	err = b.stats.Time(func() error {
		pg, err := Render(rel, src, b.cfg.Renderer)
		if err != nil {
			return err
		}
		title = pg.Title
		html = []byte(tmpl.Execute(pg.Title, pg.Body))
		return nil
	})
	if err != nil {
		return page.Output{}, err
	}

	out := page.Output{
		Source: filepath.ToSlash(rel),
		Dest:   filepath.ToSlash(parser.OutputName(rel)),
		Title:  title,
		Bytes:  int64(len(html)),
		Hash:   ContentHashHex(html),
	}
	dest := filepath.Join(b.cfg.PublicDir, parser.OutputName(rel))
	if !b.cfg.Clean {
		if existing, err := os.ReadFile(dest); err == nil && bytes.Equal(existing, html) {
			out.Unchanged = true
			return out, nil
		}
	}
	if err := writeFile(dest, html); err != nil {
		return page.Output{}, err
	}
	return out, nil
}

// Render parses a single source file into a page.
func Render(filename string, src []byte, renderer string) (*page.Page, error) {
	p, err := parser.ForFile(filename, renderer)
	if err != nil {
		return nil, err
	}
	return p.Parse(bytes.NewReader(src), filename)
}

// GeneratePage renders src through the template at templatePath and writes
// the result to dest.
func GeneratePage(src, templatePath, dest, renderer string) (page.Output, error) {
	tmpl, err := template.Load(templatePath)
	if err != nil {
		return page.Output{}, err
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return page.Output{}, err
	}
	pg, err := Render(src, data, renderer)
	if err != nil {
		return page.Output{}, err
	}
	html := []byte(tmpl.Execute(pg.Title, pg.Body))
	if err := writeFile(dest, html); err != nil {
		return page.Output{}, err
	}
	return page.Output{
		Source: src,
		Dest:   dest,
		Title:  pg.Title,
		Bytes:  int64(len(html)),
		Hash:   ContentHashHex(html),
	}, nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		return errors.Join(err, os.Remove(tmp))
	}
	return nil
}
