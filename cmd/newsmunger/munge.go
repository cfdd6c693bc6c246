package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/revelaction/newsmunger/config"
	"github.com/revelaction/newsmunger/index"
	"github.com/revelaction/newsmunger/munge"
	"github.com/revelaction/newsmunger/render"
)

func mungeCommand(ctx context.Context, opts MungeOptions, cfg config.Config, ui UI) error {
	if opts.Lemma != "" && (opts.Doc != nil || opts.Focus != "") {
		return errors.New("a lemma can not be combined with -doc or -focus")
	}

	pool := &Pool{}
	defer pool.Close()

	repo, err := NewDocRepository(pool, opts.DocPath)
	if err != nil {
		return err
	}

	lib, err := library(repo, opts.Label, ui)
	if err != nil {
		return err
	}

	classes, err := verbClasses(cfg)
	if err != nil {
		return err
	}

	p, closeParser := newParser(cfg)
	defer closeParser()

	s := newSession(lib, p, classes, cfg)

	c := munge.Criteria{Lemma: opts.Lemma}
	if opts.Doc != nil {
		pos, err := docPosition(lib, *opts.Doc)
		if err != nil {
			return err
		}
		c.DocId = &pos
	}

	if opts.Focus != "" {
		c.Docs = s.FocusDocs(opts.Focus)
		if len(c.Docs) == 0 {
			return fmt.Errorf("%q appears in no doc", opts.Focus)
		}
	}

	r := render.NewRenderer(ui.Out)
	r.HasColor = !opts.NoColor
	r.HasPrefix = !opts.NoPrefix
	r.Format = opts.Format
	for i, doc := range lib {
		r.AddDocName(i, doc.Title)
	}

	jr := render.NewJSONRenderer(ui.Out)

	for i := 0; i < opts.Count; i++ {
		var orig munge.Ref
		if opts.Sent != nil {
			ref, ok := s.Ref(index.Location{DocId: *c.DocId, SentId: *opts.Sent})
			if !ok {
				return fmt.Errorf("sentence index %d out of bounds", *opts.Sent)
			}
			orig = ref
		} else {
			orig, err = s.Select(c)
			if err != nil {
				return err
			}
		}

		munged, err := s.Munge(ctx, orig)
		if err != nil {
			fmt.Fprintf(ui.Err, "✍  could not munge %q: %v\n", orig.Text(), err)
			continue
		}

		if opts.JSON {
			if err := jr.Munged(orig, munged); err != nil {
				return err
			}
			continue
		}

		r.Munged(orig, munged)
	}

	return nil
}
