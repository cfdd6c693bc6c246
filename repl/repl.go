// Package repl is an interactive prompt that munges sentences chosen by
// lemma, doc or focus text.
package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/revelaction/newsmunger/munge"
	"github.com/revelaction/newsmunger/render"
	"github.com/revelaction/newsmunger/verbclass"
)

const (
	completionThreshold = 2

	// focusPrefix is the character in the prompt that prefixes a focus text
	focusPrefix = "/"

	// docPrefix is the character in the prompt that prefixes a doc id
	docPrefix = "#"
)

type Handler struct {
	Session  *munge.Session
	Classes  verbclass.Resource
	Renderer *render.Renderer
	Out      io.Writer
}

func NewHandler(s *munge.Session, classes verbclass.Resource, r *render.Renderer, out io.Writer) *Handler {
	return &Handler{
		Session:  s,
		Classes:  classes,
		Renderer: r,
		Out:      out,
	}
}

func (h *Handler) Run(ctx context.Context) error {

	fmt.Fprintln(h.Out, "🔑 Ctrl+X: Toggle prefix, Ctrl+F: next Format, <lemma>, /<focus>, #<doc>, Enter: random, 🔧 quit")
	lemmas := h.Session.Index().Lemmas()

	// initialize prompt history
	history := []string{}

	for {

		in := prompt.Input("      🔀 ", h.completer(lemmas),
			prompt.OptionTitle("newsmunger query"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlF,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.NextFormat()
					fmt.Fprintln(h.Out, "Format set to: "+h.Renderer.Format)
				}}),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlX,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.NextPrefix()
					fmt.Fprintln(h.Out, "Prefix set to "+fmt.Sprintf("%t", h.Renderer.HasPrefix))
				}}),
		)

		if strings.TrimSpace(in) == "quit" {
			return nil
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}

		history = append(history, in)

		c, err := h.parse(in)
		if err != nil {
			fmt.Fprintf(h.Out, "✍  %s\n", err)
			continue
		}

		if err := h.Step(ctx, c); err != nil {
			fmt.Fprintf(h.Out, "✍  %s\n", err)
		}
	}
}

// Step selects a sentence with the criteria, munges it and renders both.
func (h *Handler) Step(ctx context.Context, c munge.Criteria) error {
	orig, err := h.Session.Select(c)
	if err != nil {
		return err
	}

	munged, err := h.Session.Munge(ctx, orig)
	if err != nil {
		return fmt.Errorf("could not munge %q: %w", orig.Text(), err)
	}

	h.Renderer.Munged(orig, munged)
	return nil
}

func (h *Handler) completer(lemmas []string) func(in prompt.Document) []prompt.Suggest {
	return func(in prompt.Document) []prompt.Suggest {

		s := []prompt.Suggest{}
		befCursor := in.TextBeforeCursor()

		if len(befCursor) < completionThreshold {
			return s
		}

		if strings.HasPrefix(befCursor, focusPrefix) || strings.HasPrefix(befCursor, docPrefix) {
			return s
		}

		// only the first word is a lemma
		if strings.Contains(befCursor, " ") {
			return s
		}

		for _, lemma := range lemmas {
			if !strings.HasPrefix(lemma, befCursor) {
				continue
			}

			s = append(s, prompt.Suggest{Text: lemma, Description: h.describe(lemma)})
		}

		return s
	}
}

func (h *Handler) describe(lemma string) string {
	desc := fmt.Sprintf("%d 🔖 %s", len(h.Session.Index().Locations(lemma)), h.Session.KindOf(lemma))
	if h.Classes == nil {
		return desc
	}

	if classes := h.Classes.Classes(lemma); len(classes) > 0 {
		desc += " " + strings.Join(classes, ",")
	}

	return desc
}

// parse reads the prompt line: empty for any sentence, "/text" for a focus
// text, "#3" for doc 3, otherwise a lemma.
func (h *Handler) parse(in string) (munge.Criteria, error) {
	in = strings.TrimSpace(in)

	switch {
	case in == "":
		return munge.Criteria{}, nil

	case strings.HasPrefix(in, focusPrefix):
		focus := strings.TrimSpace(in[len(focusPrefix):])
		if focus == "" {
			return munge.Criteria{}, errors.New("No focus text given")
		}

		docs := h.Session.FocusDocs(focus)
		if len(docs) == 0 {
			return munge.Criteria{}, fmt.Errorf("%q appears in no doc", focus)
		}

		return munge.Criteria{Docs: docs}, nil

	case strings.HasPrefix(in, docPrefix):
		docId, err := strconv.Atoi(strings.TrimSpace(in[len(docPrefix):]))
		if err != nil {
			return munge.Criteria{}, fmt.Errorf("invalid doc id: %w", err)
		}

		if docId < 0 || docId >= len(h.Session.Library()) {
			return munge.Criteria{}, fmt.Errorf("doc %d out of range", docId)
		}

		return munge.Criteria{DocId: &docId}, nil
	}

	fields := strings.Fields(in)
	if len(fields) > 1 {
		return munge.Criteria{}, errors.New("one lemma at a time")
	}

	return munge.Criteria{Lemma: strings.ToLower(fields[0])}, nil
}
