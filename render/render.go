package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/revelaction/newsmunger/corpse"
	"github.com/revelaction/newsmunger/munge"
	sent "github.com/revelaction/newsmunger/sentence"
)

const Defaultformat = "text"

var (
	Black   = "\033[1;30m"
	Red     = "\033[1;31m"
	Green   = "\033[1;32m"
	Yellow  = "\033[0;33m"
	Purple  = "\033[1;34m"
	Magenta = "\033[1;35m"
	Teal    = "\033[1;36m"
	Gray    = "\033[0;37m"
	White   = "\033[1;37m"
	Off     = "\033[0m"
	//Yellow256  = "\033[1;38;5;202m"
	Yellow256 = "\033[1;38;5;130m"
	Grey256   = "\033[1;38;5;145m"
	Green256  = "\033[1;38;5;70m"
	ClearLine = "\033[K"
)

func SupportedFormats() []string {
	return []string{"text", "tokens"}
}

type Renderer struct {
	Out io.Writer

	HasColor bool

	HasPrefix bool

	// Format determines how munged sentences are shown
	//
	// text: the original and the munged sentence
	// tokens: as text, followed by the token table of the munged sentence
	Format string

	DocNames map[int]string
}

func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{Out: w, Format: Defaultformat, DocNames: map[int]string{}}
}

func (r *Renderer) AddDocName(docId int, name string) {
	r.DocNames[docId] = name
}

// Sentence prints the sentence text, the root highlighted.
func (r *Renderer) Sentence(s sent.Sentence, prefix string) {
	fmt.Fprintf(r.Out, "%s%s\n", prefix, r.SentenceString(s))
}

func (r *Renderer) SentenceString(s sent.Sentence) string {
	if !r.HasColor {
		return strings.ReplaceAll(s.Text(), "\n", " ")
	}

	root, ok := s.Root()
	if !ok {
		return strings.ReplaceAll(s.Text(), "\n", " ")
	}

	text := s.Rewrite(0, len(s.Tokens), map[int]sent.Edit{
		root: {Before: Green256, After: Off},
	})

	return strings.ReplaceAll(text, "\n", " ")
}

// Tokens prints one line per token.
func (r *Renderer) Tokens(s sent.Sentence) {
	for _, token := range s.Tokens {
		fmt.Fprintf(r.Out, "%20q %15q %8s %6d %6d %8s %s\n", token.Text, token.Lemma, token.Pos, token.Index, token.Head, token.Dep, token.Tag)
	}
}

// Munged prints a munged sentence after the one it was made from.
func (r *Renderer) Munged(orig, munged munge.Ref) {
	r.Sentence(orig.Sentence, r.prefix("✍  ", orig))
	r.Sentence(munged.Sentence, r.prefix("🔀 ", munged))

	if r.Format == "tokens" {
		fmt.Fprintln(r.Out)
		r.Tokens(munged.Sentence)
	}
}

// Corpse prints the title and the paragraph of the corpse.
func (r *Renderer) Corpse(c corpse.Corpse) {
	title := c.Title
	if r.HasColor {
		title = Yellow256 + title + Off
	}

	if r.HasPrefix {
		fmt.Fprintf(r.Out, "[%s %2d] ", r.title(c.BaseDoc), c.BaseDoc)
	}

	fmt.Fprintf(r.Out, "%s\n\n%s\n\n", title, c.Text())
}

func (r *Renderer) prefix(icon string, ref munge.Ref) string {
	if !r.HasPrefix {
		return icon
	}

	if ref.Synthesized() {
		return fmt.Sprintf("[%s %2s %5s] %s", r.title(-1), "-", "-", icon)
	}

	return fmt.Sprintf("[%s %2d %5d] %s", r.title(ref.Loc.DocId), ref.Loc.DocId, ref.Loc.SentId, icon)
}

func (r *Renderer) title(docId int) string {
	title := r.DocNames[docId]
	l := len(title)
	var part string
	if l <= 20 {
		part = fmt.Sprintf("%-20s", title)
	} else {
		part = title[:20]
	}

	if !r.HasColor {
		return part
	}

	return Grey256 + part + Off
}

// NextFormat sets the Renderer Format option to a different one, following
// the SupportedFormats() order.
func (r *Renderer) NextFormat() {

	supported := SupportedFormats()
	for i, format := range supported {
		if format == r.Format {
			switch i {
			case len(supported) - 1:
				r.Format = supported[0]
			default:
				r.Format = supported[i+1]
			}

			break
		}
	}
}

func (r *Renderer) NextPrefix() {

	// toggle
	r.HasPrefix = !r.HasPrefix
}
