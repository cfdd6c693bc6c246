// Package corpse assembles exquisite corpses: articles whose sentences are
// all munged versions of the sentences of a base article.
package corpse

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/revelaction/newsmunger/index"
	"github.com/revelaction/newsmunger/munge"
)

var ErrNoDocuments = errors.New("no documents in the library")

// Corpse is a munged article.
type Corpse struct {
	Id        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	// BaseDoc is the store id of the doc the corpse was made from
	BaseDoc   int       `json:"base_doc"`
	Created   time.Time `json:"created"`
	Sentences []string  `json:"sentences"`
}

// Text returns the sentences joined as a paragraph.
func (c Corpse) Text() string {
	return strings.Join(c.Sentences, " ")
}

// Writer persists corpses.
type Writer interface {
	Write(ctx context.Context, c Corpse) error
}

// Assembler builds corpses with a munging session and keeps them until
// they are saved.
type Assembler struct {
	session *munge.Session
	logger  zerolog.Logger
	now     func() time.Time

	corpses []Corpse
}

func NewAssembler(s *munge.Session, logger zerolog.Logger) *Assembler {
	return &Assembler{session: s, logger: logger, now: time.Now}
}

// Build assembles a corpse from a random base doc.
func (a *Assembler) Build(ctx context.Context) (Corpse, error) {
	lib := a.session.Library()
	if len(lib) == 0 {
		return Corpse{}, ErrNoDocuments
	}

	return a.BuildDoc(ctx, a.session.Rand().Intn(len(lib)))
}

// BuildDoc assembles a corpse from the doc docId. A sentence that can not be
// munged keeps its original text.
func (a *Assembler) BuildDoc(ctx context.Context, docId int) (Corpse, error) {
	lib := a.session.Library()
	if len(lib) == 0 {
		return Corpse{}, ErrNoDocuments
	}

	if docId < 0 || docId >= len(lib) {
		return Corpse{}, errors.New("doc id out of range")
	}

	doc := lib[docId]
	c := Corpse{
		Id:      uuid.New(),
		Title:   doc.Title,
		BaseDoc: doc.Id,
		Created: a.now(),
	}

	for sentId := range doc.Sentences {
		if err := ctx.Err(); err != nil {
			return Corpse{}, err
		}

		r, _ := a.session.Ref(index.Location{DocId: docId, SentId: sentId})

		munged, err := a.session.Munge(ctx, r)
		if err != nil {
			a.logger.Debug().Err(err).Int("doc", docId).Int("sentence", sentId).Msg("sentence kept")
			c.Sentences = append(c.Sentences, r.Text())
			continue
		}

		c.Sentences = append(c.Sentences, munged.Text())
	}

	a.corpses = append(a.corpses, c)
	a.logger.Info().Str("id", c.Id.String()).Str("title", c.Title).Int("sentences", len(c.Sentences)).Msg("corpse built")

	return c, nil
}

// Corpses returns the corpses built and not saved yet.
func (a *Assembler) Corpses() []Corpse {
	return a.corpses
}

// Save writes the pending corpses. Those written are no longer pending.
func (a *Assembler) Save(ctx context.Context, w Writer) error {
	for len(a.corpses) > 0 {
		if err := w.Write(ctx, a.corpses[0]); err != nil {
			return err
		}

		a.corpses = a.corpses[1:]
	}

	return nil
}
