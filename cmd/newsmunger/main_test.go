package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revelaction/newsmunger/config"
	sent "github.com/revelaction/newsmunger/sentence"
	st "github.com/revelaction/newsmunger/sentence/sentencetest"
	"github.com/revelaction/newsmunger/storage/filesystem"
)

func testUI() (UI, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return UI{Out: &out, Err: &errOut}, &out, &errOut
}

// docDir writes the docs "Mayor" (id 0) and "Storm" (id 1).
func docDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	store, err := filesystem.NewDocStore(dir)
	require.NoError(t, err)

	mayor := st.Doc(0, "Mayor", st.MayorArrived(), st.MayorHappy())
	mayor.Labels = []string{"politics"}
	require.NoError(t, store.Write(mayor))
	require.NoError(t, store.Write(st.Doc(1, "Storm", st.StormArrived())))

	return dir
}

// parseServer answers every parse request with the sentences.
func parseServer(t *testing.T, sentences ...sent.Sentence) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(sentences) == 0 {
			http.Error(w, "parser down", http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(sent.Doc{Sentences: sentences})
	}))
	t.Cleanup(srv.Close)

	return srv
}

func TestParseMainArgs(t *testing.T) {
	ui, _, _ := testUI()

	opts, cmd, args, err := parseMainArgs([]string{"-c", "newsmunger.yaml", "doc", "-d", "docs"}, ui)
	require.NoError(t, err)
	assert.Equal(t, "newsmunger.yaml", opts.ConfigPath)
	assert.Equal(t, "doc", cmd)
	assert.Equal(t, []string{"-d", "docs"}, args)

	_, _, _, err = parseMainArgs([]string{}, ui)
	assert.Error(t, err)
}

func TestParseCorpseArgs(t *testing.T) {
	ui, _, _ := testUI()
	cfg := config.Default()
	cfg.DocPath = "docs"

	opts, err := parseCorpseArgs(nil, cfg, ui)
	require.NoError(t, err)
	assert.Equal(t, "docs", opts.DocPath)
	assert.Equal(t, 1, opts.Count)
	assert.Equal(t, config.SinkFile, opts.Sink)
	assert.Nil(t, opts.Doc)

	opts, err = parseCorpseArgs([]string{"-doc", "3", "-sink", "sqlite", "-n", "2", "-dry-run"}, cfg, ui)
	require.NoError(t, err)
	require.NotNil(t, opts.Doc)
	assert.Equal(t, 3, *opts.Doc)
	assert.Equal(t, config.SinkSqlite, opts.Sink)
	assert.Equal(t, 2, opts.Count)
	assert.True(t, opts.DryRun)

	for _, args := range [][]string{{"-sink", "ftp"}, {"-n", "0"}, {"extra"}} {
		_, err = parseCorpseArgs(args, cfg, ui)
		assert.Error(t, err, args)
	}

	_, err = parseCorpseArgs(nil, config.Default(), ui)
	assert.Error(t, err)
}

func TestParseMungeArgs(t *testing.T) {
	ui, _, _ := testUI()
	cfg := config.Default()
	cfg.DocPath = "docs"

	opts, err := parseMungeArgs([]string{"-f", "tokens", "Arrive"}, cfg, ui)
	require.NoError(t, err)
	assert.Equal(t, "arrive", opts.Lemma)
	assert.Equal(t, "tokens", opts.Format)

	_, err = parseMungeArgs([]string{"-sent", "1"}, cfg, ui)
	assert.ErrorContains(t, err, "-sent flag given but no -doc")

	_, err = parseMungeArgs([]string{"-f", "all"}, cfg, ui)
	assert.Error(t, err)
}

func TestRunCommand(t *testing.T) {
	ui, out, _ := testUI()
	ctx := context.Background()

	require.NoError(t, runCommand(ctx, MainOptions{}, "version", nil, ui))
	assert.Equal(t, "newsmunger version dev (commit: none)\n", out.String())

	out.Reset()
	require.NoError(t, runCommand(ctx, MainOptions{}, "help", nil, ui))
	assert.Contains(t, out.String(), "corpse")

	out.Reset()
	require.NoError(t, runCommand(ctx, MainOptions{}, "help", []string{"munge"}, ui))
	assert.Contains(t, out.String(), "Usage:")

	assert.ErrorContains(t, runCommand(ctx, MainOptions{}, "frobnicate", nil, ui), "unknown command")
}

func TestDocCommand(t *testing.T) {
	ui, out, _ := testUI()
	dir := docDir(t)

	require.NoError(t, docCommand(DocOptions{DocPath: dir, Count: -1}, nil, ui))
	assert.Equal(t, "📖 0 Mayor 🔖 politics\n📖 1 Storm\n", out.String())

	out.Reset()
	docId := 0
	require.NoError(t, docCommand(DocOptions{DocPath: dir, Start: 1, Count: -1}, &docId, ui))
	assert.Equal(t, "📖 0 Mayor\n✍  1 The mayor is happy.\n", out.String())

	assert.Error(t, docCommand(DocOptions{DocPath: filepath.Join(dir, "missing")}, nil, ui))
}

func TestSentenceCommand(t *testing.T) {
	ui, out, _ := testUI()
	dir := docDir(t)

	require.NoError(t, sentenceCommand(SentenceOptions{DocPath: dir}, 0, 1, ui))
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	assert.Equal(t, "✍  1 The mayor is happy.", lines[0])
	assert.Len(t, lines, 2+5)

	assert.Error(t, sentenceCommand(SentenceOptions{DocPath: dir}, 0, 5, ui))
}

func TestStatCommand(t *testing.T) {
	ui, out, _ := testUI()
	dir := docDir(t)

	require.NoError(t, statCommand(StatOptions{DocPath: dir, Top: 10}, nil, ui))
	assert.Contains(t, out.String(), "Num docs 2, num sentences 3")
	assert.Contains(t, out.String(), "Indexed root lemmas 1")
	assert.Contains(t, out.String(), "arrive     2")

	out.Reset()
	docId := 1
	require.NoError(t, statCommand(StatOptions{DocPath: dir}, &docId, ui))
	assert.Equal(t, "Num sentences 1, num tokens per sentence 8, quoted 0\n", out.String())
}

func TestImportExportDoc(t *testing.T) {
	ui, out, _ := testUI()
	dir := docDir(t)
	db := filepath.Join(t.TempDir(), "docs.db")

	require.NoError(t, importDocCommand(ImportDocOptions{From: dir, To: db}, ui))
	assert.Contains(t, out.String(), "Successfully imported 2 docs")

	out.Reset()
	require.NoError(t, docCommand(DocOptions{DocPath: db, Count: -1}, nil, ui))
	assert.Equal(t, "📖 1 Mayor 🔖 politics\n📖 2 Storm\n", out.String())

	out.Reset()
	require.NoError(t, statCommand(StatOptions{DocPath: db, Top: 10}, nil, ui))
	assert.Contains(t, out.String(), "Stored root lemmas 2\n")

	exported := filepath.Join(t.TempDir(), "exported")
	out.Reset()
	require.NoError(t, exportDocCommand(ExportDocOptions{From: db, To: exported}, ui))
	assert.Contains(t, out.String(), "Successfully exported 2 docs")

	doc, err := filesystem.ReadDoc(filepath.Join(exported, "storm.json"))
	require.NoError(t, err)
	require.Len(t, doc.Sentences, 1)
	assert.Equal(t, "The storm arrived last night without warning.", doc.Sentences[0].Text())

	assert.Error(t, exportDocCommand(ExportDocOptions{From: filepath.Join(dir, "none.db"), To: exported}, ui))
}

func TestCorpseCommand(t *testing.T) {
	ui, out, errOut := testUI()
	dir := docDir(t)

	cfg := config.Default()
	cfg.ParserURL = parseServer(t).URL
	cfg.Sink.Dir = t.TempDir()

	docId := 0
	opts := CorpseOptions{DocPath: dir, Count: 1, Doc: &docId, Sink: config.SinkFile, NoColor: true}
	require.NoError(t, corpseCommand(context.Background(), opts, cfg, ui))

	// the parser fails, every sentence keeps its text
	assert.Equal(t, "Mayor\n\nThe mayor arrived early. The mayor is happy.\n\n", out.String())
	assert.Equal(t, "Saved 1 corpses (file)\n", errOut.String())

	files, err := filepath.Glob(filepath.Join(cfg.Sink.Dir, "exq_*.txt"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), "The mayor arrived early. The mayor is happy.")
}

func TestCorpseCommandSqlite(t *testing.T) {
	ui, out, _ := testUI()
	dir := docDir(t)

	cfg := config.Default()
	cfg.ParserURL = parseServer(t).URL
	cfg.Sink.Path = filepath.Join(t.TempDir(), "corpses.db")

	docId := 1
	opts := CorpseOptions{DocPath: dir, Count: 2, Doc: &docId, Sink: config.SinkSqlite, JSON: true}
	require.NoError(t, corpseCommand(context.Background(), opts, cfg, ui))

	out.Reset()
	require.NoError(t, corpsesCommand(context.Background(), CorpsesOptions{From: cfg.Sink.Path}, ui))
	assert.Equal(t, 2, strings.Count(out.String(), "The storm arrived last night without warning."))
}

func TestMungeCommand(t *testing.T) {
	ui, out, _ := testUI()
	dir := docDir(t)

	cfg := config.Default()
	cfg.ParserURL = parseServer(t, st.MayorArrivedStorm()).URL

	opts := MungeOptions{DocPath: dir, Lemma: "arrive", Count: 1, Format: "text", NoColor: true, NoPrefix: true}
	require.NoError(t, mungeCommand(context.Background(), opts, cfg, ui))
	assert.Contains(t, out.String(), "🔀 The mayor arrived last night without warning.\n")

	docId := 0
	opts = MungeOptions{DocPath: dir, Lemma: "arrive", Doc: &docId}
	assert.Error(t, mungeCommand(context.Background(), opts, cfg, ui))
}
