package main

import (
	"fmt"
	"os"

	"github.com/gosuri/uiprogress"

	"github.com/revelaction/newsmunger/config"
	"github.com/revelaction/newsmunger/logger"
	"github.com/revelaction/newsmunger/munge"
	"github.com/revelaction/newsmunger/parse"
	sent "github.com/revelaction/newsmunger/sentence"
	"github.com/revelaction/newsmunger/storage"
	"github.com/revelaction/newsmunger/storage/filesystem"
	"github.com/revelaction/newsmunger/storage/s3"
	"github.com/revelaction/newsmunger/storage/sqlite/zombiezen"
	"github.com/revelaction/newsmunger/verbclass"
)

// NewDocRepository returns a filesystem store for a directory and a SQLite
// store for a file.
func NewDocRepository(p *Pool, path string) (storage.DocRepository, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("repository not found: %s", path)
	}

	if info.IsDir() {
		return filesystem.NewDocStore(path)
	}

	pool, err := p.Open(path)
	if err != nil {
		return nil, err
	}
	return zombiezen.NewDocStore(pool), nil
}

// NewCorpseWriter returns the sink of the configured kind.
func NewCorpseWriter(p *Pool, sink config.Sink) (storage.CorpseWriter, error) {
	switch sink.Kind {
	case config.SinkFile:
		if err := os.MkdirAll(sink.Dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create corpse directory: %w", err)
		}
		return filesystem.NewCorpseStore(sink.Dir), nil

	case config.SinkSqlite:
		if sink.Path == "" {
			return nil, fmt.Errorf("no SQLite path configured for the corpse sink")
		}
		pool, err := p.Open(sink.Path)
		if err != nil {
			return nil, err
		}
		if err := zombiezen.CreateSchemas(pool, zombiezen.CorpsesSchema); err != nil {
			return nil, fmt.Errorf("failed to create corpses table: %w", err)
		}
		return zombiezen.NewCorpseStore(pool), nil

	case config.SinkS3:
		cfg, err := s3.ReadEnvironment(s3.Config{Bucket: sink.Bucket, Region: sink.Region, Prefix: sink.Prefix})
		if err != nil {
			return nil, err
		}
		store, err := s3.New(cfg, logger.NewLogger("s3"))
		if err != nil {
			return nil, err
		}
		return store, nil
	}

	return nil, fmt.Errorf("unknown sink kind %q", sink.Kind)
}

// newParser returns the parse service client, behind the Redis cache when
// an address is configured. The returned func releases the cache.
func newParser(cfg config.Config) (parse.Parser, func() error) {
	var p parse.Parser = parse.NewClient(cfg.ParserURL, cfg.ParserTimeout, parse.WithLogger(logger.NewLogger("parse")))

	if cfg.Redis.Addr == "" {
		return p, func() error { return nil }
	}

	store := parse.NewRedisStore(parse.RedisOptions{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	return parse.NewCache(p, store, cfg.Redis.TTL, logger.NewLogger("parse-cache")), store.Close
}

func verbClasses(cfg config.Config) (verbclass.Resource, error) {
	if cfg.VerbClassPath == "" {
		return verbclass.Default(), nil
	}

	return verbclass.LoadFile(cfg.VerbClassPath)
}

func newSession(lib sent.Library, p parse.Parser, classes verbclass.Resource, cfg config.Config) *munge.Session {
	return munge.NewSession(lib, p,
		munge.WithLogger(logger.NewLogger("munge")),
		munge.WithVerbClasses(classes),
		munge.WithMaxRetries(cfg.MaxRetries),
		munge.WithMaxQuoteRepairs(cfg.MaxQuoteRepairs),
		munge.WithMaxDepth(cfg.MaxDepth),
	)
}

// library reads the docs of the repository into memory, showing a progress
// bar.
func library(repo storage.DocReader, label string, ui UI) (sent.Library, error) {
	if !ui.Progress {
		return storage.LoadLibrary(repo, label, nil)
	}

	progress := uiprogress.New()
	progress.Start()
	bar := progress.AddBar(1) // Placeholder, updated in callback
	bar.AppendCompleted()
	bar.PrependElapsed()

	var currentName string
	bar.AppendFunc(func(b *uiprogress.Bar) string {
		return currentName
	})

	lib, err := storage.LoadLibrary(repo, label, func(current, total int, title string) {
		if bar.Total <= 1 {
			bar.Total = total
		}
		currentName = title
		bar.Set(current)
	})
	progress.Stop()

	return lib, err
}

// docPosition returns the position in the library of the doc with the store
// id.
func docPosition(lib sent.Library, id int) (int, error) {
	for i, doc := range lib {
		if doc.Id == id {
			return i, nil
		}
	}

	return 0, fmt.Errorf("doc %d not found", id)
}
