// Package s3 stores corpses as JSON objects in an S3 bucket, one object per
// corpse.
package s3

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/aws/aws-sdk-go/service/s3/s3manager/s3manageriface"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"

	"github.com/revelaction/newsmunger/corpse"
	"github.com/revelaction/newsmunger/storage"
)

// Config locates the bucket. Empty credentials use the default AWS chain.
type Config struct {
	Bucket      string `envconfig:"NEWSMUNGER_S3_BUCKET"`
	Region      string `envconfig:"NEWSMUNGER_S3_REGION"`
	Prefix      string `envconfig:"NEWSMUNGER_S3_PREFIX"`
	Endpoint    string `envconfig:"NEWSMUNGER_S3_ENDPOINT_URL"`
	AccessKeyID string `envconfig:"NEWSMUNGER_S3_ACCESS_ID"`
	AccessKey   string `envconfig:"NEWSMUNGER_S3_ACCESS_KEY"`
}

// ReadEnvironment overrides cfg with the NEWSMUNGER_S3_* variables.
func ReadEnvironment(cfg Config) (Config, error) {
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

type CorpseStore struct {
	uploader s3manageriface.UploaderAPI
	bucket   string
	prefix   string
	logger   zerolog.Logger
}

var _ storage.CorpseWriter = (*CorpseStore)(nil)

// New creates a store with a new AWS session.
func New(cfg Config, logger zerolog.Logger) (*CorpseStore, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("no S3 bucket configured")
	}

	awsCfg := aws.NewConfig().
		WithRegion(cfg.Region).
		WithMaxRetries(4).
		WithLogger(getLogger(logger))

	if cfg.AccessKeyID != "" {
		awsCfg = awsCfg.WithCredentials(credentials.NewStaticCredentials(cfg.AccessKeyID, cfg.AccessKey, ""))
	}

	if cfg.Endpoint != "" {
		awsCfg = awsCfg.WithEndpoint(cfg.Endpoint).WithS3ForcePathStyle(true)
	}

	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, fmt.Errorf("could not initialize S3 session: %w", err)
	}

	return NewWithUploader(s3manager.NewUploader(sess), cfg.Bucket, cfg.Prefix, logger), nil
}

func NewWithUploader(u s3manageriface.UploaderAPI, bucket, prefix string, logger zerolog.Logger) *CorpseStore {
	return &CorpseStore{uploader: u, bucket: bucket, prefix: prefix, logger: logger}
}

// Key returns the object key of the corpse.
func (h *CorpseStore) Key(c corpse.Corpse) string {
	return path.Join(h.prefix, c.Created.Format("2006/01/02"), c.Id.String()+".json")
}

func (h *CorpseStore) Write(ctx context.Context, c corpse.Corpse) error {
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}

	key := h.Key(c)
	log := h.logger.With().Str("key", key).Str("bucket", h.bucket).Logger()
	log.Debug().Msg("Uploading the corpse")

	_, err = h.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(h.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to upload the corpse")
		return fmt.Errorf("S3 upload error: %w", err)
	}

	return nil
}

type s3Logger struct {
	logger zerolog.Logger
}

func getLogger(l zerolog.Logger) *s3Logger {
	return &s3Logger{l}
}

func (l *s3Logger) Log(v ...interface{}) {
	l.logger.Debug().Msg(fmt.Sprint(v...))
}
