package store

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-backup-vault/internal/config"
	"github.com/MKhiriev/go-backup-vault/internal/logger"
	"github.com/MKhiriev/go-backup-vault/internal/utils"
)

// objectPutter is the subset of *s3.Client used by the mirror.
type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// s3Mirror copies account files to an S3-compatible bucket under
// <prefix><uid>/<name>.
type s3Mirror struct {
	root   string
	bucket string
	prefix string
	client objectPutter
	logger *logger.Logger
}

// NewS3Mirror builds a [Mirror] for cfg. Static credentials are used when an
// access key is configured; otherwise the default AWS credential chain
// applies.
func NewS3Mirror(ctx context.Context, dataDir string, cfg config.S3, logger *logger.Logger) (Mirror, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("error loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	logger.Info().Str("bucket", cfg.Bucket).Str("endpoint", cfg.Endpoint).Msg("s3 mirror enabled")

	return newS3Mirror(dataDir, cfg, client, logger), nil
}

func newS3Mirror(dataDir string, cfg config.S3, client objectPutter, logger *logger.Logger) *s3Mirror {
	return &s3Mirror{
		root:   dataDir,
		bucket: cfg.Bucket,
		prefix: cfg.Prefix,
		client: client,
		logger: logger,
	}
}

// Replicate uploads the named files concurrently. The first failure cancels
// the remaining uploads.
func (m *s3Mirror) Replicate(ctx context.Context, uid string, names ...string) error {
	dir, err := accountDir(m.root, uid)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, name := range names {
		g.Go(func() error {
			return m.put(ctx, uid, filepath.Join(dir, name), name)
		})
	}

	if err = g.Wait(); err != nil {
		return fmt.Errorf("%w: %w", ErrMirroring, err)
	}

	m.logger.Debug().Str("uid", utils.ShortUID(uid)).Strs("files", names).Msg("files mirrored")
	return nil
}

func (m *s3Mirror) put(ctx context.Context, uid, localPath, name string) error {
	f, err := os.Open(localPath)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	_, err = m.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(m.bucket),
		Key:           aws.String(m.objectKey(uid, name)),
		Body:          f,
		ContentLength: aws.Int64(info.Size()),
	})
	if err != nil {
		return fmt.Errorf("put %s: %w", name, err)
	}

	return nil
}

func (m *s3Mirror) objectKey(uid, name string) string {
	return m.prefix + path.Join(uid, name)
}

// noopMirror is used when no off-site storage is configured.
type noopMirror struct{}

// NewNoopMirror returns a [Mirror] that does nothing.
func NewNoopMirror() Mirror {
	return noopMirror{}
}

func (noopMirror) Replicate(context.Context, string, ...string) error {
	return nil
}
