package media

import (
	"context"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	applog "guesthouse/internal/log"
)

const maxUploadBytes = 8 << 20

var allowedTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	UseSSL    bool
	PublicURL string
}

// MinIOGallery keeps uploaded images in an S3-compatible bucket.
type MinIOGallery struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

func NewMinIOGallery(ctx context.Context, cfg MinIOConfig) (*MinIOGallery, error) {
	endpoint := strings.TrimPrefix(strings.TrimPrefix(cfg.Endpoint, "https://"), "http://")
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}
	g := &MinIOGallery{client: client, bucket: cfg.Bucket, publicURL: strings.TrimRight(cfg.PublicURL, "/")}
	if g.publicURL == "" {
		scheme := "http://"
		if cfg.UseSSL {
			scheme = "https://"
		}
		g.publicURL = scheme + endpoint
	}
	if err := g.ensureBucket(ctx, cfg.Region); err != nil {
		applog.L().Warn().Err(err).Str("bucket", cfg.Bucket).Msg("media.bucket")
	}
	return g, nil
}

func (g *MinIOGallery) ensureBucket(ctx context.Context, region string) error {
	exists, err := g.client.BucketExists(ctx, g.bucket)
	if err != nil {
		return fmt.Errorf("check bucket: %w", err)
	}
	if exists {
		return nil
	}
	if err := g.client.MakeBucket(ctx, g.bucket, minio.MakeBucketOptions{Region: region}); err != nil {
		return fmt.Errorf("create bucket: %w", err)
	}
	policy := fmt.Sprintf(`{"Version":"2012-10-17","Statement":[{"Effect":"Allow","Principal":{"AWS":["*"]},"Action":["s3:GetObject"],"Resource":["arn:aws:s3:::%s/*"]}]}`, g.bucket)
	return g.client.SetBucketPolicy(ctx, g.bucket, policy)
}

func (g *MinIOGallery) url(key string) string {
	return g.publicURL + "/" + g.bucket + "/" + key
}

func (g *MinIOGallery) List(ctx context.Context) ([]string, error) {
	var out []string
	for obj := range g.client.ListObjects(ctx, g.bucket, minio.ListObjectsOptions{Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("list objects: %w", obj.Err)
		}
		out = append(out, g.url(obj.Key))
	}
	sort.Strings(out)
	return out, nil
}

func (g *MinIOGallery) Upload(ctx context.Context, u Upload) (string, error) {
	key, err := ObjectKey(u)
	if err != nil {
		return "", err
	}
	_, err = g.client.PutObject(ctx, g.bucket, key, u.Body, u.Size, minio.PutObjectOptions{ContentType: u.ContentType})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}
	return g.url(key), nil
}

// ObjectKey checks type and size and derives a unique key from the file name.
func ObjectKey(u Upload) (string, error) {
	ext, ok := allowedTypes[u.ContentType]
	if !ok {
		return "", fmt.Errorf("unsupported image type %q", u.ContentType)
	}
	if u.Size <= 0 || u.Size > maxUploadBytes {
		return "", fmt.Errorf("image size %d out of range", u.Size)
	}
	name := path.Base(strings.ReplaceAll(u.Filename, `\`, "/"))
	base := strings.TrimSuffix(name, path.Ext(name))
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		}
		return '-'
	}, base)
	base = strings.Trim(base, "-")
	if base == "" || base == "." {
		base = "image"
	}
	return fmt.Sprintf("rooms/%s_%s%s", base, uuid.NewString()[:8], ext), nil
}
