package assets

import (
	"context"
	stderrors "errors"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/vango-dev/navshell/internal/errors"
)

// objectGetter is the part of *s3.Client the store uses.
type objectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Config selects the bucket assets are read from.
type S3Config struct {
	Bucket   string
	Prefix   string
	Region   string
	Endpoint string
}

// S3Store reads assets from an S3 bucket.
//
// Example usage:
//
//	store, err := assets.NewS3Store(ctx, assets.S3Config{
//	    Bucket: "navshell-assets",
//	    Prefix: "v1",
//	    Region: "eu-west-1",
//	})
type S3Store struct {
	client objectGetter
	bucket string
	prefix string
}

// NewS3Store creates a store with an S3 client from the default AWS
// configuration chain: environment, shared config and credentials files
// (AWS_PROFILE, SSO), then container and instance roles. A custom endpoint
// switches to path-style addressing for S3-compatible stores.
func NewS3Store(ctx context.Context, cfg S3Config) (*S3Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, errors.New("E402").WithDetail("loading AWS configuration").Wrap(err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	return newS3Store(client, cfg.Bucket, cfg.Prefix), nil
}

func newS3Store(client objectGetter, bucket, prefix string) *S3Store {
	return &S3Store{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}
}

// key returns the object key for name.
func (s *S3Store) key(name string) string {
	if s.prefix == "" {
		return name
	}
	return s.prefix + "/" + name
}

// Open implements Store.
func (s *S3Store) Open(ctx context.Context, name string) ([]byte, string, error) {
	key := s.key(name)
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if stderrors.As(err, &noKey) {
			return nil, "", errors.New("E401").WithDetailf("s3://%s/%s", s.bucket, key)
		}
		return nil, "", errors.New("E402").WithDetailf("s3://%s/%s", s.bucket, key).Wrap(err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, "", errors.New("E402").WithDetailf("reading s3://%s/%s", s.bucket, key).Wrap(err)
	}

	ct := aws.ToString(out.ContentType)
	if ct == "" || ct == "binary/octet-stream" {
		ct = contentType(name)
	}
	return data, ct, nil
}
