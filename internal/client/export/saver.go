package export

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/dmitrijs2005/payrollview/internal/filex"
	"github.com/dmitrijs2005/payrollview/internal/netx"
)

// DefaultDir is where DirSaver writes when no directory is configured.
const DefaultDir = "download"

// DirSaver writes files into a local directory, creating it on demand.
type DirSaver struct {
	Dir string
}

func (d DirSaver) Save(ctx context.Context, f File) (string, error) {
	dir := d.Dir
	if dir == "" {
		dir = DefaultDir
	}
	abs, err := filex.EnsureDir(dir)
	if err != nil {
		return "", err
	}
	return filex.WriteFileAtomic(abs, f.Name, f.Data)
}

// PutObjectAPI is the S3 call S3Saver needs.
type PutObjectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Config selects the bucket and, optionally, static credentials and a
// custom endpoint for S3-compatible stores such as MinIO.
type S3Config struct {
	Bucket          string
	Prefix          string
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

// S3Saver uploads files to an S3 bucket under an optional key prefix.
type S3Saver struct {
	client PutObjectAPI
	bucket string
	prefix string
}

var loadDefaultAWSConfig = config.LoadDefaultConfig

// NewS3Saver builds an S3 client from cfg. Without static credentials the
// default AWS credential chain is used.
func NewS3Saver(ctx context.Context, cfg S3Config) (*S3Saver, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 export: bucket is required")
	}
	var opts []func(*config.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, config.WithRegion(cfg.Region))
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")))
	}
	awsCfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("s3 export: load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	return NewS3SaverWithClient(client, cfg.Bucket, cfg.Prefix), nil
}

func NewS3SaverWithClient(client PutObjectAPI, bucket, prefix string) *S3Saver {
	return &S3Saver{client: client, bucket: bucket, prefix: strings.Trim(prefix, "/")}
}

func (s *S3Saver) Save(ctx context.Context, f File) (string, error) {
	key := f.Name
	if s.prefix != "" {
		key = path.Join(s.prefix, f.Name)
	}
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(f.Data),
		ContentType:   aws.String(f.ContentType),
		ContentLength: aws.Int64(int64(len(f.Data))),
	})
	if err != nil {
		return "", fmt.Errorf("s3 put %s: %w", key, err)
	}
	return "s3://" + s.bucket + "/" + key, nil
}

// HTTPSaver PUTs files under a base URL, e.g. a WebDAV share or an upload
// gateway. The file name is appended as the last path segment; the query
// string of BaseURL is kept.
type HTTPSaver struct {
	BaseURL string
	Client  *http.Client
}

func (h HTTPSaver) Save(ctx context.Context, f File) (string, error) {
	u, err := url.Parse(h.BaseURL)
	if err != nil {
		return "", fmt.Errorf("http export: %w", err)
	}
	u = u.JoinPath(f.Name)
	loc := u.String()
	if err := netx.Put(ctx, h.Client, loc, f.ContentType, f.Data); err != nil {
		return "", fmt.Errorf("http put %s: %w", f.Name, err)
	}
	return loc, nil
}
