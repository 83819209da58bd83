package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
)

// DeleteObjects accepts at most this many keys per call.
const maxBatchDelete = 1000

// Asset is an uploaded image: public URL plus the identifier used to
// delete it later.
type Asset struct {
	URL      string `json:"url" bson:"url"`
	PublicID string `json:"publicId" bson:"publicId"`
}

// s3API is the subset of the S3 client the adapter calls.
type s3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	DeleteObjects(ctx context.Context, in *s3.DeleteObjectsInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectsOutput, error)
}

type R2Options struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	Bucket        string
	PublicBaseURL string
}

type R2Client struct {
	client  s3API
	bucket  string
	baseURL string
}

func NewR2Client(ctx context.Context, opts R2Options) (*R2Client, error) {
	cfg, err := config.LoadDefaultConfig(
		ctx,
		config.WithRegion("auto"),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				opts.AccessKey,
				opts.SecretKey,
				"",
			),
		),
	)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(opts.Endpoint)
		o.UsePathStyle = true
	})

	return newR2Client(client, opts.Bucket, opts.PublicBaseURL), nil
}

func newR2Client(client s3API, bucket, baseURL string) *R2Client {
	return &R2Client{
		client:  client,
		bucket:  bucket,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Upload applies the transform profile to data and stores the result
// under folder. The returned PublicID is the object key.
func (r *R2Client) Upload(ctx context.Context, data []byte, folder string, t Transform) (*Asset, error) {
	out, contentType, err := t.Apply(data)
	if err != nil {
		return nil, err
	}

	key := path.Join(folder, uuid.New().String()+extensionFor(contentType))

	_, err = r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &r.bucket,
		Key:         &key,
		Body:        bytes.NewReader(out),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return nil, fmt.Errorf("put object %s: %w", key, err)
	}

	return &Asset{
		URL:      fmt.Sprintf("%s/%s", r.baseURL, key),
		PublicID: key,
	}, nil
}

func (r *R2Client) Delete(ctx context.Context, publicID string) error {
	if publicID == "" {
		return nil
	}
	_, err := r.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: &r.bucket,
		Key:    aws.String(publicID),
	})
	if err != nil {
		return fmt.Errorf("delete object %s: %w", publicID, err)
	}
	return nil
}

// DeleteMany removes every id, chunked to the provider's batch limit.
// Per-object failures reported by the provider are joined into the
// returned error.
func (r *R2Client) DeleteMany(ctx context.Context, publicIDs []string) error {
	var errs []error

	for start := 0; start < len(publicIDs); start += maxBatchDelete {
		end := min(start+maxBatchDelete, len(publicIDs))

		objects := make([]types.ObjectIdentifier, 0, end-start)
		for _, id := range publicIDs[start:end] {
			objects = append(objects, types.ObjectIdentifier{Key: aws.String(id)})
		}

		out, err := r.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
			Bucket: &r.bucket,
			Delete: &types.Delete{Objects: objects, Quiet: aws.Bool(true)},
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("delete objects: %w", err))
			continue
		}
		for _, e := range out.Errors {
			errs = append(errs, fmt.Errorf("delete %s: %s", aws.ToString(e.Key), aws.ToString(e.Message)))
		}
	}

	return errors.Join(errs...)
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	default:
		return ".jpg"
	}
}
