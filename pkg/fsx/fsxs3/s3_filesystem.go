package fsxs3

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/ajcportal/careerhub/pkg/fsx"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3FileSystem implements fsx.FileSystem on top of an S3 bucket
type S3FileSystem struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewS3FileSystem creates a file system rooted at bucket/prefix
func NewS3FileSystem(client *s3.Client, bucket, prefix string) fsx.FileSystem {
	return &S3FileSystem{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

func (f *S3FileSystem) WriteFile(ctx context.Context, filePath string, data []byte) error {
	return f.WriteFileStream(ctx, filePath, bytes.NewReader(data))
}

func (f *S3FileSystem) WriteFileStream(ctx context.Context, filePath string, r io.Reader) error {
	key := f.key(filePath)
	_, err := f.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(f.bucket),
		Key:    aws.String(key),
		Body:   r,
	})
	if err != nil {
		return fmt.Errorf("put object %s: %w", key, err)
	}
	return nil
}

func (f *S3FileSystem) ReadFile(ctx context.Context, filePath string) ([]byte, error) {
	key := f.key(filePath)
	out, err := f.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(f.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("get object %s: %w", key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("read object %s: %w", key, err)
	}
	return data, nil
}

func (f *S3FileSystem) DeleteFile(ctx context.Context, filePath string) error {
	key := f.key(filePath)
	_, err := f.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(f.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete object %s: %w", key, err)
	}
	return nil
}

func (f *S3FileSystem) Join(elem ...string) string {
	return fsx.Join(elem...)
}

func (f *S3FileSystem) key(filePath string) string {
	if f.prefix == "" {
		return filePath
	}
	return fsx.Join(f.prefix, filePath)
}
