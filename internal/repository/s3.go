package repository

import (
	"bufio"
	"context"
	"io"
	"path"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"go.uber.org/zap"
)

type S3Option func(*S3)

func S3WithRegion(region string) S3Option {
	return func(s *S3) {
		s.Region = region
	}
}

func S3WithBucket(bucket string) S3Option {
	return func(s *S3) {
		s.Bucket = bucket
	}
}

func S3WithPrefix(prefix string) S3Option {
	return func(s *S3) {
		s.Prefix = prefix
	}
}

func S3WithEndpoint(endpoint string) S3Option {
	return func(s *S3) {
		s.Endpoint = endpoint
	}
}

func S3WithForcePathStyle(forcePathStyle bool) S3Option {
	return func(s *S3) {
		s.ForcePathStyle = forcePathStyle
	}
}

func S3WithLogger(l *zap.Logger) S3Option {
	return func(s *S3) {
		s.logger = l
	}
}

// S3 uploads artifacts to an object store bucket. Endpoint and
// path-style addressing are configurable for minio-style local stacks.
type S3 struct {
	logger   *zap.Logger
	uploader *s3manager.Uploader

	Endpoint       string
	Region         string
	Bucket         string
	Prefix         string
	ForcePathStyle bool
}

func NewS3(opts ...S3Option) *S3 {
	s := &S3{
		logger: zap.NewNop(),
	}
	for _, o := range opts {
		o(s)
	}

	awsConfig := &aws.Config{
		Region:           aws.String(s.Region),
		S3ForcePathStyle: aws.Bool(s.ForcePathStyle),
	}
	if s.Endpoint != "" {
		awsConfig.Endpoint = aws.String(s.Endpoint)
	}

	sess, _ := session.NewSession(awsConfig)
	s.uploader = s3manager.NewUploader(sess)

	return s
}

func (s *S3) Write(ctx context.Context, key string, reader io.Reader) error {
	objPath := path.Join(s.Prefix, key)

	s.logger.Debug("s3 write",
		zap.String("key", key),
		zap.String("object_path", objPath),
		zap.String("bucket", s.Bucket),
	)

	_, err := s.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(objPath),
		Body:   bufio.NewReader(reader),
	})
	return err
}
