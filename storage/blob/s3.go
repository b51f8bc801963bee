package blob

import (
	"bytes"
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"

	"github.com/trezcool/elimu/core"
)

const jsonContentType = "application/json"

type s3Sink struct {
	client *s3.Client
	bucket string
}

// NewS3Sink builds an S3 (or MinIO) sink. Credentials come from the default AWS chain.
func NewS3Sink(ctx context.Context, conf core.ExportConfig) (Sink, error) {
	if conf.Bucket == "" {
		return nil, errors.New("s3 bucket required")
	}
	region := conf.Region
	if region == "" {
		region = "us-east-1"
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, errors.Wrap(err, "loading aws config")
	}
	return newS3Sink(awsCfg, conf), nil
}

func newS3Sink(awsCfg aws.Config, conf core.ExportConfig, optFns ...func(*s3.Options)) *s3Sink {
	client := s3.NewFromConfig(awsCfg, append([]func(*s3.Options){func(o *s3.Options) {
		o.UsePathStyle = conf.PathStyle
		if conf.Endpoint != "" {
			o.BaseEndpoint = aws.String(conf.Endpoint)
		}
	}}, optFns...)...)
	return &s3Sink{client: client, bucket: conf.Bucket}
}

func (s *s3Sink) Put(ctx context.Context, name string, payload []byte) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(name),
		Body:        bytes.NewReader(payload),
		ContentType: aws.String(jsonContentType),
	})
	if err != nil {
		return "", errors.Wrapf(err, "uploading %s", name)
	}
	return "s3://" + s.bucket + "/" + name, nil
}
