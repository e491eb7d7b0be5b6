package database

import (
	"context"

	appconfig "repair_intake/internal/infrastructure/config"
	"repair_intake/internal/infrastructure/logging"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/rs/zerolog"
)

// ConnectDynamoDB creates a DynamoDB client. A non-empty Endpoint points the
// client at DynamoDB Local (e.g. http://dynamodb:8000).
func ConnectDynamoDB(ctx context.Context, settings appconfig.AWS, logger *zerolog.Logger) (*dynamodb.Client, error) {
	cfg, err := NewDynamoDBConfig(ctx, settings)
	if err != nil {
		return nil, err
	}
	logging.OrNop(logger).Info().Str("region", settings.Region).Str("endpoint", settings.Endpoint).Msg("dynamodb client configured")
	return dynamodb.NewFromConfig(cfg), nil
}

func NewDynamoDBConfig(ctx context.Context, settings appconfig.AWS) (aws.Config, error) {
	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(settings.Region),
	}
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	if settings.AccessKeyID != "" {
		creds := credentials.NewStaticCredentialsProvider(settings.AccessKeyID, settings.SecretAccessKey, "")
		loadOpts = append(loadOpts, config.WithCredentialsProvider(creds))
	}

	if endpoint := settings.Endpoint; endpoint != "" {
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
			if service == dynamodb.ServiceID {
				return aws.Endpoint{URL: endpoint, SigningRegion: region, HostnameImmutable: true}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
		loadOpts = append(loadOpts, config.WithEndpointResolverWithOptions(resolver))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}
