package database

import (
	"context"
	"log"
	"strings"

	appconfig "card_payments/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB creates a DynamoDB client. A configured endpoint (DynamoDB
// Local, LocalStack) replaces the regional one.
func ConnectDynamoDB(ctx context.Context, c appconfig.DynamoDBConfig) (*dynamodb.Client, error) {
	cfg, err := NewAWSConfig(ctx, c)
	if err != nil {
		log.Printf("[dynamodb] failed to create aws config err=%v", err)
		return nil, err
	}

	endpoint := strings.TrimSpace(c.Endpoint)
	client := dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
	log.Printf("[dynamodb] client ready region=%s endpoint=%q", cfg.Region, endpoint)
	return client, nil
}

func NewAWSConfig(ctx context.Context, c appconfig.DynamoDBConfig) (aws.Config, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(c.Region)}
	if creds, ok := staticCredentials(c); ok {
		opts = append(opts, config.WithCredentialsProvider(creds))
	}
	return config.LoadDefaultConfig(ctx, opts...)
}

// staticCredentials returns the configured key pair when both halves are set.
// A local endpoint does not validate credentials but the SDK still signs, so it gets
// placeholder keys. Anything else is left to the default credential chain.
func staticCredentials(c appconfig.DynamoDBConfig) (aws.CredentialsProvider, bool) {
	id, secret := strings.TrimSpace(c.AccessKeyID), strings.TrimSpace(c.SecretAccessKey)
	switch {
	case id != "" && secret != "":
		return credentials.NewStaticCredentialsProvider(id, secret, ""), true
	case strings.TrimSpace(c.Endpoint) != "":
		return credentials.NewStaticCredentialsProvider("local", "local", ""), true
	}
	return nil, false
}
