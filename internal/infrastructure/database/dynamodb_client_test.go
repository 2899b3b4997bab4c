package database

import (
	"context"
	"path/filepath"
	"testing"

	appconfig "card_payments/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

func TestNewAWSConfig_UsesStaticCredentials(t *testing.T) {
	cfg, err := NewAWSConfig(context.Background(), appconfig.DynamoDBConfig{
		Region:          "eu-west-1",
		AccessKeyID:     "local",
		SecretAccessKey: "local-secret",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Region != "eu-west-1" {
		t.Fatalf("unexpected region %q", cfg.Region)
	}
	creds, err := cfg.Credentials.Retrieve(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if creds.AccessKeyID != "local" || creds.SecretAccessKey != "local-secret" {
		t.Fatalf("unexpected credentials: %+v", creds)
	}
}

func TestConnectDynamoDB_WithEndpoint(t *testing.T) {
	client, err := ConnectDynamoDB(context.Background(), appconfig.DynamoDBConfig{
		Region:          "us-east-1",
		AccessKeyID:     "local",
		SecretAccessKey: "local",
		Endpoint:        "http://localhost:8000",
	})
	if err != nil || client == nil {
		t.Fatalf("expected client, got %v", err)
	}
	if got := client.Options().BaseEndpoint; got == nil || *got != "http://localhost:8000" {
		t.Fatalf("unexpected base endpoint %v", got)
	}
}

func TestNewAWSConfig_CredentialSource(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")
	t.Setenv("AWS_ACCESS_KEY_ID", "")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "")
	t.Setenv("AWS_PROFILE", "")
	t.Setenv("AWS_CONFIG_FILE", missing)
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", missing)

	t.Run("unset keys use the default chain", func(t *testing.T) {
		cfg, err := NewAWSConfig(context.Background(), appconfig.DynamoDBConfig{Region: "us-east-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if aws.IsCredentialsProvider(cfg.Credentials, credentials.StaticCredentialsProvider{}) {
			t.Fatalf("expected the default credential chain, got static credentials")
		}
	})

	t.Run("half a key pair is ignored", func(t *testing.T) {
		cfg, err := NewAWSConfig(context.Background(), appconfig.DynamoDBConfig{Region: "us-east-1", AccessKeyID: "AKIA"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if aws.IsCredentialsProvider(cfg.Credentials, credentials.StaticCredentialsProvider{}) {
			t.Fatalf("expected the default credential chain, got static credentials")
		}
	})

	t.Run("local endpoint gets placeholder keys", func(t *testing.T) {
		cfg, err := NewAWSConfig(context.Background(), appconfig.DynamoDBConfig{Region: "us-east-1", Endpoint: "http://localhost:8000"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		creds, err := cfg.Credentials.Retrieve(context.Background())
		if err != nil || creds.AccessKeyID != "local" {
			t.Fatalf("unexpected credentials %+v err=%v", creds, err)
		}
	})
}
