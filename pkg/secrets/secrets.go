// Package secrets loads credentials from AWS Secrets Manager.
package secrets

import (
	"context"
	"encoding/json"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// RedisCredentials is the JSON shape of the "redis_data" secret.
type RedisCredentials struct {
	Host     string `json:"REDIS_HOST"`
	Port     string `json:"REDIS_PORT"`
	Username string `json:"REDIS_USERNAME"`
	Password string `json:"REDIS_PASSWORD"`
}

// Client wraps the Secrets Manager API.
type Client struct {
	sm *secretsmanager.Client
}

// NewClient creates a Secrets Manager client using the default AWS
// credential chain and the given region.
func NewClient(ctx context.Context, region string) (*Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}
	return &Client{sm: secretsmanager.NewFromConfig(cfg)}, nil
}

// GetString fetches a secret and returns its string value.
func (c *Client) GetString(ctx context.Context, name string) (string, error) {
	out, err := c.sm.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: &name,
	})
	if err != nil {
		return "", fmt.Errorf("failed to get secret %s: %w", name, err)
	}
	if out.SecretString == nil {
		return "", fmt.Errorf("secret %s value is not a string", name)
	}
	return *out.SecretString, nil
}

// GetRedisCredentials fetches and decodes the Redis credential secret.
func (c *Client) GetRedisCredentials(ctx context.Context, name string) (*RedisCredentials, error) {
	raw, err := c.GetString(ctx, name)
	if err != nil {
		return nil, err
	}

	var creds RedisCredentials
	if err := json.Unmarshal([]byte(raw), &creds); err != nil {
		return nil, fmt.Errorf("failed to decode secret %s: %w", name, err)
	}

	return &creds, nil
}
