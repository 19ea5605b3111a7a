package git

import (
	"context"
	"fmt"
)

// ConfigGet returns a git config value, or "" when the key is unset
func (r *Repo) ConfigGet(ctx context.Context, key string) (string, error) {
	value, err := r.runTrimmed(ctx, "config", []string{"--get", key}, Quiet(), AllowStatus(1))
	if err != nil {
		return "", fmt.Errorf("failed to read git config %s: %w", key, err)
	}
	return value, nil
}

// ConfigSet writes a repository-local git config value
func (r *Repo) ConfigSet(ctx context.Context, key, value string) error {
	if _, err := r.Run(ctx, "config", []string{"--local", key, value}); err != nil {
		return fmt.Errorf("failed to set git config %s: %w", key, err)
	}
	return nil
}
