package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Worker.PollInterval <= 0 {
		return fmt.Errorf("worker.poll_interval must be > 0 (got %v)", c.Worker.PollInterval)
	}
	if c.Worker.BatchSize <= 0 {
		return fmt.Errorf("worker.batch_size must be > 0 (got %d)", c.Worker.BatchSize)
	}
	if c.Worker.MaxRetries < 0 {
		return fmt.Errorf("worker.max_retries must be >= 0 (got %d)", c.Worker.MaxRetries)
	}

	if c.Hygiene.DefaultThresholdDays <= 0 {
		return fmt.Errorf("hygiene.default_threshold_days must be > 0 (got %d)", c.Hygiene.DefaultThresholdDays)
	}
	if c.Hygiene.MaxThresholdDays < c.Hygiene.DefaultThresholdDays {
		return fmt.Errorf("hygiene.max_threshold_days must be >= default (got %d < %d)",
			c.Hygiene.MaxThresholdDays, c.Hygiene.DefaultThresholdDays)
	}

	if c.AI.MaxTokens <= 0 {
		return fmt.Errorf("ai.max_tokens must be > 0 (got %d)", c.AI.MaxTokens)
	}

	return nil
}
