package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateSegmenter(); err != nil {
		return err
	}
	if err := c.validateValidation(); err != nil {
		return err
	}
	if err := c.validateReport(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateSegmenter() error {
	if c.Segmenter.MinSceneChars >= c.Segmenter.MaxSceneChars {
		return fmt.Errorf("segmenter.min_scene_chars (%d) must be below segmenter.max_scene_chars (%d)",
			c.Segmenter.MinSceneChars, c.Segmenter.MaxSceneChars)
	}
	return nil
}

func (c *Config) validateValidation() error {
	if c.Validation.MinChars <= 0 || c.Validation.MaxChars <= 0 {
		return errors.New("validation.min_chars and validation.max_chars must be positive")
	}
	if c.Validation.MinChars > c.Validation.MaxChars {
		return fmt.Errorf("validation.min_chars (%d) must not exceed validation.max_chars (%d)",
			c.Validation.MinChars, c.Validation.MaxChars)
	}
	return nil
}

func (c *Config) validateReport() error {
	if c.Report.MinTokens <= 0 || c.Report.MaxTokens <= 0 {
		return errors.New("report.min_tokens and report.max_tokens must be positive")
	}
	if c.Report.MinTokens > c.Report.MaxTokens {
		return fmt.Errorf("report.min_tokens (%d) must not exceed report.max_tokens (%d)",
			c.Report.MinTokens, c.Report.MaxTokens)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
		return nil
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
}
