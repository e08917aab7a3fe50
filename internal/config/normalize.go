package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeSegmenter()
	c.normalizeRetrieval()
	c.normalizeLLM()
	c.normalizeWorkflow()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		c.Paths.OutputDir = defaultOutputDir
	}
	if c.Paths.OutputDir, err = expandPath(c.Paths.OutputDir); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeSegmenter() {
	if c.Segmenter.MinSceneChars <= 0 {
		c.Segmenter.MinSceneChars = defaultMinSceneChars
	}
	if c.Segmenter.MaxSceneChars <= 0 {
		c.Segmenter.MaxSceneChars = defaultMaxSceneChars
	}
}

func (c *Config) normalizeRetrieval() {
	if c.Retrieval.TopK <= 0 {
		c.Retrieval.TopK = defaultTopK
	}
}

func (c *Config) normalizeLLM() {
	if key, ok := os.LookupEnv("SCRIPTFORGE_LLM_API_KEY"); ok && strings.TrimSpace(key) != "" && strings.TrimSpace(c.LLM.APIKey) == "" {
		c.LLM.APIKey = strings.TrimSpace(key)
	}
	if strings.TrimSpace(c.LLM.BaseURL) == "" {
		c.LLM.BaseURL = defaultLLMBaseURL
	}
	if strings.TrimSpace(c.LLM.Model) == "" {
		c.LLM.Model = defaultLLMModel
	}
	if c.LLM.TimeoutSeconds <= 0 {
		c.LLM.TimeoutSeconds = defaultLLMTimeoutSeconds
	}
}

func (c *Config) normalizeWorkflow() {
	if c.Workflow.MaxRetries <= 0 {
		c.Workflow.MaxRetries = defaultMaxRetries
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
