package config

import (
	"fmt"
	"strings"
	"time"
)

// ImagesConfig points at the S3 compatible object storage holding product images.
type ImagesConfig struct {
	Endpoint  string        `koanf:"endpoint"`
	AccessKey string        `koanf:"accesskey"`
	SecretKey string        `koanf:"secretkey"`
	UseSSL    bool          `koanf:"ssl"`
	Bucket    string        `koanf:"bucket"`
	Folder    string        `koanf:"folder"`
	PublicURL string        `koanf:"publicurl"`
	Timeout   time.Duration `koanf:"timeout"`
}

// String returns a string representation of the images configuration. Credentials are masked.
func (c *ImagesConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Images ---\n")
	b.WriteString(fmt.Sprintf("  endpoint: %s\n", c.Endpoint))
	b.WriteString(fmt.Sprintf("  accesskey: %s\n", mask(c.AccessKey)))
	b.WriteString(fmt.Sprintf("  secretkey: %s\n", mask(c.SecretKey)))
	b.WriteString(fmt.Sprintf("  ssl: %t\n", c.UseSSL))
	b.WriteString(fmt.Sprintf("  bucket: %s\n", c.Bucket))
	b.WriteString(fmt.Sprintf("  folder: %s\n", c.Folder))
	b.WriteString(fmt.Sprintf("  publicurl: %s\n", c.PublicURL))
	b.WriteString(fmt.Sprintf("  timeout: %s\n", c.Timeout))
	return b.String()
}

func (c *ImagesConfig) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("images endpoint is not configured")
	}
	if c.AccessKey == "" || c.SecretKey == "" {
		return fmt.Errorf("images credentials are not configured")
	}
	if c.Bucket == "" {
		return fmt.Errorf("images bucket is not configured")
	}
	if c.PublicURL == "" {
		return fmt.Errorf("images public URL is not configured")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("images timeout is not configured")
	}
	return nil
}

func mask(secret string) string {
	if secret == "" {
		return "<not configured>"
	}
	return "****"
}
