package config

import (
	"fmt"
	"strings"
)

type GrpcServerConfig struct {
	Port              string `koanf:"port"`
	ReflectionEnabled bool   `koanf:"reflection"`
	// MaxRecvMsgSize bounds an inbound message in bytes. Zero keeps the grpc default.
	MaxRecvMsgSize int `koanf:"maxRecvMsgSize"`
}

// String returns a string representation of the gRPC server configuration.
func (c *GrpcServerConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- gRPC Server ---\n")
	b.WriteString(fmt.Sprintf("  port: %s\n", c.Port))
	b.WriteString(fmt.Sprintf("  reflection: %t\n", c.ReflectionEnabled))
	b.WriteString(fmt.Sprintf("  maxRecvMsgSize: %d\n", c.MaxRecvMsgSize))
	return b.String()
}

func (c *GrpcServerConfig) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("gRPC port is not configured")
	}
	if c.MaxRecvMsgSize < 0 {
		return fmt.Errorf("invalid gRPC max receive message size: %d", c.MaxRecvMsgSize)
	}
	return nil
}
