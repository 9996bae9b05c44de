// Package config manages application configuration for the Front Desk API.
//
// The config package loads and validates configuration from environment variables.
// All configuration is centralized here to provide a single source of truth.
//
// # Configuration Loading
//
// Configuration is loaded from environment variables, with a .env file
// consulted first when present:
//
//	cfg := config.Load()
//
// # Configuration Groups
//
// Configuration is organized into logical groups:
//
//   - ServerConfig: HTTP server settings (port, timeouts, CORS origins)
//   - SeedConfig: seed dataset location and load delay
//
// # Environment Variables
//
// Key environment variables:
//
//	SERVER_PORT          - HTTP server port (default: 8080)
//	SERVER_ENV           - Deployment environment (default: development)
//	SERVER_READ_TIMEOUT  - HTTP read timeout (default: 15s)
//	SERVER_WRITE_TIMEOUT - HTTP write timeout (default: 15s)
//	CORS_ALLOWED_ORIGINS - Comma-separated allowed origins
//	SEED_FILE            - Path to the reservation seed dataset
//	SEED_DELAY           - Delay before the seed load fires (default: 800ms)
//
// # Default Values
//
// Sensible defaults are provided for development:
//
//	func getEnv(key, defaultValue string) string {
//	    if value := os.Getenv(key); value != "" {
//	        return value
//	    }
//	    return defaultValue
//	}
package config
