// Package config provides configuration loading, merging, and validation
// facilities for the cipher server and its command-line tools.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// Each binary reads a validated view of the merged config:
// [GetServerConfig], [GetSolverConfig] or [GetTokenConfig].
package config
