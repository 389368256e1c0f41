// Package config loads and merges tagmap configuration from multiple sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (TAGMAP_BASE_BRANCH, TAGMAP_MAPPINGS_FILE,
//     TAGMAP_VERBOSE)
//  3. Config file (tagmap.config.json in the working directory)
//  4. Built-in defaults
//
// Configuration faults are never fatal: a missing or malformed config file
// silently falls back to the remaining layers.
package config
