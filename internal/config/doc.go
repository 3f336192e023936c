// Package config provides configuration loading, merging, and validation
// facilities for the AVA client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. JSON config file named by the CONFIG environment variable
//  3. Environment variables (a .env file in the working directory is loaded
//     into the process environment first, without overriding set variables)
//
// The main entry point is [GetStructuredConfig]. Values required by a single
// menu action are not enforced at startup; actions resolve them through
// [Documents.TargetDir], [API.LoadDocEndpoint] and [API.QuestionEndpoint].
package config
