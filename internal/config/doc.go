// Package config resolves process configuration from the environment. All
// credentials are required and validated at startup so the server fails
// fast instead of erroring on the first tool call.
package config
