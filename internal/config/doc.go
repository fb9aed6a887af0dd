// Package config turns environment variables, command-line flags and an
// optional JSON file into a validated [ClientConfig].
//
// Sources are merged in that order and a non-zero field always beats the
// value of an earlier source. The JSON file path itself may come from the
// CONFIG variable or from -c/-config. Unset fields fall back to defaults in
// [GetClientConfig]; see [EnvAPIURL] for the variable the adapter reads when
// resolving relative request paths.
package config
