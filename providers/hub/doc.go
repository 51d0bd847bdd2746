// Package hub is a thin client for the Hugging Face hub model-search API.
// [Client.ListModels] issues a single popularity-sorted search and decodes the
// candidates; responses that fail strict JSON decoding are repaired and
// retried before giving up. [Client.Search] narrows the result to ranked repo
// identifiers, the capability shape the matcher consumes.
//
// Construct a client with [New], which reads HF_TOKEN and HF_API_BASE_URL
// from the environment; override per instance with the With* methods.
package hub
