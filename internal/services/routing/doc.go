// Package routing selects AI models for legal task types and runs tasks with
// automatic fallback.
//
// Each task type has an ordered fallback chain. SelectModel picks one model
// from the chain by quality (reliability), cost or speed after filtering out
// models whose context window is too small. Execute walks the chain, calling
// a caller-supplied TaskFunc for each model until one succeeds; every attempt
// is throttled by a per-model rate limiter and appended to the performance
// log. docket never calls a model API itself: the TaskFunc does.
package routing
