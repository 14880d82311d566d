// Package moderation decides whether user input is safe to answer.
//
// Checks run in two stages. A static prohibited-term list is matched
// first, case- and accent-insensitively at word boundaries; a hit blocks
// immediately. Clean input then goes to an LLM classifier that answers
// with a single binary token. The classifier fails open: any error or
// off-format reply counts as safe.
package moderation
