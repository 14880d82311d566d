// Package chat orchestrates conversation turns over a project's
// knowledge.
//
// Every turn runs the same ladder: moderation first, then the project's
// knowledge blob if it has one, then retrieval. A turn with retrieved
// context cites its source documents unless the model answers with the
// refusal sentinel, in which case the citations are dropped.
package chat
