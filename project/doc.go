// Package project manages the on-disk lifecycle of ingested projects.
//
// Each project directory holds metadata plus exactly one of a knowledge
// blob (KB.txt) or a BadgerDB chunk index. Saving one form of storage
// removes the other, and index rebuilds are staged in a scratch
// directory and swapped in whole under a per-project write lock.
package project
