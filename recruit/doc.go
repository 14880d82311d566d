// Package recruit screens candidate CVs against a job opening.
//
// A fixed-width pool extracts text from each PDF, prompts the model at
// temperature zero for a structured candidate record, and parses the
// reply with a single brace-span recovery attempt. Each submitted leaf
// document produces exactly one result regardless of individual failures.
package recruit
