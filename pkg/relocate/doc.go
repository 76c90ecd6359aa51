// Package relocate implements the destructive half of dupclean: batch
// moves and deletes with collision-safe destination naming, and
// bottom-up pruning of empty directories.
//
// Batches are best-effort: every input path yields exactly one Outcome,
// a missing source is a skip rather than a failure, and a failed item
// never aborts the rest of the batch. There is no rollback.
package relocate
