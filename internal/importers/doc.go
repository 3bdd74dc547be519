// Package importers reconciles bulk-pasted distribution content against a
// project's existing item collection.
//
// The flow is: raw text → content.Parse → duplicate policy → Result.
//
// Every call produces exactly one outcome: a *Result on success or an *Error
// carrying the user-facing message. The caller's existing collection is never
// mutated; the merged collection is returned in the Result and ownership of
// it passes to the caller.
//
//	result, err := importers.ReconcileDefault(pasted, project.Items)
//	if err != nil {
//		// show err.Error() to the user, keep project.Items as-is
//	}
//	project.Items = result.Items
package importers
