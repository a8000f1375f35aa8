// Package errors is the error vocabulary shared by every layer of bug-arena.
//
// Errors carry a Code, a user-facing Message, an optional Cause and free-form
// Meta. Codes survive wrapping, so a repository can return errors.NotFound and
// the orchestrator can wrap it with more context without losing the ability
// to check it with errors.IsNotFound.
//
// # Creating errors
//
//	err := errors.NotFoundf("creature %s not found", id)
//	err := errors.InsufficientFunds("points", cost, balance)
//
// # Wrapping
//
//	if err := repo.Save(ctx, input); err != nil {
//	    return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to save progression")
//	}
//
// # Layer guidelines
//
// Repositories return NotFound, AlreadyExists and DataLoss (for malformed
// persisted records) and wrap driver errors with Wrap. The game orchestrator
// validates input (InvalidArgument), rejects purchases it cannot afford
// (InsufficientFunds) and reports storage failures as Unavailable. The CLI
// prints GetMessage(err) to the player.
package errors
