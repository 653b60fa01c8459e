// Package errors provides the coded error type used across dance-battle.
//
// Errors carry a Code, a message, an optional cause and metadata:
//
//	err := errors.NotFound("dancer not found").WithMeta("dancer_id", id)
//	err := errors.InvalidArgumentf("xp award must not be negative: %d", amount)
//
// Wrapping keeps the code of the wrapped error:
//
//	if err := c.AwardXP(xp); err != nil {
//	    return errors.Wrap(err, "failed to award battle xp")
//	}
//
// # Codes
//
//   - InvalidArgument: a caller passed a bad value (negative XP, empty name)
//   - FailedPrecondition: the system is misconfigured (degenerate random range, bad tuning)
//   - NotFound: a dancer is not in the roster
//   - AlreadyExists: a dancer ID is already taken
//   - Internal: anything else
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateMin("max_level", cfg.MaxLevel, 1, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
package errors
