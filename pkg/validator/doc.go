// Package validator offers boolean format checks and composable validation rules.
//
// The Is* helpers answer a single question without allocating errors:
//
//	validator.IsEmail("test@example.com")  // true
//	validator.IsURL("https://example.com") // true
//	validator.IsUUID("not-a-guid")         // false
//
// Rules wrap the same checks with field names and translation keys so several
// failures can be reported together:
//
//	err := validator.Apply(
//	    validator.Required("name", name),
//	    validator.ValidEmail("email", email),
//	    validator.ValidURL("website", website),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // verrs.Has("email"), verrs.Get("email")
//	}
//
// Every error returned by Apply satisfies errors.Is(err, ErrValidationFailed).
// The package is stateless and safe for concurrent use.
package validator
