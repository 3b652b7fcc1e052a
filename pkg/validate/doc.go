// Package validate provides pure, deterministic validation functions for
// heterogeneous input values — numbers, text, email addresses, URLs, phone
// numbers, dates and ages, financial identifiers (IBAN, ISIN), GS1 logistics
// codes (GLN, GTIN, SSCC) and file names — unified behind a single dispatch
// contract.
//
// Every validator has the same shape:
//
//	func Email(value any, cfg *validate.Config) validate.Result
//
// and returns exactly one of two result forms: success carrying an optional
// canonicalized value, or failure carrying a non-empty message. Validators
// never panic and never return errors; malformed input of any kind yields a
// failure Result. Rules are checked in a fixed order and the first failing
// rule terminates validation, so the reported message always names the first
// violated constraint.
//
// # Configuration
//
// Config is an immutable per-call options struct. A nil *Config applies no
// constraints beyond the validator's own format rules. When
// Config.CustomErrorMessage is set it replaces the generated message on any
// failure path, but never turns a failing check into a passing one.
//
// # Dispatch
//
// Input routes a closed set of InputType tags to the matching validator:
//
//	res := validate.Input("GB82 WEST 1234 5698 7654 32", validate.TypeIBAN, nil)
//	if res.Valid {
//	    store(res.Normalized.(string)) // "GB82WEST12345698765432"
//	}
//
// Callers depend only on InputType and Result, never on the individual
// validator signatures.
//
// # Purity
//
// There is no hidden mutable state: the only package-level data are read-only
// lookup tables (IBAN country lengths, GS1 lengths, Windows reserved names)
// built at init. Identical (value, cfg) inputs always yield identical
// results, and concurrent calls require no coordination.
package validate
