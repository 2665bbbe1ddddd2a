// Package domain provides domain primitives built on the kernel's
// immutable value-object carrier.
//
// Domain primitives are value objects that encapsulate validation rules
// and ensure that invalid values cannot be created:
//
//   - Email: RFC 5322 style email addresses
//   - UUID: RFC 4122 identifiers in canonical form
//   - ULID: lexicographically sortable identifiers
//   - Money: monetary values with currency handling
//   - PhoneNumber: E.164 formatted phone numbers
//   - URL: validated URLs with scheme restrictions
//   - Timestamp: UTC-normalized instants with ISO 8601 parsing
//   - Duration: durations with human-readable parsing
//
// Construction failures are kernel domain errors: empty input carries
// the generic_argument_not_provided code, invalid input the code the
// validator chose. Once created, a domain primitive is always valid.
//
// Example usage:
//
//	email, err := domain.NewEmail("User@Example.com")
//	if err != nil {
//	    // handle validation failure
//	}
//
//	price := domain.MustNewMoney(1000, domain.USD) // USD 10.00
//	total, _ := price.Add(domain.MustNewMoney(500, domain.USD))
package domain
