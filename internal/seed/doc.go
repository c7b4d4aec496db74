// Package seed populates a record store with synthetic people for manual testing.
//
// Populate adds a random number of people in [Min, Max), each with one to four
// phone numbers. The first phone is always a mobile number, the second a home
// number and any further ones work numbers. Names, emails and numbers come from
// gofakeit; a non-zero Seed makes the output reproducible.
//
//	ids, err := seed.Populate(ctx, s, seed.Options{Min: 20, Max: 50})
package seed
