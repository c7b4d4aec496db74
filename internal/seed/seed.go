// ABOUTME: Synthetic person generator used to seed the record store at startup
// ABOUTME: Builds fake names, emails and phone lists with gofakeit

package seed

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/2389/people-gateway/internal/store"
)

const (
	DefaultMin = 20
	DefaultMax = 50

	maxPhones = 4
)

// ErrInvalidBounds is returned when Options describe an empty or negative range.
var ErrInvalidBounds = errors.New("seed bounds must satisfy 0 <= min < max")

// Creator is the slice of the record store the generator needs.
type Creator interface {
	Create(ctx context.Context, p *store.Person) int32
}

// Options controls how many people are generated.
type Options struct {
	Min  int    // inclusive lower bound on the number of people
	Max  int    // exclusive upper bound on the number of people
	Seed uint64 // 0 picks a random seed
}

func (o Options) withDefaults() Options {
	if o.Min == 0 && o.Max == 0 {
		o.Min, o.Max = DefaultMin, DefaultMax
	}
	return o
}

// Populate creates a random number of synthetic people in s and returns their ids.
func Populate(ctx context.Context, s Creator, opts Options) ([]int32, error) {
	opts = opts.withDefaults()
	if opts.Min < 0 || opts.Max <= opts.Min {
		return nil, fmt.Errorf("min=%d max=%d: %w", opts.Min, opts.Max, ErrInvalidBounds)
	}

	faker := gofakeit.New(opts.Seed)
	n := faker.IntRange(opts.Min, opts.Max-1)

	ids := make([]int32, 0, n)
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return ids, err
		}
		ids = append(ids, s.Create(ctx, Person(faker)))
	}
	return ids, nil
}

// Person builds one synthetic person from faker.
func Person(faker *gofakeit.Faker) *store.Person {
	first, last := faker.FirstName(), faker.LastName()

	phones := make([]store.PhoneNumber, faker.IntRange(1, maxPhones))
	for j := range phones {
		phones[j] = store.PhoneNumber{
			Number: faker.PhoneFormatted(),
			Type:   phoneTypeAt(j),
		}
	}

	return &store.Person{
		Name:   first + " " + last,
		Email:  emailFor(first, last, faker.DomainName()),
		Phones: phones,
	}
}

func phoneTypeAt(position int) store.PhoneType {
	switch position {
	case 0:
		return store.PhoneMobile
	case 1:
		return store.PhoneHome
	default:
		return store.PhoneWork
	}
}

func emailFor(first, last, domain string) string {
	local := strings.ToLower(first + "." + last)
	local = strings.Map(func(r rune) rune {
		if r == ' ' || r == '\'' {
			return -1
		}
		return r
	}, local)
	return local + "@" + domain
}
