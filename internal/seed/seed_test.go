// ABOUTME: Tests for the synthetic seed generator
// ABOUTME: Covers bounds, phone type ordering, determinism and cancellation

package seed

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2389/people-gateway/internal/store"
)

type sliceCreator struct {
	people []*store.Person
}

func (c *sliceCreator) Create(_ context.Context, p *store.Person) int32 {
	c.people = append(c.people, p)
	return int32(len(c.people) - 1)
}

func TestPopulate_DefaultBounds(t *testing.T) {
	c := &sliceCreator{}

	ids, err := Populate(context.Background(), c, Options{Seed: 7})
	require.NoError(t, err)

	assert.GreaterOrEqual(t, len(ids), DefaultMin)
	assert.Less(t, len(ids), DefaultMax)
	assert.Len(t, c.people, len(ids))
}

func TestPopulate_PeopleShape(t *testing.T) {
	c := &sliceCreator{}

	_, err := Populate(context.Background(), c, Options{Min: 10, Max: 11, Seed: 42})
	require.NoError(t, err)
	require.Len(t, c.people, 10)

	for _, p := range c.people {
		assert.NotEmpty(t, p.Name)
		assert.Contains(t, p.Email, "@")
		assert.Equal(t, strings.ToLower(p.Email), p.Email)

		require.NotEmpty(t, p.Phones)
		assert.LessOrEqual(t, len(p.Phones), maxPhones)
		for j, ph := range p.Phones {
			assert.NotEmpty(t, ph.Number)
			assert.Equal(t, phoneTypeAt(j), ph.Type)
		}
	}
}

func TestPopulate_DeterministicWithSeed(t *testing.T) {
	a, b := &sliceCreator{}, &sliceCreator{}

	_, err := Populate(context.Background(), a, Options{Min: 3, Max: 6, Seed: 99})
	require.NoError(t, err)
	_, err = Populate(context.Background(), b, Options{Min: 3, Max: 6, Seed: 99})
	require.NoError(t, err)

	assert.Equal(t, a.people, b.people)
}

func TestPopulate_InvalidBounds(t *testing.T) {
	for _, opts := range []Options{
		{Min: 5, Max: 5},
		{Min: 8, Max: 2},
		{Min: -1, Max: 3},
	} {
		_, err := Populate(context.Background(), &sliceCreator{}, opts)
		assert.True(t, errors.Is(err, ErrInvalidBounds), "opts %+v", opts)
	}
}

func TestPopulate_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := &sliceCreator{}
	_, err := Populate(ctx, c, Options{Min: 5, Max: 6})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, c.people)
}

func TestPhoneTypeAt(t *testing.T) {
	assert.Equal(t, store.PhoneMobile, phoneTypeAt(0))
	assert.Equal(t, store.PhoneHome, phoneTypeAt(1))
	assert.Equal(t, store.PhoneWork, phoneTypeAt(2))
	assert.Equal(t, store.PhoneWork, phoneTypeAt(3))
}

func TestEmailFor(t *testing.T) {
	assert.Equal(t, "mary.oconnor@example.com", emailFor("Mary", "O'Connor", "example.com"))
	assert.Equal(t, "ana.dela.cruz@example.org", emailFor("Ana", "De La.Cruz", "example.org"))
}

func TestPerson_UsesFaker(t *testing.T) {
	p := Person(gofakeit.New(1))
	assert.Contains(t, p.Name, " ")
}
