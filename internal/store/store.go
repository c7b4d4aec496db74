// ABOUTME: Person record types and the Store interface used by the request handlers
// ABOUTME: Defines PhoneNumber, PersonPatch and the sentinel errors of the record store

package store

import (
	"context"
	"errors"
)

// ErrIndexOutOfRange is returned by positional removal when the index is not within [0, count).
var ErrIndexOutOfRange = errors.New("index out of range")

// EndOfCollection as the end of a range reads through the last record.
const EndOfCollection = -1

// PhoneType categorizes a phone number
type PhoneType int32

const (
	PhoneMobile PhoneType = iota
	PhoneHome
	PhoneWork
)

func (t PhoneType) String() string {
	switch t {
	case PhoneMobile:
		return "mobile"
	case PhoneHome:
		return "home"
	case PhoneWork:
		return "work"
	default:
		return "unknown"
	}
}

// PhoneNumber is a single phone entry of a person
type PhoneNumber struct {
	Number string
	Type   PhoneType
}

// Person is a record held by the store. ID is assigned by the store on create.
type Person struct {
	ID     int32
	Name   string
	Email  string
	Phones []PhoneNumber
}

// clone returns a deep copy so callers never share phone slices with the store.
func (p *Person) clone() *Person {
	c := *p
	if p.Phones != nil {
		c.Phones = make([]PhoneNumber, len(p.Phones))
		copy(c.Phones, p.Phones)
	}
	return &c
}

// PersonPatch describes a partial update. Nil fields are left untouched and
// Phones replaces the existing list only when it is non-empty.
type PersonPatch struct {
	Name   *string
	Email  *string
	Phones []PhoneNumber
}

// fields lists the names of the fields the patch will overwrite.
func (p PersonPatch) fields() []string {
	var out []string
	if p.Name != nil {
		out = append(out, "name")
	}
	if p.Email != nil {
		out = append(out, "email")
	}
	if len(p.Phones) > 0 {
		out = append(out, "phones")
	}
	return out
}

// Store is the record store the request handlers depend on.
// Every method is safe for concurrent use; returned records are copies.
// Counts returned alongside a read or removal are taken under the same lock
// as the operation itself.
type Store interface {
	Create(ctx context.Context, p *Person) int32
	FindByID(id int32) (*Person, bool)
	ListRange(start, end int) (people []*Person, total int)
	Update(ctx context.Context, id int32, patch PersonPatch) (*Person, bool)
	Remove(ctx context.Context, id int32) (removed *Person, remaining int, ok bool)
	RemoveAt(ctx context.Context, index int) (removed *Person, remaining int, err error)
	Count() int
}
