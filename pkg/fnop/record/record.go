// Package record defines Record, the entity the operation packages are
// exercised against, together with its key extractors and the reset action.
package record

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/mo"
)

type Record struct {
	ID    int
	Name  string
	Phone string
	Level mo.Option[int]
	Items []string
}

// New builds a record that owns a copy of items.
func New(id int, name, phone string, level int, items ...string) *Record {
	return &Record{
		ID:    id,
		Name:  name,
		Phone: phone,
		Level: mo.Some(level),
		Items: ownItems(items),
	}
}

// NewWithoutLevel builds a record whose level is absent.
func NewWithoutLevel(id int, name, phone string, items ...string) *Record {
	return &Record{
		ID:    id,
		Name:  name,
		Phone: phone,
		Level: mo.None[int](),
		Items: ownItems(items),
	}
}

func ownItems(items []string) []string {
	owned := make([]string, len(items))
	copy(owned, items)
	return owned
}

func (r *Record) SetLevel(level int) {
	r.Level = mo.Some(level)
}

func (r *Record) AddItem(item string) {
	r.Items = append(r.Items, item)
}

// ClearItems replaces Items with a new empty slice; the previous slice is
// left as it was.
func (r *Record) ClearItems() {
	r.Items = []string{}
}

// CompareTo orders records by ID.
func (r Record) CompareTo(other Record) int {
	switch {
	case r.ID < other.ID:
		return -1
	case r.ID > other.ID:
		return 1
	}
	return 0
}

func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	c := *r
	c.Items = ownItems(r.Items)
	return &c
}

func (r *Record) Equal(other *Record) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.ID == other.ID &&
		r.Name == other.Name &&
		r.Phone == other.Phone &&
		r.Level.OrEmpty() == other.Level.OrEmpty() &&
		r.Level.IsPresent() == other.Level.IsPresent() &&
		slices.Equal(r.Items, other.Items)
}

func (r *Record) String() string {
	if r == nil {
		return "null"
	}
	level := "null"
	if v, ok := r.Level.Get(); ok {
		level = strconv.Itoa(v)
	}
	return fmt.Sprintf("Record{id=%d, name='%s', phone='%s', level=%s, items=[%s]}",
		r.ID, r.Name, r.Phone, level, strings.Join(r.Items, ", "))
}
