package supply

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/Pallinder/go-randomdata"
	"github.com/ib-77/fnop/pkg/fnop"
	"github.com/ib-77/fnop/pkg/fnop/record"
)

type randomConfig struct {
	seed     int64
	maxLevel int
	items    int
}

type Option func(*randomConfig)

// WithSeed fixes the numeric sequence. Names and items still come from
// go-randomdata's own source.
func WithSeed(seed int64) Option {
	return func(c *randomConfig) { c.seed = seed }
}

func WithMaxLevel(level int) Option {
	return func(c *randomConfig) { c.maxLevel = level }
}

func WithItems(n int) Option {
	return func(c *randomConfig) { c.items = n }
}

// newConfig panics with fnop.ErrInvalidArgument on a negative level or item
// count so a bad supplier is rejected before its first Get.
func newConfig(op string, opts []Option) randomConfig {
	c := randomConfig{seed: time.Now().UnixNano(), maxLevel: 10, items: 2}
	for _, opt := range opts {
		opt(&c)
	}
	if c.maxLevel < 0 {
		panic(fnop.InvalidArgument(op, fmt.Sprintf("max level %d is negative", c.maxLevel)))
	}
	if c.items < 0 {
		panic(fnop.InvalidArgument(op, fmt.Sprintf("item count %d is negative", c.items)))
	}
	return c
}

// lockedRand serialises access to one *rand.Rand.
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedRand) intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}

func (l *lockedRand) nextInt() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Int()
}

var randomdataMu sync.Mutex

func randomNameAndItems(n int) (string, []string) {
	randomdataMu.Lock()
	defer randomdataMu.Unlock()

	name := randomdata.SillyName()
	items := make([]string, n)
	for i := range items {
		items[i] = randomdata.Noun()
	}
	return name, items
}

// RandomInt supplies a new pseudo-random non-negative int per Get.
func RandomInt(opts ...Option) Supplier[int] {
	c := newConfig("supply.RandomInt", opts)
	src := &lockedRand{r: rand.New(rand.NewSource(c.seed))}
	return src.nextInt
}

// RandomRecord supplies a freshly built record per Get, numbered from zero.
func RandomRecord(opts ...Option) Supplier[*record.Record] {
	c := newConfig("supply.RandomRecord", opts)
	src := &lockedRand{r: rand.New(rand.NewSource(c.seed))}
	var (
		mu   sync.Mutex
		next int
	)
	return func() *record.Record {
		mu.Lock()
		id := next
		next++
		mu.Unlock()

		name, items := randomNameAndItems(c.items)

		phone := fmt.Sprintf("010-%04d-%04d", src.intn(10000), src.intn(10000))
		return record.New(id, name, phone, src.intn(c.maxLevel+1), items...)
	}
}
