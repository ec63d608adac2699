package clock

import (
	"sync"
	"time"

	"golang.org/x/text/language"
)

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// FakeClock is deterministic and test-friendly.
type FakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func NewFakeClock(start time.Time) *FakeClock {
	return &FakeClock{t: start}
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	c.t = t
	c.mu.Unlock()
}

func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

// Formatter renders a creation time the way the user's locale expects it.
type Formatter interface {
	Format(t time.Time) string
}

const (
	LayoutRu = "02.01.2006, 15:04:05"
	LayoutEn = "1/2/2006, 3:04:05 PM"
)

type LayoutFormatter struct {
	Layout string
}

func (f LayoutFormatter) Format(t time.Time) string {
	return t.Format(f.Layout)
}

var localeMatcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Russian,
})

// NewFormatter picks a layout for lang. Unknown or malformed tags fall back to English.
func NewFormatter(lang string) LayoutFormatter {
	tags, _, err := language.ParseAcceptLanguage(lang)
	if err != nil || len(tags) == 0 {
		return LayoutFormatter{Layout: LayoutEn}
	}

	_, idx, _ := localeMatcher.Match(tags...)
	if idx == 1 {
		return LayoutFormatter{Layout: LayoutRu}
	}
	return LayoutFormatter{Layout: LayoutEn}
}
