package rod

import (
	"fmt"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// DefaultMaxPages is the number of pages rendered before the browser is
// relaunched. Chrome's resident memory grows with every page and never
// returns to baseline.
const DefaultMaxPages = 75

// browser owns one headless Chrome process and relaunches it after
// maxPages renders.
type browser struct {
	mu       sync.Mutex
	current  *rod.Browser
	launcher *launcher.Launcher
	pages    int
	maxPages int
	closed   bool
}

func launch() (*rod.Browser, *launcher.Launcher, error) {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return nil, nil, fmt.Errorf("launching browser: %w", err)
	}

	b := rod.New().ControlURL(u)
	if err := b.Connect(); err != nil {
		l.Kill()
		return nil, nil, fmt.Errorf("connecting to browser: %w", err)
	}
	return b, l, nil
}

func newBrowser(maxPages int) (*browser, error) {
	b, l, err := launch()
	if err != nil {
		return nil, err
	}
	return &browser{current: b, launcher: l, maxPages: maxPages}, nil
}

// acquire returns the browser to render the next page with, relaunching
// it first if the page budget is spent. A failed relaunch keeps the old
// browser.
func (b *browser) acquire() (*rod.Browser, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, fmt.Errorf("browser is closed")
	}

	if b.maxPages > 0 && b.pages >= b.maxPages {
		if next, l, err := launch(); err == nil {
			_ = b.current.Close()
			b.launcher.Kill()
			b.current, b.launcher = next, l
			b.pages = 0
		}
	}

	b.pages++
	return b.current, nil
}

// close is safe to call more than once.
func (b *browser) close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true

	err := b.current.Close()
	b.launcher.Kill()
	return err
}
