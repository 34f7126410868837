package monitor

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/thomad99/lab007-scraper/internal/alert"
	"github.com/thomad99/lab007-scraper/internal/logging"
	"github.com/thomad99/lab007-scraper/internal/models"
	"github.com/thomad99/lab007-scraper/monitordb"
)

var (
	// ErrRunInProgress is returned when starting a run while one is active.
	ErrRunInProgress = errors.New("monitor: a monitoring run is already in progress")
	// ErrNoWebsites is returned when starting a run with nothing to monitor.
	ErrNoWebsites = errors.New("monitor: no websites registered")
)

// Config holds the shape of a monitoring run.
type Config struct {
	Cycles        int
	Interval      time.Duration
	ScrapeTimeout time.Duration
}

const (
	defaultCycles        = 10
	defaultInterval      = time.Minute
	defaultScrapeTimeout = 10 * time.Second
)

func (c Config) withDefaults() Config {
	if c.Cycles <= 0 {
		c.Cycles = defaultCycles
	}
	if c.Interval <= 0 {
		c.Interval = defaultInterval
	}
	if c.ScrapeTimeout <= 0 {
		c.ScrapeTimeout = defaultScrapeTimeout
	}
	return c
}

// Scraper fetches a URL and returns its extracted text.
type Scraper interface {
	Scrape(ctx context.Context, url string) (string, error)
}

// Store is the slice of the database layer the manager needs.
type Store interface {
	ListWebsites(ctx context.Context) ([]monitordb.Website, error)
	InsertSnapshot(ctx context.Context, url, content string) (*monitordb.Snapshot, error)
}

// Manager owns the monitoring run lifecycle: it scrapes every registered
// website once per cycle, persists snapshots, compares against the previous
// cycle and sends alerts on change. At most one run is active at a time.
type Manager struct {
	config   Config
	store    Store
	scraper  Scraper
	notifier alert.Notifier
	logger   *slog.Logger

	mu          sync.RWMutex
	status      models.RunStatus
	lastContent map[string]string
	runCancel   context.CancelFunc

	wg           sync.WaitGroup
	shutdownChan chan struct{}
	shutdownOnce sync.Once
}

// NewManager creates a Manager. Zero config fields fall back to the
// defaults: 10 cycles, 60s interval, 10s scrape timeout.
func NewManager(config Config, store Store, scraper Scraper, notifier alert.Notifier, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}

	return &Manager{
		config:       config.withDefaults(),
		store:        store,
		scraper:      scraper,
		notifier:     notifier,
		logger:       logger.With(slog.String("component", "monitor")),
		status:       models.RunStatus{State: models.RunStateIdle},
		shutdownChan: make(chan struct{}),
	}
}

// StartRun begins a monitoring run in the background and returns its initial
// status. It fails if a run is active or no websites are registered.
func (m *Manager) StartRun(ctx context.Context) (models.RunStatus, error) {
	m.mu.Lock()
	if m.status.State == models.RunStateRunning {
		status := m.status
		m.mu.Unlock()
		return status, ErrRunInProgress
	}
	m.mu.Unlock()

	websites, err := m.store.ListWebsites(ctx)
	if err != nil {
		return models.RunStatus{}, err
	}
	if len(websites) == 0 {
		return models.RunStatus{}, ErrNoWebsites
	}

	runCtx, cancel := context.WithCancel(logging.WithLogger(context.Background(), m.logger))
	now := time.Now()

	m.mu.Lock()
	if m.status.State == models.RunStateRunning {
		m.mu.Unlock()
		cancel()
		return m.Status(), ErrRunInProgress
	}
	m.status = models.RunStatus{
		RunID:          uuid.NewString(),
		State:          models.RunStateRunning,
		TotalCycles:    m.config.Cycles,
		SitesMonitored: len(websites),
		StartedAt:      &now,
	}
	m.lastContent = make(map[string]string)
	m.runCancel = cancel
	status := m.status
	m.mu.Unlock()

	logging.LogOperation(m.logger, "monitoring_run_started",
		slog.String("run_id", status.RunID),
		slog.Int("sites", len(websites)),
		slog.Int("cycles", m.config.Cycles))

	m.wg.Add(1)
	go m.run(runCtx, websites)

	return status, nil
}

// Status returns a snapshot of the current or most recent run.
func (m *Manager) Status() models.RunStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

// Shutdown cancels any active run and waits for background work to stop.
func (m *Manager) Shutdown() {
	m.shutdownOnce.Do(func() {
		close(m.shutdownChan)
		m.mu.Lock()
		if m.runCancel != nil {
			m.runCancel()
		}
		m.mu.Unlock()
		m.wg.Wait()
	})
}

func (m *Manager) run(ctx context.Context, websites []monitordb.Website) {
	defer m.wg.Done()

	ticker := time.NewTicker(m.config.Interval)
	defer ticker.Stop()

	for cycle := 1; cycle <= m.config.Cycles; cycle++ {
		m.mu.Lock()
		m.status.Cycle = cycle
		m.mu.Unlock()

		m.runCycle(ctx, websites, cycle)

		if cycle == m.config.Cycles {
			break
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			m.finish(models.RunStateStopped)
			return
		case <-m.shutdownChan:
			m.finish(models.RunStateStopped)
			return
		}
	}

	m.finish(models.RunStateCompleted)
}

func (m *Manager) finish(state string) {
	now := time.Now()
	m.mu.Lock()
	m.status.State = state
	m.status.FinishedAt = &now
	status := m.status
	m.mu.Unlock()

	logging.LogOperation(m.logger, "monitoring_run_finished",
		slog.String("run_id", status.RunID),
		slog.String("state", state),
		slog.Int("changes_detected", status.ChangesDetected),
		slog.Int("alerts_sent", status.AlertsSent))
}

func (m *Manager) runCycle(ctx context.Context, websites []monitordb.Website, cycle int) {
	for _, site := range websites {
		if ctx.Err() != nil {
			return
		}
		m.checkSite(ctx, site, cycle)
	}

	logging.LogOperation(m.logger, "monitoring_cycle_completed",
		slog.Int("cycle", cycle),
		slog.Int("sites", len(websites)))
}

func (m *Manager) checkSite(ctx context.Context, site monitordb.Website, cycle int) {
	scrapeCtx, cancel := context.WithTimeout(ctx, m.config.ScrapeTimeout)
	content, err := m.scraper.Scrape(scrapeCtx, site.URL)
	cancel()
	if err != nil {
		logging.LogError(m.logger, "failed to scrape website", err,
			slog.String("url", site.URL),
			slog.Int("cycle", cycle))
		m.mu.Lock()
		m.status.ScrapeFailures++
		m.mu.Unlock()
		return
	}

	if _, err := m.store.InsertSnapshot(ctx, site.URL, content); err != nil {
		// Change detection still works off the in-memory baseline.
		logging.LogError(m.logger, "failed to store snapshot", err,
			slog.String("url", site.URL))
	}

	m.mu.Lock()
	previous, seen := m.lastContent[site.URL]
	m.lastContent[site.URL] = content
	changed := seen && ContentChanged(previous, content)
	if changed {
		m.status.ChangesDetected++
	}
	m.mu.Unlock()

	if !seen {
		logging.LogOperation(m.logger, "first_scan_of_website",
			slog.String("url", site.URL))
		return
	}

	if !changed {
		return
	}

	logging.LogOperation(m.logger, "change_detected",
		slog.String("url", site.URL),
		slog.Int("cycle", cycle))

	if err := m.notifier.NotifyChange(ctx, site.Email, site.URL); err != nil {
		logging.LogError(m.logger, "failed to send change alert", err,
			slog.String("url", site.URL),
			slog.String("to", site.Email))
		return
	}

	m.mu.Lock()
	m.status.AlertsSent++
	m.mu.Unlock()
}
