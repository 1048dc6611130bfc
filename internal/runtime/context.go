// Package runtime provides application runtime context for milkledger.
package runtime

import (
	"sync"
	"time"

	"github.com/manav03panchal/milkledger/internal/config"
	"github.com/manav03panchal/milkledger/internal/errors"
	"github.com/manav03panchal/milkledger/internal/ledger"
	"github.com/manav03panchal/milkledger/internal/logging"
	"github.com/manav03panchal/milkledger/internal/model"
	"github.com/manav03panchal/milkledger/internal/output"
	"github.com/manav03panchal/milkledger/internal/share"
	"github.com/manav03panchal/milkledger/internal/storage"
	"github.com/manav03panchal/milkledger/internal/summary"
)

// MemoryPath selects an in-memory database in place of a directory.
const MemoryPath = ":memory:"

// Context holds the application runtime context.
type Context struct {
	Config    *config.Config
	DB        *storage.DB
	Formatter *output.Formatter

	// Repositories
	RecordRepo *storage.RecordRepo
	PriceRepo  *storage.PriceRepo

	// Debug mode
	Debug bool

	// Now is the clock used for "today"; tests replace it.
	Now func() time.Time

	ledgerOnce sync.Once
	ledger     *ledger.Store
	ledgerErr  error
}

// Options configures the runtime context.
type Options struct {
	ConfigFile string
	EnvFile    string
	// DBPath overrides the configured database directory.
	DBPath    string
	InMemory  bool
	Format    output.Format
	ColorMode output.ColorMode
	Debug     bool
}

// DefaultOptions returns default runtime options.
func DefaultOptions() Options {
	return Options{
		Format: output.FormatCLI,
		Debug:  false,
	}
}

// New loads the configuration and opens the database.
func New(opts Options) (*Context, error) {
	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: opts.ConfigFile,
		EnvFile:    opts.EnvFile,
	})
	if err != nil {
		return nil, err
	}

	if opts.DBPath != "" {
		cfg.Database = opts.DBPath
	}
	path := cfg.DatabasePath()
	if path == MemoryPath {
		opts.InMemory = true
	}

	// Open database
	db, err := storage.Open(storage.Options{
		Path:     path,
		InMemory: opts.InMemory,
	})
	if err != nil {
		return nil, err
	}

	// Create formatter
	formatter := output.NewFormatter()
	if opts.Format != "" {
		formatter.Format = opts.Format
	}
	formatter.ColorMode = opts.ColorMode
	if formatter.ColorMode == "" {
		formatter.ColorMode = output.ColorMode(cfg.Color)
	}

	logging.DebugLog("runtime ready", "db", db.Path(), "in_memory", opts.InMemory)

	return &Context{
		Config:     cfg,
		DB:         db,
		Formatter:  formatter,
		RecordRepo: storage.NewRecordRepo(db),
		PriceRepo:  storage.NewPriceRepo(db),
		Debug:      opts.Debug,
		Now:        time.Now,
	}, nil
}

// Close closes the runtime context.
func (c *Context) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

// Ledger returns the record store, loading and migrating the persisted
// records on first use.
func (c *Context) Ledger() (*ledger.Store, error) {
	c.ledgerOnce.Do(func() {
		raw, err := c.RecordRepo.LoadRaw()
		if err != nil {
			c.ledgerErr = err
			return
		}

		store, report, err := ledger.Load(raw, c.RecordRepo)
		if err != nil {
			if errors.Is(err, errors.ErrRecordsCorrupted) {
				err = errors.NewSystemErrorWithOp("load records", "stored records are unreadable", err)
			}
			c.ledgerErr = err
			return
		}

		logging.DebugLog("records loaded", logging.KeyCount, report.Total)
		c.ledger = store
	})
	return c.ledger, c.ledgerErr
}

// RecoverLedger drops unreadable stored records in favour of an empty store,
// so that an import can overwrite them. Nothing is written until the store
// is mutated.
func (c *Context) RecoverLedger() *ledger.Store {
	c.ledgerOnce.Do(func() {})
	c.ledger = ledger.NewStore(nil, c.RecordRepo)
	c.ledgerErr = nil
	return c.ledger
}

// Prices returns the stored prices, or the defaults.
func (c *Context) Prices() (model.Prices, error) {
	return c.PriceRepo.Get()
}

// Summary builds the summary service for the configured provider.
func (c *Context) Summary() *summary.Service {
	return summary.NewService(summary.NewGenerator(c.Config.AI), c.Config.AI.Timeout)
}

// ShareSink returns the Cloud API sink when send is set, otherwise the
// wa.me link sink.
func (c *Context) ShareSink(send bool) (share.Sink, error) {
	if !send {
		return share.LinkSink{}, nil
	}
	return share.NewCloudSink(c.Config.WhatsApp)
}

// Today returns the current date in record form.
func (c *Context) Today() string {
	return model.FormatDate(c.Now())
}

// CLIFormatter returns a CLI formatter.
func (c *Context) CLIFormatter() *output.CLIFormatter {
	return output.NewCLIFormatter(c.Formatter)
}

// JSONFormatter returns a JSON formatter.
func (c *Context) JSONFormatter() *output.JSONFormatter {
	return output.NewJSONFormatter(c.Formatter)
}

// IsJSON returns true if output format is JSON.
func (c *Context) IsJSON() bool {
	return c.Formatter.Format == output.FormatJSON
}
