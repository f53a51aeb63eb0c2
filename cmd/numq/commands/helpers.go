package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/kvo/numq/internal/config"
	"github.com/kvo/numq/internal/log"
	"github.com/kvo/numq/pkg/cache"
)

// loadConfig reads the effective configuration and applies its logging settings.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if cfg.Verbose {
		log.Default().SetLevel(log.DebugLevel)
	}
	return cfg, nil
}

// readInts parses integers from args, falling back to whitespace-separated
// values on r when no args are given.
func readInts(args []string, r io.Reader) ([]int64, error) {
	if len(args) > 0 {
		nums := make([]int64, 0, len(args))
		for _, arg := range args {
			n, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("parsing %q: not an integer", arg)
			}
			nums = append(nums, n)
		}
		return nums, nil
	}

	var nums []int64
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		n, err := strconv.ParseInt(scanner.Text(), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing %q: not an integer", scanner.Text())
		}
		nums = append(nums, n)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return nums, nil
}

// openStore loads the persisted result cache named by cfg. A missing cache
// file starts an empty store; a corrupt one is logged and discarded.
func openStore(cfg *config.Config) *cache.Store {
	store := cache.New(cfg.CacheSize)

	if err := store.LoadFile(cfg.CachePath); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Default().Warn("discarding unreadable result cache", "path", cfg.CachePath, "error", err)
			store.Clear()
		}
		return store
	}

	log.Default().Debug("loaded result cache", "path", cfg.CachePath, "entries", store.Len())
	return store
}

// saveStore persists the result cache. Persistence failures are logged, not
// fatal; the computed result has already been produced.
func saveStore(store *cache.Store, cfg *config.Config) {
	if err := store.SaveFile(cfg.CachePath); err != nil {
		log.Default().Warn("saving result cache", "path", cfg.CachePath, "error", err)
	}
}
