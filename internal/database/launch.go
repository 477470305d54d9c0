package database

import (
	"context"
	"fmt"
	"time"

	"media-viewer-core/internal/metrics"
)

// StashLaunchPaths replaces the pending launch queue with paths. An empty
// slice clears whatever an earlier process left behind.
func (d *Database) StashLaunchPaths(ctx context.Context, paths []string) (err error) {
	start := time.Now()
	defer func() { recordQuery("stash_launch_paths", start, err) }()

	d.mu.Lock()
	defer d.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, "DELETE FROM launch_paths"); err != nil {
		return fmt.Errorf("failed to clear launch paths: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO launch_paths (path) VALUES (?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, p := range paths {
		if _, err = stmt.ExecContext(ctx, p); err != nil {
			return fmt.Errorf("failed to stash launch path %s: %w", p, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return err
	}

	metrics.LaunchPathsPending.Set(float64(len(paths)))
	return nil
}

// TakeLaunchPaths returns all pending launch paths in the order they were
// stashed and removes them. A second call returns an empty slice.
func (d *Database) TakeLaunchPaths(ctx context.Context) (paths []string, err error) {
	start := time.Now()
	defer func() { recordQuery("take_launch_paths", start, err) }()

	d.mu.Lock()
	defer d.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	rows, err := tx.QueryContext(ctx, "SELECT path FROM launch_paths ORDER BY id")
	if err != nil {
		return nil, err
	}

	paths = []string{}
	for rows.Next() {
		var p string
		if err = rows.Scan(&p); err != nil {
			rows.Close()
			return nil, err
		}
		paths = append(paths, p)
	}
	if err = rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	if _, err = tx.ExecContext(ctx, "DELETE FROM launch_paths"); err != nil {
		return nil, err
	}
	if err = tx.Commit(); err != nil {
		return nil, err
	}

	metrics.LaunchPathsPending.Set(0)
	return paths, nil
}
