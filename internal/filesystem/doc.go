/*
Package filesystem wraps the handful of filesystem calls the media core makes
(stat, open, read directory) with retry logic for stale file handle errors.

Media folders opened from a desktop viewer frequently live on network shares
(NFS mounts, SMB shares reached through UNC paths). Those return ESTALE when the
server side changes under an open handle; retrying after a short backoff
almost always succeeds.

# Usage

	info, err := filesystem.StatWithRetry(path, filesystem.DefaultRetryConfig())

	f, err := filesystem.OpenWithRetry(path, filesystem.DefaultRetryConfig())
	if err != nil {
	    return err
	}
	defer f.Close()

	entries, err := filesystem.ReadDirWithRetry(dir, filesystem.DefaultRetryConfig())

# Retry Behavior

Defaults: 3 retries, 50ms initial backoff doubling up to 500ms. Only ESTALE
triggers a retry; every other error is returned immediately.

# Metrics

Retry attempts, successes, failures and per-operation durations are reported
through an Observer installed with SetObserver. The metrics package provides
the Prometheus implementation; without one, nothing is recorded.
*/
package filesystem
