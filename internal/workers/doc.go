/*
Package workers sizes worker pools from the CPUs the process may actually use.

runtime.NumCPU reports the host's CPU count, while GOMAXPROCS follows CPU
quotas and affinity masks (Go 1.19+ for cgroup limits). Worker counts are
derived from GOMAXPROCS times a per-workload multiplier:

	workers.ForCPU(8)   // 1 per CPU, decoding pixel data
	workers.ForIO(16)   // 2 per CPU, reading headers from disk or a share
	workers.ForMixed(8) // 1.5 per CPU

The MEDIA_WORKERS environment variable overrides the calculation; the limit
passed by the caller still applies.
*/
package workers
