// Package resource bounds the work a database handle puts on its store.
//
//	┌──────────────────────────────────────────────────────┐
//	│                     Controller                       │
//	├─────────────────┬──────────────────┬─────────────────┤
//	│  Cache memory   │  Store workers   │  IO bytes/sec   │
//	│  (fail-fast)    │  (semaphore)     │  (token bucket) │
//	├─────────────────┼──────────────────┼─────────────────┤
//	│  TryAcquire-    │  AcquireWorker   │  AcquireIO      │
//	│  Memory         │  ReleaseWorker   │                 │
//	│  ReleaseMemory  │                  │                 │
//	└─────────────────┴──────────────────┴─────────────────┘
//
// All methods are safe for concurrent use and are no-ops on a nil Controller.
package resource
