// Package record owns the persisted flight-of-stairs table: the Record
// type, the pure collection operations the UI mutates it with, and the
// CSV-backed Store plus its on-disk change watcher.
package record
