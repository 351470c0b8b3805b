// Package storage writes run artifacts to disk.
//
// A Manager owns two directories derived from config.OutputConfig: one for
// profile images and one for reports. Both are created on first write.
// Every file is written to a temporary sibling and renamed into place.
//
// Profile images are named {username}_profile.{ext}, where ext is detected
// from the downloaded bytes and falls back to jpg.
//
// Usage:
//
//	manager := storage.NewManager(cfg.Output)
//	path, err := manager.SaveImage("john", data)
//	if err != nil {
//	    log.Printf("failed to save image: %v", err)
//	}
package storage
