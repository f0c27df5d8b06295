package utils

import (
	"path/filepath"
	"strings"
)

// IsNetworkDrive detects if a path is on a network-mounted drive. Used to
// warn before writing large backup archives to a slow target.
func IsNetworkDrive(path string) bool {
	// Windows UNC paths, checked before converting to an absolute path
	if strings.HasPrefix(path, "//") || strings.HasPrefix(path, "\\\\") {
		return true
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}

	// Common network mount prefixes on different platforms
	networkPrefixes := []string{
		"/mnt/",     // Linux NFS/SMB mounts
		"/media/",   // Linux removable/network media
		"/Volumes/", // macOS network volumes
	}

	for _, prefix := range networkPrefixes {
		if strings.HasPrefix(absPath, prefix) {
			return true
		}
	}

	return false
}
