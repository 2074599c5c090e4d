package project

import "strings"

const legacyPrefix = "Sample_Files/"

// NormalizePath collapses backslashes to forward slashes and rewrites
// a legacy "Sample_Files/" prefix to assetsRoot. Idempotent: applying
// it to an already-normalized path is a no-op. Pass enabled=false to
// bypass rewriting entirely, for round-trip-fidelity serialization.
func NormalizePath(path, assetsRoot string, enabled bool) string {
	if !enabled {
		return path
	}

	normalized := strings.ReplaceAll(path, "\\", "/")

	if strings.HasPrefix(normalized, assetsRoot) {
		return normalized
	}

	if strings.HasPrefix(normalized, legacyPrefix) {
		rest := strings.TrimPrefix(normalized, legacyPrefix)
		return joinAssetPath(assetsRoot, rest)
	}

	return normalized
}

func joinAssetPath(root, rest string) string {
	if root == "" {
		return rest
	}
	if strings.HasSuffix(root, "/") {
		return root + rest
	}
	return root + "/" + rest
}
