//go:build !linux && !darwin && !windows

package filesystem

func platformMetadata(info FileInfo) Metadata {
	return baseMetadata(info)
}
