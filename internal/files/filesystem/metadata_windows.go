//go:build windows

package filesystem

import (
	"syscall"
	"time"
)

const (
	fileAttributeCompressed = 0x00000800
	fileAttributeEncrypted  = 0x00004000
)

func platformMetadata(info FileInfo) Metadata {
	m := baseMetadata(info)
	d, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return m
	}
	m.Access = time.Unix(0, d.LastAccessTime.Nanoseconds())
	m.Creation = time.Unix(0, d.CreationTime.Nanoseconds())
	m.Change = time.Unix(0, d.LastWriteTime.Nanoseconds())

	m.Attributes = 0
	attrs := d.FileAttributes
	if attrs&syscall.FILE_ATTRIBUTE_HIDDEN != 0 {
		m.Attributes |= AttrHidden
	}
	if attrs&syscall.FILE_ATTRIBUTE_READONLY != 0 {
		m.Attributes |= AttrReadOnly
	}
	if attrs&syscall.FILE_ATTRIBUTE_ARCHIVE != 0 {
		m.Attributes |= AttrArchive
	}
	if attrs&fileAttributeCompressed != 0 {
		m.Attributes |= AttrCompressed
	}
	if attrs&fileAttributeEncrypted != 0 {
		m.Attributes |= AttrEncrypted
	}
	return m
}
