//go:build linux

package filesystem

import (
	"syscall"
	"time"
)

// Linux stat has no portable birth time; the earlier of change and
// modification time stands in for creation.
func platformMetadata(info FileInfo) Metadata {
	m := baseMetadata(info)
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return m
	}
	m.Access = time.Unix(int64(st.Atim.Sec), int64(st.Atim.Nsec))
	m.Change = time.Unix(int64(st.Ctim.Sec), int64(st.Ctim.Nsec))
	if m.Change.Before(m.Creation) {
		m.Creation = m.Change
	}
	return m
}
