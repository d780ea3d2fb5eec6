//go:build darwin

package filesystem

import (
	"syscall"
	"time"
)

func platformMetadata(info FileInfo) Metadata {
	m := baseMetadata(info)
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return m
	}
	m.Access = time.Unix(int64(st.Atimespec.Sec), int64(st.Atimespec.Nsec))
	m.Change = time.Unix(int64(st.Ctimespec.Sec), int64(st.Ctimespec.Nsec))
	m.Creation = time.Unix(int64(st.Birthtimespec.Sec), int64(st.Birthtimespec.Nsec))
	return m
}
