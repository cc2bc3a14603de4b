package mc

import (
	"fmt"
	"strings"
)

// Version identifies a Minecraft release whose world generation the engine reproduces.
// Releases that share generation behaviour share a Version.
type Version int32

const (
	VersionUndef Version = iota
	VB1_7
	VB1_8
	V1_0
	V1_1
	V1_2
	V1_3
	V1_4
	V1_5
	V1_6
	V1_7
	V1_8
	V1_9
	V1_10
	V1_11
	V1_12
	V1_13
	V1_14
	V1_15
	V1_16_1
	V1_16
	V1_17
	V1_18
	V1_19_2
	V1_19
	V1_20
	V1_21_1
	V1_21_3
	V1_21_WD

	// Newest is the latest version the engine has been tested against.
	Newest = V1_21_WD
)

type versionInfo struct {
	short   string
	aliases []string
}

var versionNames = map[Version]versionInfo{
	VB1_7:    {"Beta 1.7", nil},
	VB1_8:    {"Beta 1.8", nil},
	V1_0:     {"1.0", []string{"1.0.0"}},
	V1_1:     {"1.1", []string{"1.1.0"}},
	V1_2:     {"1.2", []string{"1.2.5"}},
	V1_3:     {"1.3", []string{"1.3.2"}},
	V1_4:     {"1.4", []string{"1.4.7"}},
	V1_5:     {"1.5", []string{"1.5.2"}},
	V1_6:     {"1.6", []string{"1.6.4"}},
	V1_7:     {"1.7", []string{"1.7.10"}},
	V1_8:     {"1.8", []string{"1.8.9"}},
	V1_9:     {"1.9", []string{"1.9.4"}},
	V1_10:    {"1.10", []string{"1.10.2"}},
	V1_11:    {"1.11", []string{"1.11.2"}},
	V1_12:    {"1.12", []string{"1.12.2"}},
	V1_13:    {"1.13", []string{"1.13.2"}},
	V1_14:    {"1.14", []string{"1.14.4"}},
	V1_15:    {"1.15", []string{"1.15.2"}},
	V1_16_1:  {"1.16.1", nil},
	V1_16:    {"1.16", []string{"1.16.5"}},
	V1_17:    {"1.17", []string{"1.17.1"}},
	V1_18:    {"1.18", []string{"1.18.2"}},
	V1_19_2:  {"1.19.2", nil},
	V1_19:    {"1.19", []string{"1.19.4"}},
	V1_20:    {"1.20", []string{"1.20.6"}},
	V1_21_1:  {"1.21.1", nil},
	V1_21_3:  {"1.21.3", nil},
	V1_21_WD: {"1.21 WD", []string{"1.21", "1.21.4"}},
}

var versionsByName = func() map[string]Version {
	m := make(map[string]Version, len(versionNames)*2)
	for v, info := range versionNames {
		m[strings.ToLower(info.short)] = v
		for _, a := range info.aliases {
			m[strings.ToLower(a)] = v
		}
	}
	return m
}()

// String returns the short release name, e.g. "1.15" or "Beta 1.7".
func (v Version) String() string {
	if info, ok := versionNames[v]; ok {
		return info.short
	}
	return fmt.Sprintf("Version(%d)", int32(v))
}

// Valid reports whether v names a supported release.
func (v Version) Valid() bool {
	_, ok := versionNames[v]
	return ok
}

// ParseVersion resolves a release name. It accepts short names ("1.15"), full
// patch names ("1.15.2", "Beta 1.7") and aliases ("1.21" for the newest 1.21 drop).
func ParseVersion(s string) (Version, error) {
	if v, ok := versionsByName[strings.ToLower(strings.TrimSpace(s))]; ok {
		return v, nil
	}
	return VersionUndef, fmt.Errorf("unknown minecraft version %q", s)
}

// Versions returns every supported version in release order.
func Versions() []Version {
	out := make([]Version, 0, len(versionNames))
	for v := VB1_7; v <= Newest; v++ {
		out = append(out, v)
	}
	return out
}
