// Copyright 2021-2023
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package common

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"sort"
	"strings"
)

// set by mage through -ldflags
var (
	commitHash string
	buildDate  string
)

const programName = "pvcharts"

// Version represents a SemVer 2.0.0 compatible build version
type Version struct {
	Major int
	Minor int
	Patch int

	// Suffix marks a pre-release and is blank for releases
	Suffix string
}

// String formats the version; pre-releases carry the commit as build metadata
func (v Version) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Suffix == "" {
		return s
	}

	s += "-" + v.Suffix
	if rev := revision(); rev != "" {
		s += "+" + strings.ToLower(rev)
	}
	return s
}

// BuildVersionString describes the binary as printed by "pvcharts version"
func BuildVersionString() string {
	date := buildDate
	if date == "" {
		date = "unknown"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s v%s %s/%s\n\n", programName, CurrentVersion, runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(&sb, "Build Date: %s\n", date)
	fmt.Fprintf(&sb, "Commit: %s\n", revision())
	fmt.Fprintf(&sb, "Built with: %s", runtime.Version())

	if deps := dependencies(); len(deps) != 0 {
		sb.WriteString("\n\nDependencies:\n\n")
		sb.WriteString(strings.Join(deps, "\n"))
	}

	return sb.String()
}

// revision prefers the hash injected at link time over the one recorded by the go tool
func revision() string {
	if commitHash != "" {
		return commitHash
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, setting := range bi.Settings {
		if setting.Key == "vcs.revision" {
			return setting.Value
		}
	}
	return ""
}

// dependencies lists the modules linked into the binary as path="version", sorted by path
func dependencies() []string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return nil
	}

	deps := make([]string, 0, len(bi.Deps))
	for _, dep := range bi.Deps {
		deps = append(deps, fmt.Sprintf("%s=%q", dep.Path, dep.Version))
	}
	sort.Strings(deps)
	return deps
}
