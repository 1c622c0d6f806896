package record

import (
	"fmt"
	"path"
	"strings"
	"time"
)

const (
	// RequestsPrefix holds the automated run requests written by the dashboard
	RequestsPrefix = "requests"
	// RunsPrefix holds the automated runs written by the deployment pipeline
	RunsPrefix = "runs"
	// ManualPrefix holds the manually managed deployments
	ManualPrefix = "manual"

	Extension  = ".toml"
	FilePrefix = "run-"
)

// IsRecordFile reports whether a file name is listed as a record.
func IsRecordFile(name string) bool {
	return strings.HasPrefix(name, FilePrefix) && strings.HasSuffix(name, Extension)
}

func RequestPath(now time.Time) string {
	return path.Join(RequestsPrefix, fmt.Sprintf("request-%d%s", now.Unix(), Extension))
}

func ManualRunPath(now time.Time) string {
	return path.Join(ManualPrefix, fmt.Sprintf("%s%d%s", FilePrefix, now.Unix(), Extension))
}

// IsRemovable reports whether a path designates a run or a manual run
// record, the only files the dashboard is allowed to delete.
func IsRemovable(p string) bool {
	cleaned := path.Clean(p)
	if cleaned != p {
		return false
	}

	dir, name := path.Split(cleaned)
	dir = strings.TrimSuffix(dir, "/")

	if dir != RunsPrefix && dir != ManualPrefix {
		return false
	}

	return IsRecordFile(name)
}

func IsManual(p string) bool {
	return strings.HasPrefix(p, ManualPrefix+"/")
}
