package component

import (
	"strings"
)

const shortSHALength = 7

// RowClass returns the striping class of the row at index.
func RowClass(index int) string {
	if index%2 == 0 {
		return "primary-row"
	}

	return "secondary-row"
}

// ShortPullRequest shortens pull request URLs of the given GitHub
// repository ("owner/name") to "name#number". Other values are returned
// unchanged and ok is false.
func ShortPullRequest(repository string, pullRequest string) (label string, ok bool) {
	prefix := "https://github.com/" + repository + "/pull/"

	number, found := strings.CutPrefix(pullRequest, prefix)
	if !found || repository == "" {
		return pullRequest, false
	}

	name := repository
	if idx := strings.LastIndex(repository, "/"); idx != -1 {
		name = repository[idx+1:]
	}

	return name + "#" + number, true
}

func ShortSHA(sha string) string {
	if len(sha) <= shortSHALength {
		return sha
	}

	return sha[:shortSHALength]
}

func CommitURL(repository string, sha string) string {
	return "https://github.com/" + repository + "/tree/" + sha
}

// DashboardLabel turns a dashboard key such as "node_metrics" into the
// label shown in the links column.
func DashboardLabel(name string) string {
	return strings.ReplaceAll(name, "_", "-")
}
