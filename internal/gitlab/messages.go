package gitlab

import "fmt"

func RequestMessage(pullRequest string) string {
	return fmt.Sprintf("Request %s", pullRequest)
}

func AddManualMessage(deployedOn string) string {
	return fmt.Sprintf("Add manual deployment on %s", deployedOn)
}

// RemoveMessage returns the commit message used to delete a run record.
// Manual runs and automated runs are worded differently.
func RemoveMessage(manual bool, deployedOn string) string {
	if manual {
		return fmt.Sprintf("Remove manual deployment on %s", deployedOn)
	}

	return fmt.Sprintf("[cleanup] %s", deployedOn)
}
