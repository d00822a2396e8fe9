package worker

import "strings"

func isValidWorkerID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func isValidAvailability(availability string) bool {
	switch availability {
	case "available", "busy", "offline":
		return true
	default:
		return false
	}
}
