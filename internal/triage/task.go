package triage

// A Task names one kind of evidence collected for each candidate file.
type Task string

const (
	// Basic collects size, digest, MIME type and header entropy.
	Basic Task = "basic"

	// Signature classifies each file's header against the catalog of
	// known sensitive-file magic numbers.
	Signature Task = "signature"

	// All stands for every available task.
	All Task = "all"
)

func AllTasks() []Task {
	return []Task{Basic, Signature}
}

func TaskFromString(s string) (Task, bool) {
	switch Task(s) {
	case Basic:
		return Basic, true
	case Signature:
		return Signature, true
	case All:
		return All, true
	default:
		return "", false
	}
}
